package actors

import (
	"context"
	"fmt"
	"time"

	"github.com/gocql/gocql"
	"github.com/scylladb/gocqlx"
	"github.com/scylladb/gocqlx/qb"
)

const grainStateTable = "grain_state"

type CassandraPersistenceProvider struct {
	config  CassandraConfig
	session *gocql.Session
}

func NewCassandraPersistenceProvider(config CassandraConfig) *CassandraPersistenceProvider {
	if config.ReplicationFactor == 0 {
		config.ReplicationFactor = 1
	}
	return &CassandraPersistenceProvider{
		config: config,
	}
}

func (c *CassandraPersistenceProvider) Initialize(ctx context.Context) error {
	err := c.createKeyspace(ctx)
	if err != nil {
		return err
	}

	session, err := CassandraConnect(c.config)
	if err != nil {
		return err
	}
	c.session = session

	return c.createStateTable(ctx)
}

func (c *CassandraPersistenceProvider) createKeyspace(ctx context.Context) error {
	cluster, err := c.config.cluster()
	if err != nil {
		return err
	}
	cluster.Timeout = 60 * time.Second
	session, err := cluster.CreateSession()
	if err != nil {
		return err
	}
	defer session.Close()

	return session.Query(fmt.Sprintf(
		`CREATE KEYSPACE IF NOT EXISTS %s
		WITH REPLICATION = {
			'class': 'SimpleStrategy',
			'replication_factor': %d
		}`,
		c.config.Keyspace,
		c.config.ReplicationFactor,
	)).WithContext(ctx).Exec()
}

func (c *CassandraPersistenceProvider) createStateTable(ctx context.Context) error {
	return c.session.Query(
		`CREATE TABLE IF NOT EXISTS ` + grainStateTable + ` (
			kind text,
			key text,
			state blob,
			updated timeuuid,
			PRIMARY KEY ((kind, key))
		)`,
	).WithContext(ctx).Exec()
}

func (c *CassandraPersistenceProvider) ReadState(
	ctx context.Context,
	id Identity,
) ([]byte, bool, error) {
	if c.session == nil {
		return nil, false, fmt.Errorf("cassandra: provider not initialized")
	}
	stmt, names := qb.Select(grainStateTable).
		Columns("state").
		Where(
			qb.Eq("kind"),
			qb.Eq("key"),
		).
		ToCql()
	q := gocqlx.Query(c.session.Query(stmt).WithContext(ctx), names).BindMap(qb.M{
		"kind": id.Kind.String(),
		"key":  id.Key,
	})
	var state []byte
	err := q.GetRelease(&state)
	if err == gocql.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return state, true, nil
}

func (c *CassandraPersistenceProvider) WriteState(
	ctx context.Context,
	id Identity,
	state []byte,
) error {
	if c.session == nil {
		return fmt.Errorf("cassandra: provider not initialized")
	}
	stmt, names := qb.Insert(grainStateTable).
		Columns(
			"kind",
			"key",
			"state",
			"updated",
		).
		ToCql()
	if state == nil {
		state = []byte{}
	}
	return QueryFromMap(stmt, names, qb.M{
		"kind":    id.Kind.String(),
		"key":     id.Key,
		"state":   state,
		"updated": gocql.TimeUUID(),
	}).Execute(ctx, c.session)
}

func (c *CassandraPersistenceProvider) Close() error {
	if c.session != nil {
		c.session.Close()
	}
	return nil
}
