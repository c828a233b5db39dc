package actors

import (
	"context"
	"fmt"
	"time"

	"github.com/gocql/gocql"
)

type CassandraConfig struct {
	Hosts             []string
	Keyspace          string
	Timeout           time.Duration
	Consistency       string
	ReplicationFactor int
}

func (config CassandraConfig) cluster() (*gocql.ClusterConfig, error) {
	if len(config.Hosts) == 0 {
		return nil, fmt.Errorf("cassandra: no hosts configured")
	}
	cluster := gocql.NewCluster(config.Hosts...)
	cluster.Timeout = config.Timeout
	if cluster.Timeout == 0 {
		cluster.Timeout = 3000 * time.Millisecond
	}
	cluster.Consistency = gocql.Quorum
	if config.Consistency != "" {
		consistency, err := gocql.ParseConsistencyWrapper(config.Consistency)
		if err != nil {
			return nil, err
		}
		cluster.Consistency = consistency
	}
	return cluster, nil
}

func CassandraConnect(config CassandraConfig) (*gocql.Session, error) {
	cluster, err := config.cluster()
	if err != nil {
		return nil, err
	}
	cluster.Keyspace = config.Keyspace
	return cluster.CreateSession()
}

// LazyQuery is a statement with its bound values, built ahead of execution.
type LazyQuery struct {
	Statement string
	Values    []interface{}
}

func QueryFromMap(statement string, names []string, inValues map[string]interface{}) *LazyQuery {
	values := make([]interface{}, len(names))
	for i, name := range names {
		v, found := inValues[name]
		if !found {
			panic("Could not find: " + name)
		}
		values[i] = v
	}
	return &LazyQuery{
		Statement: statement,
		Values:    values,
	}
}

func (lq *LazyQuery) Execute(ctx context.Context, session *gocql.Session) error {
	return session.Query(lq.Statement, lq.Values...).WithContext(ctx).Exec()
}

func (lq *LazyQuery) String() string {
	return fmt.Sprintf("%s %v", lq.Statement, lq.Values)
}
