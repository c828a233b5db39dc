package actors

import (
	"context"
	"sync"
)

// PersistenceProvider stores one opaque snapshot per identity. Calls for
// different identities may run concurrently; calls for one identity are
// already serialized by its mailbox.
type PersistenceProvider interface {
	Initialize(ctx context.Context) error
	ReadState(ctx context.Context, id Identity) ([]byte, bool, error)
	WriteState(ctx context.Context, id Identity, state []byte) error
	Close() error
}

// StateStore is a PersistenceProvider scoped to a single identity.
type StateStore interface {
	Load(ctx context.Context) ([]byte, bool, error)
	Write(ctx context.Context, state []byte) error
}

type scopedStateStore struct {
	id Identity
	pp PersistenceProvider
}

func newStateStore(id Identity, pp PersistenceProvider) StateStore {
	return &scopedStateStore{
		id: id,
		pp: pp,
	}
}

func (s *scopedStateStore) Load(ctx context.Context) ([]byte, bool, error) {
	return s.pp.ReadState(ctx, s.id)
}

func (s *scopedStateStore) Write(ctx context.Context, state []byte) error {
	return s.pp.WriteState(ctx, s.id, state)
}

type InMemoryPersistenceProvider struct {
	sync.RWMutex
	records map[Identity][]byte
}

func NewPersistenceProvider() *InMemoryPersistenceProvider {
	return &InMemoryPersistenceProvider{
		records: make(map[Identity][]byte),
	}
}

func (imp *InMemoryPersistenceProvider) Initialize(context.Context) error {
	return nil
}

func (imp *InMemoryPersistenceProvider) ReadState(
	_ context.Context,
	id Identity,
) ([]byte, bool, error) {
	imp.RLock()
	defer imp.RUnlock()

	record, found := imp.records[id]
	if !found {
		return nil, false, nil
	}
	return append([]byte(nil), record...), true, nil
}

func (imp *InMemoryPersistenceProvider) WriteState(
	_ context.Context,
	id Identity,
	state []byte,
) error {
	imp.Lock()
	defer imp.Unlock()

	// A written empty state still has to read back as existing.
	imp.records[id] = append(make([]byte, 0, len(state)), state...)
	return nil
}

func (imp *InMemoryPersistenceProvider) Close() error {
	return nil
}
