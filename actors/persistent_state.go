package actors

import (
	"context"
	"fmt"
)

// StateCodec converts an actor's state to and from the bytes kept by a
// PersistenceProvider. Empty returns the value reported for a record that
// was never written.
type StateCodec[T any] struct {
	Empty     func() T
	Marshal   func(T) ([]byte, error)
	Unmarshal func([]byte) (T, error)
}

// PersistentState is the per-activation view of a stored record. It must
// only be used from the owning activation's turns.
type PersistentState[T any] struct {
	id     Identity
	store  StateStore
	codec  StateCodec[T]
	state  T
	exists bool
}

func NewPersistentState[T any](ctx ActorContext, codec StateCodec[T]) *PersistentState[T] {
	return &PersistentState[T]{
		id:    ctx.Self(),
		store: ctx.StateStore(),
		codec: codec,
		state: codec.Empty(),
	}
}

func (ps *PersistentState[T]) Read(ctx context.Context) error {
	data, exists, err := ps.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("read state for %s: %w", ps.id, err)
	}
	if !exists {
		ps.state = ps.codec.Empty()
		ps.exists = false
		return nil
	}
	state, err := ps.codec.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("decode state for %s: %w", ps.id, err)
	}
	ps.state = state
	ps.exists = true
	return nil
}

// Write persists the current state. On failure the in-memory state is left
// as it is and RecordExists is unchanged.
func (ps *PersistentState[T]) Write(ctx context.Context) error {
	data, err := ps.codec.Marshal(ps.state)
	if err != nil {
		return &WriteError{Identity: ps.id, Err: err}
	}
	if err := ps.store.Write(ctx, data); err != nil {
		return &WriteError{Identity: ps.id, Err: err}
	}
	ps.exists = true
	return nil
}

func (ps *PersistentState[T]) State() T {
	return ps.state
}

func (ps *PersistentState[T]) SetState(state T) {
	ps.state = state
}

func (ps *PersistentState[T]) RecordExists() bool {
	return ps.exists
}
