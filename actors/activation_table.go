package actors

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/zikhan/grains/internal/logging"
)

type activation struct {
	id           Identity
	activationID string
	actor        Actor
	mailbox      *Mailbox
	store        StateStore
	runtime      *Runtime
}

func (a *activation) receive(
	ctx context.Context,
	message interface{},
) (value interface{}, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = &OperationPanicError{Identity: a.id, Value: r}
			a.runtime.logger.Error(err, "operation panicked",
				"actor", a.id.String(),
				"activation", a.activationID)
		}
		a.runtime.metrics.observeOperation(a.id.Kind, operationName(message), err, time.Since(start))
	}()

	a.runtime.logger.V(logging.TRACE).Info("running operation",
		"actor", a.id.String(),
		"operation", operationName(message))
	return a.actor.Receive(a.newContext(withCall(ctx, a.id), message))
}

func (a *activation) newContext(ctx context.Context, message interface{}) ActorContext {
	return &actorContextImpl{
		ctx:        ctx,
		activation: a,
		message:    message,
	}
}

// stop waits for the running turn, then lets the actor release its resources.
func (a *activation) stop(ctx context.Context) {
	a.mailbox.Stop()
	a.actor.OnDeactivate(a.newContext(ctx, nil))
}

// activationTable maps identities to their activations, creating each one on
// first use. Concurrent first lookups of one identity share one construction.
type activationTable struct {
	runtime      *Runtime
	constructors map[Kind]ActorConstructor

	mu          sync.RWMutex
	activations map[Identity]*activation
	closed      bool

	inflight singleflight.Group
}

func newActivationTable(runtime *Runtime, constructors map[Kind]ActorConstructor) *activationTable {
	return &activationTable{
		runtime:      runtime,
		constructors: constructors,
		activations:  make(map[Identity]*activation),
	}
}

func (t *activationTable) lookup(id Identity) (*activation, bool, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	a, found := t.activations[id]
	return a, found, t.closed
}

func (t *activationTable) getActivation(ctx context.Context, id Identity) (*activation, error) {
	a, found, closed := t.lookup(id)
	if found {
		return a, nil
	}
	if closed {
		return nil, ErrRuntimeStopped
	}

	v, err, _ := t.inflight.Do(id.String(), func() (interface{}, error) {
		a, found, _ := t.lookup(id)
		if found {
			return a, nil
		}
		// The construction is shared by every waiting caller, so one caller
		// giving up must not cancel it.
		return t.spawnActivation(context.WithoutCancel(ctx), id)
	})
	if err != nil {
		return nil, err
	}
	return v.(*activation), nil
}

func (t *activationTable) spawnActivation(ctx context.Context, id Identity) (*activation, error) {
	constructor, found := t.constructors[id.Kind]
	if !found {
		return nil, &ActivationError{Identity: id, Err: ErrInvalidIdentity}
	}

	a := &activation{
		id:           id,
		activationID: uuid.NewString(),
		actor:        constructor(id),
		mailbox:      NewMailbox(t.runtime.options.MailboxSize),
		store:        newStateStore(id, t.runtime.persistence),
		runtime:      t.runtime,
	}
	logger := t.runtime.logger.WithValues("actor", id.String(), "activation", a.activationID)

	// Not yet registered, so nothing else can reach the actor here.
	if err := a.actor.OnActivate(a.newContext(withCall(ctx, id), nil)); err != nil {
		t.runtime.metrics.activationFailures.WithLabelValues(id.Kind.String()).Inc()
		logger.Error(err, "activation failed")
		return nil, &ActivationError{Identity: id, Err: err}
	}
	a.mailbox.Start(a.receive)

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		a.stop(ctx)
		return nil, ErrRuntimeStopped
	}
	t.activations[id] = a
	t.mu.Unlock()

	t.runtime.metrics.activations.WithLabelValues(id.Kind.String()).Inc()
	logger.V(logging.DEBUG).Info("activated")
	return a, nil
}

func (t *activationTable) count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.activations)
}

func (t *activationTable) shutdown(ctx context.Context) {
	t.mu.Lock()
	t.closed = true
	activations := t.activations
	t.activations = make(map[Identity]*activation)
	t.mu.Unlock()

	var wg sync.WaitGroup
	for _, a := range activations {
		wg.Add(1)
		go func(a *activation) {
			defer wg.Done()
			a.stop(ctx)
		}(a)
	}
	wg.Wait()
}
