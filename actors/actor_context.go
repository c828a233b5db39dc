package actors

import (
	"context"

	"github.com/go-logr/logr"
)

// ActorContext is handed to an actor for one turn (or for activation and
// deactivation). It must not be retained after the call returns.
type ActorContext interface {
	Context() context.Context
	Message() interface{}
	Self() Identity
	ActivationID() string
	StateStore() StateStore
	Sink() Sink
	Logger() logr.Logger
	ActorOf(kind Kind, key string) (ActorRef, error)
}

type actorContextImpl struct {
	ctx        context.Context
	activation *activation
	message    interface{}
}

func (a *actorContextImpl) Context() context.Context {
	return a.ctx
}

func (a *actorContextImpl) Message() interface{} {
	return a.message
}

func (a *actorContextImpl) Self() Identity {
	return a.activation.id
}

func (a *actorContextImpl) ActivationID() string {
	return a.activation.activationID
}

func (a *actorContextImpl) StateStore() StateStore {
	return a.activation.store
}

func (a *actorContextImpl) Sink() Sink {
	return a.activation.runtime.sink
}

func (a *actorContextImpl) Logger() logr.Logger {
	return a.activation.runtime.logger.WithValues("actor", a.activation.id.String())
}

func (a *actorContextImpl) ActorOf(kind Kind, key string) (ActorRef, error) {
	return a.activation.runtime.GetActorReference(kind, key)
}

type callChainKey struct{}

// withCall records id as waiting on the call chain carried by ctx.
func withCall(ctx context.Context, id Identity) context.Context {
	chain, _ := ctx.Value(callChainKey{}).([]Identity)
	next := make([]Identity, len(chain), len(chain)+1)
	copy(next, chain)
	return context.WithValue(ctx, callChainKey{}, append(next, id))
}

func inCallChain(ctx context.Context, id Identity) bool {
	chain, _ := ctx.Value(callChainKey{}).([]Identity)
	for _, caller := range chain {
		if caller == id {
			return true
		}
	}
	return false
}
