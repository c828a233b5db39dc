package actors

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"
)

// ActorRef addresses an actor by identity. Whether the activation exists yet
// is invisible to the caller; it is created on the first ask.
type ActorRef interface {
	Identity() Identity
	Ask(ctx context.Context, message interface{}) (interface{}, error)
	AskWithTimeout(ctx context.Context, message interface{}, timeout time.Duration) (interface{}, error)
}

type LocalActorRef struct {
	runtime *Runtime
	id      Identity
}

func (lar *LocalActorRef) Identity() Identity {
	return lar.id
}

func (lar *LocalActorRef) Ask(ctx context.Context, message interface{}) (interface{}, error) {
	return lar.AskWithTimeout(ctx, message, lar.runtime.options.AskTimeout)
}

// AskWithTimeout bounds the wait for both activation and the mailbox turn. A
// zero timeout waits as long as ctx allows.
func (lar *LocalActorRef) AskWithTimeout(
	ctx context.Context,
	message interface{},
	timeout time.Duration,
) (interface{}, error) {
	if inCallChain(ctx, lar.id) {
		return nil, fmt.Errorf("%w: %s is already waiting in this call chain", ErrReentrantCall, lar.id)
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	a, err := lar.runtime.table.getActivation(ctx, lar.id)
	if err != nil {
		return nil, err
	}
	reply, err := a.mailbox.Submit(ctx, message)
	if timeout > 0 && errors.Is(err, context.DeadlineExceeded) {
		return nil, fmt.Errorf("%w: %s %s after %s", ErrAskTimeout, lar.id, operationName(message), timeout)
	}
	return reply, err
}

func operationName(message interface{}) string {
	if message == nil {
		return "<nil>"
	}
	t := reflect.TypeOf(message)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

func unexpectedReply(id Identity, reply interface{}) error {
	return fmt.Errorf("%w: %s replied with %T", ErrUnexpectedMessage, id, reply)
}
