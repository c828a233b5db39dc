package actors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidIdentity   = errors.New("invalid identity")
	ErrActivationStopped = errors.New("activation stopped")
	ErrRuntimeStopped    = errors.New("runtime stopped")
	ErrAskTimeout        = errors.New("ask timed out")
	// ErrReentrantCall is returned when an ask targets an activation that is
	// already waiting further up the same call chain.
	ErrReentrantCall     = errors.New("reentrant call")
	ErrUnexpectedMessage = errors.New("unexpected message")
)

// ActivationError reports that an actor could not be constructed. The
// identity is left unregistered.
type ActivationError struct {
	Identity Identity
	Err      error
}

func (e *ActivationError) Error() string {
	return fmt.Sprintf("activate %s: %v", e.Identity, e.Err)
}

func (e *ActivationError) Unwrap() error { return e.Err }

// WriteError reports a failed state write. State already mutated in memory
// is kept.
type WriteError struct {
	Identity Identity
	Err      error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write state for %s: %v", e.Identity, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// DispatchError wraps a failure of a call forwarded from one actor to another.
type DispatchError struct {
	From Identity
	To   Identity
	Err  error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch %s -> %s: %v", e.From, e.To, e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }

type OperationPanicError struct {
	Identity Identity
	Value    interface{}
}

func (e *OperationPanicError) Error() string {
	return fmt.Sprintf("operation on %s panicked: %v", e.Identity, e.Value)
}
