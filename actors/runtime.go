package actors

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

type Options struct {
	// Persistence defaults to a fresh in-memory provider.
	Persistence PersistenceProvider
	// Sink receives actor side effects. Defaults to discarding them.
	Sink        Sink
	Logger      logr.Logger
	Registerer  prometheus.Registerer
	MailboxSize int
	// AskTimeout bounds every Ask. Zero means no bound beyond the caller's
	// context.
	AskTimeout time.Duration
}

// Runtime hosts every activation of one process.
type Runtime struct {
	options     Options
	persistence PersistenceProvider
	sink        Sink
	logger      logr.Logger
	metrics     *runtimeMetrics
	table       *activationTable
	stopped     atomic.Bool
}

func NewRuntime(ctx context.Context, options Options) (*Runtime, error) {
	if options.Persistence == nil {
		options.Persistence = NewPersistenceProvider()
	}
	if options.Sink == nil {
		options.Sink = discardSink
	}
	if options.Logger.GetSink() == nil {
		options.Logger = logr.Discard()
	}
	if options.MailboxSize <= 0 {
		options.MailboxSize = DefaultMailboxSize
	}

	r := &Runtime{
		options:     options,
		persistence: options.Persistence,
		sink:        options.Sink,
		logger:      options.Logger.WithName("grains"),
		metrics:     newRuntimeMetrics(),
	}
	r.table = newActivationTable(r, constructors)

	if err := r.persistence.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("initialize persistence: %w", err)
	}
	if err := r.metrics.register(options.Registerer); err != nil {
		r.persistence.Close()
		return nil, fmt.Errorf("register metrics: %w", err)
	}
	r.logger.Info("runtime started",
		"persistence", fmt.Sprintf("%T", r.persistence),
		"mailboxSize", options.MailboxSize,
		"askTimeout", options.AskTimeout)
	return r, nil
}

// GetActorReference validates the identity and returns a reference to it.
// The activation itself is created on first use.
func (r *Runtime) GetActorReference(kind Kind, key string) (ActorRef, error) {
	if r.stopped.Load() {
		return nil, ErrRuntimeStopped
	}
	id, err := NewIdentity(kind, key)
	if err != nil {
		return nil, err
	}
	return &LocalActorRef{
		runtime: r,
		id:      id,
	}, nil
}

func (r *Runtime) Greeter(key string) (*GreeterRef, error) {
	ref, err := r.GetActorReference(KindGreeter, key)
	if err != nil {
		return nil, err
	}
	return &GreeterRef{ActorRef: ref}, nil
}

func (r *Runtime) TodoList(key string) (*TodoListRef, error) {
	ref, err := r.GetActorReference(KindTodoList, key)
	if err != nil {
		return nil, err
	}
	return &TodoListRef{ActorRef: ref}, nil
}

func (r *Runtime) ActivationCount() int {
	return r.table.count()
}

// Shutdown deactivates every activation and closes the persistence provider.
// Asks made afterwards fail with ErrRuntimeStopped.
func (r *Runtime) Shutdown(ctx context.Context) error {
	if r.stopped.Swap(true) {
		return nil
	}
	count := r.table.count()
	r.table.shutdown(ctx)
	r.logger.Info("runtime stopped", "activations", count)
	return r.persistence.Close()
}
