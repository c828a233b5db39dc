package actors

import (
	"context"
	"sync"

	"go.uber.org/atomic"
)

const DefaultMailboxSize = 64

// MailboxHandler runs one operation. A mailbox never calls it concurrently
// with itself.
type MailboxHandler func(ctx context.Context, message interface{}) (interface{}, error)

type operationResult struct {
	value interface{}
	err   error
}

type workItem struct {
	ctx     context.Context
	message interface{}
	reply   chan operationResult
}

// Mailbox accepts work from any number of goroutines and runs it one item at
// a time on a single goroutine. No ordering is promised between concurrent
// submitters.
type Mailbox struct {
	items     chan workItem
	stopping  chan struct{}
	done      chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once
	processed atomic.Uint64
}

func NewMailbox(size int) *Mailbox {
	if size <= 0 {
		size = DefaultMailboxSize
	}
	return &Mailbox{
		items:    make(chan workItem, size),
		stopping: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (m *Mailbox) Start(handler MailboxHandler) {
	m.startOnce.Do(func() {
		go m.loop(handler)
	})
}

func (m *Mailbox) loop(handler MailboxHandler) {
	defer close(m.done)
	for {
		// A pending stop wins over queued items.
		select {
		case <-m.stopping:
			return
		default:
		}

		select {
		case item := <-m.items:
			m.run(handler, item)
		case <-m.stopping:
			return
		}
	}
}

func (m *Mailbox) run(handler MailboxHandler, item workItem) {
	// The submitter stopped waiting before this item's turn came up.
	if err := item.ctx.Err(); err != nil {
		item.reply <- operationResult{err: err}
		return
	}
	value, err := handler(item.ctx, item.message)
	m.processed.Inc()
	item.reply <- operationResult{value: value, err: err}
}

// Submit enqueues message and waits for its result. It returns
// ErrActivationStopped if the mailbox stops before the item has run.
func (m *Mailbox) Submit(
	ctx context.Context,
	message interface{},
) (interface{}, error) {
	item := workItem{
		ctx:     ctx,
		message: message,
		reply:   make(chan operationResult, 1),
	}

	select {
	case <-m.stopping:
		return nil, ErrActivationStopped
	default:
	}

	select {
	case m.items <- item:
	case <-m.stopping:
		return nil, ErrActivationStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case result := <-item.reply:
		return result.value, result.err
	case <-m.done:
		select {
		case result := <-item.reply:
			return result.value, result.err
		default:
			return nil, ErrActivationStopped
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Stop ends the consumer goroutine after the current item and waits for it.
// Items still queued are failed with ErrActivationStopped.
func (m *Mailbox) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopping)
	})
	m.startOnce.Do(func() {
		close(m.done)
	})
	<-m.done
}

func (m *Mailbox) Len() int {
	return len(m.items)
}

func (m *Mailbox) Processed() uint64 {
	return m.processed.Load()
}
