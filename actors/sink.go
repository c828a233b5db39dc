package actors

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-logr/logr"
)

// Sink receives the side effects actors report, such as whispered greetings
// and todo list changes. Implementations must be safe for concurrent use.
type Sink interface {
	Observe(source Identity, line string)
}

type SinkFunc func(source Identity, line string)

func (f SinkFunc) Observe(source Identity, line string) {
	f(source, line)
}

var discardSink = SinkFunc(func(Identity, string) {})

type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (ws *WriterSink) Observe(_ Identity, line string) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	fmt.Fprintln(ws.w, line)
}

type LogSink struct {
	Logger logr.Logger
}

func (ls LogSink) Observe(source Identity, line string) {
	ls.Logger.Info(line, "actor", source.String())
}

type Observation struct {
	Source Identity
	Line   string
}

// ChannelSink forwards every observation to Output and blocks until it is
// received.
type ChannelSink struct {
	Output chan Observation
}

func (cs *ChannelSink) Observe(source Identity, line string) {
	cs.Output <- Observation{
		Source: source,
		Line:   line,
	}
}
