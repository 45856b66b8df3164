package scope

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is a single debug emission, stamped with a unique id and its UTC
// creation time.
type Event struct {
	id        uuid.UUID
	createdAt time.Time
	label     string
	text      string
}

func newEvent(label, text string) Event {
	return Event{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		label:     label,
		text:      text,
	}
}

func (e Event) Id() uuid.UUID {
	return e.id
}

func (e Event) CreatedAt() time.Time {
	return e.createdAt
}

func (e Event) Label() string {
	return e.label
}

func (e Event) Text() string {
	return e.text
}

// Line renders the event as "{label}: {text}", or just "{text}" when no
// label is set.
func (e Event) Line() string {
	if e.label == "" {
		return e.text
	}
	return e.label + ": " + e.text
}

type settings struct {
	label     string
	sinks     []Sink
	observers []func(Event)
}

// Option configures a single Debug call.
type Option func(*settings)

// Label prefixes the emitted line with "l: ".
func Label(l string) Option {
	return func(s *settings) {
		s.label = l
	}
}

// To sends the formatted line to sink instead of standard output.
func To(sink Sink) Option {
	return func(s *settings) {
		s.sinks = append(s.sinks, sink)
	}
}

// Observe sends the full event, id and timestamp included, to fn instead of
// standard output.
func Observe(fn func(Event)) Option {
	return func(s *settings) {
		s.observers = append(s.observers, fn)
	}
}

func stdoutSink(line string) {
	fmt.Fprintln(os.Stdout, line)
}

// Debug formats v with %v, emits exactly one line per configured sink and
// returns v unchanged for further chaining. Without options the line goes to
// standard output.
func Debug[T any](v T, opts ...Option) T {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	e := newEvent(s.label, fmt.Sprintf("%v", v))

	if len(s.sinks) == 0 && len(s.observers) == 0 {
		s.sinks = append(s.sinks, stdoutSink)
	}

	for _, sink := range s.sinks {
		sink(e.Line())
	}
	for _, observe := range s.observers {
		observe(e)
	}

	return v
}

// Recorder collects events in memory so tests can assert on debug output
// without capturing standard output.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Observe appends e to the recorder. Pass it to Debug via the Observe option.
func (r *Recorder) Observe(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Lines returns the formatted lines received so far, in emission order.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := make([]string, 0, len(r.events))
	for _, e := range r.events {
		lines = append(lines, e.Line())
	}
	return lines
}

// Events returns a copy of the recorded events in emission order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}
