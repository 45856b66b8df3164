package scope

import (
	"testing"

	"github.com/google/uuid"
)

func TestDebug_FormatsWithoutLabel(t *testing.T) {
	t.Parallel()
	var lines []string

	out := Debug(41, To(func(line string) { lines = append(lines, line) }))

	if out != 41 {
		t.Fatalf("expected 41 back from Debug, got: %d", out)
	}
	if len(lines) != 1 || lines[0] != "41" {
		t.Fatalf("expected exactly one line %q, got: %v", "41", lines)
	}
}

func TestDebug_FormatsWithLabel(t *testing.T) {
	t.Parallel()
	var lines []string

	Debug(42, Label("after"), To(func(line string) { lines = append(lines, line) }))

	if len(lines) != 1 || lines[0] != "after: 42" {
		t.Fatalf("expected exactly one line %q, got: %v", "after: 42", lines)
	}
}

func TestDebug_Idempotent(t *testing.T) {
	t.Parallel()
	rec := &Recorder{}

	out := Debug(Debug(7, Observe(rec.Observe)), Observe(rec.Observe))

	if out != 7 {
		t.Fatalf("expected 7 to pass through both calls, got: %d", out)
	}
	lines := rec.Lines()
	if len(lines) != 2 || lines[0] != "7" || lines[1] != "7" {
		t.Fatalf("expected one line per call, got: %v", lines)
	}
}

func TestDebug_MultipleSinks(t *testing.T) {
	t.Parallel()
	var a, b []string

	Debug("x",
		To(func(line string) { a = append(a, line) }),
		To(func(line string) { b = append(b, line) }))

	if len(a) != 1 || len(b) != 1 || a[0] != "x" || b[0] != "x" {
		t.Fatalf("expected both sinks to receive %q once, got: %v and %v", "x", a, b)
	}
}

func TestDebug_RecorderEvents(t *testing.T) {
	t.Parallel()
	rec := &Recorder{}

	Debug(1, Label("first"), Observe(rec.Observe))
	Debug(2, Observe(rec.Observe))

	events := rec.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got: %d", len(events))
	}
	if events[0].Line() != "first: 1" || events[1].Line() != "2" {
		t.Fatalf("unexpected lines: %q, %q", events[0].Line(), events[1].Line())
	}
	if events[0].Label() != "first" || events[0].Text() != "1" {
		t.Fatalf("unexpected event fields: %+v", events[0])
	}
	for _, e := range events {
		if e.Id() == uuid.Nil {
			t.Fatalf("expected a stamped id on every event")
		}
		if e.CreatedAt().IsZero() || e.CreatedAt().Location() != e.CreatedAt().UTC().Location() {
			t.Fatalf("expected a UTC creation time, got: %v", e.CreatedAt())
		}
	}
	if events[0].Id() == events[1].Id() {
		t.Fatalf("expected distinct ids per emission")
	}
}

func TestDebug_StructValue(t *testing.T) {
	t.Parallel()
	type point struct{ X, Y int }
	var lines []string

	out := Debug(point{X: 1, Y: 2}, Label("p"), To(func(line string) { lines = append(lines, line) }))

	if out != (point{X: 1, Y: 2}) {
		t.Fatalf("expected the value back unchanged, got: %+v", out)
	}
	if len(lines) != 1 || lines[0] != "p: {1 2}" {
		t.Fatalf("expected %q, got: %v", "p: {1 2}", lines)
	}
}

func TestEvent_Line(t *testing.T) {
	t.Parallel()
	e := newEvent("", "41")
	if e.Line() != "41" {
		t.Fatalf("expected bare text without label, got: %q", e.Line())
	}

	e = newEvent("after", "42")
	if e.Line() != "after: 42" {
		t.Fatalf("expected labeled line, got: %q", e.Line())
	}
}
