package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for recording timeline events.
type EventLogger interface {
	Log(event TimelineEvent)
	Events() []TimelineEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []TimelineEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event TimelineEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []TimelineEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []TimelineEvent {
	var result []TimelineEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() TimelineEvent {
	if len(l.events) == 0 {
		return TimelineEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event TimelineEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// sideName returns "P1" or "P2" for display.
func sideName(side int) string {
	if side < 0 {
		return "--"
	}
	return fmt.Sprintf("P%d", side+1)
}

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e TimelineEvent) string {
	kind := e.Type.String()
	for len(kind) < 14 {
		kind += " "
	}
	return fmt.Sprintf("T%-3d %s| %s", e.Turn, kind, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []TimelineEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}
