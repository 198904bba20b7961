package log

import (
	"strings"
	"testing"
)

func TestMemoryLoggerAssignsSequence(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewBattleStartEvent("A", "B"))
	l.Log(NewFastAttackEvent(1, 0, "Jab", 3))
	l.Log(NewFastAttackEvent(1, 1, "Jab", 3))

	events := l.Events()
	if len(events) != 3 {
		t.Fatalf("logged %d events, want 3", len(events))
	}
	for i, e := range events {
		if e.Seq != i+1 {
			t.Errorf("event %d has seq %d", i, e.Seq)
		}
	}

	if got := len(l.EventsOfType(EventFastAttack)); got != 2 {
		t.Errorf("fast attack events = %d, want 2", got)
	}
	if l.LastEvent().Actor != 1 {
		t.Errorf("last event actor = %d, want 1", l.LastEvent().Actor)
	}
}

func TestTextLoggerWritesFormattedLines(t *testing.T) {
	var sb strings.Builder
	l := NewTextLogger(&sb)
	l.Log(NewChargedAttackEvent(7, 0, "Mega Blast", 64, false))
	l.Log(NewShieldBrokenEvent(7, 1, 1))

	out := sb.String()
	if !strings.Contains(out, "Mega Blast") {
		t.Errorf("output missing move name:\n%s", out)
	}
	if !strings.Contains(out, "T7") {
		t.Errorf("output missing turn marker:\n%s", out)
	}
	if got := len(l.Events()); got != 2 {
		t.Errorf("text logger retained %d events, want 2", got)
	}
}

func TestFormatAll(t *testing.T) {
	events := []TimelineEvent{
		NewBattleStartEvent("A", "B"),
		NewWinEvent(10, 0, "A wins by knockout"),
	}
	out := FormatAll(events)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("formatted %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[1], "A wins by knockout") {
		t.Errorf("missing result line:\n%s", out)
	}
}
