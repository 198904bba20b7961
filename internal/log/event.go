package log

import "fmt"

// EventType enumerates all observable battle events.
type EventType int

const (
	EventBattleStart EventType = iota
	EventFastAttack
	EventChargedAttack
	EventBuffApplied
	EventShieldBroken
	EventFaint
	EventTimeUp
	EventWin
)

func (e EventType) String() string {
	switch e {
	case EventBattleStart:
		return "BattleStart"
	case EventFastAttack:
		return "FastAttack"
	case EventChargedAttack:
		return "ChargedAttack"
	case EventBuffApplied:
		return "BuffApplied"
	case EventShieldBroken:
		return "ShieldBroken"
	case EventFaint:
		return "Faint"
	case EventTimeUp:
		return "TimeUp"
	case EventWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// TimelineEvent represents a single observable event in a battle.
// Recording is purely observational and never affects the simulation.
type TimelineEvent struct {
	Seq      int       `json:"seq"`            // monotonic sequence number
	Turn     int       `json:"turn"`           // which turn (1-based)
	Actor    int       `json:"actor"`          // acting side (0 or 1, -1 for neutral events)
	Type     EventType `json:"type"`           // event type
	Move     string    `json:"move,omitempty"` // move name (if applicable)
	Damage   int       `json:"damage,omitempty"`
	Shielded bool      `json:"shielded,omitempty"`
	Details  string    `json:"details"` // human-readable detail string
}

// --- Helper constructors for common events ---

func NewBattleStartEvent(name0, name1 string) TimelineEvent {
	return TimelineEvent{
		Actor:   -1,
		Type:    EventBattleStart,
		Details: fmt.Sprintf("=== %s vs %s ===", name0, name1),
	}
}

func NewFastAttackEvent(turn, actor int, move string, damage int) TimelineEvent {
	return TimelineEvent{
		Turn:    turn,
		Actor:   actor,
		Type:    EventFastAttack,
		Move:    move,
		Damage:  damage,
		Details: fmt.Sprintf("%s uses %s for %d", sideName(actor), move, damage),
	}
}

func NewChargedAttackEvent(turn, actor int, move string, damage int, shielded bool) TimelineEvent {
	details := fmt.Sprintf("%s unleashes %s for %d", sideName(actor), move, damage)
	if shielded {
		details = fmt.Sprintf("%s unleashes %s, shielded (%d)", sideName(actor), move, damage)
	}
	return TimelineEvent{
		Turn:     turn,
		Actor:    actor,
		Type:     EventChargedAttack,
		Move:     move,
		Damage:   damage,
		Shielded: shielded,
		Details:  details,
	}
}

func NewBuffAppliedEvent(turn, actor int, move, target string, atkStages, defStages int) TimelineEvent {
	return TimelineEvent{
		Turn:    turn,
		Actor:   actor,
		Type:    EventBuffApplied,
		Move:    move,
		Details: fmt.Sprintf("%s applies %+d atk / %+d def to %s", move, atkStages, defStages, target),
	}
}

func NewShieldBrokenEvent(turn, actor, remaining int) TimelineEvent {
	return TimelineEvent{
		Turn:    turn,
		Actor:   actor,
		Type:    EventShieldBroken,
		Details: fmt.Sprintf("%s burns a shield (%d left)", sideName(actor), remaining),
	}
}

func NewFaintEvent(turn, actor int) TimelineEvent {
	return TimelineEvent{
		Turn:    turn,
		Actor:   actor,
		Type:    EventFaint,
		Details: fmt.Sprintf("%s faints", sideName(actor)),
	}
}

func NewTimeUpEvent(turn int) TimelineEvent {
	return TimelineEvent{
		Turn:    turn,
		Actor:   -1,
		Type:    EventTimeUp,
		Details: "battle timer expired",
	}
}

func NewWinEvent(turn, winner int, result string) TimelineEvent {
	return TimelineEvent{
		Turn:    turn,
		Actor:   winner,
		Type:    EventWin,
		Details: result,
	}
}
