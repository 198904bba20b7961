package battle

import "github.com/bitcloud2/pvpoke-sub001/internal/typechart"

// TurnMs is the duration of one discrete battle turn in milliseconds.
const TurnMs = 500

// FastMove is an immutable fast attack template, shared across battles.
type FastMove struct {
	ID     string
	Name   string
	Type   typechart.Type
	Power  int
	Energy int // energy gained per use
	Turns  int // duration in turns; cooldown = Turns * TurnMs
}

// Cooldown returns the move duration in milliseconds.
func (m *FastMove) Cooldown() int {
	return m.Turns * TurnMs
}

// DPS returns damage per second, or 0 for a zero-duration move.
func (m *FastMove) DPS() float64 {
	cd := m.Cooldown()
	if cd == 0 {
		return 0
	}
	return float64(m.Power) / (float64(cd) / 1000)
}

// EPS returns energy gained per second, or 0 for a zero-duration move.
func (m *FastMove) EPS() float64 {
	cd := m.Cooldown()
	if cd == 0 {
		return 0
	}
	return float64(m.Energy) / (float64(cd) / 1000)
}

// BuffTarget selects whose stat stages a buff effect modifies.
type BuffTarget int

const (
	BuffSelf BuffTarget = iota
	BuffOpponent
)

func (t BuffTarget) String() string {
	if t == BuffSelf {
		return "self"
	}
	return "opponent"
}

// Buff is an optional stat-stage effect attached to a charged move.
// Stage deltas are applied to the target's attack and defense stages,
// subject to the [-4, 4] clamp, with the given trigger probability.
type Buff struct {
	AttackStages  int
	DefenseStages int
	Chance        float64 // trigger probability in [0, 1]
	Target        BuffTarget
}

// ChargedMove is an immutable charged attack template, shared across battles.
type ChargedMove struct {
	ID     string
	Name   string
	Type   typechart.Type
	Power  int
	Energy int // energy cost
	Buff   *Buff
}

// DPE returns damage per energy, or 0 for a zero-cost move.
func (m *ChargedMove) DPE() float64 {
	if m.Energy == 0 {
		return 0
	}
	return float64(m.Power) / float64(m.Energy)
}

// SelfDebuffing reports whether this move lowers one of the user's own
// stages. A zero trigger probability means the buff never fires, so the
// move is not classified.
func (m *ChargedMove) SelfDebuffing() bool {
	b := m.Buff
	if b == nil || b.Chance <= 0 || b.Target != BuffSelf {
		return false
	}
	return b.AttackStages < 0 || b.DefenseStages < 0
}

// SelfBuffing reports whether this move raises one of the user's own stages.
func (m *ChargedMove) SelfBuffing() bool {
	b := m.Buff
	if b == nil || b.Chance <= 0 || b.Target != BuffSelf {
		return false
	}
	return b.AttackStages > 0 || b.DefenseStages > 0
}

// OpponentDebuffing reports whether this move lowers one of the opponent's stages.
func (m *ChargedMove) OpponentDebuffing() bool {
	b := m.Buff
	if b == nil || b.Chance <= 0 || b.Target != BuffOpponent {
		return false
	}
	return b.AttackStages < 0 || b.DefenseStages < 0
}
