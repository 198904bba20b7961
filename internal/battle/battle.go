// Package battle implements a deterministic, turn-based PvP combat
// simulation: energy economy, shields, stat stages, type effectiveness and
// the per-turn decision engine driving both sides.
package battle

import (
	"fmt"
	"math/rand"

	"github.com/bitcloud2/pvpoke-sub001/internal/log"
)

const (
	DefaultShields = 2
	// DefaultMaxTurns is a four-minute battle timer at 500ms per turn.
	DefaultMaxTurns = 480
	MaxRating       = 1000
)

// Config holds configuration for one battle simulation.
type Config struct {
	Shields  [2]int // starting shields per side
	MaxTurns int    // turn cap; 0 means DefaultMaxTurns
	Seed     int64  // RNG seed; 0 is remapped to a fixed seed
	Policies [2]DecisionPolicy
	Timeline bool            // record timeline events into the result
	Logger   log.EventLogger // optional; implies Timeline
}

// DefaultConfig returns the standard ruleset: two shields per side and the
// full battle timer.
func DefaultConfig() Config {
	return Config{
		Shields:  [2]int{DefaultShields, DefaultShields},
		MaxTurns: DefaultMaxTurns,
	}
}

// Result is the immutable outcome of one simulation.
type Result struct {
	Winner          int    `json:"winner"` // 0, 1, or -1 for a draw
	Ratings         [2]int `json:"ratings"`
	HP              [2]int `json:"hp"`
	Turns           int    `json:"turns"`
	TimeRemainingMs int    `json:"timeRemainingMs"`
	Description     string `json:"description"`

	Timeline []log.TimelineEvent `json:"timeline,omitempty"`
}

// Battle drives two combatants through discrete turns to a terminal state.
// A battle owns its combatants exclusively while running; independent
// battles share nothing, so bulk work can run them in parallel freely.
type Battle struct {
	Pokemon [2]*Pokemon

	cfg    Config
	rng    *rand.Rand
	logger log.EventLogger

	turn   int
	over   bool
	winner int
}

// New validates the configuration, assigns shields and resets both
// combatants for a fresh simulation.
func New(cfg Config, p0, p1 *Pokemon) (*Battle, error) {
	if p0 == nil || p1 == nil {
		return nil, fmt.Errorf("battle requires two combatants")
	}
	if cfg.MaxTurns == 0 {
		cfg.MaxTurns = DefaultMaxTurns
	}
	if cfg.MaxTurns < 0 {
		return nil, fmt.Errorf("max turns %d must be positive", cfg.MaxTurns)
	}
	for i, s := range cfg.Shields {
		if s < 0 {
			return nil, fmt.Errorf("side %d shield count %d is negative", i, s)
		}
	}

	logger := cfg.Logger
	if logger == nil && cfg.Timeline {
		logger = log.NewMemoryLogger()
	}

	b := &Battle{
		Pokemon: [2]*Pokemon{p0, p1},
		cfg:     cfg,
		rng:     NewRNG(cfg.Seed),
		logger:  logger,
		winner:  -1,
	}
	for i, p := range b.Pokemon {
		p.Reset()
		p.Shields = cfg.Shields[i]
	}
	return b, nil
}

func (b *Battle) log(e log.TimelineEvent) {
	if b.logger != nil {
		b.logger.Log(e)
	}
}

// Run simulates the battle to a terminal state. Every simulation produces a
// result: faints and timer expiry are both normal terminals.
func (b *Battle) Run() *Result {
	b.log(log.NewBattleStartEvent(b.Pokemon[0].Species, b.Pokemon[1].Species))

	for b.turn = 1; b.turn <= b.cfg.MaxTurns && !b.over; b.turn++ {
		var acts [2]*Action
		for i := range b.Pokemon {
			if b.Pokemon[i].Cooldown <= 0 {
				a := b.decideAction(i)
				acts[i] = &a
			}
		}
		for _, i := range b.actionOrder(acts) {
			if b.over {
				break
			}
			b.apply(*acts[i])
		}
		for i, p := range b.Pokemon {
			if acts[i] == nil {
				p.Cooldown -= TurnMs
				if p.Cooldown < 0 {
					p.Cooldown = 0
				}
			}
		}
	}

	elapsed := b.turn - 1
	ratings := [2]int{b.rating(0), b.rating(1)}

	if !b.over {
		b.log(log.NewTimeUpEvent(elapsed))
		// Timer expiry: the better-rated side takes the win.
		switch {
		case ratings[0] > ratings[1]:
			b.winner = 0
		case ratings[1] > ratings[0]:
			b.winner = 1
		default:
			b.winner = -1
		}
	}

	desc := "draw"
	if b.winner >= 0 {
		how := "by knockout"
		if !b.over {
			how = "on time"
		}
		desc = fmt.Sprintf("%s wins %s", b.Pokemon[b.winner].Species, how)
	}
	b.log(log.NewWinEvent(elapsed, b.winner, desc))

	res := &Result{
		Winner:          b.winner,
		Ratings:         ratings,
		HP:              [2]int{b.Pokemon[0].HP, b.Pokemon[1].HP},
		Turns:           elapsed,
		TimeRemainingMs: (b.cfg.MaxTurns - elapsed) * TurnMs,
		Description:     desc,
	}
	if b.logger != nil {
		res.Timeline = b.logger.Events()
	}
	return res
}

// actionOrder resolves priority when both sides act on the same turn: the
// higher effective attack moves first, ties broken by the battle RNG.
func (b *Battle) actionOrder(acts [2]*Action) []int {
	switch {
	case acts[0] == nil && acts[1] == nil:
		return nil
	case acts[1] == nil:
		return []int{0}
	case acts[0] == nil:
		return []int{1}
	}
	a0 := b.Pokemon[0].EffectiveAttack()
	a1 := b.Pokemon[1].EffectiveAttack()
	if a0 > a1 {
		return []int{0, 1}
	}
	if a1 > a0 {
		return []int{1, 0}
	}
	if b.rng.Intn(2) == 0 {
		return []int{0, 1}
	}
	return []int{1, 0}
}

// apply resolves one chosen action: damage, energy, shields and buffs.
func (b *Battle) apply(a Action) {
	p := b.Pokemon[a.Actor]
	opp := b.Pokemon[1-a.Actor]

	switch a.Type {
	case ActionWait:
		return

	case ActionFast:
		m := p.FastMove
		dmg := FastDamage(p, opp)
		opp.TakeDamage(dmg)
		p.GainEnergy(m.Energy)
		p.Cooldown = m.Cooldown() - TurnMs
		if p.Cooldown < 0 {
			p.Cooldown = 0
		}
		b.log(log.NewFastAttackEvent(b.turn, a.Actor, m.Name, dmg))

	case ActionCharged:
		m := a.Move
		if m == nil || p.Energy < m.Energy {
			// A stale charged selection degrades to the fast move,
			// which every combatant has.
			b.apply(Action{Type: ActionFast, Actor: a.Actor})
			return
		}
		p.Energy -= m.Energy

		dmg := ChargedDamage(p, opp, m)
		shielded := false
		if opp.Shields > 0 {
			if sd := DecideShield(b.rng, p, opp, m); sd.Value {
				shielded = true
				dmg = ShieldedDamage
				opp.Shields--
			}
		}
		opp.TakeDamage(dmg)
		b.log(log.NewChargedAttackEvent(b.turn, a.Actor, m.Name, dmg, shielded))
		if shielded {
			b.log(log.NewShieldBrokenEvent(b.turn, 1-a.Actor, opp.Shields))
		}

		if buff := m.Buff; buff != nil && buff.Chance > 0 {
			triggered := buff.Chance >= 1 || b.rng.Float64() < buff.Chance
			if triggered {
				target := p
				if buff.Target == BuffOpponent {
					target = opp
				}
				target.ApplyStages(buff.AttackStages, buff.DefenseStages)
				b.log(log.NewBuffAppliedEvent(b.turn, a.Actor, m.Name, target.Species,
					buff.AttackStages, buff.DefenseStages))
			}
		}
	}

	if opp.Fainted() {
		b.over = true
		b.winner = a.Actor
		b.log(log.NewFaintEvent(b.turn, 1-a.Actor))
	}
}

// rating folds remaining health and damage dealt into a [0, 1000] score
// where 500 represents an even trade.
func (b *Battle) rating(side int) int {
	me := b.Pokemon[side]
	opp := b.Pokemon[1-side]
	health := float64(me.HP) / float64(me.MaxHP)
	dealt := float64(opp.MaxHP-opp.HP) / float64(opp.MaxHP)
	r := int(500 * (health + dealt))
	if r < 0 {
		r = 0
	}
	if r > MaxRating {
		r = MaxRating
	}
	return r
}
