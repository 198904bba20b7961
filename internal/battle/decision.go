package battle

import "math/rand"

// --- Actions ---

type ActionType int

const (
	ActionFast ActionType = iota
	ActionCharged
	ActionWait
)

func (a ActionType) String() string {
	switch a {
	case ActionFast:
		return "Fast Attack"
	case ActionCharged:
		return "Charged Attack"
	case ActionWait:
		return "Wait"
	default:
		return "Unknown"
	}
}

// Action is one side's chosen action for a decision point.
type Action struct {
	Type  ActionType
	Actor int
	Move  *ChargedMove // set for ActionCharged
}

// DecisionPolicy selects how a side picks its per-turn action.
type DecisionPolicy int

const (
	// PolicySmart runs the full lookahead, bait and deferral logic.
	PolicySmart DecisionPolicy = iota
	// PolicyRandom weighs every available option uniformly, as a
	// baseline control.
	PolicyRandom
)

func (p DecisionPolicy) String() string {
	if p == PolicyRandom {
		return "random"
	}
	return "smart"
}

// --- Weighted decision selection ---

// DecisionOption is one candidate in a weighted option set. A nil Move
// stands for "use the fast move".
type DecisionOption struct {
	Name   string
	Weight int
	Move   *ChargedMove
}

// ChooseOption draws from the option set proportionally to weight. A zero
// total weight deterministically returns the first option so a decision
// point can never stall.
func ChooseOption(rng *rand.Rand, options []DecisionOption) DecisionOption {
	if len(options) == 0 {
		return DecisionOption{}
	}
	total := 0
	for _, o := range options {
		if o.Weight > 0 {
			total += o.Weight
		}
	}
	if total <= 0 {
		return options[0]
	}
	roll := rng.Intn(total)
	sum := 0
	for _, o := range options {
		if o.Weight <= 0 {
			continue
		}
		sum += o.Weight
		if roll < sum {
			return o
		}
	}
	return options[len(options)-1]
}

// NewRNG returns a seeded random source for one battle. Seed 0 is remapped
// so an unset seed still produces a usable generator.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}

// decideAction is the top-level per-side, per-turn policy.
func (b *Battle) decideAction(actor int) Action {
	p := b.Pokemon[actor]
	opp := b.Pokemon[1-actor]

	if b.cfg.Policies[actor] == PolicyRandom {
		return b.randomAction(actor)
	}

	// An immediately lethal charged move bypasses baiting and deferral.
	// A held shield caps the hit at chip damage, so the shortcut only
	// applies when the defender cannot block it meaningfully.
	if opp.Shields == 0 || opp.HP <= ShieldedDamage {
		var lethal *ChargedMove
		for _, m := range p.ChargedMoves {
			if p.Energy < m.Energy {
				continue
			}
			if ChargedDamage(p, opp, m) < opp.HP {
				continue
			}
			if lethal == nil || m.DPE() > lethal.DPE() {
				lethal = m
			}
		}
		if lethal != nil {
			return Action{Type: ActionCharged, Actor: actor, Move: lethal}
		}
	}

	options := b.planChargedMoves(p, opp)
	if len(options) == 0 {
		return Action{Type: ActionFast, Actor: actor}
	}
	chosen := ChooseOption(b.rng, options)
	if chosen.Move == nil {
		return Action{Type: ActionFast, Actor: actor}
	}
	return Action{Type: ActionCharged, Actor: actor, Move: chosen.Move}
}

// randomAction weighs the fast move, every affordable charged move and
// waiting uniformly, ignoring all heuristics.
func (b *Battle) randomAction(actor int) Action {
	p := b.Pokemon[actor]
	options := []DecisionOption{
		{Name: "fast", Weight: 1},
		{Name: "wait", Weight: 1},
	}
	for _, m := range p.ChargedMoves {
		if p.Energy >= m.Energy {
			options = append(options, DecisionOption{Name: m.Name, Weight: 1, Move: m})
		}
	}
	chosen := ChooseOption(b.rng, options)
	switch {
	case chosen.Move != nil:
		return Action{Type: ActionCharged, Actor: actor, Move: chosen.Move}
	case chosen.Name == "wait":
		return Action{Type: ActionWait, Actor: actor}
	default:
		return Action{Type: ActionFast, Actor: actor}
	}
}
