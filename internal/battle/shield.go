package battle

import "math/rand"

// ShieldDecision is the outcome of a defender's shield heuristic for one
// incoming charged attack. The weights express confidence, not just the
// boolean: they feed the bait-weighting logic in the move-selection search.
type ShieldDecision struct {
	Value          bool
	ShieldWeight   int
	NoShieldWeight int
}

// WouldShield reports the deterministic lean of the weights, used by the
// search to predict the opponent without consuming randomness.
func (d ShieldDecision) WouldShield() bool {
	return d.ShieldWeight > d.NoShieldWeight
}

// ShieldWeights computes the comparative weights for shielding the given
// charged move, without drawing a decision. A defender out of shields
// always weighs to zero.
func ShieldWeights(attacker, defender *Pokemon, move *ChargedMove) (shield, noShield int) {
	if defender.Shields <= 0 {
		return 0, 1
	}

	dmg := ChargedDamage(attacker, defender, move)
	if dmg >= defender.HP {
		// Lethal without a shield: block unconditionally.
		return 1, 0
	}

	maxPortion := float64(dmg) / float64(defender.MaxHP)
	curPortion := float64(dmg) / float64(defender.HP)

	// Chip damage is never worth a shield.
	if maxPortion < 0.15 {
		return 0, 1
	}

	shield = int(curPortion * 10)
	noShield = int((1 - maxPortion) * 6)
	if shield < 1 {
		shield = 1
	}
	if noShield < 1 {
		noShield = 1
	}
	return shield, noShield
}

// DecideShield resolves whether the defender blocks the incoming charged
// move, drawing the boolean from the comparative weights through the
// injected random source.
func DecideShield(rng *rand.Rand, attacker, defender *Pokemon, move *ChargedMove) ShieldDecision {
	shield, noShield := ShieldWeights(attacker, defender, move)
	d := ShieldDecision{ShieldWeight: shield, NoShieldWeight: noShield}
	if shield == 0 {
		return d
	}
	if noShield == 0 {
		d.Value = true
		return d
	}
	d.Value = rng.Intn(shield+noShield) < shield
	return d
}
