package battle

import "github.com/bitcloud2/pvpoke-sub001/internal/typechart"

const (
	// StabMultiplier is the same-type attack bonus.
	StabMultiplier = 1.2
	// ShieldedDamage is the fixed chip damage of a shielded charged attack.
	ShieldedDamage = 1
)

// damage computes a single attack's damage from the raw formula:
// floor(0.5 * power * atk/def * effectiveness * stab) + 1.
func damage(attacker, defender *Pokemon, power int, moveType typechart.Type) int {
	effectiveness := typechart.Effectiveness(moveType, defender.Types[0], defender.Types[1])
	stab := 1.0
	if attacker.HasType(moveType) {
		stab = StabMultiplier
	}
	raw := 0.5 * float64(power) * (attacker.EffectiveAttack() / defender.EffectiveDefense()) * effectiveness * stab
	return int(raw) + 1
}

// FastDamage returns the damage of the attacker's fast move. Fast attacks
// are never shieldable.
func FastDamage(attacker, defender *Pokemon) int {
	return damage(attacker, defender, attacker.FastMove.Power, attacker.FastMove.Type)
}

// ChargedDamage returns the unshielded damage of a charged move.
func ChargedDamage(attacker, defender *Pokemon, move *ChargedMove) int {
	return damage(attacker, defender, move.Power, move.Type)
}
