package battle

import (
	"testing"

	"github.com/bitcloud2/pvpoke-sub001/internal/typechart"
)

func TestFastDamageNeutral(t *testing.T) {
	atk := newBruiser(t)
	def := newBruiser(t)
	// 0.5 * 4 * (200/150) = 2.67, floored plus one.
	if got := FastDamage(atk, def); got != 3 {
		t.Errorf("neutral fast damage = %d, want 3", got)
	}
}

func TestDamageAppliesStab(t *testing.T) {
	tmpl := bruiserTemplate()
	tmpl.FastMove = &FastMove{
		ID: "SWIFT_STRIKE", Name: "Swift Strike",
		Type: typechart.TypeFighting, Power: 4, Energy: 3, Turns: 1,
	}
	atk := mustPokemon(t, tmpl)
	def := newBruiser(t)
	// Same as neutral but multiplied by the 1.2 same-type bonus: 3.2.
	if got := FastDamage(atk, def); got != 4 {
		t.Errorf("stab fast damage = %d, want 4", got)
	}
}

func TestDamageAppliesEffectiveness(t *testing.T) {
	atk := newBruiser(t)

	flyer := bruiserTemplate()
	flyer.Species = "Flyer"
	flyer.Types = [2]typechart.Type{typechart.TypeFlying, typechart.TypeNone}
	def := mustPokemon(t, flyer)

	// Ice vs flying is super effective: 0.5 * 95 * (200/150) * 1.6 = 101.3.
	if got := ChargedDamage(atk, def, megaBlast()); got != 102 {
		t.Errorf("super effective charged damage = %d, want 102", got)
	}
	// Neutral baseline: 0.5 * 95 * (200/150) = 63.3.
	neutral := newBruiser(t)
	if got := ChargedDamage(atk, neutral, megaBlast()); got != 64 {
		t.Errorf("neutral charged damage = %d, want 64", got)
	}
}

func TestDamageAppliesStatStages(t *testing.T) {
	atk := newBruiser(t)
	def := newBruiser(t)

	atk.AtkStage = 2 // doubles attack
	if got := FastDamage(atk, def); got != 6 {
		t.Errorf("+2 attack fast damage = %d, want 6", got)
	}

	atk.AtkStage = -2 // halves attack
	if got := FastDamage(atk, def); got != 2 {
		t.Errorf("-2 attack fast damage = %d, want 2", got)
	}

	atk.AtkStage = 0
	def.DefStage = -2 // halved defense doubles the ratio
	if got := FastDamage(atk, def); got != 6 {
		t.Errorf("-2 defense fast damage = %d, want 6", got)
	}
}

func TestDamageFloorsAtOne(t *testing.T) {
	weak := bruiserTemplate()
	weak.Species = "Weakling"
	weak.Attack = 10
	weak.FastMove = &FastMove{ID: "NUDGE", Name: "Nudge", Type: typechart.TypeNormal, Power: 1, Energy: 2, Turns: 1}
	atk := mustPokemon(t, weak)

	tank := bruiserTemplate()
	tank.Species = "Tank"
	tank.Defense = 300
	def := mustPokemon(t, tank)

	if got := FastDamage(atk, def); got != 1 {
		t.Errorf("minimal fast damage = %d, want 1", got)
	}
}
