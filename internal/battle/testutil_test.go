package battle

import (
	"testing"

	"github.com/bitcloud2/pvpoke-sub001/internal/typechart"
)

// Move fixtures used across the package tests. Powers are chosen so damage
// values stay clear of floor boundaries.

func quickJab() *FastMove {
	return &FastMove{ID: "QUICK_JAB", Name: "Quick Jab", Type: typechart.TypeNormal, Power: 4, Energy: 3, Turns: 1}
}

func chargeBolt() *FastMove {
	// High energy gain, low damage.
	return &FastMove{ID: "CHARGE_BOLT", Name: "Charge Bolt", Type: typechart.TypeNormal, Power: 1, Energy: 5, Turns: 1}
}

func crunchBite() *ChargedMove {
	return &ChargedMove{ID: "CRUNCH_BITE", Name: "Crunch Bite", Type: typechart.TypeIce, Power: 50, Energy: 35}
}

func megaBlast() *ChargedMove {
	return &ChargedMove{ID: "MEGA_BLAST", Name: "Mega Blast", Type: typechart.TypeIce, Power: 95, Energy: 55}
}

func ragingSlam() *ChargedMove {
	// Guaranteed self attack buff, Power-Up Punch shape.
	return &ChargedMove{
		ID: "RAGING_SLAM", Name: "Raging Slam", Type: typechart.TypeNormal, Power: 20, Energy: 35,
		Buff: &Buff{AttackStages: 1, Chance: 1, Target: BuffSelf},
	}
}

func recklessRush() *ChargedMove {
	// Guaranteed self defense drop, Wild Charge shape.
	return &ChargedMove{
		ID: "RECKLESS_RUSH", Name: "Reckless Rush", Type: typechart.TypeNormal, Power: 85, Energy: 40,
		Buff: &Buff{DefenseStages: -2, Chance: 1, Target: BuffSelf},
	}
}

// mustPokemon builds a combatant from a template and fails the test on a
// validation error.
func mustPokemon(t *testing.T, tmpl Template) *Pokemon {
	t.Helper()
	p, err := NewPokemon(tmpl)
	if err != nil {
		t.Fatalf("NewPokemon(%s): %v", tmpl.Species, err)
	}
	return p
}

// bruiserTemplate is the standard level-20 test combatant: 200/150/180 base
// stats with zero IVs, so attack/defense ratios stay exact.
func bruiserTemplate() Template {
	return Template{
		Species: "Bruiser",
		Types:   [2]typechart.Type{typechart.TypeFighting, typechart.TypeNone},
		Attack:  200, Defense: 150, Stamina: 180,
		Level:    20,
		FastMove: quickJab(),
		ChargedMoves: []*ChargedMove{
			crunchBite(),
			megaBlast(),
		},
	}
}

func newBruiser(t *testing.T) *Pokemon {
	return mustPokemon(t, bruiserTemplate())
}

// mustBattle wires two combatants into a battle and fails on config errors.
func mustBattle(t *testing.T, cfg Config, p0, p1 *Pokemon) *Battle {
	t.Helper()
	b, err := New(cfg, p0, p1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b
}
