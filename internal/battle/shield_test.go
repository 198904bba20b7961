package battle

import (
	"testing"

	"github.com/bitcloud2/pvpoke-sub001/internal/typechart"
)

func TestShieldWeightsNoShieldsLeft(t *testing.T) {
	atk := newBruiser(t)
	def := newBruiser(t)
	def.Shields = 0

	shield, noShield := ShieldWeights(atk, def, megaBlast())
	if shield != 0 || noShield != 1 {
		t.Errorf("weights without shields = (%d, %d), want (0, 1)", shield, noShield)
	}
	d := DecideShield(NewRNG(1), atk, def, megaBlast())
	if d.Value {
		t.Error("defender without shields must never block")
	}
}

func TestShieldWeightsLethalHit(t *testing.T) {
	atk := newBruiser(t)
	def := newBruiser(t)
	def.Shields = 2
	def.HP = 30 // mega blast hits for 64

	shield, noShield := ShieldWeights(atk, def, megaBlast())
	if shield != 1 || noShield != 0 {
		t.Errorf("weights on a lethal hit = (%d, %d), want (1, 0)", shield, noShield)
	}
	d := DecideShield(NewRNG(1), atk, def, megaBlast())
	if !d.Value {
		t.Error("a lethal hit must always be blocked")
	}
	if !d.WouldShield() {
		t.Error("lethal weights must lean toward shielding")
	}
}

func TestShieldWeightsIgnoreChipDamage(t *testing.T) {
	atk := newBruiser(t)
	def := newBruiser(t)
	def.Shields = 2

	// 14 damage against 107 max HP stays under the chip threshold.
	chip := &ChargedMove{ID: "PEBBLE_TOSS", Name: "Pebble Toss", Type: typechart.TypeIce, Power: 20, Energy: 35}
	shield, noShield := ShieldWeights(atk, def, chip)
	if shield != 0 || noShield != 1 {
		t.Errorf("weights on chip damage = (%d, %d), want (0, 1)", shield, noShield)
	}
}

func TestShieldWeightsScaleWithHealthPressure(t *testing.T) {
	atk := newBruiser(t)
	def := newBruiser(t)
	def.Shields = 2

	// Full health: 64 damage out of 107.
	fullShield, fullNo := ShieldWeights(atk, def, megaBlast())
	if fullShield != 5 || fullNo != 2 {
		t.Errorf("weights at full health = (%d, %d), want (5, 2)", fullShield, fullNo)
	}

	// Same hit at lower health weighs heavier toward shielding.
	def.HP = 70
	hurtShield, hurtNo := ShieldWeights(atk, def, megaBlast())
	if hurtShield <= fullShield {
		t.Errorf("shield weight at 70 HP = %d, want more than %d", hurtShield, fullShield)
	}
	if hurtNo != fullNo {
		t.Errorf("no-shield weight = %d, want unchanged %d", hurtNo, fullNo)
	}
}

func TestDecideShieldIsSeedDeterministic(t *testing.T) {
	atk := newBruiser(t)
	def := newBruiser(t)
	def.Shields = 2

	first := DecideShield(NewRNG(7), atk, def, megaBlast())
	second := DecideShield(NewRNG(7), atk, def, megaBlast())
	if first != second {
		t.Errorf("same seed produced %+v then %+v", first, second)
	}
}
