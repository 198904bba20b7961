// Package typechart implements the static type effectiveness chart.
//
// Multipliers follow the flattened PvP model: a matched type contributes one
// of 1.6 (super effective), 0.625 (resisted) or 0.390625 (doubly resisted or
// immune). Dual defending types combine multiplicatively.
package typechart

import (
	"fmt"
	"strings"
)

type Type int

const (
	TypeNone Type = iota
	TypeNormal
	TypeFire
	TypeWater
	TypeElectric
	TypeGrass
	TypeIce
	TypeFighting
	TypePoison
	TypeGround
	TypeFlying
	TypePsychic
	TypeBug
	TypeRock
	TypeGhost
	TypeDragon
	TypeDark
	TypeSteel
	TypeFairy
)

// TypeCount is the number of real types (TypeNone excluded).
const TypeCount = 18

const (
	SuperEffective = 1.6
	Resisted       = 0.625
	Immune         = 0.390625
	Neutral        = 1.0
)

func (t Type) String() string {
	switch t {
	case TypeNormal:
		return "normal"
	case TypeFire:
		return "fire"
	case TypeWater:
		return "water"
	case TypeElectric:
		return "electric"
	case TypeGrass:
		return "grass"
	case TypeIce:
		return "ice"
	case TypeFighting:
		return "fighting"
	case TypePoison:
		return "poison"
	case TypeGround:
		return "ground"
	case TypeFlying:
		return "flying"
	case TypePsychic:
		return "psychic"
	case TypeBug:
		return "bug"
	case TypeRock:
		return "rock"
	case TypeGhost:
		return "ghost"
	case TypeDragon:
		return "dragon"
	case TypeDark:
		return "dark"
	case TypeSteel:
		return "steel"
	case TypeFairy:
		return "fairy"
	default:
		return "none"
	}
}

// ParseType converts a lowercase type name to a Type. Empty string and "none"
// map to TypeNone, which is a valid absent second type.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return TypeNone, nil
	case "normal":
		return TypeNormal, nil
	case "fire":
		return TypeFire, nil
	case "water":
		return TypeWater, nil
	case "electric":
		return TypeElectric, nil
	case "grass":
		return TypeGrass, nil
	case "ice":
		return TypeIce, nil
	case "fighting":
		return TypeFighting, nil
	case "poison":
		return TypePoison, nil
	case "ground":
		return TypeGround, nil
	case "flying":
		return TypeFlying, nil
	case "psychic":
		return TypePsychic, nil
	case "bug":
		return TypeBug, nil
	case "rock":
		return TypeRock, nil
	case "ghost":
		return TypeGhost, nil
	case "dragon":
		return TypeDragon, nil
	case "dark":
		return TypeDark, nil
	case "steel":
		return TypeSteel, nil
	case "fairy":
		return TypeFairy, nil
	default:
		return TypeNone, fmt.Errorf("unknown type %q", s)
	}
}

// AllTypes returns the 18 attacking types in declaration order.
func AllTypes() []Type {
	types := make([]Type, 0, TypeCount)
	for t := TypeNormal; t <= TypeFairy; t++ {
		types = append(types, t)
	}
	return types
}

// chartRow describes one attacking type's non-neutral matchups.
type chartRow struct {
	super    []Type
	resisted []Type
	immune   []Type
}

var chart = map[Type]chartRow{
	TypeNormal: {
		resisted: []Type{TypeRock, TypeSteel},
		immune:   []Type{TypeGhost},
	},
	TypeFire: {
		super:    []Type{TypeGrass, TypeIce, TypeBug, TypeSteel},
		resisted: []Type{TypeFire, TypeWater, TypeRock, TypeDragon},
	},
	TypeWater: {
		super:    []Type{TypeFire, TypeGround, TypeRock},
		resisted: []Type{TypeWater, TypeGrass, TypeDragon},
	},
	TypeElectric: {
		super:    []Type{TypeWater, TypeFlying},
		resisted: []Type{TypeElectric, TypeGrass, TypeDragon},
		immune:   []Type{TypeGround},
	},
	TypeGrass: {
		super:    []Type{TypeWater, TypeGround, TypeRock},
		resisted: []Type{TypeFire, TypeGrass, TypePoison, TypeFlying, TypeBug, TypeDragon, TypeSteel},
	},
	TypeIce: {
		super:    []Type{TypeGrass, TypeGround, TypeFlying, TypeDragon},
		resisted: []Type{TypeFire, TypeWater, TypeIce, TypeSteel},
	},
	TypeFighting: {
		super:    []Type{TypeNormal, TypeIce, TypeRock, TypeDark, TypeSteel},
		resisted: []Type{TypePoison, TypeFlying, TypePsychic, TypeBug, TypeFairy},
		immune:   []Type{TypeGhost},
	},
	TypePoison: {
		super:    []Type{TypeGrass, TypeFairy},
		resisted: []Type{TypePoison, TypeGround, TypeRock, TypeGhost},
		immune:   []Type{TypeSteel},
	},
	TypeGround: {
		super:    []Type{TypeFire, TypeElectric, TypePoison, TypeRock, TypeSteel},
		resisted: []Type{TypeGrass, TypeBug},
		immune:   []Type{TypeFlying},
	},
	TypeFlying: {
		super:    []Type{TypeGrass, TypeFighting, TypeBug},
		resisted: []Type{TypeElectric, TypeRock, TypeSteel},
	},
	TypePsychic: {
		super:    []Type{TypeFighting, TypePoison},
		resisted: []Type{TypePsychic, TypeSteel},
		immune:   []Type{TypeDark},
	},
	TypeBug: {
		super:    []Type{TypeGrass, TypePsychic, TypeDark},
		resisted: []Type{TypeFire, TypeFighting, TypePoison, TypeFlying, TypeGhost, TypeSteel, TypeFairy},
	},
	TypeRock: {
		super:    []Type{TypeFire, TypeIce, TypeFlying, TypeBug},
		resisted: []Type{TypeFighting, TypeGround, TypeSteel},
	},
	TypeGhost: {
		super:    []Type{TypePsychic, TypeGhost},
		resisted: []Type{TypeDark},
		immune:   []Type{TypeNormal},
	},
	TypeDragon: {
		super:    []Type{TypeDragon},
		resisted: []Type{TypeSteel},
		immune:   []Type{TypeFairy},
	},
	TypeDark: {
		super:    []Type{TypePsychic, TypeGhost},
		resisted: []Type{TypeFighting, TypeDark, TypeFairy},
	},
	TypeSteel: {
		super:    []Type{TypeIce, TypeRock, TypeFairy},
		resisted: []Type{TypeFire, TypeWater, TypeElectric, TypeSteel},
	},
	TypeFairy: {
		super:    []Type{TypeFighting, TypeDragon, TypeDark},
		resisted: []Type{TypeFire, TypePoison, TypeSteel},
	},
}

// single returns the multiplier against one defending type.
func single(attacking, defending Type) float64 {
	if defending == TypeNone {
		return Neutral
	}
	row := chart[attacking]
	for _, t := range row.super {
		if t == defending {
			return SuperEffective
		}
	}
	for _, t := range row.resisted {
		if t == defending {
			return Resisted
		}
	}
	for _, t := range row.immune {
		if t == defending {
			return Immune
		}
	}
	return Neutral
}

// Effectiveness returns the combined multiplier of one attacking type
// against a defending type pair. The second defending type may be TypeNone.
func Effectiveness(attacking, defending1, defending2 Type) float64 {
	return single(attacking, defending1) * single(attacking, defending2)
}

// Spread returns every attacking type's effectiveness against the given
// defending type pair in one lookup.
func Spread(defending1, defending2 Type) map[Type]float64 {
	spread := make(map[Type]float64, TypeCount)
	for _, t := range AllTypes() {
		spread[t] = Effectiveness(t, defending1, defending2)
	}
	return spread
}
