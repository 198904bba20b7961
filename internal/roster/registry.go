// Package roster supplies combatant templates to the outer surfaces: a
// built-in registry of species and moves plus optional YAML overrides. The
// battle core itself only ever sees fully resolved combatants.
package roster

import (
	"github.com/bitcloud2/pvpoke-sub001/internal/battle"
	"github.com/bitcloud2/pvpoke-sub001/internal/typechart"
)

// --- Fast move constructors ---

func Counter() *battle.FastMove {
	return &battle.FastMove{ID: "COUNTER", Name: "Counter", Type: typechart.TypeFighting, Power: 8, Energy: 7, Turns: 2}
}

func DragonBreath() *battle.FastMove {
	return &battle.FastMove{ID: "DRAGON_BREATH", Name: "Dragon Breath", Type: typechart.TypeDragon, Power: 4, Energy: 3, Turns: 1}
}

func ShadowClaw() *battle.FastMove {
	return &battle.FastMove{ID: "SHADOW_CLAW", Name: "Shadow Claw", Type: typechart.TypeGhost, Power: 6, Energy: 8, Turns: 2}
}

func LockOn() *battle.FastMove {
	return &battle.FastMove{ID: "LOCK_ON", Name: "Lock-On", Type: typechart.TypeNormal, Power: 1, Energy: 5, Turns: 1}
}

func Bubble() *battle.FastMove {
	return &battle.FastMove{ID: "BUBBLE", Name: "Bubble", Type: typechart.TypeWater, Power: 7, Energy: 11, Turns: 3}
}

func MudShot() *battle.FastMove {
	return &battle.FastMove{ID: "MUD_SHOT", Name: "Mud Shot", Type: typechart.TypeGround, Power: 3, Energy: 9, Turns: 2}
}

func AirSlash() *battle.FastMove {
	return &battle.FastMove{ID: "AIR_SLASH", Name: "Air Slash", Type: typechart.TypeFlying, Power: 9, Energy: 9, Turns: 3}
}

func WingAttack() *battle.FastMove {
	return &battle.FastMove{ID: "WING_ATTACK", Name: "Wing Attack", Type: typechart.TypeFlying, Power: 5, Energy: 8, Turns: 2}
}

func WaterGun() *battle.FastMove {
	return &battle.FastMove{ID: "WATER_GUN", Name: "Water Gun", Type: typechart.TypeWater, Power: 3, Energy: 3, Turns: 1}
}

func Snarl() *battle.FastMove {
	return &battle.FastMove{ID: "SNARL", Name: "Snarl", Type: typechart.TypeDark, Power: 5, Energy: 13, Turns: 3}
}

func Spark() *battle.FastMove {
	return &battle.FastMove{ID: "SPARK", Name: "Spark", Type: typechart.TypeElectric, Power: 6, Energy: 9, Turns: 2}
}

// --- Charged move constructors ---

func PowerUpPunch() *battle.ChargedMove {
	return &battle.ChargedMove{
		ID: "POWER_UP_PUNCH", Name: "Power-Up Punch", Type: typechart.TypeFighting, Power: 20, Energy: 35,
		Buff: &battle.Buff{AttackStages: 1, Chance: 1, Target: battle.BuffSelf},
	}
}

func IcePunch() *battle.ChargedMove {
	return &battle.ChargedMove{ID: "ICE_PUNCH", Name: "Ice Punch", Type: typechart.TypeIce, Power: 55, Energy: 40}
}

func PsychicBlast() *battle.ChargedMove {
	return &battle.ChargedMove{
		ID: "PSYCHIC", Name: "Psychic", Type: typechart.TypePsychic, Power: 90, Energy: 55,
		Buff: &battle.Buff{DefenseStages: -1, Chance: 0.1, Target: battle.BuffOpponent},
	}
}

func FocusBlast() *battle.ChargedMove {
	return &battle.ChargedMove{ID: "FOCUS_BLAST", Name: "Focus Blast", Type: typechart.TypeFighting, Power: 150, Energy: 75}
}

func FlashCannon() *battle.ChargedMove {
	return &battle.ChargedMove{ID: "FLASH_CANNON", Name: "Flash Cannon", Type: typechart.TypeSteel, Power: 110, Energy: 70}
}

func ZapCannon() *battle.ChargedMove {
	return &battle.ChargedMove{
		ID: "ZAP_CANNON", Name: "Zap Cannon", Type: typechart.TypeElectric, Power: 150, Energy: 80,
		Buff: &battle.Buff{AttackStages: -1, Chance: 0.66, Target: battle.BuffOpponent},
	}
}

func HydroPump() *battle.ChargedMove {
	return &battle.ChargedMove{ID: "HYDRO_PUMP", Name: "Hydro Pump", Type: typechart.TypeWater, Power: 130, Energy: 75}
}

func IceBeam() *battle.ChargedMove {
	return &battle.ChargedMove{ID: "ICE_BEAM", Name: "Ice Beam", Type: typechart.TypeIce, Power: 90, Energy: 55}
}

func PlayRough() *battle.ChargedMove {
	return &battle.ChargedMove{ID: "PLAY_ROUGH", Name: "Play Rough", Type: typechart.TypeFairy, Power: 90, Energy: 60}
}

func HydroCannon() *battle.ChargedMove {
	return &battle.ChargedMove{ID: "HYDRO_CANNON", Name: "Hydro Cannon", Type: typechart.TypeWater, Power: 80, Energy: 40}
}

func BodySlam() *battle.ChargedMove {
	return &battle.ChargedMove{ID: "BODY_SLAM", Name: "Body Slam", Type: typechart.TypeNormal, Power: 60, Energy: 35}
}

func Earthquake() *battle.ChargedMove {
	return &battle.ChargedMove{ID: "EARTHQUAKE", Name: "Earthquake", Type: typechart.TypeGround, Power: 120, Energy: 65}
}

func SkyAttack() *battle.ChargedMove {
	return &battle.ChargedMove{ID: "SKY_ATTACK", Name: "Sky Attack", Type: typechart.TypeFlying, Power: 75, Energy: 45}
}

func BraveBird() *battle.ChargedMove {
	return &battle.ChargedMove{
		ID: "BRAVE_BIRD", Name: "Brave Bird", Type: typechart.TypeFlying, Power: 130, Energy: 55,
		Buff: &battle.Buff{DefenseStages: -3, Chance: 1, Target: battle.BuffSelf},
	}
}

func Superpower() *battle.ChargedMove {
	return &battle.ChargedMove{
		ID: "SUPERPOWER", Name: "Superpower", Type: typechart.TypeFighting, Power: 85, Energy: 40,
		Buff: &battle.Buff{AttackStages: -1, DefenseStages: -1, Chance: 1, Target: battle.BuffSelf},
	}
}

func WildCharge() *battle.ChargedMove {
	return &battle.ChargedMove{
		ID: "WILD_CHARGE", Name: "Wild Charge", Type: typechart.TypeElectric, Power: 100, Energy: 45,
		Buff: &battle.Buff{DefenseStages: -2, Chance: 1, Target: battle.BuffSelf},
	}
}

func Moonblast() *battle.ChargedMove {
	return &battle.ChargedMove{
		ID: "MOONBLAST", Name: "Moonblast", Type: typechart.TypeFairy, Power: 110, Energy: 60,
		Buff: &battle.Buff{AttackStages: -1, Chance: 0.1, Target: battle.BuffOpponent},
	}
}

func RockSlide() *battle.ChargedMove {
	return &battle.ChargedMove{ID: "ROCK_SLIDE", Name: "Rock Slide", Type: typechart.TypeRock, Power: 75, Energy: 45}
}

func EarthPower() *battle.ChargedMove {
	return &battle.ChargedMove{
		ID: "EARTH_POWER", Name: "Earth Power", Type: typechart.TypeGround, Power: 90, Energy: 55,
		Buff: &battle.Buff{DefenseStages: -1, Chance: 0.1, Target: battle.BuffOpponent},
	}
}

func AcidSpray() *battle.ChargedMove {
	return &battle.ChargedMove{
		ID: "ACID_SPRAY", Name: "Acid Spray", Type: typechart.TypePoison, Power: 20, Energy: 45,
		Buff: &battle.Buff{DefenseStages: -2, Chance: 1, Target: battle.BuffOpponent},
	}
}

func FoulPlay() *battle.ChargedMove {
	return &battle.ChargedMove{ID: "FOUL_PLAY", Name: "Foul Play", Type: typechart.TypeDark, Power: 70, Energy: 45}
}

func LastResort() *battle.ChargedMove {
	return &battle.ChargedMove{ID: "LAST_RESORT", Name: "Last Resort", Type: typechart.TypeNormal, Power: 90, Energy: 55}
}

func DragonClaw() *battle.ChargedMove {
	return &battle.ChargedMove{ID: "DRAGON_CLAW", Name: "Dragon Claw", Type: typechart.TypeDragon, Power: 50, Energy: 35}
}

// FastMoveRegistry maps move IDs to their constructor functions.
var FastMoveRegistry = map[string]func() *battle.FastMove{
	"COUNTER":       Counter,
	"DRAGON_BREATH": DragonBreath,
	"SHADOW_CLAW":   ShadowClaw,
	"LOCK_ON":       LockOn,
	"BUBBLE":        Bubble,
	"MUD_SHOT":      MudShot,
	"AIR_SLASH":     AirSlash,
	"WING_ATTACK":   WingAttack,
	"WATER_GUN":     WaterGun,
	"SNARL":         Snarl,
	"SPARK":         Spark,
}

// ChargedMoveRegistry maps move IDs to their constructor functions.
var ChargedMoveRegistry = map[string]func() *battle.ChargedMove{
	"POWER_UP_PUNCH": PowerUpPunch,
	"ICE_PUNCH":      IcePunch,
	"PSYCHIC":        PsychicBlast,
	"FOCUS_BLAST":    FocusBlast,
	"FLASH_CANNON":   FlashCannon,
	"ZAP_CANNON":     ZapCannon,
	"HYDRO_PUMP":     HydroPump,
	"ICE_BEAM":       IceBeam,
	"PLAY_ROUGH":     PlayRough,
	"HYDRO_CANNON":   HydroCannon,
	"BODY_SLAM":      BodySlam,
	"EARTHQUAKE":     Earthquake,
	"SKY_ATTACK":     SkyAttack,
	"BRAVE_BIRD":     BraveBird,
	"SUPERPOWER":     Superpower,
	"WILD_CHARGE":    WildCharge,
	"MOONBLAST":      Moonblast,
	"ROCK_SLIDE":     RockSlide,
	"EARTH_POWER":    EarthPower,
	"ACID_SPRAY":     AcidSpray,
	"FOUL_PLAY":      FoulPlay,
	"LAST_RESORT":    LastResort,
	"DRAGON_CLAW":    DragonClaw,
}
