package roster

import "github.com/bitcloud2/pvpoke-sub001/internal/typechart"

// Species is one combatant template entry: base stats plus the move pool it
// may be built with.
type Species struct {
	Name         string
	Types        [2]typechart.Type
	Attack       int
	Defense      int
	Stamina      int
	FastMoves    []string // fast move IDs
	ChargedMoves []string // charged move IDs
}

// builtinSpecies is the default catalog used by the CLI, web and MCP
// surfaces when no roster file is supplied.
var builtinSpecies = []Species{
	{
		Name:         "Medicham",
		Types:        [2]typechart.Type{typechart.TypeFighting, typechart.TypePsychic},
		Attack:       121, Defense: 152, Stamina: 155,
		FastMoves:    []string{"COUNTER"},
		ChargedMoves: []string{"POWER_UP_PUNCH", "ICE_PUNCH", "PSYCHIC"},
	},
	{
		Name:         "Azumarill",
		Types:        [2]typechart.Type{typechart.TypeWater, typechart.TypeFairy},
		Attack:       112, Defense: 152, Stamina: 225,
		FastMoves:    []string{"BUBBLE"},
		ChargedMoves: []string{"ICE_BEAM", "HYDRO_PUMP", "PLAY_ROUGH"},
	},
	{
		Name:         "Registeel",
		Types:        [2]typechart.Type{typechart.TypeSteel, typechart.TypeNone},
		Attack:       143, Defense: 285, Stamina: 190,
		FastMoves:    []string{"LOCK_ON"},
		ChargedMoves: []string{"FOCUS_BLAST", "FLASH_CANNON", "ZAP_CANNON"},
	},
	{
		Name:         "Altaria",
		Types:        [2]typechart.Type{typechart.TypeDragon, typechart.TypeFlying},
		Attack:       141, Defense: 201, Stamina: 181,
		FastMoves:    []string{"DRAGON_BREATH"},
		ChargedMoves: []string{"SKY_ATTACK", "MOONBLAST", "DRAGON_CLAW"},
	},
	{
		Name:         "Skarmory",
		Types:        [2]typechart.Type{typechart.TypeSteel, typechart.TypeFlying},
		Attack:       148, Defense: 226, Stamina: 163,
		FastMoves:    []string{"AIR_SLASH", "WING_ATTACK"},
		ChargedMoves: []string{"SKY_ATTACK", "BRAVE_BIRD", "FLASH_CANNON"},
	},
	{
		Name:         "Stunfisk (Galarian)",
		Types:        [2]typechart.Type{typechart.TypeGround, typechart.TypeSteel},
		Attack:       144, Defense: 171, Stamina: 240,
		FastMoves:    []string{"MUD_SHOT"},
		ChargedMoves: []string{"ROCK_SLIDE", "EARTHQUAKE", "FLASH_CANNON"},
	},
	{
		Name:         "Swampert",
		Types:        [2]typechart.Type{typechart.TypeWater, typechart.TypeGround},
		Attack:       208, Defense: 175, Stamina: 225,
		FastMoves:    []string{"MUD_SHOT", "WATER_GUN"},
		ChargedMoves: []string{"HYDRO_CANNON", "EARTHQUAKE", "EARTH_POWER"},
	},
	{
		Name:         "Umbreon",
		Types:        [2]typechart.Type{typechart.TypeDark, typechart.TypeNone},
		Attack:       126, Defense: 240, Stamina: 216,
		FastMoves:    []string{"SNARL"},
		ChargedMoves: []string{"FOUL_PLAY", "LAST_RESORT", "PSYCHIC"},
	},
}
