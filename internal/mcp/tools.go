// Package mcp exposes the simulation engine as MCP tools so an agent can
// run matchups, inspect the roster and query the type chart.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bitcloud2/pvpoke-sub001/internal/battle"
	blog "github.com/bitcloud2/pvpoke-sub001/internal/log"
	"github.com/bitcloud2/pvpoke-sub001/internal/roster"
	"github.com/bitcloud2/pvpoke-sub001/internal/typechart"
)

// activeRoster backs all tool handlers. Defaults to the built-in registry.
var activeRoster = roster.Builtin()

// SetRosterFile loads a YAML roster for the tool handlers.
func SetRosterFile(path string) error {
	ros, err := roster.Load(path)
	if err != nil {
		return err
	}
	activeRoster = ros
	return nil
}

// RegisterTools adds all simulation tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(simulateBattleTool(), handleSimulateBattle)
	s.AddTool(listSpeciesTool(), handleListSpecies)
	s.AddTool(typeEffectivenessTool(), handleTypeEffectiveness)
}

// --- Tool definitions ---

func simulateBattleTool() mcp.Tool {
	return mcp.NewTool("simulate_battle",
		mcp.WithDescription("Simulate one PvP battle between two roster species and return the outcome: "+
			"winner, final health, ratings (0-1000, 500 = even trade) and optionally the turn-by-turn timeline. "+
			"Identical seeds reproduce identical battles."),
		mcp.WithString("species_1", mcp.Required(), mcp.Description("Species name for side 1")),
		mcp.WithString("species_2", mcp.Required(), mcp.Description("Species name for side 2")),
		mcp.WithString("charged_1", mcp.Description("Space-separated charged move IDs for side 1 (default: species' first two)")),
		mcp.WithString("charged_2", mcp.Description("Space-separated charged move IDs for side 2")),
		mcp.WithNumber("shields_1", mcp.Description("Starting shields for side 1 (default 2)")),
		mcp.WithNumber("shields_2", mcp.Description("Starting shields for side 2 (default 2)")),
		mcp.WithNumber("seed", mcp.Description("RNG seed for deterministic replay (default 1)")),
		mcp.WithBoolean("bait_shields", mcp.Description("Allow both sides to bait shields with cheap charged moves")),
		mcp.WithBoolean("timeline", mcp.Description("Include the ordered timeline in the response")),
	)
}

func listSpeciesTool() mcp.Tool {
	return mcp.NewTool("list_species",
		mcp.WithDescription("List all species in the active roster with their base stats and move pools. Read-only."),
	)
}

func typeEffectivenessTool() mcp.Tool {
	return mcp.NewTool("type_effectiveness",
		mcp.WithDescription("Look up type effectiveness against a defending type pair. "+
			"With an attacking type, returns that single multiplier; without one, returns all 18 attacking types."),
		mcp.WithString("defending", mcp.Required(), mcp.Description("Primary defending type, e.g. 'water'")),
		mcp.WithString("defending_2", mcp.Description("Secondary defending type, if any")),
		mcp.WithString("attacking", mcp.Description("Attacking type to look up")),
	)
}

// --- Tool handlers ---

func handleSimulateBattle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	bait := request.GetBool("bait_shields", false)

	var specs [2]struct {
		species string
		charged string
		shields int
	}
	specs[0].species = request.GetString("species_1", "")
	specs[1].species = request.GetString("species_2", "")
	specs[0].charged = request.GetString("charged_1", "")
	specs[1].charged = request.GetString("charged_2", "")
	specs[0].shields = request.GetInt("shields_1", battle.DefaultShields)
	specs[1].shields = request.GetInt("shields_2", battle.DefaultShields)

	cfg := battle.DefaultConfig()
	cfg.Seed = int64(request.GetInt("seed", 0))
	cfg.Timeline = request.GetBool("timeline", false)

	var combatants [2]*battle.Pokemon
	for i, spec := range specs {
		if spec.species == "" {
			return mcp.NewToolResultErrorf("species_%d is required", i+1), nil
		}
		opts := roster.BuildOptions{BaitShields: bait}
		if spec.charged != "" {
			opts.ChargedMoves = strings.Fields(spec.charged)
		}
		p, err := activeRoster.Build(spec.species, opts)
		if err != nil {
			return mcp.NewToolResultErrorf("side %d: %v", i+1, err), nil
		}
		combatants[i] = p
		if spec.shields < 0 {
			return mcp.NewToolResultErrorf("shields_%d must not be negative", i+1), nil
		}
		cfg.Shields[i] = spec.shields
	}

	b, err := battle.New(cfg, combatants[0], combatants[1])
	if err != nil {
		return mcp.NewToolResultErrorf("configure battle: %v", err), nil
	}
	result := b.Run()

	resp := map[string]any{
		"id": uuid.NewString(),
		"combatants": []map[string]any{
			{"species": combatants[0].Species, "cp": combatants[0].CP(), "maxHP": combatants[0].MaxHP},
			{"species": combatants[1].Species, "cp": combatants[1].CP(), "maxHP": combatants[1].MaxHP},
		},
		"result": result,
	}
	if cfg.Timeline {
		resp["timelineText"] = blog.FormatAll(result.Timeline)
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleListSpecies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type entry struct {
		Name         string   `json:"name"`
		Types        []string `json:"types"`
		Attack       int      `json:"attack"`
		Defense      int      `json:"defense"`
		Stamina      int      `json:"stamina"`
		FastMoves    []string `json:"fastMoves"`
		ChargedMoves []string `json:"chargedMoves"`
	}
	var out []entry
	for _, s := range activeRoster.Species() {
		e := entry{
			Name:         s.Name,
			Types:        []string{s.Types[0].String()},
			Attack:       s.Attack,
			Defense:      s.Defense,
			Stamina:      s.Stamina,
			FastMoves:    s.FastMoves,
			ChargedMoves: s.ChargedMoves,
		}
		if s.Types[1] != typechart.TypeNone {
			e.Types = append(e.Types, s.Types[1].String())
		}
		out = append(out, e)
	}
	return mcp.NewToolResultText(respondJSON(out)), nil
}

func handleTypeEffectiveness(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	def1, err := typechart.ParseType(request.GetString("defending", ""))
	if err != nil || def1 == typechart.TypeNone {
		return mcp.NewToolResultError("defending must be a valid type name"), nil
	}
	def2, err := typechart.ParseType(request.GetString("defending_2", ""))
	if err != nil {
		return mcp.NewToolResultErrorf("defending_2: %v", err), nil
	}

	if attacking := request.GetString("attacking", ""); attacking != "" {
		atk, err := typechart.ParseType(attacking)
		if err != nil || atk == typechart.TypeNone {
			return mcp.NewToolResultErrorf("attacking: bad type %q", attacking), nil
		}
		return mcp.NewToolResultText(respondJSON(map[string]float64{
			attacking: typechart.Effectiveness(atk, def1, def2),
		})), nil
	}

	spread := make(map[string]float64, typechart.TypeCount)
	for t, mult := range typechart.Spread(def1, def2) {
		spread[t.String()] = mult
	}
	return mcp.NewToolResultText(respondJSON(spread)), nil
}

// respondJSON marshals a tool response envelope, falling back to the error
// text when marshaling fails.
func respondJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(data)
}
