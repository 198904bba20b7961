package roster

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bitcloud2/pvpoke-sub001/internal/battle"
	"github.com/bitcloud2/pvpoke-sub001/internal/typechart"
)

// Roster resolves species names and move IDs into battle-ready templates.
type Roster struct {
	species map[string]Species
	fast    map[string]*battle.FastMove
	charged map[string]*battle.ChargedMove
}

// Builtin returns the roster backed by the built-in registry only.
func Builtin() *Roster {
	r := &Roster{
		species: make(map[string]Species, len(builtinSpecies)),
		fast:    make(map[string]*battle.FastMove, len(FastMoveRegistry)),
		charged: make(map[string]*battle.ChargedMove, len(ChargedMoveRegistry)),
	}
	for id, ctor := range FastMoveRegistry {
		r.fast[id] = ctor()
	}
	for id, ctor := range ChargedMoveRegistry {
		r.charged[id] = ctor()
	}
	for _, s := range builtinSpecies {
		r.species[keyFor(s.Name)] = s
	}
	return r
}

// --- YAML roster file ---

// RosterFile is the top-level YAML structure. Entries extend or override the
// built-in registry.
type RosterFile struct {
	FastMoves    []FastMoveEntry    `yaml:"fast_moves"`
	ChargedMoves []ChargedMoveEntry `yaml:"charged_moves"`
	Species      []SpeciesEntry     `yaml:"species"`
}

type FastMoveEntry struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Power  int    `yaml:"power"`
	Energy int    `yaml:"energy"`
	Turns  int    `yaml:"turns"`
}

type ChargedMoveEntry struct {
	ID     string     `yaml:"id"`
	Name   string     `yaml:"name"`
	Type   string     `yaml:"type"`
	Power  int        `yaml:"power"`
	Energy int        `yaml:"energy"`
	Buff   *BuffEntry `yaml:"buff"`
}

type BuffEntry struct {
	Attack  int     `yaml:"attack"`
	Defense int     `yaml:"defense"`
	Chance  float64 `yaml:"chance"`
	Target  string  `yaml:"target"` // "self" or "opponent"
}

type SpeciesEntry struct {
	Name         string   `yaml:"name"`
	Types        []string `yaml:"types"`
	Attack       int      `yaml:"attack"`
	Defense      int      `yaml:"defense"`
	Stamina      int      `yaml:"stamina"`
	FastMoves    []string `yaml:"fast_moves"`
	ChargedMoves []string `yaml:"charged_moves"`
}

// Load reads a YAML roster file and merges it over the built-in registry.
func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rf RosterFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parse roster YAML: %w", err)
	}

	r := Builtin()
	for _, e := range rf.FastMoves {
		t, err := typechart.ParseType(e.Type)
		if err != nil {
			return nil, fmt.Errorf("fast move %s: %w", e.ID, err)
		}
		r.fast[e.ID] = &battle.FastMove{ID: e.ID, Name: e.Name, Type: t, Power: e.Power, Energy: e.Energy, Turns: e.Turns}
	}
	for _, e := range rf.ChargedMoves {
		t, err := typechart.ParseType(e.Type)
		if err != nil {
			return nil, fmt.Errorf("charged move %s: %w", e.ID, err)
		}
		m := &battle.ChargedMove{ID: e.ID, Name: e.Name, Type: t, Power: e.Power, Energy: e.Energy}
		if e.Buff != nil {
			target := battle.BuffSelf
			if strings.EqualFold(e.Buff.Target, "opponent") {
				target = battle.BuffOpponent
			}
			m.Buff = &battle.Buff{
				AttackStages:  e.Buff.Attack,
				DefenseStages: e.Buff.Defense,
				Chance:        e.Buff.Chance,
				Target:        target,
			}
		}
		r.charged[e.ID] = m
	}
	for _, e := range rf.Species {
		if len(e.Types) == 0 || len(e.Types) > 2 {
			return nil, fmt.Errorf("species %s: needs one or two types", e.Name)
		}
		var types [2]typechart.Type
		for i, name := range e.Types {
			t, err := typechart.ParseType(name)
			if err != nil {
				return nil, fmt.Errorf("species %s: %w", e.Name, err)
			}
			types[i] = t
		}
		r.species[keyFor(e.Name)] = Species{
			Name:         e.Name,
			Types:        types,
			Attack:       e.Attack,
			Defense:      e.Defense,
			Stamina:      e.Stamina,
			FastMoves:    e.FastMoves,
			ChargedMoves: e.ChargedMoves,
		}
	}
	return r, nil
}

func keyFor(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Species returns all known species sorted by name.
func (r *Roster) Species() []Species {
	out := make([]Species, 0, len(r.species))
	for _, s := range r.species {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup returns the species entry for a name (case-insensitive).
func (r *Roster) Lookup(name string) (Species, bool) {
	s, ok := r.species[keyFor(name)]
	return s, ok
}

// BuildOptions configure one combatant built from a species entry. Zero
// values fall back to level 40, 15/15/15 IVs and the species' first listed
// moves.
type BuildOptions struct {
	IVs          *battle.IVs
	Level        float64
	FastMove     string   // fast move ID
	ChargedMoves []string // charged move IDs, at most two
	FarmEnergy   bool
	BaitShields  bool
}

// Build resolves a species plus options into a validated combatant.
func (r *Roster) Build(name string, opts BuildOptions) (*battle.Pokemon, error) {
	s, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown species %q", name)
	}

	level := opts.Level
	if level == 0 {
		level = 40
	}
	ivs := battle.IVs{Attack: battle.MaxIV, Defense: battle.MaxIV, Stamina: battle.MaxIV}
	if opts.IVs != nil {
		ivs = *opts.IVs
	}

	fastID := opts.FastMove
	if fastID == "" {
		if len(s.FastMoves) == 0 {
			return nil, fmt.Errorf("species %s has no fast moves", s.Name)
		}
		fastID = s.FastMoves[0]
	}
	fast, ok := r.fast[fastID]
	if !ok {
		return nil, fmt.Errorf("species %s: unknown fast move %q", s.Name, fastID)
	}

	chargedIDs := opts.ChargedMoves
	if len(chargedIDs) == 0 {
		chargedIDs = s.ChargedMoves
		if len(chargedIDs) > battle.MaxChargedMoves {
			chargedIDs = chargedIDs[:battle.MaxChargedMoves]
		}
	}
	var charged []*battle.ChargedMove
	for _, id := range chargedIDs {
		m, ok := r.charged[id]
		if !ok {
			return nil, fmt.Errorf("species %s: unknown charged move %q", s.Name, id)
		}
		charged = append(charged, m)
	}

	return battle.NewPokemon(battle.Template{
		Species:      s.Name,
		Types:        s.Types,
		Attack:       s.Attack,
		Defense:      s.Defense,
		Stamina:      s.Stamina,
		IVs:          ivs,
		Level:        level,
		FastMove:     fast,
		ChargedMoves: charged,
		FarmEnergy:   opts.FarmEnergy,
		BaitShields:  opts.BaitShields,
	})
}
