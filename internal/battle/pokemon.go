package battle

import (
	"fmt"
	"math"

	"github.com/bitcloud2/pvpoke-sub001/internal/typechart"
)

const (
	MaxEnergy       = 100
	MaxIV           = 15
	MaxChargedMoves = 2
)

// IVs are the per-combatant individual value modifiers, each 0–15.
type IVs struct {
	Attack  int
	Defense int
	Stamina int
}

// Template is the fully resolved configuration handed in by the catalog
// layer. Build validates it and produces a battle-ready Pokemon.
type Template struct {
	Species string
	Types   [2]typechart.Type
	Attack  int // base attack
	Defense int // base defense
	Stamina int // base stamina
	IVs     IVs
	Level   float64

	FastMove     *FastMove
	ChargedMoves []*ChargedMove

	FarmEnergy  bool
	BaitShields bool
}

// Pokemon is one combatant, owned exclusively by a single battle while
// simulating. All configuration errors surface at construction, never
// mid-battle.
type Pokemon struct {
	Species string
	Types   [2]typechart.Type

	BaseAttack  int
	BaseDefense int
	BaseStamina int
	IVs         IVs
	Level       float64

	FastMove     *FastMove
	ChargedMoves []*ChargedMove

	FarmEnergy  bool
	BaitShields bool

	// Battle state, mutated turn by turn.
	HP       int
	MaxHP    int
	Energy   int
	Shields  int
	AtkStage int
	DefStage int
	Cooldown int // ms remaining on the current fast move

	attack  float64 // effective attack before stages
	defense float64 // effective defense before stages
}

// NewPokemon validates a template and derives the combatant's effective
// stats.
func NewPokemon(tmpl Template) (*Pokemon, error) {
	if tmpl.Species == "" {
		return nil, fmt.Errorf("combatant needs a species name")
	}
	if tmpl.FastMove == nil {
		return nil, fmt.Errorf("%s: a fast move is required", tmpl.Species)
	}
	if tmpl.FastMove.Turns < 0 {
		return nil, fmt.Errorf("%s: fast move %s has negative duration", tmpl.Species, tmpl.FastMove.Name)
	}
	if len(tmpl.ChargedMoves) > MaxChargedMoves {
		return nil, fmt.Errorf("%s: at most %d charged moves allowed, got %d",
			tmpl.Species, MaxChargedMoves, len(tmpl.ChargedMoves))
	}
	for _, m := range tmpl.ChargedMoves {
		if m == nil {
			return nil, fmt.Errorf("%s: nil charged move reference", tmpl.Species)
		}
		if m.Energy < 0 || m.Energy > MaxEnergy {
			return nil, fmt.Errorf("%s: charged move %s has energy cost %d outside [0, %d]",
				tmpl.Species, m.Name, m.Energy, MaxEnergy)
		}
	}
	for _, iv := range []struct {
		name  string
		value int
	}{
		{"attack", tmpl.IVs.Attack},
		{"defense", tmpl.IVs.Defense},
		{"stamina", tmpl.IVs.Stamina},
	} {
		if iv.value < 0 || iv.value > MaxIV {
			return nil, fmt.Errorf("%s: %s IV %d outside [0, %d]", tmpl.Species, iv.name, iv.value, MaxIV)
		}
	}
	if tmpl.Level < MinLevel || tmpl.Level > MaxLevel || math.Mod(tmpl.Level*2, 1) != 0 {
		return nil, fmt.Errorf("%s: level %.1f must be in [%g, %g] in half steps",
			tmpl.Species, tmpl.Level, MinLevel, MaxLevel)
	}
	if tmpl.Attack <= 0 || tmpl.Defense <= 0 || tmpl.Stamina <= 0 {
		return nil, fmt.Errorf("%s: base stats must be positive", tmpl.Species)
	}

	mult := LevelMultiplier(tmpl.Level)
	p := &Pokemon{
		Species:      tmpl.Species,
		Types:        tmpl.Types,
		BaseAttack:   tmpl.Attack,
		BaseDefense:  tmpl.Defense,
		BaseStamina:  tmpl.Stamina,
		IVs:          tmpl.IVs,
		Level:        tmpl.Level,
		FastMove:     tmpl.FastMove,
		ChargedMoves: append([]*ChargedMove(nil), tmpl.ChargedMoves...),
		FarmEnergy:   tmpl.FarmEnergy,
		BaitShields:  tmpl.BaitShields,
		attack:       float64(tmpl.Attack+tmpl.IVs.Attack) * mult,
		defense:      float64(tmpl.Defense+tmpl.IVs.Defense) * mult,
	}
	p.MaxHP = int(float64(tmpl.Stamina+tmpl.IVs.Stamina) * mult)
	if p.MaxHP < 10 {
		p.MaxHP = 10
	}
	p.Reset()
	return p, nil
}

// Reset restores the combatant to its pre-battle state so it can be
// simulated again. Shields are assigned by the battle configuration.
func (p *Pokemon) Reset() {
	p.HP = p.MaxHP
	p.Energy = 0
	p.Shields = 0
	p.AtkStage = 0
	p.DefStage = 0
	p.Cooldown = 0
}

// CP returns the derived combat power score.
func (p *Pokemon) CP() int {
	mult := LevelMultiplier(p.Level)
	atk := float64(p.BaseAttack + p.IVs.Attack)
	def := float64(p.BaseDefense + p.IVs.Defense)
	sta := float64(p.BaseStamina + p.IVs.Stamina)
	cp := int(atk * math.Sqrt(def) * math.Sqrt(sta) * mult * mult / 10)
	if cp < 10 {
		return 10
	}
	return cp
}

// EffectiveAttack returns the attack stat with the current stage applied.
func (p *Pokemon) EffectiveAttack() float64 {
	return p.attack * StageMultiplier(p.AtkStage)
}

// EffectiveDefense returns the defense stat with the current stage applied.
func (p *Pokemon) EffectiveDefense() float64 {
	return p.defense * StageMultiplier(p.DefStage)
}

// HasType reports whether the combatant has the given type (for the
// same-type attack bonus).
func (p *Pokemon) HasType(t typechart.Type) bool {
	return t != typechart.TypeNone && (p.Types[0] == t || p.Types[1] == t)
}

// Fainted reports whether the combatant's health has reached zero.
func (p *Pokemon) Fainted() bool {
	return p.HP <= 0
}

// TakeDamage reduces health, clamped at faint.
func (p *Pokemon) TakeDamage(damage int) {
	p.HP -= damage
	if p.HP < 0 {
		p.HP = 0
	}
}

// GainEnergy adds fast-move energy, clamped at MaxEnergy.
func (p *Pokemon) GainEnergy(amount int) {
	p.Energy += amount
	if p.Energy > MaxEnergy {
		p.Energy = MaxEnergy
	}
}

// ApplyStages shifts the combatant's stat stages, clamped to [-4, 4].
func (p *Pokemon) ApplyStages(atk, def int) {
	p.AtkStage = ClampStage(p.AtkStage + atk)
	p.DefStage = ClampStage(p.DefStage + def)
}

// MostExpensiveMove returns the charged move with the highest energy cost,
// or nil when the combatant has none.
func (p *Pokemon) MostExpensiveMove() *ChargedMove {
	var best *ChargedMove
	for _, m := range p.ChargedMoves {
		if best == nil || m.Energy > best.Energy {
			best = m
		}
	}
	return best
}

// CheapestMove returns the charged move with the lowest energy cost, or nil.
func (p *Pokemon) CheapestMove() *ChargedMove {
	var best *ChargedMove
	for _, m := range p.ChargedMoves {
		if best == nil || m.Energy < best.Energy {
			best = m
		}
	}
	return best
}

func (p *Pokemon) String() string {
	return fmt.Sprintf("%s (CP %d, HP %d/%d)", p.Species, p.CP(), p.HP, p.MaxHP)
}
