package battle

import "sort"

// Policy constants for the move-selection search. These are behavioral
// tuning values, not physical ones.
const (
	// baitEfficiencyRatio caps how much less efficient the cheap move may
	// be before baiting with it stops being worth a shield.
	baitEfficiencyRatio = 1.5
	// baitWeightBoost favors candidates predicted to draw a shield.
	baitWeightBoost = 1.3
	// farmWeightBoost favors firing the most expensive move right after
	// farming up to it instead of switching targets.
	farmWeightBoost  = 1.2
	farmEnergyMargin = 5
	// deferralEnergyMargin is the spare energy required to waive the
	// self-debuff deferral for a net self-buffing move.
	deferralEnergyMargin = 10
	// healthyFraction marks "substantial remaining health" for demoting
	// self-debuffing moves when there is no urgency to finish.
	healthyFraction = 0.5

	searchHorizon  = 12 // lookahead window in turns
	searchCapacity = 96 // arena bound on explored states
	koBonus        = 50 // scoring bonus for a projected faint
	buffValue      = 3  // scoring value per net stage of accumulated buffs
)

// battleState is one node in the bounded lookahead arena. States are pure
// values created and discarded within a single decision evaluation.
type battleState struct {
	energy     int
	oppHealth  int
	turn       int
	oppShields int
	moves      []*ChargedMove // sequence chosen so far; empty = fast-only line
	buffs      int            // net stage delta accumulated
	chance     float64        // probability weight of this branch
}

// planChargedMoves runs the short-horizon search and the bait, farm and
// deferral policy over the combatant's charged moves. An empty result means
// no charged move is worth using now and the caller defaults to the fast
// move.
func (b *Battle) planChargedMoves(p, opp *Pokemon) []DecisionOption {
	var candidates []*ChargedMove
	for _, m := range p.ChargedMoves {
		if b.shouldDeferSelfDebuff(p, opp, m) {
			continue
		}
		candidates = append(candidates, m)
	}
	if len(candidates) == 0 {
		return nil
	}

	// Shield baiting: lead with the cheap move when it is not drastically
	// less efficient than the big one.
	var baitMove *ChargedMove
	if opp.Shields > 0 && p.BaitShields && len(candidates) >= 2 {
		cheap, costly := candidates[0], candidates[0]
		for _, m := range candidates[1:] {
			if m.Energy < cheap.Energy {
				cheap = m
			}
			if m.Energy > costly.Energy {
				costly = m
			}
		}
		if cheap != costly && costly.DPE() <= cheap.DPE()*baitEfficiencyRatio {
			if p.Energy < cheap.Energy {
				// Cannot afford the bait either: keep farming.
				return nil
			}
			baitMove = cheap
		}
	}

	var affordable []*ChargedMove
	for _, m := range candidates {
		if p.Energy >= m.Energy {
			affordable = append(affordable, m)
		}
	}
	if len(affordable) == 0 {
		return nil
	}

	values, fastValue := b.searchMoveValues(p, opp, candidates)

	// Keep charging when the lookahead says every affordable option is
	// strictly worse than building toward a not-yet-affordable stronger move.
	target := p.MostExpensiveMove()
	if baitMove == nil && target != nil && p.Energy < target.Energy {
		if p.FarmEnergy {
			return nil
		}
		bestCharged := 0.0
		for _, m := range affordable {
			if v := values[m.ID]; v > bestCharged {
				bestCharged = v
			}
		}
		if fastValue > bestCharged {
			return nil
		}
	}

	options := make([]DecisionOption, 0, len(affordable))
	best := 0.0
	for _, m := range affordable {
		if v := values[m.ID]; v > best {
			best = v
		}
	}
	for _, m := range affordable {
		weight := 10.0
		if best > 0 {
			weight = 10 * values[m.ID] / best
		}
		shieldW, noShieldW := ShieldWeights(p, opp, m)
		if shieldW > noShieldW {
			weight *= baitWeightBoost
		}
		if m == target && p.Energy >= m.Energy && p.Energy-m.Energy <= farmEnergyMargin {
			weight *= farmWeightBoost
		}
		if m == baitMove {
			weight *= baitWeightBoost
		}
		w := int(weight)
		if w < 1 {
			w = 1
		}
		options = append(options, DecisionOption{Name: m.Name, Weight: w, Move: m})
	}

	b.reorderOptions(p, opp, options, baitMove)
	return options
}

// searchMoveValues explores short action sequences over a bounded state
// arena and scores each opening move. The fast-only line is scored
// separately. No randomness is consumed: probabilistic shield branches are
// carried as chance weights.
func (b *Battle) searchMoveValues(p, opp *Pokemon, candidates []*ChargedMove) (map[string]float64, float64) {
	fastDmg := FastDamage(p, opp)
	fastTurns := p.FastMove.Turns
	if fastTurns < 1 {
		fastTurns = 1
	}

	values := make(map[string]float64, len(candidates))
	fastValue := 0.0
	record := func(st battleState) {
		dealt := float64(opp.HP - st.oppHealth)
		score := dealt + float64(st.buffs)*buffValue
		if st.oppHealth <= 0 {
			score += koBonus
		}
		score = st.chance * score / float64(st.turn+1)
		if len(st.moves) == 0 {
			if score > fastValue {
				fastValue = score
			}
			return
		}
		id := st.moves[0].ID
		if score > values[id] {
			values[id] = score
		}
	}

	states := make([]battleState, 0, searchCapacity)
	states = append(states, battleState{
		energy:     p.Energy,
		oppHealth:  opp.HP,
		oppShields: opp.Shields,
		chance:     1,
	})

	for i := 0; i < len(states); i++ {
		st := states[i]
		if st.oppHealth <= 0 || st.turn >= searchHorizon || len(states) >= searchCapacity-2 {
			record(st)
			continue
		}

		// Fast-move transition: energy up, opponent health down or equal.
		next := st
		next.turn += fastTurns
		next.energy = st.energy + p.FastMove.Energy
		if next.energy > MaxEnergy {
			next.energy = MaxEnergy
		}
		next.oppHealth = st.oppHealth - fastDmg
		if next.oppHealth < 0 {
			next.oppHealth = 0
		}
		states = append(states, next)

		// Charged-move transitions, weighted by the predicted shield
		// response.
		for _, m := range candidates {
			if st.energy < m.Energy {
				continue
			}
			full := ChargedDamage(p, opp, m)
			seq := append(append([]*ChargedMove(nil), st.moves...), m)
			buffs := st.buffs + netBuffStages(m)

			if st.oppShields > 0 {
				shieldW, noShieldW := shieldWeightsFor(full, st.oppHealth, opp.MaxHP)
				pShield := float64(shieldW) / float64(shieldW+noShieldW)
				if pShield > 0 {
					blocked := st
					blocked.turn++
					blocked.energy = st.energy - m.Energy
					blocked.oppHealth = st.oppHealth - ShieldedDamage
					blocked.oppShields = st.oppShields - 1
					blocked.moves = seq
					blocked.buffs = buffs
					blocked.chance = st.chance * pShield
					states = append(states, blocked)
				}
				if pShield < 1 {
					landed := st
					landed.turn++
					landed.energy = st.energy - m.Energy
					landed.oppHealth = st.oppHealth - full
					if landed.oppHealth < 0 {
						landed.oppHealth = 0
					}
					landed.moves = seq
					landed.buffs = buffs
					landed.chance = st.chance * (1 - pShield)
					states = append(states, landed)
				}
				continue
			}

			landed := st
			landed.turn++
			landed.energy = st.energy - m.Energy
			landed.oppHealth = st.oppHealth - full
			if landed.oppHealth < 0 {
				landed.oppHealth = 0
			}
			landed.moves = seq
			landed.buffs = buffs
			landed.chance = st.chance
			states = append(states, landed)
		}
	}

	return values, fastValue
}

// shieldWeightsFor mirrors ShieldWeights against a projected defender
// health inside the search, where the live Pokemon state does not apply.
func shieldWeightsFor(dmg, hp, maxHP int) (shield, noShield int) {
	if dmg >= hp {
		return 1, 0
	}
	maxPortion := float64(dmg) / float64(maxHP)
	curPortion := float64(dmg) / float64(hp)
	if maxPortion < 0.15 {
		return 0, 1
	}
	shield = int(curPortion * 10)
	noShield = int((1 - maxPortion) * 6)
	if shield < 1 {
		shield = 1
	}
	if noShield < 1 {
		noShield = 1
	}
	return shield, noShield
}

// netBuffStages scores a move's buff from the user's perspective: own
// stages count positive, opponent stages negative.
func netBuffStages(m *ChargedMove) int {
	b := m.Buff
	if b == nil || b.Chance <= 0 {
		return 0
	}
	sum := b.AttackStages + b.DefenseStages
	if b.Target == BuffOpponent {
		return -sum
	}
	return sum
}

// shouldDeferSelfDebuff excludes a self-debuffing move from the current
// choice set when the combatant is exposed: no shields left, still farming
// toward its most expensive move, and the opponent can land its own
// strongest charged move unshielded this exchange.
func (b *Battle) shouldDeferSelfDebuff(p, opp *Pokemon, m *ChargedMove) bool {
	if !m.SelfDebuffing() {
		return false
	}
	if p.Shields != 0 {
		return false
	}
	strongest := p.MostExpensiveMove()
	if strongest == nil || p.Energy >= strongest.Energy {
		return false
	}
	oppStrongest := opp.MostExpensiveMove()
	if oppStrongest == nil || opp.Energy < oppStrongest.Energy {
		return false
	}
	// If we would shield the incoming hit anyway, the exchange is safe.
	sw, nsw := ShieldWeights(opp, p, oppStrongest)
	if sw > nsw {
		return false
	}
	// Waiver: a net self-buffing move with enough energy margin is kept.
	if m.SelfBuffing() && netBuffStages(m) >= 0 && p.Energy >= m.Energy+deferralEnergyMargin {
		return false
	}
	return true
}

// reorderOptions applies the final candidate ordering: descending raw
// damage against an unshielded opponent, ascending energy cost against a
// shielded one, near-equal costs broken by damage per energy, and
// self-debuffing moves demoted while neither side is pressed.
func (b *Battle) reorderOptions(p, opp *Pokemon, options []DecisionOption, baitMove *ChargedMove) {
	if opp.Shields == 0 {
		sort.SliceStable(options, func(i, j int) bool {
			mi, mj := options[i].Move, options[j].Move
			di, dj := ChargedDamage(p, opp, mi), ChargedDamage(p, opp, mj)
			if di != dj {
				return di > dj
			}
			return mi.DPE() > mj.DPE()
		})
	} else {
		sort.SliceStable(options, func(i, j int) bool {
			mi, mj := options[i].Move, options[j].Move
			diff := mi.Energy - mj.Energy
			if diff >= -farmEnergyMargin && diff <= farmEnergyMargin {
				return mi.DPE() > mj.DPE()
			}
			return diff < 0
		})
	}

	// No urgency while both sides are healthy: non-debuffing alternatives
	// come first when one exists.
	pHealthy := float64(p.HP) > healthyFraction*float64(p.MaxHP)
	oppHealthy := float64(opp.HP) > healthyFraction*float64(opp.MaxHP)
	if pHealthy && oppHealthy {
		hasClean := false
		for _, o := range options {
			if !o.Move.SelfDebuffing() {
				hasClean = true
				break
			}
		}
		if hasClean {
			sort.SliceStable(options, func(i, j int) bool {
				return !options[i].Move.SelfDebuffing() && options[j].Move.SelfDebuffing()
			})
		}
	}

	// The bait lead, when set, stays in front.
	if baitMove != nil {
		for i, o := range options {
			if o.Move == baitMove && i > 0 {
				lead := options[i]
				copy(options[1:i+1], options[0:i])
				options[0] = lead
				break
			}
		}
	}
}
