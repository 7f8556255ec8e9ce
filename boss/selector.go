package boss

import "math/rand"

// TierBonus unlocks extra attacks once the tier reaches MinTier.
type TierBonus struct {
	MinTier int
	Attacks []AttackID
}

// Pool is a boss's attack repertoire.
type Pool struct {
	Base    []AttackID
	Bonus   []TierBonus
	Default AttackID

	Climax             AttackID
	ClimaxAfter        int
	ClimaxWhileEnraged bool
}

// SelectInput is the encounter view the selector needs.
type SelectInput struct {
	Tier        int
	Consecutive int
	Enraged     bool
	Distance    float64
	Last        AttackID
}

// RangePreference limits an attack to a band of target distances. Zero
// bounds are open.
type RangePreference struct {
	Min float64
	Max float64
}

func (r RangePreference) Allows(d float64) bool {
	if r.Min > 0 && d < r.Min {
		return false
	}
	if r.Max > 0 && d > r.Max {
		return false
	}
	return true
}

// ClimaxReady reports whether the climax may join the pool.
func (p Pool) ClimaxReady(in SelectInput) bool {
	if p.Climax == AttackNone {
		return false
	}
	if in.Consecutive < p.ClimaxAfter {
		return false
	}
	return !p.ClimaxWhileEnraged || in.Enraged
}

// Available is base plus tier gated bonuses plus the climax when unlocked,
// in a stable order.
func (p Pool) Available(in SelectInput) []AttackID {
	out := make([]AttackID, 0, len(p.Base)+4)
	seen := make(map[AttackID]bool, len(p.Base)+4)
	add := func(id AttackID) {
		if id == AttackNone || seen[id] {
			return
		}
		seen[id] = true
		out = append(out, id)
	}
	for _, id := range p.Base {
		add(id)
	}
	for _, b := range p.Bonus {
		if in.Tier >= b.MinTier {
			for _, id := range b.Attacks {
				add(id)
			}
		}
	}
	if p.ClimaxReady(in) {
		add(p.Climax)
	}
	return out
}

// Candidates removes the last attack and, when any candidate survives it,
// attacks whose range preference excludes the current distance.
func (p Pool) Candidates(in SelectInput, ranges func(AttackID) RangePreference) []AttackID {
	available := p.Available(in)
	out := make([]AttackID, 0, len(available))
	for _, id := range available {
		if id != in.Last {
			out = append(out, id)
		}
	}
	if ranges == nil || len(out) == 0 {
		return out
	}
	near := make([]AttackID, 0, len(out))
	for _, id := range out {
		if ranges(id).Allows(in.Distance) {
			near = append(near, id)
		}
	}
	if len(near) == 0 {
		return out
	}
	return near
}

// Select picks uniformly among the candidates, or returns Default when none
// remain.
func (p Pool) Select(in SelectInput, ranges func(AttackID) RangePreference, rng *rand.Rand) AttackID {
	candidates := p.Candidates(in, ranges)
	if len(candidates) == 0 {
		return p.Default
	}
	return candidates[rng.Intn(len(candidates))]
}
