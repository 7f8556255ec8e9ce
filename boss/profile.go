package boss

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

var ErrInvalidProfile = errors.New("boss: invalid profile")

// Profile is the static description of a boss. Profiles are built once and
// shared read-only.
type Profile struct {
	Kind        Kind
	DisplayName string

	HealthMax       float64
	Defense         float64
	BaseDamage      float64
	TierDamageScale []float64

	Tiers      TierThresholds
	Aggression AggressionCurve
	Pool       Pool
	Timings    map[AttackID]Timing

	TelegraphFloor     int
	PostAttackCooldown int
	InitialDelay       int
	SpawnTicks         int

	MoveSpeed        float64
	HoverOffset      cp.Vector
	RepositionEvery  int
	RepositionTicks  int
	RepositionOffset cp.Vector

	Engagement   EngagementConfig
	TargetRange  float64
	DespawnTicks int
	DespawnRise  float64

	Transition *TransitionConfig
	Death      DeathConfig

	Ambient       AmbientHook
	AmbientScript string
}

// Validate checks the invariants the controller relies on.
func (p *Profile) Validate(moves Choreography) error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s: %s", ErrInvalidProfile, p.Kind, fmt.Sprintf(format, args...))
	}
	if name, ok := p.finite(); !ok {
		return fail("%s must be finite", name)
	}
	if p.HealthMax <= 0 {
		return fail("health_max must be positive")
	}
	if p.Defense < 0 || p.BaseDamage < 0 {
		return fail("defense and base_damage must not be negative")
	}
	for i, th := range p.Tiers {
		if th <= 0 || th >= 1 {
			return fail("tier threshold %v out of (0,1)", th)
		}
		if i > 0 && th >= p.Tiers[i-1] {
			return fail("tier thresholds must be descending")
		}
	}
	a := p.Aggression
	if a.SpeedPerLevel < 0 || a.SpeedPerTier < 0 || a.RatePerLevel < 0 || a.RatePerTier < 0 {
		return fail("aggression coefficients must not be negative")
	}
	if a.CooldownFloor <= 0 || a.CooldownFloor > 1 {
		return fail("cooldown_floor must be in (0,1]")
	}
	if len(p.Pool.Base) == 0 {
		return fail("attack pool is empty")
	}
	check := func(id AttackID) error {
		if moves[id] == nil {
			return fmt.Errorf("%w: %s: %s has no choreography", ErrUnknownAttack, p.Kind, id)
		}
		return nil
	}
	if err := check(p.Pool.Default); err != nil {
		return err
	}
	for _, id := range p.Pool.Base {
		if err := check(id); err != nil {
			return err
		}
	}
	for _, b := range p.Pool.Bonus {
		for _, id := range b.Attacks {
			if err := check(id); err != nil {
				return err
			}
		}
	}
	if p.Pool.Climax != AttackNone {
		if err := check(p.Pool.Climax); err != nil {
			return err
		}
	}
	for id := range p.Timings {
		if err := check(id); err != nil {
			return err
		}
	}
	e := p.Engagement
	if e.EnrageDistance > 0 && e.HardTeleportDistance > 0 && e.HardTeleportDistance <= e.EnrageDistance {
		return fail("hard teleport distance must exceed enrage distance")
	}
	if tr := p.Transition; tr != nil {
		if tr.Threshold <= 0 || tr.Threshold >= 1 {
			return fail("transition threshold %v out of (0,1)", tr.Threshold)
		}
		m := tr.Multipliers
		if m.Damage <= 0 || m.Defense <= 0 || m.Movement <= 0 {
			return fail("transition multipliers must be positive")
		}
	}
	return nil
}

// finite returns the name of the first NaN or infinite number in the profile.
func (p *Profile) finite() (string, bool) {
	a, e := p.Aggression, p.Engagement
	type field struct {
		name string
		v    float64
	}
	named := []field{
		{"health_max", p.HealthMax},
		{"defense", p.Defense},
		{"base_damage", p.BaseDamage},
		{"speed_per_level", a.SpeedPerLevel},
		{"speed_per_tier", a.SpeedPerTier},
		{"rate_per_level", a.RatePerLevel},
		{"rate_per_tier", a.RatePerTier},
		{"cooldown_floor", a.CooldownFloor},
		{"move_speed", p.MoveSpeed},
		{"hover_offset", p.HoverOffset.X + p.HoverOffset.Y},
		{"reposition_offset", p.RepositionOffset.X + p.RepositionOffset.Y},
		{"enrage_distance", e.EnrageDistance},
		{"hard_teleport_distance", e.HardTeleportDistance},
		{"teleport_distance", e.TeleportDistance},
		{"enrage_speed", e.EnrageSpeed},
		{"volley_speed", e.VolleySpeed},
		{"target_range", p.TargetRange},
		{"despawn_rise", p.DespawnRise},
	}
	if tr := p.Transition; tr != nil {
		m := tr.Multipliers
		named = append(named, field{"transition", tr.Threshold + m.Damage + m.Defense + m.Movement})
	}
	for _, n := range named {
		if math.IsNaN(n.v) || math.IsInf(n.v, 0) {
			return n.name, false
		}
	}
	for _, v := range p.TierDamageScale {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "tier_damage_scale", false
		}
	}
	for _, v := range p.Tiers {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "tiers", false
		}
	}
	return "", true
}
