package boss

import (
	"fmt"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/maestro/prefabs"
)

// Catalog is the read-only lookup table of profiles and choreography built
// once at startup and shared by every boss entity.
type Catalog struct {
	profiles map[Kind]*Profile
	moves    Choreography
}

// NewChoreography builds the attack table for every boss.
func NewChoreography() Choreography {
	moves := make(Choreography)
	for _, set := range [][]*AttackDef{heraldMoves(), conductorMoves(), primaveraMoves(), lestateMoves()} {
		for _, def := range set {
			moves[def.ID] = def
		}
	}
	return moves
}

func defaultAmbient(k Kind) AmbientHook {
	switch k {
	case KindHeraldOfFate:
		return AmbientFunc(heraldAmbient)
	case KindChromaticRoseConductor:
		return AmbientFunc(conductorAmbient)
	case KindPrimavera:
		return AmbientFunc(primaveraAmbient)
	case KindLEstate:
		return AmbientFunc(lestateAmbient)
	}
	return nil
}

// NewCatalog validates profiles against the built-in choreography.
func NewCatalog(profiles ...*Profile) (*Catalog, error) {
	c := &Catalog{
		profiles: make(map[Kind]*Profile, len(profiles)),
		moves:    NewChoreography(),
	}
	for _, p := range profiles {
		if err := p.Validate(c.moves); err != nil {
			return nil, err
		}
		if _, dup := c.profiles[p.Kind]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate profile", ErrInvalidProfile, p.Kind)
		}
		c.profiles[p.Kind] = p
	}
	return c, nil
}

// LoadCatalog reads every boss profile from prefabs.
func LoadCatalog() (*Catalog, error) {
	profiles := make([]*Profile, 0, len(prefabs.BossFiles))
	for _, name := range prefabs.BossFiles {
		spec, err := prefabs.LoadBossSpec(name)
		if err != nil {
			return nil, err
		}
		p, err := ProfileFromSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("boss: %s: %w", name, err)
		}
		profiles = append(profiles, p)
	}
	return NewCatalog(profiles...)
}

// Profile returns the profile for k.
func (c *Catalog) Profile(k Kind) (*Profile, error) {
	p, ok := c.profiles[k]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBoss, k)
	}
	return p, nil
}

func (c *Catalog) Moves() Choreography { return c.moves }

// NewController starts a fresh encounter for k.
func (c *Catalog) NewController(k Kind, rng *rand.Rand) (*Controller, error) {
	p, err := c.Profile(k)
	if err != nil {
		return nil, err
	}
	return NewController(p, c.moves, rng), nil
}

// ProfileFromSpec converts a decoded YAML profile.
func ProfileFromSpec(spec prefabs.BossSpec) (*Profile, error) {
	kind, err := ParseKind(spec.Name)
	if err != nil {
		return nil, err
	}
	ids := func(names []string) ([]AttackID, error) {
		out := make([]AttackID, 0, len(names))
		for _, n := range names {
			id, err := ParseAttackID(n)
			if err != nil {
				return nil, err
			}
			out = append(out, id)
		}
		return out, nil
	}

	p := &Profile{
		Kind:            kind,
		DisplayName:     spec.DisplayName,
		HealthMax:       spec.Health,
		Defense:         spec.Defense,
		BaseDamage:      spec.BaseDamage,
		TierDamageScale: spec.TierDamageScale,
		Tiers:           TierThresholds(spec.TierThresholds),
		Aggression: AggressionCurve{
			RampTicks:     spec.Aggression.RampTicks,
			SpeedPerLevel: spec.Aggression.SpeedPerLevel,
			SpeedPerTier:  spec.Aggression.SpeedPerTier,
			RatePerLevel:  spec.Aggression.RatePerLevel,
			RatePerTier:   spec.Aggression.RatePerTier,
			CooldownFloor: spec.Aggression.CooldownFloor,
		},
		Timings:            make(map[AttackID]Timing, len(spec.Timings)),
		TelegraphFloor:     spec.TelegraphFloor,
		PostAttackCooldown: spec.PostAttackCooldown,
		InitialDelay:       spec.InitialDelay,
		SpawnTicks:         spec.SpawnTicks,
		MoveSpeed:          spec.Movement.Speed,
		HoverOffset:        cp.Vector{X: spec.Movement.Hover.X, Y: spec.Movement.Hover.Y},
		RepositionEvery:    spec.Movement.RepositionEvery,
		RepositionTicks:    spec.Movement.RepositionTicks,
		RepositionOffset:   cp.Vector{X: spec.Movement.RepositionOffset.X, Y: spec.Movement.RepositionOffset.Y},
		Engagement: EngagementConfig{
			EnrageDistance:       spec.Engagement.EnrageDistance,
			SustainTicks:         spec.Engagement.SustainTicks,
			DecayPerTick:         spec.Engagement.DecayPerTick,
			HardTeleportDistance: spec.Engagement.HardTeleportDistance,
			TeleportDistance:     spec.Engagement.TeleportDistance,
			EnrageSpeed:          spec.Engagement.EnrageSpeed,
			VolleyTicks:          spec.Engagement.VolleyTicks,
			VolleyCount:          spec.Engagement.VolleyCount,
			VolleySpeed:          spec.Engagement.VolleySpeed,
		},
		TargetRange:  spec.TargetRange,
		DespawnTicks: spec.DespawnTicks,
		DespawnRise:  spec.DespawnRise,
		Death: DeathConfig{
			BuildupTicks: spec.Death.BuildupTicks,
			ClimaxTicks:  spec.Death.ClimaxTicks,
			FadeTicks:    spec.Death.FadeTicks,
		},
		AmbientScript: spec.AmbientScript,
		Ambient:       defaultAmbient(kind),
	}

	if p.Pool.Base, err = ids(spec.Attacks.Base); err != nil {
		return nil, err
	}
	for _, b := range spec.Attacks.Bonus {
		attacks, err := ids(b.Attacks)
		if err != nil {
			return nil, err
		}
		p.Pool.Bonus = append(p.Pool.Bonus, TierBonus{MinTier: b.MinTier, Attacks: attacks})
	}
	if p.Pool.Default, err = ParseAttackID(spec.Attacks.Default); err != nil {
		return nil, err
	}
	if spec.Attacks.Climax != "" {
		if p.Pool.Climax, err = ParseAttackID(spec.Attacks.Climax); err != nil {
			return nil, err
		}
		p.Pool.ClimaxAfter = spec.Attacks.ClimaxAfter
		p.Pool.ClimaxWhileEnraged = spec.Attacks.ClimaxWhileEnraged
	}
	for name, t := range spec.Timings {
		id, err := ParseAttackID(name)
		if err != nil {
			return nil, err
		}
		p.Timings[id] = Timing{
			Telegraph:      t.Telegraph,
			TelegraphFloor: t.TelegraphFloor,
			Waves:          t.Waves,
			WavesPerTier:   t.WavesPerTier,
			WaveTicks:      t.WaveTicks,
			Recovery:       t.Recovery,
			DamageMul:      t.DamageMul,
			Knockback:      t.Knockback,
			Speed:          t.Speed,
			Count:          t.Count,
			Radius:         t.Radius,
			Range:          RangePreference{Min: t.MinRange, Max: t.MaxRange},
		}
	}
	if tr := spec.Transition; tr != nil {
		p.Transition = &TransitionConfig{
			Name:            tr.Name,
			Threshold:       tr.Threshold,
			TransitionTicks: tr.TransitionTicks,
			AwakeningTicks:  tr.AwakeningTicks,
			Multipliers:     Multipliers{Damage: tr.Damage, Defense: tr.Defense, Movement: tr.Movement},
		}
	}
	return p, nil
}
