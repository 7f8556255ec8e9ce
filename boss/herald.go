package boss

import "github.com/jakecoffman/cp"

func heraldMoves() []*AttackDef {
	return []*AttackDef{
		{
			ID:     AttackCosmicBolts,
			Timing: Timing{Telegraph: 40, TelegraphFloor: 18, Waves: 2, WavesPerTier: 1, WaveTicks: 20, Recovery: 30, DamageMul: 1, Knockback: 4, Speed: 7, Count: 5},
			Telegraph: func(a *Action) {
				a.Hold(0.85)
				a.Effect(EffectMark, a.Target.Position, a.Progress*0.5)
			},
			Fire: func(a *Action) {
				a.Fan(ProjectileBolt, a.Origin(), a.Aim(), a.Timing.Count+a.Tier, 0.5, a.Timing.Speed)
			},
		},
		{
			ID:     AttackDestinyDash,
			Timing: Timing{Telegraph: 50, TelegraphFloor: 24, Waves: 2, WavesPerTier: 1, WaveTicks: 36, Recovery: 40, DamageMul: 1.4, Knockback: 10, Speed: 16, Radius: 48},
			Telegraph: func(a *Action) {
				a.Hold(0.8)
				a.Effect(EffectMark, a.Target.Position, a.Progress)
			},
			// The hitbox rides alongside the dash for its first half.
			Fire: func(a *Action) {
				a.Spawn(Projectile{
					Kind:     ProjectileStar,
					Origin:   a.Origin(),
					Velocity: a.Aim().Mult(a.Timing.Speed),
					Radius:   a.Timing.Radius,
					Lifetime: max(1, a.Timing.WaveTicks/2),
				})
			},
			Wave: func(a *Action) {
				switch {
				case a.Frame == 1:
					a.Launch(a.Aim(), a.Timing.Speed)
				case a.Frame > a.Timing.WaveTicks/2:
					a.Hold(0.85)
				}
			},
			Sound: SoundImpact,
		},
		{
			ID:     AttackConstellationRing,
			Timing: Timing{Telegraph: 45, TelegraphFloor: 20, Waves: 1, WavesPerTier: 1, WaveTicks: 30, Recovery: 40, DamageMul: 0.9, Knockback: 3, Speed: 5, Count: 12},
			Fire: func(a *Action) {
				a.Ring(ProjectileStar, a.Origin(), a.Timing.Count+4*a.Tier, a.Timing.Speed, 0.26*float64(a.Wave))
			},
		},
		{
			ID:     AttackFatedStrike,
			Timing: Timing{Telegraph: 60, TelegraphFloor: 30, Waves: 1, WavesPerTier: 1, WaveTicks: 40, Recovery: 30, DamageMul: 1.6, Knockback: 8, Radius: 140},
			Telegraph: func(a *Action) {
				a.MoveToward(a.Target.Position.Add(cp.Vector{X: 0, Y: -260}), 4)
				a.Effect(EffectMark, a.Target.Position, a.Progress)
			},
			Fire: func(a *Action) {
				a.Area(a.Target.Position, a.Timing.Radius, 0.5)
				a.Shake(6, 15)
			},
			Sound: SoundImpact,
		},
		{
			ID:     AttackFinaleOfFate,
			Timing: Timing{Telegraph: 70, TelegraphFloor: 40, Waves: 6, WavesPerTier: 2, WaveTicks: 12, Recovery: 60, DamageMul: 1.2, Knockback: 5, Speed: 5, Count: 10},
			Telegraph: func(a *Action) {
				a.Hold(0.8)
				a.Shake(2*a.Progress, 2)
			},
			Fire: func(a *Action) {
				a.Ring(ProjectileStar, a.Origin(), a.Timing.Count, a.Timing.Speed, 0.35*float64(a.Wave))
			},
			Wave: func(a *Action) {
				a.Hold(0.7)
			},
			Sound: SoundChime,
		},
	}
}

func heraldAmbient(a *Ambient) {
	if a.Encounter.Elapsed%12 != 0 {
		return
	}
	a.Host.PlayEffect(EffectAura, a.Position, 0.3+0.2*float64(a.Encounter.Tier))
}
