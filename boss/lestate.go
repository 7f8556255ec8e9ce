package boss

import "github.com/jakecoffman/cp"

func lestateMoves() []*AttackDef {
	return []*AttackDef{
		{
			ID:     AttackSolarFlare,
			Timing: Timing{Telegraph: 45, TelegraphFloor: 20, Waves: 1, WavesPerTier: 1, WaveTicks: 30, Recovery: 36, DamageMul: 1.1, Knockback: 6, Speed: 6, Count: 16, Radius: 160},
			Fire: func(a *Action) {
				a.Ring(ProjectileFlare, a.Origin(), a.Timing.Count+4*a.Tier, a.Timing.Speed, 0.1*float64(a.Wave))
				a.Area(a.Origin(), a.Timing.Radius, 0.5)
			},
		},
		{
			ID:     AttackHeatwave,
			Timing: Timing{Telegraph: 40, TelegraphFloor: 18, Waves: 3, WavesPerTier: 1, WaveTicks: 30, Recovery: 40, DamageMul: 0.7, Knockback: 8, Radius: 180},
			Fire: func(a *Action) {
				a.Area(a.Origin(), a.Timing.Radius+60*float64(a.Wave), 0.6)
				a.Shake(3, 10)
			},
			Wave: func(a *Action) {
				a.Hold(0.85)
				a.Effect(EffectAura, a.Origin(), 1-float64(a.Frame)/float64(max(1, a.Timing.WaveTicks)))
			},
		},
		{
			ID:     AttackScorchingSun,
			Timing: Timing{Telegraph: 50, TelegraphFloor: 22, Waves: 10, WavesPerTier: 4, WaveTicks: 5, Recovery: 40, DamageMul: 0.8, Knockback: 3, Speed: 10},
			Telegraph: func(a *Action) {
				a.Hold(0.8)
				a.Effect(EffectMark, a.Target.Position, a.Progress)
			},
			// Sweeps 1.6 radians across the target over the waves.
			Fire: func(a *Action) {
				sweep := 1.6
				angle := a.Aim().ToAngle() - sweep/2
				if a.Waves > 1 {
					angle += sweep * float64(a.Wave) / float64(a.Waves-1)
				}
				a.Spawn(Projectile{Kind: ProjectileFlare, Origin: a.Origin(), Velocity: cp.ForAngle(angle).Mult(a.Timing.Speed)})
			},
		},
		{
			ID:     AttackCicadaSwarm,
			Timing: Timing{Telegraph: 36, TelegraphFloor: 16, Waves: 2, WavesPerTier: 1, WaveTicks: 30, Recovery: 30, DamageMul: 0.6, Knockback: 2, Speed: 4, Count: 10},
			Fire: func(a *Action) {
				base := a.Aim().ToAngle()
				for i := 0; i < a.Timing.Count+2*a.Tier; i++ {
					angle := base + (a.Rng.Float64()-0.5)*1.4
					speed := a.Timing.Speed * (0.6 + 0.4*a.Rng.Float64())
					a.Spawn(Projectile{Kind: ProjectileCicada, Origin: a.Origin(), Velocity: cp.ForAngle(angle).Mult(speed), Lifetime: 300})
				}
			},
		},
		{
			ID:     AttackZenith,
			Timing: Timing{Telegraph: 80, TelegraphFloor: 40, Waves: 4, WavesPerTier: 1, WaveTicks: 24, Recovery: 70, DamageMul: 1.3, Knockback: 7, Speed: 5, Count: 20},
			Telegraph: func(a *Action) {
				a.MoveToward(a.Target.Position.Add(cp.Vector{X: 0, Y: -320}), 5)
				a.Effect(EffectAura, a.Origin(), a.Progress)
			},
			Fire: func(a *Action) {
				a.Ring(ProjectileFlare, a.Origin(), a.Timing.Count, a.Timing.Speed, 0.15*float64(a.Wave))
				rain(a, ProjectileFlare, a.Target.Position, 4+a.Tier, 90)
				a.Shake(5, 12)
			},
			Wave: func(a *Action) {
				a.Hold(0.7)
			},
			Sound: SoundRoar,
		},
	}
}

func lestateAmbient(a *Ambient) {
	enc := a.Encounter
	if enc.Elapsed%8 != 0 {
		return
	}
	intensity := 0.3 + 0.2*float64(enc.Tier)
	if enc.Phase > 0 {
		intensity += 0.3
	}
	a.Host.PlayEffect(EffectAura, a.Position, intensity)
}
