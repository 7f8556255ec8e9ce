package boss

import (
	"math"

	"github.com/jakecoffman/cp"
)

func primaveraMoves() []*AttackDef {
	return []*AttackDef{
		{
			ID:     AttackBlossomSpiral,
			Timing: Timing{Telegraph: 40, TelegraphFloor: 18, Waves: 8, WavesPerTier: 2, WaveTicks: 8, Recovery: 36, DamageMul: 0.8, Knockback: 3, Speed: 5, Count: 4},
			Fire: func(a *Action) {
				a.Ring(ProjectileBlossom, a.Origin(), a.Timing.Count+a.Tier, a.Timing.Speed, 0.4*float64(a.Wave))
			},
			Wave: func(a *Action) {
				a.Hold(0.8)
			},
		},
		{
			ID:     AttackZephyrGust,
			Timing: Timing{Telegraph: 34, TelegraphFloor: 16, Waves: 1, WavesPerTier: 1, WaveTicks: 30, Recovery: 30, DamageMul: 0.9, Knockback: 16, Radius: 300, Range: RangePreference{Max: 350}},
			Telegraph: func(a *Action) {
				a.Hold(0.7)
				a.Effect(EffectMark, a.Origin(), a.Progress)
			},
			Fire: func(a *Action) {
				a.Area(a.Origin(), a.Timing.Radius, 0.3)
				a.Shake(4, 12)
			},
		},
		{
			ID:     AttackVerdantThorns,
			Timing: Timing{Telegraph: 50, TelegraphFloor: 24, Waves: 1, WavesPerTier: 1, WaveTicks: 40, Recovery: 30, DamageMul: 1.1, Knockback: 5, Count: 5, Radius: 200},
			Telegraph: func(a *Action) {
				a.MoveToward(a.Target.Position.Add(cp.Vector{X: 0, Y: -220}), 3)
				a.Effect(EffectMark, a.Target.Position, a.Progress)
			},
			Fire: func(a *Action) {
				spawnThorns(a, a.Target.Position, a.Timing.Count+a.Tier, a.Timing.Radius)
			},
		},
		{
			ID:     AttackSpringRain,
			Timing: Timing{Telegraph: 40, TelegraphFloor: 20, Waves: 4, WavesPerTier: 1, WaveTicks: 15, Recovery: 36, DamageMul: 0.8, Knockback: 2, Speed: 8, Count: 6, Range: RangePreference{Min: 500}},
			Fire: func(a *Action) {
				rain(a, ProjectileRaindrop, a.Target.Position, a.Timing.Count+a.Tier, 60)
			},
		},
		{
			ID:     AttackRiteOfSpring,
			Timing: Timing{Telegraph: 75, TelegraphFloor: 40, Waves: 5, WavesPerTier: 1, WaveTicks: 20, Recovery: 60, DamageMul: 1.2, Knockback: 6, Speed: 5, Count: 16, Radius: 160},
			Telegraph: func(a *Action) {
				a.Hold(0.75)
				a.Effect(EffectAura, a.Origin(), a.Progress)
			},
			Fire: func(a *Action) {
				a.Ring(ProjectileBlossom, a.Origin(), a.Timing.Count, a.Timing.Speed, 0.2*float64(a.Wave))
				spawnThorns(a, a.Target.Position, 3, a.Timing.Radius)
			},
			Wave: func(a *Action) {
				a.Hold(0.6)
			},
			Sound: SoundChime,
		},
	}
}

// spawnThorns scatters stationary zones around center.
func spawnThorns(a *Action, center cp.Vector, count int, radius float64) {
	for i := 0; i < count; i++ {
		angle := a.Rng.Float64() * 2 * math.Pi
		dist := radius * math.Sqrt(a.Rng.Float64())
		a.Spawn(Projectile{
			Kind:     ProjectileThorn,
			Origin:   center.Add(cp.ForAngle(angle).Mult(dist)),
			Radius:   24,
			Lifetime: 240,
		})
	}
}

// rain drops a row of projectiles onto center from above.
func rain(a *Action, kind ProjectileKind, center cp.Vector, count int, spacing float64) {
	for i := 0; i < count; i++ {
		x := center.X + (float64(i)-float64(count-1)/2)*spacing + (a.Rng.Float64()-0.5)*spacing/2
		a.Spawn(Projectile{
			Kind:     kind,
			Origin:   cp.Vector{X: x, Y: center.Y - 420},
			Velocity: cp.Vector{X: 0, Y: a.Timing.Speed},
			Lifetime: 120,
		})
	}
}

func primaveraAmbient(a *Ambient) {
	if a.Encounter.Elapsed%16 != 0 {
		return
	}
	a.Host.PlayEffect(EffectAura, a.Position, 0.2+0.2*float64(a.Encounter.Tier))
}
