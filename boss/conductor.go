package boss

import (
	"math"

	"github.com/jakecoffman/cp"
)

// roseBloomHeal is the fraction of max health restored by a bloom.
const roseBloomHeal = 0.04

func conductorMoves() []*AttackDef {
	return []*AttackDef{
		{
			ID:     AttackPetalVolley,
			Timing: Timing{Telegraph: 36, TelegraphFloor: 16, Waves: 1, WavesPerTier: 1, WaveTicks: 24, Recovery: 30, DamageMul: 1, Knockback: 3, Speed: 6, Count: 7},
			Fire: func(a *Action) {
				a.Fan(ProjectilePetal, a.Origin(), a.Aim(), a.Timing.Count, 0.9, a.Timing.Speed)
			},
		},
		{
			ID:     AttackBatonStream,
			Timing: Timing{Telegraph: 30, TelegraphFloor: 14, Waves: 6, WavesPerTier: 2, WaveTicks: 6, Recovery: 36, DamageMul: 0.7, Knockback: 2, Speed: 9},
			Fire: func(a *Action) {
				wobble := 0.15 * math.Sin(float64(a.Wave))
				dir := cp.ForAngle(a.Aim().ToAngle() + wobble)
				a.Spawn(Projectile{Kind: ProjectileNote, Origin: a.Origin(), Velocity: dir.Mult(a.Timing.Speed)})
			},
			Wave: func(a *Action) {
				a.MoveToward(a.Target.Position.Add(cp.Vector{X: 0, Y: -200}), 2)
			},
		},
		{
			ID:     AttackChromaticWave,
			Timing: Timing{Telegraph: 50, TelegraphFloor: 24, Waves: 1, WavesPerTier: 1, WaveTicks: 40, Recovery: 40, DamageMul: 1.3, Knockback: 9, Speed: 4, Count: 16, Radius: 220},
			Fire: func(a *Action) {
				a.Area(a.Origin(), a.Timing.Radius, 0.4)
				a.Ring(ProjectileNote, a.Origin(), a.Timing.Count, a.Timing.Speed, 0)
				a.Shake(5, 20)
			},
			Sound: SoundChime,
		},
		{
			ID:     AttackRoseBloom,
			Timing: Timing{Telegraph: 60, TelegraphFloor: 30, Waves: 1, WaveTicks: 30, Recovery: 40, DamageMul: 0.8, Knockback: 2, Speed: 4, Count: 8},
			Telegraph: func(a *Action) {
				a.Hold(0.7)
				a.Effect(EffectHeal, a.Origin(), a.Progress)
			},
			Fire: func(a *Action) {
				a.Heal(roseBloomHeal)
				a.Ring(ProjectilePetal, a.Origin(), a.Timing.Count, a.Timing.Speed, math.Pi/8)
			},
			Sound: SoundChime,
		},
		{
			ID:     AttackCrescendo,
			Timing: Timing{Telegraph: 80, TelegraphFloor: 40, Waves: 8, WavesPerTier: 2, WaveTicks: 10, Recovery: 70, DamageMul: 1.25, Knockback: 6, Speed: 4, Count: 12},
			Telegraph: func(a *Action) {
				a.Hold(0.75)
				a.Shake(3*a.Progress, 2)
			},
			Fire: func(a *Action) {
				speed := a.Timing.Speed + 0.5*float64(a.Wave)
				a.Ring(ProjectileNote, a.Origin(), a.Timing.Count, speed, 0.2*float64(a.Wave))
				if a.Wave%2 == 1 {
					a.Fan(ProjectilePetal, a.Origin(), a.Aim(), 3, 0.3, speed+3)
				}
			},
			Wave: func(a *Action) {
				a.Hold(0.6)
			},
			Sound: SoundRoar,
		},
	}
}

func conductorAmbient(a *Ambient) {
	enc := a.Encounter
	if enc.Elapsed%10 == 0 {
		a.Host.PlayEffect(EffectAura, a.Position, 0.25+0.25*float64(enc.Phase)+0.15*float64(enc.Tier))
	}
	if enc.Phase > 0 && enc.Elapsed%120 == 0 {
		a.Host.PlaySound(SoundChime, a.Position, 0.1)
	}
}
