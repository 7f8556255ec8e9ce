package boss

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/maestro/common"
)

// Timing is the tunable part of an attack. Zero fields in an override keep
// the default.
type Timing struct {
	Telegraph      int
	TelegraphFloor int
	Waves          int
	WavesPerTier   int
	WaveTicks      int
	Recovery       int
	DamageMul      float64
	Knockback      float64
	Speed          float64
	Count          int
	Radius         float64
	Range          RangePreference
}

func (t Timing) merge(o Timing) Timing {
	if o.Telegraph > 0 {
		t.Telegraph = o.Telegraph
	}
	if o.TelegraphFloor > 0 {
		t.TelegraphFloor = o.TelegraphFloor
	}
	if o.Waves > 0 {
		t.Waves = o.Waves
	}
	if o.WavesPerTier > 0 {
		t.WavesPerTier = o.WavesPerTier
	}
	if o.WaveTicks > 0 {
		t.WaveTicks = o.WaveTicks
	}
	if o.Recovery > 0 {
		t.Recovery = o.Recovery
	}
	if o.DamageMul > 0 {
		t.DamageMul = o.DamageMul
	}
	if o.Knockback > 0 {
		t.Knockback = o.Knockback
	}
	if o.Speed > 0 {
		t.Speed = o.Speed
	}
	if o.Count > 0 {
		t.Count = o.Count
	}
	if o.Radius > 0 {
		t.Radius = o.Radius
	}
	if o.Range.Min > 0 || o.Range.Max > 0 {
		t.Range = o.Range
	}
	return t
}

// wavesFor is the number of fire stages at tier, at least 1.
func (t Timing) wavesFor(tier int) int {
	n := t.Waves + tier*t.WavesPerTier
	if n < 1 {
		return 1
	}
	return n
}

// AttackDef is static choreography. Callbacks see only the Action; attacks
// keep no state beyond the stage index and frame timer.
type AttackDef struct {
	ID     AttackID
	Timing Timing
	// Telegraph runs every telegraph tick. Nil holds position.
	Telegraph func(a *Action)
	// Fire runs once at the first tick of each wave on the authoritative
	// node.
	Fire func(a *Action)
	// Wave runs every tick of a wave on every node. Nil holds position.
	Wave func(a *Action)
	// Recover runs every recovery tick. Nil holds position.
	Recover func(a *Action)
	Sound   SoundKind
}

// Choreography maps attack ids to their definitions. It is built once and
// shared read-only by every controller.
type Choreography map[AttackID]*AttackDef

// Action is the view an attack callback gets of the encounter for one tick.
type Action struct {
	c        *Controller
	Def      *AttackDef
	Timing   Timing
	Tier     int
	Wave     int
	Waves    int
	Frame    int
	Progress float64
	Target   TargetRef
	Rng      *rand.Rand
}

func (a *Action) Host() Host           { return a.c.host }
func (a *Action) Origin() cp.Vector    { return a.c.body.Position() }
func (a *Action) Enraged() bool        { return a.c.enc.Enraged }
func (a *Action) Encounter() Encounter { return a.c.enc }

// Aim is the unit vector from the boss to the target.
func (a *Action) Aim() cp.Vector {
	d := a.Target.Position.Sub(a.Origin())
	if d.LengthSq() < 1e-9 {
		return cp.Vector{X: 0, Y: 1}
	}
	return d.Normalize()
}

// Damage is base × attack multiplier × tier scale × phase multiplier.
func (a *Action) Damage() float64 {
	return a.c.damage(a.Timing.DamageMul)
}

// Spawn fills in damage, knockback and lifetime defaults and hands the
// projectile to the host.
func (a *Action) Spawn(p Projectile) ProjectileHandle {
	if p.Damage <= 0 {
		p.Damage = a.Damage()
	}
	if p.Knockback <= 0 {
		p.Knockback = a.Timing.Knockback
	}
	if p.Lifetime < 1 {
		p.Lifetime = 3 * common.TPS
	}
	if p.Radius <= 0 {
		p.Radius = 8
	}
	return a.c.host.SpawnProjectile(p)
}

// Fan spawns count projectiles spread evenly across spread radians around dir.
func (a *Action) Fan(kind ProjectileKind, from, dir cp.Vector, count int, spread, speed float64) {
	if count < 1 {
		return
	}
	base := dir.ToAngle()
	for i := 0; i < count; i++ {
		angle := base
		if count > 1 {
			angle = base - spread/2 + spread*float64(i)/float64(count-1)
		}
		a.Spawn(Projectile{Kind: kind, Origin: from, Velocity: cp.ForAngle(angle).Mult(speed)})
	}
}

// Ring spawns count projectiles evenly around from, rotated by phase.
func (a *Action) Ring(kind ProjectileKind, from cp.Vector, count int, speed, phase float64) {
	for i := 0; i < count; i++ {
		angle := phase + 2*math.Pi*float64(i)/float64(count)
		a.Spawn(Projectile{Kind: kind, Origin: from, Velocity: cp.ForAngle(angle).Mult(speed)})
	}
}

// Area applies damage around origin with the attack's damage.
func (a *Action) Area(origin cp.Vector, radius, falloff float64) {
	a.c.host.ApplyAreaDamage(origin, radius, a.Damage(), falloff)
}

func (a *Action) Effect(kind EffectKind, pos cp.Vector, intensity float64) {
	a.c.host.PlayEffect(kind, pos, intensity)
}

func (a *Action) Sound(kind SoundKind, pitch float64) {
	a.c.host.PlaySound(kind, a.Origin(), pitch)
}

func (a *Action) Shake(intensity float64, frames int) {
	a.c.host.ShakeScreen(intensity, frames)
}

// Heal restores a fraction of max health.
func (a *Action) Heal(fraction float64) {
	a.c.Heal(a.c.enc.HealthMax * fraction)
}

// Hold damps the boss's velocity by keep per tick.
func (a *Action) Hold(keep float64) {
	a.c.hold(keep)
}

// MoveToward steers toward point at the scaled speed.
func (a *Action) MoveToward(point cp.Vector, speed float64) {
	a.c.steer(point, speed, 0.2)
}

// Launch sets the boss velocity directly, scaled by the movement multiplier.
func (a *Action) Launch(dir cp.Vector, speed float64) {
	a.c.body.SetVelocity(dir.Mult(speed * a.c.speedMultiplier()))
}

// stepAttack advances the executor one tick. It reports true when the attack
// has finished its recovery.
func (c *Controller) stepAttack() bool {
	e := &c.enc
	def := c.moves[e.CurrentAttack]
	if def == nil {
		return true
	}
	t := c.timing(def)
	e.FrameTimer++

	act := &Action{
		c:      c,
		Def:    def,
		Timing: t,
		Tier:   e.Tier,
		Waves:  t.wavesFor(e.Tier),
		Frame:  e.FrameTimer,
		Target: e.Target,
		Rng:    c.rng,
	}
	pos := c.body.Position()

	switch {
	case e.SubPhase == 0:
		ticks := c.telegraphTicks(t)
		act.Progress = math.Min(1, float64(e.FrameTimer)/float64(ticks))
		c.host.PlayEffect(EffectTelegraph, pos, act.Progress)
		if def.Telegraph != nil {
			def.Telegraph(act)
		} else {
			act.Hold(0.85)
		}
		if e.FrameTimer >= ticks {
			c.nextStage()
		}
	case e.SubPhase <= act.Waves:
		act.Wave = e.SubPhase - 1
		act.Progress = 1
		if e.FrameTimer == 1 {
			c.host.PlayEffect(EffectCommit, pos, 1)
			sound := def.Sound
			if sound == 0 {
				sound = SoundCast
			}
			c.host.PlaySound(sound, pos, 0.05*float64(act.Wave))
			if c.host.IsAuthority() && def.Fire != nil {
				def.Fire(act)
			}
		}
		if def.Wave != nil {
			def.Wave(act)
		} else {
			act.Hold(0.9)
		}
		if e.FrameTimer >= max(1, t.WaveTicks) {
			c.nextStage()
		}
	default:
		act.Progress = math.Min(1, float64(e.FrameTimer)/float64(max(1, t.Recovery)))
		if def.Recover != nil {
			def.Recover(act)
		} else {
			act.Hold(0.8)
		}
		if e.FrameTimer >= max(1, t.Recovery) {
			return true
		}
	}
	return false
}

func (c *Controller) nextStage() {
	c.enc.SubPhase++
	c.enc.FrameTimer = 0
}

// telegraphTicks shortens the telegraph with aggression and tier, never below
// the floor.
func (c *Controller) telegraphTicks(t Timing) int {
	floor := t.TelegraphFloor
	if floor <= 0 {
		floor = c.profile.TelegraphFloor
	}
	return common.ScaleTicks(t.Telegraph, c.cooldownMultiplier(), max(1, floor))
}

func (c *Controller) timing(def *AttackDef) Timing {
	if t, ok := c.timings[def.ID]; ok {
		return t
	}
	return def.Timing
}

func (c *Controller) rangeOf(id AttackID) RangePreference {
	if t, ok := c.timings[id]; ok {
		return t.Range
	}
	if def := c.moves[id]; def != nil {
		return def.Timing.Range
	}
	return RangePreference{}
}

func (c *Controller) damage(mul float64) float64 {
	if mul <= 0 {
		mul = 1
	}
	e := &c.enc
	scale := 1.0
	if n := len(c.profile.TierDamageScale); n > 0 {
		scale = c.profile.TierDamageScale[min(e.Tier, n-1)]
	}
	d := c.profile.BaseDamage * mul * scale * e.Stats.Damage
	if d < 0 {
		return 0
	}
	return d
}
