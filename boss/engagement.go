package boss

import (
	"math"

	"github.com/jakecoffman/cp"
)

// EngagementConfig drives enrage hysteresis and the hard teleport.
type EngagementConfig struct {
	EnrageDistance float64
	SustainTicks   int
	DecayPerTick   int

	HardTeleportDistance float64
	// TeleportDistance is how far from the target a teleport lands.
	TeleportDistance float64

	EnrageSpeed float64
	VolleyTicks int
	VolleyCount int
	VolleySpeed float64
}

// monitorEngagement runs every non-lockout tick with a live target. The
// teleport is resolved first so enrage accounting sees the corrected
// distance.
func (c *Controller) monitorEngagement() {
	e := &c.enc
	cfg := c.profile.Engagement
	dist := c.body.Position().Distance(e.Target.Position)

	if cfg.HardTeleportDistance > 0 && dist > cfg.HardTeleportDistance {
		c.teleportNearTarget()
		dist = c.body.Position().Distance(e.Target.Position)
	}

	if cfg.EnrageDistance <= 0 {
		return
	}
	if dist >= cfg.EnrageDistance {
		e.EnrageTimer++
		if e.EnrageTimer > cfg.SustainTicks {
			if !e.Enraged {
				e.Enraged = true
				pos := c.body.Position()
				c.host.PlayEffect(EffectEnrage, pos, 1)
				c.host.PlaySound(SoundRoar, pos, 0.2)
			}
			if e.State != StateEnraged && e.State != StateSpawning && e.State != StateAttack {
				c.setState(StateEnraged)
			}
		}
		return
	}

	if e.EnrageTimer > 0 {
		e.EnrageTimer -= max(1, cfg.DecayPerTick)
		if e.EnrageTimer < 0 {
			e.EnrageTimer = 0
		}
	}
	if e.EnrageTimer == 0 && e.Enraged {
		e.Enraged = false
		if e.State == StateEnraged {
			c.setState(StateIdle)
		}
	}
}

// teleportNearTarget relocates the boss on the line toward the target,
// inside enrage range. It never touches the top-level state.
func (c *Controller) teleportNearTarget() {
	e := &c.enc
	cfg := c.profile.Engagement
	from := c.body.Position()

	offset := from.Sub(e.Target.Position)
	if offset.LengthSq() < 1e-9 {
		offset = cp.Vector{X: 0, Y: -1}
	}
	d := cfg.TeleportDistance
	if d <= 0 {
		d = cfg.EnrageDistance / 2
	}
	if cfg.EnrageDistance > 0 && d >= cfg.EnrageDistance {
		d = cfg.EnrageDistance * 0.9
	}
	to := e.Target.Position.Add(offset.Normalize().Mult(d))

	c.host.PlayEffect(EffectTeleport, from, 1)
	c.body.SetPosition(to)
	c.body.SetVelocity(cp.Vector{})
	c.host.PlayEffect(EffectTeleport, to, 1)
	c.host.PlaySound(SoundTeleport, to, 0)
}

// tickEnraged pursues the target and fires dense volleys. When the climax is
// unlocked it is launched from here.
func (c *Controller) tickEnraged() {
	e := &c.enc
	e.FrameTimer++
	cfg := c.profile.Engagement
	pos := c.body.Position()

	if e.FrameTimer%10 == 1 {
		c.host.PlayEffect(EffectAura, pos, 1)
	}

	if c.profile.Pool.ClimaxReady(c.selectInput()) && e.LastAttack != c.profile.Pool.Climax {
		c.beginAttack(c.profile.Pool.Climax)
		return
	}

	speed := cfg.EnrageSpeed
	if speed <= 0 {
		speed = c.profile.MoveSpeed * 1.5
	}
	c.steer(e.Target.Position, speed, 0.25)

	interval := max(1, int(math.Round(float64(cfg.VolleyTicks)*c.cooldownMultiplier())))
	if cfg.VolleyTicks > 0 && e.FrameTimer%interval == 0 && c.host.IsAuthority() {
		count := max(1, cfg.VolleyCount+e.Tier)
		speed := cfg.VolleySpeed
		if speed <= 0 {
			speed = 6
		}
		dir := e.Target.Position.Sub(pos)
		if dir.LengthSq() < 1e-9 {
			dir = cp.Vector{X: 0, Y: 1}
		}
		base := dir.ToAngle()
		spread := 0.6
		for i := 0; i < count; i++ {
			angle := base
			if count > 1 {
				angle = base - spread/2 + spread*float64(i)/float64(count-1)
			}
			c.host.SpawnProjectile(Projectile{
				Kind:      ProjectileBolt,
				Origin:    pos,
				Velocity:  cp.ForAngle(angle).Mult(speed),
				Damage:    c.damage(1),
				Knockback: 4,
				Radius:    8,
				Lifetime:  180,
			})
		}
		c.host.PlaySound(SoundCast, pos, 0.3)
	}
}
