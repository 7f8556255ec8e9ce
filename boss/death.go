package boss

import "github.com/jakecoffman/cp"

// DeathConfig is the length of each death stage.
type DeathConfig struct {
	BuildupTicks int
	ClimaxTicks  int
	FadeTicks    int
}

const (
	deathBuildup = iota
	deathClimax
	deathFade
)

func (c *Controller) beginDeath() {
	e := &c.enc
	e.Dying = true
	e.Health = 1
	e.DamageEnabled = false
	e.Enraged = false
	c.setState(StateDying)
}

// tickDeath plays build-up, climax and fade. Health stays at 1 until the fade
// completes.
func (c *Controller) tickDeath() {
	e := &c.enc
	d := c.profile.Death
	e.FrameTimer++
	e.Health = 1
	c.hold(0.8)
	pos := c.body.Position()

	switch e.SubPhase {
	case deathBuildup:
		ticks := max(1, d.BuildupTicks)
		if e.FrameTimer == 1 {
			c.host.PlaySound(SoundDeathCry, pos, -0.3)
		}
		c.host.PlayEffect(EffectDeathBuildup, pos, float64(e.FrameTimer)/float64(ticks))
		if e.FrameTimer%15 == 0 {
			c.host.ShakeScreen(3, 10)
		}
		if e.FrameTimer >= ticks {
			c.nextStage()
		}
	case deathClimax:
		ticks := max(1, d.ClimaxTicks)
		if e.FrameTimer == 1 {
			c.host.PlayEffect(EffectDeathClimax, pos, 1)
			c.host.PlaySound(SoundImpact, pos, -0.5)
			c.host.ShakeScreen(14, ticks)
		}
		if e.FrameTimer >= ticks {
			c.nextStage()
		}
	default:
		ticks := max(1, d.FadeTicks)
		c.host.PlayEffect(EffectDeathFade, pos, 1-float64(e.FrameTimer)/float64(ticks))
		if e.FrameTimer >= ticks {
			e.Health = 0
			c.body.SetVelocity(cp.Vector{})
			c.remove(RemovedDefeated)
		}
	}
}
