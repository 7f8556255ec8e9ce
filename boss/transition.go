package boss

import "github.com/jakecoffman/cp"

// TransitionConfig describes an optional mid-fight transformation.
type TransitionConfig struct {
	Name            string
	Threshold       float64
	TransitionTicks int
	AwakeningTicks  int
	Multipliers     Multipliers
}

// checkThresholds hands the encounter to the transition or death sequence.
// The transition wins when one hit crosses both: health is clamped to the
// threshold instead.
func (c *Controller) checkThresholds() {
	e := &c.enc
	if e.Dying || e.Removed {
		return
	}
	if tr := c.profile.Transition; tr != nil && !e.TransitionTriggered && !e.State.Lockout() &&
		e.Health <= tr.Threshold*e.HealthMax {
		c.beginTransition(tr)
		return
	}
	if e.Health <= 0 {
		c.beginDeath()
	}
}

func (c *Controller) beginTransition(tr *TransitionConfig) {
	e := &c.enc
	e.TransitionTriggered = true
	e.Health = tr.Threshold * e.HealthMax
	e.DamageEnabled = false
	e.Enraged = false
	e.EnrageTimer = 0
	c.setState(StatePhaseTransition)
}

func (c *Controller) tickTransition() {
	e := &c.enc
	tr := c.profile.Transition
	if tr == nil {
		c.setState(StateIdle)
		e.DamageEnabled = true
		return
	}
	e.FrameTimer++
	c.body.SetVelocity(cp.Vector{})
	pos := c.body.Position()

	switch e.State {
	case StatePhaseTransition:
		ticks := max(1, tr.TransitionTicks)
		if e.FrameTimer == 1 {
			c.host.PlaySound(SoundRoar, pos, -0.2)
			c.host.ShakeScreen(6, ticks)
		}
		c.host.PlayEffect(EffectTransitionBurst, pos, float64(e.FrameTimer)/float64(ticks))
		if e.FrameTimer >= ticks {
			c.setState(StatePhaseAwakening)
		}
	case StatePhaseAwakening:
		ticks := max(1, tr.AwakeningTicks)
		if e.FrameTimer == 1 {
			c.host.PlaySound(SoundTransform, pos, 0)
		}
		c.host.PlayEffect(EffectAwakening, pos, float64(e.FrameTimer)/float64(ticks))
		if e.FrameTimer >= ticks {
			e.Stats = tr.Multipliers
			e.Phase = 1
			e.ConsecutiveAttacks = 0
			e.Cooldown = c.profile.InitialDelay
			e.DamageEnabled = true
			c.host.ShakeScreen(10, 30)
			c.setState(StateIdle)
		}
	}
}
