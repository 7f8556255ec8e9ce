package boss

// AggressionCurve turns fight duration into speed and cooldown multipliers.
type AggressionCurve struct {
	RampTicks     int
	SpeedPerLevel float64
	SpeedPerTier  float64
	RatePerLevel  float64
	RatePerTier   float64
	CooldownFloor float64
}

// Level is min(1, elapsed/ramp). A non-positive ramp saturates immediately.
func (a AggressionCurve) Level(elapsed int) float64 {
	if elapsed <= 0 {
		return 0
	}
	if a.RampTicks <= 0 || elapsed >= a.RampTicks {
		return 1
	}
	return float64(elapsed) / float64(a.RampTicks)
}

func (a AggressionCurve) SpeedMultiplier(level float64, tier int) float64 {
	return 1 + level*a.SpeedPerLevel + float64(tier)*a.SpeedPerTier
}

func (a AggressionCurve) CooldownMultiplier(level float64, tier int) float64 {
	m := 1 - level*a.RatePerLevel - float64(tier)*a.RatePerTier
	if m < a.CooldownFloor {
		return a.CooldownFloor
	}
	return m
}

func (c *Controller) accumulateAggression() {
	e := &c.enc
	e.Elapsed++
	e.Aggression = c.profile.Aggression.Level(e.Elapsed)
}

func (c *Controller) speedMultiplier() float64 {
	e := &c.enc
	return c.profile.Aggression.SpeedMultiplier(e.Aggression, e.Tier) * e.Stats.Movement
}

func (c *Controller) cooldownMultiplier() float64 {
	e := &c.enc
	return c.profile.Aggression.CooldownMultiplier(e.Aggression, e.Tier)
}
