package boss

// TierThresholds are health fractions at or below which the tier rises by
// one. {0.6, 0.3} gives tiers 0, 1 and 2.
type TierThresholds []float64

// Tier is a pure step function of the health fraction. Lower fractions never
// give a lower tier.
func (t TierThresholds) Tier(fraction float64) int {
	tier := 0
	for _, th := range t {
		if fraction <= th {
			tier++
		}
	}
	return tier
}

// evaluateTier ratchets the encounter tier. Healing never lowers it.
func (c *Controller) evaluateTier() {
	e := &c.enc
	next := c.profile.Tiers.Tier(e.HealthFraction())
	if next <= e.Tier {
		return
	}
	prev := e.Tier
	e.Tier = next

	pos := c.body.Position()
	c.host.PlayEffect(EffectTierShift, pos, float64(next))
	c.host.PlaySound(SoundRoar, pos, 0.1*float64(next))
	c.host.ShakeScreen(4+2*float64(next), 20)
	if c.observer.OnTierChange != nil {
		c.observer.OnTierChange(prev, next)
	}
}
