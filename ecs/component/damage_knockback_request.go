package component

// DamageKnockback is a transient component requesting the knockback system
// apply an impulse away from the source. The system removes it after use.
type DamageKnockback struct {
	SourceX  float64
	SourceY  float64
	Strength float64
}

var DamageKnockbackRequestComponent = NewComponent[DamageKnockback]()
