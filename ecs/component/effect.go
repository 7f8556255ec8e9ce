package component

import "github.com/milk9111/maestro/boss"

// EffectRecord is the payload of an effect event.
type EffectRecord struct {
	Kind      boss.EffectKind
	X, Y      float64
	Intensity float64
	Source    uint64
}

// SoundRecord is the payload of a sound event.
type SoundRecord struct {
	Kind   boss.SoundKind
	X, Y   float64
	Pitch  float64
	Source uint64
}

// StateRecord is the payload of a boss state event.
type StateRecord struct {
	From, To boss.State
	Source   uint64
}

// AttackRecord is the payload of a boss attack event.
type AttackRecord struct {
	ID     boss.AttackID
	Source uint64
}

// TierRecord is the payload of a boss tier event.
type TierRecord struct {
	From, To int
	Source   uint64
}

// RemovalRecord is the payload of a boss removal event.
type RemovalRecord struct {
	Kind   boss.Kind
	Reason boss.RemovalReason
	Source uint64
}

// TargetDownRecord is the payload of a target down event.
type TargetDownRecord struct {
	Name   string
	Source uint64
}
