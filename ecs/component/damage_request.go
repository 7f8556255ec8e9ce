package component

// DamageRequest queues hits for the damage system. Hits from the same tick
// accumulate.
type DamageRequest struct {
	Hits []DamageEvent
}

var DamageRequestComponent = NewComponent[DamageRequest]()
