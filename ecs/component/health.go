package component

// DamageEvent describes one hit.
type DamageEvent struct {
	Amount    float64
	SourceX   float64
	SourceY   float64
	Knockback float64
	Source    uint64
}

// Health is a reusable health component for any entity that can take damage.
// Bosses mirror their encounter health here for display; their damage goes
// through the boss controller.
type Health struct {
	Max     float64
	Current float64
	Dead    bool

	OnDamage func(h *Health, evt DamageEvent)
	OnDeath  func(h *Health, evt DamageEvent)
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max float64) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// IsAlive reports whether the entity is alive.
func (h *Health) IsAlive() bool {
	return h != nil && !h.Dead && h.Current > 0
}

// ApplyDamage applies damage. Returns true if damage was applied.
func (h *Health) ApplyDamage(evt DamageEvent) bool {
	if h == nil || h.Dead || evt.Amount <= 0 {
		return false
	}
	h.Current -= evt.Amount
	if h.Current < 0 {
		h.Current = 0
	}
	if h.OnDamage != nil {
		h.OnDamage(h, evt)
	}
	if h.Current <= 0 {
		h.Dead = true
		if h.OnDeath != nil {
			h.OnDeath(h, evt)
		}
	}
	return true
}

// Heal restores health up to Max.
func (h *Health) Heal(amount float64) {
	if h == nil || h.Dead || amount <= 0 {
		return
	}
	h.Current = min(h.Max, h.Current+amount)
}

// Fraction is Current over Max.
func (h *Health) Fraction() float64 {
	if h == nil || h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

// SetCurrentHP sets the current health value and clamps to [0, Max].
func (h *Health) SetCurrentHP(v float64) {
	if h == nil {
		return
	}
	h.Current = v
	if h.Current < 0 {
		h.Current = 0
	}
	if h.Max > 0 && h.Current > h.Max {
		h.Current = h.Max
	}
}

var HealthComponent = NewComponent[Health]()
