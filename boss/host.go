package boss

import "github.com/jakecoffman/cp"

// TargetRef identifies the closest valid target for the current tick. It is
// never stored across ticks.
type TargetRef struct {
	ID       uint64
	Position cp.Vector
	Velocity cp.Vector
}

// ProjectileHandle is an opaque host reference to a spawned projectile.
type ProjectileHandle uint64

// Projectile describes a hostile projectile or ground zone. Zones are
// projectiles with zero velocity.
type Projectile struct {
	Kind      ProjectileKind
	Origin    cp.Vector
	Velocity  cp.Vector // units per tick
	Damage    float64
	Knockback float64
	Radius    float64
	Lifetime  int // ticks, at least 1
}

// Host is everything the encounter needs from the game. Implementations are
// bound to a single boss entity.
type Host interface {
	// IsAuthority reports whether this node owns gameplay side effects.
	IsAuthority() bool
	SpawnProjectile(p Projectile) ProjectileHandle
	PlayEffect(kind EffectKind, pos cp.Vector, intensity float64)
	PlaySound(kind SoundKind, pos cp.Vector, pitchOffset float64)
	ShakeScreen(intensity float64, frames int)
	FindNearestValidTarget(origin cp.Vector, maxRange float64) (TargetRef, bool)
	ApplyAreaDamage(origin cp.Vector, radius, damage, falloff float64)
	// Despawn removes the boss entity.
	Despawn()
}

// Body is the boss's physical presence. Velocities are per tick; the host
// integrates them.
type Body interface {
	Position() cp.Vector
	SetPosition(p cp.Vector)
	Velocity() cp.Vector
	SetVelocity(v cp.Vector)
}

// Observer receives notifications from a controller. Any field may be nil.
type Observer struct {
	OnStateChange func(from, to State)
	OnTierChange  func(from, to int)
	OnAttack      func(id AttackID)
	OnRemoved     func(reason RemovalReason)
}

type RemovalReason int

const (
	RemovedDefeated RemovalReason = iota + 1
	RemovedDespawned
)

func (r RemovalReason) String() string {
	switch r {
	case RemovedDefeated:
		return "defeated"
	case RemovedDespawned:
		return "despawned"
	}
	return "none"
}
