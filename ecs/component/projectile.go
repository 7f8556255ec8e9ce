package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/maestro/boss"
)

// Projectile is a hostile shot or ground zone spawned by a boss.
type Projectile struct {
	Kind      boss.ProjectileKind
	Damage    float64
	Knockback float64
	Radius    float64
	Owner     uint64
	// Zone projectiles linger after a hit; target i-frames pace them.
	Zone bool
	// Velocity moves projectiles that have no physics body. Units per tick.
	Velocity cp.Vector
}

var ProjectileComponent = NewComponent[Projectile]()
