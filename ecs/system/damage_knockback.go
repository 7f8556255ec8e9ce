package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/maestro/ecs"
	"github.com/milk9111/maestro/ecs/component"
)

const damageKnockbackImpulse = 40.0
const damageKnockbackMaxDeltaV = 220.0

// DamageKnockbackSystem turns knockback requests into physics impulses.
type DamageKnockbackSystem struct{}

func NewDamageKnockbackSystem() *DamageKnockbackSystem { return &DamageKnockbackSystem{} }

func (s *DamageKnockbackSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.DamageKnockbackRequestComponent.Kind(), func(e ecs.Entity, req *component.DamageKnockback) {
		applyDamageKnockback(w, e, req.SourceX, req.SourceY, req.Strength)
		ecs.Remove(w, e, component.DamageKnockbackRequestComponent.Kind())
	})
}

func applyDamageKnockback(w *ecs.World, target ecs.Entity, sourceX, sourceY, strength float64) {
	body, ok := ecs.Get(w, target, component.PhysicsBodyComponent.Kind())
	if !ok || body.Body == nil || !body.Dynamic {
		return
	}
	pos := body.Body.Position()

	dx := pos.X - sourceX
	dy := pos.Y - sourceY
	length := math.Hypot(dx, dy)
	if length <= 1e-6 {
		dx = 0
		dy = -1
		length = 1
	}
	nx := dx / length
	ny := dy / length

	impulse := damageKnockbackImpulse * strength
	w.PhysicsWorld().ApplyImpulse(target, cp.Vector{X: nx * impulse, Y: ny * impulse})

	// Cap the velocity along the knockback direction so stacked hits in one
	// tick don't launch the target across the arena.
	v := body.Body.Velocity()
	vDot := v.X*nx + v.Y*ny
	if vDot > damageKnockbackMaxDeltaV {
		tx := v.X - nx*vDot
		ty := v.Y - ny*vDot
		body.Body.SetVelocityVector(cp.Vector{
			X: tx + nx*damageKnockbackMaxDeltaV,
			Y: ty + ny*damageKnockbackMaxDeltaV,
		})
	}
}
