package system

import (
	"github.com/milk9111/maestro/ecs"
	"github.com/milk9111/maestro/ecs/component"
)

// projectileMargin is how far past the arena edge a projectile may travel
// before it is culled.
const projectileMargin = 64.0

// ProjectileSystem moves body-less projectiles, culls those that leave the
// arena and queues damage on targets they touch.
type ProjectileSystem struct {
	Width  float64
	Height float64
}

func NewProjectileSystem(width, height float64) *ProjectileSystem {
	return &ProjectileSystem{Width: width, Height: height}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Projectile, t *component.Transform) {
		if !ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			t.X += p.Velocity.X
			t.Y += p.Velocity.Y
		}
		if s.outside(t) {
			ecs.DestroyEntity(w, e)
			return
		}

		spent := false
		ecs.ForEach2(w, component.TargetComponent.Kind(), component.TransformComponent.Kind(), func(te ecs.Entity, tg *component.Target, tt *component.Transform) {
			if spent || ecs.Has(w, te, component.InvulnerableComponent.Kind()) {
				return
			}
			if hp, ok := ecs.Get(w, te, component.HealthComponent.Kind()); ok && !hp.IsAlive() {
				return
			}
			if t.Vec().Distance(tt.Vec()) > p.Radius+tg.Radius {
				return
			}
			QueueDamage(w, te, component.DamageEvent{
				Amount:    p.Damage,
				SourceX:   t.X,
				SourceY:   t.Y,
				Knockback: p.Knockback,
				Source:    p.Owner,
			})
			if !p.Zone {
				spent = true
			}
		})
		if spent {
			ecs.DestroyEntity(w, e)
		}
	})
}

func (s *ProjectileSystem) outside(t *component.Transform) bool {
	if s.Width <= 0 || s.Height <= 0 {
		return false
	}
	return t.X < -projectileMargin || t.Y < -projectileMargin ||
		t.X > s.Width+projectileMargin || t.Y > s.Height+projectileMargin
}
