package system

import (
	"math"

	"github.com/milk9111/maestro/ecs"
	"github.com/milk9111/maestro/ecs/component"
)

// ChallengerSystem lets living challengers strike the nearest boss in range
// once per interval.
type ChallengerSystem struct{}

func NewChallengerSystem() *ChallengerSystem { return &ChallengerSystem{} }

func (s *ChallengerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.ChallengerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, c *component.Challenger, t *component.Transform) {
		if c.Damage <= 0 || ecs.Has(w, e, component.CooldownComponent.Kind()) {
			return
		}
		if hp, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && !hp.IsAlive() {
			return
		}

		var (
			target   ecs.Entity
			bestDist = math.Inf(1)
		)
		ecs.ForEach2(w, component.BossComponent.Kind(), component.TransformComponent.Kind(), func(be ecs.Entity, b *component.Boss, bt *component.Transform) {
			if b.Controller == nil || b.Controller.IsDead() {
				return
			}
			d := t.Vec().Distance(bt.Vec())
			if c.Range > 0 && d > c.Range+b.Radius {
				return
			}
			if d < bestDist {
				bestDist = d
				target = be
			}
		})
		if !target.Valid() {
			return
		}

		QueueDamage(w, target, component.DamageEvent{
			Amount:  c.Damage,
			SourceX: t.X,
			SourceY: t.Y,
			Source:  uint64(e),
		})
		if c.Interval > 0 {
			_ = ecs.Add(w, e, component.CooldownComponent.Kind(), &component.Cooldown{Frames: c.Interval})
		}
	})
}
