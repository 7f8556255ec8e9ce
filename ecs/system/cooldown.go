package system

import (
	"github.com/milk9111/maestro/ecs"
	"github.com/milk9111/maestro/ecs/component"
)

// CooldownSystem counts down Cooldown components and removes them at zero.
type CooldownSystem struct{}

func NewCooldownSystem() *CooldownSystem { return &CooldownSystem{} }

func (s *CooldownSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.CooldownComponent.Kind(), func(e ecs.Entity, cd *component.Cooldown) {
		if cd.Frames > 0 {
			cd.Frames--
		}
		if cd.Frames <= 0 {
			ecs.Remove(w, e, component.CooldownComponent.Kind())
		}
	})
}
