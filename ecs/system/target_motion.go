package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/maestro/common"
	"github.com/milk9111/maestro/ecs"
	"github.com/milk9111/maestro/ecs/component"
)

// targetSteer is how quickly a target's velocity converges on its scripted
// motion, leaving room for knockback to play out.
const targetSteer = 0.2

// targetInset keeps fleeing targets off the arena walls.
const targetInset = 32.0

// TargetMotionSystem scripts the movement of harness targets.
type TargetMotionSystem struct {
	Width  float64
	Height float64
}

func NewTargetMotionSystem(width, height float64) *TargetMotionSystem {
	return &TargetMotionSystem{Width: width, Height: height}
}

func (s *TargetMotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	bossPos, hasBoss := firstBossPosition(w)
	pw := w.PhysicsWorld()

	ecs.ForEach2(w, component.TargetMotionComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, m *component.TargetMotion, t *component.Transform) {
		if hp, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && !hp.IsAlive() {
			pw.SetVelocityPerTick(e, cp.Vector{})
			return
		}

		pos := t.Vec()
		var goal cp.Vector
		switch m.Mode {
		case component.MotionOrbit:
			m.Angle += m.Speed
			goal = m.Center.Add(cp.ForAngle(m.Angle).Mult(m.Orbit))
		case component.MotionFlee:
			goal = pos
			if hasBoss {
				away := pos.Sub(bossPos)
				if away.LengthSq() < 1e-9 {
					away = cp.Vector{X: 1}
				}
				goal = pos.Add(away.Normalize().Mult(m.Speed))
			}
		default:
			goal = m.Center
		}
		goal = s.clamp(goal)

		desired := goal.Sub(pos)
		if _, ok := pw.Body(e); !ok {
			t.Set(pos.Add(desired))
			return
		}
		v := pw.VelocityPerTick(e)
		pw.SetVelocityPerTick(e, cp.Vector{
			X: common.Lerp(v.X, desired.X, targetSteer),
			Y: common.Lerp(v.Y, desired.Y, targetSteer),
		})
	})
}

func (s *TargetMotionSystem) clamp(p cp.Vector) cp.Vector {
	if s.Width <= 0 || s.Height <= 0 {
		return p
	}
	return cp.Vector{
		X: common.Clamp(p.X, targetInset, s.Width-targetInset),
		Y: common.Clamp(p.Y, targetInset, s.Height-targetInset),
	}
}

func firstBossPosition(w *ecs.World) (cp.Vector, bool) {
	e, ok := ecs.First(w, component.BossComponent.Kind())
	if !ok {
		return cp.Vector{}, false
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return cp.Vector{}, false
	}
	return t.Vec(), true
}
