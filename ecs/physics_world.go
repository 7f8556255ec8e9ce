package ecs

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/maestro/common"
)

// BodyKind selects how a body responds to forces.
type BodyKind int

const (
	// BodyKinematic bodies move only by their velocity.
	BodyKinematic BodyKind = iota
	// BodyDynamic bodies also respond to impulses (knockback).
	BodyDynamic
)

// PhysicsWorld owns the Chipmunk space. The arena is top-down so gravity is
// zero and every shape is a sensor; contact is resolved by the gameplay
// systems, the space only integrates motion.
type PhysicsWorld struct {
	space  *cp.Space
	bodies map[Entity]*cp.Body
	shapes map[Entity]*cp.Shape
}

func NewPhysicsWorld(damping float64) *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})
	if damping > 0 && damping <= 1 {
		space.SetDamping(damping)
	}
	return &PhysicsWorld{
		space:  space,
		bodies: make(map[Entity]*cp.Body),
		shapes: make(map[Entity]*cp.Shape),
	}
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// AddBody creates a circular body for e at pos. An existing body is returned
// unchanged.
func (pw *PhysicsWorld) AddBody(e Entity, pos cp.Vector, radius float64, kind BodyKind) *cp.Body {
	if pw == nil || pw.space == nil {
		return nil
	}
	if body, ok := pw.bodies[e]; ok {
		return body
	}
	if radius <= 0 {
		radius = 1
	}

	var body *cp.Body
	switch kind {
	case BodyDynamic:
		mass := 1.0
		body = cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	default:
		body = cp.NewKinematicBody()
	}
	body.SetPosition(pos)
	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetSensor(true)

	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	pw.bodies[e] = body
	pw.shapes[e] = shape
	return body
}

// Body returns the body for e, if any.
func (pw *PhysicsWorld) Body(e Entity) (*cp.Body, bool) {
	if pw == nil {
		return nil, false
	}
	body, ok := pw.bodies[e]
	return body, ok
}

// RemoveBody detaches e's body from the space.
func (pw *PhysicsWorld) RemoveBody(e Entity) {
	if pw == nil || pw.space == nil {
		return
	}
	if shape, ok := pw.shapes[e]; ok {
		pw.space.RemoveShape(shape)
		delete(pw.shapes, e)
	}
	if body, ok := pw.bodies[e]; ok {
		pw.space.RemoveBody(body)
		delete(pw.bodies, e)
	}
}

// SetVelocityPerTick sets e's velocity from a per-tick displacement.
func (pw *PhysicsWorld) SetVelocityPerTick(e Entity, v cp.Vector) {
	if body, ok := pw.Body(e); ok {
		body.SetVelocityVector(v.Mult(common.TPS))
	}
}

// VelocityPerTick reports e's velocity as a per-tick displacement.
func (pw *PhysicsWorld) VelocityPerTick(e Entity) cp.Vector {
	if body, ok := pw.Body(e); ok {
		return body.Velocity().Mult(1.0 / common.TPS)
	}
	return cp.Vector{}
}

// ApplyImpulse pushes a dynamic body. Kinematic bodies ignore impulses.
func (pw *PhysicsWorld) ApplyImpulse(e Entity, impulse cp.Vector) {
	body, ok := pw.Body(e)
	if !ok || body.GetType() != cp.BODY_DYNAMIC {
		return
	}
	body.ApplyImpulseAtWorldPoint(impulse, body.Position())
}

// Step advances the simulation by one tick.
func (pw *PhysicsWorld) Step() {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.Step(1.0 / common.TPS)
}

// Len reports the number of bodies in the space.
func (pw *PhysicsWorld) Len() int {
	if pw == nil {
		return 0
	}
	return len(pw.bodies)
}

// Reset removes every body.
func (pw *PhysicsWorld) Reset() {
	if pw == nil {
		return
	}
	n := len(pw.bodies)
	for e := range pw.bodies {
		pw.RemoveBody(e)
	}
	if n > 0 {
		log.Printf("PhysicsWorld: removed %d bodies", n)
	}
}
