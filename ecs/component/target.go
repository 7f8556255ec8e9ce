package component

import "github.com/jakecoffman/cp"

// Target marks an entity the boss may pick as its target.
type Target struct {
	Name   string
	Radius float64
	// IFrames is how long the target is invulnerable after a hit.
	IFrames int
}

var TargetComponent = NewComponent[Target]()

type MotionMode int

const (
	MotionHold MotionMode = iota
	MotionOrbit
	MotionFlee
)

// TargetMotion scripts how a harness target moves. Orbit speed is radians
// per tick; flee speed is units per tick.
type TargetMotion struct {
	Mode   MotionMode
	Speed  float64
	Orbit  float64
	Center cp.Vector
	Angle  float64
}

var TargetMotionComponent = NewComponent[TargetMotion]()

// Challenger deals periodic damage to the nearest boss within Range.
type Challenger struct {
	Damage   float64
	Interval int
	Range    float64
}

var ChallengerComponent = NewComponent[Challenger]()
