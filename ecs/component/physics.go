package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores the Chipmunk body backing an entity. Transform is synced
// from it after every physics step.
type PhysicsBody struct {
	Body    *cp.Body
	Radius  float64
	Dynamic bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
