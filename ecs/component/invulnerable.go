package component

// Invulnerable marks an entity as temporarily immune to damage. Frames > 0
// counts down each tick; Frames == 0 means indefinite until removed.
type Invulnerable struct {
	Frames int
}

var InvulnerableComponent = NewComponent[Invulnerable]()
