package component

import "github.com/milk9111/maestro/boss"

// Boss binds an entity to an encounter. The controller is created lazily by
// the boss system from the shared catalog.
type Boss struct {
	Kind       boss.Kind
	Radius     float64
	Controller *boss.Controller
	// Script is the optional ambient script path.
	Script string
}

var BossComponent = NewComponent[Boss]()
