package component

// Cooldown is a frame-based countdown. The cooldown system removes it at
// zero; challengers may only attack while it is absent.
type Cooldown struct {
	Frames int
}

var CooldownComponent = NewComponent[Cooldown]()
