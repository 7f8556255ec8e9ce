package component

// Camera holds the screen-shake state the viewer offsets its draw by.
type Camera struct {
	ShakeFrames    int
	ShakeIntensity float64
	OffsetX        float64
	OffsetY        float64
}

var CameraComponent = NewComponent[Camera]()
