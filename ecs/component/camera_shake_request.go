package component

// CameraShakeRequest asks the camera system to apply a short shake effect.
// Intensity is measured in world units. Requests arriving in the same tick
// merge by taking the larger of each field.
type CameraShakeRequest struct {
	Frames    int
	Intensity float64
}

var CameraShakeRequestComponent = NewComponent[CameraShakeRequest]()
