package system

import (
	"math/rand"

	"github.com/milk9111/maestro/ecs"
	"github.com/milk9111/maestro/ecs/component"
)

// CameraSystem applies shake requests to the camera. The viewer offsets its
// drawing by the camera offset.
type CameraSystem struct {
	rng *rand.Rand
}

func NewCameraSystem(rng *rand.Rand) *CameraSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &CameraSystem{rng: rng}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	camEntity, ok := ecs.First(w, component.CameraTagComponent.Kind())
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}

	if req, ok := ecs.Get(w, camEntity, component.CameraShakeRequestComponent.Kind()); ok {
		cam.ShakeFrames = max(cam.ShakeFrames, req.Frames)
		cam.ShakeIntensity = max(cam.ShakeIntensity, req.Intensity)
		ecs.Remove(w, camEntity, component.CameraShakeRequestComponent.Kind())
	}

	if cam.ShakeFrames <= 0 {
		cam.ShakeIntensity = 0
		cam.OffsetX, cam.OffsetY = 0, 0
		return
	}
	cam.OffsetX = (cs.rng.Float64()*2 - 1) * cam.ShakeIntensity
	cam.OffsetY = (cs.rng.Float64()*2 - 1) * cam.ShakeIntensity
	cam.ShakeFrames--
}
