package component

import "github.com/jakecoffman/cp"

type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

func (t *Transform) Vec() cp.Vector {
	return cp.Vector{X: t.X, Y: t.Y}
}

func (t *Transform) Set(v cp.Vector) {
	t.X, t.Y = v.X, v.Y
}

var TransformComponent = NewComponent[Transform]()
