package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Rotate rotates p by angleDeg degrees around axis using a quaternion
// rotation, the idiomatic-Go analogue of the original's
// glm::rotate(dir, glm::radians(angle), axis).
func Rotate(p Point, angleDeg float32, axis Point) Point {
	v := toVec(p)
	a := toVec(axis)
	if r3.Norm(a) == 0 {
		return p
	}
	rot := r3.NewRotation(float64(angleDeg)*math.Pi/180, a)
	return fromVec(rot.Rotate(v))
}

func toVec(p Point) r3.Vec {
	return r3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
}

func fromVec(v r3.Vec) Point {
	return Point{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}
