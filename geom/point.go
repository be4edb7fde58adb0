// Package geom provides the vector, Murray's-law, and line-fit math shared
// by the forest, spatial index, and growth engine.
package geom

import "math"

// Point is a 3-D Cartesian coordinate with 32-bit components, matching the
// node and attraction-point position representation used throughout the
// forest and spatial index.
type Point struct {
	X, Y, Z float32
}

// Add returns p+q.
func Add(p, q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub returns p-q.
func Sub(p, q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Scale returns p scaled by s.
func Scale(s float32, p Point) Point {
	return Point{s * p.X, s * p.Y, s * p.Z}
}

// Dot returns the dot product of p and q.
func Dot(p, q Point) float32 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the cross product p x q.
func Cross(p, q Point) Point {
	return Point{
		p.Y*q.Z - p.Z*q.Y,
		p.Z*q.X - p.X*q.Z,
		p.X*q.Y - p.Y*q.X,
	}
}

// Length returns the Euclidean norm of p.
func Length(p Point) float32 {
	return float32(math.Sqrt(float64(Dot(p, p))))
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float32 {
	return Length(Sub(p, q))
}

// Normalize returns p scaled to unit length. A degenerate (zero-length)
// input returns the zero vector; callers that feed the result into further
// geometry must tolerate this the same way they tolerate a degenerate line
// fit (spec's §9 Open Question on best_line_fit).
func Normalize(p Point) Point {
	l := Length(p)
	if l == 0 {
		return Point{}
	}
	return Scale(1/l, p)
}
