package geom

import "gonum.org/v1/gonum/mat"

// BestLineFit returns the total-least-squares line through points: the
// centroid and the unit axis along the covariance matrix's eigenvector of
// largest eigenvalue. Ported from the original C++ implementation's
// law::bets_line_fit, which built the covariance of centered points and
// took the eigenvector for the largest eigenvalue out of Eigen's
// ascending-order SelfAdjointEigenSolver; mat.EigenSym returns eigenvalues
// in the same ascending order, so the analogous column here is the last one.
//
// Fewer than two points is a degenerate call; callers are expected to
// skip bifurcation growth rather than call this with zero or one point,
// but a single point still returns a well-defined centroid and an
// unspecified unit axis rather than panicking.
func BestLineFit(points []Point) (centroid, axis Point) {
	n := len(points)
	if n == 0 {
		return Point{}, Point{0, 0, 1}
	}

	var mean Point
	for _, p := range points {
		mean = Add(mean, p)
	}
	mean = Scale(1/float32(n), mean)

	if n == 1 {
		return mean, Point{0, 0, 1}
	}

	var cov [3][3]float64
	for _, p := range points {
		c := Sub(p, mean)
		cx, cy, cz := float64(c.X), float64(c.Y), float64(c.Z)
		cov[0][0] += cx * cx
		cov[0][1] += cx * cy
		cov[0][2] += cx * cz
		cov[1][1] += cy * cy
		cov[1][2] += cy * cz
		cov[2][2] += cz * cz
	}

	sym := mat.NewSymDense(3, []float64{
		cov[0][0], cov[0][1], cov[0][2],
		cov[0][1], cov[1][1], cov[1][2],
		cov[0][2], cov[1][2], cov[2][2],
	})

	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		return mean, Point{0, 0, 1}
	}

	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	// Eigenvalues are ascending; the largest-eigenvalue eigenvector is the
	// last column.
	const col = 2
	ax := Point{
		X: float32(vectors.At(0, col)),
		Y: float32(vectors.At(1, col)),
		Z: float32(vectors.At(2, col)),
	}
	return mean, Normalize(ax)
}
