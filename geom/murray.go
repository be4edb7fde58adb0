package geom

import "math"

// MurrayRadius computes the parent radius implied by Murray's law for two
// child radii r_l, r_r and exponent gamma: (r_l^gamma + r_r^gamma)^(1/gamma).
// Typical gamma is 3.
func MurrayRadius(rl, rr, gamma float32) float32 {
	return float32(math.Pow(
		math.Pow(float64(rl), float64(gamma))+math.Pow(float64(rr), float64(gamma)),
		1.0/float64(gamma),
	))
}

// MurrayAngles computes the bifurcation angles (thetaL, thetaR) in degrees
// for a parent of radius rp branching into children of radius rl and rr.
// thetaL is negative, thetaR is positive; both are measured from the
// parent direction around the bifurcation plane normal.
func MurrayAngles(rp, rl, rr float32) (thetaL, thetaR float32) {
	rp2, rl2, rr2 := float64(rp)*float64(rp), float64(rl)*float64(rl), float64(rr)*float64(rr)
	rp4, rl4, rr4 := rp2*rp2, rl2*rl2, rr2*rr2

	left := clamp((rp4+rl4-rr4)/(2*rp2*rl2), -1, 1)
	right := clamp((rp4-rl4+rr4)/(2*rp2*rr2), -1, 1)

	thetaL = float32(-degrees(math.Acos(left)))
	thetaR = float32(degrees(math.Acos(right)))
	return thetaL, thetaR
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
