package gamemath

import "math"

// Vec is a 2D vector in world units.
type Vec struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec { return Vec{X: v.X - o.X, Y: v.Y - o.Y} }

// Add returns v + o.
func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec { return Vec{X: v.X * s, Y: v.Y * s} }

// Len returns the euclidean length of v.
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Force is a launch force. X and Y are the scalar projections onto each
// axis; Magnitude and Angle describe the same vector in polar form.
type Force struct {
	X, Y      float64
	Magnitude float64
	Angle     float64 // radians, atan2(Y, X)
}

// Vec returns the force as a vector.
func (f Force) Vec() Vec { return Vec{X: f.X, Y: f.Y} }

// LaunchForce computes the rubber-band launch force for a pull from center
// to release. The ball flies away from the pull, so the force points from
// the release point back through the center and its magnitude is the pull
// length.
func LaunchForce(center, release Vec) Force {
	d := center.Sub(release)
	return Force{
		X:         d.X,
		Y:         d.Y,
		Magnitude: d.Len(),
		Angle:     math.Atan2(d.Y, d.X),
	}
}

// ClampPull limits the pull from center to release to maxLen, keeping its
// direction. A non-positive maxLen disables the limit.
func ClampPull(center, release Vec, maxLen float64) Vec {
	if maxLen <= 0 {
		return release
	}
	d := release.Sub(center)
	l := d.Len()
	if l <= maxLen || l == 0 {
		return release
	}
	return center.Add(d.Scale(maxLen / l))
}
