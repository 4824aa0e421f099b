package gamemath

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	return Clamp(speed, -max, max)
}

// Smooth moves old one step toward target with a first-order filter:
// old + (target-old)/n. n <= 1 snaps to target.
func Smooth(old, target, n float64) float64 {
	if n <= 1 {
		return target
	}
	return old + (target-old)/n
}
