// internal/utils/math.go
package utils

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

// Abs returns |x|.
func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
