package core

import "math"

// Clip limits value to [lo, hi]. The floor is applied before the ceiling, so
// when lo > hi every value collapses to hi.
func Clip(value, lo, hi float64) float64 {
	return math.Min(math.Max(value, lo), hi)
}

// ClipInPlace applies Clip to every element of buf.
func ClipInPlace(buf []float64, lo, hi float64) {
	for i, v := range buf {
		buf[i] = Clip(v, lo, hi)
	}
}

// Ratio writes num[i]/den[i] into dst and returns it. dst is reallocated when
// its capacity is too small; num and den must have the same length.
func Ratio(dst, num, den []float64) []float64 {
	dst = EnsureLen(dst, len(num))
	for i := range dst {
		dst[i] = num[i] / den[i]
	}

	return dst
}
