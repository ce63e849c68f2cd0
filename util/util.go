package util

import (
	"math/rand"

	"github.com/fogleman/ease"
)

// RandomiseSaturation picks a saturation in [min, max).
func RandomiseSaturation(min float64, max float64) float64 {
	return min + (max-min)*rand.Float64()
}

// GenerateLut builds a symmetric gain curve of the given length: eased in
// towards 1 at the midpoint, eased back out to 0 at either end.
func GenerateLut(length int) []float64 {
	half := length / 2
	lut := make([]float64, length)
	if half == 0 {
		return lut
	}
	for i := range lut {
		d := i
		if mirrored := length - 1 - i; mirrored < d {
			d = mirrored
		}
		lut[i] = ease.InOutQuad(float64(d) / float64(half))
	}
	return lut
}

// Memoizer caches LUTs by length so repeated scintillations of the same
// duration share a curve.
type Memoizer map[int][]float64

// GenerateLutMemoized is GenerateLut with a per-length cache.
func GenerateLutMemoized(length int, m Memoizer) []float64 {
	if lut, ok := m[length]; ok {
		return lut
	}
	lut := GenerateLut(length)
	m[length] = lut
	return lut
}
