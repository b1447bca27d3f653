// math/math.go
// Copyright(c) 2024-2026 SF50-TOLD contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"

	"golang.org/x/exp/constraints"
)

// Degrees converts an angle expressed in radians to degrees
func Degrees(r float64) float64 {
	return r * 180 / gomath.Pi
}

// Radians converts an angle expressed in degrees to radians
func Radians(d float64) float64 {
	return d / 180 * gomath.Pi
}

// A handful of wrappers around the standard math package follow; the
// performance tables are all float64 so these mostly exist to keep call
// sites tidy and to match the naming used elsewhere.

func Sin(a float64) float64 {
	return gomath.Sin(a)
}

func Cos(a float64) float64 {
	return gomath.Cos(a)
}

func Atan2(y, x float64) float64 {
	return gomath.Atan2(y, x)
}

func Sqrt(a float64) float64 {
	return gomath.Sqrt(a)
}

func Mod(a, b float64) float64 {
	return gomath.Mod(a, b)
}

func Pow(a, b float64) float64 {
	return gomath.Pow(a, b)
}

func IsNaN(a float64) bool {
	return gomath.IsNaN(a)
}

func NaN() float64 {
	return gomath.NaN()
}

func Round(a float64) float64 {
	return gomath.Round(a)
}

func Sign(v float64) float64 {
	if v > 0 {
		return 1
	} else if v < 0 {
		return -1
	}
	return 0
}

func Abs[V constraints.Integer | constraints.Float](x V) V {
	if x < 0 {
		return -x
	}
	return x
}

func Sqr[V constraints.Integer | constraints.Float](v V) V { return v * v }

func Clamp[T constraints.Ordered](x T, low T, high T) T {
	if x < low {
		return low
	} else if x > high {
		return high
	}
	return x
}

func Lerp(x, a, b float64) float64 {
	return (1-x)*a + x*b
}
