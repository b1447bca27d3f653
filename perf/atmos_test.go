// perf/atmos_test.go
// Copyright(c) 2024-2026 SF50-TOLD contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

import (
	"testing"

	"github.com/RISCfuture/SF50-TOLD-sub003/math"
)

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestISATemperature(t *testing.T) {
	for _, tc := range []struct {
		alt, temp float64
	}{
		{0, 15},
		{1000, 13.0188},
		{2000, 11.0376},
		{5000, 5.094},
		{10000, -4.812},
	} {
		if isa := ISATemperature(tc.alt); !approx(isa, tc.temp, 1e-9) {
			t.Errorf("ISATemperature(%v) = %v, expected %v", tc.alt, isa, tc.temp)
		}
	}
}

func TestPressureAltitude(t *testing.T) {
	for _, tc := range []struct {
		elevation, slp, pa float64
	}{
		{0, 29.92, 0},
		{5000, 29.92, 5000},
		{5000, 28.92, 6000},
		{0, 30.42, -500},
	} {
		if pa := PressureAltitude(tc.elevation, tc.slp); !approx(pa, tc.pa, 1e-9) {
			t.Errorf("PressureAltitude(%v, %v) = %v, expected %v", tc.elevation, tc.slp, pa, tc.pa)
		}
	}
}

func TestDensityAltitude(t *testing.T) {
	// ISA deviation at 5000 ft for 25C is 19.906C.
	if da := DensityAltitude(5000, 25); !approx(da, 7364.8328, 1e-6) {
		t.Errorf("DensityAltitude(5000, 25) = %v, expected 7364.8328", da)
	}
	// No deviation, no change.
	if da := DensityAltitude(2000, ISATemperature(2000)); !approx(da, 2000, 1e-9) {
		t.Errorf("DensityAltitude at ISA = %v, expected 2000", da)
	}
}
