// perf/wind_test.go
// Copyright(c) 2024-2026 SF50-TOLD contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

import "testing"

func windAt(dir, speed float64) Conditions {
	c := StandardConditions()
	c.WindDirection = &dir
	c.WindSpeed = speed
	return c
}

func TestWindComponents(t *testing.T) {
	for _, tc := range []struct {
		dir, speed, rwy float64
		hw, xw          float64
	}{
		{360, 10, 360, 10, 0},   // straight down the runway
		{180, 10, 360, -10, 0},  // direct tailwind
		{90, 10, 360, 0, 10},    // direct right crosswind
		{270, 10, 360, 0, -10},  // direct left crosswind
		{240, 10, 300, 5, -8.6602540378},
		{30, 20, 360, 17.3205080757, 10},
	} {
		hw, xw := WindComponents(windAt(tc.dir, tc.speed), tc.rwy)
		if !approx(hw, tc.hw, 1e-6) || !approx(xw, tc.xw, 1e-6) {
			t.Errorf("WindComponents(%v@%v, rwy %v) = %v, %v; expected %v, %v",
				tc.dir, tc.speed, tc.rwy, hw, xw, tc.hw, tc.xw)
		}
	}
}

func TestWindComponentsCalm(t *testing.T) {
	if hw, xw := WindComponents(StandardConditions(), 360); hw != 0 || xw != 0 {
		t.Errorf("calm wind gave components %v, %v", hw, xw)
	}

	// Variable wind with a reported speed still counts as calm.
	c := StandardConditions()
	c.WindSpeed = 8
	if hw, xw := WindComponents(c, 90); hw != 0 || xw != 0 {
		t.Errorf("variable wind gave components %v, %v", hw, xw)
	}
}
