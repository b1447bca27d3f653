// perf/wind.go
// Copyright(c) 2024-2026 SF50-TOLD contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

import "github.com/RISCfuture/SF50-TOLD-sub003/math"

// WindComponents decomposes the wind into headwind and crosswind
// components relative to a runway heading. Headwind is positive blowing
// down the runway toward the aircraft; crosswind is positive from the
// right. Calm or variable wind (nil direction) gives zero components.
func WindComponents(c Conditions, runwayHeading float64) (headwind, crosswind float64) {
	if c.WindDirection == nil || c.WindSpeed == 0 {
		return 0, 0
	}
	rel := math.Radians(*c.WindDirection - runwayHeading)
	return c.WindSpeed * math.Cos(rel), c.WindSpeed * math.Sin(rel)
}
