// perf/units.go
// Copyright(c) 2024-2026 SF50-TOLD contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

// All internal computation is done in the AFM's units: feet, knots,
// degrees Celsius, inches of mercury, and pounds. Unit preferences only
// affect how a rendered report formats values.

const (
	FeetPerNauticalMile = 6076.115
	MetersPerFoot       = 0.3048

	StandardSeaLevelPressure    = 29.92 // inHg
	StandardSeaLevelTemperature = 15.0  // Celsius

	// Temperature lapse per 1000 ft in the troposphere; this is the
	// 6.5C/km value the AFM tables were built with, not the rounded
	// 1.98 sometimes quoted.
	ISALapseRate = 1.9812
)

// Certified weight envelope and the weight search granularity.
const (
	MinimumCertifiedWeight = 4500 // lb
	MaximumCertifiedWeight = 6000 // lb
	WeightIncrement        = 50   // lb
)

// Certified minimum climb gradients, ft/nm. An obstacle NOTAM can raise
// the takeoff requirement above the baseline but never lower it.
const (
	MinimumClimbGradient         = 200
	MinimumGoAroundClimbGradient = 200
)

type DistanceUnit int

const (
	UnitFeet DistanceUnit = iota
	UnitMeters
)

func (u DistanceUnit) String() string {
	if u == UnitMeters {
		return "m"
	}
	return "ft"
}

// Settings carries the process-wide preferences that the surrounding
// application would otherwise keep as ambient state; the engine takes
// them explicitly on every entry point.
type Settings struct {
	// SafetyFactor scales computed distances; values below 1 are
	// treated as 1.
	SafetyFactor float64      `json:"safety_factor"`
	DistanceUnit DistanceUnit `json:"distance_unit"`
}

func (s Settings) safetyFactor() float64 {
	if s.SafetyFactor < 1 {
		return 1
	}
	return s.SafetyFactor
}

// FormatDistance renders a distance outcome in the preferred unit.
// Non-value outcomes render as their kind.
func (s Settings) FormatDistance(o Outcome) string {
	if !o.IsValue() {
		return o.String()
	}
	if s.DistanceUnit == UnitMeters {
		o = o.scale(MetersPerFoot)
	}
	return o.String() + " " + s.DistanceUnit.String()
}
