// perf/notam.go
// Copyright(c) 2024-2026 SF50-TOLD contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

// AdjustedRunway is a runway with its NOTAM state folded in: shortened
// declared distances, any surface contamination, and the climb gradient
// the departure actually requires.
type AdjustedRunway struct {
	RunwayInput
	Contamination *ContaminationInput `json:"contamination,omitempty"`
	// RequiredClimbGradient is the takeoff gradient requirement in
	// ft/nm; at least the certified minimum, more if an obstacle NOTAM
	// demands it.
	RequiredClimbGradient float64 `json:"required_climb_gradient"`
}

// AdjustRunway folds a runway's NOTAMs into its declared distances and
// constraints. A nil NOTAM leaves the runway as published. Shortenings
// clamp at zero; an obstacle can only raise the required gradient,
// never relax it below the certified minimum.
func AdjustRunway(rwy RunwayInput, notam *NOTAMInput) AdjustedRunway {
	a := AdjustedRunway{
		RunwayInput:           rwy,
		RequiredClimbGradient: MinimumClimbGradient,
	}

	// Declared distances fall back to the physical length when the
	// runway record doesn't carry them, so shortenings always have
	// something to subtract from.
	if a.TORA == 0 {
		a.TORA = rwy.Length
	}
	if a.TODA == 0 {
		a.TODA = a.TORA
	}
	if a.LDA == 0 {
		a.LDA = max(0, rwy.Length-rwy.DisplacedThreshold)
	}

	if notam == nil {
		return a
	}

	a.TORA = max(0, a.TORA-notam.TakeoffShortening)
	a.TODA = max(0, a.TODA-notam.TakeoffShortening)
	a.LDA = max(0, a.LDA-notam.LandingShortening)

	if notam.Contamination != nil {
		c := *notam.Contamination
		a.Contamination = &c
	}

	if obs := notam.Obstacle; obs != nil && obs.Distance > 0 {
		required := obs.Height / obs.Distance * FeetPerNauticalMile
		a.RequiredClimbGradient = max(MinimumClimbGradient, required)
	}
	return a
}
