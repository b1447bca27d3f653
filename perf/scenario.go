// perf/scenario.go
// Copyright(c) 2024-2026 SF50-TOLD contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

import (
	"github.com/RISCfuture/SF50-TOLD-sub003/math"
	"github.com/brunoga/deep"
)

// BaselineScenarioName is the name of the implicit zero scenario every
// report starts with.
const BaselineScenarioName = "Forecast Conditions"

// A Scenario perturbs the baseline inputs for a what-if report row:
// deltas applied to the weather and weight, plus optional overrides of
// the flap setting and runway contamination. The zero Scenario is an
// identity.
type Scenario struct {
	Name                  string              `json:"name"`
	DeltaTemperature      float64             `json:"delta_temperature,omitempty"`
	DeltaWindSpeed        float64             `json:"delta_wind_speed,omitempty"`
	DeltaWeight           float64             `json:"delta_weight,omitempty"`
	FlapsOverride         *FlapSetting        `json:"flaps_override,omitempty"`
	ContaminationOverride *ContaminationInput `json:"contamination_override,omitempty"`
	// ForceDry discards any contamination, NOTAMed or overridden.
	ForceDry bool `json:"force_dry,omitempty"`
}

func BaselineScenario() Scenario {
	return Scenario{Name: BaselineScenarioName}
}

// Apply returns the scenario's perturbation of the baseline inputs. The
// arguments are deep-copied first, so the returned values share no
// storage with the caller's and a zero scenario returns equal copies.
//
// A wind delta adjusts the wind speed along its current direction; if
// the adjusted speed goes negative the wind has effectively reversed,
// so the direction flips to its reciprocal and the speed becomes the
// magnitude.
func (s *Scenario) Apply(cond Conditions, cfg Configuration, rwy AdjustedRunway) (Conditions, Configuration, AdjustedRunway) {
	cond = deep.MustCopy(cond)
	cfg = deep.MustCopy(cfg)
	rwy = deep.MustCopy(rwy)

	cond.Temperature += s.DeltaTemperature
	if s.DeltaWindSpeed != 0 && cond.WindDirection != nil {
		speed := cond.WindSpeed + s.DeltaWindSpeed
		if speed < 0 {
			dir := math.OppositeHeading(*cond.WindDirection)
			cond.WindDirection = &dir
			speed = -speed
		}
		cond.WindSpeed = speed
	}

	cfg.Weight += s.DeltaWeight
	if s.FlapsOverride != nil {
		cfg.Flaps = *s.FlapsOverride
	}

	if s.ContaminationOverride != nil {
		c := *s.ContaminationOverride
		rwy.Contamination = &c
	}
	if s.ForceDry {
		rwy.Contamination = nil
	}
	return cond, cfg, rwy
}
