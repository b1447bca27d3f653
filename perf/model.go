// perf/model.go
// Copyright(c) 2024-2026 SF50-TOLD contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

import (
	"github.com/RISCfuture/SF50-TOLD-sub003/log"
	"github.com/RISCfuture/SF50-TOLD-sub003/math"
)

type Metric int

const (
	TakeoffGroundRun Metric = iota
	TakeoffDistance
	TakeoffClimbGradient
	TakeoffClimbRate
	Vref
	LandingGroundRun
	LandingDistance
	GoAroundClimbGradient
)

func (m Metric) String() string {
	return [...]string{"takeoff ground run", "takeoff distance", "takeoff climb gradient",
		"takeoff climb rate", "vref", "landing ground run", "landing distance",
		"go-around climb gradient"}[m]
}

func (m Metric) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m Metric) isDistance() bool {
	switch m {
	case TakeoffGroundRun, TakeoffDistance, LandingGroundRun, LandingDistance:
		return true
	}
	return false
}

func (m Metric) isTakeoff() bool {
	switch m {
	case TakeoffGroundRun, TakeoffDistance, TakeoffClimbGradient, TakeoffClimbRate:
		return true
	}
	return false
}

func (m Metric) isClimbGradient() bool {
	return m == TakeoffClimbGradient || m == GoAroundClimbGradient
}

// A Model computes one performance metric for the given weather,
// aircraft configuration, and (NOTAM-adjusted) runway. Implementations
// differ only in where the uncorrected chart value comes from; the
// correction pipeline is shared.
type Model interface {
	Compute(metric Metric, cond Conditions, cfg Configuration, rwy AdjustedRunway) Outcome
}

// G2+ scalars relative to the G1 charts.
const (
	g2DistanceFactor = 0.95
	g2ClimbFactor    = 1.08
)

// baseFunc produces the uncorrected chart value for a metric at the
// given weight, pressure altitude, and temperature.
type baseFunc func(metric Metric, cfg Configuration, pressureAlt, temperature float64) Outcome

type modelCore struct {
	tables   *TableSet
	settings Settings
	lg       *log.Logger
}

// authorized reports whether the AFM publishes data for this metric and
// flap setting at all. Takeoff is certified with flaps 50 only; the
// landing and go-around charts cover 100, 50, and 50 ice; Vref exists
// for every setting.
func authorized(metric Metric, flaps FlapSetting) bool {
	switch {
	case metric.isTakeoff():
		return flaps == Flaps50
	case metric == Vref:
		return true
	default:
		return flaps == Flaps100 || flaps == Flaps50 || flaps == Flaps50Ice
	}
}

// compute runs the shared pipeline: authorization, atmosphere, base
// chart value, then corrections. An offscale or invalid base propagates
// untouched even when every later correction would be well defined.
func (mc *modelCore) compute(base baseFunc, metric Metric, cond Conditions, cfg Configuration, rwy AdjustedRunway) Outcome {
	if !authorized(metric, cfg.Flaps) {
		return NotAuthorized
	}
	if metric.isTakeoff() && rwy.Contamination != nil {
		// No contaminated-runway takeoff data is published.
		return NotAuthorized
	}

	pa := PressureAltitude(rwy.Elevation, cond.SeaLevelPressure)
	headwind, _ := WindComponents(cond, rwy.Heading)

	if metric == LandingGroundRun && rwy.Contamination != nil {
		// The contamination supplement gives only total landing
		// distance; there is no contaminated ground roll chart.
		return NotAvailable
	}
	if metric == LandingDistance && rwy.Contamination != nil {
		return mc.contaminatedLandingDistance(base, cond, cfg, rwy, pa, headwind)
	}

	o := base(metric, cfg, pa, cond.Temperature)
	if !o.IsValue() {
		return o
	}

	o = mc.applyCorrections(o, metric, cfg, rwy, pa, headwind)
	return mc.applyVariant(o, metric, cfg.Variant)
}

// applyCorrections applies the AFM correction factors to a base chart
// value: wind and slope and surface factors for distances, the anti-ice
// climb penalty for gradients with an iced airframe, and finally the
// user's safety factor on distances.
func (mc *modelCore) applyCorrections(o Outcome, metric Metric, cfg Configuration, rwy AdjustedRunway, pa, headwind float64) Outcome {
	if metric.isDistance() {
		o = mc.applyWind(o, headwind)
		if !o.IsValue() {
			return o
		}

		gradTable := "factors/landing gradient"
		if metric.isTakeoff() {
			gradTable = "factors/takeoff gradient"
		}
		o = o.scale(mc.factor(gradTable, rwy.Gradient*100))

		if rwy.Surface == SurfaceTurf {
			o = o.scale(mc.factor("factors/unpaved", 1))
		}

		o = o.scale(mc.settings.safetyFactor())
	} else if metric.isClimbGradient() && cfg.Flaps.Iced() {
		o = o.add(mc.factor("factors/anti-ice climb penalty", pa))
	}
	return o
}

// applyWind scales a distance by the head/tailwind factor. Headwind
// credit is capped at the chart limit, but a tailwind beyond the chart
// is a real certification limit and comes back offscale.
func (mc *modelCore) applyWind(o Outcome, headwind float64) Outcome {
	t := mc.tables.Table("factors/headwind")
	x := headwind
	if headwind < 0 {
		t = mc.tables.Table("factors/tailwind")
		x = -headwind
	}
	lo, hi := t.AxisRange(0)
	if headwind >= 0 {
		x = math.Clamp(x, lo, hi)
	}

	f := t.Lookup(x)
	if !f.IsValue() {
		return f
	}
	return o.scale(f.V)
}

// factor interpolates a single-axis factor table, clamping the input to
// the table's range.
func (mc *modelCore) factor(name string, x float64) float64 {
	t := mc.tables.Table(name)
	lo, hi := t.AxisRange(0)
	f := t.Lookup(math.Clamp(x, lo, hi))
	if !f.IsValue() {
		mc.lg.Errorf("%s: factor lookup failed at %v: %s", name, x, f)
		return 1
	}
	return f.V
}

// contaminatedLandingDistance computes the landing distance over a
// contaminated surface: the corrected dry ground roll keys into the
// contamination supplement chart, whose output is the total distance.
func (mc *modelCore) contaminatedLandingDistance(base baseFunc, cond Conditions, cfg Configuration, rwy AdjustedRunway, pa, headwind float64) Outcome {
	gr := base(LandingGroundRun, cfg, pa, cond.Temperature)
	if !gr.IsValue() {
		return gr
	}

	gr = mc.applyWind(gr, headwind)
	if !gr.IsValue() {
		return gr
	}
	gr = gr.scale(mc.factor("factors/landing gradient", rwy.Gradient*100))
	if rwy.Surface == SurfaceTurf {
		gr = gr.scale(mc.factor("factors/unpaved", 1))
	}

	ct := mc.tables.Table("landing/contamination/" + rwy.Contamination.Type.String())
	var o Outcome
	if rwy.Contamination.Type.HasDepth() {
		o = ct.Lookup(gr.V, rwy.Contamination.Depth)
	} else {
		o = ct.Lookup(gr.V)
	}
	if !o.IsValue() {
		return o
	}

	// The chart entry loses the ground roll's own uncertainty; carry
	// it through so a regression-derived roll keeps its band.
	o = ValueWithin(o.V, gr.Band)
	o = o.scale(mc.settings.safetyFactor())
	return mc.applyVariant(o, LandingDistance, cfg.Variant)
}

func (mc *modelCore) applyVariant(o Outcome, metric Metric, v Variant) Outcome {
	if v != VariantG2Plus {
		return o
	}
	if metric.isDistance() {
		return o.scale(g2DistanceFactor)
	}
	if metric != Vref {
		return o.scale(g2ClimbFactor)
	}
	return o
}
