// perf/tabular.go
// Copyright(c) 2024-2026 SF50-TOLD contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

import "github.com/RISCfuture/SF50-TOLD-sub003/log"

// TabularModel interpolates the digitized AFM charts directly; its
// values are exact at chart breakpoints.
type TabularModel struct {
	modelCore
}

func NewTabularModel(tables *TableSet, settings Settings, lg *log.Logger) *TabularModel {
	return &TabularModel{modelCore{tables: tables, settings: settings, lg: lg}}
}

func (m *TabularModel) Compute(metric Metric, cond Conditions, cfg Configuration, rwy AdjustedRunway) Outcome {
	return m.compute(m.base, metric, cond, cfg, rwy)
}

// baseTableKey returns the dataset key for a metric's chart given the
// flap setting. Callers check authorization first, so flap-specific
// charts always exist for the settings that reach here.
func baseTableKey(metric Metric, flaps FlapSetting) string {
	switch metric {
	case TakeoffGroundRun:
		return "takeoff/ground run"
	case TakeoffDistance:
		return "takeoff/total distance"
	case TakeoffClimbGradient:
		return "takeoff climb/gradient"
	case TakeoffClimbRate:
		return "takeoff climb/rate"
	case Vref:
		return "vref/" + flaps.String()
	case LandingGroundRun:
		return "landing/" + flaps.String() + "/ground run"
	case LandingDistance:
		return "landing/" + flaps.String() + "/total distance"
	case GoAroundClimbGradient:
		return "go-around/" + flaps.String() + "/gradient"
	}
	panic("unhandled metric")
}

func (m *TabularModel) base(metric Metric, cfg Configuration, pressureAlt, temperature float64) Outcome {
	tab := m.tables.Table(baseTableKey(metric, cfg.Flaps))
	if tab == nil {
		return Invalid
	}
	if metric == Vref {
		return tab.Lookup(cfg.Weight)
	}
	return tab.Lookup(cfg.Weight, pressureAlt, temperature)
}
