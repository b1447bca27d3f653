// perf/model_test.go
// Copyright(c) 2024-2026 SF50-TOLD contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

import (
	"testing"

	"github.com/RISCfuture/SF50-TOLD-sub003/math"
)

func testTabular(t *testing.T, settings Settings) *TabularModel {
	return NewTabularModel(loadTestTables(t), settings, nil)
}

func testRegression(t *testing.T, settings Settings) *RegressionModel {
	return NewRegressionModel(loadTestTables(t), settings, nil)
}

// A sea-level, level, paved 3000 ft runway pointing north.
func testRunway() AdjustedRunway {
	return AdjustRunway(RunwayInput{
		Name: "36", Length: 3000, Heading: 360, Elevation: 0,
	}, nil)
}

func takeoffConfig(weight float64) Configuration {
	return Configuration{Flaps: Flaps50, Weight: weight}
}

func TestAuthorization(t *testing.T) {
	m := testTabular(t, Settings{})
	cond := StandardConditions()
	rwy := testRunway()

	for _, tc := range []struct {
		metric Metric
		flaps  FlapSetting
		ok     bool
	}{
		{TakeoffGroundRun, Flaps50, true},
		{TakeoffGroundRun, Flaps100, false},
		{TakeoffDistance, FlapsUp, false},
		{TakeoffClimbGradient, Flaps50Ice, false},
		{LandingDistance, Flaps100, true},
		{LandingDistance, Flaps50Ice, true},
		{LandingDistance, FlapsUp, false},
		{LandingGroundRun, FlapsUpIce, false},
		{GoAroundClimbGradient, Flaps50, true},
		{GoAroundClimbGradient, FlapsUp, false},
		{Vref, FlapsUp, true},
		{Vref, FlapsUpIce, true},
		{Vref, Flaps100, true},
	} {
		o := m.Compute(tc.metric, cond, Configuration{Flaps: tc.flaps, Weight: 5000}, rwy)
		if tc.ok && o.Kind == OutcomeNotAuthorized {
			t.Errorf("%s with flaps %s: unexpectedly not authorized", tc.metric, tc.flaps)
		} else if !tc.ok && o.Kind != OutcomeNotAuthorized {
			t.Errorf("%s with flaps %s = %s, expected not authorized", tc.metric, tc.flaps, o)
		}
	}
}

func TestTakeoffContaminated(t *testing.T) {
	m := testTabular(t, Settings{})
	rwy := AdjustRunway(RunwayInput{Name: "36", Length: 3000, Heading: 360}, &NOTAMInput{
		Contamination: &ContaminationInput{Type: ContaminationDrySnow},
	})

	for _, metric := range []Metric{TakeoffGroundRun, TakeoffDistance, TakeoffClimbGradient, TakeoffClimbRate} {
		if o := m.Compute(metric, StandardConditions(), takeoffConfig(5000), rwy); o != NotAuthorized {
			t.Errorf("%s on contaminated runway = %s, expected not authorized", metric, o)
		}
	}
}

func TestBaseValues(t *testing.T) {
	m := testTabular(t, Settings{})
	cond := StandardConditions()
	cond.Temperature = 12
	rwy := testRunway()
	rwy.Elevation = 2500

	o := m.Compute(TakeoffGroundRun, cond, takeoffConfig(5250), rwy)
	if o.Kind != OutcomeValue || !approx(o.V, 1753.85, 1e-9) {
		t.Errorf("takeoff ground run = %s, expected 1753.85", o)
	}
	o = m.Compute(TakeoffDistance, cond, takeoffConfig(5250), rwy)
	if o.Kind != OutcomeValue || !approx(o.V, 2714.1, 1e-9) {
		t.Errorf("takeoff distance = %s, expected 2714.1", o)
	}
}

func TestOffscalePropagation(t *testing.T) {
	m := testTabular(t, Settings{SafetyFactor: 2})
	rwy := testRunway()

	// The weight is past the chart even though every correction that
	// follows would be well defined.
	if o := m.Compute(TakeoffGroundRun, StandardConditions(), takeoffConfig(6100), rwy); o != OffscaleHigh {
		t.Errorf("overweight = %s, expected offscale high", o)
	}
	cold := StandardConditions()
	cold.Temperature = -30
	if o := m.Compute(TakeoffGroundRun, cold, takeoffConfig(5000), rwy); o != OffscaleLow {
		t.Errorf("cold = %s, expected offscale low", o)
	}
}

// baseline computes a metric with no wind, slope, surface, or safety
// corrections for comparison against a corrected computation.
func baseline(t *testing.T, metric Metric, cfg Configuration) Outcome {
	return testTabular(t, Settings{}).Compute(metric, StandardConditions(), cfg, testRunway())
}

func TestWindFactors(t *testing.T) {
	m := testTabular(t, Settings{})
	cfg := takeoffConfig(5500)
	base := baseline(t, TakeoffGroundRun, cfg)

	// 10 kt headwind: 0.7% credit per knot.
	o := m.Compute(TakeoffGroundRun, windAt(360, 10), cfg, testRunway())
	if !approx(o.V, base.V*0.93, 1e-9) {
		t.Errorf("headwind: %s, expected %v", o, base.V*0.93)
	}

	// Headwind credit caps at the chart's 30 kt.
	o = m.Compute(TakeoffGroundRun, windAt(360, 40), cfg, testRunway())
	capped := m.Compute(TakeoffGroundRun, windAt(360, 30), cfg, testRunway())
	if o != capped {
		t.Errorf("40 kt headwind %s != 30 kt headwind %s", o, capped)
	}

	// 5 kt tailwind: 5% penalty per knot.
	o = m.Compute(TakeoffGroundRun, windAt(180, 5), cfg, testRunway())
	if !approx(o.V, base.V*1.25, 1e-9) {
		t.Errorf("tailwind: %s, expected %v", o, base.V*1.25)
	}

	// Beyond the 10 kt tailwind limit there is no data, and unlike
	// headwind this must not clamp.
	if o = m.Compute(TakeoffGroundRun, windAt(180, 15), cfg, testRunway()); o != OffscaleHigh {
		t.Errorf("15 kt tailwind = %s, expected offscale high", o)
	}
}

func TestGradientFactor(t *testing.T) {
	m := testTabular(t, Settings{})
	cfg := takeoffConfig(5500)
	base := baseline(t, TakeoffGroundRun, cfg)

	rwy := testRunway()
	rwy.Gradient = 0.01 // 1% uphill
	o := m.Compute(TakeoffGroundRun, StandardConditions(), cfg, rwy)
	if !approx(o.V, base.V*1.11, 1e-9) {
		t.Errorf("uphill takeoff: %s, expected %v", o, base.V*1.11)
	}

	// Landing runs longer downhill.
	ldgCfg := Configuration{Flaps: Flaps100, Weight: 5500}
	ldgBase := baseline(t, LandingGroundRun, ldgCfg)
	rwy.Gradient = -0.01
	o = m.Compute(LandingGroundRun, StandardConditions(), ldgCfg, rwy)
	if !approx(o.V, ldgBase.V*1.09, 1e-9) {
		t.Errorf("downhill landing: %s, expected %v", o, ldgBase.V*1.09)
	}
}

func TestUnpavedFactor(t *testing.T) {
	m := testTabular(t, Settings{})
	cfg := takeoffConfig(5000)
	base := baseline(t, TakeoffGroundRun, cfg)

	rwy := testRunway()
	rwy.Surface = SurfaceTurf
	o := m.Compute(TakeoffGroundRun, StandardConditions(), cfg, rwy)
	if !approx(o.V, base.V*1.21, 1e-9) {
		t.Errorf("turf: %s, expected %v", o, base.V*1.21)
	}
}

func TestSafetyFactor(t *testing.T) {
	cfg := takeoffConfig(5000)
	base := baseline(t, TakeoffGroundRun, cfg)

	m := testTabular(t, Settings{SafetyFactor: 1.5})
	o := m.Compute(TakeoffGroundRun, StandardConditions(), cfg, testRunway())
	if !approx(o.V, base.V*1.5, 1e-9) {
		t.Errorf("safety factor: %s, expected %v", o, base.V*1.5)
	}

	// Climb performance is never padded.
	grad := m.Compute(TakeoffClimbGradient, StandardConditions(), cfg, testRunway())
	gradBase := baseline(t, TakeoffClimbGradient, cfg)
	if grad != gradBase {
		t.Errorf("safety factor touched climb gradient: %s vs %s", grad, gradBase)
	}
}

func TestAntiIcePenalty(t *testing.T) {
	m := testTabular(t, Settings{})
	cond := StandardConditions()
	cond.Temperature = 5 // the iced charts stop at 10C
	rwy := testRunway()

	iced := Configuration{Flaps: Flaps50Ice, Weight: 5500}
	o := m.Compute(GoAroundClimbGradient, cond, iced, rwy)
	tab := loadTestTables(t).Table("go-around/50 ice/gradient")
	base := tab.Lookup(5500, 0, 5)
	if !approx(o.V, base.V-120, 1e-9) {
		t.Errorf("iced go-around gradient = %s, expected %v", o, base.V-120)
	}

	// The uncontaminated airframe pays no penalty.
	clean := Configuration{Flaps: Flaps100, Weight: 5500}
	o = m.Compute(GoAroundClimbGradient, cond, clean, rwy)
	cleanBase := loadTestTables(t).Table("go-around/100/gradient").Lookup(5500, 0, 5)
	if o != cleanBase {
		t.Errorf("clean go-around gradient = %s, expected %s", o, cleanBase)
	}
}

func TestVariantScalars(t *testing.T) {
	m := testTabular(t, Settings{})
	cond := StandardConditions()
	rwy := testRunway()

	g1 := takeoffConfig(5500)
	g2 := g1
	g2.Variant = VariantG2Plus

	d1 := m.Compute(TakeoffDistance, cond, g1, rwy)
	d2 := m.Compute(TakeoffDistance, cond, g2, rwy)
	if !approx(d2.V, d1.V*0.95, 1e-9) {
		t.Errorf("G2+ distance = %s, expected %v", d2, d1.V*0.95)
	}

	c1 := m.Compute(TakeoffClimbRate, cond, g1, rwy)
	c2 := m.Compute(TakeoffClimbRate, cond, g2, rwy)
	if !approx(c2.V, c1.V*1.08, 1e-9) {
		t.Errorf("G2+ climb rate = %s, expected %v", c2, c1.V*1.08)
	}

	v1 := m.Compute(Vref, cond, g1, rwy)
	v2 := m.Compute(Vref, cond, g2, rwy)
	if v1 != v2 {
		t.Errorf("G2+ changed Vref: %s vs %s", v2, v1)
	}
}

func TestContaminatedLanding(t *testing.T) {
	m := testTabular(t, Settings{})
	cond := StandardConditions()
	cfg := Configuration{Flaps: Flaps100, Weight: 5500}
	contaminated := AdjustRunway(RunwayInput{Name: "36", Length: 8000, Heading: 360}, &NOTAMInput{
		Contamination: &ContaminationInput{Type: ContaminationWater, Depth: 0.25},
	})

	// The contaminated distance is the supplement chart entered with
	// the corrected dry ground roll.
	dryGR := m.Compute(LandingGroundRun, cond, cfg, testRunway())
	if !dryGR.IsValue() {
		t.Fatalf("dry ground run = %s", dryGR)
	}
	expected := loadTestTables(t).Table("landing/contamination/water").Lookup(dryGR.V, 0.25)
	o := m.Compute(LandingDistance, cond, cfg, contaminated)
	if o.Kind != OutcomeValue || !approx(o.V, expected.V, 1e-9) {
		t.Errorf("contaminated landing distance = %s, expected %s", o, expected)
	}

	// No contaminated ground roll is published.
	if o := m.Compute(LandingGroundRun, cond, cfg, contaminated); o != NotAvailable {
		t.Errorf("contaminated ground run = %s, expected not available", o)
	}
}

func TestRegressionValue(t *testing.T) {
	m := testRegression(t, Settings{})
	cond := StandardConditions()
	cond.Temperature = 12
	rwy := testRunway()
	rwy.Elevation = 2500

	o := m.Compute(TakeoffDistance, cond, takeoffConfig(5250), rwy)
	if o.Kind != OutcomeValueWithin {
		t.Fatalf("regression outcome = %s, expected a banded value", o)
	}
	if !approx(o.V, 2704.1464262032064, 1e-6) || !approx(o.Band, 11.233882311176785, 1e-6) {
		t.Errorf("regression takeoff distance = %s", o)
	}
}

func TestRegressionEnvelope(t *testing.T) {
	m := testRegression(t, Settings{})
	rwy := testRunway()

	// The polynomial extends smoothly past the chart but must never be
	// evaluated there.
	if o := m.Compute(TakeoffGroundRun, StandardConditions(), takeoffConfig(6100), rwy); o != OffscaleHigh {
		t.Errorf("regression offscale = %s", o)
	}
}

func TestRegressionAgreement(t *testing.T) {
	// At every chart breakpoint the fit must sit within its own
	// recorded worst-case residual.
	for _, key := range []string{
		"takeoff/ground run", "takeoff/total distance",
		"takeoff climb/gradient", "takeoff climb/rate",
		"landing/100/total distance", "landing/50 ice/ground run",
		"go-around/50/gradient",
	} {
		tab := loadTestTables(t).Table(key)
		reg := regressions[key]
		for _, w := range tab.Axes[0].Breakpoints {
			for _, a := range tab.Axes[1].Breakpoints {
				for _, temp := range tab.Axes[2].Breakpoints {
					chart := tab.Lookup(w, a, temp)
					if chart.Kind != OutcomeValue {
						continue
					}
					fit := reg.eval(w, a, temp)
					if math.Abs(fit-chart.V) > reg.maxErr+1e-9 {
						t.Errorf("%s at (%v, %v, %v): fit %v vs chart %v exceeds band %v",
							key, w, a, temp, fit, chart.V, reg.maxErr)
					}
				}
			}
		}
	}
}

func TestVrefRegressionAgreement(t *testing.T) {
	for _, flaps := range []FlapSetting{FlapsUp, FlapsUpIce, Flaps50, Flaps50Ice, Flaps100} {
		key := "vref/" + flaps.String()
		tab := loadTestTables(t).Table(key)
		reg := regressions[key]
		for _, w := range tab.Axes[0].Breakpoints {
			chart := tab.Lookup(w)
			if fit := reg.eval(w, 0, 0); math.Abs(fit-chart.V) > reg.maxErr+1e-9 {
				t.Errorf("%s at %v: fit %v vs chart %v exceeds band %v", key, w, fit, chart.V, reg.maxErr)
			}
		}
	}
}
