// perf/data_test.go
// Copyright(c) 2024-2026 SF50-TOLD contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

import (
	"slices"
	"testing"
)

var testTables *TableSet

func loadTestTables(t *testing.T) *TableSet {
	t.Helper()
	if testTables == nil {
		var err error
		if testTables, err = LoadTables(nil); err != nil {
			t.Fatalf("LoadTables: %v", err)
		}
	}
	return testTables
}

func TestLoadTables(t *testing.T) {
	ts := loadTestTables(t)

	for _, key := range []string{
		"takeoff/ground run", "takeoff/total distance",
		"takeoff climb/gradient", "takeoff climb/rate",
		"landing/100/ground run", "landing/100/total distance",
		"landing/50/ground run", "landing/50/total distance",
		"landing/50 ice/ground run", "landing/50 ice/total distance",
		"go-around/100/gradient", "go-around/50/gradient", "go-around/50 ice/gradient",
		"vref/up", "vref/up ice", "vref/50", "vref/50 ice", "vref/100",
		"landing/contamination/water", "landing/contamination/slush wet snow",
		"landing/contamination/dry snow", "landing/contamination/compact snow",
		"factors/headwind", "factors/tailwind",
		"factors/takeoff gradient", "factors/landing gradient",
		"factors/unpaved", "factors/anti-ice climb penalty",
	} {
		if ts.Table(key) == nil {
			t.Errorf("missing table %q", key)
		}
	}
}

func TestTableShapes(t *testing.T) {
	ts := loadTestTables(t)

	gr := ts.Table("takeoff/ground run")
	if len(gr.Axes) != 3 {
		t.Fatalf("takeoff ground run has %d axes", len(gr.Axes))
	}
	for i, name := range []string{"weight", "altitude", "temperature"} {
		if gr.Axes[i].Name != name {
			t.Errorf("axis %d is %q, expected %q", i, gr.Axes[i].Name, name)
		}
	}
	if !slices.Equal(gr.Axes[0].Breakpoints, []float64{4500, 5000, 5500, 6000}) {
		t.Errorf("weight breakpoints: %v", gr.Axes[0].Breakpoints)
	}
	if n := len(gr.Axes[1].Breakpoints); n != 11 {
		t.Errorf("altitude has %d breakpoints", n)
	}
	if len(gr.Values) != 4*11*8 {
		t.Errorf("takeoff ground run has %d cells", len(gr.Values))
	}

	// Water and slush charts carry a depth axis; the snow charts don't.
	if n := len(ts.Table("landing/contamination/water").Axes); n != 2 {
		t.Errorf("water chart has %d axes", n)
	}
	if n := len(ts.Table("landing/contamination/dry snow").Axes); n != 1 {
		t.Errorf("dry snow chart has %d axes", n)
	}

	// The iced landing charts stop at 10C.
	ice := ts.Table("landing/50 ice/ground run")
	if _, hi := ice.AxisRange(2); hi != 10 {
		t.Errorf("50 ice temperature range ends at %v", hi)
	}
}

func TestDatasetVersionStable(t *testing.T) {
	_, v1, err := datasetManifest()
	if err != nil {
		t.Fatal(err)
	}
	_, v2, err := datasetManifest()
	if err != nil {
		t.Fatal(err)
	}
	if v1 != v2 || v1 == "" {
		t.Errorf("dataset version unstable: %q vs %q", v1, v2)
	}
}
