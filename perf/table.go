// perf/table.go
// Copyright(c) 2024-2026 SF50-TOLD contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

import (
	"fmt"
	"slices"

	"github.com/RISCfuture/SF50-TOLD-sub003/math"
)

// Axis is one independent variable of a performance table, with its
// breakpoints in strictly increasing order.
type Axis struct {
	Name        string    `json:"name"`
	Breakpoints []float64 `json:"breakpoints"`
}

// Table is an n-dimensional performance chart sampled at the cross
// product of its axes' breakpoints. Values are stored row-major with
// the last axis varying fastest; cells absent from the source chart
// (ragged charts) hold NaN. Fields are exported so tables round-trip
// through the msgpack object cache.
type Table struct {
	Name   string    `json:"name"`
	Axes   []Axis    `json:"axes"`
	Values []float64 `json:"values"`
}

// MakeTable builds a Table from scattered (coordinates..., value) rows,
// as parsed from a dataset CSV. Axis breakpoints are the sorted unique
// coordinates seen per axis; combinations never seen stay NaN.
func MakeTable(name string, axisNames []string, rows [][]float64) (*Table, error) {
	if len(axisNames) == 0 {
		return nil, fmt.Errorf("%s: no axes", name)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: no rows", name)
	}

	t := &Table{Name: name, Axes: make([]Axis, len(axisNames))}
	for i, an := range axisNames {
		var bps []float64
		for _, row := range rows {
			if len(row) != len(axisNames)+1 {
				return nil, fmt.Errorf("%s: row has %d fields, expected %d", name, len(row), len(axisNames)+1)
			}
			if !slices.Contains(bps, row[i]) {
				bps = append(bps, row[i])
			}
		}
		slices.Sort(bps)
		t.Axes[i] = Axis{Name: an, Breakpoints: bps}
	}

	n := 1
	for _, a := range t.Axes {
		n *= len(a.Breakpoints)
	}
	t.Values = make([]float64, n)
	for i := range t.Values {
		t.Values[i] = math.NaN()
	}

	for _, row := range rows {
		offset := 0
		for i, a := range t.Axes {
			j, ok := slices.BinarySearch(a.Breakpoints, row[i])
			if !ok {
				panic("breakpoint vanished") // unreachable: built above
			}
			offset = offset*len(a.Breakpoints) + j
		}
		if !math.IsNaN(t.Values[offset]) {
			return nil, fmt.Errorf("%s: duplicate cell at %v", name, row[:len(axisNames)])
		}
		t.Values[offset] = row[len(axisNames)]
	}
	return t, nil
}

// stride returns the flat-index distance between adjacent cells along
// the given axis.
func (t *Table) stride(axis int) int {
	s := 1
	for i := axis + 1; i < len(t.Axes); i++ {
		s *= len(t.Axes[i].Breakpoints)
	}
	return s
}

// AxisRange returns the first and last breakpoint of an axis.
func (t *Table) AxisRange(axis int) (lo, hi float64) {
	bps := t.Axes[axis].Breakpoints
	return bps[0], bps[len(bps)-1]
}

// Lookup interpolates the table at the given coordinates, one per axis.
// A coordinate outside its axis range gives an offscale outcome (the
// charts are never extrapolated); interpolation that touches a missing
// cell gives Invalid. Exact breakpoint hits return the stored value
// without floating-point drift.
func (t *Table) Lookup(coords ...float64) Outcome {
	if len(coords) != len(t.Axes) {
		panic(fmt.Sprintf("%s: %d coordinates for %d axes", t.Name, len(coords), len(t.Axes)))
	}

	idx := make([]int, len(coords))
	frac := make([]float64, len(coords))
	for i, a := range t.Axes {
		bps := a.Breakpoints
		c := coords[i]
		if c < bps[0] {
			return OffscaleLow
		}
		if c > bps[len(bps)-1] {
			return OffscaleHigh
		}

		j, found := slices.BinarySearch(bps, c)
		if found {
			idx[i], frac[i] = j, 0
		} else {
			idx[i] = j - 1
			frac[i] = (c - bps[j-1]) / (bps[j] - bps[j-1])
		}
	}

	v, ok := t.interp(0, idx, frac, 0)
	if !ok {
		return Invalid
	}
	return Value(v)
}

// interp recursively interpolates along one axis at a time, innermost
// last, blending the two bracketing sub-lookups with Lerp. A zero
// fraction short-circuits so that cells on the far side of an exact hit
// are never touched; that keeps ragged charts usable at their edges.
func (t *Table) interp(axis int, idx []int, frac []float64, offset int) (float64, bool) {
	if axis == len(t.Axes) {
		v := t.Values[offset]
		return v, !math.IsNaN(v)
	}

	stride := t.stride(axis)
	lo, ok := t.interp(axis+1, idx, frac, offset+idx[axis]*stride)
	if !ok {
		return 0, false
	}
	if frac[axis] == 0 {
		return lo, true
	}

	hi, ok := t.interp(axis+1, idx, frac, offset+(idx[axis]+1)*stride)
	if !ok {
		return 0, false
	}
	return math.Lerp(frac[axis], lo, hi), true
}
