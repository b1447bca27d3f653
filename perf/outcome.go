// perf/outcome.go
// Copyright(c) 2024-2026 SF50-TOLD contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

import "fmt"

// An Outcome is the result of a performance computation: a number, a
// number with an uncertainty band, or one of several distinct failure
// and refusal states. Distinguishing "the charts don't go that far"
// from "the airplane isn't certified for that" from "the request is
// malformed" is the whole point; a bare NaN can't carry that.
type OutcomeKind int

const (
	OutcomeNotAvailable OutcomeKind = iota
	OutcomeValue
	OutcomeValueWithin
	OutcomeOffscaleLow
	OutcomeOffscaleHigh
	OutcomeNotAuthorized
	OutcomeInvalid
)

func (k OutcomeKind) String() string {
	return [...]string{"not available", "value", "value within", "offscale low",
		"offscale high", "not authorized", "invalid"}[k]
}

func (k OutcomeKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

type Outcome struct {
	Kind OutcomeKind `json:"kind"`
	V    float64     `json:"value,omitempty"`
	// Band is the half-width of the uncertainty interval for
	// OutcomeValueWithin; the true value is taken to lie in [V-Band, V+Band].
	Band float64 `json:"band,omitempty"`
}

var (
	NotAvailable  = Outcome{Kind: OutcomeNotAvailable}
	OffscaleLow   = Outcome{Kind: OutcomeOffscaleLow}
	OffscaleHigh  = Outcome{Kind: OutcomeOffscaleHigh}
	NotAuthorized = Outcome{Kind: OutcomeNotAuthorized}
	Invalid       = Outcome{Kind: OutcomeInvalid}
)

func Value(v float64) Outcome {
	return Outcome{Kind: OutcomeValue, V: v}
}

func ValueWithin(v, band float64) Outcome {
	if band <= 0 {
		return Value(v)
	}
	return Outcome{Kind: OutcomeValueWithin, V: v, Band: band}
}

// IsValue reports whether the outcome carries a usable number.
func (o Outcome) IsValue() bool {
	return o.Kind == OutcomeValue || o.Kind == OutcomeValueWithin
}

func (o Outcome) IsOffscale() bool {
	return o.Kind == OutcomeOffscaleLow || o.Kind == OutcomeOffscaleHigh
}

// Merge precedence, worst last. Both offscale directions rank equally;
// uncertain values dominate exact ones.
func (o Outcome) rank() int {
	switch o.Kind {
	case OutcomeNotAvailable:
		return 0
	case OutcomeValue:
		return 1
	case OutcomeValueWithin:
		return 2
	case OutcomeOffscaleLow, OutcomeOffscaleHigh:
		return 3
	case OutcomeNotAuthorized:
		return 4
	default: // OutcomeInvalid
		return 5
	}
}

// Merge combines two outcomes for the same metric, keeping the more
// severe kind. When both carry values, preferHigher selects whether the
// larger (conservative for distances) or smaller (conservative for
// climb performance) value wins; uncertainty bands are widened to cover
// both.
func (o Outcome) Merge(other Outcome, preferHigher bool) Outcome {
	if other.rank() > o.rank() {
		return other
	} else if o.rank() > other.rank() {
		return o
	}

	if o.IsValue() && other.IsValue() {
		v := min(o.V, other.V)
		if preferHigher {
			v = max(o.V, other.V)
		}
		return ValueWithin(v, max(o.Band, other.Band))
	}
	return o
}

// ExceedsLimit reports whether the outcome fails a "must not exceed
// limit" constraint, such as a distance against available runway. Any
// non-value outcome other than NotAvailable fails; an uncertain value
// fails if any part of its band exceeds the limit.
func (o Outcome) ExceedsLimit(limit float64) bool {
	switch o.Kind {
	case OutcomeNotAvailable:
		return false
	case OutcomeValue:
		return o.V > limit
	case OutcomeValueWithin:
		return o.V+o.Band > limit
	default:
		return true
	}
}

// BelowMinimum reports whether the outcome fails a "must be at least
// minimum" constraint, such as a climb gradient against an obstacle
// requirement.
func (o Outcome) BelowMinimum(minimum float64) bool {
	switch o.Kind {
	case OutcomeNotAvailable:
		return false
	case OutcomeValue:
		return o.V < minimum
	case OutcomeValueWithin:
		return o.V-o.Band < minimum
	default:
		return true
	}
}

// scale multiplies a value outcome by f, scaling the band with it.
// Non-value outcomes pass through unchanged.
func (o Outcome) scale(f float64) Outcome {
	if !o.IsValue() {
		return o
	}
	o.V *= f
	o.Band *= f
	return o
}

// add offsets a value outcome by d; non-value outcomes pass through.
func (o Outcome) add(d float64) Outcome {
	if !o.IsValue() {
		return o
	}
	o.V += d
	return o
}

func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeValue:
		return fmt.Sprintf("%.0f", o.V)
	case OutcomeValueWithin:
		return fmt.Sprintf("%.0f ± %.0f", o.V, o.Band)
	default:
		return o.Kind.String()
	}
}
