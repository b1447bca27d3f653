// perf/conditions.go
// Copyright(c) 2024-2026 SF50-TOLD contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

// ConditionsSource records where a Conditions value came from; it is
// carried through to reports so the reader knows whether numbers were
// computed from an observation, a forecast, or manual entry.
type ConditionsSource int

const (
	SourceObserved ConditionsSource = iota
	SourceForecast
	SourceEntered
	SourceISA
)

func (s ConditionsSource) String() string {
	return [...]string{"observed", "forecast", "entered", "ISA"}[s]
}

func (s ConditionsSource) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Conditions is the weather at the runway at computation time. A nil
// WindDirection means calm or variable wind; WindSpeed is ignored in
// that case.
type Conditions struct {
	WindDirection    *float64         `json:"wind_direction,omitempty"` // degrees true
	WindSpeed        float64          `json:"wind_speed"`               // kt
	Temperature      float64          `json:"temperature"`              // Celsius
	SeaLevelPressure float64          `json:"sea_level_pressure"`       // inHg
	Source           ConditionsSource `json:"source"`
}

// StandardConditions returns ISA sea-level weather with calm wind.
func StandardConditions() Conditions {
	return Conditions{
		Temperature:      StandardSeaLevelTemperature,
		SeaLevelPressure: StandardSeaLevelPressure,
		Source:           SourceISA,
	}
}

type FlapSetting int

const (
	FlapsUp FlapSetting = iota
	FlapsUpIce
	Flaps50
	Flaps50Ice
	Flaps100
)

func (f FlapSetting) String() string {
	return [...]string{"up", "up ice", "50", "50 ice", "100"}[f]
}

func (f FlapSetting) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// Iced reports whether this is one of the icing-contaminated-airframe
// settings, which carry their own charts and climb penalties.
func (f FlapSetting) Iced() bool {
	return f == FlapsUpIce || f == Flaps50Ice
}

// Variant selects the airframe generation. The G2+ carries a revised
// thrust schedule that shortens distances and improves climb relative
// to the G1 charts.
type Variant int

const (
	VariantG1 Variant = iota
	VariantG2Plus
)

func (v Variant) String() string {
	if v == VariantG2Plus {
		return "G2+"
	}
	return "G1"
}

func (v Variant) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// Configuration is the aircraft setup for a single computation.
type Configuration struct {
	Flaps   FlapSetting `json:"flaps"`
	Weight  float64     `json:"weight"` // lb
	Variant Variant     `json:"variant"`
}

type Surface int

const (
	SurfacePaved Surface = iota
	SurfaceTurf
)

func (s Surface) String() string {
	if s == SurfaceTurf {
		return "turf"
	}
	return "paved"
}

func (s Surface) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// RunwayInput describes a runway end as published, before any NOTAM
// adjustment. Gradient is the slope as a fraction, positive uphill in
// the direction of operation.
type RunwayInput struct {
	Name               string  `json:"name"`
	Length             float64 `json:"length"` // ft
	Heading            float64 `json:"heading"` // degrees true
	Elevation          float64 `json:"elevation"` // ft MSL
	Gradient           float64 `json:"gradient"`
	Surface            Surface `json:"surface"`
	TORA               float64 `json:"tora"` // ft
	TODA               float64 `json:"toda"` // ft
	LDA                float64 `json:"lda"`  // ft
	DisplacedThreshold float64 `json:"displaced_threshold,omitempty"`
	ReciprocalName     string  `json:"reciprocal_name,omitempty"`
}

// ContaminationType identifies which contaminated-runway supplement
// chart applies. Water and slush charts have a depth axis; the snow
// charts do not.
type ContaminationType int

const (
	ContaminationWater ContaminationType = iota
	ContaminationSlushWetSnow
	ContaminationDrySnow
	ContaminationCompactSnow
)

func (c ContaminationType) String() string {
	return [...]string{"water", "slush wet snow", "dry snow", "compact snow"}[c]
}

func (c ContaminationType) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// HasDepth reports whether this contamination type's chart is entered
// with a depth in addition to the dry ground roll.
func (c ContaminationType) HasDepth() bool {
	return c == ContaminationWater || c == ContaminationSlushWetSnow
}

type ContaminationInput struct {
	Type  ContaminationType `json:"type"`
	Depth float64           `json:"depth,omitempty"` // inches
}

// ObstacleInput is a NOTAMed obstacle in the departure path: its height
// above the runway and its distance from the departure end, both in
// feet.
type ObstacleInput struct {
	Height   float64 `json:"height"`
	Distance float64 `json:"distance"`
}

// NOTAMInput collects the NOTAM state for one runway. Shortenings are
// in feet and reduce the declared distances, never below zero.
type NOTAMInput struct {
	Contamination     *ContaminationInput `json:"contamination,omitempty"`
	TakeoffShortening float64             `json:"takeoff_shortening,omitempty"`
	LandingShortening float64             `json:"landing_shortening,omitempty"`
	Obstacle          *ObstacleInput      `json:"obstacle,omitempty"`
}
