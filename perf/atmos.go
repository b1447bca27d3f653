// perf/atmos.go
// Copyright(c) 2024-2026 SF50-TOLD contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perf

// ISATemperature returns the standard atmosphere temperature in Celsius
// at the given pressure altitude in feet.
func ISATemperature(pressureAltitude float64) float64 {
	return StandardSeaLevelTemperature - ISALapseRate*pressureAltitude/1000
}

// PressureAltitude converts a field elevation and altimeter setting to
// pressure altitude using the 1000 ft / inHg approximation the AFM
// uses.
func PressureAltitude(elevation, seaLevelPressure float64) float64 {
	return elevation + (StandardSeaLevelPressure-seaLevelPressure)*1000
}

// DensityAltitude returns the density altitude for a pressure altitude
// and outside air temperature, per the usual 118.8 ft per degree of ISA
// deviation rule.
func DensityAltitude(pressureAltitude, temperature float64) float64 {
	return pressureAltitude + 118.8*(temperature-ISATemperature(pressureAltitude))
}
