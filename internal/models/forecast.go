package models

import "time"

// Measurement is a single forecasted observation from the FMI open data API.
// Series of Measurements are ordered by strictly increasing timestamps,
// nominally one per hour.
type Measurement struct {
	Time          time.Time // localized to the requested timezone
	Pressure      float64   // hPa
	WindSpeed     float64   // m/s
	WindDirection float64   // degrees, [0,360)
	SeaLevel      *float64  // cm (N2000 datum), nil unless sea level tracking is enabled
}

// ScoredRecord is a Measurement scored against the measurement immediately
// before it. The first Measurement of a series has nothing to diff against,
// so a scored series is always one element shorter than its input.
type ScoredRecord struct {
	Measurement

	PressureDiff float64  // hPa change since the previous measurement
	SeaLevelDiff *float64 // cm change, nil unless sea level tracking is enabled
	FishingIndex float64
}
