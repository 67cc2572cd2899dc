package scoring

import (
	"sort"

	"github.com/jhakala/fishcast/internal/models"
	"github.com/jhakala/fishcast/internal/moon"
)

// Signal weights. They intentionally sum to 1.05, and sea level points
// are added at full magnitude on top, so the index is not strictly
// bounded to [0,100] when sea level tracking is enabled.
const (
	coeffPressure = 0.6
	coeffWind     = 0.3
	coeffMoon     = 0.15
)

// Aggregator combines the point scorers into a fishing index for one
// time step, scored against the immediately preceding step.
type Aggregator struct {
	resolver moon.PhaseResolver
	seaLevel bool
}

// NewAggregator creates an aggregator. Sea level deltas contribute to
// the index only when seaLevel is true.
func NewAggregator(resolver moon.PhaseResolver, seaLevel bool) *Aggregator {
	return &Aggregator{resolver: resolver, seaLevel: seaLevel}
}

// Score derives a ScoredRecord for curr using prev as the baseline.
// PressureDiff, SeaLevelDiff and FishingIndex are set here exactly once.
func (a *Aggregator) Score(prev, curr models.Measurement) models.ScoredRecord {
	rec := models.ScoredRecord{Measurement: curr}
	rec.PressureDiff = curr.Pressure - prev.Pressure

	utc := curr.Time.UTC()
	index := float64(PressurePoints(rec.PressureDiff)) * coeffPressure
	index += float64(WindPoints(curr.WindDirection)) * coeffWind
	index += float64(MoonPoints(utc, a.resolver.Phases(utc))) * coeffMoon

	if a.seaLevel && prev.SeaLevel != nil && curr.SeaLevel != nil {
		diff := *curr.SeaLevel - *prev.SeaLevel
		rec.SeaLevelDiff = &diff
		index += float64(SeaLevelPoints(diff))
	}

	rec.FishingIndex = index
	return rec
}

// BuildSeries scores an ordered measurement series pairwise. Element i
// of the result corresponds to series[i+1] scored against series[i];
// a series of length <= 1 yields an empty result.
func (a *Aggregator) BuildSeries(series []models.Measurement) []models.ScoredRecord {
	if len(series) <= 1 {
		return nil
	}
	records := make([]models.ScoredRecord, 0, len(series)-1)
	for i := 1; i < len(series); i++ {
		records = append(records, a.Score(series[i-1], series[i]))
	}
	return records
}

// TopN returns the n records with the highest fishing index, re-sorted
// into chronological order. Ties keep their original series order. If
// the series has fewer than n records, all of them are returned.
func TopN(records []models.ScoredRecord, n int) []models.ScoredRecord {
	if n > len(records) {
		n = len(records)
	}
	if n < 0 {
		n = 0
	}

	best := make([]models.ScoredRecord, len(records))
	copy(best, records)
	sort.SliceStable(best, func(i, j int) bool {
		return best[i].FishingIndex > best[j].FishingIndex
	})

	best = best[:n]
	sort.SliceStable(best, func(i, j int) bool {
		return best[i].Time.Before(best[j].Time)
	})
	return best
}
