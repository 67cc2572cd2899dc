package scoring

import (
	"testing"
	"time"

	"github.com/jhakala/fishcast/internal/models"
	"github.com/jhakala/fishcast/internal/moon"
)

// fixedResolver returns the same phase window for every reference time.
type fixedResolver struct {
	window moon.PhaseWindow
}

func (f fixedResolver) Phases(ref time.Time) moon.PhaseWindow {
	return f.window
}

// quarterMoonResolver yields a window where every phase event is more
// than three days away, forcing the moon score to zero.
func quarterMoonResolver(ref time.Time) fixedResolver {
	return fixedResolver{window: moon.PhaseWindow{
		PrevFull: ref.AddDate(0, 0, -7),
		PrevNew:  ref.AddDate(0, 0, -21),
		NextFull: ref.AddDate(0, 0, 21),
		NextNew:  ref.AddDate(0, 0, 7),
	}}
}

func measurement(t time.Time, pressure, direction float64) models.Measurement {
	return models.Measurement{Time: t, Pressure: pressure, WindSpeed: 4.0, WindDirection: direction}
}

func TestAggregator_Score(t *testing.T) {
	ref := time.Date(2025, 2, 1, 14, 0, 0, 0, time.UTC)
	agg := NewAggregator(quarterMoonResolver(ref), false)

	prev := measurement(ref.Add(-time.Hour), 1000.0, 220)
	curr := measurement(ref, 1001.2, 220)

	rec := agg.Score(prev, curr)

	// Pressure +1.2 hPa: 100 * 0.6 = 60. Wind 220 degrees (SW):
	// 100 * 0.3 = 30. Moon forced to zero. Index = 90.
	if rec.FishingIndex != 90.0 {
		t.Errorf("FishingIndex = %v, want 90.0", rec.FishingIndex)
	}
	if diff := rec.PressureDiff; diff < 1.19 || diff > 1.21 {
		t.Errorf("PressureDiff = %v, want 1.2", diff)
	}
	if rec.SeaLevelDiff != nil {
		t.Errorf("SeaLevelDiff = %v, want nil when sea level is disabled", *rec.SeaLevelDiff)
	}
	if !rec.Time.Equal(curr.Time) {
		t.Errorf("record time = %v, want %v", rec.Time, curr.Time)
	}
}

func TestAggregator_Score_SeaLevel(t *testing.T) {
	ref := time.Date(2025, 2, 1, 14, 0, 0, 0, time.UTC)

	sl := func(v float64) *float64 { return &v }

	prev := measurement(ref.Add(-time.Hour), 1000.0, 220)
	prev.SeaLevel = sl(10.0)
	curr := measurement(ref, 1001.2, 220)
	curr.SeaLevel = sl(20.0)

	t.Run("enabled", func(t *testing.T) {
		agg := NewAggregator(quarterMoonResolver(ref), true)
		rec := agg.Score(prev, curr)

		// Sea level points are added unweighted: 90 + 30 = 120, so the
		// index may exceed 100.
		if rec.FishingIndex != 120.0 {
			t.Errorf("FishingIndex = %v, want 120.0", rec.FishingIndex)
		}
		if rec.SeaLevelDiff == nil || *rec.SeaLevelDiff != 10.0 {
			t.Errorf("SeaLevelDiff = %v, want 10.0", rec.SeaLevelDiff)
		}
	})

	t.Run("disabled ignores sea level fields", func(t *testing.T) {
		agg := NewAggregator(quarterMoonResolver(ref), false)
		rec := agg.Score(prev, curr)

		if rec.FishingIndex != 90.0 {
			t.Errorf("FishingIndex = %v, want 90.0", rec.FishingIndex)
		}
		if rec.SeaLevelDiff != nil {
			t.Errorf("SeaLevelDiff should be nil when disabled, got %v", *rec.SeaLevelDiff)
		}
	})
}

func TestAggregator_BuildSeries(t *testing.T) {
	ref := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	agg := NewAggregator(quarterMoonResolver(ref), false)

	t.Run("empty input", func(t *testing.T) {
		if got := agg.BuildSeries(nil); len(got) != 0 {
			t.Errorf("BuildSeries(nil) returned %d records, want 0", len(got))
		}
	})

	t.Run("single measurement", func(t *testing.T) {
		series := []models.Measurement{measurement(ref, 1000, 220)}
		if got := agg.BuildSeries(series); len(got) != 0 {
			t.Errorf("BuildSeries() returned %d records, want 0", len(got))
		}
	})

	t.Run("pairwise scoring", func(t *testing.T) {
		series := make([]models.Measurement, 8)
		for i := range series {
			series[i] = measurement(ref.Add(time.Duration(i)*time.Hour), 1000+float64(i)*0.4, float64(i*40%360))
		}

		records := agg.BuildSeries(series)
		if len(records) != len(series)-1 {
			t.Fatalf("BuildSeries() returned %d records, want %d", len(records), len(series)-1)
		}

		for i, rec := range records {
			want := agg.Score(series[i], series[i+1])
			if rec.FishingIndex != want.FishingIndex {
				t.Errorf("records[%d].FishingIndex = %v, want %v", i, rec.FishingIndex, want.FishingIndex)
			}
			if !rec.Time.Equal(series[i+1].Time) {
				t.Errorf("records[%d].Time = %v, want %v", i, rec.Time, series[i+1].Time)
			}
		}
	})
}

func TestTopN(t *testing.T) {
	base := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	scored := func(hour int, index float64) models.ScoredRecord {
		return models.ScoredRecord{
			Measurement:  models.Measurement{Time: base.Add(time.Duration(hour) * time.Hour)},
			FishingIndex: index,
		}
	}

	records := []models.ScoredRecord{
		scored(0, 15), scored(1, 90), scored(2, 30), scored(3, 60),
		scored(4, 90), scored(5, 10), scored(6, 75), scored(7, 45),
		scored(8, 60), scored(9, 5),
	}

	t.Run("top five chronological", func(t *testing.T) {
		top := TopN(records, 5)
		if len(top) != 5 {
			t.Fatalf("TopN() returned %d records, want 5", len(top))
		}

		for i := 1; i < len(top); i++ {
			if !top[i-1].Time.Before(top[i].Time) {
				t.Errorf("results not in chronological order at %d: %v >= %v", i, top[i-1].Time, top[i].Time)
			}
		}

		selected := make(map[time.Time]bool, len(top))
		lowest := top[0].FishingIndex
		for _, rec := range top {
			selected[rec.Time] = true
			if rec.FishingIndex < lowest {
				lowest = rec.FishingIndex
			}
		}
		for _, rec := range records {
			if !selected[rec.Time] && rec.FishingIndex > lowest {
				t.Errorf("unselected record at %v has index %v > lowest selected %v", rec.Time, rec.FishingIndex, lowest)
			}
		}
	})

	t.Run("ties keep series order", func(t *testing.T) {
		top := TopN(records, 3)
		// Indexes 90, 90 and then the first 75; the tie at 90 keeps
		// hours 1 and 4.
		wantHours := []int{1, 4, 6}
		if len(top) != 3 {
			t.Fatalf("TopN() returned %d records, want 3", len(top))
		}
		for i, rec := range top {
			want := base.Add(time.Duration(wantHours[i]) * time.Hour)
			if !rec.Time.Equal(want) {
				t.Errorf("top[%d].Time = %v, want %v", i, rec.Time, want)
			}
		}
	})

	t.Run("short series returns everything", func(t *testing.T) {
		top := TopN(records[:3], 5)
		if len(top) != 3 {
			t.Fatalf("TopN() returned %d records, want 3", len(top))
		}
		for i := 1; i < len(top); i++ {
			if !top[i-1].Time.Before(top[i].Time) {
				t.Errorf("results not in chronological order at %d", i)
			}
		}
	})
}
