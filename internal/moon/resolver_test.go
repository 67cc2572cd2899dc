package moon

import (
	"testing"
	"time"
)

func TestEphemeris_Phases_Ordering(t *testing.T) {
	resolver := NewEphemeris(time.UTC)

	refs := []time.Time{
		time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 1, 23, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 15, 6, 0, 0, 0, time.UTC),
		time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
	}

	for _, ref := range refs {
		t.Run(ref.Format("2006-01-02"), func(t *testing.T) {
			w := resolver.Phases(ref)

			if w.PrevFull.After(ref) {
				t.Errorf("PrevFull %v is after reference %v", w.PrevFull, ref)
			}
			if !w.NextFull.After(ref) {
				t.Errorf("NextFull %v is not after reference %v", w.NextFull, ref)
			}
			if w.PrevNew.After(ref) {
				t.Errorf("PrevNew %v is after reference %v", w.PrevNew, ref)
			}
			if !w.NextNew.After(ref) {
				t.Errorf("NextNew %v is not after reference %v", w.NextNew, ref)
			}

			// Consecutive same-phase instants are one synodic month apart.
			for name, gap := range map[string]time.Duration{
				"full": w.NextFull.Sub(w.PrevFull),
				"new":  w.NextNew.Sub(w.PrevNew),
			} {
				days := gap.Hours() / 24
				if days < 29 || days > 30.2 {
					t.Errorf("%s moon gap = %.2f days, want ~29.53", name, days)
				}
			}
		})
	}
}

func TestEphemeris_Phases_KnownDates(t *testing.T) {
	resolver := NewEphemeris(time.UTC)

	// January 2024: new moon on the 11th (11:57 UTC), full moon on the
	// 25th (17:54 UTC).
	ref := time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC)
	w := resolver.Phases(ref)

	wantPrevNew := time.Date(2024, 1, 11, 11, 57, 0, 0, time.UTC)
	wantNextFull := time.Date(2024, 1, 25, 17, 54, 0, 0, time.UTC)

	if d := w.PrevNew.Sub(wantPrevNew); d < -2*time.Hour || d > 2*time.Hour {
		t.Errorf("PrevNew = %v, want within 2h of %v", w.PrevNew, wantPrevNew)
	}
	if d := w.NextFull.Sub(wantNextFull); d < -2*time.Hour || d > 2*time.Hour {
		t.Errorf("NextFull = %v, want within 2h of %v", w.NextFull, wantNextFull)
	}
}

func TestEphemeris_Phases_Localization(t *testing.T) {
	helsinki, err := time.LoadLocation("Europe/Helsinki")
	if err != nil {
		t.Fatalf("loading timezone: %v", err)
	}

	ref := time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC)
	localized := NewEphemeris(helsinki).Phases(ref)
	utc := NewEphemeris(nil).Phases(ref)

	if localized.NextFull.Location().String() != "Europe/Helsinki" {
		t.Errorf("NextFull location = %v, want Europe/Helsinki", localized.NextFull.Location())
	}
	if !localized.NextFull.Equal(utc.NextFull) {
		t.Errorf("localized NextFull %v and UTC NextFull %v are different instants",
			localized.NextFull, utc.NextFull)
	}
}
