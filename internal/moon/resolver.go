package moon

import (
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonphase"
)

// Mean length of the synodic month in days. Used only to seed the search
// for neighboring phases; the actual instants come from the ephemeris.
const synodicMonth = 29.530588861

// PhaseWindow holds the full and new moon instants surrounding a
// reference time. Invariants: PrevFull <= ref < NextFull and
// PrevNew <= ref < NextNew.
type PhaseWindow struct {
	PrevFull time.Time
	NextFull time.Time
	PrevNew  time.Time
	NextNew  time.Time
}

// PhaseResolver resolves the moon phase window for a reference time.
// Implementations are stateless; every call recomputes the window.
type PhaseResolver interface {
	Phases(ref time.Time) PhaseWindow
}

// Ephemeris resolves phase windows using Meeus' lunar phase algorithm.
// Returned instants are localized to Location (UTC when nil).
type Ephemeris struct {
	Location *time.Location
}

// NewEphemeris creates a resolver that localizes results to loc.
func NewEphemeris(loc *time.Location) *Ephemeris {
	if loc == nil {
		loc = time.UTC
	}
	return &Ephemeris{Location: loc}
}

// Phases returns the previous and next full and new moons around ref.
func (e *Ephemeris) Phases(ref time.Time) PhaseWindow {
	utc := ref.UTC()
	prevFull, nextFull := surroundingPhases(utc, moonphase.Full)
	prevNew, nextNew := surroundingPhases(utc, moonphase.New)

	return PhaseWindow{
		PrevFull: prevFull.In(e.Location),
		NextFull: nextFull.In(e.Location),
		PrevNew:  prevNew.In(e.Location),
		NextNew:  nextNew.In(e.Location),
	}
}

// surroundingPhases finds the latest phase instant at or before ref and
// the earliest one after it. The phase function returns the JDE of the
// phase nearest a decimal year, so candidates are sampled one synodic
// month apart on both sides of ref and bracketed.
func surroundingPhases(ref time.Time, phase func(float64) float64) (prev, next time.Time) {
	jd := julian.TimeToJD(ref)
	for k := -2; k <= 2; k++ {
		year := base.JDEToJulianYear(jd + float64(k)*synodicMonth)
		t := julian.JDToTime(phase(year)).UTC()
		if !t.After(ref) {
			if prev.IsZero() || t.After(prev) {
				prev = t
			}
		} else {
			if next.IsZero() || t.Before(next) {
				next = t
			}
		}
	}
	return prev, next
}
