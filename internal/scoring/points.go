// Package scoring implements the fishing index model from Tom Berg's
// "Kalastuksen taito" doctrine: four signal scorers combined into a
// weighted index per forecasted hour.
package scoring

import (
	"time"

	"github.com/jhakala/fishcast/internal/moon"
)

// PressurePoints scores the barometric pressure change (hPa) between two
// consecutive measurements. Both sharply falling and sharply rising
// pressure indicate frontal activity:
//
//	 40: 0.3 to 0.5 rise, or -2.0 to -1.0 fall
//	 80: 0.5 to 1.0 rise, or steeper than -2.0 fall
//	100: rise above 1.0
//	  0: otherwise
func PressurePoints(diff float64) int {
	switch {
	case (0.3 <= diff && diff <= 0.5) || (-2.0 <= diff && diff <= -1.0):
		return 40
	case (0.5 < diff && diff <= 1.0) || diff < -2.0:
		return 80
	case diff > 1.0:
		return 100
	}
	return 0
}

// windSector is a half-open [From, To) range of directions in degrees.
type windSector struct {
	From, To float64
	Points   int
}

// Favorable wind sectors. Callers must normalize direction to [0,360);
// values outside the listed sectors score zero.
var windSectors = []windSector{
	{202.5, 247.5, 100}, // SW
	{157.5, 202.5, 80},  // S
	{247.5, 292.5, 80},  // W
	{112.5, 157.5, 50},  // SE
	{292.5, 337.5, 50},  // NW
}

// WindPoints scores a wind direction given in degrees.
func WindPoints(direction float64) int {
	for _, s := range windSectors {
		if s.From <= direction && direction < s.To {
			return s.Points
		}
	}
	return 0
}

// MoonPoints scores proximity to the full and new moons around ref.
// The tiers deliberately look further ahead than behind:
//
//	100: within 1 day before a full or new moon
//	 60: within 2 days before, or 1 day after, a full or new moon
//	 30: within 3 days before a full or new moon
//	  0: otherwise
func MoonPoints(ref time.Time, w moon.PhaseWindow) int {
	untilFull := daysBetween(ref, w.NextFull)
	untilNew := daysBetween(ref, w.NextNew)
	sinceFull := daysBetween(w.PrevFull, ref)
	sinceNew := daysBetween(w.PrevNew, ref)

	switch {
	case untilFull <= 1 || untilNew <= 1:
		return 100
	case untilFull <= 2 || untilNew <= 2 || sinceFull <= 1 || sinceNew <= 1:
		return 60
	case untilFull <= 3 || untilNew <= 3:
		return 30
	}
	return 0
}

// SeaLevelPoints scores the sea level change (cm) between two consecutive
// measurements. Rising water scores positive, falling water negative.
// The boundary inclusivity differs between the rising and falling
// branches: +6 scores 10 while -6 scores -20.
func SeaLevelPoints(diff float64) int {
	switch {
	case diff >= 3 && diff <= 6:
		return 10
	case diff > 6 && diff <= 9:
		return 20
	case diff > 9:
		return 30
	case diff > -6 && diff <= -3:
		return -10
	case diff >= -9 && diff <= -6:
		return -20
	case diff < -9:
		return -30
	}
	return 0
}

func daysBetween(from, to time.Time) float64 {
	return to.Sub(from).Seconds() / 86400
}
