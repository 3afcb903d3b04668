package turtle

import (
	"fmt"
	"math"
)

// normalizeHeading maps any angle in degrees onto [0, 360).
func normalizeHeading(deg float64) float64 {
	h := math.Mod(deg, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h + 0 // clears negative zero
}

// sincos returns the sine and cosine of a normalized heading in degrees.
// Quarter turns are exact so axis-aligned figures close without drift.
func sincos(deg float64) (sin, cos float64) {
	if math.Mod(deg, 90) == 0 {
		switch int(deg) / 90 {
		case 0:
			return 0, 1
		case 1:
			return 1, 0
		case 2:
			return 0, -1
		case 3:
			return -1, 0
		}
	}
	return math.Sincos(deg * math.Pi / 180)
}

// towards returns the heading from (x0, y0) to (x1, y1) in degrees on
// [0, 360). Coincident points yield 0.
func towards(x0, y0, x1, y1 float64) float64 {
	return normalizeHeading(math.Atan2(y1-y0, x1-x0) * 180 / math.Pi)
}

// checkFinite rejects NaN and infinite command arguments.
func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s %v: %w", name, v, ErrInvalidArgument)
	}
	return nil
}
