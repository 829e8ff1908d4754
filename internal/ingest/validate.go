package ingest

import (
	"math"
	"regexp"
)

var numberPattern = regexp.MustCompile(`^[+-]?\d+(\.\d+)?$`)

// IsValidNumber reports whether token is a signed decimal such as "3",
// "-2.5" or "+0.125". Exponents, hex, and bare dots are rejected.
func IsValidNumber(token string) bool {
	return numberPattern.MatchString(token)
}

// ValidateCoordinates reports whether every coordinate is finite.
func ValidateCoordinates(coords ...float64) bool {
	for _, c := range coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// IsValidArea reports whether a computed area can be shown to a user.
func IsValidArea(v float64) bool { return isFiniteNonNegative(v) }

// IsValidPerimeter reports whether a computed perimeter can be shown.
func IsValidPerimeter(v float64) bool { return isFiniteNonNegative(v) }

// IsValidVolume reports whether a computed volume can be shown.
func IsValidVolume(v float64) bool { return isFiniteNonNegative(v) }

func isFiniteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
