package weather

import (
	"math"
	"time"
	"unicode"
	"unicode/utf8"
)

// LocalTimeUnavailable is rendered when a reading carries no timezone offset.
const LocalTimeUnavailable = "Unavailable"

// CToF converts Celsius to Fahrenheit, rounded to one decimal.
func CToF(c float64) float64 {
	return round1(c*1.8 + 32)
}

// MpsToMph converts meters per second to miles per hour, rounded to one decimal.
func MpsToMph(mps float64) float64 {
	return round1(mps * 2.23694)
}

// MpsToKph converts meters per second to kilometers per hour, rounded to one decimal.
func MpsToKph(mps float64) float64 {
	return round1(mps * 3.6)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// CapitalizeFirst upper-cases only the first rune, leaving the rest
// unchanged: "scattered clouds" becomes "Scattered clouds".
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// LocalClock renders the wall-clock time at a location given a UTC instant
// and the location's offset from UTC in seconds. A nil offset means the
// upstream never reported a zone, so the sentinel is returned instead of a
// guessed time.
func LocalClock(instant time.Time, offsetSeconds *int) string {
	if offsetSeconds == nil {
		return LocalTimeUnavailable
	}
	return instant.UTC().Add(time.Duration(*offsetSeconds) * time.Second).Format("15:04")
}
