package weather

import (
	"errors"
	"fmt"
)

// Weather errors.
var (
	ErrProviderUnavailable = errors.New("weather provider unavailable")
	ErrInvalidCoordinates  = errors.New("invalid coordinates")
	ErrNotConfigured       = errors.New("weather provider credential not configured")
)

// IconBaseURL is the template for OpenWeatherMap condition icons.
const IconBaseURL = "https://openweathermap.org/img/wn/%s@2x.png"

// Reading is the canonical, cacheable weather payload for a single location.
// All numeric fields are metric; derived units are never stored, see Display.
type Reading struct {
	// TemperatureC is the air temperature in degrees Celsius.
	TemperatureC float64 `json:"temperatureC"`

	// Condition is the textual weather condition as reported upstream,
	// e.g. "scattered clouds". Falls back to "Unknown" when absent.
	Condition string `json:"condition"`

	// Icon is the upstream icon code, e.g. "04d". Falls back to "01d".
	Icon string `json:"icon"`

	// Humidity percentage (0-100).
	Humidity float64 `json:"humidity"`

	// WindSpeedMps is the wind speed in meters per second.
	WindSpeedMps float64 `json:"windSpeedMps"`

	// TimezoneOffsetSeconds is the location's offset from UTC. Nil when
	// the upstream omits it; consumers must render a sentinel instead of
	// guessing a zone.
	TimezoneOffsetSeconds *int `json:"timezoneOffsetSeconds"`

	// ObservedAt is the upstream observation time in RFC3339, nil when
	// the upstream omits it.
	ObservedAt *string `json:"observedAt"`

	// UpdatedAt is the normalization time in RFC3339. Always set.
	UpdatedAt string `json:"updatedAt"`
}

// DisplayReading is a Reading expanded with every derived display unit.
// It is recomputed on read and never cached.
type DisplayReading struct {
	Reading

	TemperatureF float64 `json:"temperatureF"`
	WindSpeedMph float64 `json:"windSpeedMph"`
	WindSpeedKph float64 `json:"windSpeedKph"`
	IconURL      string  `json:"iconUrl"`
}

// Display derives every display unit from the canonical metric fields.
// The condition text is capitalized and the metric fields are rounded to
// one decimal so repeated derivations are stable.
func (r Reading) Display() DisplayReading {
	d := DisplayReading{
		Reading:      r,
		TemperatureF: CToF(r.TemperatureC),
		WindSpeedMph: MpsToMph(r.WindSpeedMps),
		WindSpeedKph: MpsToKph(r.WindSpeedMps),
		IconURL:      fmt.Sprintf(IconBaseURL, r.Icon),
	}
	d.TemperatureC = round1(r.TemperatureC)
	d.WindSpeedMps = round1(r.WindSpeedMps)
	d.Condition = CapitalizeFirst(r.Condition)
	return d
}

// ValidateCoordinates checks that lat/lon fall inside the WGS84 envelope.
func ValidateCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return ErrInvalidCoordinates
	}
	return nil
}
