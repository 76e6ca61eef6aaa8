// Package view assembles fleet snapshots into display-ready structures:
// formatted unit strings, local office clocks, and freshness labels.
package view

import (
	"fmt"
	"time"

	"github.com/officecast/officecast/internal/fleet"
	"github.com/officecast/officecast/internal/office"
	"github.com/officecast/officecast/internal/weather"
)

// Unit preferences. Zero values fall back to metric.
const (
	TempCelsius    = "C"
	TempFahrenheit = "F"

	WindMps = "m/s"
	WindMph = "mph"
	WindKph = "km/h"
)

// Preference selects the units the dashboard renders.
type Preference struct {
	Temperature string `json:"temperature"`
	Wind        string `json:"wind"`
}

// OfficeCard is one office's display row.
type OfficeCard struct {
	Office    office.Office `json:"office"`
	Loading   bool          `json:"loading"`
	Error     string        `json:"error,omitempty"`
	Condition string        `json:"condition,omitempty"`
	IconURL   string        `json:"iconUrl,omitempty"`

	// Temperature and Wind are formatted in the preferred units,
	// e.g. "18.5°C" / "4.5 m/s". Empty while loading or errored.
	Temperature string `json:"temperature,omitempty"`
	Wind        string `json:"wind,omitempty"`
	Humidity    string `json:"humidity,omitempty"`

	// LocalTime is the office wall clock, or "Unavailable" when the
	// reading carries no timezone offset.
	LocalTime string `json:"localTime,omitempty"`

	// UpdatedAgo is a relative freshness label, e.g. "3m ago".
	UpdatedAgo string `json:"updatedAgo,omitempty"`
}

// Model is the complete dashboard view.
type Model struct {
	Offices          []OfficeCard `json:"offices"`
	IsInitialLoading bool         `json:"isInitialLoading"`

	// LastUpdated is the freshest updatedAt across the fleet, RFC3339.
	// Empty until at least one office has a reading.
	LastUpdated string `json:"lastUpdated,omitempty"`
}

// Assembler renders fleet snapshots. Now is injectable for tests.
type Assembler struct {
	now func() time.Time
}

// AssemblerOption configures an Assembler.
type AssemblerOption func(*Assembler)

// WithClock overrides the time source.
func WithClock(now func() time.Time) AssemblerOption {
	return func(a *Assembler) { a.now = now }
}

// NewAssembler creates a view assembler.
func NewAssembler(opts ...AssemblerOption) *Assembler {
	a := &Assembler{now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble combines a snapshot with a unit preference into the dashboard
// model. Offices keep their roster order.
func (a *Assembler) Assemble(offices []office.Office, snap fleet.Snapshot, pref Preference) Model {
	now := a.now()

	model := Model{
		Offices:          make([]OfficeCard, 0, len(offices)),
		IsInitialLoading: snap.IsInitialLoading,
	}

	var freshest time.Time
	for _, o := range offices {
		card := OfficeCard{
			Office:  o,
			Loading: snap.LoadingByOffice[o.ID],
		}

		if msg, ok := snap.ErrorsByOffice[o.ID]; ok {
			card.Error = msg
		} else if reading, ok := snap.WeatherByOffice[o.ID]; ok {
			card.Condition = reading.Condition
			card.IconURL = reading.IconURL
			card.Temperature = formatTemperature(reading, pref.Temperature)
			card.Wind = formatWind(reading, pref.Wind)
			card.Humidity = fmt.Sprintf("%.0f%%", reading.Humidity)
			card.LocalTime = weather.LocalClock(now, reading.TimezoneOffsetSeconds)
			card.UpdatedAgo = relativeAge(now, reading.UpdatedAt)

			if at, err := time.Parse(time.RFC3339, reading.UpdatedAt); err == nil && at.After(freshest) {
				freshest = at
			}
		}

		model.Offices = append(model.Offices, card)
	}

	if !freshest.IsZero() {
		model.LastUpdated = freshest.UTC().Format(time.RFC3339)
	}
	return model
}

func formatTemperature(r weather.DisplayReading, unit string) string {
	if unit == TempFahrenheit {
		return fmt.Sprintf("%.1f°F", r.TemperatureF)
	}
	return fmt.Sprintf("%.1f°C", r.TemperatureC)
}

func formatWind(r weather.DisplayReading, unit string) string {
	switch unit {
	case WindMph:
		return fmt.Sprintf("%.1f mph", r.WindSpeedMph)
	case WindKph:
		return fmt.Sprintf("%.1f km/h", r.WindSpeedKph)
	default:
		return fmt.Sprintf("%.1f m/s", r.WindSpeedMps)
	}
}

// relativeAge renders the gap between now and an RFC3339 timestamp as a
// coarse "Xs/Xm/Xh ago" label. Unparseable or future timestamps render
// as "just now".
func relativeAge(now time.Time, updatedAt string) string {
	at, err := time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return "just now"
	}
	age := now.Sub(at)
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	default:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	}
}
