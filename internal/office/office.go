// Package office holds the fleet roster: the set of locations the
// dashboard tracks, each pinned to a coordinate pair.
package office

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/officecast/officecast/internal/weather"
)

// Office is a single tracked location.
type Office struct {
	ID        string  `yaml:"id" json:"id"`
	Name      string  `yaml:"name" json:"name"`
	City      string  `yaml:"city" json:"city"`
	Country   string  `yaml:"country" json:"country"`
	Address   string  `yaml:"address" json:"address"`
	ImageURL  string  `yaml:"imageUrl" json:"imageUrl"`
	Latitude  float64 `yaml:"latitude" json:"latitude"`
	Longitude float64 `yaml:"longitude" json:"longitude"`
}

// Validate checks that the office is routable: it needs an ID, a name,
// and coordinates inside the WGS84 envelope.
func (o Office) Validate() error {
	if o.ID == "" {
		return fmt.Errorf("office missing id")
	}
	if o.Name == "" {
		return fmt.Errorf("office %s: missing name", o.ID)
	}
	if err := weather.ValidateCoordinates(o.Latitude, o.Longitude); err != nil {
		return fmt.Errorf("office %s: %w", o.ID, err)
	}
	return nil
}

type rosterFile struct {
	Offices []Office `yaml:"offices"`
}

// Load reads a YAML roster from path. The file must hold at least one
// office and every entry must validate; duplicate IDs are rejected
// because the fetcher keys its result maps on them.
func Load(path string) ([]Office, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading offices file: %w", err)
	}

	var roster rosterFile
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("parsing offices file: %w", err)
	}
	if len(roster.Offices) == 0 {
		return nil, fmt.Errorf("offices file %s holds no offices", path)
	}

	seen := make(map[string]struct{}, len(roster.Offices))
	for _, o := range roster.Offices {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[o.ID]; dup {
			return nil, fmt.Errorf("duplicate office id %s", o.ID)
		}
		seen[o.ID] = struct{}{}
	}

	return roster.Offices, nil
}
