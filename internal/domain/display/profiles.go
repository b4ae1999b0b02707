package display

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/slateos/slate/backend/internal/domain/geometry"
)

// Profile is a named display preset
type Profile struct {
	Name             string        `yaml:"name" json:"name"`
	Width            int           `yaml:"width" json:"width"`
	Height           int           `yaml:"height" json:"height"`
	Overscan         ProfileInsets `yaml:"overscan" json:"overscan"`
	SystemDecorLayer int           `yaml:"system_decor_layer" json:"system_decor_layer"`
}

// ProfileInsets trim the display bounds to the overscan-safe region
type ProfileInsets struct {
	Left   int `yaml:"left" json:"left"`
	Top    int `yaml:"top" json:"top"`
	Right  int `yaml:"right" json:"right"`
	Bottom int `yaml:"bottom" json:"bottom"`
}

// profileFile is the on-disk document shape
type profileFile struct {
	Profiles []Profile `yaml:"profiles"`
}

// LoadProfiles reads display presets from a YAML file
func LoadProfiles(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles: %w", err)
	}

	var file profileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse profiles: %w", err)
	}

	for _, p := range file.Profiles {
		if p.Name == "" {
			return nil, fmt.Errorf("profile missing name")
		}
		if p.Width <= 0 || p.Height <= 0 {
			return nil, fmt.Errorf("profile %q has invalid size %dx%d", p.Name, p.Width, p.Height)
		}
	}
	return file.Profiles, nil
}

// AddFromProfile registers a display built from a preset
func (m *Manager) AddFromProfile(p Profile) (*Display, error) {
	bounds := geometry.NewRect(0, 0, p.Width, p.Height)
	overscan := geometry.NewRect(
		bounds.Left+p.Overscan.Left,
		bounds.Top+p.Overscan.Top,
		bounds.Right-p.Overscan.Right,
		bounds.Bottom-p.Overscan.Bottom,
	)
	if !overscan.Valid() {
		return nil, fmt.Errorf("profile %q overscan exceeds bounds", p.Name)
	}
	return m.Add(p.Name, bounds, overscan, p.SystemDecorLayer)
}
