package timeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is the full timing table for one render: a window per element plus
// the logo's nested phase boundaries. Profiles can be tuned per style and
// loaded from YAML instead of editing code.
type Profile struct {
	Ambient        Window     `yaml:"ambient"`
	EdgeGlow       Window     `yaml:"edge_glow"`
	Bar            Window     `yaml:"bar"`
	Logo           Window     `yaml:"logo"`
	Title          Window     `yaml:"title"`
	Subtitle       Window     `yaml:"subtitle"`
	ForegroundGlow Window     `yaml:"foreground_glow"`
	LogoPhases     LogoPhases `yaml:"logo_phases"`
}

// Default returns the stock timing table.
func Default() Profile {
	return Profile{
		Ambient:        Window{Start: 0.10, Duration: 0.30},
		EdgeGlow:       Window{Start: 0.00, Duration: 0.80},
		Bar:            Window{Start: 0.20, Duration: 0.50},
		Logo:           Window{Start: 0.40, Duration: 0.40},
		Title:          Window{Start: 0.60, Duration: 0.50},
		Subtitle:       Window{Start: 0.80, Duration: 0.40},
		ForegroundGlow: Window{Start: 0.50, Duration: 0.40},
		LogoPhases:     LogoPhases{Glow: 0.30, Materialize: 0.40},
	}
}

// Normalize validates the profile and repairs degenerate values so rendering
// never divides by zero. Returns an error for windows outside [0,1].
func (p *Profile) Normalize() error {
	windows := map[string]*Window{
		"ambient":         &p.Ambient,
		"edge_glow":       &p.EdgeGlow,
		"bar":             &p.Bar,
		"logo":            &p.Logo,
		"title":           &p.Title,
		"subtitle":        &p.Subtitle,
		"foreground_glow": &p.ForegroundGlow,
	}
	for name, w := range windows {
		if w.Start < 0 || w.Start > 1 || w.Duration < 0 {
			return fmt.Errorf("window %s out of range: start=%.2f duration=%.2f", name, w.Start, w.Duration)
		}
	}

	if p.LogoPhases.Glow <= 0 || p.LogoPhases.Materialize <= 0 ||
		p.LogoPhases.Glow+p.LogoPhases.Materialize >= 1 {
		p.LogoPhases = Default().LogoPhases
	}
	return nil
}

// LoadProfile reads a timing profile from a YAML file.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, err
	}

	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile %s: %w", path, err)
	}
	if err := p.Normalize(); err != nil {
		return Profile{}, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	return p, nil
}

// WriteProfile saves a timing profile as YAML, e.g. as a starting point for
// per-style tuning.
func WriteProfile(p Profile, path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
