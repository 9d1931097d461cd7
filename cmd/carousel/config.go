package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/tsawler/carousel/model"
)

// Sentinel errors for settings operations.
var (
	ErrSettingsNotFound = errors.New("settings file not found")
	ErrSettingsParse    = errors.New("failed to parse settings")
)

// Settings holds file-based configuration. Command line flags override any
// value set here.
type Settings struct {
	Output    OutputSettings    `yaml:"output"`
	Fonts     []string          `yaml:"fonts"`
	Highlight HighlightSettings `yaml:"highlight"`
	Page      PageSettings      `yaml:"page"`
	Workers   int               `yaml:"workers"`
}

// OutputSettings defines output destination options.
type OutputSettings struct {
	Dir string `yaml:"dir"` // default output directory (empty = next to input)
}

// HighlightSettings defines code highlighting options.
type HighlightSettings struct {
	Style string `yaml:"style"` // chroma style name (empty = library default)
}

// PageSettings overrides parts of the page geometry. Zero values keep the
// A4 defaults; sizes are in points, the margin in centimetres.
type PageSettings struct {
	MarginCM      float64 `yaml:"marginCM"`
	TitleFontSize float64 `yaml:"titleFontSize"`
	BodyFontSize  float64 `yaml:"bodyFontSize"`
	CodeFontSize  float64 `yaml:"codeFontSize"`
}

// DefaultSettings returns a neutral configuration.
func DefaultSettings() *Settings {
	return &Settings{}
}

// LoadSettings reads and parses a YAML settings file. Unknown keys are
// rejected so typos surface instead of silently doing nothing.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSettingsNotFound, path)
		}
		return nil, fmt.Errorf("reading settings file: %w", err)
	}
	return parseSettings(data)
}

func parseSettings(data []byte) (*Settings, error) {
	var s Settings
	if err := yaml.UnmarshalWithOptions(data, &s, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSettingsParse, err)
	}
	return &s, nil
}

// Geometry applies the page overrides onto the A4 defaults.
func (s *Settings) Geometry() model.PageGeometry {
	g := model.A4Geometry()
	if s.Page.MarginCM > 0 {
		g.Margin = s.Page.MarginCM * 28.35
	}
	if s.Page.TitleFontSize > 0 {
		g.TitleFontSize = s.Page.TitleFontSize
	}
	if s.Page.BodyFontSize > 0 {
		g.BodyFontSize = s.Page.BodyFontSize
	}
	if s.Page.CodeFontSize > 0 {
		g.CodeFontSize = s.Page.CodeFontSize
	}
	return g
}
