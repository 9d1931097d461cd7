package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/carousel/model"
)

func TestParseSettings(t *testing.T) {
	data := []byte(`
output:
  dir: dist
fonts:
  - /usr/share/fonts/a.ttf
highlight:
  style: monokai
page:
  marginCM: 1.5
  bodyFontSize: 12
workers: 4
`)
	s, err := parseSettings(data)
	if err != nil {
		t.Fatalf("parseSettings: %v", err)
	}
	if s.Output.Dir != "dist" || s.Highlight.Style != "monokai" || s.Workers != 4 {
		t.Errorf("settings = %+v", s)
	}
	if len(s.Fonts) != 1 {
		t.Errorf("fonts = %v", s.Fonts)
	}
}

func TestParseSettingsRejectsUnknownKeys(t *testing.T) {
	if _, err := parseSettings([]byte("outptu:\n  dir: typo\n")); !errors.Is(err, ErrSettingsParse) {
		t.Fatalf("err = %v, want ErrSettingsParse", err)
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, ErrSettingsNotFound) {
		t.Fatalf("err = %v, want ErrSettingsNotFound", err)
	}
}

func TestLoadSettingsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("workers: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.Workers != 2 {
		t.Errorf("workers = %d", s.Workers)
	}
}

func TestSettingsGeometry(t *testing.T) {
	s := &Settings{Page: PageSettings{MarginCM: 1.0, BodyFontSize: 13}}
	g := s.Geometry()

	if g.Margin != 28.35 {
		t.Errorf("margin = %f", g.Margin)
	}
	if g.BodyFontSize != 13 {
		t.Errorf("body size = %f", g.BodyFontSize)
	}

	// Untouched fields keep the A4 defaults.
	def := model.A4Geometry()
	if g.Width != def.Width || g.TitleFontSize != def.TitleFontSize {
		t.Error("unset overrides must keep defaults")
	}
	if !g.Valid() {
		t.Error("overridden geometry must stay valid")
	}
}
