package app

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/colornames"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
slots: 32
stats_every: 60
title: Bench
buttons: ["-1", "+1"]
theme:
  background: Black
  accent: "#ff8800"
`))
	if err != nil {
		t.Fatalf("ParseConfig() err = %v", err)
	}
	if cfg.Slots != 32 || cfg.StatsEvery != 60 || cfg.Title != "Bench" || len(cfg.Buttons) != 2 {
		t.Fatalf("cfg = %+v", cfg)
	}
	th := cfg.Palette()
	if th.Background != colornames.Black {
		t.Fatalf("background = %v", th.Background)
	}
	if want := (color.RGBA{R: 0xFF, G: 0x88, A: 0xFF}); th.Accent != want {
		t.Fatalf("accent = %v, want %v", th.Accent, want)
	}
	if th.Surface != colornames.Darkslategray {
		t.Fatalf("surface = %v, want the default", th.Surface)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown color", "theme: {text: notacolor}", `theme.text: unknown color "notacolor"`},
		{"bad hex", "theme: {hover: '#12'}", "bad hex color"},
		{"no buttons", "buttons: []", "at least one button"},
		{"too few slots", "slots: 8", "need at least 12 slots"},
		{"negative stats", "stats_every: -1", "stats_every"},
		{"bad yaml", "slots: [", "config:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("ParseConfig(%q) err = %v, want %q", tt.yaml, err, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.yaml")
	if err := os.WriteFile(path, []byte("untracked: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() err = %v", err)
	}
	if !cfg.Untracked || cfg.Slots != DefaultConfig().Slots {
		t.Fatalf("cfg = %+v", cfg)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("LoadConfig() of a missing file succeeded")
	}
}
