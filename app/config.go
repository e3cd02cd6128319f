package app

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Config describes the demo panel. The zero value is not usable; start from
// DefaultConfig or LoadConfig.
type Config struct {
	// Slots is the sequencer capacity. Every frame must fit inside it.
	Slots int `yaml:"slots"`
	// StatsEvery logs frame statistics every n frames; 0 disables.
	StatsEvery int `yaml:"stats_every"`
	// Untracked reserves every slot but redraws every widget each frame.
	Untracked bool `yaml:"untracked"`

	Title   string      `yaml:"title"`
	Buttons []string    `yaml:"buttons"`
	Theme   ThemeConfig `yaml:"theme"`

	theme Theme
}

// ThemeConfig holds color names as written in the config file. A value is a
// CSS color name ("steelblue") or a hex triplet ("#4682b4").
type ThemeConfig struct {
	Background string `yaml:"background"`
	Surface    string `yaml:"surface"`
	Hover      string `yaml:"hover"`
	Pressed    string `yaml:"pressed"`
	Border     string `yaml:"border"`
	Text       string `yaml:"text"`
	Accent     string `yaml:"accent"`
	AccentAlt  string `yaml:"accent_alt"`
}

// Theme is the resolved palette.
type Theme struct {
	Background color.RGBA
	Surface    color.RGBA
	Hover      color.RGBA
	Pressed    color.RGBA
	Border     color.RGBA
	Text       color.RGBA
	Accent     color.RGBA
	AccentAlt  color.RGBA
}

var defaultTheme = ThemeConfig{
	Background: "midnightblue",
	Surface:    "darkslategray",
	Hover:      "slategray",
	Pressed:    "steelblue",
	Border:     "lightslategray",
	Text:       "whitesmoke",
	Accent:     "orange",
	AccentAlt:  "mediumseagreen",
}

// DefaultConfig returns the built-in panel.
func DefaultConfig() Config {
	cfg := Config{
		Slots:      64,
		StatsEvery: 0,
		Title:      "Ember",
		Buttons:    []string{"Reset", "+1", "+10"},
		Theme:      defaultTheme,
	}
	if err := cfg.resolve(); err != nil {
		panic(err)
	}
	return cfg
}

// LoadConfig reads a YAML config. Missing fields keep their defaults.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(b)
}

// ParseConfig decodes YAML over the defaults.
func ParseConfig(b []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.resolve(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var errNoButtons = errors.New("config: at least one button is required")

func (c *Config) resolve() error {
	if c.Slots <= 0 {
		return fmt.Errorf("config: slots must be positive, got %d", c.Slots)
	}
	if c.StatsEvery < 0 {
		return fmt.Errorf("config: stats_every must not be negative, got %d", c.StatsEvery)
	}
	if len(c.Buttons) == 0 {
		return errNoButtons
	}
	if need := slotsFor(len(c.Buttons)); c.Slots < need {
		return fmt.Errorf("config: %d buttons need at least %d slots, got %d", len(c.Buttons), need, c.Slots)
	}

	fields := []struct {
		name string
		src  string
		def  string
		dst  *color.RGBA
	}{
		{"background", c.Theme.Background, defaultTheme.Background, &c.theme.Background},
		{"surface", c.Theme.Surface, defaultTheme.Surface, &c.theme.Surface},
		{"hover", c.Theme.Hover, defaultTheme.Hover, &c.theme.Hover},
		{"pressed", c.Theme.Pressed, defaultTheme.Pressed, &c.theme.Pressed},
		{"border", c.Theme.Border, defaultTheme.Border, &c.theme.Border},
		{"text", c.Theme.Text, defaultTheme.Text, &c.theme.Text},
		{"accent", c.Theme.Accent, defaultTheme.Accent, &c.theme.Accent},
		{"accent_alt", c.Theme.AccentAlt, defaultTheme.AccentAlt, &c.theme.AccentAlt},
	}
	for _, f := range fields {
		s := f.src
		if s == "" {
			s = f.def
		}
		col, err := parseColor(s)
		if err != nil {
			return fmt.Errorf("config: theme.%s: %w", f.name, err)
		}
		*f.dst = col
	}
	return nil
}

// Palette returns the resolved theme.
func (c Config) Palette() Theme { return c.theme }

func parseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) != 6 {
			return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
		}
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
	}
	col, ok := colornames.Map[s]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	return col, nil
}
