// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wheel

import "math"

// Full turn and pointer position, in the drawing convention where angle 0
// points right and angles grow clockwise on screen.
const (
	TwoPi   = 2 * math.Pi
	Pointer = 3 * math.Pi / 2
)

// Option weight bounds
const (
	DefaultWeight = 1.0
	MinWeight     = 0.0001
	MaxWeight     = 1e6
)

// Spin duration bounds, in seconds
const (
	MinSpinDuration     = 1
	MaxSpinDuration     = 10
	DefaultSpinDuration = 3
)

// Labels longer than this are shortened for display.
const (
	MaxDisplayLabel = 20
	truncatedLabel  = 17
)

// Placeholder is shown in place of slices when a wheel has no options.
const Placeholder = "Add options to start"

// DefaultPalette is assigned cyclically to options without a color.
var DefaultPalette = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A",
	"#98D8C8", "#F7DC6F", "#BB8FCE", "#85C1E2",
	"#F8B739", "#52B788", "#E76F51", "#2A9D8F",
}

// Mode selects how slice widths relate to weights.
type Mode int

const (
	// ModeWeighted draws slices proportional to weight; the landing angle decides.
	ModeWeighted Mode = iota
	// ModeEqual draws equal slices and steers the landing toward a weighted pick.
	ModeEqual
)

func (m Mode) String() string {
	if m == ModeEqual {
		return "equal"
	}
	return "weighted"
}

// Option is one labeled slice. Identity is its position in the list.
type Option struct {
	Label  string  `json:"label"`
	Weight float64 `json:"weight"`
	Color  string  `json:"color"`
}

// State is everything needed to draw and spin a wheel.
type State struct {
	Options  []Option
	Rotation float64
	Mode     Mode
}

// Weights returns the option weights in list order.
func (s State) Weights() []float64 {
	weights := make([]float64, len(s.Options))
	for i, o := range s.Options {
		weights[i] = o.Weight
	}
	return weights
}

// TotalWeight sums the option weights.
func (s State) TotalWeight() float64 {
	total := 0.0
	for _, o := range s.Options {
		total += o.Weight
	}
	return total
}

// Settings are the user preferences persisted next to the option list.
type Settings struct {
	SoundEnabled    bool `json:"soundEnabled"`
	ConfettiEnabled bool `json:"confettiEnabled"`
	SpinDuration    int  `json:"spinDuration"`
	EqualSizeSlices bool `json:"equalSizeSlices"`
}

// DefaultSettings returns the settings used for new wheels.
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled:    true,
		ConfettiEnabled: true,
		SpinDuration:    DefaultSpinDuration,
		EqualSizeSlices: false,
	}
}

// Mode reports the selection mode implied by the settings.
func (s Settings) Mode() Mode {
	if s.EqualSizeSlices {
		return ModeEqual
	}
	return ModeWeighted
}

// Normalize clamps the spin duration into its allowed range.
func (s Settings) Normalize() Settings {
	switch {
	case s.SpinDuration < MinSpinDuration:
		s.SpinDuration = MinSpinDuration
	case s.SpinDuration > MaxSpinDuration:
		s.SpinDuration = MaxSpinDuration
	}
	return s
}

// Config tunes palette, seed list and spin feel. Loaded from YAML by cliparse.
type Config struct {
	Palette     []string `yaml:"palette"`
	SeedLabels  []string `yaml:"seed_options"`
	MinTurns    float64  `yaml:"min_turns"`
	MaxTurns    float64  `yaml:"max_turns"`
	LandingLow  float64  `yaml:"landing_low"`
	LandingHigh float64  `yaml:"landing_high"`
}

// DefaultConfig returns the stock tuning: 5 to 8 full turns, landing in the
// middle fifth of the chosen slice.
func DefaultConfig() Config {
	return Config{
		Palette:     append([]string(nil), DefaultPalette...),
		SeedLabels:  []string{"Option 1", "Option 2", "Option 3", "Option 4"},
		MinTurns:    5,
		MaxTurns:    8,
		LandingLow:  0.4,
		LandingHigh: 0.6,
	}
}

// Validate checks the tuning is usable.
func (c Config) Validate() error {
	if len(c.Palette) == 0 {
		return ErrEmptyPalette
	}
	for _, color := range c.Palette {
		if !ValidColor(color) {
			return &ConfigError{Field: "palette", Value: color}
		}
	}
	if c.MinTurns < 0 || c.MaxTurns < c.MinTurns {
		return &ConfigError{Field: "min_turns/max_turns"}
	}
	if c.LandingLow < 0 || c.LandingHigh > 1 || c.LandingHigh <= c.LandingLow {
		return &ConfigError{Field: "landing_low/landing_high"}
	}
	return nil
}

// PaletteColor picks the palette entry for position i.
func (c Config) PaletteColor(i int) string {
	palette := c.Palette
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return palette[i%len(palette)]
}

// SeedOptions builds the list new or unreadable wheels start with.
func (c Config) SeedOptions() []Option {
	opts := make([]Option, len(c.SeedLabels))
	for i, label := range c.SeedLabels {
		opts[i] = Option{Label: label, Weight: DefaultWeight, Color: c.PaletteColor(i)}
	}
	return opts
}
