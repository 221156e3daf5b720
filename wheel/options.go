// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wheel

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var colorPattern = regexp.MustCompile(`^#([0-9A-Fa-f]{3}){1,2}$`)

// ValidColor reports whether hex is #RGB or #RRGGBB.
func ValidColor(hex string) bool {
	return colorPattern.MatchString(hex)
}

// CoerceWeight maps any numeric input onto a usable weight. Zero and
// non-finite values become the default, negatives and tiny values the floor,
// huge values the ceiling.
func CoerceWeight(w float64) float64 {
	if math.IsNaN(w) || math.IsInf(w, 0) || w == 0 {
		return DefaultWeight
	}
	return math.Min(MaxWeight, math.Max(MinWeight, w))
}

// ParseWeight coerces free-form user input. Unparseable text gets the default.
func ParseWeight(s string) float64 {
	w, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return DefaultWeight
	}
	return CoerceWeight(w)
}

// DisplayLabel shortens long labels for drawing on a slice.
func DisplayLabel(label string) string {
	if utf8.RuneCountInString(label) <= MaxDisplayLabel {
		return label
	}
	runes := []rune(label)
	return string(runes[:truncatedLabel]) + "..."
}

// NormalizeOptions returns a copy with weights coerced and missing colors
// filled from the palette by position. Invalid colors are replaced too.
func NormalizeOptions(opts []Option, cfg Config) []Option {
	out := make([]Option, len(opts))
	for i, o := range opts {
		out[i] = Option{
			Label:  o.Label,
			Weight: CoerceWeight(o.Weight),
			Color:  o.Color,
		}
		if !ValidColor(out[i].Color) {
			out[i].Color = cfg.PaletteColor(i)
		}
	}
	return out
}

// Add appends a new option with the default weight and the next palette color.
func (s *State) Add(label string, cfg Config) (int, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return 0, ErrEmptyLabel
	}
	s.Options = append(s.Options, Option{
		Label:  label,
		Weight: DefaultWeight,
		Color:  cfg.PaletteColor(len(s.Options)),
	})
	return len(s.Options) - 1, nil
}

// Remove deletes the option at i.
func (s *State) Remove(i int) error {
	if i < 0 || i >= len(s.Options) {
		return ErrIndexOutOfRange
	}
	s.Options = append(s.Options[:i:i], s.Options[i+1:]...)
	return nil
}

// Rename replaces the label at i.
func (s *State) Rename(i int, label string) error {
	if i < 0 || i >= len(s.Options) {
		return ErrIndexOutOfRange
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return ErrEmptyLabel
	}
	s.Options[i].Label = label
	return nil
}

// SetWeight stores a coerced weight at i. Weights are never rejected.
func (s *State) SetWeight(i int, w float64) error {
	if i < 0 || i >= len(s.Options) {
		return ErrIndexOutOfRange
	}
	s.Options[i].Weight = CoerceWeight(w)
	return nil
}

// SetColor stores hex at i. An invalid value leaves the prior color in place.
func (s *State) SetColor(i int, hex string) error {
	if i < 0 || i >= len(s.Options) {
		return ErrIndexOutOfRange
	}
	if !ValidColor(hex) {
		return ErrInvalidColor
	}
	s.Options[i].Color = hex
	return nil
}

// Move relocates the option at from to position to. Reports whether
// anything changed; out-of-range or identical positions are ignored.
func (s *State) Move(from, to int) bool {
	n := len(s.Options)
	if from == to || from < 0 || to < 0 || from >= n || to >= n {
		return false
	}
	item := s.Options[from]
	rest := append(s.Options[:from:from], s.Options[from+1:]...)
	moved := make([]Option, 0, n)
	moved = append(moved, rest[:to]...)
	moved = append(moved, item)
	moved = append(moved, rest[to:]...)
	s.Options = moved
	return true
}

// Clear removes every option.
func (s *State) Clear() {
	s.Options = []Option{}
}
