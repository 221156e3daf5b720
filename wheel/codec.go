// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wheel

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// UnmarshalJSON accepts both the legacy bare-string form and the object form.
// Weights may arrive as numbers or numeric strings; anything unusable is left
// at zero for NormalizeOptions to coerce.
func (o *Option) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var label string
		if err := json.Unmarshal(data, &label); err != nil {
			return err
		}
		*o = Option{Label: label, Weight: DefaultWeight}
		return nil
	}

	var raw struct {
		Label  *string         `json:"label"`
		Weight json.RawMessage `json:"weight"`
		Color  string          `json:"color"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("option must be a string or an object: %w", err)
	}

	*o = Option{Color: raw.Color, Weight: decodeWeight(raw.Weight)}
	if raw.Label != nil {
		o.Label = *raw.Label
	}
	return nil
}

// WeightFromJSON coerces a JSON number or numeric string into a weight.
// Missing or unusable input gets the default weight.
func WeightFromJSON(raw json.RawMessage) float64 {
	return CoerceWeight(decodeWeight(raw))
}

func decodeWeight(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return 0
}

// DecodeOptions parses a persisted or imported option list and normalizes it
// once. Options without a label are named after their position.
func DecodeOptions(data []byte, cfg Config) ([]Option, error) {
	var opts []Option
	if err := json.Unmarshal(data, &opts); err != nil {
		return nil, err
	}
	if opts == nil {
		return nil, fmt.Errorf("option list must be an array")
	}
	for i := range opts {
		if opts[i].Label == "" {
			opts[i].Label = fmt.Sprintf("Option %d", i+1)
		}
	}
	return NormalizeOptions(opts, cfg), nil
}

// DecodeSettings merges data onto base and clamps the result.
func DecodeSettings(data []byte, base Settings) (Settings, error) {
	s := base
	if err := json.Unmarshal(data, &s); err != nil {
		return base, err
	}
	return s.Normalize(), nil
}
