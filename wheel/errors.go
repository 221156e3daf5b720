// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wheel

import (
	"errors"
	"fmt"
)

var (
	ErrNoOptions       = errors.New("wheel has no options")
	ErrIndexOutOfRange = errors.New("option index out of range")
	ErrEmptyLabel      = errors.New("label must not be empty")
	ErrInvalidColor    = errors.New("color must be a hex value like #RGB or #RRGGBB")
	ErrStalePlan       = errors.New("spin plan is no longer active")
	ErrEmptyPalette    = errors.New("palette must not be empty")
)

// ConfigError reports an unusable tuning value.
type ConfigError struct {
	Field string
	Value string
}

func (e *ConfigError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid wheel config %s: %q", e.Field, e.Value)
	}
	return fmt.Sprintf("invalid wheel config %s", e.Field)
}
