// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package transfer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/danielhkuo/quickly-spin/wheel"
)

// DateFormat is the exportDate layout: UTC with millisecond precision.
const DateFormat = "2006-01-02T15:04:05.000Z"

var ErrMalformed = errors.New("malformed configuration file")

// Document is the import/export file.
type Document struct {
	Options    []wheel.Option `json:"options"`
	Settings   wheel.Settings `json:"settings"`
	ExportDate string         `json:"exportDate"`
}

// Export renders opts and settings as an indented document stamped with now.
func Export(opts []wheel.Option, settings wheel.Settings, now time.Time) ([]byte, error) {
	if opts == nil {
		opts = []wheel.Option{}
	}
	doc := Document{
		Options:    opts,
		Settings:   settings,
		ExportDate: now.UTC().Format(DateFormat),
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Filename is the suggested download name for an export taken at now.
func Filename(now time.Time) string {
	return "spinner-config-" + strconv.FormatInt(now.UnixMilli(), 10) + ".json"
}

// Import applies a document onto the current options and settings. A missing
// options or settings key keeps the current value; settings are merged onto
// the current ones. Errors wrap ErrMalformed and leave nothing applied.
func Import(data []byte, opts []wheel.Option, settings wheel.Settings, cfg wheel.Config) ([]wheel.Option, wheel.Settings, error) {
	var raw struct {
		Options  json.RawMessage `json:"options"`
		Settings json.RawMessage `json:"settings"`
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return opts, settings, fmt.Errorf("%w: expected a JSON object", ErrMalformed)
	}
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return opts, settings, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	newOpts := opts
	if present(raw.Options) {
		decoded, err := wheel.DecodeOptions(raw.Options, cfg)
		if err != nil {
			return opts, settings, fmt.Errorf("%w: options: %v", ErrMalformed, err)
		}
		newOpts = decoded
	}

	newSettings := settings
	if present(raw.Settings) {
		decoded, err := wheel.DecodeSettings(raw.Settings, settings)
		if err != nil {
			return opts, settings, fmt.Errorf("%w: settings: %v", ErrMalformed, err)
		}
		newSettings = decoded
	}

	return newOpts, newSettings, nil
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}
