package models

import (
	"encoding/json"
	"time"
)

// Selection mode names
const (
	ModeWeighted = "weighted"
	ModeEqual    = "equal"
)

// Request types

type CreateWheelRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type AddOptionRequest struct {
	Label string `json:"label" validate:"required"`
}

// Fields left out are not changed. Weight may be a number or a numeric
// string; anything unusable falls back to the default weight.
type UpdateOptionRequest struct {
	Label  *string         `json:"label,omitempty"`
	Weight json.RawMessage `json:"weight,omitempty"`
	Color  *string         `json:"color,omitempty"`
}

type MoveOptionRequest struct {
	From *int `json:"from" validate:"required,min=0"`
	To   *int `json:"to" validate:"required,min=0"`
}

type UpdateSettingsRequest struct {
	SoundEnabled    *bool `json:"sound_enabled"`
	ConfettiEnabled *bool `json:"confetti_enabled"`
	SpinDuration    *int  `json:"spin_duration" validate:"omitempty,min=1,max=10"`
	EqualSizeSlices *bool `json:"equal_size_slices"`
}

type SpinRequest struct {
	ReducedMotion bool `json:"reduced_motion"`
}

// Response types

type CreateWheelResponse struct {
	WheelID  string `json:"wheel_id"`
	AdminKey string `json:"admin_key"`
}

type OptionView struct {
	Index  int     `json:"index"`
	Label  string  `json:"label"`
	Weight float64 `json:"weight"`
	Color  string  `json:"color"`
}

type SliceView struct {
	Index        int     `json:"index"`
	Label        string  `json:"label"`
	DisplayLabel string  `json:"display_label"`
	Color        string  `json:"color"`
	Weight       float64 `json:"weight"`
	Share        float64 `json:"share"`
	StartAngle   float64 `json:"start_angle"`
	EndAngle     float64 `json:"end_angle"`
}

type SettingsView struct {
	SoundEnabled    bool `json:"sound_enabled"`
	ConfettiEnabled bool `json:"confetti_enabled"`
	SpinDuration    int  `json:"spin_duration"`
	EqualSizeSlices bool `json:"equal_size_slices"`
}

type WheelResponse struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	CreatedAt          time.Time    `json:"created_at"`
	Options            []OptionView `json:"options"`
	Settings           SettingsView `json:"settings"`
	Mode               string       `json:"mode"`
	Rotation           float64      `json:"rotation"`
	TotalWeight        float64      `json:"total_weight"`
	TotalWeightDisplay string       `json:"total_weight_display"`
	Slices             []SliceView  `json:"slices"`
	Placeholder        string       `json:"placeholder,omitempty"`
	Spinning           bool         `json:"spinning"`
}

type OptionsResponse struct {
	Options            []OptionView `json:"options"`
	TotalWeight        float64      `json:"total_weight"`
	TotalWeightDisplay string       `json:"total_weight_display"`
}

type PlanView struct {
	ID            string    `json:"id"`
	StartRotation float64   `json:"start_rotation"`
	TotalDelta    float64   `json:"total_delta"`
	DurationMS    int64     `json:"duration_ms"`
	StartTime     time.Time `json:"start_time"`
	Mode          string    `json:"mode"`
	Turns         float64   `json:"turns"`
	ReducedMotion bool      `json:"reduced_motion"`
}

type SpinResponse struct {
	Started bool      `json:"started"`
	Plan    *PlanView `json:"plan,omitempty"`
}

type Effects struct {
	SoundURL string `json:"sound_url,omitempty"`
	Confetti bool   `json:"confetti"`
}

type ResultView struct {
	PlanID   string     `json:"plan_id"`
	Index    int        `json:"index"`
	Option   OptionView `json:"option"`
	Rotation float64    `json:"rotation"`
	Effects  Effects    `json:"effects"`
}

type ProgressResponse struct {
	PlanID   string      `json:"plan_id"`
	Rotation float64     `json:"rotation"`
	Progress float64     `json:"progress"`
	Done     bool        `json:"done"`
	Result   *ResultView `json:"result,omitempty"`
}

type CancelResponse struct {
	Cancelled bool    `json:"cancelled"`
	Rotation  float64 `json:"rotation"`
}

type ImportResponse struct {
	Message     string       `json:"message"`
	OptionCount int          `json:"option_count"`
	Settings    SettingsView `json:"settings"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
