// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wheel

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Plan is a single spin: where it starts, how far it travels and how long
// the deceleration takes. Target is the pre-selected index, or -1 when the
// landing angle alone decides the winner.
type Plan struct {
	ID            string
	StartRotation float64
	TotalDelta    float64
	Duration      time.Duration
	StartTime     time.Time
	Mode          Mode
	Target        int
	Turns         float64
	ReducedMotion bool
}

// SpinOptions carries the per-spin inputs that do not live in State.
type SpinOptions struct {
	Duration      time.Duration
	ReducedMotion bool
	Now           time.Time
}

// Frame is one tick of a plan.
type Frame struct {
	PlanID   string
	Rotation float64
	Progress float64
	Done     bool
}

// NormalizeAngle reduces a into [0, 2π).
func NormalizeAngle(a float64) float64 {
	m := math.Mod(a, TwoPi)
	if m < 0 {
		m += TwoPi
	}
	if m >= TwoPi {
		m = 0
	}
	return m
}

// pointerPosition inverts the clockwise rotation into the wheel-relative
// angle that sits under the fixed pointer.
func pointerPosition(rotation float64) float64 {
	rot := NormalizeAngle(rotation)
	adjusted := math.Mod(rot+math.Pi/2, TwoPi)
	return math.Mod(TwoPi-adjusted, TwoPi)
}

// SliceBounds returns the unrotated [start, end) angle of every slice.
func SliceBounds(opts []Option, mode Mode) [][2]float64 {
	n := len(opts)
	bounds := make([][2]float64, n)
	if n == 0 {
		return bounds
	}

	if mode == ModeEqual {
		width := TwoPi / float64(n)
		for i := range bounds {
			bounds[i] = [2]float64{float64(i) * width, float64(i+1) * width}
		}
		return bounds
	}

	total := 0.0
	for _, o := range opts {
		total += o.Weight
	}
	acc := 0.0
	for i, o := range opts {
		width := TwoPi * (o.Weight / total)
		bounds[i] = [2]float64{acc, acc + width}
		acc += width
	}
	return bounds
}

// WinnerIndex reports which option sits under the pointer at rotation.
// Returns -1 for an empty wheel.
func WinnerIndex(rotation float64, opts []Option, mode Mode) int {
	n := len(opts)
	if n == 0 {
		return -1
	}
	pos := pointerPosition(rotation)

	if mode == ModeEqual {
		slice := TwoPi / float64(n)
		return min(n-1, int(math.Floor(pos/slice)))
	}

	// The last interval is closed on the right to absorb rounding in the
	// cumulative sum.
	for i, b := range SliceBounds(opts, ModeWeighted) {
		if pos < b[1] || i == n-1 {
			return i
		}
	}
	return n - 1
}

// DeltaToPosition returns the smallest rotation delta, travelling more than
// turns full revolutions, that leaves wheel angle pos under the pointer.
func DeltaToPosition(startRotation, pos, turns float64) float64 {
	desired := NormalizeAngle(Pointer - pos)
	base := startRotation + turns*TwoPi
	target := base - NormalizeAngle(base) + desired
	if target <= base {
		target += TwoPi
	}
	return target - startRotation
}

// Turns draws the number of full revolutions for a spin.
func (c Config) Turns(rng RNG, reducedMotion bool) float64 {
	if reducedMotion {
		return 0
	}
	return c.MinTurns + rng.Float64()*(c.MaxTurns-c.MinTurns)
}

// PlanSpin computes a spin for state. Equal-size wheels, and any wheel spun
// with reduced motion, pre-select the winner by weight and steer the
// landing into that slice. Animated weighted spins land wherever they land.
func PlanSpin(state State, cfg Config, opts SpinOptions, rng RNG) (Plan, error) {
	if len(state.Options) == 0 {
		return Plan{}, ErrNoOptions
	}

	plan := Plan{
		ID:            uuid.NewString(),
		StartRotation: state.Rotation,
		Duration:      opts.Duration,
		StartTime:     opts.Now,
		Mode:          state.Mode,
		Target:        -1,
		Turns:         cfg.Turns(rng, opts.ReducedMotion),
		ReducedMotion: opts.ReducedMotion,
	}
	if opts.ReducedMotion {
		plan.Duration = 0
	}

	if state.Mode == ModeWeighted && !opts.ReducedMotion {
		plan.TotalDelta = plan.Turns*TwoPi + rng.Float64()*TwoPi
		return plan, nil
	}

	plan.Target = WeightedRandomIndex(state.Weights(), rng)
	b := SliceBounds(state.Options, state.Mode)[plan.Target]
	within := cfg.LandingLow + rng.Float64()*(cfg.LandingHigh-cfg.LandingLow)
	pos := b[0] + (b[1]-b[0])*within
	plan.TotalDelta = DeltaToPosition(state.Rotation, pos, plan.Turns)
	return plan, nil
}

// Progress is the clamped linear completion at now.
func (p Plan) Progress(now time.Time) float64 {
	if p.Duration <= 0 {
		return 1
	}
	progress := float64(now.Sub(p.StartTime)) / float64(p.Duration)
	return math.Min(1, math.Max(0, progress))
}

// Ease is the cubic ease-out curve.
func Ease(progress float64) float64 {
	return 1 - math.Pow(1-progress, 3)
}

// RotationAt returns the eased rotation for a given progress.
func (p Plan) RotationAt(progress float64) float64 {
	return p.StartRotation + p.TotalDelta*Ease(progress)
}

// Tick evaluates the plan at now.
func (p Plan) Tick(now time.Time) Frame {
	progress := p.Progress(now)
	return Frame{
		PlanID:   p.ID,
		Rotation: p.RotationAt(progress),
		Progress: progress,
		Done:     progress >= 1,
	}
}

// FinalRotation is where the wheel rests once the plan completes.
func (p Plan) FinalRotation() float64 {
	return NormalizeAngle(p.StartRotation + p.TotalDelta)
}
