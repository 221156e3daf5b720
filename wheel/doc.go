// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package wheel implements the spin and selection core of a decision wheel.

# Angles

All angles are radians. Angle 0 points right and angles grow clockwise on
screen, matching how clients draw. The pointer is fixed at 3π/2 (top).
Rotation is always reducible modulo 2π without changing the winner:

	WinnerIndex(r, opts, mode) == WinnerIndex(r+2π*k, opts, mode)

# Modes

  - ModeWeighted: slice width proportional to weight; the landing angle
    decides the winner after the fact.
  - ModeEqual: equal slices; the winner is pre-selected with
    WeightedRandomIndex and the landing steered into that slice.

Reduced-motion spins always pre-select by weight, in both modes.

# Spinning

PlanSpin is pure: state, tuning and an RNG in, a Plan out. A Session owns
at most one plan and is advanced by an external scheduler:

	plan, ok := session.Start(cfg, wheel.SpinOptions{Duration: 3 * time.Second, Now: now}, rng)
	frame, result, err := session.Advance(plan.ID, later)

Advance eases rotation with a cubic ease-out, never reports decreasing
progress, and on completion normalizes the rotation and returns the winner.
Start is a silent no-op while a plan is active or the wheel is empty.

# Normalization

Options are normalized once at the load/import boundary (DecodeOptions,
NormalizeOptions): weights coerced with CoerceWeight, missing colors taken
from the palette by position. Legacy bare-string lists decode to weight 1.
*/
package wheel
