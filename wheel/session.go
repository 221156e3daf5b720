// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wheel

import "time"

// Result is the announced winner of a finished plan.
type Result struct {
	PlanID        string
	Index         int
	Option        Option
	Rotation      float64
	ReducedMotion bool
}

// Session drives at most one plan for a wheel. It is a polled state machine:
// the owner calls Advance from its own scheduler until the frame is done.
// Not safe for concurrent use.
type Session struct {
	State State

	plan     *Plan
	progress float64
	last     *Result
}

// NewSession wraps state.
func NewSession(state State) *Session {
	return &Session{State: state}
}

// Spinning reports whether a plan is in flight.
func (s *Session) Spinning() bool {
	return s.plan != nil
}

// Active returns the in-flight plan.
func (s *Session) Active() (Plan, bool) {
	if s.plan == nil {
		return Plan{}, false
	}
	return *s.plan, true
}

// Last returns the most recent result.
func (s *Session) Last() (Result, bool) {
	if s.last == nil {
		return Result{}, false
	}
	return *s.last, true
}

// Start plans a spin. It is a no-op, reporting false, while another plan is
// in flight or when the wheel is empty.
func (s *Session) Start(cfg Config, opts SpinOptions, rng RNG) (Plan, bool) {
	if s.plan != nil || len(s.State.Options) == 0 {
		return Plan{}, false
	}
	plan, err := PlanSpin(s.State, cfg, opts, rng)
	if err != nil {
		return Plan{}, false
	}
	s.plan = &plan
	s.progress = 0
	return plan, true
}

// Advance ticks the active plan at now. Progress never moves backwards. When
// the plan completes the rotation is normalized, the winner determined and
// the plan released. Polling a plan that already finished returns its final
// frame again; any other id gets ErrStalePlan.
func (s *Session) Advance(planID string, now time.Time) (Frame, *Result, error) {
	if s.plan == nil || s.plan.ID != planID {
		if s.last != nil && s.last.PlanID == planID {
			res := *s.last
			return Frame{PlanID: planID, Rotation: res.Rotation, Progress: 1, Done: true}, &res, nil
		}
		return Frame{}, nil, ErrStalePlan
	}

	progress := max(s.plan.Progress(now), s.progress)
	s.progress = progress
	frame := Frame{
		PlanID:   s.plan.ID,
		Rotation: s.plan.RotationAt(progress),
		Progress: progress,
		Done:     progress >= 1,
	}
	if !frame.Done {
		return frame, nil, nil
	}

	res := s.finish()
	frame.Rotation = res.Rotation
	return frame, &res, nil
}

func (s *Session) finish() Result {
	plan := *s.plan
	s.State.Rotation = plan.FinalRotation()
	s.plan = nil
	s.progress = 0

	res := Result{
		PlanID:        plan.ID,
		Index:         WinnerIndex(s.State.Rotation, s.State.Options, plan.Mode),
		Rotation:      s.State.Rotation,
		ReducedMotion: plan.ReducedMotion,
	}
	if res.Index >= 0 {
		res.Option = s.State.Options[res.Index]
	}
	s.last = &res
	return res
}

// Cancel revokes the active plan, leaving the wheel where it was at now.
// Later polls for the revoked plan get ErrStalePlan.
func (s *Session) Cancel(now time.Time) (Plan, bool) {
	if s.plan == nil {
		return Plan{}, false
	}
	plan := *s.plan
	progress := max(plan.Progress(now), s.progress)
	s.State.Rotation = NormalizeAngle(plan.RotationAt(progress))
	s.plan = nil
	s.progress = 0
	return plan, true
}
