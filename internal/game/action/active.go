package action

import (
	"time"

	"github.com/google/uuid"
)

// State names a scheduler state as seen by callers.
type State string

const (
	StateIdle    State = "IDLE"
	StateRunning State = "RUNNING"
)

// StopReason explains why a completed attempt did not loop.
type StopReason string

const (
	// StopNone means the action looped into a new attempt.
	StopNone StopReason = ""
	// StopNoLoop means the action was started with Loop disabled.
	StopNoLoop StopReason = "loop_disabled"
	// StopMaxAttempts means the MaxAttempts budget was used up.
	StopMaxAttempts StopReason = "max_attempts"
	// StopMissingInputs means the next attempt's inputs were not available.
	StopMissingInputs StopReason = "missing_inputs"
)

// Options tune a started action.
type Options struct {
	// Loop restarts the action after each completion.
	Loop bool `json:"loop"`
	// MaxAttempts bounds the number of attempts when looping; 0 is unbounded.
	MaxAttempts int `json:"max_attempts"`
}

// DefaultOptions loops without an attempt bound.
func DefaultOptions() Options {
	return Options{Loop: true}
}

// ActiveAction is the one running action of a player.
type ActiveAction struct {
	PlayerID             int64     `json:"player_id"`
	ActionID             string    `json:"action_id"`
	AttemptID            uuid.UUID `json:"attempt_id"`
	Attempt              int       `json:"attempt"`
	Loop                 bool      `json:"loop"`
	MaxAttempts          int       `json:"max_attempts"`
	StartedAt            time.Time `json:"started_at"`
	ExpectedCompletionAt time.Time `json:"expected_completion_at"`
}

// Duration returns the length of the current window.
func (a ActiveAction) Duration() time.Duration {
	return a.ExpectedCompletionAt.Sub(a.StartedAt)
}

// Due reports whether the current window has elapsed at now.
func (a ActiveAction) Due(now time.Time) bool {
	return !now.Before(a.ExpectedCompletionAt)
}

// willLoop reports whether a completed attempt starts another.
func (a ActiveAction) willLoop() (bool, StopReason) {
	if !a.Loop {
		return false, StopNoLoop
	}
	if a.MaxAttempts > 0 && a.Attempt >= a.MaxAttempts {
		return false, StopMaxAttempts
	}
	return true, StopNone
}

// next returns the following attempt, anchored at the end of this window.
func (a ActiveAction) next() ActiveAction {
	n := a
	n.AttemptID = uuid.New()
	n.Attempt = a.Attempt + 1
	n.StartedAt = a.ExpectedCompletionAt
	n.ExpectedCompletionAt = a.ExpectedCompletionAt.Add(a.Duration())
	return n
}

// View is the client-facing progress of an ActiveAction.
type View struct {
	ActiveAction
	State     State         `json:"state"`
	Progress  float64       `json:"progress"`
	Remaining time.Duration `json:"remaining"`
	ServerNow time.Time     `json:"server_now"`
}

// View derives progress at now: clamp((now-StartedAt)/duration, 0, 1) and
// the time left, never negative.
func (a ActiveAction) View(now time.Time) View {
	v := View{ActiveAction: a, State: StateRunning, ServerNow: now}
	d := a.Duration()
	if d <= 0 {
		v.Progress = 1
		return v
	}
	p := float64(now.Sub(a.StartedAt)) / float64(d)
	v.Progress = min(max(p, 0), 1)
	if rem := a.ExpectedCompletionAt.Sub(now); rem > 0 {
		v.Remaining = rem
	}
	return v
}
