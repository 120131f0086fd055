// Package gameerr defines the typed rejections returned by engine operations.
//
// Every rejected operation returns a *Rejection whose Code tells the caller
// what went wrong and whose Reason is safe to show to the player.
package gameerr

import (
	"errors"
	"fmt"
)

// Code classifies a rejection.
type Code string

const (
	AlreadyRunning         Code = "already_running"
	NoActiveAction         Code = "no_active_action"
	LevelTooLow            Code = "level_too_low"
	MissingInputs          Code = "missing_inputs"
	InvalidSkillDefinition Code = "invalid_skill_definition"
	UnknownEntity          Code = "unknown_entity"
	InsufficientStamina    Code = "insufficient_stamina"
	InvalidTarget          Code = "invalid_target"
	// Incapacitated rejects a skill use by a stunned or silenced caster.
	Incapacitated Code = "incapacitated"
)

// Rejection is a recoverable, caller-visible refusal of an operation.
type Rejection struct {
	Code   Code
	Reason string
}

// Error implements error.
func (r *Rejection) Error() string {
	if r.Reason == "" {
		return string(r.Code)
	}
	return fmt.Sprintf("%s: %s", r.Code, r.Reason)
}

// Is matches any *Rejection with the same Code, so callers can compare
// against the package sentinels regardless of Reason.
func (r *Rejection) Is(target error) bool {
	var t *Rejection
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == r.Code
}

// Sentinels for errors.Is comparisons.
var (
	ErrAlreadyRunning         = &Rejection{Code: AlreadyRunning}
	ErrNoActiveAction         = &Rejection{Code: NoActiveAction}
	ErrLevelTooLow            = &Rejection{Code: LevelTooLow}
	ErrMissingInputs          = &Rejection{Code: MissingInputs}
	ErrInvalidSkillDefinition = &Rejection{Code: InvalidSkillDefinition}
	ErrUnknownEntity          = &Rejection{Code: UnknownEntity}
	ErrInsufficientStamina    = &Rejection{Code: InsufficientStamina}
	ErrInvalidTarget          = &Rejection{Code: InvalidTarget}
	ErrIncapacitated          = &Rejection{Code: Incapacitated}
)

// New creates a Rejection with a formatted reason.
func New(code Code, format string, args ...any) *Rejection {
	return &Rejection{Code: code, Reason: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the rejection code from err, or "" when err is not a Rejection.
func CodeOf(err error) Code {
	var r *Rejection
	if errors.As(err, &r) {
		return r.Code
	}
	return ""
}
