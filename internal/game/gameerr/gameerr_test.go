package gameerr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cory-johannsen/grindstone/internal/game/gameerr"
)

func TestRejection_IsMatchesCode(t *testing.T) {
	err := gameerr.New(gameerr.LevelTooLow, "requires level %d", 5)
	assert.ErrorIs(t, err, gameerr.ErrLevelTooLow)
	assert.NotErrorIs(t, err, gameerr.ErrMissingInputs)
	assert.Equal(t, "level_too_low: requires level 5", err.Error())
}

func TestRejection_IsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("starting action: %w", gameerr.New(gameerr.AlreadyRunning, "busy"))
	assert.True(t, errors.Is(err, gameerr.ErrAlreadyRunning))
	assert.Equal(t, gameerr.AlreadyRunning, gameerr.CodeOf(err))
}

func TestCodeOf_NonRejection(t *testing.T) {
	assert.Equal(t, gameerr.Code(""), gameerr.CodeOf(errors.New("boom")))
	assert.Equal(t, gameerr.Code(""), gameerr.CodeOf(nil))
}

func TestRejection_EmptyReason(t *testing.T) {
	assert.Equal(t, "no_active_action", gameerr.ErrNoActiveAction.Error())
}
