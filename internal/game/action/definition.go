// Package action is the authoritative state machine for a player's timed
// training and gathering action.
//
// A player is IDLE or RUNNING one ActiveAction. Completion is recognised from
// server time on Poll or Sweep; each elapsed window is claimed in the Store
// before rewards are granted, so a window pays out at most once.
package action

import (
	"errors"
	"fmt"
	"time"

	"github.com/cory-johannsen/grindstone/internal/game/inventory"
)

// Output is one item an attempt may yield, rolled uniformly in
// [MinQuantity, MaxQuantity] on success.
type Output struct {
	ItemID      string `yaml:"item_id" json:"item_id"`
	MinQuantity int    `yaml:"min_quantity" json:"min_quantity"`
	MaxQuantity int    `yaml:"max_quantity" json:"max_quantity"`
}

// Definition is immutable action content.
type Definition struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	// Track is "job" or the id of the skill this action trains and is gated on.
	Track             string            `yaml:"track" json:"track"`
	RequiredLevel     int               `yaml:"required_level" json:"required_level"`
	ActionTimeSeconds int               `yaml:"action_time_seconds" json:"action_time_seconds"`
	SuccessRate       float64           `yaml:"success_rate" json:"success_rate"`
	XPReward          int64             `yaml:"xp_reward" json:"xp_reward"`
	InputItems        []inventory.Stack `yaml:"input_items" json:"input_items"`
	OutputItems       []Output          `yaml:"output_items" json:"output_items"`
}

// Duration returns the length of one attempt.
func (d *Definition) Duration() time.Duration {
	return time.Duration(d.ActionTimeSeconds) * time.Second
}

// Validate checks that d satisfies its invariants.
//
// Precondition: d is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (d *Definition) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if d.Track == "" {
		errs = append(errs, errors.New("track must not be empty"))
	}
	if d.RequiredLevel < 1 {
		errs = append(errs, fmt.Errorf("required_level must be >= 1, got %d", d.RequiredLevel))
	}
	if d.ActionTimeSeconds < 1 {
		errs = append(errs, fmt.Errorf("action_time_seconds must be >= 1, got %d", d.ActionTimeSeconds))
	}
	if d.SuccessRate < 0 || d.SuccessRate > 1 {
		errs = append(errs, fmt.Errorf("success_rate must be in [0, 1], got %v", d.SuccessRate))
	}
	if d.XPReward < 0 {
		errs = append(errs, fmt.Errorf("xp_reward must be >= 0, got %d", d.XPReward))
	}
	for i, in := range d.InputItems {
		if in.ItemID == "" || in.Quantity < 1 {
			errs = append(errs, fmt.Errorf("input_items[%d] needs an item_id and quantity >= 1", i))
		}
	}
	for i, out := range d.OutputItems {
		if out.ItemID == "" {
			errs = append(errs, fmt.Errorf("output_items[%d] needs an item_id", i))
		}
		if out.MinQuantity < 0 || out.MaxQuantity < out.MinQuantity {
			errs = append(errs, fmt.Errorf("output_items[%d] needs 0 <= min_quantity <= max_quantity, got [%d, %d]",
				i, out.MinQuantity, out.MaxQuantity))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("action %q validation failed: %w", d.ID, errors.Join(errs...))
	}
	return nil
}
