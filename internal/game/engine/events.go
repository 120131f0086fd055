package engine

import (
	"context"
	"time"

	"github.com/cory-johannsen/grindstone/internal/game/action"
	"github.com/cory-johannsen/grindstone/internal/game/regen"
)

// EventType names a pushed engine event.
type EventType string

const (
	EventActionCompleted EventType = "action_completed"
	EventActionCancelled EventType = "action_cancelled"
	// EventPoolSync tells clients to resynchronise their regen display.
	EventPoolSync EventType = "pool_sync"
)

// Event is an authoritative change pushed to a player's clients.
type Event struct {
	Type       EventType            `json:"type"`
	PlayerID   int64                `json:"player_id"`
	At         time.Time            `json:"at"`
	Completion *action.Completion   `json:"completion,omitempty"`
	Cancelled  *action.ActiveAction `json:"cancelled,omitempty"`
	Pool       *regen.PoolState     `json:"pool,omitempty"`
}

// Publisher delivers events to connected clients. Publish must not block on
// slow clients.
type Publisher interface {
	Publish(ctx context.Context, ev Event)
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, Event) {}
