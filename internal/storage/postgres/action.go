package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/grindstone/internal/game/action"
)

// ActionRepository implements action.Store. Every write is conditional on
// the row's attempt_id so that concurrent schedulers cannot double-claim a
// window.
type ActionRepository struct {
	db *pgxpool.Pool
}

// NewActionRepository creates an ActionRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewActionRepository(db *pgxpool.Pool) *ActionRepository {
	return &ActionRepository{db: db}
}

const actionColumns = `player_id, action_id, attempt_id, attempt, looping, max_attempts,
	started_at, expected_completion_at`

func scanAction(row pgx.Row) (action.ActiveAction, error) {
	var a action.ActiveAction
	err := row.Scan(&a.PlayerID, &a.ActionID, &a.AttemptID, &a.Attempt, &a.Loop, &a.MaxAttempts,
		&a.StartedAt, &a.ExpectedCompletionAt)
	return a, err
}

// Get implements action.Store.
func (r *ActionRepository) Get(ctx context.Context, playerID int64) (*action.ActiveAction, error) {
	a, err := scanAction(r.db.QueryRow(ctx,
		`SELECT `+actionColumns+` FROM active_actions WHERE player_id = $1`, playerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying active action: %w", err)
	}
	return &a, nil
}

// Create implements action.Store.
//
// Postcondition: Returns action.ErrExists when the player already has a row.
func (r *ActionRepository) Create(ctx context.Context, a action.ActiveAction) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO active_actions (`+actionColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		a.PlayerID, a.ActionID, a.AttemptID, a.Attempt, a.Loop, a.MaxAttempts,
		a.StartedAt, a.ExpectedCompletionAt,
	)
	if err != nil {
		if sqlState(err) == codeUniqueViolation {
			return action.ErrExists
		}
		return fmt.Errorf("inserting active action: %w", err)
	}
	return nil
}

// Advance implements action.Store.
//
// Postcondition: Returns action.ErrStale unless the stored attempt is prev.
func (r *ActionRepository) Advance(ctx context.Context, prev uuid.UUID, next action.ActiveAction) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE active_actions
		SET attempt_id = $3, attempt = $4, looping = $5, max_attempts = $6,
		    started_at = $7, expected_completion_at = $8
		WHERE player_id = $1 AND attempt_id = $2`,
		next.PlayerID, prev, next.AttemptID, next.Attempt, next.Loop, next.MaxAttempts,
		next.StartedAt, next.ExpectedCompletionAt,
	)
	if err != nil {
		return fmt.Errorf("advancing active action: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return action.ErrStale
	}
	return nil
}

// Delete implements action.Store.
//
// Postcondition: Returns action.ErrStale unless the stored attempt is attemptID.
func (r *ActionRepository) Delete(ctx context.Context, playerID int64, attemptID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM active_actions WHERE player_id = $1 AND attempt_id = $2`,
		playerID, attemptID)
	if err != nil {
		return fmt.Errorf("deleting active action: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return action.ErrStale
	}
	return nil
}

// ListDue implements action.Store. A non-positive limit returns every due row.
func (r *ActionRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]action.ActiveAction, error) {
	var lim *int
	if limit > 0 {
		lim = &limit
	}
	rows, err := r.db.Query(ctx, `
		SELECT `+actionColumns+` FROM active_actions
		WHERE expected_completion_at <= $1
		ORDER BY expected_completion_at ASC, player_id ASC
		LIMIT $2`, now, lim)
	if err != nil {
		return nil, fmt.Errorf("listing due actions: %w", err)
	}
	defer rows.Close()

	due := make([]action.ActiveAction, 0)
	for rows.Next() {
		a, err := scanAction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning active action row: %w", err)
		}
		due = append(due, a)
	}
	return due, rows.Err()
}
