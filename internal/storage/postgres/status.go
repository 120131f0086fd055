package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/grindstone/internal/game/condition"
	"github.com/cory-johannsen/grindstone/internal/game/stats"
)

// StatusRepository stores the status entries each character carries between
// turns. It implements condition.Store.
type StatusRepository struct {
	db *pgxpool.Pool
}

// NewStatusRepository creates a StatusRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewStatusRepository(db *pgxpool.Pool) *StatusRepository {
	return &StatusRepository{db: db}
}

// Statuses implements condition.Store.
func (r *StatusRepository) Statuses(ctx context.Context, playerID int64) ([]condition.Entry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT entry_key, source, kind, stat, magnitude, stacks, max_stacks,
		       duration, remaining, tick_interval, elapsed
		FROM character_statuses
		WHERE character_id = $1
		ORDER BY position`, playerID)
	if err != nil {
		return nil, fmt.Errorf("querying statuses: %w", err)
	}
	defer rows.Close()
	out := []condition.Entry{}
	for rows.Next() {
		var e condition.Entry
		var kind string
		var stat *string
		if err := rows.Scan(&e.Key, &e.Source, &kind, &stat, &e.Magnitude, &e.Stacks, &e.MaxStacks,
			&e.Duration, &e.Remaining, &e.TickInterval, &e.Elapsed); err != nil {
			return nil, fmt.Errorf("scanning status row: %w", err)
		}
		e.Kind = condition.Kind(kind)
		if stat != nil {
			attr := stats.Attribute(*stat)
			e.Stat = &attr
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// SaveStatuses implements condition.Store, replacing the stored entries in one
// transaction.
func (r *StatusRepository) SaveStatuses(ctx context.Context, playerID int64, entries []condition.Entry) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM character_statuses WHERE character_id = $1`, playerID); err != nil {
			return fmt.Errorf("clearing statuses: %w", err)
		}
		for i, e := range entries {
			var stat *string
			if e.Stat != nil {
				s := string(*e.Stat)
				stat = &s
			}
			if _, err := tx.Exec(ctx, `
				INSERT INTO character_statuses
					(character_id, position, entry_key, source, kind, stat, magnitude, stacks,
					 max_stacks, duration, remaining, tick_interval, elapsed)
				VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
				playerID, i, e.Key, e.Source, string(e.Kind), stat, e.Magnitude, e.Stacks,
				e.MaxStacks, e.Duration, e.Remaining, e.TickInterval, e.Elapsed); err != nil {
				if sqlState(err) == codeForeignKeyViolation {
					return ErrCharacterNotFound
				}
				return fmt.Errorf("saving status %s: %w", e.Key, err)
			}
		}
		return nil
	})
}
