package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/grindstone/internal/game/gameerr"
	"github.com/cory-johannsen/grindstone/internal/game/inventory"
)

// InventoryRepository stores item quantities per character. It implements
// action.Inventory.
type InventoryRepository struct {
	db *pgxpool.Pool
}

// NewInventoryRepository creates an InventoryRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// Quantity returns how many of itemID the player holds.
func (r *InventoryRepository) Quantity(ctx context.Context, playerID int64, itemID string) (int, error) {
	var qty int
	err := r.db.QueryRow(ctx,
		`SELECT quantity FROM character_items WHERE character_id = $1 AND item_id = $2`,
		playerID, itemID).Scan(&qty)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("querying item quantity: %w", err)
	}
	return qty, nil
}

// HasQuantity reports whether the player holds at least qty of itemID.
func (r *InventoryRepository) HasQuantity(ctx context.Context, playerID int64, itemID string, qty int) (bool, error) {
	have, err := r.Quantity(ctx, playerID, itemID)
	if err != nil {
		return false, err
	}
	return have >= qty, nil
}

// Deduct removes every stack or nothing in one transaction.
//
// Postcondition: on a MissingInputs rejection no quantity has changed.
func (r *InventoryRepository) Deduct(ctx context.Context, playerID int64, stacks []inventory.Stack) error {
	need := make(map[string]int, len(stacks))
	for _, s := range stacks {
		if s.Quantity > 0 {
			need[s.ItemID] += s.Quantity
		}
	}
	if len(need) == 0 {
		return nil
	}
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		for id, q := range need {
			tag, err := tx.Exec(ctx, `
				DELETE FROM character_items
				WHERE character_id = $1 AND item_id = $2 AND quantity = $3`,
				playerID, id, q)
			if err != nil {
				return fmt.Errorf("consuming %s: %w", id, err)
			}
			if tag.RowsAffected() == 1 {
				continue
			}
			tag, err = tx.Exec(ctx, `
				UPDATE character_items SET quantity = quantity - $3
				WHERE character_id = $1 AND item_id = $2 AND quantity > $3`,
				playerID, id, q)
			if err != nil {
				return fmt.Errorf("deducting %s: %w", id, err)
			}
			if tag.RowsAffected() == 0 {
				return gameerr.New(gameerr.MissingInputs, "need %d %s", q, id)
			}
		}
		return nil
	})
}

// Grant adds qty of itemID to the player. A non-positive qty is a no-op.
func (r *InventoryRepository) Grant(ctx context.Context, playerID int64, itemID string, qty int) error {
	if qty <= 0 {
		return nil
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO character_items (character_id, item_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (character_id, item_id)
		DO UPDATE SET quantity = character_items.quantity + EXCLUDED.quantity`,
		playerID, itemID, qty)
	if err != nil {
		if sqlState(err) == codeForeignKeyViolation {
			return ErrCharacterNotFound
		}
		return fmt.Errorf("granting %s: %w", itemID, err)
	}
	return nil
}

// Holdings returns everything the player holds.
func (r *InventoryRepository) Holdings(ctx context.Context, playerID int64) (map[string]int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT item_id, quantity FROM character_items WHERE character_id = $1`, playerID)
	if err != nil {
		return nil, fmt.Errorf("querying holdings: %w", err)
	}
	defer rows.Close()
	out := make(map[string]int)
	for rows.Next() {
		var id string
		var q int
		if err := rows.Scan(&id, &q); err != nil {
			return nil, fmt.Errorf("scanning holding row: %w", err)
		}
		out[id] = q
	}
	return out, rows.Err()
}

// EquipmentRepository stores the equipped item of each slot.
type EquipmentRepository struct {
	db *pgxpool.Pool
}

// NewEquipmentRepository creates an EquipmentRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewEquipmentRepository(db *pgxpool.Pool) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

// Equipment loads the player's equipped slots into a working copy.
func (r *EquipmentRepository) Equipment(ctx context.Context, playerID int64) (*inventory.Equipment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT slot, item_id FROM character_equipment WHERE character_id = $1`, playerID)
	if err != nil {
		return nil, fmt.Errorf("querying equipment: %w", err)
	}
	defer rows.Close()
	eq := inventory.NewEquipment()
	for rows.Next() {
		var slot, itemID string
		if err := rows.Scan(&slot, &itemID); err != nil {
			return nil, fmt.Errorf("scanning equipment row: %w", err)
		}
		eq.Set(inventory.Slot(slot), itemID)
	}
	return eq, rows.Err()
}

// SaveEquipment replaces the player's stored slots with eq in one transaction.
func (r *EquipmentRepository) SaveEquipment(ctx context.Context, playerID int64, eq *inventory.Equipment) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM character_equipment WHERE character_id = $1`, playerID); err != nil {
			return fmt.Errorf("clearing equipment: %w", err)
		}
		for slot, itemID := range eq.Snapshot() {
			if _, err := tx.Exec(ctx, `
				INSERT INTO character_equipment (character_id, slot, item_id)
				VALUES ($1, $2, $3)`, playerID, string(slot), itemID); err != nil {
				if sqlState(err) == codeForeignKeyViolation {
					return ErrCharacterNotFound
				}
				return fmt.Errorf("saving %s slot: %w", slot, err)
			}
		}
		return nil
	})
}
