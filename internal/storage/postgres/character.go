package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/grindstone/internal/game/character"
	"github.com/cory-johannsen/grindstone/internal/game/stats"
)

// ErrCharacterNotFound is returned when a character lookup yields no results.
// It matches character.ErrNotFound under errors.Is.
var ErrCharacterNotFound = fmt.Errorf("postgres: %w", character.ErrNotFound)

// ErrCharacterNameTaken is returned when creating a character with a name
// already in use. It matches character.ErrNameTaken under errors.Is.
var ErrCharacterNameTaken = fmt.Errorf("postgres: %w", character.ErrNameTaken)

// CharacterRepository provides character persistence operations.
type CharacterRepository struct {
	db *pgxpool.Pool
}

// NewCharacterRepository creates a CharacterRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewCharacterRepository(db *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{db: db}
}

const characterColumns = `id, name, vitality, strength, speed, dexterity, job_xp,
	current_hp, current_sp, hp_carry, sp_carry, pool_synced_at, in_battle, created_at, updated_at`

func scanCharacter(row pgx.Row) (*character.Character, error) {
	c := &character.Character{SkillXP: map[string]int64{}}
	err := row.Scan(
		&c.ID, &c.Name,
		&c.Stats.Vitality, &c.Stats.Strength, &c.Stats.Speed, &c.Stats.Dexterity,
		&c.JobXP,
		&c.Pool.CurrentHP, &c.Pool.CurrentSP, &c.Pool.HPCarry, &c.Pool.SPCarry,
		&c.Pool.SyncedAt, &c.Pool.InBattle,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// Create inserts a new character and returns it with ID and timestamps set.
//
// Precondition: c.Name must be non-empty.
// Postcondition: Returns the created character with ID set, or ErrCharacterNameTaken on duplicate.
func (r *CharacterRepository) Create(ctx context.Context, c *character.Character) (*character.Character, error) {
	out, err := scanCharacter(r.db.QueryRow(ctx, `
		INSERT INTO characters
			(name, vitality, strength, speed, dexterity, job_xp,
			 current_hp, current_sp, hp_carry, sp_carry, pool_synced_at, in_battle)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING `+characterColumns,
		c.Name, c.Stats.Vitality, c.Stats.Strength, c.Stats.Speed, c.Stats.Dexterity, c.JobXP,
		c.Pool.CurrentHP, c.Pool.CurrentSP, c.Pool.HPCarry, c.Pool.SPCarry, c.Pool.SyncedAt, c.Pool.InBattle,
	))
	if err != nil {
		if sqlState(err) == codeUniqueViolation {
			return nil, ErrCharacterNameTaken
		}
		return nil, fmt.Errorf("inserting character: %w", err)
	}
	for skillID, xp := range c.SkillXP {
		if xp <= 0 {
			continue
		}
		if _, err := r.AddXP(ctx, out.ID, skillID, xp); err != nil {
			return nil, err
		}
		out.SkillXP[skillID] = xp
	}
	return out, nil
}

// Get retrieves a character and its skill experience by primary key.
//
// Precondition: id must be > 0.
// Postcondition: Returns the Character or ErrCharacterNotFound.
func (r *CharacterRepository) Get(ctx context.Context, id int64) (*character.Character, error) {
	c, err := scanCharacter(r.db.QueryRow(ctx,
		`SELECT `+characterColumns+` FROM characters WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCharacterNotFound
		}
		return nil, fmt.Errorf("querying character: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT skill_id, xp FROM character_skill_xp WHERE character_id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("querying skill xp: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var skillID string
		var xp int64
		if err := rows.Scan(&skillID, &xp); err != nil {
			return nil, fmt.Errorf("scanning skill xp row: %w", err)
		}
		c.SkillXP[skillID] = xp
	}
	return c, rows.Err()
}

// AddXP atomically adds delta to track and returns the new total.
//
// Precondition: delta >= 0.
// Postcondition: Returns ErrCharacterNotFound when id does not exist.
func (r *CharacterRepository) AddXP(ctx context.Context, id int64, track string, delta int64) (int64, error) {
	if delta < 0 {
		return 0, fmt.Errorf("xp delta must be >= 0, got %d", delta)
	}
	var total int64
	var err error
	if track == character.JobTrack {
		err = r.db.QueryRow(ctx, `
			UPDATE characters SET job_xp = job_xp + $2, updated_at = NOW()
			WHERE id = $1
			RETURNING job_xp`, id, delta).Scan(&total)
	} else {
		err = r.db.QueryRow(ctx, `
			INSERT INTO character_skill_xp (character_id, skill_id, xp)
			VALUES ($1, $2, $3)
			ON CONFLICT (character_id, skill_id)
			DO UPDATE SET xp = character_skill_xp.xp + EXCLUDED.xp
			RETURNING xp`, id, track, delta).Scan(&total)
	}
	switch {
	case errors.Is(err, pgx.ErrNoRows), sqlState(err) == codeForeignKeyViolation:
		return 0, ErrCharacterNotFound
	case err != nil:
		return 0, fmt.Errorf("adding %s xp: %w", track, err)
	}
	return total, nil
}

// SavePool overwrites the authoritative pool of id.
//
// Postcondition: Returns ErrCharacterNotFound if no row was updated.
func (r *CharacterRepository) SavePool(ctx context.Context, id int64, p character.Pool) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE characters
		SET current_hp = $2, current_sp = $3, hp_carry = $4, sp_carry = $5,
		    pool_synced_at = $6, in_battle = $7, updated_at = NOW()
		WHERE id = $1`,
		id, p.CurrentHP, p.CurrentSP, p.HPCarry, p.SPCarry, p.SyncedAt, p.InBattle,
	)
	if err != nil {
		return fmt.Errorf("saving pool: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCharacterNotFound
	}
	return nil
}

// SaveStats overwrites the base attributes of id.
//
// Postcondition: Returns ErrCharacterNotFound if no row was updated.
func (r *CharacterRepository) SaveStats(ctx context.Context, id int64, s stats.CharacterStats) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE characters
		SET vitality = $2, strength = $3, speed = $4, dexterity = $5, updated_at = NOW()
		WHERE id = $1`,
		id, s.Vitality, s.Strength, s.Speed, s.Dexterity,
	)
	if err != nil {
		return fmt.Errorf("saving stats: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCharacterNotFound
	}
	return nil
}
