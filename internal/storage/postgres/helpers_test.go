package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/grindstone/internal/game/character"
	"github.com/cory-johannsen/grindstone/internal/game/stats"
	"github.com/cory-johannsen/grindstone/internal/storage/postgres"
	"github.com/cory-johannsen/grindstone/internal/testutil"
)

// Postgres stores timestamps at microsecond precision.
var epoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type repos struct {
	db         *testutil.PostgresContainer
	characters *postgres.CharacterRepository
	actions    *postgres.ActionRepository
	items      *postgres.InventoryRepository
	equipment  *postgres.EquipmentRepository
	statuses   *postgres.StatusRepository
}

func newRepos(t *testing.T) *repos {
	t.Helper()
	db := testutil.NewPostgresContainer(t)
	return &repos{
		db:         db,
		characters: postgres.NewCharacterRepository(db.RawPool),
		actions:    postgres.NewActionRepository(db.RawPool),
		items:      postgres.NewInventoryRepository(db.RawPool),
		equipment:  postgres.NewEquipmentRepository(db.RawPool),
		statuses:   postgres.NewStatusRepository(db.RawPool),
	}
}

func (r *repos) createCharacter(t *testing.T, name string) *character.Character {
	t.Helper()
	c, err := character.New(name, stats.CharacterStats{Vitality: 10, Strength: 8, Speed: 4, Dexterity: 6}, epoch)
	require.NoError(t, err)
	saved, err := r.characters.Create(context.Background(), c)
	require.NoError(t, err)
	require.NotZero(t, saved.ID)
	return saved
}
