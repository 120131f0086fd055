package inventory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/grindstone/internal/game/inventory"
)

func TestItemDef_Validate(t *testing.T) {
	cases := []struct {
		name string
		def  inventory.ItemDef
		ok   bool
	}{
		{"material", inventory.ItemDef{ID: "ore", Name: "Ore", Kind: inventory.KindMaterial}, true},
		{"equipment", inventory.ItemDef{ID: "ring", Name: "Ring", Kind: inventory.KindEquipment, Slot: inventory.SlotRing}, true},
		{"empty id", inventory.ItemDef{Name: "Ore", Kind: inventory.KindMaterial}, false},
		{"bad kind", inventory.ItemDef{ID: "x", Name: "X", Kind: "junk"}, false},
		{"equipment no slot", inventory.ItemDef{ID: "x", Name: "X", Kind: inventory.KindEquipment}, false},
		{"material with slot", inventory.ItemDef{ID: "x", Name: "X", Kind: inventory.KindMaterial, Slot: inventory.SlotHead}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.def.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestLoadItems(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ring.yaml"), []byte(`
id: vigor_ring
name: Ring of Vigor
kind: equipment
slot: ring
bonus:
  vitality_bonus: 2
  hp_bonus: 10
`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ore.yml"), []byte("id: copper_ore\nname: Copper Ore\nkind: material\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))

	items, err := inventory.LoadItems(dir)
	require.NoError(t, err)
	require.Len(t, items, 2)

	reg := inventory.NewRegistry()
	for _, it := range items {
		require.NoError(t, reg.RegisterItem(it))
	}
	ring, ok := reg.Item("vigor_ring")
	require.True(t, ok)
	require.NotNil(t, ring.Bonus.VitalityBonus)
	assert.Equal(t, 2, *ring.Bonus.VitalityBonus)
	assert.Nil(t, ring.Bonus.StrengthBonus)
	assert.Equal(t, 2, reg.Len())
}

func TestLoadItems_UnknownFieldRejected(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("id: a\nname: A\nkind: material\nweight: 3\n"), 0644))
	_, err := inventory.LoadItems(dir)
	assert.Error(t, err)
}

func TestRegistry_DuplicateRejected(t *testing.T) {
	reg := inventory.NewRegistry()
	d := &inventory.ItemDef{ID: "ore", Name: "Ore", Kind: inventory.KindMaterial}
	require.NoError(t, reg.RegisterItem(d))
	assert.Error(t, reg.RegisterItem(d))
}

func TestRegistry_RejectsNilItem(t *testing.T) {
	r := inventory.NewRegistry()
	var err error
	require.NotPanics(t, func() { err = r.RegisterItem(nil) })
	assert.Error(t, err)
}
