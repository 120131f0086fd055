package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/grindstone/internal/game/stats"
)

func TestAggregate_NoEquipment(t *testing.T) {
	got := stats.Aggregate(stats.CharacterStats{Vitality: 10, Strength: 10}, nil)
	assert.Equal(t, 100, got.MaxHP)
	assert.Equal(t, 40, got.MaxSP)
	assert.Equal(t, 10, got.Strength)
}

func TestAggregate_VitalityAndHPBonus(t *testing.T) {
	base := stats.CharacterStats{Vitality: 10, Strength: 10}
	ring := stats.EquipmentBonus{VitalityBonus: stats.Int(2), HPBonus: stats.Int(10)}

	got := stats.Aggregate(base, []stats.EquipmentBonus{ring})

	// (10+2)*5 + 50 + 10
	assert.Equal(t, 120, got.MaxHP)
	assert.Equal(t, 12, got.Vitality)
	// 20 + 12*2 + 0
	assert.Equal(t, 44, got.MaxSP)
}

func TestAggregate_NilAndZeroCollapse(t *testing.T) {
	base := stats.CharacterStats{Vitality: 3, Speed: 4}
	withNil := stats.Aggregate(base, []stats.EquipmentBonus{{}})
	withZero := stats.Aggregate(base, []stats.EquipmentBonus{{
		VitalityBonus: stats.Int(0), StrengthBonus: stats.Int(0), SpeedBonus: stats.Int(0),
		DexterityBonus: stats.Int(0), HPBonus: stats.Int(0), SPBonus: stats.Int(0),
	}})
	assert.Equal(t, withNil, withZero)
	assert.Equal(t, stats.Aggregate(base, nil), withNil)
}

func TestAggregate_NegativeBonusAccepted(t *testing.T) {
	got := stats.Aggregate(stats.CharacterStats{Speed: 5}, []stats.EquipmentBonus{{SpeedBonus: stats.Int(-3), SPBonus: stats.Int(-1)}})
	assert.Equal(t, 2, got.Speed)
	assert.Equal(t, 20+2-1, got.MaxSP)
}

func TestAggregatedStats_Get(t *testing.T) {
	s := stats.AggregatedStats{Vitality: 1, Strength: 2, Speed: 3, Dexterity: 4}
	assert.Equal(t, 1, s.Get(stats.Vitality))
	assert.Equal(t, 2, s.Get(stats.Strength))
	assert.Equal(t, 3, s.Get(stats.Speed))
	assert.Equal(t, 4, s.Get(stats.Dexterity))
	assert.Equal(t, 0, s.Get("LUCK"))
}

func TestParseAttribute(t *testing.T) {
	a, err := stats.ParseAttribute(" strength ")
	require.NoError(t, err)
	assert.Equal(t, stats.Strength, a)
	_, err = stats.ParseAttribute("luck")
	assert.Error(t, err)
}

func TestAttribute_YAML(t *testing.T) {
	var out struct {
		Stat stats.Attribute `yaml:"stat"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("stat: dexterity\n"), &out))
	assert.Equal(t, stats.Dexterity, out.Stat)
	assert.Error(t, yaml.Unmarshal([]byte("stat: charm\n"), &out))
}

func TestAggregate_Property_SumOfParts(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		base := stats.CharacterStats{
			Vitality:  rapid.IntRange(0, 100).Draw(rt, "vit"),
			Strength:  rapid.IntRange(0, 100).Draw(rt, "str"),
			Speed:     rapid.IntRange(0, 100).Draw(rt, "spd"),
			Dexterity: rapid.IntRange(0, 100).Draw(rt, "dex"),
		}
		n := rapid.IntRange(0, 5).Draw(rt, "items")
		var items []stats.EquipmentBonus
		vit, spd, hp, sp := 0, 0, 0, 0
		for i := 0; i < n; i++ {
			v := rapid.IntRange(-5, 5).Draw(rt, "v")
			s := rapid.IntRange(-5, 5).Draw(rt, "s")
			h := rapid.IntRange(0, 50).Draw(rt, "h")
			p := rapid.IntRange(0, 50).Draw(rt, "p")
			vit, spd, hp, sp = vit+v, spd+s, hp+h, sp+p
			items = append(items, stats.EquipmentBonus{VitalityBonus: &v, SpeedBonus: &s, HPBonus: &h, SPBonus: &p})
		}
		got := stats.Aggregate(base, items)
		assert.Equal(rt, 50+(base.Vitality+vit)*5+hp, got.MaxHP)
		assert.Equal(rt, 20+(base.Vitality+vit)*2+(base.Speed+spd)+sp, got.MaxSP)
	})
}
