// Package stats aggregates a character's base attributes with equipment
// bonuses into the flat stat bundle consumed by combat and regeneration.
package stats

import (
	"fmt"
	"strings"
)

// Attribute names one of the four primary attributes.
type Attribute string

const (
	Vitality  Attribute = "VITALITY"
	Strength  Attribute = "STRENGTH"
	Speed     Attribute = "SPEED"
	Dexterity Attribute = "DEXTERITY"
)

// Attributes lists every attribute in canonical order.
var Attributes = []Attribute{Vitality, Strength, Speed, Dexterity}

// ParseAttribute converts a case-insensitive name to an Attribute.
func ParseAttribute(s string) (Attribute, error) {
	a := Attribute(strings.ToUpper(strings.TrimSpace(s)))
	switch a {
	case Vitality, Strength, Speed, Dexterity:
		return a, nil
	}
	return "", fmt.Errorf("stats: unknown attribute %q", s)
}

// UnmarshalText lets YAML and JSON decoders parse attribute names.
func (a *Attribute) UnmarshalText(text []byte) error {
	parsed, err := ParseAttribute(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Derived maxima constants.
const (
	BaseHP        = 50
	HPPerVitality = 5
	BaseSP        = 20
	SPPerVitality = 2
	SPPerSpeed    = 1
)

// CharacterStats holds the base attribute values stored on the character.
type CharacterStats struct {
	Vitality  int `json:"vitality" yaml:"vitality"`
	Strength  int `json:"strength" yaml:"strength"`
	Speed     int `json:"speed" yaml:"speed"`
	Dexterity int `json:"dexterity" yaml:"dexterity"`
}

// Get returns the base value of attribute a, or 0 for an unknown attribute.
func (c CharacterStats) Get(a Attribute) int {
	switch a {
	case Vitality:
		return c.Vitality
	case Strength:
		return c.Strength
	case Speed:
		return c.Speed
	case Dexterity:
		return c.Dexterity
	}
	return 0
}

// EquipmentBonus is the stat contribution of one equipped item.
// A nil field contributes 0.
type EquipmentBonus struct {
	VitalityBonus  *int `json:"vitality_bonus,omitempty" yaml:"vitality_bonus"`
	StrengthBonus  *int `json:"strength_bonus,omitempty" yaml:"strength_bonus"`
	SpeedBonus     *int `json:"speed_bonus,omitempty" yaml:"speed_bonus"`
	DexterityBonus *int `json:"dexterity_bonus,omitempty" yaml:"dexterity_bonus"`
	HPBonus        *int `json:"hp_bonus,omitempty" yaml:"hp_bonus"`
	SPBonus        *int `json:"sp_bonus,omitempty" yaml:"sp_bonus"`
}

// Int returns a pointer to v, for building EquipmentBonus literals.
func Int(v int) *int { return &v }

func val(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// AggregatedStats is the derived, never-persisted stat bundle.
type AggregatedStats struct {
	Vitality  int `json:"vitality"`
	Strength  int `json:"strength"`
	Speed     int `json:"speed"`
	Dexterity int `json:"dexterity"`
	MaxHP     int `json:"max_hp"`
	MaxSP     int `json:"max_sp"`
}

// Get returns the aggregated value of attribute a, or 0 for an unknown attribute.
func (s AggregatedStats) Get(a Attribute) int {
	switch a {
	case Vitality:
		return s.Vitality
	case Strength:
		return s.Strength
	case Speed:
		return s.Speed
	case Dexterity:
		return s.Dexterity
	}
	return 0
}

// Aggregate sums base and every equipped bonus, then derives the pool maxima:
//
//	MaxHP = 50 + vitality*5 + Σ hpBonus
//	MaxSP = 20 + vitality*2 + speed + Σ spBonus
//
// vitality and speed are the aggregated values. Negative bonuses are accepted as-is.
//
// Postcondition: pure; the result depends only on the arguments.
func Aggregate(base CharacterStats, equipped []EquipmentBonus) AggregatedStats {
	out := AggregatedStats{
		Vitality:  base.Vitality,
		Strength:  base.Strength,
		Speed:     base.Speed,
		Dexterity: base.Dexterity,
	}
	hpBonus, spBonus := 0, 0
	for _, b := range equipped {
		out.Vitality += val(b.VitalityBonus)
		out.Strength += val(b.StrengthBonus)
		out.Speed += val(b.SpeedBonus)
		out.Dexterity += val(b.DexterityBonus)
		hpBonus += val(b.HPBonus)
		spBonus += val(b.SPBonus)
	}
	out.MaxHP = BaseHP + out.Vitality*HPPerVitality + hpBonus
	out.MaxSP = BaseSP + out.Vitality*SPPerVitality + out.Speed*SPPerSpeed + spBonus
	return out
}
