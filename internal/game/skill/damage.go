package skill

import (
	"math"

	"github.com/cory-johannsen/grindstone/internal/game/stats"
)

// DamageReport summarises the direct damage of one cast.
type DamageReport struct {
	DamagePerHit      int     `json:"damage_per_hit"`
	TotalDamage       int     `json:"total_damage"`
	DamagePerTurn     float64 `json:"damage_per_turn"`
	DamagePerResource float64 `json:"damage_per_resource"`
}

// ResolveDamage computes the direct damage figures of def for attacker.
//
// A nil BasePower deals no direct damage; a nil ScalingStat ignores
// ScalingRatio. Zero stamina cost or cooldown never divides by zero.
//
// Postcondition: DamagePerHit >= 0; TotalDamage == DamagePerHit * Hits.
func ResolveDamage(def *Definition, attacker stats.AggregatedStats) DamageReport {
	var perHit int
	if def.BasePower != nil {
		raw := float64(*def.BasePower) + float64(def.FlatBonus)
		if def.ScalingStat != nil {
			raw += float64(attacker.Get(*def.ScalingStat)) * def.ScalingRatio
		}
		perHit = max(0, int(math.Floor(raw)))
	}
	hits := max(1, def.Hits)
	total := perHit * hits
	return DamageReport{
		DamagePerHit:      perHit,
		TotalDamage:       total,
		DamagePerTurn:     float64(total) / float64(max(1, def.CooldownTurns+1)),
		DamagePerResource: float64(total) / float64(max(1, def.StaminaCost)),
	}
}
