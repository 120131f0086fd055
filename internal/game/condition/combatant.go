package condition

import "github.com/cory-johannsen/grindstone/internal/game/stats"

// Combatant is the mutable combat state of one participant.
// It is not safe for concurrent use.
type Combatant struct {
	ID      string
	Base    stats.AggregatedStats
	HP      int
	SP      int
	Effects *ActiveSet
}

// NewCombatant creates a combatant at full pools with no status entries.
func NewCombatant(id string, base stats.AggregatedStats) *Combatant {
	return &Combatant{
		ID:      id,
		Base:    base,
		HP:      base.MaxHP,
		SP:      base.MaxSP,
		Effects: NewActiveSet(),
	}
}

// Stat returns attr including active buffs and debuffs, floored at 0.
func (c *Combatant) Stat(attr stats.Attribute) int {
	return max(0, c.Base.Get(attr)+StatModifier(c.Effects, attr))
}

// Effective returns the base bundle with active stat modifiers applied to the
// four attributes. Maxima are not re-derived.
func (c *Combatant) Effective() stats.AggregatedStats {
	out := c.Base
	out.Vitality = c.Stat(stats.Vitality)
	out.Strength = c.Stat(stats.Strength)
	out.Speed = c.Stat(stats.Speed)
	out.Dexterity = c.Stat(stats.Dexterity)
	return out
}

// TakeDamage routes amount through shields and then HP.
//
// Precondition: amount >= 0.
// Postcondition: 0 <= HP; absorbed + dealt <= amount.
func (c *Combatant) TakeDamage(amount int) (absorbed, dealt int) {
	if amount <= 0 {
		return 0, 0
	}
	absorbed = c.Effects.absorb(amount)
	dealt = min(amount-absorbed, c.HP)
	c.HP -= dealt
	return absorbed, dealt
}

// Heal restores up to amount HP without exceeding MaxHP.
//
// Postcondition: Returns the HP actually restored.
func (c *Combatant) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	healed := min(amount, c.Base.MaxHP-c.HP)
	if healed < 0 {
		healed = 0
	}
	c.HP += healed
	return healed
}

// Alive reports whether HP is above zero.
func (c *Combatant) Alive() bool {
	return c.HP > 0
}

// EndTurn advances this combatant's status entries by one turn.
func (c *Combatant) EndTurn() []TickEvent {
	return c.Effects.Tick(c)
}
