package condition

import "github.com/cory-johannsen/grindstone/internal/game/stats"

// StatModifier returns the net delta active buffs and debuffs apply to attr.
// Each entry contributes Magnitude * Stacks.
func StatModifier(s *ActiveSet, attr stats.Attribute) int {
	total := 0
	for _, e := range s.entries {
		if e.Stat == nil || *e.Stat != attr {
			continue
		}
		switch e.Kind {
		case KindBuff:
			total += e.Magnitude * e.Stacks
		case KindDebuff:
			total -= e.Magnitude * e.Stacks
		}
	}
	return total
}

// CanAct reports whether the target may take its turn.
func CanAct(s *ActiveSet) bool {
	return !s.HasKind(KindStun)
}

// CanUseSkills reports whether the target may cast skills.
func CanUseSkills(s *ActiveSet) bool {
	return CanAct(s) && !s.HasKind(KindSilence)
}

// IsTaunted reports whether the target's choice of victim is forced.
func IsTaunted(s *ActiveSet) bool {
	return s.HasKind(KindTaunt)
}
