// Package condition tracks timed status entries on a combat target: damage and
// heal over time, stat modifiers, control flags and absorb shields.
package condition

// Kind identifies what a status entry does while it is active.
type Kind string

const (
	KindDOT     Kind = "DOT"
	KindHOT     Kind = "HOT"
	KindBuff    Kind = "BUFF_STAT"
	KindDebuff  Kind = "DEBUFF_STAT"
	KindStun    Kind = "STUN"
	KindSilence Kind = "SILENCE"
	KindTaunt   Kind = "TAUNT"
	KindShield  Kind = "SHIELD"
)

// Polarity classifies an entry for CLEANSE (removes negative) and DISPEL
// (removes positive).
type Polarity int

const (
	Negative Polarity = iota
	Positive
)

// Polarity returns whether k benefits or harms the target.
func (k Kind) Polarity() Polarity {
	switch k {
	case KindHOT, KindBuff, KindShield:
		return Positive
	default:
		return Negative
	}
}

// IsFlag reports whether k is a pure duration flag consumed by the turn executor.
func (k Kind) IsFlag() bool {
	return k == KindStun || k == KindSilence || k == KindTaunt
}

// IsPeriodic reports whether k applies a pool delta on tick boundaries.
func (k Kind) IsPeriodic() bool {
	return k == KindDOT || k == KindHOT
}
