// Package progression converts cumulative experience into levels.
//
// A single Curve is shared by job and skill progression so that the same
// total XP always yields the same level regardless of the caller.
package progression

import (
	"fmt"
	"sort"
)

// Curve maps cumulative experience to levels.
//
// Implementations must be pure and monotonic: a higher totalXP never yields
// a lower level.
type Curve interface {
	// MaxLevel is the highest attainable level (>= 2).
	MaxLevel() int
	// LevelFor returns the level reached with totalXP. Negative XP counts as 0.
	LevelFor(totalXP int64) int
	// Window returns the XP span of level. When isMax is true there is no
	// further level and next == start.
	//
	// Precondition: 1 <= level <= MaxLevel().
	Window(level int) (start, next int64, isMax bool)
}

// TableCurve is a Curve backed by a strictly increasing threshold table.
type TableCurve struct {
	// starts[i] is the cumulative XP at which level i+1 begins; starts[0] == 0.
	starts []int64
}

// NewTableCurve builds a curve from per-level start thresholds.
//
// Precondition: len(starts) >= 2, starts[0] == 0, strictly increasing.
// Postcondition: Returns a curve with MaxLevel() == len(starts), or an error.
func NewTableCurve(starts []int64) (*TableCurve, error) {
	if len(starts) < 2 {
		return nil, fmt.Errorf("progression: curve needs at least 2 levels, got %d", len(starts))
	}
	if starts[0] != 0 {
		return nil, fmt.Errorf("progression: level 1 must start at 0 xp, got %d", starts[0])
	}
	for i := 1; i < len(starts); i++ {
		if starts[i] <= starts[i-1] {
			return nil, fmt.Errorf("progression: level %d starts at %d, not above level %d (%d)",
				i+1, starts[i], i, starts[i-1])
		}
	}
	cp := make([]int64, len(starts))
	copy(cp, starts)
	return &TableCurve{starts: cp}, nil
}

// NewDefaultCurve returns the stock curve: level L starts at 50·(L-1)·L xp.
//
// Precondition: maxLevel >= 2.
func NewDefaultCurve(maxLevel int) *TableCurve {
	if maxLevel < 2 {
		panic("progression: NewDefaultCurve requires maxLevel >= 2")
	}
	starts := make([]int64, maxLevel)
	for l := 1; l <= maxLevel; l++ {
		starts[l-1] = 50 * int64(l-1) * int64(l)
	}
	c, err := NewTableCurve(starts)
	if err != nil {
		panic(err)
	}
	return c
}

// MaxLevel implements Curve.
func (c *TableCurve) MaxLevel() int {
	return len(c.starts)
}

// LevelFor implements Curve.
func (c *TableCurve) LevelFor(totalXP int64) int {
	if totalXP < 0 {
		totalXP = 0
	}
	// first index whose start exceeds totalXP; the level is that index.
	return sort.Search(len(c.starts), func(i int) bool { return c.starts[i] > totalXP })
}

// LevelStart returns the cumulative XP at which level begins.
//
// Precondition: 1 <= level <= MaxLevel().
func (c *TableCurve) LevelStart(level int) int64 {
	if level < 1 || level > len(c.starts) {
		panic(fmt.Sprintf("progression: LevelStart(%d) outside [1, %d]", level, len(c.starts)))
	}
	return c.starts[level-1]
}

// Window implements Curve.
func (c *TableCurve) Window(level int) (start, next int64, isMax bool) {
	start = c.LevelStart(level)
	if level == len(c.starts) {
		return start, start, true
	}
	return start, c.starts[level], false
}

// Progress is the derived view of a progression track.
type Progress struct {
	Level      int   `json:"level"`
	TotalXP    int64 `json:"total_xp"`
	XPInLevel  int64 `json:"xp_in_level"`
	XPToNext   int64 `json:"xp_to_next"`
	IsMaxLevel bool  `json:"is_max_level"`
}

// Fraction returns progress through the current level in [0, 1]; 1 at max level.
func (p Progress) Fraction() float64 {
	if p.IsMaxLevel {
		return 1
	}
	span := p.XPInLevel + p.XPToNext
	if span <= 0 {
		return 0
	}
	return float64(p.XPInLevel) / float64(span)
}

// Describe derives a Progress from totalXP.
//
// Postcondition: XPToNext >= 0; XPToNext == 0 iff IsMaxLevel.
func Describe(c Curve, totalXP int64) Progress {
	if totalXP < 0 {
		totalXP = 0
	}
	level := c.LevelFor(totalXP)
	start, next, isMax := c.Window(level)
	p := Progress{
		Level:      level,
		TotalXP:    totalXP,
		XPInLevel:  totalXP - start,
		IsMaxLevel: isMax,
	}
	if !isMax {
		p.XPToNext = next - totalXP
	}
	return p
}
