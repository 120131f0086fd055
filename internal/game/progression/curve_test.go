package progression_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/grindstone/internal/game/progression"
)

func TestDefaultCurve_Thresholds(t *testing.T) {
	c := progression.NewDefaultCurve(99)
	assert.Equal(t, 99, c.MaxLevel())
	assert.Equal(t, int64(0), c.LevelStart(1))
	assert.Equal(t, int64(100), c.LevelStart(2))
	assert.Equal(t, int64(300), c.LevelStart(3))
	assert.Equal(t, 1, c.LevelFor(0))
	assert.Equal(t, 1, c.LevelFor(99))
	assert.Equal(t, 2, c.LevelFor(100))
	assert.Equal(t, 2, c.LevelFor(299))
	assert.Equal(t, 3, c.LevelFor(300))
	assert.Equal(t, 1, c.LevelFor(-50))
}

func TestDescribe_MidLevel(t *testing.T) {
	c := progression.NewDefaultCurve(10)
	p := progression.Describe(c, 150)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, int64(50), p.XPInLevel)
	assert.Equal(t, int64(150), p.XPToNext)
	assert.False(t, p.IsMaxLevel)
	assert.InDelta(t, 0.25, p.Fraction(), 1e-9)
}

func TestDescribe_MaxLevelSentinel(t *testing.T) {
	c := progression.NewDefaultCurve(3)
	p := progression.Describe(c, 1_000_000)
	assert.Equal(t, 3, p.Level)
	assert.True(t, p.IsMaxLevel)
	assert.Equal(t, int64(0), p.XPToNext)
	assert.Equal(t, int64(1_000_000-300), p.XPInLevel)
	assert.Equal(t, 1.0, p.Fraction())
}

func TestNewTableCurve_Rejects(t *testing.T) {
	_, err := progression.NewTableCurve([]int64{0})
	assert.Error(t, err)
	_, err = progression.NewTableCurve([]int64{5, 10})
	assert.Error(t, err)
	_, err = progression.NewTableCurve([]int64{0, 10, 10})
	assert.Error(t, err)
	c, err := progression.NewTableCurve([]int64{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 3, c.LevelFor(2))
}

func TestLevelStart_PanicsOutOfRange(t *testing.T) {
	c := progression.NewDefaultCurve(5)
	assert.Panics(t, func() { c.LevelStart(0) })
	assert.Panics(t, func() { c.LevelStart(6) })
}

func TestCurve_Property_Monotonic(t *testing.T) {
	c := progression.NewDefaultCurve(99)
	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.Int64Range(0, 1_000_000).Draw(rt, "a")
		b := rapid.Int64Range(a, 1_000_000).Draw(rt, "b")
		if c.LevelFor(a) > c.LevelFor(b) {
			rt.Fatalf("LevelFor(%d)=%d > LevelFor(%d)=%d", a, c.LevelFor(a), b, c.LevelFor(b))
		}
	})
}

func TestCurve_Property_RoundTrip(t *testing.T) {
	c := progression.NewDefaultCurve(99)
	rapid.Check(t, func(rt *rapid.T) {
		xp := rapid.Int64Range(0, c.LevelStart(99)-1).Draw(rt, "xp")
		level := c.LevelFor(xp)
		require.Less(rt, level, c.MaxLevel())
		assert.LessOrEqual(rt, c.LevelStart(level), xp)
		assert.Less(rt, xp, c.LevelStart(level+1))
	})
}

func TestDescribe_Property_Consistent(t *testing.T) {
	c := progression.NewDefaultCurve(20)
	rapid.Check(t, func(rt *rapid.T) {
		xp := rapid.Int64Range(-10, 100_000).Draw(rt, "xp")
		p := progression.Describe(c, xp)
		assert.GreaterOrEqual(rt, p.XPToNext, int64(0))
		assert.GreaterOrEqual(rt, p.XPInLevel, int64(0))
		assert.Equal(rt, p.IsMaxLevel, p.XPToNext == 0)
		assert.Equal(rt, c.LevelFor(xp), p.Level)
	})
}

func TestWindow(t *testing.T) {
	c := progression.NewDefaultCurve(3)
	start, next, isMax := c.Window(2)
	assert.Equal(t, int64(100), start)
	assert.Equal(t, int64(300), next)
	assert.False(t, isMax)

	start, next, isMax = c.Window(3)
	assert.Equal(t, int64(300), start)
	assert.Equal(t, int64(300), next)
	assert.True(t, isMax)
}
