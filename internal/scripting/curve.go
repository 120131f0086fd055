package scripting

import (
	"fmt"
	"math"
	"os"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/grindstone/internal/game/progression"
)

// CurveFunction is the Lua global a curve script must define. It receives a
// level in [1, max_level] and returns the cumulative XP at which that level
// begins.
const CurveFunction = "xp_for_level"

// LoadCurve evaluates the curve script at path and freezes its thresholds into
// a table curve.
//
// Precondition: maxLevel >= 2.
// Postcondition: Returns a validated curve or an error naming the first bad level.
func LoadCurve(path string, maxLevel, instLimit int, logger *zap.Logger) (*progression.TableCurve, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scripting: reading curve script %q: %w", path, err)
	}
	c, err := EvalCurve(string(src), maxLevel, instLimit)
	if err != nil {
		return nil, fmt.Errorf("scripting: %q: %w", path, err)
	}
	logger.Info("xp curve loaded",
		zap.String("script", path),
		zap.Int("max_level", maxLevel),
		zap.Int64("max_level_xp", c.LevelStart(maxLevel)),
	)
	return c, nil
}

// EvalCurve runs source in a fresh sandbox and calls xp_for_level for every
// level in [1, maxLevel].
//
// Precondition: maxLevel >= 2.
// Postcondition: The returned curve starts at 0 and is strictly increasing.
func EvalCurve(source string, maxLevel, instLimit int) (*progression.TableCurve, error) {
	if maxLevel < 2 {
		return nil, fmt.Errorf("max level must be >= 2, got %d", maxLevel)
	}
	L, cancel := NewSandboxedState(instLimit)
	defer L.Close()
	defer cancel()

	registerCurveModule(L, maxLevel)
	if err := L.DoString(source); err != nil {
		return nil, fmt.Errorf("evaluating curve script: %w", err)
	}
	fn, ok := L.GetGlobal(CurveFunction).(*lua.LFunction)
	if !ok {
		return nil, fmt.Errorf("curve script does not define function %s", CurveFunction)
	}

	starts := make([]int64, maxLevel)
	for level := 1; level <= maxLevel; level++ {
		if err := L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, lua.LNumber(level)); err != nil {
			return nil, fmt.Errorf("%s(%d): %w", CurveFunction, level, err)
		}
		ret := L.Get(-1)
		L.Pop(1)
		n, ok := ret.(lua.LNumber)
		if !ok {
			return nil, fmt.Errorf("%s(%d) returned %s, want number", CurveFunction, level, ret.Type())
		}
		xp, err := toThreshold(float64(n))
		if err != nil {
			return nil, fmt.Errorf("%s(%d): %w", CurveFunction, level, err)
		}
		starts[level-1] = xp
	}
	return progression.NewTableCurve(starts)
}

func toThreshold(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("threshold %v is not finite", f)
	}
	if f < 0 {
		return 0, fmt.Errorf("threshold %v is negative", f)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("threshold %v is not an integer", f)
	}
	if f > math.MaxInt64/2 {
		return 0, fmt.Errorf("threshold %v is out of range", f)
	}
	return int64(f), nil
}
