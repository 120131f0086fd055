package scripting

import lua "github.com/yuin/gopher-lua"

// registerCurveModule installs the read-only "curve" table used by XP curve
// scripts:
//
//	curve.max_level          configured maximum level
//	curve.default(level)     the stock threshold 50*(level-1)*level
func registerCurveModule(L *lua.LState, maxLevel int) {
	mod := L.NewTable()
	L.SetField(mod, "max_level", lua.LNumber(maxLevel))
	L.SetField(mod, "default", L.NewFunction(func(L *lua.LState) int {
		level := L.CheckInt(1)
		L.Push(lua.LNumber(50 * (level - 1) * level))
		return 1
	}))
	L.SetGlobal("curve", mod)
}
