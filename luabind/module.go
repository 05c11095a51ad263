// Package luabind exposes the generators to Lua scripts as the struct_perf
// module, so call overhead can be measured from the other side of a
// language boundary.
//
// Lua numbers are float64 and cannot carry a full 64-bit output, so every
// do_something call returns random.Bit of the value (0 or 1).
package luabind

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/zxfonline/structperf/random"
)

const (
	ModuleName = "struct_perf"

	lcgStructTypeName     = "LCGStruct"
	xoshiroStructTypeName = "XoshiroStruct"
)

// exports builds the module table functions. A zero seed keeps the
// default seeds; any other seed goes to the WithSeed init functions and
// the struct constructors.
func exports(seed uint64) map[string]lua.LGFunction {
	lcgInit, lcgLazyInit := random.LCGStaticInit, random.LCGStaticLazyInit
	xsInit, xsLazyInit := random.XoshiroStaticInit, random.XoshiroStaticLazyInit
	newLCG, newXoshiro := random.NewLCGStruct, random.NewXoshiroStruct
	if seed != 0 {
		lcgInit = func() { random.LCGStaticInitWithSeed(seed) }
		lcgLazyInit = func() { random.LCGStaticLazyInitWithSeed(seed) }
		xsInit = func() { random.XoshiroStaticInitWithSeed(seed) }
		xsLazyInit = func() { random.XoshiroStaticLazyInitWithSeed(seed) }
		newLCG = func() *random.LCGStruct { return random.NewLCGStructSeed(seed) }
		newXoshiro = func() *random.XoshiroStruct { return random.NewXoshiroStructSeed(seed) }
	}
	return map[string]lua.LGFunction{
		"lcg_static_init":                  initFunc(lcgInit),
		"lcg_static_do_something":          eagerCall(random.LCGStaticDoSomething),
		"lcg_static_lazy_init":             initFunc(lcgLazyInit),
		"lcg_static_lazy_do_something":     call(random.LCGStaticLazyDoSomething),
		"xoshiro_static_init":              initFunc(xsInit),
		"xoshiro_static_do_something":      eagerCall(random.XoshiroStaticDoSomething),
		"xoshiro_static_lazy_init":         initFunc(xsLazyInit),
		"xoshiro_static_lazy_do_something": call(random.XoshiroStaticLazyDoSomething),
		lcgStructTypeName:                  newUserData(lcgStructTypeName, func() interface{} { return newLCG() }),
		xoshiroStructTypeName:              newUserData(xoshiroStructTypeName, func() interface{} { return newXoshiro() }),
	}
}

// Preload registers struct_perf so scripts can require it. A zero seed
// keeps the default seeds.
func Preload(L *lua.LState, seed uint64) {
	fns := exports(seed)
	L.PreloadModule(ModuleName, func(L *lua.LState) int {
		registerType(L, lcgStructTypeName, lcgDoSomething)
		registerType(L, xoshiroStructTypeName, xoshiroDoSomething)
		L.Push(L.SetFuncs(L.NewTable(), fns))
		return 1
	})
}

func registerType(L *lua.LState, name string, doSomething lua.LGFunction) {
	mt := L.NewTypeMetatable(name)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"do_something": doSomething,
	}))
	L.SetField(mt, "__tostring", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LString(name))
		return 1
	}))
}

func initFunc(f func()) lua.LGFunction {
	return func(L *lua.LState) int {
		f()
		return 0
	}
}

func call(f func() uint64) lua.LGFunction {
	return func(L *lua.LState) int {
		L.Push(lua.LNumber(random.Bit(f())))
		return 1
	}
}

// eagerCall turns the not-initialized panic into a Lua error.
func eagerCall(f func() uint64) lua.LGFunction {
	return func(L *lua.LState) int {
		v, err := protect(f)
		if err != nil {
			L.RaiseError("%v", err)
			return 0
		}
		L.Push(lua.LNumber(random.Bit(v)))
		return 1
	}
}

func protect(f func() uint64) (v uint64, err error) {
	defer func() {
		if x := recover(); x != nil {
			err = fmt.Errorf("%v", x)
		}
	}()
	return f(), nil
}

func newUserData(typeName string, newValue func() interface{}) lua.LGFunction {
	return func(L *lua.LState) int {
		ud := L.NewUserData()
		ud.Value = newValue()
		L.SetMetatable(ud, L.GetTypeMetatable(typeName))
		L.Push(ud)
		return 1
	}
}

func lcgDoSomething(L *lua.LState) int {
	s, ok := L.CheckUserData(1).Value.(*random.LCGStruct)
	if !ok {
		L.ArgError(1, lcgStructTypeName+" expected")
		return 0
	}
	L.Push(lua.LNumber(random.Bit(s.DoSomething())))
	return 1
}

func xoshiroDoSomething(L *lua.LState) int {
	s, ok := L.CheckUserData(1).Value.(*random.XoshiroStruct)
	if !ok {
		L.ArgError(1, xoshiroStructTypeName+" expected")
		return 0
	}
	L.Push(lua.LNumber(random.Bit(s.DoSomething())))
	return 1
}
