package luabind

import (
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"
	luajson "layeh.com/gopher-json"
	luar "layeh.com/gopher-luar"

	"github.com/zxfonline/structperf/log"
)

var startTime = time.Now()

//LuaLogf 打印日志文件
func LuaLogf(format string, v ...interface{}) {
	log.Infof(format, v...)
}

// Clock returns seconds since process start with nanosecond resolution.
func Clock() float64 {
	return time.Since(startTime).Seconds()
}

// NewState builds a Lua state with the base libraries, the json and
// struct_perf modules, and the Clock and Logf globals. seed is handed to
// the struct_perf module (0 keeps the default seeds). Each entry of
// globals is converted with luar and set as a global.
func NewState(seed uint64, globals map[string]interface{}) (*lua.LState, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true, IncludeGoStackTrace: true})
	for _, pair := range []struct {
		n string
		f lua.LGFunction
	}{
		{lua.LoadLibName, lua.OpenPackage}, // Must be first
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
		{lua.OsLibName, lua.OpenOs},
	} {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(pair.f),
			NRet:    0,
			Protect: true,
		}, lua.LString(pair.n)); err != nil {
			L.Close()
			return nil, fmt.Errorf("open lua lib %s: %w", pair.n, err)
		}
	}
	luajson.Preload(L)
	Preload(L, seed)

	L.SetGlobal("clock", luar.New(L, Clock))
	L.SetGlobal("Logf", luar.New(L, LuaLogf))
	for k, v := range globals {
		L.SetGlobal(k, luar.New(L, v))
	}
	return L, nil
}

// RunFile executes a script in a fresh state.
func RunFile(fname string, seed uint64, globals map[string]interface{}) error {
	L, err := NewState(seed, globals)
	if err != nil {
		return err
	}
	defer L.Close()
	if err := L.DoFile(fname); err != nil {
		return fmt.Errorf("run %s: %w", fname, err)
	}
	return nil
}

// RunString executes src in a fresh state.
func RunString(src string, seed uint64, globals map[string]interface{}) error {
	L, err := NewState(seed, globals)
	if err != nil {
		return err
	}
	defer L.Close()
	return L.DoString(src)
}
