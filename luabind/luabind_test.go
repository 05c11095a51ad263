package luabind

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"

	"github.com/zxfonline/structperf/random"
)

func bits(t *testing.T, L *lua.LState, name string) []uint64 {
	tbl, ok := L.GetGlobal(name).(*lua.LTable)
	require.True(t, ok, "global %s is not a table", name)
	out := make([]uint64, 0, tbl.Len())
	for i := 1; i <= tbl.Len(); i++ {
		n, ok := tbl.RawGetInt(i).(lua.LNumber)
		require.True(t, ok)
		out = append(out, uint64(n))
	}
	return out
}

func goBits(src random.Source, n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = random.Bit(src.NextRand())
	}
	return out
}

func newState(t *testing.T) *lua.LState {
	L, err := NewState(0, map[string]interface{}{"iterations": 64})
	require.NoError(t, err)
	return L
}

func TestModule_Statics(t *testing.T) {
	L := newState(t)
	defer L.Close()

	require.NoError(t, L.DoString(`
local sp = require("struct_perf")
sp.lcg_static_init()
sp.lcg_static_lazy_init()
sp.xoshiro_static_init()
sp.xoshiro_static_lazy_init()
eager, lazy, xeager, xlazy = {}, {}, {}, {}
for i = 1, iterations do
  eager[i] = sp.lcg_static_do_something()
  lazy[i] = sp.lcg_static_lazy_do_something()
  xeager[i] = sp.xoshiro_static_do_something()
  xlazy[i] = sp.xoshiro_static_lazy_do_something()
end
`))
	lcg := goBits(random.NewLCGRand(random.DefaultLCGSeed), 64)
	xs := goBits(random.NewXoshiroRandState(random.DefaultXoshiroState), 64)
	assert.Equal(t, lcg, bits(t, L, "eager"))
	assert.Equal(t, lcg, bits(t, L, "lazy"))
	assert.Equal(t, xs, bits(t, L, "xeager"))
	assert.Equal(t, xs, bits(t, L, "xlazy"))
	assert.Equal(t, []uint64{0, 1, 0, 1, 1}, lcg[:5])
}

func TestModule_Structs(t *testing.T) {
	L := newState(t)
	defer L.Close()

	require.NoError(t, L.DoString(`
local sp = require("struct_perf")
local a, b = sp.LCGStruct(), sp.LCGStruct()
local x = sp.XoshiroStruct()
for i = 1, 10 do a:do_something() end
first, xs = {}, {}
first[1] = b:do_something()
for i = 1, 5 do xs[i] = x:do_something() end
name = tostring(x)
`))
	assert.Equal(t, []uint64{0}, bits(t, L, "first"))
	assert.Equal(t, []uint64{1, 1, 0, 1, 1}, bits(t, L, "xs"))
	assert.Equal(t, lua.LString("XoshiroStruct"), L.GetGlobal("name"))
}

func TestModule_Seed(t *testing.T) {
	L, err := NewState(42, nil)
	require.NoError(t, err)
	defer L.Close()

	require.NoError(t, L.DoString(`
local sp = require("struct_perf")
sp.lcg_static_init()
sp.lcg_static_lazy_init()
sp.xoshiro_static_init()
sp.xoshiro_static_lazy_init()
local a, x = sp.LCGStruct(), sp.XoshiroStruct()
eager, lazy, inst, xeager, xlazy, xinst = {}, {}, {}, {}, {}, {}
for i = 1, 32 do
  eager[i] = sp.lcg_static_do_something()
  lazy[i] = sp.lcg_static_lazy_do_something()
  inst[i] = a:do_something()
  xeager[i] = sp.xoshiro_static_do_something()
  xlazy[i] = sp.xoshiro_static_lazy_do_something()
  xinst[i] = x:do_something()
end
`))
	lcg := goBits(random.NewLCGRand(42), 32)
	xs := goBits(random.NewXoshiroRand(42), 32)
	assert.Equal(t, uint64(1), lcg[0])
	assert.NotEqual(t, goBits(random.NewLCGRand(random.DefaultLCGSeed), 32), lcg)
	assert.Equal(t, lcg, bits(t, L, "eager"))
	assert.Equal(t, lcg, bits(t, L, "lazy"))
	assert.Equal(t, lcg, bits(t, L, "inst"))
	assert.Equal(t, xs, bits(t, L, "xeager"))
	assert.Equal(t, xs, bits(t, L, "xlazy"))
	assert.Equal(t, xs, bits(t, L, "xinst"))
}

func TestModule_WrongReceiver(t *testing.T) {
	L := newState(t)
	defer L.Close()
	err := L.DoString(`
local sp = require("struct_perf")
local x = sp.XoshiroStruct()
local a = sp.LCGStruct()
a.do_something(x)
`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "LCGStruct expected")
}

func TestNewState_Globals(t *testing.T) {
	L := newState(t)
	defer L.Close()

	require.NoError(t, L.DoString(`
local json = require("json")
encoded = json.encode({n = iterations})
t0 = clock()
Logf("lua says %v", iterations)
`))
	assert.Equal(t, lua.LString(`{"n":64}`), L.GetGlobal("encoded"))
	_, ok := L.GetGlobal("t0").(lua.LNumber)
	assert.True(t, ok)
}

func TestRunFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "luabind")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	fname := filepath.Join(dir, "ok.lua")
	require.NoError(t, ioutil.WriteFile(fname, []byte(`local sp = require("struct_perf") sp.lcg_static_lazy_init()`), 0644))
	assert.NoError(t, RunFile(fname, 0, nil))

	assert.Error(t, RunFile(filepath.Join(dir, "missing.lua"), 0, nil))
	assert.Error(t, RunString(`error("boom")`, 0, nil))
	assert.NoError(t, RunString(`local n = iterations + 1`, 0, map[string]interface{}{"iterations": 1}))
}

func TestProtect(t *testing.T) {
	_, err := protect(func() uint64 { panic(random.ErrNotInitialized) })
	assert.EqualError(t, err, random.ErrNotInitialized.Error())

	v, err := protect(func() uint64 { return 7 })
	assert.NoError(t, err)
	assert.Equal(t, uint64(7), v)
}
