// Package bench times the generator variants from package random.
package bench

import (
	"errors"
	"fmt"

	"github.com/zxfonline/structperf/random"
)

var ErrUnknownVariant = errors.New("unknown variant")

// Variant is one way of calling a generator. Init prepares it and Call
// produces one value.
type Variant struct {
	Name string
	Init func()
	Call func() uint64
}

// Variants returns every variant in report order. A zero seed keeps the
// default seeds.
func Variants(seed uint64) []Variant {
	var (
		lcg *random.LCGStruct
		xs  *random.XoshiroStruct
	)
	return []Variant{
		{
			Name: "lcg_static",
			Init: func() {
				if seed == 0 {
					random.LCGStaticInit()
				} else {
					random.LCGStaticInitWithSeed(seed)
				}
			},
			Call: random.LCGStaticDoSomething,
		},
		{
			Name: "lcg_static_lazy",
			Init: func() {
				if seed == 0 {
					random.LCGStaticLazyInit()
				} else {
					random.LCGStaticLazyInitWithSeed(seed)
				}
			},
			Call: random.LCGStaticLazyDoSomething,
		},
		{
			Name: "lcg_struct",
			Init: func() {
				if seed == 0 {
					lcg = random.NewLCGStruct()
				} else {
					lcg = random.NewLCGStructSeed(seed)
				}
			},
			Call: func() uint64 { return lcg.DoSomething() },
		},
		{
			Name: "xoshiro_static",
			Init: func() {
				if seed == 0 {
					random.XoshiroStaticInit()
				} else {
					random.XoshiroStaticInitWithSeed(seed)
				}
			},
			Call: random.XoshiroStaticDoSomething,
		},
		{
			Name: "xoshiro_static_lazy",
			Init: func() {
				if seed == 0 {
					random.XoshiroStaticLazyInit()
				} else {
					random.XoshiroStaticLazyInitWithSeed(seed)
				}
			},
			Call: random.XoshiroStaticLazyDoSomething,
		},
		{
			Name: "xoshiro_struct",
			Init: func() {
				if seed == 0 {
					xs = random.NewXoshiroStruct()
				} else {
					xs = random.NewXoshiroStructSeed(seed)
				}
			},
			Call: func() uint64 { return xs.DoSomething() },
		},
	}
}

func Names() []string {
	vs := Variants(0)
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = v.Name
	}
	return names
}

func Lookup(name string, seed uint64) (Variant, error) {
	for _, v := range Variants(seed) {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%w: %s", ErrUnknownVariant, name)
}
