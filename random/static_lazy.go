package random

// Lazily initialized package-level generators. The init functions only mark
// the generator unseeded; the first DoSomething after that seeds it.

type lazyLCG struct {
	once onceFlag
	seed uint64
	rng  LCGRand
}

type lazyXoshiro struct {
	once onceFlag
	seed uint64
	// 未指定种子时使用 DefaultXoshiroState
	seeded bool
	rng    XoshiroRand
}

var (
	_lcgLazy     = newLazyLCG()
	_xoshiroLazy = newLazyXoshiro()
)

// newLazyLCG is the process-start state: unseeded, default seed.
func newLazyLCG() lazyLCG {
	return lazyLCG{seed: DefaultLCGSeed}
}

// newLazyXoshiro is the process-start state: unseeded, DefaultXoshiroState.
func newLazyXoshiro() lazyXoshiro {
	return lazyXoshiro{}
}

func seedLCGLazy() {
	_lcgLazy.rng.SeedUint64(_lcgLazy.seed)
}

func seedXoshiroLazy() {
	if _xoshiroLazy.seeded {
		_xoshiroLazy.rng.SeedUint64(_xoshiroLazy.seed)
		return
	}
	_xoshiroLazy.rng.SeedState(DefaultXoshiroState)
}

func LCGStaticLazyInit() {
	LCGStaticLazyInitWithSeed(DefaultLCGSeed)
}

// LCGStaticLazyInitWithSeed marks the generator unseeded and records the
// seed the next call will use.
func LCGStaticLazyInitWithSeed(seed uint64) {
	_lcgLazy.seed = seed
	_lcgLazy.once.Reset()
}

func LCGStaticLazyDoSomething() uint64 {
	_lcgLazy.once.Do(seedLCGLazy)
	return _lcgLazy.rng.NextRand()
}

func XoshiroStaticLazyInit() {
	_xoshiroLazy.seeded = false
	_xoshiroLazy.once.Reset()
}

func XoshiroStaticLazyInitWithSeed(seed uint64) {
	_xoshiroLazy.seed = seed
	_xoshiroLazy.seeded = true
	_xoshiroLazy.once.Reset()
}

func XoshiroStaticLazyDoSomething() uint64 {
	_xoshiroLazy.once.Do(seedXoshiroLazy)
	return _xoshiroLazy.rng.NextRand()
}
