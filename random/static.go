package random

// Eagerly initialized package-level generators. The init functions seed
// immediately and may be called again to start the sequence over; the
// DoSomething functions panic with ErrNotInitialized if no init ran.

var (
	_lcgStatic struct {
		state int32
		rng   LCGRand
	}
	_xoshiroStatic struct {
		state int32
		rng   XoshiroRand
	}
)

func LCGStaticInit() {
	LCGStaticInitWithSeed(DefaultLCGSeed)
}

func LCGStaticInitWithSeed(seed uint64) {
	_lcgStatic.rng.SeedUint64(seed)
	_lcgStatic.state = stateInitialized
}

func LCGStaticDoSomething() uint64 {
	if _lcgStatic.state != stateInitialized {
		panic(ErrNotInitialized)
	}
	return _lcgStatic.rng.NextRand()
}

func XoshiroStaticInit() {
	_xoshiroStatic.rng.SeedState(DefaultXoshiroState)
	_xoshiroStatic.state = stateInitialized
}

func XoshiroStaticInitWithSeed(seed uint64) {
	_xoshiroStatic.rng.SeedUint64(seed)
	_xoshiroStatic.state = stateInitialized
}

func XoshiroStaticDoSomething() uint64 {
	if _xoshiroStatic.state != stateInitialized {
		panic(ErrNotInitialized)
	}
	return _xoshiroStatic.rng.NextRand()
}
