package random

// LCGStruct owns its generator; instances never share state.
type LCGStruct struct {
	rng LCGRand
}

func NewLCGStruct() *LCGStruct {
	return NewLCGStructSeed(DefaultLCGSeed)
}

func NewLCGStructSeed(seed uint64) *LCGStruct {
	s := new(LCGStruct)
	s.rng.SeedUint64(seed)
	return s
}

func (s *LCGStruct) DoSomething() uint64 {
	return s.rng.NextRand()
}

// XoshiroStruct owns its generator; instances never share state.
type XoshiroStruct struct {
	rng XoshiroRand
}

func NewXoshiroStruct() *XoshiroStruct {
	s := new(XoshiroStruct)
	s.rng.SeedState(DefaultXoshiroState)
	return s
}

func NewXoshiroStructSeed(seed uint64) *XoshiroStruct {
	s := new(XoshiroStruct)
	s.rng.SeedUint64(seed)
	return s
}

func (s *XoshiroStruct) DoSomething() uint64 {
	return s.rng.NextRand()
}
