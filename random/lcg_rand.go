package random

import "math/rand"

// Knuth MMIX parameters, modulus 2^64 by wrapping.
const (
	LCG_A uint64 = 6364136223846793005
	LCG_C uint64 = 1442695040888963407
)

// DefaultLCGSeed is the starting state used when no seed is given.
const DefaultLCGSeed uint64 = 0x853c49e6748fea9b

var _ rand.Source64 = (*LCGRand)(nil)

// LCGRand is a 64-bit linear congruential generator. Its output is the raw
// state after each step.
type LCGRand struct {
	seed uint64
	x    uint64
}

func NewLCGRand(seed uint64) *LCGRand {
	return &LCGRand{seed: seed, x: seed}
}

// SeedUint64 sets the state register.
func (lcg *LCGRand) SeedUint64(seed uint64) {
	lcg.seed = seed
	lcg.x = seed
}

// Seed implements rand.Source.
func (lcg *LCGRand) Seed(seed int64) {
	lcg.SeedUint64(uint64(seed))
}

// Reset rewinds to the last seed.
func (lcg *LCGRand) Reset() {
	lcg.x = lcg.seed
}

func (lcg *LCGRand) NextRand() uint64 {
	lcg.x = LCG_A*lcg.x + LCG_C
	return lcg.x
}

func (lcg *LCGRand) Uint64() uint64 {
	return lcg.NextRand()
}

func (lcg *LCGRand) Int63() int64 {
	return int64(lcg.NextRand() >> 1)
}

// 范围[0,n)
func (lcg *LCGRand) RandN(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	return lcg.NextRand() % n
}

// RandFloat64 returns a value in [0,1) built from the top 53 bits.
func (lcg *LCGRand) RandFloat64() float64 {
	return float64(lcg.NextRand()>>11) / (1 << 53)
}
