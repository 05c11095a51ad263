package random

import (
	"math/bits"
	"math/rand"
)

// DefaultXoshiroSeed expands through SplitMix64 into DefaultXoshiroState.
const DefaultXoshiroSeed uint64 = 0x853c49e6748fea9b

// DefaultXoshiroState is the state used when no seed is given, and the
// substitute for an all-zero state.
var DefaultXoshiroState = [4]uint64{
	0xae54d7f999835fc4,
	0x1a7757df72acd25c,
	0x5170da2925b530a1,
	0x419c972a488a1d65,
}

var xoshiroJump = [4]uint64{
	0x180ec6d33cfd0aba,
	0xd5a61266f0c9392c,
	0xa9582618e03fc9aa,
	0x39abdc4529b1661c,
}

var _ rand.Source64 = (*XoshiroRand)(nil)

// XoshiroRand is a xoshiro256+ generator.
type XoshiroRand struct {
	seed [4]uint64
	s    [4]uint64
}

// NewXoshiroRand seeds a generator from a single 64-bit value.
func NewXoshiroRand(seed uint64) *XoshiroRand {
	x := new(XoshiroRand)
	x.SeedUint64(seed)
	return x
}

// NewXoshiroRandState seeds a generator with the given words.
func NewXoshiroRandState(state [4]uint64) *XoshiroRand {
	x := new(XoshiroRand)
	x.SeedState(state)
	return x
}

// SeedUint64 fills the four words with successive SplitMix64 outputs.
func (x *XoshiroRand) SeedUint64(seed uint64) {
	var state [4]uint64
	for i := range state {
		state[i] = splitmix64(&seed)
	}
	x.SeedState(state)
}

// SeedState sets the state directly. The all-zero state is a fixed point of
// the generator and is replaced with DefaultXoshiroState.
func (x *XoshiroRand) SeedState(state [4]uint64) {
	if state[0]|state[1]|state[2]|state[3] == 0 {
		state = DefaultXoshiroState
	}
	x.seed = state
	x.s = state
}

// Seed implements rand.Source.
func (x *XoshiroRand) Seed(seed int64) {
	x.SeedUint64(uint64(seed))
}

// State returns a copy of the current words.
func (x *XoshiroRand) State() [4]uint64 {
	return x.s
}

func (x *XoshiroRand) Reset() {
	x.s = x.seed
}

func (x *XoshiroRand) NextRand() uint64 {
	s := &x.s
	result := s[0] + s[3]
	t := s[1] << 17

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]

	s[2] ^= t
	s[3] = bits.RotateLeft64(s[3], 45)

	return result
}

// Jump advances the generator by 2^128 steps.
func (x *XoshiroRand) Jump() {
	var j [4]uint64
	for _, word := range xoshiroJump {
		for b := uint(0); b < 64; b++ {
			if word&(1<<b) != 0 {
				j[0] ^= x.s[0]
				j[1] ^= x.s[1]
				j[2] ^= x.s[2]
				j[3] ^= x.s[3]
			}
			x.NextRand()
		}
	}
	x.s = j
}

func (x *XoshiroRand) Uint64() uint64 {
	return x.NextRand()
}

func (x *XoshiroRand) Int63() int64 {
	return int64(x.NextRand() >> 1)
}

// 范围[0,n)
func (x *XoshiroRand) RandN(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	return x.NextRand() % n
}

// RandFloat64 uses the upper 53 bits; the low bits of xoshiro256+ are weak.
func (x *XoshiroRand) RandFloat64() float64 {
	return float64(x.NextRand()>>11) / (1 << 53)
}
