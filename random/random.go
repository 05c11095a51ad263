// Package random holds the two generators measured by structperf (a 64-bit
// LCG and xoshiro256+) and the three ways they are exposed to callers:
// a package-level generator seeded eagerly by an explicit init call, a
// package-level generator seeded on first use, and a generator owned by a
// value the caller constructs.
//
// Nothing in this package takes a lock. The static generators are process
// wide and must only be driven from one goroutine at a time; sharing an
// instance between goroutines has the same restriction.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"math"
)

// ErrNotInitialized is the panic value raised when an eagerly initialized
// static generator is used before its init function ran.
var ErrNotInitialized = errors.New("random: static generator used before init")

// Source is the common surface of LCGRand and XoshiroRand.
type Source interface {
	NextRand() uint64
}

var (
	_ Source = (*LCGRand)(nil)
	_ Source = (*XoshiroRand)(nil)
)

const half = math.MaxUint64 / 2

// Bit folds a generator output to 0 (lower half of the range) or 1.
func Bit(v uint64) uint64 {
	if v <= half {
		return 0
	}
	return 1
}

// SeedFromEntropy reads a seed from the operating system CSPRNG. The
// benchmarks use fixed seeds; this is for runs that want
// non-reproducible sequences.
func SeedFromEntropy() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// splitmix64 advances *x and returns the next SplitMix64 output.
func splitmix64(x *uint64) uint64 {
	*x += 0x9e3779b97f4a7c15
	z := *x
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
