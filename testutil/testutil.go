package testutil

import (
	"math"
	"math/rand"
	"strconv"
	"sync"

	"github.com/hupe1980/rvec/scalar"
	"github.com/hupe1980/rvec/vector"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// naLocked reports whether the next element should be NA (caller must hold lock).
func (r *RNG) naLocked(naRate float64) bool {
	return naRate > 0 && r.rand.Float64() < naRate
}

// Logicals generates n logical values, each NA with probability naRate.
func (r *RNG) Logicals(n int, naRate float64) []scalar.Logical {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]scalar.Logical, n)
	for i := range out {
		if r.naLocked(naRate) {
			out[i] = scalar.NALogical
			continue
		}
		out[i] = scalar.LogicalOf(r.rand.Intn(2) == 1)
	}
	return out
}

// Integers generates n integers in [-1000, 1000), each NA with probability naRate.
func (r *RNG) Integers(n int, naRate float64) []int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int32, n)
	for i := range out {
		if r.naLocked(naRate) {
			out[i] = scalar.NAInteger
			continue
		}
		out[i] = int32(r.rand.Intn(2000) - 1000)
	}
	return out
}

// Doubles generates n normally distributed doubles, each NA with probability
// naRate. Roughly one in fifty non-NA values is a plain NaN, which is not NA.
func (r *RNG) Doubles(n int, naRate float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float64, n)
	for i := range out {
		switch {
		case r.naLocked(naRate):
			out[i] = scalar.NADouble
		case r.rand.Intn(50) == 0:
			out[i] = math.NaN()
		default:
			out[i] = r.rand.NormFloat64() * 100
		}
	}
	return out
}

// Complexes generates n complex values, each NA with probability naRate.
func (r *RNG) Complexes(n int, naRate float64) []complex128 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]complex128, n)
	for i := range out {
		if r.naLocked(naRate) {
			out[i] = scalar.NAComplex
			continue
		}
		out[i] = complex(r.rand.NormFloat64(), r.rand.NormFloat64())
	}
	return out
}

// Strings generates n decimal numerals, each NA with probability naRate.
func (r *RNG) Strings(n int, naRate float64) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, n)
	for i := range out {
		if r.naLocked(naRate) {
			out[i] = scalar.NAString
			continue
		}
		out[i] = strconv.Itoa(r.rand.Intn(10000))
	}
	return out
}

// Raws generates n random bytes.
func (r *RNG) Raws(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(r.rand.Intn(256))
	}
	return out
}

// Vector generates an atomic vector of kind and length n, each element NA
// with probability naRate. The vector makes no completeness claim. Lists
// hold length-1 double vectors.
func (r *RNG) Vector(kind scalar.Kind, n int, naRate float64) *vector.Vector {
	switch kind {
	case scalar.KindRaw:
		return vector.NewRaw(r.Raws(n))
	case scalar.KindLogical:
		return vector.NewLogical(r.Logicals(n, naRate), vector.Incomplete)
	case scalar.KindInteger:
		return vector.NewInteger(r.Integers(n, naRate), vector.Incomplete)
	case scalar.KindDouble:
		return vector.NewDouble(r.Doubles(n, naRate), vector.Incomplete)
	case scalar.KindComplex:
		return vector.NewComplex(r.Complexes(n, naRate), vector.Incomplete)
	case scalar.KindCharacter:
		return vector.NewCharacter(r.Strings(n, naRate), vector.Incomplete)
	case scalar.KindList:
		elems := make([]any, n)
		for i, d := range r.Doubles(n, naRate) {
			elems[i] = vector.NewDouble([]float64{d}, vector.Incomplete)
		}
		return vector.NewList(elems)
	default:
		return nil
	}
}
