package vmath

import (
	"math"
	"math/bits"
	"time"
)

// Q32.32 fixed point constants
const (
	Shift  = 32
	Scale  = 1 << Shift
	Mask   = Scale - 1
	Half   = 1 << (Shift - 1)
	ScaleF = float64(Scale)
)

// Rotation units: Scale = one full rotation (2π)
const (
	HalfTurn    = Scale / 2 // π
	QuarterTurn = Scale / 4 // π/2
	EighthTurn  = Scale / 8 // π/4
)

// --- Conversions ---

func FromInt(i int) int64       { return int64(i) << Shift }
func ToInt(f int64) int         { return int(f >> Shift) }
func FromFloat(f float64) int64 { return int64(f * ScaleF) }
func ToFloat(f int64) float64   { return float64(f) / ScaleF }

// FromDuration converts a wall-clock delta to Q32.32 seconds
func FromDuration(d time.Duration) int64 {
	return FromFloat(d.Seconds())
}

// --- Arithmetic ---

// Mul multiplies two Q32.32 values with a 128-bit intermediate
func Mul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}

	hi, lo := bits.Mul64(ua, ub)
	// Q32.32 * Q32.32 = Q64.64, shift right 32 for Q32.32
	result := int64((hi << 32) | (lo >> 32))

	if negative {
		return -result
	}
	return result
}

// Div divides two Q32.32 values, saturating on overflow, zero-safe
func Div(a, b int64) int64 {
	if b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}

	// a << 32 as 128-bit: hi = a >> 32, lo = a << 32
	hi := ua >> 32
	lo := ua << 32

	// Quotient will not fit in 64 bits
	if hi >= ub {
		if negative {
			return math.MinInt64
		}
		return math.MaxInt64
	}

	quo, _ := bits.Div64(hi, lo, ub)
	if quo > math.MaxInt64 {
		if negative {
			return math.MinInt64
		}
		return math.MaxInt64
	}

	if negative {
		return -int64(quo)
	}
	return int64(quo)
}

// Abs returns absolute value
func Abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits x to the inclusive range [lo, hi]
func Clamp(x, lo, hi int64) int64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// --- Randomness ---

// FastRand is a xorshift64 generator, deterministic per seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Unit returns a uniform Q32.32 value in [0, Scale)
func (r *FastRand) Unit() int64 {
	return int64(r.Next() & Mask)
}
