// Package pack implements the numeric packing primitives shared by every
// texel format: normalized, scaled and integer fields of 1 to 64 bits,
// small floats (binary16, unsigned 11/10-bit, shared exponent) and the sRGB
// transfer function.
//
// Every pack function clamps out-of-range input. Nothing wraps and nothing
// returns an error; a NaN input packs to zero unless the target can carry it.
package pack

import "math"

// Mask returns the low n bits set. n >= 64 yields all ones.
func Mask(n uint) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<n - 1
}

// SignExtend interprets the low n bits of b as a two's complement value.
func SignExtend(b uint64, n uint) int64 {
	if n == 0 {
		return 0
	}
	if n >= 64 {
		return int64(b)
	}
	shift := 64 - n
	return int64(b<<shift) >> shift
}

// UnormMax returns 2^n - 1 as a float, the UNORM scale for n bits.
func UnormMax(n uint) float64 {
	return float64(Mask(n))
}

// SnormMax returns 2^(n-1) - 1 as a float, the SNORM scale for n bits.
func SnormMax(n uint) float64 {
	if n == 0 {
		return 0
	}
	return float64(Mask(n - 1))
}

// UnormPack returns round(clamp(v, 0, 1) * (2^n - 1)).
func UnormPack(v float64, n uint) uint64 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return Mask(n)
	}
	return uint64(math.Round(v * UnormMax(n)))
}

// UnormUnpack returns b / (2^n - 1).
func UnormUnpack(b uint64, n uint) float64 {
	if n == 0 {
		return 0
	}
	return float64(b&Mask(n)) / UnormMax(n)
}

// SnormPack returns the n-bit two's complement of
// round(clamp(v, -1, 1) * (2^(n-1) - 1)).
func SnormPack(v float64, n uint) uint64 {
	if n == 0 || v != v {
		return 0
	}
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	i := int64(math.Round(v * SnormMax(n)))
	return uint64(i) & Mask(n)
}

// SnormUnpack sign extends the low n bits of b and scales them to [-1, 1].
// The most negative code maps to -1, same as its neighbour.
func SnormUnpack(b uint64, n uint) float64 {
	if n < 2 {
		return 0
	}
	f := float64(SignExtend(b, n)) / SnormMax(n)
	if f < -1 {
		return -1
	}
	return f
}

// UscaledPack rounds v to the nearest integer in [0, 2^n - 1].
func UscaledPack(v float64, n uint) uint64 {
	if !(v > 0) {
		return 0
	}
	m := UnormMax(n)
	if v >= m {
		return Mask(n)
	}
	return uint64(math.Round(v))
}

// UscaledUnpack returns the low n bits of b as a float.
func UscaledUnpack(b uint64, n uint) float64 {
	return float64(b & Mask(n))
}

// SscaledPack rounds v to the nearest integer in [-2^(n-1), 2^(n-1) - 1]
// and returns its n-bit two's complement.
func SscaledPack(v float64, n uint) uint64 {
	if n == 0 || v != v {
		return 0
	}
	lo, hi := -SnormMax(n)-1, SnormMax(n)
	switch {
	case v <= lo:
		return uint64(SintMin(n)) & Mask(n)
	case v >= hi:
		return uint64(SintMax(n)) & Mask(n)
	}
	return uint64(int64(math.Round(v))) & Mask(n)
}

// SscaledUnpack sign extends the low n bits of b and returns them as a float.
func SscaledUnpack(b uint64, n uint) float64 {
	return float64(SignExtend(b, n))
}

// UintMax is the largest unsigned value n bits can hold.
func UintMax(n uint) uint64 { return Mask(n) }

// SintMin is the smallest signed value n bits can hold.
func SintMin(n uint) int64 {
	if n == 0 {
		return 0
	}
	if n >= 64 {
		return math.MinInt64
	}
	return -int64(1) << (n - 1)
}

// SintMax is the largest signed value n bits can hold.
func SintMax(n uint) int64 {
	if n == 0 {
		return 0
	}
	if n >= 64 {
		return math.MaxInt64
	}
	return int64(1)<<(n-1) - 1
}

// UintPack clamps v to n bits.
func UintPack(v uint64, n uint) uint64 {
	if m := Mask(n); v > m {
		return m
	}
	return v
}

// UintUnpack returns the low n bits of b.
func UintUnpack(b uint64, n uint) uint64 {
	return b & Mask(n)
}

// SintPack clamps v to the signed n-bit range and returns its two's
// complement in the low n bits.
func SintPack(v int64, n uint) uint64 {
	if lo := SintMin(n); v < lo {
		v = lo
	} else if hi := SintMax(n); v > hi {
		v = hi
	}
	return uint64(v) & Mask(n)
}

// SintUnpack sign extends the low n bits of b.
func SintUnpack(b uint64, n uint) int64 {
	return SignExtend(b, n)
}
