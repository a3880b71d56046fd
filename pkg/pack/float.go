package pack

import (
	"math"

	"github.com/mrjoshuak/go-openexr/half"
)

// The packed unsigned float formats share binary16's 5-bit exponent with
// bias 15 and keep 6 (11-bit) or 5 (10-bit) mantissa bits. binary16 itself
// goes through the openexr half package.
const (
	smallExpBits = 5
	smallBias    = 15
)

// smallFromBits converts the magnitude of a float32 (sign bit clear) to an
// unsigned small float with mb mantissa bits. Rounding is to nearest even,
// overflow saturates to infinity and NaN payloads keep their top bits.
func smallFromBits(abs uint32, mb uint) uint32 {
	expMask := uint32(1<<smallExpBits-1) << mb
	exp := int32(abs >> 23)
	mant := abs & 0x7fffff
	drop := 23 - mb

	if exp == 0xff {
		if mant == 0 {
			return expMask
		}
		m := mant >> drop
		if m == 0 {
			m = 1 << (mb - 1)
		}
		return expMask | m
	}

	e := exp - 127 + smallBias
	if e >= 1<<smallExpBits-1 {
		return expMask
	}
	if e <= 0 {
		if e < -int32(mb) {
			return 0
		}
		mant |= 0x800000
		shift := drop + uint(1-e)
		h := mant >> shift
		rem := mant & (1<<shift - 1)
		halfway := uint32(1) << (shift - 1)
		if rem > halfway || (rem == halfway && h&1 == 1) {
			h++
		}
		return h
	}

	h := uint32(e)<<mb | mant>>drop
	rem := mant & (1<<drop - 1)
	halfway := uint32(1) << (drop - 1)
	if rem > halfway || (rem == halfway && h&1 == 1) {
		h++
	}
	return h
}

// smallToFloat32 expands an unsigned small float with mb mantissa bits.
func smallToFloat32(v uint32, mb uint) float32 {
	exp := (v >> mb) & (1<<smallExpBits - 1)
	mant := v & (1<<mb - 1)
	shift := 23 - mb

	switch exp {
	case 1<<smallExpBits - 1:
		return math.Float32frombits(0x7f800000 | mant<<shift)
	case 0:
		if mant == 0 {
			return 0
		}
		e := uint32(127 - smallBias + 1)
		for mant&(1<<mb) == 0 {
			mant <<= 1
			e--
		}
		mant &= 1<<mb - 1
		return math.Float32frombits(e<<23 | mant<<shift)
	}
	return math.Float32frombits((exp+127-smallBias)<<23 | mant<<shift)
}

// HalfFromFloat32 converts f to IEEE-754 binary16 bits.
func HalfFromFloat32(f float32) uint16 {
	return uint16(half.FromFloat32(f))
}

// HalfToFloat32 converts binary16 bits to a float32. Every half value,
// denormals included, is exactly representable.
func HalfToFloat32(h uint16) float32 {
	return half.Half(h).Float32()
}

func ufloatPack(f float32, mb uint) uint32 {
	b := math.Float32bits(f)
	if b&0x80000000 != 0 && f == f {
		return 0
	}
	return smallFromBits(b&0x7fffffff, mb)
}

// UFloat11Pack encodes f as an unsigned 11-bit float (5e6m). Negative
// values clamp to zero.
func UFloat11Pack(f float32) uint32 { return ufloatPack(f, 6) }

// UFloat11Unpack decodes an unsigned 11-bit float.
func UFloat11Unpack(v uint32) float32 { return smallToFloat32(v&0x7ff, 6) }

// UFloat10Pack encodes f as an unsigned 10-bit float (5e5m).
func UFloat10Pack(f float32) uint32 { return ufloatPack(f, 5) }

// UFloat10Unpack decodes an unsigned 10-bit float.
func UFloat10Unpack(v uint32) float32 { return smallToFloat32(v&0x3ff, 5) }

const (
	sharedExpMantBits = 9
	sharedExpBias     = 15
	sharedExpMax      = 31
)

// SharedExpMax is the largest value E5B9G9R9 can hold.
var SharedExpMax = float64(1<<sharedExpMantBits-1) / float64(1<<sharedExpMantBits) *
	math.Exp2(sharedExpMax-sharedExpBias)

// SharedExpPack encodes three non-negative values with a 5-bit shared
// exponent and 9-bit mantissas, R in the low bits.
func SharedExpPack(r, g, b float32) uint32 {
	clampc := func(v float32) float64 {
		f := float64(v)
		if !(f > 0) {
			return 0
		}
		if f > SharedExpMax {
			return SharedExpMax
		}
		return f
	}
	rc, gc, bc := clampc(r), clampc(g), clampc(b)
	maxc := math.Max(rc, math.Max(gc, bc))
	if maxc == 0 {
		return 0
	}

	expp := int(math.Max(-sharedExpBias-1, math.Floor(math.Log2(maxc)))) + 1 + sharedExpBias
	maxs := math.Floor(maxc/math.Exp2(float64(expp-sharedExpBias-sharedExpMantBits)) + 0.5)
	exps := expp
	if maxs >= 1<<sharedExpMantBits {
		exps++
	}
	scale := math.Exp2(float64(exps - sharedExpBias - sharedExpMantBits))
	rs := uint32(math.Floor(rc/scale + 0.5))
	gs := uint32(math.Floor(gc/scale + 0.5))
	bs := uint32(math.Floor(bc/scale + 0.5))
	return rs | gs<<9 | bs<<18 | uint32(exps)<<27
}

// SharedExpUnpack decodes an E5B9G9R9 word.
func SharedExpUnpack(v uint32) (r, g, b float32) {
	exp := int(v >> 27)
	scale := math.Exp2(float64(exp - sharedExpBias - sharedExpMantBits))
	r = float32(float64(v&0x1ff) * scale)
	g = float32(float64((v>>9)&0x1ff) * scale)
	b = float32(float64((v>>18)&0x1ff) * scale)
	return
}
