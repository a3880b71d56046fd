package pack

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHalf(t *testing.T) {
	tests := []struct {
		name string
		f    float32
		h    uint16
	}{
		{"Zero", 0, 0x0000},
		{"NegZero", float32(math.Copysign(0, -1)), 0x8000},
		{"One", 1, 0x3c00},
		{"MinusTwo", -2, 0xc000},
		{"Max", 65504, 0x7bff},
		{"SmallestNormal", 6.103515625e-05, 0x0400},
		{"SmallestDenormal", 5.960464477539063e-08, 0x0001},
		{"Inf", float32(math.Inf(1)), 0x7c00},
		{"Third", 0.333251953125, 0x3555},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.h, HalfFromFloat32(tt.f))
			assert.Equal(t, tt.f, HalfToFloat32(tt.h))
		})
	}
}

func TestHalfEdges(t *testing.T) {
	assert.Equal(t, uint16(0x7c00), HalfFromFloat32(1e6), "overflow saturates to inf")
	assert.Equal(t, uint16(0xfc00), HalfFromFloat32(-1e6))
	assert.Equal(t, uint16(0), HalfFromFloat32(1e-10), "underflow flushes to zero")
	nan := HalfFromFloat32(float32(math.NaN()))
	assert.Equal(t, uint16(0x7c00), nan&0x7c00)
	assert.NotZero(t, nan&0x3ff)
	assert.True(t, math.IsNaN(float64(HalfToFloat32(nan))))
}

func TestUFloat(t *testing.T) {
	assert.Equal(t, uint32(0x3c0), UFloat11Pack(1))
	assert.Equal(t, float32(1), UFloat11Unpack(0x3c0))
	assert.Equal(t, uint32(0x1e0), UFloat10Pack(1))
	assert.Equal(t, float32(1), UFloat10Unpack(0x1e0))
	assert.Equal(t, uint32(0), UFloat11Pack(-4))
	assert.Equal(t, uint32(0x7c0), UFloat11Pack(float32(math.Inf(1))))
	assert.Equal(t, float32(65024), UFloat11Unpack(0x7bf))
	for _, v := range []float32{0, 0.5, 2, 1000} {
		assert.InDelta(t, v, UFloat11Unpack(UFloat11Pack(v)), float64(v)/32)
		assert.InDelta(t, v, UFloat10Unpack(UFloat10Pack(v)), float64(v)/16)
	}
}

func TestSharedExp(t *testing.T) {
	assert.Equal(t, uint32(0), SharedExpPack(0, 0, 0))
	for _, c := range [][3]float32{{1, 0.5, 0.25}, {0, 100, 3}, {65408, 1, 0}} {
		r, g, b := SharedExpUnpack(SharedExpPack(c[0], c[1], c[2]))
		tol := float64(max(c[0], c[1], c[2])) / 256
		assert.InDelta(t, c[0], r, tol)
		assert.InDelta(t, c[1], g, tol)
		assert.InDelta(t, c[2], b, tol)
	}
	r, _, _ := SharedExpUnpack(SharedExpPack(1e9, 0, 0))
	assert.Equal(t, float32(SharedExpMax), r, "clamped to the largest value")
}

func TestSRGB(t *testing.T) {
	assert.Equal(t, 0.0, SRGBToLinear(0))
	assert.InDelta(t, 1.0, SRGBToLinear(1), 1e-12)
	assert.InDelta(t, 0.214041, SRGBToLinear(0.5), 1e-6)
	assert.InDelta(t, 0.01, SRGBToLinear(LinearToSRGB(0.01)), 1e-12)
	assert.InDelta(t, 0.002*12.92, LinearToSRGB(0.002), 1e-12)
	v := LinearToSRGB3(SRGBToLinear3([3]float64{0.1, 0.5, 0.9}))
	assert.InDeltaSlice(t, []float64{0.1, 0.5, 0.9}, v[:], 1e-9)
}
