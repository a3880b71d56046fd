package texture

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/jpfielding/texel.go/pkg/format"
	"github.com/stretchr/testify/assert"
)

func rgba(dim Dimension, e format.Extent, array, faces, mips uint32) Params {
	return Params{Format: format.R8G8B8A8Unorm, Dimension: dim, Extent: e, ArraySize: array, Faces: faces, Mips: mips}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Params
		ok   bool
		want Params
	}{
		{"plain 2d", rgba(Dim2D, format.Ext(4, 4, 1), 1, 1, 1), true,
			Params{Format: format.R8G8B8A8Unorm, Dimension: Dim2D, Extent: format.Ext(4, 4, 1), ArraySize: 1, Faces: 1, Mips: 1, Alignment: 1}},
		{"2d drops depth and faces", rgba(Dim2D, format.Ext(4, 4, 9), 2, 6, 1), true,
			Params{Format: format.R8G8B8A8Unorm, Dimension: Dim2D, Extent: format.Ext(4, 4, 1), ArraySize: 2, Faces: 1, Mips: 1, Alignment: 1}},
		{"1d drops height", rgba(Dim1D, format.Ext(5, 3, 2), 1, 0, 8), true,
			Params{Format: format.R8G8B8A8Unorm, Dimension: Dim1D, Extent: format.Ext(5, 1, 1), ArraySize: 1, Faces: 1, Mips: 3, Alignment: 1}},
		{"mips clamp", rgba(Dim2D, format.Ext(16, 8, 1), 1, 1, 99), true,
			Params{Format: format.R8G8B8A8Unorm, Dimension: Dim2D, Extent: format.Ext(16, 8, 1), ArraySize: 1, Faces: 1, Mips: 5, Alignment: 1}},
		{"cube", rgba(DimCube, format.Ext(8, 8, 1), 1, 6, 2), true,
			Params{Format: format.R8G8B8A8Unorm, Dimension: DimCube, Extent: format.Ext(8, 8, 1), ArraySize: 1, Faces: 6, Mips: 2, Alignment: 1}},
		{"cube with 4 faces", rgba(DimCube, format.Ext(8, 8, 1), 1, 4, 1), false, Params{}},
		{"zero mips", rgba(Dim2D, format.Ext(4, 4, 1), 1, 1, 0), false, Params{}},
		{"zero array", rgba(Dim2D, format.Ext(4, 4, 1), 0, 1, 1), false, Params{}},
		{"zero extent", rgba(Dim3D, format.Ext(4, 4, 0), 1, 1, 1), false, Params{}},
		{"no dimension", rgba(DimNone, format.Ext(4, 4, 1), 1, 1, 1), false, Params{}},
		{"undefined format", Params{Dimension: Dim2D, Extent: format.Ext(4, 4, 1), ArraySize: 1, Faces: 1, Mips: 1}, false, Params{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.in.Normalize()
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestMipChain(t *testing.T) {
	tests := []struct {
		dim  Dimension
		e    format.Extent
		want []format.Extent
	}{
		{Dim2D, format.Ext(16, 8, 1), []format.Extent{
			format.Ext(16, 8, 1), format.Ext(8, 4, 1), format.Ext(4, 2, 1), format.Ext(2, 1, 1), format.Ext(1, 1, 1)}},
		{Dim3D, format.Ext(8, 4, 2), []format.Extent{
			format.Ext(8, 4, 2), format.Ext(4, 2, 1), format.Ext(2, 1, 1), format.Ext(1, 1, 1)}},
		{Dim1D, format.Ext(5, 1, 1), []format.Extent{
			format.Ext(5, 1, 1), format.Ext(2, 1, 1), format.Ext(1, 1, 1)}},
		{DimCube, format.Ext(3, 3, 1), []format.Extent{format.Ext(3, 3, 1), format.Ext(1, 1, 1)}},
	}
	for _, tt := range tests {
		t.Run(tt.dim.String()+"/"+tt.e.String(), func(t *testing.T) {
			p := rgba(tt.dim, tt.e, 1, 6, 32)
			p, ok := p.Normalize()
			assert.True(t, ok)
			assert.EqualValues(t, len(tt.want), p.Mips)
			for m, want := range tt.want {
				assert.Equal(t, want, p.MipExtent(uint32(m)), "mip %d", m)
			}
		})
	}
}

func TestMaxMips(t *testing.T) {
	assert.EqualValues(t, 0, MaxMips(Dim2D, format.Ext(0, 0, 1)))
	assert.EqualValues(t, 1, MaxMips(Dim2D, format.Ext(1, 1, 1)))
	assert.EqualValues(t, 11, MaxMips(Dim2D, format.Ext(1024, 3, 1)))
	// depth only counts for 3d
	assert.EqualValues(t, 1, MaxMips(Dim2D, format.Ext(1, 1, 64)))
	assert.EqualValues(t, 7, MaxMips(Dim3D, format.Ext(1, 1, 64)))
}

func TestParseDimension(t *testing.T) {
	for _, d := range []Dimension{Dim1D, Dim2D, Dim3D, DimCube} {
		got, ok := ParseDimension(d.String())
		assert.True(t, ok)
		assert.Equal(t, d, got)
	}
	_, ok := ParseDimension("4d")
	assert.False(t, ok)
}

func TestGPU(t *testing.T) {
	cube := rgba(DimCube, format.Ext(4, 4, 1), 2, 6, 1)
	assert.Equal(t, gputypes.Extent3D{Width: 4, Height: 4, DepthOrArrayLayers: 12}, cube.GPUExtent())
	assert.Equal(t, gputypes.TextureDimension2D, cube.GPUDimension())

	vol := rgba(Dim3D, format.Ext(4, 4, 3), 1, 1, 1)
	assert.Equal(t, gputypes.Extent3D{Width: 4, Height: 4, DepthOrArrayLayers: 3}, vol.GPUExtent())
	assert.Equal(t, gputypes.TextureDimension3D, vol.GPUDimension())
	assert.Equal(t, gputypes.TextureDimension1D, rgba(Dim1D, format.Ext(4, 1, 1), 1, 1, 1).GPUDimension())
}

func TestLayoutID(t *testing.T) {
	a := rgba(Dim2D, format.Ext(4, 4, 1), 1, 1, 1)
	b := a
	b.Alignment = 1
	assert.Equal(t, a.LayoutID(), b.LayoutID())
	b.Format = format.B8G8R8A8Unorm
	assert.NotEqual(t, a.LayoutID(), b.LayoutID())
}
