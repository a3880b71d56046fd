package texture

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/jpfielding/texel.go/pkg/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageRGBA4x4(t *testing.T) {
	s := NewStorage(rgba(Dim2D, format.Ext(4, 4, 1), 1, 1, 1), nil)
	require.True(t, s.IsValid())
	assert.Equal(t, 1, s.SurfaceCount())
	assert.EqualValues(t, 64, s.SizeInBytes())
	assert.NotEqual(t, uuid.Nil, s.ID())
	assert.Len(t, s.Surface(0, 0, 0), 64)
	assert.Equal(t, format.Ext(4, 4, 1), s.MipExtent(0))
}

func TestStorageInvalid(t *testing.T) {
	for name, p := range map[string]Params{
		"cube with 4 faces": rgba(DimCube, format.Ext(4, 4, 1), 1, 4, 1),
		"zero mips":         rgba(Dim2D, format.Ext(4, 4, 1), 1, 1, 0),
		"zero array":        rgba(Dim2D, format.Ext(4, 4, 1), 0, 1, 1),
		"undefined":         {Dimension: Dim2D, Extent: format.Ext(4, 4, 1), ArraySize: 1, Mips: 1},
	} {
		t.Run(name, func(t *testing.T) {
			s := NewStorage(p, nil)
			assert.False(t, s.IsValid())
			assert.Equal(t, uuid.Nil, s.ID())
			assert.Zero(t, s.SurfaceCount())
			assert.Zero(t, s.SizeInBytes())
			assert.Nil(t, s.Surface(0, 0, 0))
			_, ok := s.SurfaceIndex(0, 0, 0)
			assert.False(t, ok)
		})
	}
	assert.False(t, Storage{}.IsValid())
}

func TestStorageSizes(t *testing.T) {
	tests := []struct {
		name  string
		p     Params
		sizes []uint64
		total uint64
	}{
		{"bc1 chain", Params{Format: format.BC1RGBAUnormBlock, Dimension: Dim2D, Extent: format.Ext(8, 8, 1), ArraySize: 1, Mips: 8},
			[]uint64{32, 8, 8, 8}, 56},
		{"aligned", Params{Format: format.R8G8B8A8Unorm, Dimension: Dim2D, Extent: format.Ext(3, 3, 1), ArraySize: 1, Mips: 2, Alignment: 256},
			[]uint64{36, 4}, 512},
		{"three byte blocks", Params{Format: format.R8G8B8Unorm, Dimension: Dim2D, Extent: format.Ext(2, 1, 1), ArraySize: 1, Mips: 2, Alignment: 4},
			[]uint64{6, 3}, 24},
		{"volume", Params{Format: format.R8Unorm, Dimension: Dim3D, Extent: format.Ext(4, 2, 2), ArraySize: 1, Mips: 3},
			[]uint64{16, 2, 1}, 19},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStorage(tt.p, nil)
			require.True(t, s.IsValid())
			require.Equal(t, len(tt.sizes), s.SurfaceCount())
			align := uint64(s.Params().Alignment)
			block := uint64(format.InfoOf(tt.p.Format).BlockSize)
			var off uint64
			for i, size := range tt.sizes {
				si, ok := s.SurfaceInfo(i)
				require.True(t, ok)
				assert.Equal(t, size, si.Size)
				assert.Equal(t, off, si.Offset)
				assert.Zero(t, si.Padded%align)
				assert.Zero(t, si.Padded%block)
				assert.Zero(t, si.Size%block)
				off += si.Padded
			}
			assert.Equal(t, tt.total, s.SizeInBytes())
		})
	}
}

func TestSurfaceIndexBijection(t *testing.T) {
	s := NewStorage(Params{
		Format:    format.R8G8B8A8Unorm,
		Dimension: DimCube,
		Extent:    format.Ext(4, 4, 1),
		ArraySize: 3,
		Faces:     6,
		Mips:      3,
	}, nil)
	require.True(t, s.IsValid())
	assert.Equal(t, 3*6*3, s.SurfaceCount())

	seen := map[int]bool{}
	for a := range 3 {
		for f := range 6 {
			for m := range 3 {
				i, ok := s.SurfaceIndex(a, f, m)
				require.True(t, ok)
				assert.False(t, seen[i], "index %d repeated", i)
				seen[i] = true
				assert.Equal(t, 6*3*a+3*f+m, i)
				assert.Len(t, s.Surface(a, f, m), int(format.InfoOf(format.R8G8B8A8Unorm).SurfaceSize(s.MipExtent(m))))
				assert.Equal(t, s.Surface(a, f, m), s.SurfaceUnsafe(a, f, m))
			}
		}
	}
	assert.Len(t, seen, s.SurfaceCount())

	for _, c := range [][3]int{{3, 0, 0}, {0, 6, 0}, {0, 0, 3}, {-1, 0, 0}} {
		_, ok := s.SurfaceIndex(c[0], c[1], c[2])
		assert.False(t, ok, "%v", c)
		assert.Nil(t, s.Surface(c[0], c[1], c[2]))
	}
	assert.Zero(t, s.MipExtent(3))
}

func TestStorageInitial(t *testing.T) {
	p := rgba(Dim2D, format.Ext(4, 4, 1), 1, 1, 1)

	long := bytes.Repeat([]byte{0xab}, 100)
	s := NewStorage(p, long)
	assert.Equal(t, long[:64], s.Bytes())

	short := []byte{1, 2, 3}
	s = NewStorage(p, short)
	want := make([]byte, 64)
	copy(want, short)
	assert.Equal(t, want, s.Bytes())
}

func TestVolumeSlice(t *testing.T) {
	s := NewStorage(rgba(Dim3D, format.Ext(2, 2, 3), 1, 1, 1), nil)
	require.True(t, s.IsValid())
	for i := range s.Bytes() {
		s.Bytes()[i] = byte(i)
	}
	for z := range 3 {
		got := s.VolumeSlice(0, 0, 0, z)
		require.Len(t, got, 16)
		assert.Equal(t, byte(16*z), got[0])
	}
	assert.Nil(t, s.VolumeSlice(0, 0, 0, 3))
	assert.Nil(t, s.VolumeSlice(0, 0, 1, 0))
}

func TestUniqueClose(t *testing.T) {
	u := NewUnique(rgba(Dim2D, format.Ext(4, 4, 1), 1, 1, 1), nil)
	require.True(t, u.IsValid())
	v := u.View()
	assert.True(t, v.Surface(0, 0, 0).IsValid())

	u.Close()
	assert.False(t, u.IsValid())
	assert.False(t, v.IsValid())
	assert.False(t, v.Surface(0, 0, 0).IsValid())
	u.Close()
}

func TestUniqueShare(t *testing.T) {
	u := NewUnique(rgba(Dim2D, format.Ext(4, 4, 1), 1, 1, 1), []byte{9})
	id := u.ID()
	s := u.Share()
	assert.False(t, u.IsValid())
	require.True(t, s.IsValid())
	assert.Equal(t, id, s.ID())
	assert.EqualValues(t, 1, s.StrongCount())
	assert.Equal(t, byte(9), s.View().Bytes()[0])
	s.Release()
}

func TestViews(t *testing.T) {
	u := NewUnique(rgba(Dim2D, format.Ext(4, 2, 1), 2, 1, 2), nil)
	span := u.Span()
	sv := span.Surface(1, 0, 1)
	require.True(t, sv.IsValid())
	assert.Equal(t, format.R8G8B8A8Unorm, sv.Format())
	assert.Equal(t, format.Ext(2, 1, 1), sv.Extent())
	sv.Bytes()[0] = 7

	view := span.View()
	assert.Equal(t, byte(7), view.Surface(1, 0, 1).Bytes()[0])
	assert.Equal(t, sv.Surface(), sv.View().Surface())
	assert.False(t, view.Surface(2, 0, 0).IsValid())
	assert.Equal(t, u.ID(), view.ID())
}
