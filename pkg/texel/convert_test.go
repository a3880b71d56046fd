package texel

import (
	"encoding/binary"
	"math"
	"testing"

	_ "github.com/jpfielding/texel.go/pkg/blockdec/etc"
	"github.com/jpfielding/texel.go/pkg/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func surface(f format.Format, e format.Extent) Surface {
	return Surface{Format: f, Extent: e, Data: make([]byte, f.Info().SurfaceSize(e))}
}

func TestConvertIdentity(t *testing.T) {
	for _, f := range []format.Format{format.R8G8B8A8Unorm, format.BC1RGBAUnormBlock, format.D24UnormS8Uint, format.R64G64B64A64Sfloat} {
		t.Run(f.String(), func(t *testing.T) {
			src := surface(f, format.Ext(8, 4, 2))
			for i := range src.Data {
				src.Data[i] = byte(i * 7)
			}
			dst := surface(f, src.Extent)
			require.NoError(t, NewConverter(f, f).ConvertTo(src, dst))
			assert.Equal(t, src.Data, dst.Data)
		})
	}
}

func TestConvertSwizzle(t *testing.T) {
	src := surface(format.R8G8B8A8Unorm, format.Ext(2, 1, 1))
	copy(src.Data, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	dst := surface(format.B8G8R8A8Unorm, src.Extent)
	require.NoError(t, NewConverter(src.Format, dst.Format).ConvertTo(src, dst))
	assert.Equal(t, []byte{3, 2, 1, 4, 7, 6, 5, 8}, dst.Data)
}

func TestConvertWiden(t *testing.T) {
	src := surface(format.R8G8Unorm, format.Ext(1, 1, 1))
	copy(src.Data, []byte{255, 0})
	dst := surface(format.R32G32B32A32Sfloat, src.Extent)
	require.NoError(t, NewConverter(src.Format, dst.Format).ConvertTo(src, dst))
	var got [4]float32
	for i := range got {
		got[i] = math.Float32frombits(binary.LittleEndian.Uint32(dst.Data[4*i:]))
	}
	assert.Equal(t, [4]float32{1, 0, 0, 1}, got)
}

func TestConvertCompressedSource(t *testing.T) {
	src := Surface{Format: format.BC1RGBUnormBlock, Extent: format.Ext(6, 2, 1)}
	src.Data = append(colorBits(0xf800, 0x001f, 0), colorBits(0xf800, 0x001f, 1)...)

	// Decompression target: fast path.
	fast := surface(format.R8G8B8A8Unorm, src.Extent)
	require.NoError(t, NewConverter(src.Format, fast.Format).ConvertTo(src, fast))

	// Any other format goes through sampling and writing.
	slow := surface(format.B8G8R8A8Unorm, src.Extent)
	require.NoError(t, NewConverter(src.Format, slow.Format).ConvertTo(src, slow))

	for y := 0; y < 2; y++ {
		for x := 0; x < 6; x++ {
			i := (y*6 + x) * 4
			want := []byte{255, 0, 0, 255}
			if x >= 4 {
				want = []byte{0, 0, 255, 255}
			}
			assert.Equal(t, want, fast.Data[i:i+4], "fast %d,%d", x, y)
			assert.Equal(t, []byte{want[2], want[1], want[0], want[3]}, slow.Data[i:i+4], "slow %d,%d", x, y)
		}
	}
}

func TestConvertDelegated(t *testing.T) {
	// ETC2 individual mode, all indices 0: +2 on every channel.
	block := make([]byte, 8)
	binary.BigEndian.PutUint64(block, uint64(0xa)<<60|uint64(0xa)<<56)
	src := Surface{Format: format.ETC2R8G8B8UnormBlock, Extent: format.Ext(4, 4, 1), Data: block}
	dst := surface(format.R8G8B8A8Unorm, src.Extent)
	require.NoError(t, NewConverter(src.Format, dst.Format).ConvertTo(src, dst))
	for i := 0; i < 16; i++ {
		assert.Equal(t, []byte{0xac, 2, 2, 0xff}, dst.Data[i*4:i*4+4])
	}

	eac := Surface{Format: format.EacR11UnormBlock, Extent: format.Ext(4, 4, 1), Data: make([]byte, 8)}
	r16 := surface(format.R16Unorm, eac.Extent)
	require.NoError(t, NewDecompressor(eac.Format).DecompressTo(eac, r16))
}

func TestConvertErrors(t *testing.T) {
	rgba := surface(format.R8G8B8A8Unorm, format.Ext(2, 2, 1))
	r8 := surface(format.R8Unorm, format.Ext(2, 2, 1))
	tests := []struct {
		name     string
		src, dst format.Format
		s, d     Surface
		want     error
	}{
		{"source mismatch", format.R8Unorm, format.R8Unorm, rgba, r8, ConvertSourceFormatsMismatch},
		{"destination mismatch", format.R8G8B8A8Unorm, format.R8G8Unorm, rgba, r8, ConvertDestinationFormatsMismatch},
		{"extent", format.R8G8B8A8Unorm, format.R8Unorm, rgba, surface(format.R8Unorm, format.Ext(1, 2, 1)), ConvertSourceAndDestinationNotEquivalent},
		{"short source", format.R8G8B8A8Unorm, format.R8Unorm, Surface{Format: format.R8G8B8A8Unorm, Extent: rgba.Extent, Data: rgba.Data[:3]}, r8, ConvertSourceTooSmall},
		{"short destination", format.R8G8B8A8Unorm, format.R8Unorm, rgba, Surface{Format: format.R8Unorm, Extent: r8.Extent}, ConvertDestinationTooSmall},
		{"depth", format.D32Sfloat, format.R32Sfloat, surface(format.D32Sfloat, r8.Extent), surface(format.R32Sfloat, r8.Extent), ConvertDepthStencilUnsupported},
		{"compressed destination", format.R8G8B8A8Unorm, format.BC1RGBUnormBlock, rgba, surface(format.BC1RGBUnormBlock, rgba.Extent), ConvertFormatNotWriteable},
		{"undefined", format.Undefined, format.R8Unorm, Surface{Extent: r8.Extent}, r8, ConvertInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, NewConverter(tt.src, tt.dst).ConvertTo(tt.s, tt.d), tt.want)
		})
	}
}
