package texture

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/jpfielding/texel.go/pkg/format"
	"github.com/jpfielding/texel.go/pkg/texel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filled(p Params) UniqueTexture {
	u := NewUnique(p, nil)
	for i := range u.View().Bytes() {
		u.View().Bytes()[i] = byte(i*13 + 1)
	}
	return u
}

func TestConvertIdentity(t *testing.T) {
	for _, p := range []Params{
		rgba(DimCube, format.Ext(8, 8, 1), 2, 6, 4),
		{Format: format.BC1RGBAUnormBlock, Dimension: Dim2D, Extent: format.Ext(16, 8, 1), ArraySize: 3, Mips: 5},
		{Format: format.R16G16Sfloat, Dimension: Dim3D, Extent: format.Ext(4, 4, 4), ArraySize: 1, Mips: 3},
	} {
		t.Run(p.Format.String(), func(t *testing.T) {
			src := filled(p)
			defer src.Close()
			dst, err := ConvertTo(src.View(), p.Format)
			require.NoError(t, err)
			defer dst.Close()
			assert.Equal(t, src.View().Bytes(), dst.View().Bytes())
			assert.NotEqual(t, src.ID(), dst.ID())
		})
	}
}

func TestConvertWiden(t *testing.T) {
	src := NewUnique(rgba(Dim2D, format.Ext(2, 2, 1), 1, 1, 2), bytes.Repeat([]byte{255, 0, 0, 255}, 5))
	dst, err := ConvertTo(src.View(), format.R32G32B32A32Sfloat)
	require.NoError(t, err)
	for m := range 2 {
		b := dst.View().Surface(0, 0, m).Bytes()
		for i := 0; i < len(b); i += 16 {
			var got [4]float32
			for c := range got {
				got[c] = math.Float32frombits(binary.LittleEndian.Uint32(b[i+4*c:]))
			}
			assert.Equal(t, [4]float32{1, 0, 0, 1}, got)
		}
	}
}

func TestConvertErrors(t *testing.T) {
	src := NewUnique(rgba(Dim2D, format.Ext(4, 4, 1), 1, 1, 1), nil)
	other := NewUnique(rgba(Dim2D, format.Ext(4, 2, 1), 1, 1, 1), nil)
	depth := NewUnique(Params{Format: format.D32Sfloat, Dimension: Dim2D, Extent: format.Ext(4, 4, 1), ArraySize: 1, Mips: 1}, nil)

	assert.ErrorIs(t, Convert(src.View(), other.Span()), texel.ConvertSourceAndDestinationNotEquivalent)
	assert.ErrorIs(t, Convert(TextureView{}, other.Span()), ErrInvalidTexture)
	assert.ErrorIs(t, Convert(src.View(), depth.Span()), texel.ConvertDepthStencilUnsupported)

	_, err := ConvertTo(src.View(), format.Undefined)
	assert.ErrorIs(t, err, texel.ConvertInvalidFormat)
	_, err = ConvertTo(TextureView{}, format.R8Unorm)
	assert.ErrorIs(t, err, ErrInvalidTexture)

	// surface coordinates are part of the message
	err = Convert(src.View(), depth.Span())
	assert.Contains(t, err.Error(), "0/0/0")
}

func TestDecompress(t *testing.T) {
	white := []byte{0xff, 0xff, 0, 0, 0, 0, 0, 0}
	p := Params{Format: format.BC1RGBAUnormBlock, Dimension: Dim2D, Extent: format.Ext(4, 4, 1), ArraySize: 2, Mips: 3}
	src := NewUnique(p, bytes.Repeat(white, 6))
	require.True(t, src.IsValid())

	p.Format = format.R8G8B8A8Unorm
	dst := NewUnique(p, nil)
	require.NoError(t, Decompress(src.View(), dst.Span()))
	assert.Equal(t, bytes.Repeat([]byte{0xff}, int(dst.View().SizeInBytes())), dst.View().Bytes())

	wrong := NewUnique(rgba(Dim2D, format.Ext(4, 4, 1), 2, 1, 2), nil)
	assert.ErrorIs(t, Decompress(src.View(), wrong.Span()), texel.ConvertSourceAndDestinationNotEquivalent)

	p.Format = format.R8G8B8A8Srgb
	srgb := NewUnique(p, nil)
	assert.True(t, errors.Is(Decompress(src.View(), srgb.Span()), texel.DecompressFormatNotDecompressible))
}

func TestClearTexture(t *testing.T) {
	u := NewUnique(rgba(Dim2D, format.Ext(4, 4, 1), 2, 1, 3), nil)
	require.NoError(t, Clear(u.Span(), texel.F32(0, 1, 0, 1)))
	assert.Equal(t, bytes.Repeat([]byte{0, 255, 0, 255}, int(u.View().SizeInBytes()/4)), u.View().Bytes())

	bc := NewUnique(Params{Format: format.BC1RGBAUnormBlock, Dimension: Dim2D, Extent: format.Ext(4, 4, 1), ArraySize: 1, Mips: 1}, nil)
	assert.ErrorIs(t, Clear(bc.Span(), texel.F32(0, 0, 0, 0)), texel.OpFormatNotWriteable)
	assert.ErrorIs(t, Clear(TextureSpan{}, texel.F32(0, 0, 0, 0)), ErrInvalidTexture)
}
