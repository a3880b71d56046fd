package texture

import (
	"image"
	"image/color"
	"testing"

	"github.com/jpfielding/texel.go/pkg/format"
	"github.com/jpfielding/texel.go/pkg/texel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xdraw "golang.org/x/image/draw"
)

func checker() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	img.Set(1, 0, color.NRGBA{0, 255, 0, 255})
	img.Set(2, 0, color.NRGBA{0, 0, 255, 255})
	img.Set(0, 1, color.NRGBA{10, 20, 30, 255})
	img.Set(1, 1, color.NRGBA{128, 128, 128, 255})
	img.Set(2, 1, color.NRGBA{255, 255, 255, 255})
	return img
}

func TestImportImage(t *testing.T) {
	img := checker()
	u, err := ImportImage(img, format.R8G8B8A8Unorm)
	require.NoError(t, err)
	defer u.Close()
	assert.Equal(t, format.Ext(3, 2, 1), u.Params().Extent)
	assert.Equal(t, img.Pix, u.View().Bytes())

	bgra, err := ImportImage(img, format.B8G8R8A8Unorm)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 255, 255}, bgra.View().Bytes()[:4])
}

func TestImportSRGB(t *testing.T) {
	img := checker()
	u, err := ImportImage(img, format.R8G8B8A8Srgb)
	require.NoError(t, err)
	got := u.View().Bytes()
	require.Len(t, got, len(img.Pix))
	for i := range got {
		assert.InDelta(t, img.Pix[i], got[i], 1, "byte %d", i)
	}

	si, err := NewSurfaceImage(u.Span().Surface(0, 0, 0))
	require.NoError(t, err)
	c := si.At(1, 1).(color.NRGBA64)
	assert.InDelta(t, 128, c.R>>8, 1)
	assert.Equal(t, uint16(0xffff), c.A)
}

func TestImportErrors(t *testing.T) {
	img := checker()
	for _, f := range []format.Format{format.BC1RGBAUnormBlock, format.D32Sfloat, format.Undefined} {
		_, err := ImportImage(img, f)
		assert.ErrorIs(t, err, ErrNotImageFormat, f.String())
	}
	_, err := ScaleImport(img, format.R8G8B8A8Unorm, 0, 4, xdraw.NearestNeighbor)
	assert.ErrorIs(t, err, ErrNotImageFormat)
}

func TestSurfaceImageBounds(t *testing.T) {
	u := NewUnique(rgba(Dim2D, format.Ext(2, 2, 1), 1, 1, 1), nil)
	si, err := NewSurfaceImage(u.Span().Surface(0, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), si.Bounds())
	assert.Equal(t, color.NRGBA64Model, si.ColorModel())

	si.Set(5, 5, color.White)
	assert.Equal(t, make([]byte, 16), u.View().Bytes())
	assert.Equal(t, color.NRGBA64{}, si.At(-1, 0))

	si.Set(1, 0, color.NRGBA{1, 2, 3, 255})
	assert.Equal(t, []byte{1, 2, 3, 255}, u.View().Bytes()[4:8])
	assert.Equal(t, color.NRGBA64{0x0101, 0x0202, 0x0303, 0xffff}, si.At(1, 0))

	// the last texel ends exactly at the end of the surface
	si.Set(1, 1, color.NRGBA{4, 5, 6, 255})
	assert.Equal(t, []byte{4, 5, 6, 255}, u.View().Bytes()[12:16])
}

func TestScaleImport(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(img.Pix); i += 4 {
		copy(img.Pix[i:], []byte{200, 100, 50, 255})
	}
	for name, s := range map[string]xdraw.Scaler{
		"nearest":    xdraw.NearestNeighbor,
		"catmullrom": xdraw.CatmullRom,
	} {
		t.Run(name, func(t *testing.T) {
			u, err := ScaleImport(img, format.R8G8B8A8Unorm, 2, 2, s)
			require.NoError(t, err)
			got := u.View().Bytes()
			require.Len(t, got, 16)
			for i := 0; i < len(got); i += 4 {
				assert.InDeltaSlice(t, []float64{200, 100, 50, 255}, []float64{
					float64(got[i]), float64(got[i+1]), float64(got[i+2]), float64(got[i+3])}, 1)
			}
		})
	}
}

func TestGenerateMips(t *testing.T) {
	u := NewUnique(rgba(Dim2D, format.Ext(4, 4, 1), 2, 1, 3), nil)
	span := u.Span()
	for a := range 2 {
		require.NoError(t, texel.Clear(span.Surface(a, 0, 0).Surface(), texel.F32(1, 0, 0, 1)))
	}
	require.NoError(t, GenerateMips(span, xdraw.NearestNeighbor))
	for a := range 2 {
		for m := 1; m < 3; m++ {
			b := span.Surface(a, 0, m).Bytes()
			for i := 0; i < len(b); i += 4 {
				assert.Equal(t, []byte{255, 0, 0, 255}, b[i:i+4], "array %d mip %d", a, m)
			}
		}
	}

	vol := NewUnique(rgba(Dim3D, format.Ext(4, 4, 4), 1, 1, 2), nil)
	assert.ErrorIs(t, GenerateMips(vol.Span(), xdraw.NearestNeighbor), ErrNotImageFormat)
	assert.ErrorIs(t, GenerateMips(TextureSpan{}, xdraw.NearestNeighbor), ErrInvalidTexture)
}
