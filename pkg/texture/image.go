package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/jpfielding/texel.go/pkg/format"
	"github.com/jpfielding/texel.go/pkg/pack"
	"github.com/jpfielding/texel.go/pkg/texel"
	xdraw "golang.org/x/image/draw"
)

// ErrNotImageFormat is returned when a surface cannot back an image.Image:
// compressed, depth/stencil and unreadable formats.
var ErrNotImageFormat = errors.New("texture: format cannot back an image")

// SurfaceImage adapts slice z=0 of an uncompressed surface to draw.Image.
// Colors are non-premultiplied; sRGB formats read and write encoded values.
// Set is a no-op on formats that are not writeable.
type SurfaceImage struct {
	s       texel.Surface
	info    *format.Info
	sampler texel.BlockSampler
	writer  texel.Writer
	buf     [1]texel.Sample
}

var _ xdraw.Image = (*SurfaceImage)(nil)

func NewSurfaceImage(span SurfaceSpan) (*SurfaceImage, error) {
	s := span.Surface()
	info := format.InfoOf(s.Format)
	if !span.IsValid() || info.BlockExtent != format.Ext(1, 1, 1) || info.IsDepthStencil() || !info.Readable {
		return nil, fmt.Errorf("%s: %w", s.Format, ErrNotImageFormat)
	}
	return &SurfaceImage{
		s:       s,
		info:    info,
		sampler: texel.NewBlockSampler(s.Format),
		writer:  texel.NewWriter(s.Format),
	}, nil
}

func (i *SurfaceImage) ColorModel() color.Model { return color.NRGBA64Model }

func (i *SurfaceImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(i.s.Extent.W), int(i.s.Extent.H))
}

func (i *SurfaceImage) At(x, y int) color.Color {
	if !image.Pt(x, y).In(i.Bounds()) {
		return color.NRGBA64{}
	}
	if err := i.sampler.SampleTo(i.s, format.Ext(uint32(x), uint32(y), 0), i.buf[:]); err != nil {
		return color.NRGBA64{}
	}
	var c [4]uint16
	for n := range c {
		v := i.buf[0].Float(n)
		if n < 3 && i.info.Numeric == format.Srgb {
			v = pack.LinearToSRGB(v)
		}
		c[n] = uint16(pack.UnormPack(v, 16))
	}
	return color.NRGBA64{R: c[0], G: c[1], B: c[2], A: c[3]}
}

func (i *SurfaceImage) Set(x, y int, c color.Color) {
	if !i.info.Writeable || !image.Pt(x, y).In(i.Bounds()) {
		return
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	v := [4]float64{
		pack.UnormUnpack(uint64(n.R), 16),
		pack.UnormUnpack(uint64(n.G), 16),
		pack.UnormUnpack(uint64(n.B), 16),
		pack.UnormUnpack(uint64(n.A), 16),
	}
	if i.info.Numeric == format.Srgb {
		for k := range 3 {
			v[k] = pack.SRGBToLinear(v[k])
		}
	}
	off := (y*int(i.s.Extent.W) + x) * int(i.info.BlockSize)
	// The Writeable and bounds checks above leave WriteTo nothing to
	// reject: the format has a writer and off is inside the surface.
	_ = i.writer.WriteTo(texel.F64(v[0], v[1], v[2], v[3]), i.s.Data[off:])
}

// imageTexture allocates a single mip 2D texture of f sized w by h.
func imageTexture(f format.Format, w, h int) (UniqueTexture, *SurfaceImage, error) {
	if w <= 0 || h <= 0 {
		return UniqueTexture{}, nil, fmt.Errorf("image size %dx%d: %w", w, h, ErrNotImageFormat)
	}
	t := NewUnique(Params{
		Format:    f,
		Dimension: Dim2D,
		Extent:    format.Ext(uint32(w), uint32(h), 1),
		ArraySize: 1,
		Mips:      1,
	}, nil)
	if !t.IsValid() || !format.InfoOf(f).Writeable {
		t.Close()
		return UniqueTexture{}, nil, fmt.Errorf("%s: %w", f, ErrNotImageFormat)
	}
	dst, err := NewSurfaceImage(t.Span().Surface(0, 0, 0))
	if err != nil {
		t.Close()
		return UniqueTexture{}, nil, err
	}
	return t, dst, nil
}

// ImportImage copies img into a new 2D texture of format f.
func ImportImage(img image.Image, f format.Format) (UniqueTexture, error) {
	b := img.Bounds()
	t, dst, err := imageTexture(f, b.Dx(), b.Dy())
	if err != nil {
		return t, err
	}
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return t, nil
}

// ScaleImport resamples img to w by h with scaler into a new 2D texture.
// xdraw.CatmullRom and xdraw.NearestNeighbor are the usual choices.
func ScaleImport(img image.Image, f format.Format, w, h int, scaler xdraw.Scaler) (UniqueTexture, error) {
	t, dst, err := imageTexture(f, w, h)
	if err != nil {
		return t, err
	}
	scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return t, nil
}

// GenerateMips fills mips 1 and up of every array slice and face by
// scaling the previous mip. 3D textures are not supported.
func GenerateMips(t TextureSpan, scaler xdraw.Scaler) error {
	if !t.IsValid() {
		return ErrInvalidTexture
	}
	p := t.Params()
	if p.Dimension == Dim3D {
		return fmt.Errorf("generate mips for 3d texture: %w", ErrNotImageFormat)
	}
	return each(p, func(a, f, m int) error {
		if m == 0 {
			return nil
		}
		src, err := NewSurfaceImage(t.Surface(a, f, m-1))
		if err != nil {
			return err
		}
		dst, err := NewSurfaceImage(t.Surface(a, f, m))
		if err != nil {
			return err
		}
		if !dst.info.Writeable {
			return fmt.Errorf("%s: %w", p.Format, texel.OpFormatNotWriteable)
		}
		scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
		return nil
	})
}
