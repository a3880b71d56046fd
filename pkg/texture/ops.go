package texture

import (
	"errors"
	"fmt"

	"github.com/jpfielding/texel.go/pkg/format"
	"github.com/jpfielding/texel.go/pkg/texel"
)

// ErrInvalidTexture is returned for operations on empty or freed textures.
var ErrInvalidTexture = errors.New("texture: invalid storage")

func checkPair(src TextureView, dst TextureSpan) error {
	if !src.IsValid() || !dst.IsValid() {
		return ErrInvalidTexture
	}
	sp, dp := src.Params(), dst.Params()
	if sp.ArraySize != dp.ArraySize || sp.Faces != dp.Faces || sp.Mips != dp.Mips ||
		sp.Extent != dp.Extent || sp.Dimension != dp.Dimension {
		return texel.ConvertSourceAndDestinationNotEquivalent
	}
	return nil
}

// Convert converts every surface of src into the matching surface of dst,
// stopping at the first failure. Both textures must share a layout.
func Convert(src TextureView, dst TextureSpan) error {
	if err := checkPair(src, dst); err != nil {
		return err
	}
	c := texel.NewConverter(src.Format(), dst.Format())
	return each(src.Params(), func(a, f, m int) error {
		if err := c.ConvertTo(src.Surface(a, f, m).Surface(), dst.Surface(a, f, m).Surface()); err != nil {
			return fmt.Errorf("convert surface %d/%d/%d: %w", a, f, m, err)
		}
		return nil
	})
}

// Decompress decodes every surface of a compressed src into dst, which
// must use the decompressed target format.
func Decompress(src TextureView, dst TextureSpan) error {
	if err := checkPair(src, dst); err != nil {
		return err
	}
	d := texel.NewDecompressor(src.Format())
	return each(src.Params(), func(a, f, m int) error {
		if err := d.DecompressTo(src.Surface(a, f, m).Surface(), dst.Surface(a, f, m).Surface()); err != nil {
			return fmt.Errorf("decompress surface %d/%d/%d: %w", a, f, m, err)
		}
		return nil
	})
}

// ConvertTo allocates a texture shaped like src in format f and converts
// src into it. A compressed src converted to its own target is decompressed.
func ConvertTo(src TextureView, f format.Format) (UniqueTexture, error) {
	if !src.IsValid() {
		return UniqueTexture{}, ErrInvalidTexture
	}
	p := src.Params()
	p.Format = f
	dst := NewUnique(p, nil)
	if !dst.IsValid() {
		return UniqueTexture{}, fmt.Errorf("allocate %s texture: %w", f, texel.ConvertInvalidFormat)
	}
	if err := Convert(src, dst.Span()); err != nil {
		dst.Close()
		return UniqueTexture{}, err
	}
	return dst, nil
}

// Clear fills every surface of dst with color.
func Clear(dst TextureSpan, color texel.Sample) error {
	if !dst.IsValid() {
		return ErrInvalidTexture
	}
	return each(dst.Params(), func(a, f, m int) error {
		if err := texel.Clear(dst.Surface(a, f, m).Surface(), color); err != nil {
			return fmt.Errorf("clear surface %d/%d/%d: %w", a, f, m, err)
		}
		return nil
	})
}
