package texture

import (
	"github.com/google/uuid"
	"github.com/jpfielding/texel.go/pkg/format"
	"github.com/jpfielding/texel.go/pkg/texel"
)

// SurfaceView is a read-only handle on one surface. It does not own the
// bytes and is invalid once the texture is destroyed.
type SurfaceView struct {
	s texel.Surface
}

func (v SurfaceView) IsValid() bool          { return v.s.Data != nil }
func (v SurfaceView) Format() format.Format  { return v.s.Format }
func (v SurfaceView) Extent() format.Extent  { return v.s.Extent }
func (v SurfaceView) Surface() texel.Surface { return v.s }

// Bytes must not be written through.
func (v SurfaceView) Bytes() []byte { return v.s.Data }

// SurfaceSpan is the mutable counterpart of SurfaceView.
type SurfaceSpan struct {
	s texel.Surface
}

func (v SurfaceSpan) IsValid() bool          { return v.s.Data != nil }
func (v SurfaceSpan) Format() format.Format  { return v.s.Format }
func (v SurfaceSpan) Extent() format.Extent  { return v.s.Extent }
func (v SurfaceSpan) Surface() texel.Surface { return v.s }
func (v SurfaceSpan) Bytes() []byte          { return v.s.Data }
func (v SurfaceSpan) View() SurfaceView      { return SurfaceView(v) }

func surfaceOf(s Storage, array, face, mip int) texel.Surface {
	b := s.Surface(array, face, mip)
	if b == nil {
		return texel.Surface{}
	}
	return texel.Surface{Format: s.a.params.Format, Extent: s.a.mips[mip], Data: b}
}

// TextureView is a read-only handle on a whole texture.
type TextureView struct {
	s Storage
}

func (v TextureView) IsValid() bool                 { return v.s.IsValid() }
func (v TextureView) ID() uuid.UUID                 { return v.s.ID() }
func (v TextureView) Params() Params                { return v.s.Params() }
func (v TextureView) Format() format.Format         { return v.s.Format() }
func (v TextureView) MipExtent(m int) format.Extent { return v.s.MipExtent(m) }
func (v TextureView) SurfaceCount() int             { return v.s.SurfaceCount() }
func (v TextureView) SizeInBytes() uint64           { return v.s.SizeInBytes() }

// Surface returns an empty view when a coordinate is out of range.
func (v TextureView) Surface(array, face, mip int) SurfaceView {
	return SurfaceView{s: surfaceOf(v.s, array, face, mip)}
}

// Bytes must not be written through.
func (v TextureView) Bytes() []byte { return v.s.Bytes() }

// TextureSpan is the mutable counterpart of TextureView.
type TextureSpan struct {
	s Storage
}

func (v TextureSpan) IsValid() bool                 { return v.s.IsValid() }
func (v TextureSpan) ID() uuid.UUID                 { return v.s.ID() }
func (v TextureSpan) Params() Params                { return v.s.Params() }
func (v TextureSpan) Format() format.Format         { return v.s.Format() }
func (v TextureSpan) MipExtent(m int) format.Extent { return v.s.MipExtent(m) }
func (v TextureSpan) SurfaceCount() int             { return v.s.SurfaceCount() }
func (v TextureSpan) SizeInBytes() uint64           { return v.s.SizeInBytes() }
func (v TextureSpan) Bytes() []byte                 { return v.s.Bytes() }
func (v TextureSpan) View() TextureView             { return TextureView(v) }

// Surface returns an empty span when a coordinate is out of range.
func (v TextureSpan) Surface(array, face, mip int) SurfaceSpan {
	return SurfaceSpan{s: surfaceOf(v.s, array, face, mip)}
}

// each visits every surface coordinate in array, face, mip order.
func each(p Params, fn func(array, face, mip int) error) error {
	for a := range int(p.ArraySize) {
		for f := range int(p.Faces) {
			for m := range int(p.Mips) {
				if err := fn(a, f, m); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
