// Package texture owns texture memory: one allocation per texture holding
// every (array slice, face, mip) surface, the views and spans that address
// it, and the unique and shared ownership policies over it.
package texture

import (
	"math/bits"

	"github.com/gogpu/gputypes"
	"github.com/google/uuid"
	"github.com/jpfielding/texel.go/pkg/format"
	"github.com/jpfielding/texel.go/pkg/util"
)

// Dimension is the shape of a texture.
type Dimension uint8

const (
	DimNone Dimension = iota
	Dim1D
	Dim2D
	Dim3D
	DimCube
)

func (d Dimension) String() string {
	switch d {
	case Dim1D:
		return "1d"
	case Dim2D:
		return "2d"
	case Dim3D:
		return "3d"
	case DimCube:
		return "cube"
	default:
		return "none"
	}
}

// ParseDimension accepts the names String returns.
func ParseDimension(s string) (Dimension, bool) {
	for d := Dim1D; d <= DimCube; d++ {
		if d.String() == s {
			return d, true
		}
	}
	return DimNone, false
}

// halves reports which extent components shrink from one mip to the next.
func (d Dimension) halves() (w, h, depth bool) {
	switch d {
	case Dim1D:
		return true, false, false
	case Dim3D:
		return true, true, true
	default:
		return true, true, false
	}
}

// Params describes a texture. Extent is mip 0 in texels; Alignment is the
// byte multiple every surface is padded to.
type Params struct {
	Format    format.Format
	Dimension Dimension
	Extent    format.Extent
	ArraySize uint32
	Faces     uint32
	Mips      uint32
	Alignment uint32
}

// MaxMips returns the length of the full mip chain of an extent under d.
func MaxMips(d Dimension, e format.Extent) uint32 {
	w, h, depth := d.halves()
	var m uint32
	if w {
		m = max(m, e.W)
	}
	if h {
		m = max(m, e.H)
	}
	if depth {
		m = max(m, e.D)
	}
	if m == 0 {
		return 0
	}
	return uint32(bits.Len32(m))
}

// Normalize returns the params a texture is actually built with, and
// false when no valid texture can be built from p: zero mips, zero array
// size, a format without storage, a zero extent, or a cube without exactly
// six faces.
func (p Params) Normalize() (Params, bool) {
	info := format.InfoOf(p.Format)
	if !p.Format.Valid() || info.BlockSize == 0 || p.Mips == 0 || p.ArraySize == 0 {
		return p, false
	}
	switch p.Dimension {
	case Dim1D:
		p.Extent.H, p.Extent.D = 1, 1
	case Dim2D, DimCube:
		p.Extent.D = 1
	case Dim3D:
	default:
		return p, false
	}
	if p.Dimension == DimCube {
		if p.Faces != 6 {
			return p, false
		}
	} else {
		p.Faces = 1
	}
	if p.Extent.IsZero() {
		return p, false
	}
	p.Alignment = max(p.Alignment, 1)
	p.Mips = min(p.Mips, MaxMips(p.Dimension, p.Extent))
	return p, true
}

// SurfaceCount is ArraySize * Faces * Mips.
func (p Params) SurfaceCount() int {
	return int(p.ArraySize) * int(p.Faces) * int(p.Mips)
}

// MipExtent returns the extent of mip m, halving from Extent.
func (p Params) MipExtent(m uint32) format.Extent {
	w, h, d := p.Dimension.halves()
	e := p.Extent
	for range m {
		e = e.Halve(w, h, d)
	}
	return e
}

// GPUExtent returns the WebGPU size of the texture: array layers, faces
// included, travel in DepthOrArrayLayers except for 3D textures.
func (p Params) GPUExtent() gputypes.Extent3D {
	e := p.Extent
	if p.Dimension != Dim3D {
		e.D = p.ArraySize * max(p.Faces, 1)
	}
	return e.GPUExtent()
}

// GPUDimension returns the WebGPU dimension; cubes are 2D array textures.
func (p Params) GPUDimension() gputypes.TextureDimension {
	switch p.Dimension {
	case Dim1D:
		return gputypes.TextureDimension1D
	case Dim3D:
		return gputypes.TextureDimension3D
	default:
		return gputypes.TextureDimension2D
	}
}

// LayoutID is a stable id of the normalized layout. Textures that share it
// have byte-compatible storage.
func (p Params) LayoutID() uuid.UUID {
	n, _ := p.Normalize()
	return util.HashUUID(n)
}
