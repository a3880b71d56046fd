package texel

import "github.com/jpfielding/texel.go/pkg/format"

// Surface is a tightly packed grid of blocks: blocks run x fastest, then y,
// then z, with no row or slice padding. Extent is in texels.
type Surface struct {
	Format format.Format
	Extent format.Extent
	Data   []byte
}

// Size returns the number of bytes the surface's extent requires.
func (s Surface) Size() uint64 {
	return format.InfoOf(s.Format).SurfaceSize(s.Extent)
}

// Blocks returns the surface extent in blocks.
func (s Surface) Blocks() format.Extent {
	return format.InfoOf(s.Format).BlocksFor(s.Extent)
}

// blockOffset returns the byte offset of the block at b.
func (s Surface) blockOffset(b format.Extent) int {
	info := format.InfoOf(s.Format)
	n := s.Blocks()
	return int((uint64(b.D)*uint64(n.H)+uint64(b.H))*uint64(n.W)+uint64(b.W)) * int(info.BlockSize)
}

func sameBytes(a, b []byte) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}
