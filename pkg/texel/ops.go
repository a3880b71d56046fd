package texel

import "github.com/jpfielding/texel.go/pkg/format"

// Clear fills every texel of dst with color.
func Clear(dst Surface, color Sample) error {
	info := format.InfoOf(dst.Format)
	switch {
	case info.BlockSize == 0:
		return OpInvalidFormat
	case info.IsDepthStencil():
		return OpDepthStencilUnsupported
	case info.IsCompressed() || !info.Writeable:
		return OpFormatNotWriteable
	case uint64(len(dst.Data)) < dst.Size():
		return OpDestinationTooSmall
	}
	texel, err := NewWriter(dst.Format).Encode(color)
	if err != nil {
		return OpFormatNotWriteable
	}
	n := int(dst.Size())
	if n == 0 {
		return nil
	}
	// Double the filled prefix until the surface is covered.
	filled := copy(dst.Data[:n], texel)
	for filled < n {
		filled += copy(dst.Data[filled:n], dst.Data[:filled])
	}
	return nil
}

// checkFlip validates a flip between two surfaces of one uncompressed
// format and the same extent.
func checkFlip(src, dst Surface) error {
	info := format.InfoOf(src.Format)
	switch {
	case info.BlockSize == 0:
		return OpInvalidFormat
	case src.Format != dst.Format:
		return OpFormatsMismatch
	case info.BlockExtent != format.Ext(1, 1, 1):
		return OpInvalidFormat
	case src.Extent != dst.Extent:
		return OpRegionOutOfBounds
	case uint64(len(src.Data)) < src.Size():
		return OpSourceTooSmall
	case uint64(len(dst.Data)) < dst.Size():
		return OpDestinationTooSmall
	}
	return nil
}

// FlipHorizontal mirrors src left to right into dst. Passing the same
// surface twice flips in place.
func FlipHorizontal(src, dst Surface) error {
	if err := checkFlip(src, dst); err != nil {
		return err
	}
	size := int(format.InfoOf(src.Format).BlockSize)
	w := int(src.Extent.W)
	row := w * size
	rows := int(src.Extent.H) * int(src.Extent.D)
	inPlace := sameBytes(src.Data, dst.Data)
	tmp := make([]byte, size)
	for r := 0; r < rows; r++ {
		s := src.Data[r*row : (r+1)*row]
		d := dst.Data[r*row : (r+1)*row]
		if inPlace {
			for x := 0; x < w/2; x++ {
				a := s[x*size : (x+1)*size]
				b := s[(w-1-x)*size : (w-x)*size]
				copy(tmp, a)
				copy(a, b)
				copy(b, tmp)
			}
			continue
		}
		for x := 0; x < w; x++ {
			copy(d[x*size:(x+1)*size], s[(w-1-x)*size:(w-x)*size])
		}
	}
	return nil
}

// FlipVertical mirrors src top to bottom into dst, slice by slice.
// Passing the same surface twice flips in place.
func FlipVertical(src, dst Surface) error {
	if err := checkFlip(src, dst); err != nil {
		return err
	}
	size := int(format.InfoOf(src.Format).BlockSize)
	row := int(src.Extent.W) * size
	h := int(src.Extent.H)
	inPlace := sameBytes(src.Data, dst.Data)
	tmp := make([]byte, row)
	for z := 0; z < int(src.Extent.D); z++ {
		base := z * h * row
		rowAt := func(b []byte, y int) []byte {
			return b[base+y*row : base+(y+1)*row]
		}
		if inPlace {
			for y := 0; y < h/2; y++ {
				a, b := rowAt(src.Data, y), rowAt(src.Data, h-1-y)
				copy(tmp, a)
				copy(a, b)
				copy(b, tmp)
			}
			continue
		}
		for y := 0; y < h; y++ {
			copy(rowAt(dst.Data, y), rowAt(src.Data, h-1-y))
		}
	}
	return nil
}

// aligned reports whether one axis of a copy sits on block boundaries. A
// size may end inside a block only where it runs to the destination's
// edge: the rest of that trailing block lies outside dst's extent, so
// copying it whole touches no texel outside the region.
func aligned(srcOff, dstOff, size, dstExt, block uint32) bool {
	if srcOff%block != 0 || dstOff%block != 0 {
		return false
	}
	return size%block == 0 || dstOff+size == dstExt
}

// CopySurfaceRegion copies the size texels at srcOff in src to dstOff in
// dst. Both surfaces share one format; offsets and size are in texels and
// must fall on block boundaries, except that size may end mid-block where
// the region reaches dst's edge.
func CopySurfaceRegion(src, dst Surface, srcOff, dstOff, size format.Extent) error {
	info := format.InfoOf(src.Format)
	switch {
	case info.BlockSize == 0:
		return OpInvalidFormat
	case src.Format != dst.Format:
		return OpFormatsMismatch
	}
	fits := func(off, ext format.Extent) bool {
		return uint64(off.W)+uint64(size.W) <= uint64(ext.W) &&
			uint64(off.H)+uint64(size.H) <= uint64(ext.H) &&
			uint64(off.D)+uint64(size.D) <= uint64(ext.D)
	}
	if !fits(srcOff, src.Extent) || !fits(dstOff, dst.Extent) {
		return OpRegionOutOfBounds
	}
	be := info.BlockExtent
	if !aligned(srcOff.W, dstOff.W, size.W, dst.Extent.W, be.W) ||
		!aligned(srcOff.H, dstOff.H, size.H, dst.Extent.H, be.H) ||
		!aligned(srcOff.D, dstOff.D, size.D, dst.Extent.D, be.D) {
		return OpRegionNotBlockAligned
	}
	if uint64(len(src.Data)) < src.Size() {
		return OpSourceTooSmall
	}
	if uint64(len(dst.Data)) < dst.Size() {
		return OpDestinationTooSmall
	}
	if size.IsZero() {
		return nil
	}

	blocks := size.CeilDiv(be)
	sb, db := srcOff.CeilDiv(be), dstOff.CeilDiv(be)
	n := int(blocks.W) * int(info.BlockSize)
	for z := uint32(0); z < blocks.D; z++ {
		for y := uint32(0); y < blocks.H; y++ {
			so := src.blockOffset(format.Ext(sb.W, sb.H+y, sb.D+z))
			do := dst.blockOffset(format.Ext(db.W, db.H+y, db.D+z))
			copy(dst.Data[do:do+n], src.Data[so:so+n])
		}
	}
	return nil
}
