package texel

import (
	"log/slog"

	"github.com/jpfielding/texel.go/pkg/format"
)

// Decompressor decodes whole surfaces of one compressed format into its
// decompressed target.
type Decompressor struct {
	h *Handler
}

func NewDecompressor(f format.Format) Decompressor {
	return Decompressor{h: Dispatch(f)}
}

func (d Decompressor) Format() format.Format { return d.h.format }

// Target returns the format DecompressTo writes, or Undefined.
func (d Decompressor) Target() format.Format {
	if !d.h.info.Decompressible {
		return format.Undefined
	}
	return d.h.info.Decompressed
}

// DecompressTo decodes src into dst. dst must use the target format and
// cover src's extent; its extent sets the row pitch of the output. Whole
// blocks are decoded and clipped to src's extent.
//
// DecompressDestinationTooSmall is judged against src's texel extent, not
// its block grid times the block extent. A 2x2 mip tail of a 4x4 block
// format decodes into a 2x2 surface.
func (d Decompressor) DecompressTo(src, dst Surface) error {
	info := d.h.info
	target := d.Target()
	if target == format.Undefined || src.Format != d.h.format || dst.Format != target {
		return DecompressFormatNotDecompressible
	}
	dec, ok := d.h.Decoder()
	if !ok {
		return DecompressFormatNotDecompressible
	}
	if uint64(len(src.Data)) < src.Size() {
		return DecompressSourceTooSmall
	}
	e := src.Extent
	if dst.Extent.W < e.W || dst.Extent.H < e.H || dst.Extent.D < e.D ||
		uint64(len(dst.Data)) < dst.Size() {
		return DecompressDestinationTooSmall
	}

	ts := int(format.InfoOf(target).BlockSize)
	blocks := src.Blocks()
	wb, hb := int(blocks.W), int(blocks.H)
	bw, bh := int(info.BlockExtent.W), int(info.BlockExtent.H)
	sliceBytes := wb * hb * int(info.BlockSize)
	stride := wb * bw * ts
	scratch := make([]byte, stride*hb*bh)
	dstRow := int(dst.Extent.W) * ts
	dstSlice := dstRow * int(dst.Extent.H)

	if d.h.Delegated() {
		slog.Debug("delegated block decode", "format", d.h.format.String(), "extent", e.String())
	}
	for z := 0; z < int(e.D); z++ {
		slice := src.Data[z*sliceBytes : (z+1)*sliceBytes]
		if err := dec.Decode(slice, wb, hb, scratch, stride, ts); err != nil {
			slog.Debug("block decode failed", "format", d.h.format.String(), "error", err)
			return DecompressFormatNotDecompressible
		}
		row := int(e.W) * ts
		for y := 0; y < int(e.H); y++ {
			out := dst.Data[z*dstSlice+y*dstRow:]
			copy(out[:row], scratch[y*stride:y*stride+row])
		}
	}
	return nil
}
