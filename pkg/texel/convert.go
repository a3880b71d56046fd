package texel

import "github.com/jpfielding/texel.go/pkg/format"

// Converter converts surfaces from one format into another.
type Converter struct {
	src, dst format.Format
	sampler  BlockSampler
	writer   Writer
}

func NewConverter(src, dst format.Format) Converter {
	return Converter{src: src, dst: dst, sampler: NewBlockSampler(src), writer: NewWriter(dst)}
}

// ConvertTo converts src into dst. Both surfaces must use the converter's
// formats and share one texel extent.
//
// A same-format conversion is a byte copy. When dst is src's decompressed
// target the decompressor does the work. Anything else samples src block by
// block and writes each texel to its place in dst.
func (c Converter) ConvertTo(src, dst Surface) error {
	switch {
	case src.Format != c.src:
		return ConvertSourceFormatsMismatch
	case dst.Format != c.dst:
		return ConvertDestinationFormatsMismatch
	case src.Extent != dst.Extent:
		return ConvertSourceAndDestinationNotEquivalent
	}
	si, di := format.InfoOf(c.src), format.InfoOf(c.dst)
	if si.BlockSize == 0 || di.BlockSize == 0 {
		return ConvertInvalidFormat
	}
	if uint64(len(src.Data)) < src.Size() {
		return ConvertSourceTooSmall
	}
	if uint64(len(dst.Data)) < dst.Size() {
		return ConvertDestinationTooSmall
	}

	if c.src == c.dst {
		n := src.Size()
		copy(dst.Data[:n], src.Data[:n])
		return nil
	}
	if si.IsDepthStencil() || di.IsDepthStencil() {
		return ConvertDepthStencilUnsupported
	}
	if si.IsCompressed() && si.Decompressed == c.dst {
		return decompressToConvert(NewDecompressor(c.src).DecompressTo(src, dst))
	}
	if !si.Readable {
		return ConvertInvalidFormat
	}
	if !di.Writeable {
		return ConvertFormatNotWriteable
	}
	return c.convertBlocks(src, dst)
}

func (c Converter) convertBlocks(src, dst Surface) error {
	si := format.InfoOf(c.src)
	size := int(format.InfoOf(c.dst).BlockSize)
	be := si.BlockExtent
	blocks := src.Blocks()
	e := src.Extent
	samples := make([]Sample, si.BlockTexelCount())

	for bz := uint32(0); bz < blocks.D; bz++ {
		for by := uint32(0); by < blocks.H; by++ {
			for bx := uint32(0); bx < blocks.W; bx++ {
				if err := c.sampler.SampleTo(src, format.Ext(bx, by, bz), samples); err != nil {
					return sampleToConvert(err)
				}
				for i, s := range samples {
					tx := bx*be.W + uint32(i)%be.W
					ty := by*be.H + uint32(i)/be.W%be.H
					tz := bz*be.D + uint32(i)/(be.W*be.H)
					if tx >= e.W || ty >= e.H || tz >= e.D {
						continue
					}
					off := int((uint64(tz)*uint64(e.H)+uint64(ty))*uint64(e.W)+uint64(tx)) * size
					if err := c.writer.WriteTo(s, dst.Data[off:]); err != nil {
						return writeToConvert(err)
					}
				}
			}
		}
	}
	return nil
}
