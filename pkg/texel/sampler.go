package texel

import (
	"github.com/jpfielding/texel.go/pkg/format"
)

// BlockSampler decodes whole blocks of one readable format into samples.
type BlockSampler struct {
	h *Handler
}

func NewBlockSampler(f format.Format) BlockSampler {
	return BlockSampler{h: Dispatch(f)}
}

func (b BlockSampler) Format() format.Format { return b.h.format }

// check runs the validation shared by every sampling entry point and
// returns the byte offset of the block.
func (b BlockSampler) check(src Surface, bloxel format.Extent) (int, error) {
	info := b.h.info
	switch {
	case info.BlockSize == 0 || src.Format != b.h.format:
		return 0, SampleInvalidFormat
	case info.IsDepthStencil():
		return 0, SampleDepthStencilUnsupported
	case !info.Readable:
		return 0, SampleInvalidFormat
	case uint64(len(src.Data)) < src.Size():
		return 0, SampleSourceTooSmall
	case !bloxel.Within(src.Blocks()):
		return 0, SampleBloxelOutOfRange
	}
	return src.blockOffset(bloxel), nil
}

// SampleTo decodes the block at bloxel into BlockTexelCount samples,
// row-major inside the block.
func (b BlockSampler) SampleTo(src Surface, bloxel format.Extent, out []Sample) error {
	off, err := b.check(src, bloxel)
	if err != nil {
		return err
	}
	n := b.h.info.BlockTexelCount()
	if len(out) < n {
		return SampleDestinationTooSmall
	}
	return b.decodeBlock(src.Data[off:off+int(b.h.info.BlockSize)], out[:n])
}

// SampleNarrowTo is SampleTo writing each texel as NarrowSampleSize raw
// little-endian bytes.
func (b BlockSampler) SampleNarrowTo(src Surface, bloxel format.Extent, out []byte) error {
	return b.sampleBytes(src, bloxel, out, int(b.h.info.Components))
}

// SampleWideTo is SampleTo writing each texel as WideSampleSize raw
// little-endian bytes, always four components.
func (b BlockSampler) SampleWideTo(src Surface, bloxel format.Extent, out []byte) error {
	return b.sampleBytes(src, bloxel, out, 4)
}

func (b BlockSampler) sampleBytes(src Surface, bloxel format.Extent, out []byte, comps int) error {
	off, err := b.check(src, bloxel)
	if err != nil {
		return err
	}
	info := b.h.info
	n := info.BlockTexelCount()
	stride := comps * info.SampleType.Size()
	if len(out) < n*stride {
		return SampleDestinationTooSmall
	}
	samples := make([]Sample, n)
	if err := b.decodeBlock(src.Data[off:off+int(info.BlockSize)], samples); err != nil {
		return err
	}
	for i, s := range samples {
		s.PutBytes(out[i*stride:], comps)
	}
	return nil
}

// decodeBlock turns one block's bytes into len(out) samples.
func (b BlockSampler) decodeBlock(block []byte, out []Sample) error {
	info := b.h.info
	if !info.IsCompressed() {
		if b.h.codec == nil {
			return SampleInvalidFormat
		}
		out[0] = b.h.codec.decode(block)
		return nil
	}
	dec, ok := b.h.Decoder()
	if !ok {
		return SampleInvalidFormat
	}
	target := Dispatch(info.Decompressed)
	if target.codec == nil {
		return SampleInvalidFormat
	}
	ts := int(target.info.BlockSize)
	w, h := int(info.BlockExtent.W), int(info.BlockExtent.H)
	scratch := make([]byte, w*h*ts)
	if err := dec.Decode(block, 1, 1, scratch, w*ts, ts); err != nil {
		return SampleInvalidFormat
	}
	for i := range out {
		out[i] = target.codec.decode(scratch[i*ts:])
	}
	return nil
}
