// Package etc decodes the ETC2 and EAC block formats and registers the
// decoders with blockdec on import.
package etc

import (
	"encoding/binary"

	"github.com/jpfielding/texel.go/pkg/blockdec"
	"github.com/jpfielding/texel.go/pkg/format"
)

type alphaMode uint8

const (
	alphaNone alphaMode = iota
	alphaPunch
	alpha8
)

func init() {
	for _, f := range []format.Format{format.ETC2R8G8B8UnormBlock, format.ETC2R8G8B8SrgbBlock} {
		blockdec.Register(f, colorDecoder(f, alphaNone))
	}
	for _, f := range []format.Format{format.ETC2R8G8B8A1UnormBlock, format.ETC2R8G8B8A1SrgbBlock} {
		blockdec.Register(f, colorDecoder(f, alphaPunch))
	}
	for _, f := range []format.Format{format.ETC2R8G8B8A8UnormBlock, format.ETC2R8G8B8A8SrgbBlock} {
		blockdec.Register(f, colorDecoder(f, alpha8))
	}
	blockdec.Register(format.EacR11UnormBlock, eacDecoder(format.EacR11UnormBlock, 1, false))
	blockdec.Register(format.EacR11SnormBlock, eacDecoder(format.EacR11SnormBlock, 1, true))
	blockdec.Register(format.EacR11G11UnormBlock, eacDecoder(format.EacR11G11UnormBlock, 2, false))
	blockdec.Register(format.EacR11G11SnormBlock, eacDecoder(format.EacR11G11SnormBlock, 2, true))
}

// Blocks are big-endian 64-bit words. Index bits run column major: texel i
// of a block sits at x = i/4, y = i%4.
func place(dst []byte, stride, texelSize, i int) []byte {
	x, y := i/4, i%4
	return dst[y*stride+x*texelSize:]
}

// colorDecoder decodes ETC2 RGB, RGB with punch-through alpha, and RGBA
// blocks into RGBA8 texels.
func colorDecoder(f format.Format, mode alphaMode) blockdec.Decoder {
	size := int(format.InfoOf(f).BlockSize)
	return blockdec.DecoderFunc(func(src []byte, wb, hb int, dst []byte, stride, texelSize int) error {
		if err := blockdec.Check(f, src, wb, hb, dst, stride, texelSize); err != nil {
			return err
		}
		n := min(texelSize, 4)
		for by := 0; by < hb; by++ {
			for bx := 0; bx < wb; bx++ {
				block := src[(by*wb+bx)*size:]
				var texels [16][4]uint8
				alpha := opaqueAlpha
				if mode == alpha8 {
					alpha = decodeAlpha(binary.BigEndian.Uint64(block))
					block = block[8:]
				}
				decodeColor(binary.BigEndian.Uint64(block), mode == alphaPunch, &alpha, &texels)
				out := dst[by*4*stride+bx*4*texelSize:]
				for j := range texels {
					copy(out[(j/4)*stride+(j%4)*texelSize:][:n], texels[j][:n])
				}
			}
		}
		return nil
	})
}

// eacDecoder decodes one or two EAC channels into 16-bit UNORM or SNORM
// components.
func eacDecoder(f format.Format, channels int, signed bool) blockdec.Decoder {
	return blockdec.DecoderFunc(func(src []byte, wb, hb int, dst []byte, stride, texelSize int) error {
		if err := blockdec.Check(f, src, wb, hb, dst, stride, texelSize); err != nil {
			return err
		}
		size := 8 * channels
		for by := 0; by < hb; by++ {
			for bx := 0; bx < wb; bx++ {
				block := src[(by*wb+bx)*size:]
				out := dst[by*4*stride+bx*4*texelSize:]
				for c := 0; c < channels && 2*c+2 <= texelSize; c++ {
					values := decodeEAC(binary.BigEndian.Uint64(block[8*c:]), signed)
					for i, v := range values {
						binary.LittleEndian.PutUint16(place(out, stride, texelSize, i)[2*c:], v)
					}
				}
			}
		}
		return nil
	})
}
