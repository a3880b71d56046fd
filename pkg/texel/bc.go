package texel

import (
	"encoding/binary"

	"github.com/jpfielding/texel.go/pkg/blockdec"
	"github.com/jpfielding/texel.go/pkg/format"
)

// BC1 through BC5 are decoded here. Each decoder walks the block grid and
// writes whole 4x4 blocks, so dst must cover widthInBlocks*4 texels per
// row and heightInBlocks*4 rows.

type bcKind uint8

const (
	bc1RGB bcKind = iota
	bc1RGBA
	bc2
	bc3
	bc4U
	bc4S
	bc5U
	bc5S
)

var bcKinds = map[format.Format]bcKind{
	format.BC1RGBUnormBlock:  bc1RGB,
	format.BC1RGBSrgbBlock:   bc1RGB,
	format.BC1RGBAUnormBlock: bc1RGBA,
	format.BC1RGBASrgbBlock:  bc1RGBA,
	format.BC2UnormBlock:     bc2,
	format.BC2SrgbBlock:      bc2,
	format.BC3UnormBlock:     bc3,
	format.BC3SrgbBlock:      bc3,
	format.BC4UnormBlock:     bc4U,
	format.BC4SnormBlock:     bc4S,
	format.BC5UnormBlock:     bc5U,
	format.BC5SnormBlock:     bc5S,
}

// bcDecoder returns the in-house decoder for a BC1-BC5 format.
func bcDecoder(f format.Format) (blockdec.Decoder, bool) {
	kind, ok := bcKinds[f]
	if !ok {
		return nil, false
	}
	return blockdec.DecoderFunc(func(src []byte, wb, hb int, dst []byte, stride, texelSize int) error {
		if err := blockdec.Check(f, src, wb, hb, dst, stride, texelSize); err != nil {
			return err
		}
		size := int(format.InfoOf(f).BlockSize)
		for by := 0; by < hb; by++ {
			for bx := 0; bx < wb; bx++ {
				block := src[(by*wb+bx)*size:]
				out := dst[by*4*stride+bx*4*texelSize:]
				decodeBC(kind, block, out, stride, texelSize)
			}
		}
		return nil
	}), true
}

func decodeBC(kind bcKind, block, out []byte, stride, texelSize int) {
	var texels [16][4]uint8
	switch kind {
	case bc1RGB, bc1RGBA:
		colorBlock(block, &texels, true, kind == bc1RGBA)
	case bc2:
		colorBlock(block[8:], &texels, false, false)
		for i := 0; i < 16; i++ {
			a := block[i/2] >> (4 * (i % 2)) & 0xf
			texels[i][3] = a<<4 | a
		}
	case bc3:
		colorBlock(block[8:], &texels, false, false)
		var alpha [16]uint8
		unormChannel(block, &alpha)
		for i := range alpha {
			texels[i][3] = alpha[i]
		}
	case bc4U, bc5U:
		var ch [16]uint8
		unormChannel(block, &ch)
		for i := range ch {
			texels[i][0] = ch[i]
		}
		if kind == bc5U {
			unormChannel(block[8:], &ch)
			for i := range ch {
				texels[i][1] = ch[i]
			}
		}
	case bc4S, bc5S:
		var ch [16]int8
		snormChannel(block, &ch)
		for i := range ch {
			texels[i][0] = uint8(ch[i])
		}
		if kind == bc5S {
			snormChannel(block[8:], &ch)
			for i := range ch {
				texels[i][1] = uint8(ch[i])
			}
		}
	}
	n := min(texelSize, 4)
	for y := 0; y < 4; y++ {
		row := out[y*stride:]
		for x := 0; x < 4; x++ {
			copy(row[x*texelSize:x*texelSize+n], texels[y*4+x][:n])
		}
	}
}

func expand565(c uint16) [4]uint8 {
	r := uint8(c>>11) & 0x1f
	g := uint8(c>>5) & 0x3f
	b := uint8(c) & 0x1f
	return [4]uint8{r<<3 | r>>2, g<<2 | g>>4, b<<3 | b>>2, 0xff}
}

func mix(a, b uint8, wa, wb, d int) uint8 {
	return uint8((int(a)*wa + int(b)*wb) / d)
}

// colorBlock decodes the 8-byte RGB565 part shared by BC1, BC2 and BC3.
// BC1 alone switches to the three color table when c0 <= c1; punch marks
// the alpha carrying variant whose fourth entry is transparent.
func colorBlock(block []byte, texels *[16][4]uint8, bc1, punch bool) {
	c0 := binary.LittleEndian.Uint16(block)
	c1 := binary.LittleEndian.Uint16(block[2:])
	indices := binary.LittleEndian.Uint32(block[4:])

	var palette [4][4]uint8
	palette[0], palette[1] = expand565(c0), expand565(c1)
	p0, p1 := palette[0], palette[1]
	if !bc1 || c0 > c1 {
		for ch := 0; ch < 3; ch++ {
			palette[2][ch] = mix(p0[ch], p1[ch], 2, 1, 3)
			palette[3][ch] = mix(p0[ch], p1[ch], 1, 2, 3)
		}
		palette[2][3], palette[3][3] = 0xff, 0xff
	} else {
		for ch := 0; ch < 3; ch++ {
			palette[2][ch] = mix(p0[ch], p1[ch], 1, 1, 2)
		}
		palette[2][3] = 0xff
		palette[3] = [4]uint8{0, 0, 0, 0xff}
		if punch {
			palette[3][3] = 0
		}
	}
	for i := 0; i < 16; i++ {
		texels[i] = palette[indices>>(2*i)&0x3]
	}
}

// channelIndices returns the 48 bits of 3-bit indices after the two
// endpoint bytes.
func channelIndices(block []byte) uint64 {
	var bits uint64
	for i := 0; i < 6; i++ {
		bits |= uint64(block[2+i]) << (8 * i)
	}
	return bits
}

// unormChannel decodes a BC4 style 8-byte channel block.
func unormChannel(block []byte, out *[16]uint8) {
	a0, a1 := block[0], block[1]
	var palette [8]uint8
	palette[0], palette[1] = a0, a1
	if a0 > a1 {
		for i := 1; i < 7; i++ {
			palette[i+1] = mix(a0, a1, 7-i, i, 7)
		}
	} else {
		for i := 1; i < 5; i++ {
			palette[i+1] = mix(a0, a1, 5-i, i, 5)
		}
		palette[6], palette[7] = 0, 0xff
	}
	bits := channelIndices(block)
	for i := range out {
		out[i] = palette[bits>>(3*i)&0x7]
	}
}

// snormChannel is unormChannel over signed endpoints. -128 reads as -127.
func snormChannel(block []byte, out *[16]int8) {
	clamp := func(v int8) int {
		return max(int(v), -127)
	}
	a0, a1 := clamp(int8(block[0])), clamp(int8(block[1]))
	var palette [8]int
	palette[0], palette[1] = a0, a1
	if a0 > a1 {
		for i := 1; i < 7; i++ {
			palette[i+1] = (a0*(7-i) + a1*i) / 7
		}
	} else {
		for i := 1; i < 5; i++ {
			palette[i+1] = (a0*(5-i) + a1*i) / 5
		}
		palette[6], palette[7] = -127, 127
	}
	bits := channelIndices(block)
	for i := range out {
		out[i] = int8(palette[bits>>(3*i)&0x7])
	}
}
