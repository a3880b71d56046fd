package etc

var opaqueAlpha = [16]uint8{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}

// Intensity tables of the individual and differential modes. Row 0 is used
// by punch-through blocks whose opaque bit is clear.
var intensity = [2][8][4]int{
	{
		{0, 8, 0, -8}, {0, 17, 0, -17}, {0, 29, 0, -29}, {0, 42, 0, -42},
		{0, 60, 0, -60}, {0, 80, 0, -80}, {0, 106, 0, -106}, {0, 183, 0, -183},
	},
	{
		{2, 8, -2, -8}, {5, 17, -5, -17}, {9, 29, -9, -29}, {13, 42, -13, -42},
		{18, 60, -18, -60}, {24, 80, -24, -80}, {33, 106, -33, -106}, {47, 183, -47, -183},
	},
}

// distance is the T and H mode modifier table.
var distance = [8]int{3, 6, 11, 16, 23, 32, 41, 64}

var deltas = [8]int{0, 1, 2, 3, -4, -3, -2, -1}

// subBlock maps a texel to its half of the block; row 1 is the flipped
// (stacked) split.
var subBlock = [2][16]int{
	{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1},
	{0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1},
}

const (
	modeETC1 = iota
	modeT
	modeH
	modePlanar
)

func clampByte(v int) uint8 {
	return uint8(max(0, min(255, v)))
}

func expand4(v uint64) int { v &= 0xf; return int(v<<4 | v) }
func expand5(v uint64) int { v &= 0x1f; return int(v<<3 | v>>2) }
func expand6(v uint64) int { v &= 0x3f; return int(v<<2 | v>>4) }
func expand7(v uint64) int { v &= 0x7f; return int(v<<1 | v>>6) }

// pixelIndex returns the 2-bit table index of texel i.
func pixelIndex(v uint64, i int) int {
	return int(v>>i&1 | v>>(15+i)&2)
}

// decodeColor decodes one 64-bit ETC2 color block into row-major RGBA
// texels. alpha holds the per-texel alpha in block order.
func decodeColor(v uint64, punch bool, alpha *[16]uint8, out *[16][4]uint8) {
	diff := v >> 33 & 1
	flip := v >> 32 & 1
	opaque := 1
	if punch {
		opaque = int(diff)
	}

	var c [4][3]int
	mode := modeETC1
	if !punch && diff == 0 {
		for ch := 0; ch < 3; ch++ {
			c[0][ch] = expand4(v >> (60 - 8*ch))
			c[1][ch] = expand4(v >> (56 - 8*ch))
		}
	} else {
		for ch := 0; ch < 3; ch++ {
			a := int(v >> (59 - 8*ch) & 0x1f)
			b := a + deltas[v>>(56-8*ch)&7]
			if b < 0 || b > 31 {
				mode = modeT + ch
				break
			}
			c[0][ch] = expand5(uint64(a))
			c[1][ch] = expand5(uint64(b))
		}
	}

	set := func(i int, rgb [3]int) {
		t := &out[(i%4)*4+i/4]
		t[0], t[1], t[2], t[3] = clampByte(rgb[0]), clampByte(rgb[1]), clampByte(rgb[2]), alpha[i]
	}
	paint := func(i int, rgb [3]int) {
		if opaque == 0 && pixelIndex(v, i) == 2 {
			out[(i%4)*4+i/4] = [4]uint8{}
			return
		}
		set(i, rgb)
	}

	switch mode {
	case modeETC1:
		codes := [2][4]int{intensity[opaque][v>>37&7], intensity[opaque][v>>34&7]}
		for i := 0; i < 16; i++ {
			half := subBlock[flip][i]
			shift := codes[half][pixelIndex(v, i)]
			base := c[half]
			paint(i, [3]int{base[0] + shift, base[1] + shift, base[2] + shift})
		}
	case modeT:
		c[0] = [3]int{expand4(v>>57&0xc | v>>56&3), expand4(v >> 52), expand4(v >> 48)}
		c[2] = [3]int{expand4(v >> 44), expand4(v >> 40), expand4(v >> 36)}
		d := distance[v>>33&6|v>>32&1]
		for ch := 0; ch < 3; ch++ {
			c[1][ch] = c[2][ch] + d
			c[3][ch] = c[2][ch] - d
		}
		for i := 0; i < 16; i++ {
			paint(i, c[pixelIndex(v, i)])
		}
	case modeH:
		c[0] = [3]int{expand4(v >> 59), expand4(v>>55&0xe | v>>52&1), expand4(v>>48&8 | v>>47&7)}
		c[2] = [3]int{expand4(v >> 43), expand4(v >> 39), expand4(v >> 35)}
		idx := v>>32&4 | v>>31&2
		if c[0][0]<<16+c[0][1]<<8+c[0][2] >= c[2][0]<<16+c[2][1]<<8+c[2][2] {
			idx++
		}
		d := distance[idx]
		for ch := 0; ch < 3; ch++ {
			c[0][ch], c[1][ch] = c[0][ch]+d, c[0][ch]-d
			c[2][ch], c[3][ch] = c[2][ch]+d, c[2][ch]-d
		}
		for i := 0; i < 16; i++ {
			paint(i, c[pixelIndex(v, i)])
		}
	case modePlanar:
		o := [3]int{expand6(v >> 57), expand7(v>>50&0x40 | v>>49&0x3f), expand6(v>>43&0x20 | v>>40&0x18 | v>>39&7)}
		h := [3]int{expand6(v>>33&0x3e | v>>32&1), expand7(v >> 25), expand6(v >> 19)}
		w := [3]int{expand6(v >> 13), expand7(v >> 6), expand6(v)}
		for i := 0; i < 16; i++ {
			x, y := i/4, i%4
			var rgb [3]int
			for ch := range rgb {
				rgb[ch] = (x*(h[ch]-o[ch]) + y*(w[ch]-o[ch]) + 4*o[ch] + 2) >> 2
			}
			set(i, rgb)
		}
	}
}
