package etc

var modifiers = [16][8]int{
	{-3, -6, -9, -15, 2, 5, 8, 14},
	{-3, -7, -10, -13, 2, 6, 9, 12},
	{-2, -5, -8, -13, 1, 4, 7, 12},
	{-2, -4, -6, -13, 1, 3, 5, 12},
	{-3, -6, -8, -12, 2, 5, 7, 11},
	{-3, -7, -9, -11, 2, 6, 8, 10},
	{-4, -7, -8, -11, 3, 6, 7, 10},
	{-3, -5, -8, -11, 2, 4, 7, 10},
	{-2, -6, -8, -10, 1, 5, 7, 9},
	{-2, -5, -8, -10, 1, 4, 7, 9},
	{-2, -4, -8, -10, 1, 3, 7, 9},
	{-2, -5, -7, -10, 1, 4, 6, 9},
	{-3, -4, -7, -10, 2, 3, 6, 9},
	{-1, -2, -3, -10, 0, 1, 2, 9},
	{-4, -6, -8, -9, 3, 5, 7, 8},
	{-3, -5, -7, -9, 2, 4, 6, 8},
}

// header splits an alpha/EAC block into base codeword, multiplier and
// modifier row.
func header(v uint64) (base, mul int, mods [8]int) {
	return int(v >> 56), int(v >> 52 & 0xf), modifiers[v>>48&0xf]
}

// modifierIndex returns the 3-bit index of texel i; texel 0 holds the
// most significant bits.
func modifierIndex(v uint64, i int) int {
	return int(v >> (45 - 3*i) & 7)
}

// decodeAlpha decodes the 8-bit alpha half of an ETC2 RGBA block.
func decodeAlpha(v uint64) [16]uint8 {
	base, mul, mods := header(v)
	var out [16]uint8
	for i := range out {
		out[i] = clampByte(base + mods[modifierIndex(v, i)]*mul)
	}
	return out
}

// decodeEAC decodes an 11-bit EAC channel block and widens every value to
// 16 bits, in block order.
func decodeEAC(v uint64, signed bool) [16]uint16 {
	base, mul, mods := header(v)
	if mul == 0 {
		mul = 1
	} else {
		mul *= 8
	}
	var out [16]uint16
	if !signed {
		for i := range out {
			u := max(0, min(2047, base*8+4+mods[modifierIndex(v, i)]*mul))
			out[i] = uint16(u<<5 | u>>6)
		}
		return out
	}
	sbase := max(int(int8(base)), -127)
	for i := range out {
		s := max(-1023, min(1023, sbase*8+mods[modifierIndex(v, i)]*mul))
		if s >= 0 {
			out[i] = uint16(s<<5 | s>>5)
		} else {
			out[i] = uint16(int16(-(-s<<5 | -s>>5)))
		}
	}
	return out
}
