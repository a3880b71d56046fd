package format

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jpfielding/texel.go/pkg/pack"
)

var componentRE = regexp.MustCompile(`([RGBADSXE])(\d+)`)

func init() {
	infos[Undefined] = Info{Name: names[Undefined]}
	for i := 1; i < Count; i++ {
		f := Format(i)
		if strings.Contains(names[f], "_BLOCK") {
			infos[f] = compressedInfo(names[f])
		} else {
			infos[f] = plainInfo(names[f])
		}
	}
	// Compressed formats sample as their decompressed target, so their
	// sample shape is only known once every plain format exists.
	for i := 1; i < Count; i++ {
		info := &infos[i]
		if info.IsCompressed() && info.Decompressed != Undefined {
			t := &infos[info.Decompressed]
			info.SampleType = t.SampleType
			info.NarrowSampleSize = uint8(int(info.Components) * t.SampleType.Size())
			info.WideSampleSize = t.WideSampleSize
		}
		finishCaps(info)
	}
}

func parseNumeric(tok string) Numeric {
	for n, s := range numericNames {
		if s == tok {
			return Numeric(n)
		}
	}
	return NumericNone
}

func channelOf(letter byte) Channel {
	switch letter {
	case 'R':
		return ChannelR
	case 'G':
		return ChannelG
	case 'B':
		return ChannelB
	case 'A':
		return ChannelA
	case 'D':
		return ChannelDepth
	case 'S':
		return ChannelStencil
	default:
		return ChannelPad
	}
}

// plainInfo derives an uncompressed descriptor from its Vulkan-style name.
// Packed layouts list components from the most significant bit down,
// byte-aligned ones in memory order.
func plainInfo(name string) Info {
	info := Info{Name: name, BlockExtent: Ext(1, 1, 1), Enabled: true}
	toks := strings.Split(name, "_")

	var layout []string
	for _, t := range toks {
		switch {
		case strings.HasPrefix(t, "PACK"):
			n, _ := strconv.Atoi(strings.TrimPrefix(t, "PACK"))
			info.Packed, info.PackedBits = true, uint8(n)
		case parseNumeric(t) != NumericNone:
			if info.Numeric == NumericNone {
				info.Numeric = parseNumeric(t)
			}
		default:
			layout = append(layout, t)
		}
	}

	var comps []Component
	total := 0
	for _, m := range componentRE.FindAllStringSubmatch(strings.Join(layout, ""), -1) {
		bits, _ := strconv.Atoi(m[2])
		comps = append(comps, Component{Channel: channelOf(m[1][0]), Bits: uint8(bits)})
		total += bits
	}

	if name == "E5B9G9R9_UFLOAT_PACK32" {
		// The exponent is not a channel; treat it as padding on top.
		comps[0].Channel = ChannelPad
		info.SharedExponent = true
	}

	if info.Packed {
		off := int(info.PackedBits)
		for i := range comps {
			off -= int(comps[i].Bits)
			comps[i].Offset = uint8(off)
		}
		// Store least significant first, matching memory order.
		for l, r := 0, len(comps)-1; l < r; l, r = l+1, r-1 {
			comps[l], comps[r] = comps[r], comps[l]
		}
		info.BlockSize = uint32(info.PackedBits) / 8
	} else {
		off := 0
		for i := range comps {
			comps[i].Offset = uint8(off)
			off += int(comps[i].Bits)
		}
		info.BlockSize = uint32((total + 7) / 8)
	}
	// Depth/stencil pairs are stored in their own planes on most hardware;
	// these are the Vulkan texel block sizes.
	switch name {
	case "D16_UNORM_S8_UINT":
		info.BlockSize = 3
	case "D32_SFLOAT_S8_UINT":
		info.BlockSize = 5
	}

	info.NComps = uint8(len(comps))
	copy(info.Comps[:], comps)
	for _, c := range comps {
		switch c.Channel {
		case ChannelR, ChannelG, ChannelB, ChannelA:
			info.Components++
			info.ComponentBits[c.Channel] = c.Bits
			if info.Packed {
				info.Masks[c.Channel] = pack.MustField(uint(info.PackedBits), uint(c.Bits), uint(c.Offset)).Mask()
			} else {
				info.Masks[c.Channel] = pack.Mask(uint(c.Bits))
			}
		case ChannelDepth:
			info.Depth = true
		case ChannelStencil:
			info.Stencil = true
		}
	}

	info.Signed = info.Numeric == Snorm || info.Numeric == Sscaled ||
		info.Numeric == Sint || info.Numeric == Sfloat
	wide := info.ComponentBits[0]
	switch {
	case info.Numeric == Uint && wide == 64:
		info.SampleType = Uint64
	case info.Numeric == Uint:
		info.SampleType = Uint32
	case info.Numeric == Sint && wide == 64:
		info.SampleType = Int64
	case info.Numeric == Sint:
		info.SampleType = Int32
	case info.Numeric == Sfloat && wide == 64:
		info.SampleType = Float64
	default:
		info.SampleType = Float32
	}
	size := info.SampleType.Size()
	info.NarrowSampleSize = uint8(int(info.Components) * size)
	info.WideSampleSize = uint8(4 * size)

	switch {
	case info.Numeric == Uscaled || info.Numeric == Sscaled:
		info.Enabled = scaledEnabled
	case wide == 64:
		info.Enabled = wide64Enabled
	}
	return info
}

// compressedInfo describes a block-compressed format.
func compressedInfo(name string) Info {
	info := Info{Name: name, Enabled: true, BlockExtent: Ext(4, 4, 1)}
	toks := strings.Split(name, "_")
	for _, t := range toks {
		if n := parseNumeric(t); n != NumericNone {
			info.Numeric = n
			break
		}
	}
	srgb := info.Numeric == Srgb
	snorm := info.Numeric == Snorm
	rgba8 := R8G8B8A8Unorm
	if srgb {
		rgba8 = R8G8B8A8Srgb
	}
	pick := func(u, s Format) Format {
		if snorm {
			return s
		}
		return u
	}

	switch {
	case strings.HasPrefix(name, "BC1_RGBA"):
		info.set(CompressionBC, 8, 4, rgba8)
	case strings.HasPrefix(name, "BC1_RGB"):
		info.set(CompressionBC, 8, 3, rgba8)
	case strings.HasPrefix(name, "BC2"), strings.HasPrefix(name, "BC3"):
		info.set(CompressionBC, 16, 4, rgba8)
	case strings.HasPrefix(name, "BC4"):
		info.set(CompressionBC, 8, 1, pick(R8Unorm, R8Snorm))
	case strings.HasPrefix(name, "BC5"):
		info.set(CompressionBC, 16, 2, pick(R8G8Unorm, R8G8Snorm))
	case strings.HasPrefix(name, "BC6H"):
		info.set(CompressionBPTC, 16, 3, R16G16B16A16Sfloat)
	case strings.HasPrefix(name, "BC7"):
		info.set(CompressionBPTC, 16, 4, rgba8)
	case strings.HasPrefix(name, "ETC2_R8G8B8A8"):
		info.set(CompressionETC2, 16, 4, rgba8)
	case strings.HasPrefix(name, "ETC2_R8G8B8A1"):
		info.set(CompressionETC2, 8, 4, rgba8)
	case strings.HasPrefix(name, "ETC2_R8G8B8"):
		info.set(CompressionETC2, 8, 3, rgba8)
	case strings.HasPrefix(name, "EAC_R11G11"):
		info.set(CompressionETC2, 16, 2, pick(R16G16Unorm, R16G16Snorm))
	case strings.HasPrefix(name, "EAC_R11"):
		info.set(CompressionETC2, 8, 1, pick(R16Unorm, R16Snorm))
	case strings.HasPrefix(name, "ASTC"):
		var w, h uint32
		dims := strings.SplitN(toks[1], "x", 2)
		if v, err := strconv.Atoi(dims[0]); err == nil {
			w = uint32(v)
		}
		if v, err := strconv.Atoi(dims[1]); err == nil {
			h = uint32(v)
		}
		info.set(CompressionASTC, 16, 4, rgba8)
		info.BlockExtent = Ext(w, h, 1)
		info.Enabled = astcEnabled
	case strings.HasPrefix(name, "PVRTC"):
		info.set(CompressionPVRTC, 8, 4, rgba8)
		if strings.Contains(name, "2BPP") {
			info.BlockExtent = Ext(8, 4, 1)
		}
		info.Enabled = pvrtcEnabled
	}
	info.Signed = snorm || info.Numeric == Sfloat
	return info
}

func (i *Info) set(c Compression, blockSize uint32, comps uint8, target Format) {
	i.Compression = c
	i.BlockSize = blockSize
	i.Components = comps
	i.Decompressed = target
}

func finishCaps(i *Info) {
	if !i.Enabled || i.BlockSize == 0 {
		i.Readable, i.Writeable, i.Decompressible = false, false, false
		return
	}
	if i.IsCompressed() {
		i.Decompressible = i.Decompressed != Undefined
		i.Readable = i.Decompressible
		return
	}
	plain := !i.IsDepthStencil()
	i.Readable = plain
	i.Writeable = plain
}
