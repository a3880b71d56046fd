package texel

import (
	"encoding/binary"
	"math"

	"github.com/jpfielding/texel.go/pkg/format"
	"github.com/jpfielding/texel.go/pkg/pack"
)

// codec reads and writes the single texel of an uncompressed block.
type codec interface {
	decode(src []byte) Sample
	encode(s Sample, dst []byte)
}

// lane converts one component between its stored bits and a sample lane.
type lane struct {
	numeric format.Numeric
	bits    uint
	srgb    bool
}

func (l lane) unpack(b uint64, s *Sample, i int) {
	switch l.numeric {
	case format.Unorm:
		s.setFloat(i, pack.UnormUnpack(b, l.bits))
	case format.Srgb:
		v := pack.UnormUnpack(b, l.bits)
		if l.srgb {
			v = pack.SRGBToLinear(v)
		}
		s.setFloat(i, v)
	case format.Snorm:
		s.setFloat(i, pack.SnormUnpack(b, l.bits))
	case format.Uscaled:
		s.setFloat(i, pack.UscaledUnpack(b, l.bits))
	case format.Sscaled:
		s.setFloat(i, pack.SscaledUnpack(b, l.bits))
	case format.Uint:
		s.lanes[i] = pack.UintUnpack(b, l.bits)
	case format.Sint:
		s.lanes[i] = uint64(pack.SintUnpack(b, l.bits))
	case format.Sfloat:
		switch l.bits {
		case 16:
			s.setFloat(i, float64(pack.HalfToFloat32(uint16(b))))
		case 32:
			s.setFloat(i, float64(math.Float32frombits(uint32(b))))
		default:
			s.setFloat(i, math.Float64frombits(b))
		}
	}
}

func (l lane) pack(s Sample, i int) uint64 {
	switch l.numeric {
	case format.Unorm:
		return pack.UnormPack(s.Float(i), l.bits)
	case format.Srgb:
		v := s.Float(i)
		if l.srgb {
			v = pack.LinearToSRGB(v)
		}
		return pack.UnormPack(v, l.bits)
	case format.Snorm:
		return pack.SnormPack(s.Float(i), l.bits)
	case format.Uscaled:
		return pack.UscaledPack(s.Float(i), l.bits)
	case format.Sscaled:
		return pack.SscaledPack(s.Float(i), l.bits)
	case format.Uint:
		return pack.UintPack(s.Uint(i), l.bits)
	case format.Sint:
		return pack.SintPack(s.Int(i), l.bits)
	case format.Sfloat:
		switch l.bits {
		case 16:
			return uint64(pack.HalfFromFloat32(float32(s.Float(i))))
		case 32:
			return uint64(math.Float32bits(float32(s.Float(i))))
		default:
			return math.Float64bits(s.Float(i))
		}
	}
	return 0
}

// field is one stored component and the sample lane it feeds.
type field struct {
	channel int
	lane    lane
	bits    pack.Field
}

func fieldsOf(info *format.Info) []field {
	var out []field
	for _, c := range info.Comps[:info.NComps] {
		if c.Channel > format.ChannelA {
			continue
		}
		container := uint(info.PackedBits)
		if !info.Packed {
			container = uint(c.Bits)
		}
		offset := uint(c.Offset)
		if !info.Packed {
			offset = 0
		}
		out = append(out, field{
			channel: int(c.Channel),
			lane: lane{
				numeric: info.Numeric,
				bits:    uint(c.Bits),
				srgb:    c.Channel != format.ChannelA,
			},
			bits: pack.MustField(container, uint(c.Bits), offset),
		})
	}
	return out
}

type word interface {
	uint8 | uint16 | uint32 | uint64
}

func load[T word](b []byte) uint64 {
	var v T
	switch any(v).(type) {
	case uint8:
		return uint64(b[0])
	case uint16:
		return uint64(binary.LittleEndian.Uint16(b))
	case uint32:
		return uint64(binary.LittleEndian.Uint32(b))
	default:
		return binary.LittleEndian.Uint64(b)
	}
}

func store[T word](b []byte, v uint64) {
	var z T
	switch any(z).(type) {
	case uint8:
		b[0] = uint8(v)
	case uint16:
		binary.LittleEndian.PutUint16(b, uint16(v))
	case uint32:
		binary.LittleEndian.PutUint32(b, uint32(v))
	default:
		binary.LittleEndian.PutUint64(b, v)
	}
}

func sizeOf[T word]() int {
	var z T
	switch any(z).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	default:
		return 8
	}
}

// arrayCodec handles formats whose components are whole, equally sized
// little-endian words stored one after another.
type arrayCodec[T word] struct {
	kind   format.SampleType
	fields []field
}

func (c arrayCodec[T]) decode(src []byte) Sample {
	s := zeroSample(c.kind)
	size := sizeOf[T]()
	for i, f := range c.fields {
		f.lane.unpack(load[T](src[i*size:]), &s, f.channel)
	}
	return s
}

func (c arrayCodec[T]) encode(s Sample, dst []byte) {
	size := sizeOf[T]()
	for i, f := range c.fields {
		store[T](dst[i*size:], f.lane.pack(s, f.channel))
	}
}

// packedCodec handles formats that pack every component into one word.
type packedCodec[T word] struct {
	kind   format.SampleType
	fields []field
}

func (c packedCodec[T]) decode(src []byte) Sample {
	s := zeroSample(c.kind)
	w := load[T](src)
	for _, f := range c.fields {
		f.lane.unpack(f.bits.Extract(w), &s, f.channel)
	}
	return s
}

func (c packedCodec[T]) encode(s Sample, dst []byte) {
	var w uint64
	for _, f := range c.fields {
		w = f.bits.Insert(w, f.lane.pack(s, f.channel))
	}
	store[T](dst, w)
}

// ufloatCodec handles B10G11R11_UFLOAT_PACK32.
type ufloatCodec struct{}

func (ufloatCodec) decode(src []byte) Sample {
	w := binary.LittleEndian.Uint32(src)
	return F32(pack.UFloat11Unpack(w), pack.UFloat11Unpack(w>>11), pack.UFloat10Unpack(w>>22), 1)
}

func (ufloatCodec) encode(s Sample, dst []byte) {
	v := s.Float32()
	w := pack.UFloat11Pack(v[0]) | pack.UFloat11Pack(v[1])<<11 | pack.UFloat10Pack(v[2])<<22
	binary.LittleEndian.PutUint32(dst, w)
}

// sharedExpCodec handles E5B9G9R9_UFLOAT_PACK32.
type sharedExpCodec struct{}

func (sharedExpCodec) decode(src []byte) Sample {
	r, g, b := pack.SharedExpUnpack(binary.LittleEndian.Uint32(src))
	return F32(r, g, b, 1)
}

func (sharedExpCodec) encode(s Sample, dst []byte) {
	v := s.Float32()
	binary.LittleEndian.PutUint32(dst, pack.SharedExpPack(v[0], v[1], v[2]))
}

// newCodec picks the codec for a readable uncompressed format.
func newCodec(info *format.Info) codec {
	switch {
	case info.SharedExponent:
		return sharedExpCodec{}
	case info.Numeric == format.Ufloat:
		return ufloatCodec{}
	}
	fields := fieldsOf(info)
	if len(fields) == 0 {
		return nil
	}
	if info.Packed {
		switch info.PackedBits {
		case 8:
			return packedCodec[uint8]{kind: info.SampleType, fields: fields}
		case 16:
			return packedCodec[uint16]{kind: info.SampleType, fields: fields}
		default:
			return packedCodec[uint32]{kind: info.SampleType, fields: fields}
		}
	}
	switch fields[0].lane.bits {
	case 8:
		return arrayCodec[uint8]{kind: info.SampleType, fields: fields}
	case 16:
		return arrayCodec[uint16]{kind: info.SampleType, fields: fields}
	case 32:
		return arrayCodec[uint32]{kind: info.SampleType, fields: fields}
	default:
		return arrayCodec[uint64]{kind: info.SampleType, fields: fields}
	}
}
