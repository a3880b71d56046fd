package texel

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/jpfielding/texel.go/pkg/format"
)

// Sample is one decoded texel in canonical RGBA order. Kind selects which
// of the six numeric vectors the lanes hold; components a format lacks
// read as (0, 0, 0, 1).
type Sample struct {
	Kind  format.SampleType
	lanes [4]uint64
}

func F32(r, g, b, a float32) Sample {
	return Sample{Kind: format.Float32, lanes: [4]uint64{
		uint64(math.Float32bits(r)), uint64(math.Float32bits(g)),
		uint64(math.Float32bits(b)), uint64(math.Float32bits(a)),
	}}
}

func F64(r, g, b, a float64) Sample {
	return Sample{Kind: format.Float64, lanes: [4]uint64{
		math.Float64bits(r), math.Float64bits(g), math.Float64bits(b), math.Float64bits(a),
	}}
}

func I32(r, g, b, a int32) Sample {
	return Sample{Kind: format.Int32, lanes: [4]uint64{
		uint64(int64(r)), uint64(int64(g)), uint64(int64(b)), uint64(int64(a)),
	}}
}

func I64(r, g, b, a int64) Sample {
	return Sample{Kind: format.Int64, lanes: [4]uint64{uint64(r), uint64(g), uint64(b), uint64(a)}}
}

func U32(r, g, b, a uint32) Sample {
	return Sample{Kind: format.Uint32, lanes: [4]uint64{uint64(r), uint64(g), uint64(b), uint64(a)}}
}

func U64(r, g, b, a uint64) Sample {
	return Sample{Kind: format.Uint64, lanes: [4]uint64{r, g, b, a}}
}

// zeroSample returns (0, 0, 0, 1) of the given kind.
func zeroSample(kind format.SampleType) Sample {
	s := Sample{Kind: kind}
	switch kind {
	case format.Float32:
		s.lanes[3] = uint64(math.Float32bits(1))
	case format.Float64:
		s.lanes[3] = math.Float64bits(1)
	default:
		s.lanes[3] = 1
	}
	return s
}

func (s Sample) isFloat() bool {
	return s.Kind == format.Float32 || s.Kind == format.Float64
}

func (s Sample) isSigned() bool {
	return s.Kind == format.Int32 || s.Kind == format.Int64
}

// Float returns lane i as a float64, whatever the kind.
func (s Sample) Float(i int) float64 {
	v := s.lanes[i]
	switch s.Kind {
	case format.Float32:
		return float64(math.Float32frombits(uint32(v)))
	case format.Float64:
		return math.Float64frombits(v)
	case format.Int32, format.Int64:
		return float64(int64(v))
	default:
		return float64(v)
	}
}

// Int returns lane i as an int64. Floats round to nearest and saturate;
// NaN becomes 0.
func (s Sample) Int(i int) int64 {
	v := s.lanes[i]
	switch s.Kind {
	case format.Float32, format.Float64:
		return floatToInt(s.Float(i))
	case format.Int32, format.Int64:
		return int64(v)
	default:
		if v > math.MaxInt64 {
			return math.MaxInt64
		}
		return int64(v)
	}
}

// Uint returns lane i as a uint64. Negative values clamp to 0.
func (s Sample) Uint(i int) uint64 {
	v := s.lanes[i]
	switch s.Kind {
	case format.Float32, format.Float64:
		f := s.Float(i)
		switch {
		case !(f > 0):
			return 0
		case f >= math.MaxUint64:
			return math.MaxUint64
		}
		return uint64(math.Round(f))
	case format.Int32, format.Int64:
		if int64(v) < 0 {
			return 0
		}
		return v
	default:
		return v
	}
}

func floatToInt(f float64) int64 {
	switch {
	case f != f:
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(math.Round(f))
}

func (s Sample) Float32() [4]float32 {
	var out [4]float32
	for i := range out {
		out[i] = float32(s.Float(i))
	}
	return out
}

func (s Sample) Float64() [4]float64 {
	var out [4]float64
	for i := range out {
		out[i] = s.Float(i)
	}
	return out
}

func (s Sample) Int32() [4]int32 {
	var out [4]int32
	for i := range out {
		out[i] = int32(max(min(s.Int(i), math.MaxInt32), math.MinInt32))
	}
	return out
}

func (s Sample) Int64() [4]int64 {
	var out [4]int64
	for i := range out {
		out[i] = s.Int(i)
	}
	return out
}

func (s Sample) Uint32() [4]uint32 {
	var out [4]uint32
	for i := range out {
		out[i] = uint32(min(s.Uint(i), math.MaxUint32))
	}
	return out
}

func (s Sample) Uint64() [4]uint64 {
	var out [4]uint64
	for i := range out {
		out[i] = s.Uint(i)
	}
	return out
}

// As converts s to another kind, clamping into the target range.
func (s Sample) As(kind format.SampleType) Sample {
	if kind == s.Kind {
		return s
	}
	switch kind {
	case format.Float32:
		v := s.Float32()
		return F32(v[0], v[1], v[2], v[3])
	case format.Float64:
		v := s.Float64()
		return F64(v[0], v[1], v[2], v[3])
	case format.Int32:
		v := s.Int32()
		return I32(v[0], v[1], v[2], v[3])
	case format.Int64:
		v := s.Int64()
		return I64(v[0], v[1], v[2], v[3])
	case format.Uint32:
		v := s.Uint32()
		return U32(v[0], v[1], v[2], v[3])
	default:
		v := s.Uint64()
		return U64(v[0], v[1], v[2], v[3])
	}
}

func (s *Sample) setFloat(i int, f float64) {
	switch s.Kind {
	case format.Float64:
		s.lanes[i] = math.Float64bits(f)
	default:
		s.lanes[i] = uint64(math.Float32bits(float32(f)))
	}
}

// PutBytes writes the first n lanes as little-endian values of the
// sample's kind and returns the number of bytes written.
func (s Sample) PutBytes(dst []byte, n int) int {
	size := s.Kind.Size()
	for i := 0; i < n; i++ {
		b := dst[i*size:]
		if size == 4 {
			binary.LittleEndian.PutUint32(b, uint32(s.lanes[i]))
		} else {
			binary.LittleEndian.PutUint64(b, s.lanes[i])
		}
	}
	return n * size
}

// SampleFromBytes reads n lanes written by PutBytes. Missing lanes take
// their (0, 0, 0, 1) defaults.
func SampleFromBytes(kind format.SampleType, src []byte, n int) Sample {
	s := zeroSample(kind)
	size := kind.Size()
	for i := 0; i < n; i++ {
		b := src[i*size:]
		if size == 4 {
			v := binary.LittleEndian.Uint32(b)
			if kind == format.Int32 {
				s.lanes[i] = uint64(int64(int32(v)))
			} else {
				s.lanes[i] = uint64(v)
			}
		} else {
			s.lanes[i] = binary.LittleEndian.Uint64(b)
		}
	}
	return s
}

func (s Sample) String() string {
	switch {
	case s.isFloat():
		return fmt.Sprintf("%s%v", s.Kind, s.Float64())
	case s.isSigned():
		return fmt.Sprintf("%s%v", s.Kind, s.Int64())
	default:
		return fmt.Sprintf("%s%v", s.Kind, s.Uint64())
	}
}
