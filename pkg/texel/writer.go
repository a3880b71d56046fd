package texel

import "github.com/jpfielding/texel.go/pkg/format"

// maxTexelSize bounds the block size of every writeable format.
const maxTexelSize = 32

// Writer encodes samples into one writeable format.
type Writer struct {
	h *Handler
}

func NewWriter(f format.Format) Writer {
	return Writer{h: Dispatch(f)}
}

func (w Writer) Format() format.Format { return w.h.format }

// WriteTo encodes s into the first BlockSize bytes of dst. Samples of any
// kind are accepted and converted with clamping. dst is left untouched on
// error.
func (w Writer) WriteTo(s Sample, dst []byte) error {
	info := w.h.info
	if !info.Writeable || w.h.codec == nil {
		return WriteFormatNotWriteable
	}
	size := int(info.BlockSize)
	if len(dst) < size {
		return WriteDestinationTooSmall
	}
	var buf [maxTexelSize]byte
	w.h.codec.encode(s, buf[:size])
	copy(dst, buf[:size])
	return nil
}

// Encode returns the encoded bytes of s.
func (w Writer) Encode(s Sample) ([]byte, error) {
	out := make([]byte, w.h.info.BlockSize)
	if err := w.WriteTo(s, out); err != nil {
		return nil, err
	}
	return out, nil
}
