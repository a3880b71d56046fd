// Package texel converts between stored texel bytes and canonical samples:
// sampling, writing, block decompression, surface conversion and the
// clear, flip and copy surface operations.
//
// Every entry point resolves its format through Dispatch, a table of
// handlers built once at init. Formats without storage, excluded by build
// tags or out of range resolve to a shared no-op handler, so callers never
// need to special-case them.
package texel

import (
	"github.com/jpfielding/texel.go/pkg/blockdec"
	"github.com/jpfielding/texel.go/pkg/format"
)

// Handler is the code path specialized for one format.
type Handler struct {
	format format.Format
	info   *format.Info
	codec  codec
	direct blockdec.Decoder
}

var (
	noop     = &Handler{format: format.Undefined, info: format.InfoOf(format.Undefined)}
	handlers [format.Count]*Handler
)

func init() {
	for i := range handlers {
		f := format.Format(i)
		info := format.InfoOf(f)
		if f == format.Undefined || !info.Enabled || info.BlockSize == 0 {
			handlers[i] = noop
			continue
		}
		h := &Handler{format: f, info: info}
		switch {
		case info.IsCompressed():
			if d, ok := bcDecoder(f); ok {
				h.direct = d
			}
		case info.Readable || info.Writeable:
			h.codec = newCodec(info)
		}
		handlers[i] = h
	}
}

// Dispatch returns the handler for f. Undefined, excluded and unknown
// values return the no-op handler.
func Dispatch(f format.Format) *Handler {
	if int(f) >= len(handlers) {
		return noop
	}
	return handlers[f]
}

func (h *Handler) Format() format.Format { return h.format }

func (h *Handler) Info() *format.Info { return h.info }

// Noop reports whether h is the shared fallback handler.
func (h *Handler) Noop() bool { return h == noop }

// Decoder returns the block decoder for a compressed format: the in-house
// BC1-BC5 decoder, or whatever blockdec has registered for the format.
func (h *Handler) Decoder() (blockdec.Decoder, bool) {
	if !h.info.IsCompressed() || !h.info.Decompressible {
		return nil, false
	}
	if h.direct != nil {
		return h.direct, true
	}
	return blockdec.Lookup(h.format)
}

// Delegated reports whether the format's blocks are decoded outside this
// package.
func (h *Handler) Delegated() bool {
	return h.info.IsCompressed() && h.direct == nil
}
