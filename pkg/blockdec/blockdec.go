// Package blockdec is the boundary between the texel engine and block
// decoders for the compression families it does not decode itself.
//
// A decoder turns a grid of compressed blocks into texels of the format's
// decompressed target. Decoders register per format, usually from an
// init function in their own package, so a program opts into a family by
// importing its decoder:
//
//	import _ "github.com/jpfielding/texel.go/pkg/blockdec/etc"
package blockdec

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jpfielding/texel.go/pkg/format"
)

var (
	ErrShortSource = errors.New("blockdec: source shorter than the block grid")
	ErrShortDest   = errors.New("blockdec: destination shorter than the decoded grid")
	ErrBadStride   = errors.New("blockdec: stride narrower than a row of texels")
)

// Decoder decodes a widthInBlocks x heightInBlocks grid of compressed
// blocks, stored row-major and tightly packed in src. Decoded texels go to
// dst as rows of dstStride bytes, texelSize bytes per texel, laid out in the
// format's decompressed target.
type Decoder interface {
	Decode(src []byte, widthInBlocks, heightInBlocks int, dst []byte, dstStride, texelSize int) error
}

// DecoderFunc adapts a function to Decoder.
type DecoderFunc func(src []byte, widthInBlocks, heightInBlocks int, dst []byte, dstStride, texelSize int) error

func (fn DecoderFunc) Decode(src []byte, widthInBlocks, heightInBlocks int, dst []byte, dstStride, texelSize int) error {
	return fn(src, widthInBlocks, heightInBlocks, dst, dstStride, texelSize)
}

var (
	mu       sync.RWMutex
	decoders = map[format.Format]Decoder{}
)

// Register installs d for f, replacing any earlier decoder.
func Register(f format.Format, d Decoder) {
	mu.Lock()
	defer mu.Unlock()
	decoders[f] = d
}

// Unregister removes the decoder for f.
func Unregister(f format.Format) {
	mu.Lock()
	defer mu.Unlock()
	delete(decoders, f)
}

// Lookup returns the decoder registered for f.
func Lookup(f format.Format) (Decoder, bool) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := decoders[f]
	return d, ok
}

// Registered lists the formats that have a decoder, in enum order.
func Registered() []format.Format {
	mu.RLock()
	defer mu.RUnlock()
	var out []format.Format
	for _, f := range format.All() {
		if _, ok := decoders[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// Check validates a Decode call for f before any byte is touched. Decoders
// call it first so every implementation agrees on the sizing rules.
func Check(f format.Format, src []byte, widthInBlocks, heightInBlocks int, dst []byte, dstStride, texelSize int) error {
	info := format.InfoOf(f)
	blocks := widthInBlocks * heightInBlocks
	if len(src) < blocks*int(info.BlockSize) {
		return fmt.Errorf("%w: %s needs %d bytes, have %d", ErrShortSource, f, blocks*int(info.BlockSize), len(src))
	}
	rowTexels := widthInBlocks * int(info.BlockExtent.W)
	if dstStride < rowTexels*texelSize {
		return fmt.Errorf("%w: %d < %d", ErrBadStride, dstStride, rowTexels*texelSize)
	}
	rows := heightInBlocks * int(info.BlockExtent.H)
	if rows > 0 && len(dst) < (rows-1)*dstStride+rowTexels*texelSize {
		return fmt.Errorf("%w: %s", ErrShortDest, f)
	}
	return nil
}
