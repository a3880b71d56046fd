package pack

import (
	"errors"
	"fmt"
)

var (
	ErrFieldContainer = errors.New("pack: container must be 8, 16, 32 or 64 bits")
	ErrFieldWidth     = errors.New("pack: field width must be non-zero")
	ErrFieldOverflow  = errors.New("pack: field exceeds its container")
)

// Field addresses Width bits at bit Offset inside a Container-bit integer.
type Field struct {
	Container uint8
	Width     uint8
	Offset    uint8
}

// NewField validates the (container, width, offset) triple.
func NewField(container, width, offset uint) (Field, error) {
	switch container {
	case 8, 16, 32, 64:
	default:
		return Field{}, fmt.Errorf("%w: %d", ErrFieldContainer, container)
	}
	if width == 0 {
		return Field{}, ErrFieldWidth
	}
	if width+offset > container {
		return Field{}, fmt.Errorf("%w: %d+%d > %d", ErrFieldOverflow, width, offset, container)
	}
	return Field{Container: uint8(container), Width: uint8(width), Offset: uint8(offset)}, nil
}

// MustField is NewField for static tables; it panics on a bad triple.
func MustField(container, width, offset uint) Field {
	f, err := NewField(container, width, offset)
	if err != nil {
		panic(err)
	}
	return f
}

// Mask returns the field's bits in place.
func (f Field) Mask() uint64 {
	return Mask(uint(f.Width)) << f.Offset
}

// Extract returns the field's value from word.
func (f Field) Extract(word uint64) uint64 {
	return (word >> f.Offset) & Mask(uint(f.Width))
}

// Insert stores v into the field of word. v is clamped to the field width.
func (f Field) Insert(word, v uint64) uint64 {
	v = UintPack(v, uint(f.Width))
	return word&^f.Mask() | v<<f.Offset
}
