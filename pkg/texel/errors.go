package texel

// SampleError is the closed set of BlockSampler failures.
type SampleError uint8

const (
	SampleNone SampleError = iota
	SampleSourceTooSmall
	SampleDestinationTooSmall
	SampleDepthStencilUnsupported
	SampleInvalidFormat
	SampleBloxelOutOfRange
)

func (e SampleError) Error() string {
	switch e {
	case SampleNone:
		return "texel: sample: none"
	case SampleSourceTooSmall:
		return "texel: sample: source too small"
	case SampleDestinationTooSmall:
		return "texel: sample: destination too small"
	case SampleDepthStencilUnsupported:
		return "texel: sample: depth/stencil unsupported"
	case SampleInvalidFormat:
		return "texel: sample: invalid format"
	case SampleBloxelOutOfRange:
		return "texel: sample: bloxel out of range"
	default:
		return "texel: sample: unknown error"
	}
}

// WriteError is the closed set of Writer failures.
type WriteError uint8

const (
	WriteNone WriteError = iota
	WriteFormatNotWriteable
	WriteDestinationTooSmall
)

func (e WriteError) Error() string {
	switch e {
	case WriteNone:
		return "texel: write: none"
	case WriteFormatNotWriteable:
		return "texel: write: format not writeable"
	case WriteDestinationTooSmall:
		return "texel: write: destination too small"
	default:
		return "texel: write: unknown error"
	}
}

// DecompressError is the closed set of Decompressor failures.
type DecompressError uint8

const (
	DecompressNone DecompressError = iota
	DecompressFormatNotDecompressible
	DecompressSourceTooSmall
	DecompressDestinationTooSmall
)

func (e DecompressError) Error() string {
	switch e {
	case DecompressNone:
		return "texel: decompress: none"
	case DecompressFormatNotDecompressible:
		return "texel: decompress: format not decompressible"
	case DecompressSourceTooSmall:
		return "texel: decompress: source too small"
	case DecompressDestinationTooSmall:
		return "texel: decompress: destination too small"
	default:
		return "texel: decompress: unknown error"
	}
}

// ConvertError is the closed set of Converter failures.
type ConvertError uint8

const (
	ConvertNone ConvertError = iota
	ConvertSourceTooSmall
	ConvertDestinationTooSmall
	ConvertDepthStencilUnsupported
	ConvertInvalidFormat
	ConvertFormatNotWriteable
	ConvertSourceFormatsMismatch
	ConvertDestinationFormatsMismatch
	ConvertSourceAndDestinationNotEquivalent
)

func (e ConvertError) Error() string {
	switch e {
	case ConvertNone:
		return "texel: convert: none"
	case ConvertSourceTooSmall:
		return "texel: convert: source too small"
	case ConvertDestinationTooSmall:
		return "texel: convert: destination too small"
	case ConvertDepthStencilUnsupported:
		return "texel: convert: depth/stencil unsupported"
	case ConvertInvalidFormat:
		return "texel: convert: invalid format"
	case ConvertFormatNotWriteable:
		return "texel: convert: format not writeable"
	case ConvertSourceFormatsMismatch:
		return "texel: convert: source formats mismatch"
	case ConvertDestinationFormatsMismatch:
		return "texel: convert: destination formats mismatch"
	case ConvertSourceAndDestinationNotEquivalent:
		return "texel: convert: source and destination not equivalent"
	default:
		return "texel: convert: unknown error"
	}
}

// OpError is the closed set of clear, flip and copy failures.
type OpError uint8

const (
	OpNone OpError = iota
	OpInvalidFormat
	OpDepthStencilUnsupported
	OpFormatsMismatch
	OpRegionOutOfBounds
	OpRegionNotBlockAligned
	OpSourceTooSmall
	OpDestinationTooSmall
	OpFormatNotWriteable
)

func (e OpError) Error() string {
	switch e {
	case OpNone:
		return "texel: op: none"
	case OpInvalidFormat:
		return "texel: op: invalid format"
	case OpDepthStencilUnsupported:
		return "texel: op: depth/stencil unsupported"
	case OpFormatsMismatch:
		return "texel: op: formats mismatch"
	case OpRegionOutOfBounds:
		return "texel: op: region out of bounds"
	case OpRegionNotBlockAligned:
		return "texel: op: region not block aligned"
	case OpSourceTooSmall:
		return "texel: op: source too small"
	case OpDestinationTooSmall:
		return "texel: op: destination too small"
	case OpFormatNotWriteable:
		return "texel: op: format not writeable"
	default:
		return "texel: op: unknown error"
	}
}

// sampleToConvert maps a sampler failure onto the converter's error set.
func sampleToConvert(err error) error {
	switch err {
	case nil:
		return nil
	case SampleSourceTooSmall:
		return ConvertSourceTooSmall
	case SampleDestinationTooSmall:
		return ConvertDestinationTooSmall
	case SampleDepthStencilUnsupported:
		return ConvertDepthStencilUnsupported
	default:
		return ConvertInvalidFormat
	}
}

func writeToConvert(err error) error {
	switch err {
	case nil:
		return nil
	case WriteDestinationTooSmall:
		return ConvertDestinationTooSmall
	default:
		return ConvertFormatNotWriteable
	}
}

func decompressToConvert(err error) error {
	switch err {
	case nil:
		return nil
	case DecompressSourceTooSmall:
		return ConvertSourceTooSmall
	case DecompressDestinationTooSmall:
		return ConvertDestinationTooSmall
	default:
		return ConvertInvalidFormat
	}
}
