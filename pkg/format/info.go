package format

// Numeric is how a format's components are interpreted.
type Numeric uint8

const (
	NumericNone Numeric = iota
	Unorm
	Snorm
	Uscaled
	Sscaled
	Uint
	Sint
	Sfloat
	Srgb
	Ufloat
)

var numericNames = [...]string{
	NumericNone: "NONE",
	Unorm:       "UNORM",
	Snorm:       "SNORM",
	Uscaled:     "USCALED",
	Sscaled:     "SSCALED",
	Uint:        "UINT",
	Sint:        "SINT",
	Sfloat:      "SFLOAT",
	Srgb:        "SRGB",
	Ufloat:      "UFLOAT",
}

func (n Numeric) String() string {
	if int(n) < len(numericNames) {
		return numericNames[n]
	}
	return "UNKNOWN"
}

// Compression is a block compression family.
type Compression uint8

const (
	CompressionNone Compression = iota
	// CompressionBC covers BC1 through BC5, decoded in-house.
	CompressionBC
	// CompressionBPTC covers BC6H and BC7.
	CompressionBPTC
	// CompressionETC2 covers ETC2 and EAC.
	CompressionETC2
	CompressionASTC
	CompressionPVRTC
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionBC:
		return "bc"
	case CompressionBPTC:
		return "bptc"
	case CompressionETC2:
		return "etc2"
	case CompressionASTC:
		return "astc"
	case CompressionPVRTC:
		return "pvrtc"
	default:
		return "unknown"
	}
}

// SampleType is the numeric type of a decoded sample's components.
type SampleType uint8

const (
	Float32 SampleType = iota
	Int32
	Uint32
	Float64
	Int64
	Uint64
)

// Size returns the byte size of one component.
func (t SampleType) Size() int {
	switch t {
	case Float64, Int64, Uint64:
		return 8
	default:
		return 4
	}
}

func (t SampleType) String() string {
	switch t {
	case Float32:
		return "float32"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Float64:
		return "float64"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	default:
		return "unknown"
	}
}

// Channel names what a component holds.
type Channel uint8

const (
	ChannelR Channel = iota
	ChannelG
	ChannelB
	ChannelA
	ChannelDepth
	ChannelStencil
	ChannelPad
)

// Component is one field of a texel. Offset counts bits from the start of
// the texel read as a little-endian integer, so packed and byte-aligned
// layouts share one description.
type Component struct {
	Channel Channel
	Bits    uint8
	Offset  uint8
}

// Info describes one format. All values are built once at package init and
// never change.
type Info struct {
	Name string

	// BlockSize is the number of bytes in one block; 0 means the format
	// has no storage (Undefined).
	BlockSize   uint32
	BlockExtent Extent

	// Components counts the color channels a sample carries, padding
	// excluded. Comps lists the texel fields in memory order.
	Components uint8
	Comps      [4]Component
	NComps     uint8

	// ComponentBits holds the bit width of R, G, B and A.
	ComponentBits [4]uint8
	// Masks holds the R, G, B and A bits of the packed word for packed
	// formats, or the value mask of each component otherwise.
	Masks [4]uint64

	Numeric    Numeric
	Signed     bool
	Packed     bool
	PackedBits uint8
	// SharedExponent marks E5B9G9R9.
	SharedExponent bool

	Depth   bool
	Stencil bool

	Compression  Compression
	Decompressed Format

	SampleType       SampleType
	NarrowSampleSize uint8
	WideSampleSize   uint8

	// Enabled is false for families excluded by build tags.
	Enabled        bool
	Readable       bool
	Writeable      bool
	Decompressible bool
}

var infos [Count]Info

// InfoOf returns the descriptor of f. Unknown values return the Undefined
// descriptor.
func InfoOf(f Format) *Info {
	if int(f) >= Count {
		return &infos[Undefined]
	}
	return &infos[f]
}

// Info returns f's descriptor; shorthand for InfoOf(f).
func (f Format) Info() *Info { return InfoOf(f) }

// IsCompressed reports whether the format uses multi-texel blocks.
func (i *Info) IsCompressed() bool { return i.Compression != CompressionNone }

// IsDepthStencil reports whether the format has a depth or stencil aspect.
func (i *Info) IsDepthStencil() bool { return i.Depth || i.Stencil }

// BlockTexelCount returns the number of texels in one block.
func (i *Info) BlockTexelCount() int { return int(i.BlockExtent.Volume()) }

// BlocksFor returns how many blocks cover a texel extent.
func (i *Info) BlocksFor(texels Extent) Extent {
	return texels.CeilDiv(i.BlockExtent)
}

// SurfaceSize returns the byte size of a surface of the given texel
// extent, counting partial blocks as whole ones.
func (i *Info) SurfaceSize(texels Extent) uint64 {
	return i.BlocksFor(texels).Volume() * uint64(i.BlockSize)
}
