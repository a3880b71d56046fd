package texture

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/jpfielding/texel.go/pkg/format"
)

// SurfaceInfo locates one surface inside the storage bytes. Size is the
// texel data; Padded rounds it up to the least common multiple of the
// block size and the texture alignment, so every offset stays on a block
// boundary even for 3 or 6 byte blocks.
type SurfaceInfo struct {
	Offset uint64
	Size   uint64
	Padded uint64
}

type allocation struct {
	id       uuid.UUID
	params   Params
	info     *format.Info
	mips     []format.Extent
	surfaces []SurfaceInfo
	data     []byte

	strong atomic.Int64
	dead   atomic.Bool
	mu     sync.RWMutex
}

// Storage is a value handle on one texture allocation. Copies share the
// allocation; the zero Storage is invalid.
type Storage struct {
	a *allocation
}

// NewStorage lays out every surface of p in one pass and copies initial
// into the surface bytes, truncating or zero padding it. Params that fail
// Normalize produce an invalid Storage.
func NewStorage(p Params, initial []byte) Storage {
	p, ok := p.Normalize()
	if !ok {
		return Storage{}
	}
	info := format.InfoOf(p.Format)
	a := &allocation{
		id:       uuid.New(),
		params:   p,
		info:     info,
		mips:     make([]format.Extent, p.Mips),
		surfaces: make([]SurfaceInfo, 0, p.SurfaceCount()),
	}
	for m := range a.mips {
		a.mips[m] = p.MipExtent(uint32(m))
	}
	align := lcm(uint64(info.BlockSize), uint64(p.Alignment))
	var off uint64
	for range p.ArraySize {
		for range p.Faces {
			for m := range a.mips {
				size := info.SurfaceSize(a.mips[m])
				padded := (size + align - 1) / align * align
				a.surfaces = append(a.surfaces, SurfaceInfo{Offset: off, Size: size, Padded: padded})
				off += padded
			}
		}
	}
	a.data = make([]byte, off)
	copy(a.data, initial)
	a.strong.Store(1)
	return Storage{a: a}
}

func lcm(a, b uint64) uint64 {
	x, y := a, b
	for y != 0 {
		x, y = y, x%y
	}
	return a / x * b
}

func (s Storage) IsValid() bool {
	return s.a != nil && !s.a.dead.Load()
}

// ID is random per allocation and exists for log correlation.
func (s Storage) ID() uuid.UUID {
	if !s.IsValid() {
		return uuid.Nil
	}
	return s.a.id
}

// Params returns the normalized params.
func (s Storage) Params() Params {
	if !s.IsValid() {
		return Params{}
	}
	return s.a.params
}

func (s Storage) Format() format.Format {
	return s.Params().Format
}

// MipExtent returns the texel extent of mip m, or zero when m is out of range.
func (s Storage) MipExtent(m int) format.Extent {
	if !s.IsValid() || m < 0 || m >= len(s.a.mips) {
		return format.Extent{}
	}
	return s.a.mips[m]
}

func (s Storage) SurfaceCount() int {
	if !s.IsValid() {
		return 0
	}
	return len(s.a.surfaces)
}

// SizeInBytes is the sum of the padded surface sizes.
func (s Storage) SizeInBytes() uint64 {
	if !s.IsValid() {
		return 0
	}
	return uint64(len(s.a.data))
}

// SurfaceIndex maps (array slice, face, mip) to its position in the
// surface table: faces*mips*array + mips*face + mip.
func (s Storage) SurfaceIndex(array, face, mip int) (int, bool) {
	if !s.IsValid() {
		return 0, false
	}
	p := s.a.params
	if array < 0 || face < 0 || mip < 0 ||
		array >= int(p.ArraySize) || face >= int(p.Faces) || mip >= int(p.Mips) {
		return 0, false
	}
	return s.index(array, face, mip), true
}

func (s Storage) index(array, face, mip int) int {
	faces, mips := int(s.a.params.Faces), int(s.a.params.Mips)
	return faces*mips*array + mips*face + mip
}

// SurfaceInfo returns the table entry at index i.
func (s Storage) SurfaceInfo(i int) (SurfaceInfo, bool) {
	if !s.IsValid() || i < 0 || i >= len(s.a.surfaces) {
		return SurfaceInfo{}, false
	}
	return s.a.surfaces[i], true
}

// Surface returns the texel bytes of one surface, or nil when any
// coordinate is out of range.
func (s Storage) Surface(array, face, mip int) []byte {
	i, ok := s.SurfaceIndex(array, face, mip)
	if !ok {
		return nil
	}
	return s.bytesAt(i)
}

// SurfaceUnsafe skips the coordinate checks; the caller has validated
// them. Bad coordinates panic or alias a neighbouring surface.
func (s Storage) SurfaceUnsafe(array, face, mip int) []byte {
	return s.bytesAt(s.index(array, face, mip))
}

func (s Storage) bytesAt(i int) []byte {
	si := s.a.surfaces[i]
	return s.a.data[si.Offset : si.Offset+si.Size : si.Offset+si.Size]
}

// VolumeSlice returns the bytes of block slice z of a surface. Only 3D
// textures have more than one slice.
func (s Storage) VolumeSlice(array, face, mip, z int) []byte {
	i, ok := s.SurfaceIndex(array, face, mip)
	if !ok {
		return nil
	}
	blocks := s.a.info.BlocksFor(s.a.mips[mip])
	if z < 0 || z >= int(blocks.D) {
		return nil
	}
	n := uint64(blocks.W) * uint64(blocks.H) * uint64(s.a.info.BlockSize)
	start := s.a.surfaces[i].Offset + uint64(z)*n
	return s.a.data[start : start+n : start+n]
}

// Bytes returns every surface, padding included.
func (s Storage) Bytes() []byte {
	if !s.IsValid() {
		return nil
	}
	return s.a.data
}

func (s Storage) strongCount() int64 {
	if s.a == nil {
		return 0
	}
	return s.a.strong.Load()
}

func (s Storage) addRef() {
	s.a.strong.Add(1)
}

// decRef reports whether the count reached zero. Freeing is left to the
// caller.
func (s Storage) decRef() bool {
	return s.a.strong.Add(-1) == 0
}

// destroy releases the bytes and invalidates every handle on the allocation.
func (s Storage) destroy() {
	if s.a == nil {
		return
	}
	s.a.dead.Store(true)
	s.a.data = nil
	s.a.surfaces = nil
	s.a.mips = nil
}
