package format

import "github.com/gogpu/gputypes"

// gpuFormats lists the formats that have a WebGPU counterpart in gputypes.
var gpuFormats = map[Format]gputypes.TextureFormat{
	R8Unorm:            gputypes.TextureFormatR8Unorm,
	R8G8B8A8Unorm:      gputypes.TextureFormatRGBA8Unorm,
	R8G8B8A8Srgb:       gputypes.TextureFormatRGBA8UnormSrgb,
	B8G8R8A8Unorm:      gputypes.TextureFormatBGRA8Unorm,
	B8G8R8A8Srgb:       gputypes.TextureFormatBGRA8UnormSrgb,
	R32Sfloat:          gputypes.TextureFormatR32Float,
	R32G32Sfloat:       gputypes.TextureFormatRG32Float,
	R32G32B32A32Sfloat: gputypes.TextureFormatRGBA32Float,
	D24UnormS8Uint:     gputypes.TextureFormatDepth24PlusStencil8,
}

var fromGPU = func() map[gputypes.TextureFormat]Format {
	m := make(map[gputypes.TextureFormat]Format, len(gpuFormats))
	for f, g := range gpuFormats {
		m[g] = f
	}
	return m
}()

// ToGPU returns the WebGPU texture format matching f.
func ToGPU(f Format) (gputypes.TextureFormat, bool) {
	g, ok := gpuFormats[f]
	if !ok {
		return gputypes.TextureFormatUndefined, false
	}
	return g, true
}

// FromGPU returns the format matching a WebGPU texture format, or Undefined.
func FromGPU(g gputypes.TextureFormat) Format {
	return fromGPU[g]
}

// GPUExtent converts an extent to the WebGPU copy/size descriptor.
func (e Extent) GPUExtent() gputypes.Extent3D {
	return gputypes.Extent3D{Width: e.W, Height: e.H, DepthOrArrayLayers: e.D}
}
