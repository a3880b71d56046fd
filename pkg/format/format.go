// Package format is the registry of texel formats: the Format enum, modeled
// after the Vulkan VkFormat list, and one static Info descriptor per value.
package format

import "strings"

// Format identifies one texel encoding. It is only a dispatch key; the
// ordering of values carries no meaning.
type Format uint16

const (
	Undefined Format = iota
	R4G4UnormPack8
	R4G4B4A4UnormPack16
	B4G4R4A4UnormPack16
	R5G6B5UnormPack16
	B5G6R5UnormPack16
	R5G5B5A1UnormPack16
	B5G5R5A1UnormPack16
	A1R5G5B5UnormPack16
	R8Unorm
	R8Snorm
	R8Uscaled
	R8Sscaled
	R8Uint
	R8Sint
	R8Srgb
	R8G8Unorm
	R8G8Snorm
	R8G8Uscaled
	R8G8Sscaled
	R8G8Uint
	R8G8Sint
	R8G8Srgb
	R8G8B8Unorm
	R8G8B8Snorm
	R8G8B8Uscaled
	R8G8B8Sscaled
	R8G8B8Uint
	R8G8B8Sint
	R8G8B8Srgb
	B8G8R8Unorm
	B8G8R8Snorm
	B8G8R8Uscaled
	B8G8R8Sscaled
	B8G8R8Uint
	B8G8R8Sint
	B8G8R8Srgb
	R8G8B8A8Unorm
	R8G8B8A8Snorm
	R8G8B8A8Uscaled
	R8G8B8A8Sscaled
	R8G8B8A8Uint
	R8G8B8A8Sint
	R8G8B8A8Srgb
	B8G8R8A8Unorm
	B8G8R8A8Snorm
	B8G8R8A8Uscaled
	B8G8R8A8Sscaled
	B8G8R8A8Uint
	B8G8R8A8Sint
	B8G8R8A8Srgb
	A8B8G8R8UnormPack32
	A8B8G8R8SnormPack32
	A8B8G8R8UscaledPack32
	A8B8G8R8SscaledPack32
	A8B8G8R8UintPack32
	A8B8G8R8SintPack32
	A8B8G8R8SrgbPack32
	A2R10G10B10UnormPack32
	A2R10G10B10SnormPack32
	A2R10G10B10UscaledPack32
	A2R10G10B10SscaledPack32
	A2R10G10B10UintPack32
	A2R10G10B10SintPack32
	A2B10G10R10UnormPack32
	A2B10G10R10SnormPack32
	A2B10G10R10UscaledPack32
	A2B10G10R10SscaledPack32
	A2B10G10R10UintPack32
	A2B10G10R10SintPack32
	R16Unorm
	R16Snorm
	R16Uscaled
	R16Sscaled
	R16Uint
	R16Sint
	R16Sfloat
	R16G16Unorm
	R16G16Snorm
	R16G16Uscaled
	R16G16Sscaled
	R16G16Uint
	R16G16Sint
	R16G16Sfloat
	R16G16B16Unorm
	R16G16B16Snorm
	R16G16B16Uscaled
	R16G16B16Sscaled
	R16G16B16Uint
	R16G16B16Sint
	R16G16B16Sfloat
	R16G16B16A16Unorm
	R16G16B16A16Snorm
	R16G16B16A16Uscaled
	R16G16B16A16Sscaled
	R16G16B16A16Uint
	R16G16B16A16Sint
	R16G16B16A16Sfloat
	R32Uint
	R32Sint
	R32Sfloat
	R32G32Uint
	R32G32Sint
	R32G32Sfloat
	R32G32B32Uint
	R32G32B32Sint
	R32G32B32Sfloat
	R32G32B32A32Uint
	R32G32B32A32Sint
	R32G32B32A32Sfloat
	R64Uint
	R64Sint
	R64Sfloat
	R64G64Uint
	R64G64Sint
	R64G64Sfloat
	R64G64B64Uint
	R64G64B64Sint
	R64G64B64Sfloat
	R64G64B64A64Uint
	R64G64B64A64Sint
	R64G64B64A64Sfloat
	B10G11R11UfloatPack32
	E5B9G9R9UfloatPack32
	D16Unorm
	X8D24UnormPack32
	D32Sfloat
	S8Uint
	D16UnormS8Uint
	D24UnormS8Uint
	D32SfloatS8Uint
	BC1RGBUnormBlock
	BC1RGBSrgbBlock
	BC1RGBAUnormBlock
	BC1RGBASrgbBlock
	BC2UnormBlock
	BC2SrgbBlock
	BC3UnormBlock
	BC3SrgbBlock
	BC4UnormBlock
	BC4SnormBlock
	BC5UnormBlock
	BC5SnormBlock
	BC6HUfloatBlock
	BC6HSfloatBlock
	BC7UnormBlock
	BC7SrgbBlock
	ETC2R8G8B8UnormBlock
	ETC2R8G8B8SrgbBlock
	ETC2R8G8B8A1UnormBlock
	ETC2R8G8B8A1SrgbBlock
	ETC2R8G8B8A8UnormBlock
	ETC2R8G8B8A8SrgbBlock
	EacR11UnormBlock
	EacR11SnormBlock
	EacR11G11UnormBlock
	EacR11G11SnormBlock
	Astc4x4UnormBlock
	Astc4x4SrgbBlock
	Astc5x4UnormBlock
	Astc5x4SrgbBlock
	Astc5x5UnormBlock
	Astc5x5SrgbBlock
	Astc6x5UnormBlock
	Astc6x5SrgbBlock
	Astc6x6UnormBlock
	Astc6x6SrgbBlock
	Astc8x5UnormBlock
	Astc8x5SrgbBlock
	Astc8x6UnormBlock
	Astc8x6SrgbBlock
	Astc8x8UnormBlock
	Astc8x8SrgbBlock
	Astc10x5UnormBlock
	Astc10x5SrgbBlock
	Astc10x6UnormBlock
	Astc10x6SrgbBlock
	Astc10x8UnormBlock
	Astc10x8SrgbBlock
	Astc10x10UnormBlock
	Astc10x10SrgbBlock
	Astc12x10UnormBlock
	Astc12x10SrgbBlock
	Astc12x12UnormBlock
	Astc12x12SrgbBlock
	PVRTC1Bpp2UnormBlock
	PVRTC1Bpp4UnormBlock
	PVRTC2Bpp2UnormBlock
	PVRTC2Bpp4UnormBlock
	PVRTC1Bpp2SrgbBlock
	PVRTC1Bpp4SrgbBlock
	PVRTC2Bpp2SrgbBlock
	PVRTC2Bpp4SrgbBlock

	// Count is the number of Format values, Undefined included.
	Count = int(iota)
)

var names = [Count]string{
	Undefined:                "UNDEFINED",
	R4G4UnormPack8:           "R4G4_UNORM_PACK8",
	R4G4B4A4UnormPack16:      "R4G4B4A4_UNORM_PACK16",
	B4G4R4A4UnormPack16:      "B4G4R4A4_UNORM_PACK16",
	R5G6B5UnormPack16:        "R5G6B5_UNORM_PACK16",
	B5G6R5UnormPack16:        "B5G6R5_UNORM_PACK16",
	R5G5B5A1UnormPack16:      "R5G5B5A1_UNORM_PACK16",
	B5G5R5A1UnormPack16:      "B5G5R5A1_UNORM_PACK16",
	A1R5G5B5UnormPack16:      "A1R5G5B5_UNORM_PACK16",
	R8Unorm:                  "R8_UNORM",
	R8Snorm:                  "R8_SNORM",
	R8Uscaled:                "R8_USCALED",
	R8Sscaled:                "R8_SSCALED",
	R8Uint:                   "R8_UINT",
	R8Sint:                   "R8_SINT",
	R8Srgb:                   "R8_SRGB",
	R8G8Unorm:                "R8G8_UNORM",
	R8G8Snorm:                "R8G8_SNORM",
	R8G8Uscaled:              "R8G8_USCALED",
	R8G8Sscaled:              "R8G8_SSCALED",
	R8G8Uint:                 "R8G8_UINT",
	R8G8Sint:                 "R8G8_SINT",
	R8G8Srgb:                 "R8G8_SRGB",
	R8G8B8Unorm:              "R8G8B8_UNORM",
	R8G8B8Snorm:              "R8G8B8_SNORM",
	R8G8B8Uscaled:            "R8G8B8_USCALED",
	R8G8B8Sscaled:            "R8G8B8_SSCALED",
	R8G8B8Uint:               "R8G8B8_UINT",
	R8G8B8Sint:               "R8G8B8_SINT",
	R8G8B8Srgb:               "R8G8B8_SRGB",
	B8G8R8Unorm:              "B8G8R8_UNORM",
	B8G8R8Snorm:              "B8G8R8_SNORM",
	B8G8R8Uscaled:            "B8G8R8_USCALED",
	B8G8R8Sscaled:            "B8G8R8_SSCALED",
	B8G8R8Uint:               "B8G8R8_UINT",
	B8G8R8Sint:               "B8G8R8_SINT",
	B8G8R8Srgb:               "B8G8R8_SRGB",
	R8G8B8A8Unorm:            "R8G8B8A8_UNORM",
	R8G8B8A8Snorm:            "R8G8B8A8_SNORM",
	R8G8B8A8Uscaled:          "R8G8B8A8_USCALED",
	R8G8B8A8Sscaled:          "R8G8B8A8_SSCALED",
	R8G8B8A8Uint:             "R8G8B8A8_UINT",
	R8G8B8A8Sint:             "R8G8B8A8_SINT",
	R8G8B8A8Srgb:             "R8G8B8A8_SRGB",
	B8G8R8A8Unorm:            "B8G8R8A8_UNORM",
	B8G8R8A8Snorm:            "B8G8R8A8_SNORM",
	B8G8R8A8Uscaled:          "B8G8R8A8_USCALED",
	B8G8R8A8Sscaled:          "B8G8R8A8_SSCALED",
	B8G8R8A8Uint:             "B8G8R8A8_UINT",
	B8G8R8A8Sint:             "B8G8R8A8_SINT",
	B8G8R8A8Srgb:             "B8G8R8A8_SRGB",
	A8B8G8R8UnormPack32:      "A8B8G8R8_UNORM_PACK32",
	A8B8G8R8SnormPack32:      "A8B8G8R8_SNORM_PACK32",
	A8B8G8R8UscaledPack32:    "A8B8G8R8_USCALED_PACK32",
	A8B8G8R8SscaledPack32:    "A8B8G8R8_SSCALED_PACK32",
	A8B8G8R8UintPack32:       "A8B8G8R8_UINT_PACK32",
	A8B8G8R8SintPack32:       "A8B8G8R8_SINT_PACK32",
	A8B8G8R8SrgbPack32:       "A8B8G8R8_SRGB_PACK32",
	A2R10G10B10UnormPack32:   "A2R10G10B10_UNORM_PACK32",
	A2R10G10B10SnormPack32:   "A2R10G10B10_SNORM_PACK32",
	A2R10G10B10UscaledPack32: "A2R10G10B10_USCALED_PACK32",
	A2R10G10B10SscaledPack32: "A2R10G10B10_SSCALED_PACK32",
	A2R10G10B10UintPack32:    "A2R10G10B10_UINT_PACK32",
	A2R10G10B10SintPack32:    "A2R10G10B10_SINT_PACK32",
	A2B10G10R10UnormPack32:   "A2B10G10R10_UNORM_PACK32",
	A2B10G10R10SnormPack32:   "A2B10G10R10_SNORM_PACK32",
	A2B10G10R10UscaledPack32: "A2B10G10R10_USCALED_PACK32",
	A2B10G10R10SscaledPack32: "A2B10G10R10_SSCALED_PACK32",
	A2B10G10R10UintPack32:    "A2B10G10R10_UINT_PACK32",
	A2B10G10R10SintPack32:    "A2B10G10R10_SINT_PACK32",
	R16Unorm:                 "R16_UNORM",
	R16Snorm:                 "R16_SNORM",
	R16Uscaled:               "R16_USCALED",
	R16Sscaled:               "R16_SSCALED",
	R16Uint:                  "R16_UINT",
	R16Sint:                  "R16_SINT",
	R16Sfloat:                "R16_SFLOAT",
	R16G16Unorm:              "R16G16_UNORM",
	R16G16Snorm:              "R16G16_SNORM",
	R16G16Uscaled:            "R16G16_USCALED",
	R16G16Sscaled:            "R16G16_SSCALED",
	R16G16Uint:               "R16G16_UINT",
	R16G16Sint:               "R16G16_SINT",
	R16G16Sfloat:             "R16G16_SFLOAT",
	R16G16B16Unorm:           "R16G16B16_UNORM",
	R16G16B16Snorm:           "R16G16B16_SNORM",
	R16G16B16Uscaled:         "R16G16B16_USCALED",
	R16G16B16Sscaled:         "R16G16B16_SSCALED",
	R16G16B16Uint:            "R16G16B16_UINT",
	R16G16B16Sint:            "R16G16B16_SINT",
	R16G16B16Sfloat:          "R16G16B16_SFLOAT",
	R16G16B16A16Unorm:        "R16G16B16A16_UNORM",
	R16G16B16A16Snorm:        "R16G16B16A16_SNORM",
	R16G16B16A16Uscaled:      "R16G16B16A16_USCALED",
	R16G16B16A16Sscaled:      "R16G16B16A16_SSCALED",
	R16G16B16A16Uint:         "R16G16B16A16_UINT",
	R16G16B16A16Sint:         "R16G16B16A16_SINT",
	R16G16B16A16Sfloat:       "R16G16B16A16_SFLOAT",
	R32Uint:                  "R32_UINT",
	R32Sint:                  "R32_SINT",
	R32Sfloat:                "R32_SFLOAT",
	R32G32Uint:               "R32G32_UINT",
	R32G32Sint:               "R32G32_SINT",
	R32G32Sfloat:             "R32G32_SFLOAT",
	R32G32B32Uint:            "R32G32B32_UINT",
	R32G32B32Sint:            "R32G32B32_SINT",
	R32G32B32Sfloat:          "R32G32B32_SFLOAT",
	R32G32B32A32Uint:         "R32G32B32A32_UINT",
	R32G32B32A32Sint:         "R32G32B32A32_SINT",
	R32G32B32A32Sfloat:       "R32G32B32A32_SFLOAT",
	R64Uint:                  "R64_UINT",
	R64Sint:                  "R64_SINT",
	R64Sfloat:                "R64_SFLOAT",
	R64G64Uint:               "R64G64_UINT",
	R64G64Sint:               "R64G64_SINT",
	R64G64Sfloat:             "R64G64_SFLOAT",
	R64G64B64Uint:            "R64G64B64_UINT",
	R64G64B64Sint:            "R64G64B64_SINT",
	R64G64B64Sfloat:          "R64G64B64_SFLOAT",
	R64G64B64A64Uint:         "R64G64B64A64_UINT",
	R64G64B64A64Sint:         "R64G64B64A64_SINT",
	R64G64B64A64Sfloat:       "R64G64B64A64_SFLOAT",
	B10G11R11UfloatPack32:    "B10G11R11_UFLOAT_PACK32",
	E5B9G9R9UfloatPack32:     "E5B9G9R9_UFLOAT_PACK32",
	D16Unorm:                 "D16_UNORM",
	X8D24UnormPack32:         "X8_D24_UNORM_PACK32",
	D32Sfloat:                "D32_SFLOAT",
	S8Uint:                   "S8_UINT",
	D16UnormS8Uint:           "D16_UNORM_S8_UINT",
	D24UnormS8Uint:           "D24_UNORM_S8_UINT",
	D32SfloatS8Uint:          "D32_SFLOAT_S8_UINT",
	BC1RGBUnormBlock:         "BC1_RGB_UNORM_BLOCK",
	BC1RGBSrgbBlock:          "BC1_RGB_SRGB_BLOCK",
	BC1RGBAUnormBlock:        "BC1_RGBA_UNORM_BLOCK",
	BC1RGBASrgbBlock:         "BC1_RGBA_SRGB_BLOCK",
	BC2UnormBlock:            "BC2_UNORM_BLOCK",
	BC2SrgbBlock:             "BC2_SRGB_BLOCK",
	BC3UnormBlock:            "BC3_UNORM_BLOCK",
	BC3SrgbBlock:             "BC3_SRGB_BLOCK",
	BC4UnormBlock:            "BC4_UNORM_BLOCK",
	BC4SnormBlock:            "BC4_SNORM_BLOCK",
	BC5UnormBlock:            "BC5_UNORM_BLOCK",
	BC5SnormBlock:            "BC5_SNORM_BLOCK",
	BC6HUfloatBlock:          "BC6H_UFLOAT_BLOCK",
	BC6HSfloatBlock:          "BC6H_SFLOAT_BLOCK",
	BC7UnormBlock:            "BC7_UNORM_BLOCK",
	BC7SrgbBlock:             "BC7_SRGB_BLOCK",
	ETC2R8G8B8UnormBlock:     "ETC2_R8G8B8_UNORM_BLOCK",
	ETC2R8G8B8SrgbBlock:      "ETC2_R8G8B8_SRGB_BLOCK",
	ETC2R8G8B8A1UnormBlock:   "ETC2_R8G8B8A1_UNORM_BLOCK",
	ETC2R8G8B8A1SrgbBlock:    "ETC2_R8G8B8A1_SRGB_BLOCK",
	ETC2R8G8B8A8UnormBlock:   "ETC2_R8G8B8A8_UNORM_BLOCK",
	ETC2R8G8B8A8SrgbBlock:    "ETC2_R8G8B8A8_SRGB_BLOCK",
	EacR11UnormBlock:         "EAC_R11_UNORM_BLOCK",
	EacR11SnormBlock:         "EAC_R11_SNORM_BLOCK",
	EacR11G11UnormBlock:      "EAC_R11G11_UNORM_BLOCK",
	EacR11G11SnormBlock:      "EAC_R11G11_SNORM_BLOCK",
	Astc4x4UnormBlock:        "ASTC_4x4_UNORM_BLOCK",
	Astc4x4SrgbBlock:         "ASTC_4x4_SRGB_BLOCK",
	Astc5x4UnormBlock:        "ASTC_5x4_UNORM_BLOCK",
	Astc5x4SrgbBlock:         "ASTC_5x4_SRGB_BLOCK",
	Astc5x5UnormBlock:        "ASTC_5x5_UNORM_BLOCK",
	Astc5x5SrgbBlock:         "ASTC_5x5_SRGB_BLOCK",
	Astc6x5UnormBlock:        "ASTC_6x5_UNORM_BLOCK",
	Astc6x5SrgbBlock:         "ASTC_6x5_SRGB_BLOCK",
	Astc6x6UnormBlock:        "ASTC_6x6_UNORM_BLOCK",
	Astc6x6SrgbBlock:         "ASTC_6x6_SRGB_BLOCK",
	Astc8x5UnormBlock:        "ASTC_8x5_UNORM_BLOCK",
	Astc8x5SrgbBlock:         "ASTC_8x5_SRGB_BLOCK",
	Astc8x6UnormBlock:        "ASTC_8x6_UNORM_BLOCK",
	Astc8x6SrgbBlock:         "ASTC_8x6_SRGB_BLOCK",
	Astc8x8UnormBlock:        "ASTC_8x8_UNORM_BLOCK",
	Astc8x8SrgbBlock:         "ASTC_8x8_SRGB_BLOCK",
	Astc10x5UnormBlock:       "ASTC_10x5_UNORM_BLOCK",
	Astc10x5SrgbBlock:        "ASTC_10x5_SRGB_BLOCK",
	Astc10x6UnormBlock:       "ASTC_10x6_UNORM_BLOCK",
	Astc10x6SrgbBlock:        "ASTC_10x6_SRGB_BLOCK",
	Astc10x8UnormBlock:       "ASTC_10x8_UNORM_BLOCK",
	Astc10x8SrgbBlock:        "ASTC_10x8_SRGB_BLOCK",
	Astc10x10UnormBlock:      "ASTC_10x10_UNORM_BLOCK",
	Astc10x10SrgbBlock:       "ASTC_10x10_SRGB_BLOCK",
	Astc12x10UnormBlock:      "ASTC_12x10_UNORM_BLOCK",
	Astc12x10SrgbBlock:       "ASTC_12x10_SRGB_BLOCK",
	Astc12x12UnormBlock:      "ASTC_12x12_UNORM_BLOCK",
	Astc12x12SrgbBlock:       "ASTC_12x12_SRGB_BLOCK",
	PVRTC1Bpp2UnormBlock:     "PVRTC1_2BPP_UNORM_BLOCK_IMG",
	PVRTC1Bpp4UnormBlock:     "PVRTC1_4BPP_UNORM_BLOCK_IMG",
	PVRTC2Bpp2UnormBlock:     "PVRTC2_2BPP_UNORM_BLOCK_IMG",
	PVRTC2Bpp4UnormBlock:     "PVRTC2_4BPP_UNORM_BLOCK_IMG",
	PVRTC1Bpp2SrgbBlock:      "PVRTC1_2BPP_SRGB_BLOCK_IMG",
	PVRTC1Bpp4SrgbBlock:      "PVRTC1_4BPP_SRGB_BLOCK_IMG",
	PVRTC2Bpp2SrgbBlock:      "PVRTC2_2BPP_SRGB_BLOCK_IMG",
	PVRTC2Bpp4SrgbBlock:      "PVRTC2_4BPP_SRGB_BLOCK_IMG",
}

var byName = func() map[string]Format {
	m := make(map[string]Format, Count)
	for i, n := range names {
		m[strings.ToUpper(n)] = Format(i)
	}
	return m
}()

// String returns the Vulkan-style name, e.g. "R8G8B8A8_UNORM".
func (f Format) String() string {
	if int(f) < Count {
		return names[f]
	}
	return "UNKNOWN"
}

// Valid reports whether f is a known, defined format.
func (f Format) Valid() bool {
	return f != Undefined && int(f) < Count
}

// Parse looks a format up by name. The VK_FORMAT_ prefix is optional and case
// is ignored. Unknown names return Undefined and false.
func Parse(name string) (Format, bool) {
	n := strings.ToUpper(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, "VK_FORMAT_")
	f, ok := byName[n]
	return f, ok
}

// All returns every defined format in enum order.
func All() []Format {
	out := make([]Format, 0, Count-1)
	for i := 1; i < Count; i++ {
		out = append(out, Format(i))
	}
	return out
}
