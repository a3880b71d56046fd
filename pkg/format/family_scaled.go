//go:build !texel_noscaled

package format

const scaledEnabled = true
