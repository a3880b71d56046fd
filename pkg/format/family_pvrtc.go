//go:build !texel_nopvrtc

package format

const pvrtcEnabled = true
