//go:build !texel_noastc

package format

const astcEnabled = true
