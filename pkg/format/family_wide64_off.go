//go:build texel_no64bit

package format

const wide64Enabled = false
