package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZstdRoundTrip(t *testing.T) {
	counter := make([]byte, 4096)
	for i := range counter {
		counter[i] = byte(i)
	}
	for name, in := range map[string][]byte{
		"empty":   {},
		"texels":  bytes.Repeat([]byte{255, 0, 0, 255}, 1024),
		"counter": counter,
	} {
		t.Run(name, func(t *testing.T) {
			z, err := Zstd(in)
			require.NoError(t, err)
			out, err := Unzstd(z)
			require.NoError(t, err)
			assert.Equal(t, len(in), len(out))
			assert.True(t, bytes.Equal(in, out))
		})
	}
	z, err := Zstd(bytes.Repeat([]byte{7}, 1<<16))
	require.NoError(t, err)
	assert.Less(t, len(z), 1024)
}

func TestUnzstdGarbage(t *testing.T) {
	_, err := Unzstd([]byte("not a zstd frame"))
	assert.Error(t, err)
}
