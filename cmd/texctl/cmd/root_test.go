package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jpfielding/texel.go/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRoot(context.Background(), "deadbeef")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCommandTree(t *testing.T) {
	out, err := run(t)
	require.NoError(t, err)
	for _, name := range []string{"texctl:", "version:", "formats:", "info <format>:", "layout:", "convert:"} {
		assert.Contains(t, out, name)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "deadbeef\n", out)
}

func TestFormats(t *testing.T) {
	out, err := run(t, "formats", "--family", "bc")
	require.NoError(t, err)
	assert.Contains(t, out, "BC1_RGBA_UNORM_BLOCK")
	assert.NotContains(t, out, "R8G8B8A8_UNORM")
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		assert.Contains(t, line, "4x4x1")
	}
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info", "vk_format_r8g8b8a8_unorm")
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "R8G8B8A8_UNORM", got["name"])
	assert.EqualValues(t, 4, got["blockSize"])
	assert.Equal(t, "UNORM", got["numeric"])
	assert.NotEmpty(t, got["fingerprint"])
	assert.NotEmpty(t, got["gpu"])

	_, err = run(t, "info", "R9G9_BOGUS")
	assert.Error(t, err)
}

func TestInfoChannels(t *testing.T) {
	tests := []struct {
		name     string
		channels []any
		bits     []any
		masks    []any
	}{
		{"R8G8_UNORM", []any{"R", "G"}, []any{8.0, 8.0}, []any{"0xff", "0xff"}},
		{"R5G6B5_UNORM_PACK16", []any{"R", "G", "B"}, []any{5.0, 6.0, 5.0}, []any{"0xf800", "0x7e0", "0x1f"}},
		{"D32_SFLOAT", nil, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "info", tt.name)
			require.NoError(t, err)
			var got map[string]any
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			assert.Equal(t, tt.channels, asSlice(got["channels"]))
			assert.Equal(t, tt.bits, asSlice(got["bits"]))
			assert.Equal(t, tt.masks, asSlice(got["masks"]))
		})
	}
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

func TestLogFileClosed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "texctl.log")
	_, err := run(t, "version", "--log-level", "chatty", "--log-file", path)
	require.NoError(t, err)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(got), "Invalid log level")

	// once the command returns the file is closed and no longer logged to
	slog.Warn("after close")
	got, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(got), "after close")
}

func TestLayout(t *testing.T) {
	out, err := run(t, "layout", "--format", "R8G8B8A8_UNORM", "--width", "4", "--height", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "surfaces: 1 bytes: 64")
	assert.Contains(t, out, "offset=0 size=64 padded=64")

	out, err = run(t, "layout", "--dim", "cube", "--width", "8", "--height", "8", "--mips", "9", "--align", "256")
	require.NoError(t, err)
	assert.Contains(t, out, "faces: 6 mips: 4 align: 256")
	assert.Contains(t, out, "surfaces: 24")

	_, err = run(t, "layout", "--dim", "4d")
	assert.Error(t, err)
	_, err = run(t, "layout", "--mips", "0")
	assert.Error(t, err)
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.raw")
	outPath := filepath.Join(dir, "out.raw")
	require.NoError(t, os.WriteFile(in, []byte{1, 2, 3, 4, 5, 6, 7, 8}, 0o644))

	_, err := run(t, "convert", "--from", "R8G8B8A8_UNORM", "--to", "B8G8R8A8_UNORM",
		"--width", "2", "--in", in, "--out", outPath)
	require.NoError(t, err)
	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 2, 1, 4, 7, 6, 5, 8}, got)

	zin := filepath.Join(dir, "in.zst")
	z, err := util.Zstd([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(zin, z, 0o644))
	_, err = run(t, "convert", "--from", "R8G8B8A8_UNORM", "--to", "B8G8R8A8_UNORM",
		"--width", "2", "--in", zin, "--zstd-in", "--zstd-out", "--out", outPath)
	require.NoError(t, err)
	got, err = os.ReadFile(outPath)
	require.NoError(t, err)
	got, err = util.Unzstd(got)
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 2, 1, 4, 7, 6, 5, 8}, got)

	// input shorter than the surface
	_, err = run(t, "convert", "--from", "R8G8B8A8_UNORM", "--width", "4", "--in", in, "--out", outPath)
	assert.ErrorContains(t, err, "needs 16")

	_, err = run(t, "convert", "--from", "R8G8B8A8_UNORM", "--to", "BC1_RGBA_UNORM_BLOCK",
		"--width", "2", "--in", in, "--out", outPath)
	assert.Error(t, err)
}
