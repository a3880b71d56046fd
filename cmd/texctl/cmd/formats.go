package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jpfielding/texel.go/pkg/format"
	"github.com/spf13/cobra"
)

// NewFormatsCmd lists the format registry
func NewFormatsCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formats",
		Short: "list texel formats",
		Long:  "Lists every enabled format with its block shape, numeric kind and capabilities.",
		RunE: func(cmd *cobra.Command, args []string) error {
			family, _ := cmd.Flags().GetString("family")
			all, _ := cmd.Flags().GetBool("all")
			w := cmd.OutOrStdout()
			for _, f := range format.All() {
				info := f.Info()
				if !all && !info.Enabled {
					continue
				}
				if family != "" && !strings.EqualFold(family, info.Compression.String()) {
					continue
				}
				fmt.Fprintf(w, "%-36s %3dB %-7s %-7s %s\n", f, info.BlockSize, info.BlockExtent,
					info.Numeric, caps(info))
			}
			return nil
		},
	}
	pf := cmd.PersistentFlags()
	pf.String("family", "", "only this compression family (none|bc|bptc|etc2|astc|pvrtc)")
	pf.Bool("all", false, "include formats disabled at build time")
	return cmd
}

func caps(info *format.Info) string {
	var c []string
	if info.Readable {
		c = append(c, "r")
	}
	if info.Writeable {
		c = append(c, "w")
	}
	if info.Decompressible {
		c = append(c, "d")
	}
	if info.IsDepthStencil() {
		c = append(c, "ds")
	}
	if len(c) == 0 {
		return "-"
	}
	return strings.Join(c, ",")
}

type infoOut struct {
	Name         string   `json:"name"`
	Value        uint16   `json:"value"`
	Fingerprint  string   `json:"fingerprint"`
	BlockSize    uint32   `json:"blockSize"`
	BlockExtent  string   `json:"blockExtent"`
	Components   uint32   `json:"components"`
	Numeric      string   `json:"numeric"`
	Channels     []string `json:"channels"`
	Bits         []uint32 `json:"bits"`
	Masks        []string `json:"masks"`
	Packed       bool     `json:"packed"`
	Compression  string   `json:"compression"`
	Decompressed string   `json:"decompressed,omitempty"`
	SampleType   string   `json:"sampleType"`
	NarrowSize   uint32   `json:"narrowSampleSize"`
	WideSize     uint32   `json:"wideSampleSize"`
	Caps         string   `json:"caps"`
	Enabled      bool     `json:"enabled"`
	GPU          string   `json:"gpu,omitempty"`
}

// NewInfoCmd prints one format descriptor
func NewInfoCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <format>",
		Short: "describe a texel format",
		Long:  "Prints the registry descriptor of a format. Names follow VkFormat, with or without the VK_FORMAT_ prefix.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ok := format.Parse(args[0])
			if !ok {
				return fmt.Errorf("unknown format %q", args[0])
			}
			info := f.Info()
			out := infoOut{
				Name:        f.String(),
				Value:       uint16(f),
				Fingerprint: format.Fingerprint(f).String(),
				BlockSize:   uint32(info.BlockSize),
				BlockExtent: info.BlockExtent.String(),
				Components:  uint32(info.Components),
				Numeric:     info.Numeric.String(),
				Packed:      info.Packed,
				Compression: info.Compression.String(),
				SampleType:  info.SampleType.String(),
				NarrowSize:  uint32(info.NarrowSampleSize),
				WideSize:    uint32(info.WideSampleSize),
				Caps:        caps(info),
				Enabled:     info.Enabled,
			}
			for i, ch := range []string{"R", "G", "B", "A"} {
				if info.ComponentBits[i] == 0 {
					continue
				}
				out.Channels = append(out.Channels, ch)
				out.Bits = append(out.Bits, uint32(info.ComponentBits[i]))
				out.Masks = append(out.Masks, fmt.Sprintf("%#x", info.Masks[i]))
			}
			if info.Decompressible {
				out.Decompressed = info.Decompressed.String()
			}
			if g, ok := format.ToGPU(f); ok {
				out.GPU = fmt.Sprint(g)
			}
			switch kind, _ := cmd.Flags().GetString("format"); kind {
			case "text":
				fmt.Fprintf(cmd.OutOrStdout(), "%+v\n", out)
			default:
				j, _ := json.MarshalIndent(out, "", "  ")
				fmt.Fprintln(cmd.OutOrStdout(), string(j))
			}
			return nil
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringP("format", "f", "json", "output format (text|json)")
	return cmd
}
