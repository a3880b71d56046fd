package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "github.com/jpfielding/texel.go/pkg/blockdec/etc"
	"github.com/jpfielding/texel.go/pkg/texture"
	"github.com/jpfielding/texel.go/pkg/util"
	"github.com/spf13/cobra"
)

// NewConvertCmd converts raw texture bytes between formats
func NewConvertCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "convert raw texture bytes between formats",
		Long:  "Reads tightly packed surfaces laid out as texctl layout prints them, converts every surface and writes the result.",
		RunE: func(cmd *cobra.Command, args []string) error {
			fromName, _ := cmd.Flags().GetString("from")
			toName, _ := cmd.Flags().GetString("to")
			inPath, _ := cmd.Flags().GetString("in")
			outPath, _ := cmd.Flags().GetString("out")
			zin, _ := cmd.Flags().GetBool("zstd-in")
			zout, _ := cmd.Flags().GetBool("zstd-out")

			from, err := parseFormat(fromName)
			if err != nil {
				return err
			}
			to, err := parseFormat(toName)
			if err != nil {
				return err
			}
			p, err := readParams(cmd, from)
			if err != nil {
				return err
			}

			in, err := openIn(inPath)
			if err != nil {
				return err
			}
			raw, err := io.ReadAll(in)
			in.Close()
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			if zin {
				if raw, err = util.Unzstd(raw); err != nil {
					return err
				}
			}
			src := texture.NewUnique(p, raw)
			if !src.IsValid() {
				return fmt.Errorf("invalid texture params %+v", p)
			}
			defer src.Close()
			if need := src.View().SizeInBytes(); uint64(len(raw)) < need {
				return fmt.Errorf("input holds %d bytes, %s needs %d", len(raw), p.Extent, need)
			}

			dst, err := texture.ConvertTo(src.View(), to)
			if err != nil {
				return fmt.Errorf("convert %s to %s: %w", from, to, err)
			}
			defer dst.Close()
			data := dst.View().Bytes()
			slog.InfoContext(ctx, "converted",
				slog.String("from", from.String()),
				slog.String("to", to.String()),
				slog.String("id", dst.ID().String()),
				slog.Int("bytes", len(data)),
				slog.String("md5", util.Digest(data)))

			if zout {
				if data, err = util.Zstd(data); err != nil {
					return err
				}
			}

			var out io.Writer = cmd.OutOrStdout()
			if outPath != "" && outPath != "-" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("failed to create output: %w", err)
				}
				defer f.Close()
				out = f
			}
			if _, err := out.Write(data); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		},
	}
	pf := cmd.PersistentFlags()
	pf.String("from", "", "source format")
	pf.String("to", "R8G8B8A8_UNORM", "destination format")
	pf.StringP("in", "i", "-", "input file, - for stdin")
	pf.StringP("out", "o", "-", "output file, - for stdout")
	pf.Bool("zstd-in", false, "input is zstd compressed")
	pf.Bool("zstd-out", false, "zstd compress the output")
	paramsFlags(cmd)
	return cmd
}
