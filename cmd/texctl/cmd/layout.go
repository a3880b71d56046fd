package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jpfielding/texel.go/pkg/format"
	"github.com/jpfielding/texel.go/pkg/texture"
	"github.com/spf13/cobra"
)

// paramsFlags registers the texture shape flags shared by layout and convert.
func paramsFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.Uint32("width", 1, "mip 0 width in texels")
	pf.Uint32("height", 1, "mip 0 height in texels")
	pf.Uint32("depth", 1, "mip 0 depth in texels, 3d only")
	pf.String("dim", "2d", "dimension (1d|2d|3d|cube)")
	pf.Uint32("array", 1, "array size")
	pf.Uint32("mips", 1, "mip count, clamped to the full chain")
	pf.Uint32("align", 1, "surface byte alignment")
}

func readParams(cmd *cobra.Command, f format.Format) (texture.Params, error) {
	w, _ := cmd.Flags().GetUint32("width")
	h, _ := cmd.Flags().GetUint32("height")
	d, _ := cmd.Flags().GetUint32("depth")
	dimName, _ := cmd.Flags().GetString("dim")
	array, _ := cmd.Flags().GetUint32("array")
	mips, _ := cmd.Flags().GetUint32("mips")
	align, _ := cmd.Flags().GetUint32("align")
	dim, ok := texture.ParseDimension(dimName)
	if !ok {
		return texture.Params{}, fmt.Errorf("unknown dimension %q", dimName)
	}
	p := texture.Params{
		Format:    f,
		Dimension: dim,
		Extent:    format.Ext(w, h, d),
		ArraySize: array,
		Faces:     1,
		Mips:      mips,
		Alignment: align,
	}
	if dim == texture.DimCube {
		p.Faces = 6
	}
	return p, nil
}

func parseFormat(name string) (format.Format, error) {
	f, ok := format.Parse(name)
	if !ok {
		return format.Undefined, fmt.Errorf("unknown format %q", name)
	}
	return f, nil
}

// NewLayoutCmd prints the storage layout of a texture
func NewLayoutCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "print a texture storage layout",
		Long:  "Allocates a texture and prints the offset and size of every surface in array, face, mip order.",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("format")
			f, err := parseFormat(name)
			if err != nil {
				return err
			}
			p, err := readParams(cmd, f)
			if err != nil {
				return err
			}
			s := texture.NewStorage(p, nil)
			if !s.IsValid() {
				return fmt.Errorf("invalid texture params %+v", p)
			}
			n := s.Params()
			slog.DebugContext(ctx, "layout", slog.String("id", s.ID().String()), slog.Uint64("bytes", s.SizeInBytes()))

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "id:       %s\n", s.ID())
			fmt.Fprintf(w, "layout:   %s\n", n.LayoutID())
			fmt.Fprintf(w, "format:   %s\n", n.Format)
			fmt.Fprintf(w, "dim:      %s\n", n.Dimension)
			fmt.Fprintf(w, "extent:   %s\n", n.Extent)
			fmt.Fprintf(w, "array:    %d faces: %d mips: %d align: %d\n", n.ArraySize, n.Faces, n.Mips, n.Alignment)
			fmt.Fprintf(w, "surfaces: %d bytes: %d\n", s.SurfaceCount(), s.SizeInBytes())
			for a := range int(n.ArraySize) {
				for fc := range int(n.Faces) {
					for m := range int(n.Mips) {
						i, _ := s.SurfaceIndex(a, fc, m)
						si, _ := s.SurfaceInfo(i)
						fmt.Fprintf(w, "%4d a=%d f=%d m=%d %-12s offset=%d size=%d padded=%d\n",
							i, a, fc, m, s.MipExtent(m), si.Offset, si.Size, si.Padded)
					}
				}
			}
			return nil
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringP("format", "f", "R8G8B8A8_UNORM", "texel format")
	paramsFlags(cmd)
	return cmd
}
