package cmd

import (
	"context"
	"fmt"

	"github.com/jpfielding/swim.go/pkg/codec"
	"github.com/jpfielding/swim.go/pkg/swim"
	"github.com/jpfielding/swim.go/pkg/swim/interp"
	"github.com/spf13/cobra"
)

// NewSampleCmd interpolates one sub-pixel location of an image
func NewSampleCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Interpolate an image at a sub-pixel location",
		Long:  "Reads an image as RGBA and prints the interpolated 0..255 value at (x, y). Locations outside the image follow --edge.",
		RunE: func(cmd *cobra.Command, args []string) error {
			filePath, _ := cmd.Flags().GetString("file")
			x, _ := cmd.Flags().GetFloat64("x")
			y, _ := cmd.Flags().GetFloat64("y")
			name, _ := cmd.Flags().GetString("interp")
			edge, _ := cmd.Flags().GetString("edge")
			if filePath == "" && len(args) > 0 {
				filePath = args[0]
			}
			if filePath == "" {
				return fmt.Errorf("file path is required. Use --file flag or provide as argument")
			}
			kind, err := interp.ParseEdgeKind(edge)
			if err != nil {
				return err
			}
			ip, err := interp.New(name, interp.ModeOf[swim.RGBA, float64](kind))
			if err != nil {
				return err
			}
			img, err := codec.ReadFile[swim.RGBA](filePath)
			if err != nil {
				return err
			}
			px := ip.Interpolate(x, y, swim.Cast[swim.RGBA, uint8, float64](img))
			fmt.Fprintf(cmd.OutOrStdout(), "%s at (%g, %g): %s\n", name, x, y, px)
			return nil
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringP("file", "f", "", "image file path")
	pf.Float64("x", 0, "column")
	pf.Float64("y", 0, "row")
	pf.String("interp", "bilinear", "interpolator (nearest|bilinear|bicubic)")
	pf.String("edge", "constant", "edge mode (constant|edge|symmetric|reflect|wrap)")
	return cmd
}
