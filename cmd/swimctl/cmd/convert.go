package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jpfielding/swim.go/pkg/codec"
	"github.com/jpfielding/swim.go/pkg/swim"
	"github.com/jpfielding/swim.go/pkg/swim/filter"
	"github.com/jpfielding/swim.go/pkg/swim/interp"
	"github.com/spf13/cobra"
)

// convertOpts is the parsed convert flag set
type convertOpts struct {
	In, Out  string
	Format   codec.Format
	Quality  int
	Flip     string
	Gray     bool
	Scale    float32
	Offset   float32
	Width    int
	Height   int
	Interp   string
	Edge     interp.EdgeKind
	Box      bool
	Filter   string
	resizing bool
}

// NewConvertCmd creates the convert cobra command
func NewConvertCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Transform and re-encode an image",
		Long: "Reads an image, optionally flips, resizes, filters and rescales it in [0,1] float space, then writes it. " +
			"Scale and offset apply as v*scale+offset before clipping.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := parseConvertOpts(cmd)
			if err != nil {
				return err
			}
			slog.DebugContext(ctx, "convert", "in", opts.In, "out", opts.Out, "format", opts.Format.String())
			switch {
			case opts.Gray:
				return runConvert[swim.Intensity](opts)
			case opts.Format.Codec().SupportsAlpha():
				return runConvert[swim.RGBA](opts)
			default:
				return runConvert[swim.RGB](opts)
			}
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringP("in", "i", "", "input image path")
	pf.StringP("out", "o", "", "output image path")
	pf.String("format", "", "output format (png|jpeg|bmp), default from --out extension")
	pf.Int("quality", codec.DefaultQuality, "jpeg quality 1..100")
	pf.String("flip", "", "flip the image (lr|ud|180)")
	pf.Bool("gray", false, "convert to intensity")
	pf.Float32("scale", 1, "multiply every channel")
	pf.Float32("offset", 0, "add to every channel after scaling")
	pf.String("resize", "", "resize to WxH")
	pf.String("interp", "bilinear", "resize interpolator (nearest|bilinear|bicubic)")
	pf.String("edge", "edge", "edge mode (constant|edge|symmetric|reflect|wrap)")
	pf.Bool("box", false, "resize with the Catmull-Rom area filter instead of --interp")
	pf.String("filter", "", "apply a kernel (sobel-h|sobel-v|laplacian|gaussian|box3|box5)")
	return cmd
}

func parseConvertOpts(cmd *cobra.Command) (convertOpts, error) {
	var opts convertOpts
	flags := cmd.Flags()
	opts.In, _ = flags.GetString("in")
	opts.Out, _ = flags.GetString("out")
	opts.Quality, _ = flags.GetInt("quality")
	opts.Flip, _ = flags.GetString("flip")
	opts.Gray, _ = flags.GetBool("gray")
	opts.Scale, _ = flags.GetFloat32("scale")
	opts.Offset, _ = flags.GetFloat32("offset")
	opts.Interp, _ = flags.GetString("interp")
	opts.Box, _ = flags.GetBool("box")
	opts.Filter, _ = flags.GetString("filter")
	if opts.In == "" || opts.Out == "" {
		return opts, fmt.Errorf("--in and --out are required")
	}

	var err error
	if name, _ := flags.GetString("format"); name != "" {
		opts.Format, err = codec.ParseFormat(name)
	} else {
		opts.Format, err = codec.FormatFromPath(opts.Out)
	}
	if err != nil {
		return opts, err
	}
	edge, _ := flags.GetString("edge")
	if opts.Edge, err = interp.ParseEdgeKind(edge); err != nil {
		return opts, err
	}
	if size, _ := flags.GetString("resize"); size != "" {
		if _, err := fmt.Sscanf(size, "%dx%d", &opts.Width, &opts.Height); err != nil {
			return opts, fmt.Errorf("%w: resize %q: %v", swim.ErrInvalidDimensions, size, err)
		}
		opts.resizing = true
	}
	switch opts.Flip {
	case "", "lr", "ud", "180":
	default:
		return opts, fmt.Errorf("unknown flip %q", opts.Flip)
	}
	return opts, nil
}

func runConvert[F swim.Format](opts convertOpts) error {
	img, err := codec.ReadFile[F](opts.In)
	if err != nil {
		return err
	}
	switch opts.Flip {
	case "lr":
		img = img.FlipLR()
	case "ud":
		img = img.FlipUD()
	case "180":
		img = img.Rot180()
	}
	if opts.resizing && opts.Box {
		if img, err = codec.Resize(img, opts.Width, opts.Height); err != nil {
			return err
		}
	}

	work := codec.ToFloat[F, float32](img)
	mode := interp.ModeOf[F, float32](opts.Edge)
	if opts.resizing && !opts.Box {
		ip, err := interp.New(opts.Interp, mode)
		if err != nil {
			return err
		}
		if work, err = interp.Resize(work, opts.Width, opts.Height, ip); err != nil {
			return err
		}
	}
	if opts.Filter != "" {
		k, err := filter.ByName[float32](opts.Filter)
		if err != nil {
			return err
		}
		work = filter.Convolve(work, k, mode)
	}
	if opts.Scale != 1 {
		work.MulScalarAssign(opts.Scale)
	}
	if opts.Offset != 0 {
		work.AddScalarAssign(opts.Offset)
	}
	if err := codec.WriteFloatFile(opts.Out, work, opts.Format, &codec.Options{Quality: opts.Quality}); err != nil {
		return err
	}
	slog.Info("converted", "in", opts.In, "out", opts.Out, "size", fmt.Sprintf("%dx%d", work.Width(), work.Height()), "format", swim.FormatName[F]())
	return nil
}
