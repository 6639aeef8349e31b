package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/jpfielding/swim.go/pkg/accel"
	"github.com/jpfielding/swim.go/pkg/codec"
	"github.com/jpfielding/swim.go/pkg/util"
	"github.com/spf13/cobra"
)

// NewInfoCmd prints the decoded layout of an image file
func NewInfoCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Describe an image file",
		Long:  "Decodes an image and prints its size, raw channel layout and a content fingerprint.",
		RunE: func(cmd *cobra.Command, args []string) error {
			filePath, _ := cmd.Flags().GetString("file")
			if filePath == "" && len(args) > 0 {
				filePath = args[0]
			}
			if filePath == "" {
				return fmt.Errorf("file path is required. Use --file flag or provide as argument")
			}
			fd, err := os.Open(filePath)
			if err != nil {
				return fmt.Errorf("failed to open file: %w", err)
			}
			defer fd.Close()
			pix, w, h, ch, err := codec.DecodeRaw(bufio.NewReader(fd))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			format := "unknown"
			if f, err := codec.FormatFromPath(filePath); err == nil {
				format = f.String()
			}
			fmt.Fprintf(out, "File: %s\n", filePath)
			fmt.Fprintf(out, "Format: %s\n", format)
			fmt.Fprintf(out, "Size: %dx%d\n", w, h)
			fmt.Fprintf(out, "Channels: %d (%s)\n", ch, layoutName(ch))
			fmt.Fprintf(out, "Fingerprint: %s\n", util.ContentUUID(pix))
			fmt.Fprintf(out, "Backend: %s\n", accel.Backend())
			return nil
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringP("file", "f", "", "image file path")
	return cmd
}

func layoutName(ch int) string {
	switch ch {
	case 1:
		return "Intensity"
	case 2:
		return "IntensityAlpha"
	case 3:
		return "RGB"
	default:
		return "RGBA"
	}
}
