package codec

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"

	"github.com/jpfielding/swim.go/pkg/swim"
)

// hasAlpha reports whether a raw layout carries alpha (gray+alpha or RGBA)
func hasAlpha(channels int) bool {
	return channels == 2 || channels == 4
}

func checkRaw(pix []uint8, width, height, channels int) error {
	if channels < 1 || channels > 4 {
		return fmt.Errorf("%w: %d channels", ErrUnsupportedLayout, channels)
	}
	if width <= 0 || height <= 0 || len(pix) != width*height*channels {
		return fmt.Errorf("%w: %dx%dx%d with %d bytes", swim.ErrInvalidDimensions, width, height, channels, len(pix))
	}
	return nil
}

// EncodeRaw encodes interleaved 8-bit samples with 1 (gray), 2 (gray+alpha),
// 3 (RGB) or 4 (RGBA) channels.
func EncodeRaw(w io.Writer, pix []uint8, width, height, channels int, f Format, opts *Options) error {
	c := f.Codec()
	if c == nil {
		return fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
	if err := checkRaw(pix, width, height, channels); err != nil {
		return err
	}
	if hasAlpha(channels) && !c.SupportsAlpha() {
		return fmt.Errorf("%w: %s", ErrAlphaNotSupported, c.Name())
	}
	slog.Debug("encoding image", "codec", c.Name(), "width", width, "height", height, "channels", channels)
	if err := c.Encode(w, rawToImage(pix, width, height, channels), opts); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFailedToWrite, c.Name(), err)
	}
	return nil
}

// DecodeRaw decodes any supported format, detected from the stream header.
// Opaque color images come back as 3 channels, translucent ones as 4 and
// grayscale as 1.
func DecodeRaw(r io.Reader) (pix []uint8, width, height, channels int, err error) {
	return decodeRaw(r, nil)
}

// decodeRaw decodes with c, or sniffs the format when c is nil
func decodeRaw(r io.Reader, c Codec) (pix []uint8, width, height, channels int, err error) {
	var img image.Image
	name := ""
	if c != nil {
		name = c.Name()
		img, err = c.Decode(r)
	} else {
		img, name, err = image.Decode(r)
	}
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("%w: %w", ErrFailedToRead, err)
	}
	pix, width, height, channels = imageToRaw(img)
	slog.Debug("decoded image", "codec", name, "width", width, "height", height, "channels", channels)
	return pix, width, height, channels, nil
}

func rawToImage(pix []uint8, width, height, channels int) image.Image {
	rect := image.Rect(0, 0, width, height)
	switch channels {
	case 1:
		return &image.Gray{Pix: pix, Stride: width, Rect: rect}
	case 4:
		return &image.NRGBA{Pix: pix, Stride: 4 * width, Rect: rect}
	}
	out := image.NewNRGBA(rect)
	for i, j := 0, 0; j < len(out.Pix); i, j = i+channels, j+4 {
		if channels == 2 {
			out.Pix[j], out.Pix[j+1], out.Pix[j+2], out.Pix[j+3] = pix[i], pix[i], pix[i], pix[i+1]
		} else {
			out.Pix[j], out.Pix[j+1], out.Pix[j+2], out.Pix[j+3] = pix[i], pix[i+1], pix[i+2], 0xff
		}
	}
	return out
}

func imageToRaw(img image.Image) ([]uint8, int, int, int) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	switch m := img.(type) {
	case *image.Gray:
		pix := make([]uint8, 0, width*height)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			off := m.PixOffset(b.Min.X, y)
			pix = append(pix, m.Pix[off:off+width]...)
		}
		return pix, width, height, 1
	case *image.Gray16:
		pix := make([]uint8, 0, width*height)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				pix = append(pix, color.GrayModel.Convert(m.At(x, y)).(color.Gray).Y)
			}
		}
		return pix, width, height, 1
	}
	channels := 4
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		channels = 3
	}
	pix := make([]uint8, 0, width*height*channels)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			pix = append(pix, c.R, c.G, c.B)
			if channels == 4 {
				pix = append(pix, c.A)
			}
		}
	}
	return pix, width, height, channels
}
