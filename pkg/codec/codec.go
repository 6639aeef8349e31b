// Package codec reads and writes swim images as BMP, JPEG and PNG and
// provides a high quality resize for 8-bit images.
//
// The typed functions convert between a swim format and the raw interleaved
// layouts the encoders understand: 1 (gray), 2 (gray+alpha), 3 (RGB) or
// 4 (RGBA) channels of uint8.
package codec

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/image/bmp"
)

var (
	// ErrAlphaNotSupported is returned before encoding an alpha image with a codec that drops alpha
	ErrAlphaNotSupported = errors.New("alpha channel not supported by codec")
	ErrFailedToWrite     = errors.New("failed to write image")
	ErrFailedToRead      = errors.New("failed to read image")
	// ErrUnsupportedLayout is returned for formats that cannot be mapped to gray or RGB
	ErrUnsupportedLayout = errors.New("unsupported channel layout")
	ErrUnknownFormat     = errors.New("unknown image format")
)

// Options tune encoding. A nil *Options uses defaults.
type Options struct {
	// Quality is the JPEG quality 1..100
	Quality int
}

// DefaultQuality matches image/jpeg
const DefaultQuality = jpeg.DefaultQuality

func (o *Options) quality() int {
	if o == nil || o.Quality <= 0 || o.Quality > 100 {
		return DefaultQuality
	}
	return o.Quality
}

// Codec encodes and decodes one file format.
type Codec interface {
	// Encode writes img to w
	Encode(w io.Writer, img image.Image, opts *Options) error
	// Decode reads one image from r
	Decode(r io.Reader) (image.Image, error)
	// Name returns the codec identifier (e.g., "png")
	Name() string
	// Extensions lists lower case file extensions including the dot
	Extensions() []string
	// SupportsAlpha reports whether encoded files keep an alpha channel
	SupportsAlpha() bool
}

type pngCodec struct{}

func (c *pngCodec) Encode(w io.Writer, img image.Image, _ *Options) error {
	return png.Encode(w, img)
}

func (c *pngCodec) Decode(r io.Reader) (image.Image, error) { return png.Decode(r) }
func (c *pngCodec) Name() string                            { return "png" }
func (c *pngCodec) Extensions() []string                    { return []string{".png"} }
func (c *pngCodec) SupportsAlpha() bool                     { return true }

type jpegCodec struct{}

func (c *jpegCodec) Encode(w io.Writer, img image.Image, opts *Options) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: opts.quality()})
}

func (c *jpegCodec) Decode(r io.Reader) (image.Image, error) { return jpeg.Decode(r) }
func (c *jpegCodec) Name() string                            { return "jpeg" }
func (c *jpegCodec) Extensions() []string                    { return []string{".jpg", ".jpeg"} }
func (c *jpegCodec) SupportsAlpha() bool                     { return false }

type bmpCodec struct{}

func (c *bmpCodec) Encode(w io.Writer, img image.Image, _ *Options) error {
	return bmp.Encode(w, img)
}

func (c *bmpCodec) Decode(r io.Reader) (image.Image, error) { return bmp.Decode(r) }
func (c *bmpCodec) Name() string                            { return "bmp" }
func (c *bmpCodec) Extensions() []string                    { return []string{".bmp"} }
func (c *bmpCodec) SupportsAlpha() bool                     { return false }

// Format identifies a supported file format.
type Format int

const (
	FormatUnknown Format = iota
	BMP
	JPEG
	PNG
)

var formatCodecs = map[Format]Codec{
	BMP:  &bmpCodec{},
	JPEG: &jpegCodec{},
	PNG:  &pngCodec{},
}

// formatsByName maps names and aliases to formats
var formatsByName = map[string]Format{
	"bmp":    BMP,
	"bitmap": BMP, // alias
	"jpeg":   JPEG,
	"jpg":    JPEG, // alias
	"png":    PNG,
}

func (f Format) String() string {
	if c := f.Codec(); c != nil {
		return c.Name()
	}
	return "unknown"
}

// Codec returns the implementation for f, or nil for FormatUnknown.
func (f Format) Codec() Codec {
	return formatCodecs[f]
}

// ParseFormat looks up a format by name (e.g., "png", "jpg").
func ParseFormat(name string) (Format, error) {
	if f, ok := formatsByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f, nil
	}
	return FormatUnknown, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range []Format{BMP, JPEG, PNG} {
		if slices.Contains(f.Codec().Extensions(), ext) {
			return f, nil
		}
	}
	return FormatUnknown, fmt.Errorf("%w: extension %q", ErrUnknownFormat, ext)
}
