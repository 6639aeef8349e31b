package codec

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jpfielding/swim.go/pkg/swim"
	"github.com/jpfielding/swim.go/pkg/util"
)

// source markers for fromRaw
const (
	srcLuma    = -1
	srcOpaque  = -2
	srcMissing = -3
)

// rawLayout returns, for each raw channel of the encoded layout, the index
// of the F channel that feeds it.
func rawLayout[F swim.Format]() ([]int, error) {
	var idx []int
	r, rok := swim.ChannelIndex[F](swim.ChannelRed)
	g, gok := swim.ChannelIndex[F](swim.ChannelGreen)
	b, bok := swim.ChannelIndex[F](swim.ChannelBlue)
	switch i, iok := swim.ChannelIndex[F](swim.ChannelIntensity); {
	case rok && gok && bok:
		idx = []int{r, g, b}
	case iok:
		idx = []int{i}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLayout, swim.FormatName[F]())
	}
	if a, ok := swim.ChannelIndex[F](swim.ChannelAlpha); ok {
		idx = append(idx, a)
	}
	return idx, nil
}

// toRaw flattens img into the raw layout the encoders accept
func toRaw[F swim.Format](img *swim.Image[F, uint8]) ([]uint8, int, error) {
	idx, err := rawLayout[F]()
	if err != nil {
		return nil, 0, err
	}
	n := len(idx)
	if n == img.Channels() {
		identity := true
		for i, j := range idx {
			identity = identity && i == j
		}
		if identity {
			return img.Data(), n, nil
		}
	}
	pix := make([]uint8, 0, img.PixelCount()*n)
	for y := range img.Height() {
		row := img.Row(y)
		for x := 0; x < len(row); x += img.Channels() {
			for _, j := range idx {
				pix = append(pix, row[x+j])
			}
		}
	}
	return pix, n, nil
}

// fromRaw builds an F image from a decoded raw layout. Missing color is
// replicated from gray, missing intensity is the BT.601 luma and missing
// alpha is opaque.
func fromRaw[F swim.Format](pix []uint8, width, height, channels int) (*swim.Image[F, uint8], error) {
	n := swim.Channels[F]()
	src := make([]int, n)
	for i := range src {
		src[i] = srcMissing
	}
	gray := channels <= 2
	for k, ch := range []swim.Channel{swim.ChannelRed, swim.ChannelGreen, swim.ChannelBlue} {
		if i, ok := swim.ChannelIndex[F](ch); ok {
			src[i] = k
			if gray {
				src[i] = 0
			}
		}
	}
	if i, ok := swim.ChannelIndex[F](swim.ChannelIntensity); ok {
		src[i] = 0
		if !gray {
			src[i] = srcLuma
		}
	}
	if i, ok := swim.ChannelIndex[F](swim.ChannelAlpha); ok {
		src[i] = srcOpaque
		if hasAlpha(channels) {
			src[i] = channels - 1
		}
	}
	for _, s := range src {
		if s == srcMissing {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedLayout, swim.FormatName[F]())
		}
	}
	img, err := swim.New[F, uint8](width, height, 0)
	if err != nil {
		return nil, err
	}
	img.ConvertRaw(func(x, y int, px []uint8) {
		in := pix[(y*width+x)*channels:]
		for i, s := range src {
			switch s {
			case srcLuma:
				px[i] = luma(in[0], in[1], in[2])
			case srcOpaque:
				px[i] = 0xff
			default:
				px[i] = in[s]
			}
		}
	})
	return img, nil
}

func luma(r, g, b uint8) uint8 {
	v := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	return uint8(v + 0.5)
}

// Read decodes an image of any supported format into F.
func Read[F swim.Format](r io.Reader) (*swim.Image[F, uint8], error) {
	pix, w, h, ch, err := DecodeRaw(r)
	if err != nil {
		return nil, err
	}
	return fromRaw[F](pix, w, h, ch)
}

// ReadFile decodes path, using the codec for its extension when known.
func ReadFile[F swim.Format](path string) (*swim.Image[F, uint8], error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToRead, err)
	}
	defer fd.Close()
	var c Codec
	if f, err := FormatFromPath(path); err == nil {
		c = f.Codec()
	}
	pix, w, h, ch, err := decodeRaw(bufio.NewReader(fd), c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fromRaw[F](pix, w, h, ch)
}

// checkEncodable rejects images the format cannot hold before anything is written
func checkEncodable[F swim.Format](f Format) error {
	c := f.Codec()
	if c == nil {
		return fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
	if swim.HasAlpha[F]() && !c.SupportsAlpha() {
		return fmt.Errorf("%w: %s with %s", ErrAlphaNotSupported, c.Name(), swim.FormatName[F]())
	}
	_, err := rawLayout[F]()
	return err
}

// Write encodes img as f.
func Write[F swim.Format](w io.Writer, img *swim.Image[F, uint8], f Format, opts *Options) error {
	if err := checkEncodable[F](f); err != nil {
		return err
	}
	pix, ch, err := toRaw(img)
	if err != nil {
		return err
	}
	return EncodeRaw(w, pix, img.Width(), img.Height(), ch, f, opts)
}

// WriteFile encodes img to path through a temporary sibling file that is
// renamed on success and removed on failure.
func WriteFile[F swim.Format](path string, img *swim.Image[F, uint8], f Format, opts *Options) error {
	if err := checkEncodable[F](f); err != nil {
		return err
	}
	return writeAtomic(path, func(w io.Writer) error {
		return Write(w, img, f, opts)
	})
}

func writeAtomic(path string, encode func(io.Writer) error) (err error) {
	tmp := util.TempName(path)
	fd, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToWrite, err)
	}
	defer func() {
		if err != nil {
			fd.Close()
			if rerr := os.Remove(tmp); rerr != nil && !os.IsNotExist(rerr) {
				slog.Warn("removing temp file", "path", tmp, "error", rerr)
			}
		}
	}()
	bw := bufio.NewWriter(fd)
	if err = encode(bw); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToWrite, err)
	}
	if err = fd.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToWrite, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToWrite, err)
	}
	slog.Debug("wrote image", "path", path)
	return nil
}

// WriteFloat encodes a [0,1] float image: values are clipped, scaled by 255,
// rounded and cast to uint8.
func WriteFloat[F swim.Format, T swim.Float](w io.Writer, img *swim.Image[F, T], f Format, opts *Options) error {
	if err := checkEncodable[F](f); err != nil {
		return err
	}
	return Write(w, ToUint8(img), f, opts)
}

// WriteFloatFile is WriteFloat through the staged write of WriteFile.
func WriteFloatFile[F swim.Format, T swim.Float](path string, img *swim.Image[F, T], f Format, opts *Options) error {
	return WriteFile(path, ToUint8(img), f, opts)
}

// ToUint8 maps a [0,1] float image onto 0..255.
func ToUint8[F swim.Format, T swim.Float](img *swim.Image[F, T]) *swim.Image[F, uint8] {
	scaled := img.Clip(0, 1)
	scaled.MulScalarAssign(255)
	scaled.RoundAssign()
	return swim.Cast[F, T, uint8](scaled)
}

// ToFloat maps an 8-bit image onto [0,1].
func ToFloat[F swim.Format, T swim.Float](img *swim.Image[F, uint8]) *swim.Image[F, T] {
	out := swim.Cast[F, uint8, T](img)
	out.DivScalarAssign(255)
	return out
}
