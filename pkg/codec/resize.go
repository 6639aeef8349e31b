package codec

import (
	"fmt"
	"image"
	"math"

	"github.com/jpfielding/swim.go/pkg/swim"
	"golang.org/x/image/draw"
)

// Resize scales an 8-bit image to width x height with the Catmull-Rom
// filter, which averages over the source footprint when shrinking.
func Resize[F swim.Format](img *swim.Image[F, uint8], width, height int) (*swim.Image[F, uint8], error) {
	return ResizeWith(img, width, height, draw.CatmullRom)
}

// ResizeWith scales with any x/image/draw scaler (e.g., draw.ApproxBiLinear).
func ResizeWith[F swim.Format](img *swim.Image[F, uint8], width, height int, s draw.Scaler) (*swim.Image[F, uint8], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: resize to %dx%d", swim.ErrInvalidDimensions, width, height)
	}
	pix, ch, err := toRaw(img)
	if err != nil {
		return nil, err
	}
	src := rawToImage(pix, img.Width(), img.Height(), ch)
	rect := image.Rect(0, 0, width, height)
	if ch == 1 {
		dst := image.NewGray(rect)
		s.Scale(dst, rect, src, src.Bounds(), draw.Src, nil)
		return fromRaw[F](dst.Pix, width, height, 1)
	}
	dst := image.NewNRGBA(rect)
	s.Scale(dst, rect, src, src.Bounds(), draw.Src, nil)
	return fromRaw[F](unpackNRGBA(dst.Pix, ch), width, height, ch)
}

// unpackNRGBA narrows packed NRGBA samples back to a raw layout
func unpackNRGBA(pix []uint8, ch int) []uint8 {
	if ch == 4 {
		return pix
	}
	out := make([]uint8, 0, len(pix)/4*ch)
	for i := 0; i < len(pix); i += 4 {
		switch ch {
		case 2:
			out = append(out, pix[i], pix[i+3])
		default:
			out = append(out, pix[i], pix[i+1], pix[i+2])
		}
	}
	return out
}

// ResizeFloat scales a float image with the Catmull-Rom filter. Each channel
// is scaled as its own 16-bit plane spanning that channel's value range, so
// results are quantized to 1/65535 of the range and stay inside it.
func ResizeFloat[F swim.Format, T swim.Float](img *swim.Image[F, T], width, height int) (*swim.Image[F, T], error) {
	return ResizeFloatWith(img, width, height, draw.CatmullRom)
}

// ResizeFloatWith is ResizeFloat with any x/image/draw scaler.
func ResizeFloatWith[F swim.Format, T swim.Float](img *swim.Image[F, T], width, height int, s draw.Scaler) (*swim.Image[F, T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: resize to %dx%d", swim.ErrInvalidDimensions, width, height)
	}
	out, err := swim.New[F](width, height, T(0))
	if err != nil {
		return nil, err
	}
	n := img.Channels()
	in, res := img.Data(), out.Data()
	src := image.NewGray16(image.Rect(0, 0, img.Width(), img.Height()))
	dst := image.NewGray16(image.Rect(0, 0, width, height))
	for c := range n {
		lo, hi := channelRange(in, c, n)
		span := hi - lo
		for i := range img.PixelCount() {
			var v float64
			if span > 0 {
				v = float64((in[i*n+c] - lo) / span)
			}
			// NaN lands on the low end
			if !(v > 0) {
				v = 0
			}
			q := uint16(math.Round(min(v, 1) * 0xffff))
			src.Pix[2*i], src.Pix[2*i+1] = uint8(q>>8), uint8(q)
		}
		s.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		for i := range width * height {
			q := uint16(dst.Pix[2*i])<<8 | uint16(dst.Pix[2*i+1])
			res[i*n+c] = lo + span*T(q)/0xffff
		}
	}
	return out, nil
}

// channelRange returns the finite min and max of channel c
func channelRange[T swim.Float](data []T, c, n int) (lo, hi T) {
	first := true
	for i := c; i < len(data); i += n {
		v := data[i]
		if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		if first {
			lo, hi, first = v, v, false
			continue
		}
		lo, hi = min(lo, v), max(hi, v)
	}
	return lo, hi
}
