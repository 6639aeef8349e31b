// Package interp samples images at fractional coordinates.
//
// Every interpolator resolves neighbor coordinates through its EdgeMode and
// implements Interpolate on top of InterpolateInto, so the allocating and
// the buffer writing entry points always agree.
//
//	img := swim.Must(swim.FromData[swim.Intensity](2, 2, []float64{0, 1, 2, 3}))
//	ip := interp.NewBilinear(interp.ModeOf[swim.Intensity, float64](interp.EdgeEdge))
//	px := ip.Interpolate(0.5, 0.5, img) // Intensity(1.5)
package interp

import (
	"fmt"
	"math"
	"strings"

	"github.com/jpfielding/swim.go/pkg/swim"
)

// Interpolator samples an image at a non-integer location.
type Interpolator[F swim.Format, T swim.Float] interface {
	// Interpolate returns the sample at (x, y). NaN or infinite coordinates
	// have no sample and yield EdgeMode().Value.
	Interpolate(x, y T, img *swim.Image[F, T]) swim.Pixel[F, T]
	// InterpolateInto writes the sample at (x, y) into dst, which holds
	// at least Channels[F]() values
	InterpolateInto(x, y T, img *swim.Image[F, T], dst []T)
	EdgeMode() EdgeMode[F, T]
	SetEdgeMode(mode EdgeMode[F, T])
}

// base carries the edge policy shared by all kernels.
type base[F swim.Format, T swim.Float] struct {
	mode EdgeMode[F, T]
}

func (b *base[F, T]) EdgeMode() EdgeMode[F, T] { return b.mode }

func (b *base[F, T]) SetEdgeMode(mode EdgeMode[F, T]) { b.mode = mode }

// neighbor returns the channels of (x, y) after edge resolution, or the
// constant pixel when the coordinate has no sample.
func (b *base[F, T]) neighbor(x, y int, img *swim.Image[F, T]) []T {
	rx, okx := b.mode.Resolve(x, img.Width())
	ry, oky := b.mode.Resolve(y, img.Height())
	if !okx || !oky {
		return b.mode.Value.Values()
	}
	o := img.Offset(rx, ry)
	return img.Data()[o : o+swim.Channels[F]()]
}

// fill writes the mode's pixel into dst
func (b *base[F, T]) fill(dst []T) {
	copy(dst[:swim.Channels[F]()], b.mode.Value.Values())
}

// outside reports whether the constant pixel replaces every neighbor in
// the inclusive index box, so the result is that pixel exactly.
func (b *base[F, T]) outside(x0, x1, y0, y1 int, img *swim.Image[F, T]) bool {
	if b.mode.Kind != EdgeConstant {
		return false
	}
	return x1 < 0 || x0 >= img.Width() || y1 < 0 || y0 >= img.Height()
}

func interpolate[F swim.Format, T swim.Float](ip Interpolator[F, T], x, y T, img *swim.Image[F, T]) swim.Pixel[F, T] {
	var buf [swim.MaxChannels]T
	n := swim.Channels[F]()
	ip.InterpolateInto(x, y, img, buf[:n])
	return swim.NewPixel[F](buf[:n]...)
}

func floor[T swim.Float](v T) T {
	return T(math.Floor(float64(v)))
}

// New builds an interpolator by name: nearest, bilinear or bicubic.
func New[F swim.Format, T swim.Float](name string, mode EdgeMode[F, T]) (Interpolator[F, T], error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "nearest", "nn", "nearest-neighbor":
		return NewNearest(mode), nil
	case "bilinear", "linear":
		return NewBilinear(mode), nil
	case "bicubic", "cubic":
		return NewBicubic(mode), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownInterpolator, name)
}
