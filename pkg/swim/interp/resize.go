package interp

import (
	"fmt"

	"github.com/jpfielding/swim.go/pkg/swim"
)

// Resize resamples img to width x height by evaluating ip at the source
// position of every destination pixel center.
func Resize[F swim.Format, T swim.Float](img *swim.Image[F, T], width, height int, ip Interpolator[F, T]) (*swim.Image[F, T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: resize to %dx%d", swim.ErrInvalidDimensions, width, height)
	}
	out, err := swim.New[F, T](width, height, 0)
	if err != nil {
		return nil, err
	}
	sx := T(img.Width()) / T(width)
	sy := T(img.Height()) / T(height)
	out.ConvertRaw(func(x, y int, px []T) {
		srcX := (T(x)+0.5)*sx - 0.5
		srcY := (T(y)+0.5)*sy - 0.5
		ip.InterpolateInto(srcX, srcY, img, px)
	})
	return out, nil
}
