package interp

import "github.com/jpfielding/swim.go/pkg/swim"

// Bilinear blends the four neighbors around (x, y).
type Bilinear[F swim.Format, T swim.Float] struct {
	base[F, T]
}

// NewBilinear returns a bilinear interpolator. The zero EdgeMode is a
// constant zero pixel.
func NewBilinear[F swim.Format, T swim.Float](mode EdgeMode[F, T]) *Bilinear[F, T] {
	return &Bilinear[F, T]{base[F, T]{mode: mode}}
}

func (b *Bilinear[F, T]) Interpolate(x, y T, img *swim.Image[F, T]) swim.Pixel[F, T] {
	return interpolate[F, T](b, x, y, img)
}

func (b *Bilinear[F, T]) InterpolateInto(x, y T, img *swim.Image[F, T], dst []T) {
	if !finite(x) || !finite(y) {
		b.fill(dst)
		return
	}
	x0 := floor(x)
	x1 := x0 + 1
	y0 := floor(y)
	y1 := y0 + 1

	wx0 := x - x0
	wx1 := x1 - x
	wy0 := y - y0
	wy1 := y1 - y

	ix0, iy0 := index(x0), index(y0)
	ix1, iy1 := ix0+1, iy0+1
	if b.outside(ix0, ix1, iy0, iy1, img) {
		b.fill(dst)
		return
	}
	lu := b.neighbor(ix0, iy0, img)
	ru := b.neighbor(ix1, iy0, img)
	ld := b.neighbor(ix0, iy1, img)
	rd := b.neighbor(ix1, iy1, img)

	for c := range swim.Channels[F]() {
		top := wx1*lu[c] + wx0*ru[c]
		bottom := wx1*ld[c] + wx0*rd[c]
		dst[c] = wy1*top + wy0*bottom
	}
}
