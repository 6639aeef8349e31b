package interp

import "github.com/jpfielding/swim.go/pkg/swim"

// Bicubic convolves the 4x4 neighborhood around (x, y) with the
// Catmull-Rom kernel (cubic BC-spline, B=0 C=0.5). Results may overshoot
// the input range.
type Bicubic[F swim.Format, T swim.Float] struct {
	base[F, T]
}

func NewBicubic[F swim.Format, T swim.Float](mode EdgeMode[F, T]) *Bicubic[F, T] {
	return &Bicubic[F, T]{base[F, T]{mode: mode}}
}

func (b *Bicubic[F, T]) Interpolate(x, y T, img *swim.Image[F, T]) swim.Pixel[F, T] {
	return interpolate[F, T](b, x, y, img)
}

func (b *Bicubic[F, T]) InterpolateInto(x, y T, img *swim.Image[F, T], dst []T) {
	if !finite(x) || !finite(y) {
		b.fill(dst)
		return
	}
	x0 := floor(x)
	y0 := floor(y)
	tx := x - x0
	ty := y - y0
	ix, iy := index(x0), index(y0)
	if b.outside(ix-1, ix+2, iy-1, iy+2, img) {
		b.fill(dst)
		return
	}

	var wx, wy [4]T
	for i := range 4 {
		wx[i] = catmullRom(tx - T(i-1))
		wy[i] = catmullRom(ty - T(i-1))
	}

	n := swim.Channels[F]()
	dst = dst[:n]
	clear(dst)
	for j := range 4 {
		var row [swim.MaxChannels]T
		for i := range 4 {
			px := b.neighbor(ix+i-1, iy+j-1, img)
			for c := range n {
				row[c] += wx[i] * px[c]
			}
		}
		for c := range n {
			dst[c] += wy[j] * row[c]
		}
	}
}

// catmullRom is the kernel weight at distance t
func catmullRom[T swim.Float](t T) T {
	if t < 0 {
		t = -t
	}
	switch {
	case t < 1:
		return (1.5*t-2.5)*t*t + 1
	case t < 2:
		return ((-0.5*t+2.5)*t-4)*t + 2
	}
	return 0
}
