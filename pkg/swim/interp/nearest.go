package interp

import "github.com/jpfielding/swim.go/pkg/swim"

// Nearest returns the pixel whose center is closest to (x, y).
type Nearest[F swim.Format, T swim.Float] struct {
	base[F, T]
}

func NewNearest[F swim.Format, T swim.Float](mode EdgeMode[F, T]) *Nearest[F, T] {
	return &Nearest[F, T]{base[F, T]{mode: mode}}
}

func (n *Nearest[F, T]) Interpolate(x, y T, img *swim.Image[F, T]) swim.Pixel[F, T] {
	return interpolate[F, T](n, x, y, img)
}

func (n *Nearest[F, T]) InterpolateInto(x, y T, img *swim.Image[F, T], dst []T) {
	if !finite(x) || !finite(y) {
		n.fill(dst)
		return
	}
	// ties round up, so 0.5 samples pixel 1
	px := n.neighbor(index(floor(x+0.5)), index(floor(y+0.5)), img)
	copy(dst[:swim.Channels[F]()], px)
}
