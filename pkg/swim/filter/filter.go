// Package filter correlates images with small kernels using the edge
// policies of package interp.
package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jpfielding/swim.go/pkg/accel"
	"github.com/jpfielding/swim.go/pkg/swim"
	"github.com/jpfielding/swim.go/pkg/swim/interp"
)

// ErrUnknownKernel is returned by ByName for unrecognized names
var ErrUnknownKernel = errors.New("unknown kernel")

// Kernel is a row-major Width x Height weight matrix anchored at its center
// ((Width-1)/2, (Height-1)/2).
type Kernel[T swim.Float] struct {
	Width   int
	Height  int
	Weights []T
}

// NewKernel validates len(weights) == width*height.
func NewKernel[T swim.Float](width, height int, weights []T) (Kernel[T], error) {
	if width <= 0 || height <= 0 || len(weights) != width*height {
		return Kernel[T]{}, fmt.Errorf("%w: kernel %dx%d with %d weights", swim.ErrInvalidDimensions, width, height, len(weights))
	}
	w := make([]T, len(weights))
	copy(w, weights)
	return Kernel[T]{Width: width, Height: height, Weights: w}, nil
}

func mustKernel[T swim.Float](width, height int, weights ...T) Kernel[T] {
	k, err := NewKernel(width, height, weights)
	if err != nil {
		panic(err)
	}
	return k
}

// SobelH responds to horizontal gradients.
func SobelH[T swim.Float]() Kernel[T] {
	return mustKernel[T](3, 3,
		-1, 0, 1,
		-2, 0, 2,
		-1, 0, 1)
}

// SobelV responds to vertical gradients.
func SobelV[T swim.Float]() Kernel[T] {
	return mustKernel[T](3, 3,
		-1, -2, -1,
		0, 0, 0,
		1, 2, 1)
}

// Laplacian is the 4-neighbor second derivative.
func Laplacian[T swim.Float]() Kernel[T] {
	return mustKernel[T](3, 3,
		0, 1, 0,
		1, -4, 1,
		0, 1, 0)
}

// Gaussian3x3 is the binomial blur.
func Gaussian3x3[T swim.Float]() Kernel[T] {
	k := mustKernel[T](3, 3,
		1, 2, 1,
		2, 4, 2,
		1, 2, 1)
	for i := range k.Weights {
		k.Weights[i] /= 16
	}
	return k
}

// Box averages a size x size neighborhood.
func Box[T swim.Float](size int) Kernel[T] {
	if size <= 0 {
		panic(fmt.Sprintf("filter: box size %d", size))
	}
	w := make([]T, size*size)
	for i := range w {
		w[i] = 1 / T(size*size)
	}
	return Kernel[T]{Width: size, Height: size, Weights: w}
}

// ByName returns a built-in kernel: sobel-h, sobel-v, laplacian, gaussian
// or box3/box5.
func ByName[T swim.Float](name string) (Kernel[T], error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sobel-h", "sobel":
		return SobelH[T](), nil
	case "sobel-v":
		return SobelV[T](), nil
	case "laplacian":
		return Laplacian[T](), nil
	case "gaussian", "gauss":
		return Gaussian3x3[T](), nil
	case "box", "box3":
		return Box[T](3), nil
	case "box5":
		return Box[T](5), nil
	}
	return Kernel[T]{}, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
}

// Convolve correlates every channel of img with k. Neighbors outside the
// image are resolved with mode exactly as the interpolators do.
func Convolve[F swim.Format, T swim.Float](img *swim.Image[F, T], k Kernel[T], mode interp.EdgeMode[F, T]) *swim.Image[F, T] {
	out := img.Clone()
	n := swim.Channels[F]()
	ax := (k.Width - 1) / 2
	ay := (k.Height - 1) / 2
	window := make([][]T, n)
	for c := range window {
		window[c] = make([]T, len(k.Weights))
	}
	constant := mode.Value.Values()

	out.ConvertRaw(func(x, y int, px []T) {
		i := 0
		for ky := 0; ky < k.Height; ky++ {
			sy, oky := mode.Resolve(y+ky-ay, img.Height())
			for kx := 0; kx < k.Width; kx++ {
				sx, okx := mode.Resolve(x+kx-ax, img.Width())
				src := constant
				if oky && okx {
					o := img.Offset(sx, sy)
					src = img.Data()[o : o+n]
				}
				for c := 0; c < n; c++ {
					window[c][i] = src[c]
				}
				i++
			}
		}
		for c := 0; c < n; c++ {
			px[c] = weightedSum(window[c], k.Weights)
		}
	})
	return out
}

func weightedSum[T swim.Float](a, b []T) T {
	if v, ok := accel.Dot(a, b); ok {
		return v
	}
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
