package interp

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jpfielding/swim.go/pkg/swim"
)

var (
	ErrUnknownEdgeMode     = errors.New("unknown edge mode")
	ErrUnknownInterpolator = errors.New("unknown interpolator")
)

// EdgeKind selects how an out of range integer coordinate is resolved.
type EdgeKind int

const (
	// EdgeConstant substitutes a fixed pixel for samples outside the image
	EdgeConstant EdgeKind = iota
	// EdgeEdge clamps to the nearest border pixel
	EdgeEdge
	// EdgeSymmetric mirrors including the border pixel: -1 -> 0, n -> n-1
	EdgeSymmetric
	// EdgeReflect mirrors about the border pixel: -1 -> 1, n -> n-2
	EdgeReflect
	// EdgeWrap tiles the image
	EdgeWrap
)

var edgeNames = map[EdgeKind]string{
	EdgeConstant:  "constant",
	EdgeEdge:      "edge",
	EdgeSymmetric: "symmetric",
	EdgeReflect:   "reflect",
	EdgeWrap:      "wrap",
}

func (k EdgeKind) String() string {
	if s, ok := edgeNames[k]; ok {
		return s
	}
	return fmt.Sprintf("EdgeKind(%d)", int(k))
}

// ParseEdgeKind maps a name such as "wrap" to its EdgeKind.
func ParseEdgeKind(name string) (EdgeKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, s := range edgeNames {
		if s == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEdgeMode, name)
}

// EdgeMode is the edge policy of an interpolator. Value is only meaningful
// for EdgeConstant.
type EdgeMode[F swim.Format, T swim.Float] struct {
	Kind  EdgeKind
	Value swim.Pixel[F, T]
}

// Constant substitutes px for every sample outside the image.
func Constant[F swim.Format, T swim.Float](px swim.Pixel[F, T]) EdgeMode[F, T] {
	return EdgeMode[F, T]{Kind: EdgeConstant, Value: px}
}

// ConstantValue substitutes a pixel with every channel set to v.
func ConstantValue[F swim.Format, T swim.Float](v T) EdgeMode[F, T] {
	return Constant(swim.PixelOf[F](v))
}

// ModeOf returns a payload free mode. EdgeConstant yields a zero pixel.
func ModeOf[F swim.Format, T swim.Float](kind EdgeKind) EdgeMode[F, T] {
	return EdgeMode[F, T]{Kind: kind}
}

func (m EdgeMode[F, T]) String() string {
	if m.Kind == EdgeConstant {
		return "constant" + m.Value.String()
	}
	return m.Kind.String()
}

// Resolve maps coordinate i on an axis of length n into [0, n).
// ok is false when the mode is EdgeConstant and i is outside, meaning the
// constant pixel replaces the sample. Mirrored modes are periodic, so i is
// first reduced modulo the period and then folded at most once.
func (m EdgeMode[F, T]) Resolve(i, n int) (int, bool) {
	return resolve(m.Kind, i, n)
}

func resolve(kind EdgeKind, i, n int) (int, bool) {
	if i >= 0 && i < n {
		return i, true
	}
	switch kind {
	case EdgeConstant:
		return 0, false
	case EdgeEdge:
		if i < 0 {
			return 0, true
		}
		return n - 1, true
	case EdgeSymmetric:
		i = mod(i, 2*n)
		for i < 0 || i >= n {
			if i < 0 {
				i = -i - 1
			}
			if i >= n {
				i = 2*n - i - 1
			}
		}
		return i, true
	case EdgeReflect:
		// a single column has nothing to reflect about and would never settle
		if n == 1 {
			return 0, true
		}
		i = mod(i, 2*n-2)
		for i < 0 || i >= n {
			if i < 0 {
				i = -i
			}
			if i >= n {
				i = 2*n - i - 2
			}
		}
		return i, true
	case EdgeWrap:
		return mod(i, n), true
	}
	panic(fmt.Sprintf("interp: %v", kind))
}

// mod returns i modulo p in [0, p)
func mod(i, p int) int {
	i %= p
	if i < 0 {
		i += p
	}
	return i
}

// maxIndex bounds converted coordinates; it is exact in float32
const maxIndex = 1 << 40

// index converts a finite floored coordinate to an int without overflow
func index[T swim.Float](v T) int {
	switch {
	case v > maxIndex:
		return maxIndex
	case v < -maxIndex:
		return -maxIndex
	}
	return int(v)
}

func finite[T swim.Float](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
