package swim

import (
	"fmt"
	"strings"
)

// MaxChannels bounds the channel count of any Format so a Pixel stays a
// plain value that can live on the stack.
const MaxChannels = 16

// PixelLike is a value with the channel layout of F, either an owned Pixel
// or a PixelRef into an image buffer.
type PixelLike[F Format, T Scalar] interface {
	// Values returns the channel values in format order
	Values() []T
	format() F
}

// Pixel holds the channel values of one sample by value.
// Assigning a Pixel copies it.
type Pixel[F Format, T Scalar] struct {
	data [MaxChannels]T
}

func channelsChecked[F Format]() int {
	n := Channels[F]()
	if n < 1 || n > MaxChannels {
		panic(fmt.Sprintf("swim: format %s has %d channels, want 1..%d", FormatName[F](), n, MaxChannels))
	}
	return n
}

// NewPixel builds a pixel from exactly Channels[F]() values.
// It panics on any other count.
func NewPixel[F Format, T Scalar](values ...T) Pixel[F, T] {
	px, err := PixelFrom[F](values)
	if err != nil {
		panic(err)
	}
	return px
}

// PixelFrom copies values into a pixel, failing when the length does not match F.
func PixelFrom[F Format, T Scalar](values []T) (Pixel[F, T], error) {
	var px Pixel[F, T]
	if n := channelsChecked[F](); len(values) != n {
		return px, fmt.Errorf("%w: %s pixel needs %d values, got %d", ErrShapeMismatch, FormatName[F](), n, len(values))
	}
	copy(px.data[:], values)
	return px, nil
}

// PixelOf returns a pixel with every channel set to v.
func PixelOf[F Format, T Scalar](v T) Pixel[F, T] {
	var px Pixel[F, T]
	n := channelsChecked[F]()
	for i := 0; i < n; i++ {
		px.data[i] = v
	}
	return px
}

// Gray returns an Intensity pixel.
func Gray[T Scalar](v T) Pixel[Intensity, T] {
	return NewPixel[Intensity](v)
}

// Color returns an RGB pixel.
func Color[T Scalar](r, g, b T) Pixel[RGB, T] {
	return NewPixel[RGB](r, g, b)
}

// ColorAlpha returns an RGBA pixel.
func ColorAlpha[T Scalar](r, g, b, a T) Pixel[RGBA, T] {
	return NewPixel[RGBA](r, g, b, a)
}

func (p Pixel[F, T]) format() F {
	var f F
	return f
}

// Len is the channel count
func (p Pixel[F, T]) Len() int {
	return Channels[F]()
}

// Values returns a copy of the channel values
func (p Pixel[F, T]) Values() []T {
	return p.data[:Channels[F]()]
}

// At returns channel i
func (p Pixel[F, T]) At(i int) T {
	return p.data[:Channels[F]()][i]
}

// Set assigns channel i
func (p *Pixel[F, T]) Set(i int, v T) {
	p.data[:Channels[F]()][i] = v
}

// Channel returns a semantic channel, panicking when F does not define it.
func (p Pixel[F, T]) Channel(ch Channel) T {
	return p.data[mustIndex[F](ch)]
}

// SetChannel assigns a semantic channel.
func (p *Pixel[F, T]) SetChannel(ch Channel, v T) {
	p.data[mustIndex[F](ch)] = v
}

func mustIndex[F Format](ch Channel) int {
	i, ok := ChannelIndex[F](ch)
	if !ok {
		panic(fmt.Sprintf("swim: format %s has no %s channel", FormatName[F](), ch))
	}
	return i
}

// Equal compares channel values
func (p Pixel[F, T]) Equal(o Pixel[F, T]) bool {
	return p.data == o.data
}

func (p Pixel[F, T]) String() string {
	vals := p.Values()
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}
	return FormatName[F]() + "(" + strings.Join(parts, ", ") + ")"
}

// AddAssign adds rhs channel by channel.
func (p *Pixel[F, T]) AddAssign(rhs PixelLike[F, T]) {
	addTo(p.data[:Channels[F]()], rhs.Values())
}

// SubAssign subtracts rhs channel by channel.
func (p *Pixel[F, T]) SubAssign(rhs PixelLike[F, T]) {
	subTo(p.data[:Channels[F]()], rhs.Values())
}

// MulAssign multiplies by rhs channel by channel.
func (p *Pixel[F, T]) MulAssign(rhs PixelLike[F, T]) {
	mulTo(p.data[:Channels[F]()], rhs.Values())
}

// DivAssign divides by rhs channel by channel.
func (p *Pixel[F, T]) DivAssign(rhs PixelLike[F, T]) {
	divTo(p.data[:Channels[F]()], rhs.Values())
}

func (p Pixel[F, T]) Add(rhs PixelLike[F, T]) Pixel[F, T] {
	p.AddAssign(rhs)
	return p
}

func (p Pixel[F, T]) Sub(rhs PixelLike[F, T]) Pixel[F, T] {
	p.SubAssign(rhs)
	return p
}

func (p Pixel[F, T]) Mul(rhs PixelLike[F, T]) Pixel[F, T] {
	p.MulAssign(rhs)
	return p
}

func (p Pixel[F, T]) Div(rhs PixelLike[F, T]) Pixel[F, T] {
	p.DivAssign(rhs)
	return p
}

// AddScalar adds k to every channel.
func (p Pixel[F, T]) AddScalar(k T) Pixel[F, T] {
	addConst(p.data[:Channels[F]()], k)
	return p
}

// SubScalar subtracts k from every channel.
func (p Pixel[F, T]) SubScalar(k T) Pixel[F, T] {
	subConst(p.data[:Channels[F]()], k)
	return p
}

// MulScalar multiplies every channel by k.
func (p Pixel[F, T]) MulScalar(k T) Pixel[F, T] {
	mulConst(p.data[:Channels[F]()], k)
	return p
}

// DivScalar divides every channel by k.
func (p Pixel[F, T]) DivScalar(k T) Pixel[F, T] {
	divConst(p.data[:Channels[F]()], k)
	return p
}

// PixelRef is a mutable view of one pixel inside a buffer.
type PixelRef[F Format, T Scalar] struct {
	X, Y int
	data []T
}

// NewPixelRef wraps the first Channels[F]() values of buf.
func NewPixelRef[F Format, T Scalar](x, y int, buf []T) (PixelRef[F, T], error) {
	n := channelsChecked[F]()
	if len(buf) < n {
		return PixelRef[F, T]{}, fmt.Errorf("%w: %s ref needs %d values, got %d", ErrShapeMismatch, FormatName[F](), n, len(buf))
	}
	return PixelRef[F, T]{X: x, Y: y, data: buf[:n:n]}, nil
}

func (r PixelRef[F, T]) format() F {
	var f F
	return f
}

// Values returns the borrowed channel slice
func (r PixelRef[F, T]) Values() []T {
	return r.data
}

func (r PixelRef[F, T]) At(i int) T {
	return r.data[i]
}

func (r PixelRef[F, T]) Set(i int, v T) {
	r.data[i] = v
}

func (r PixelRef[F, T]) Channel(ch Channel) T {
	return r.data[mustIndex[F](ch)]
}

func (r PixelRef[F, T]) SetChannel(ch Channel, v T) {
	r.data[mustIndex[F](ch)] = v
}

// Pixel copies the referenced values out.
func (r PixelRef[F, T]) Pixel() Pixel[F, T] {
	var px Pixel[F, T]
	copy(px.data[:], r.data)
	return px
}

// Assign copies src into the referenced buffer.
func (r PixelRef[F, T]) Assign(src PixelLike[F, T]) {
	copy(r.data, src.Values())
}

func (r PixelRef[F, T]) AddAssign(rhs PixelLike[F, T]) { addTo(r.data, rhs.Values()) }
func (r PixelRef[F, T]) SubAssign(rhs PixelLike[F, T]) { subTo(r.data, rhs.Values()) }
func (r PixelRef[F, T]) MulAssign(rhs PixelLike[F, T]) { mulTo(r.data, rhs.Values()) }
func (r PixelRef[F, T]) DivAssign(rhs PixelLike[F, T]) { divTo(r.data, rhs.Values()) }
