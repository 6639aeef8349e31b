package swim

import (
	"fmt"
	"image"
)

// Image is a row-major, channel-interleaved buffer of
// Width*Height*Channels[F]() scalars.
//
// The buffer is owned by the image. Use Clone to get an independent copy;
// Data borrows the buffer for in-place work.
type Image[F Format, T Scalar] struct {
	width  int
	height int
	data   []T
}

func checkDims[F Format](width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	channelsChecked[F]()
	return nil
}

// New allocates an image with every channel set to value.
func New[F Format, T Scalar](width, height int, value T) (*Image[F, T], error) {
	if err := checkDims[F](width, height); err != nil {
		return nil, err
	}
	img := alloc[F, T](width, height)
	if value != 0 {
		for i := range img.data {
			img.data[i] = value
		}
	}
	return img, nil
}

// NewFilled allocates an image with every pixel set to px.
func NewFilled[F Format, T Scalar](width, height int, px Pixel[F, T]) (*Image[F, T], error) {
	if err := checkDims[F](width, height); err != nil {
		return nil, err
	}
	img := alloc[F, T](width, height)
	img.Fill(px)
	return img, nil
}

// FromData copies raw interleaved data into a new image.
// len(data) must equal width*height*Channels[F]().
func FromData[F Format, T Scalar](width, height int, data []T) (*Image[F, T], error) {
	if err := checkDims[F](width, height); err != nil {
		return nil, err
	}
	if want := width * height * Channels[F](); len(data) != want {
		return nil, fmt.Errorf("%w: %dx%d %s needs %d values, got %d",
			ErrInvalidDimensions, width, height, FormatName[F](), want, len(data))
	}
	img := alloc[F, T](width, height)
	copy(img.data, data)
	return img, nil
}

// Must panics on a construction error.
func Must[F Format, T Scalar](img *Image[F, T], err error) *Image[F, T] {
	if err != nil {
		panic(err)
	}
	return img
}

// alloc assumes validated dimensions
func alloc[F Format, T Scalar](width, height int) *Image[F, T] {
	return &Image[F, T]{
		width:  width,
		height: height,
		data:   make([]T, width*height*Channels[F]()),
	}
}

func (img *Image[F, T]) Width() int  { return img.width }
func (img *Image[F, T]) Height() int { return img.height }

// Channels is the channel count of F
func (img *Image[F, T]) Channels() int { return Channels[F]() }

// PixelCount is Width*Height
func (img *Image[F, T]) PixelCount() int { return img.width * img.height }

// Bounds returns the image rectangle anchored at the origin
func (img *Image[F, T]) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// Data borrows the underlying buffer.
func (img *Image[F, T]) Data() []T { return img.data }

// Contains reports whether (x, y) lies inside the image.
func (img *Image[F, T]) Contains(x, y int) bool {
	return x >= 0 && x < img.width && y >= 0 && y < img.height
}

// Offset returns the buffer index of channel 0 of pixel (x, y).
// This is the only place the layout formula lives.
func (img *Image[F, T]) Offset(x, y int) int {
	if !img.Contains(x, y) {
		panic(fmt.Sprintf("swim: pixel (%d, %d) outside %dx%d image", x, y, img.width, img.height))
	}
	return (y*img.width + x) * Channels[F]()
}

// pixelSlice borrows the channels of (x, y)
func (img *Image[F, T]) pixelSlice(x, y int) []T {
	n := Channels[F]()
	o := img.Offset(x, y)
	return img.data[o : o+n : o+n]
}

// At copies pixel (x, y) out of the buffer.
func (img *Image[F, T]) At(x, y int) Pixel[F, T] {
	var px Pixel[F, T]
	copy(px.data[:], img.pixelSlice(x, y))
	return px
}

// Set copies px into (x, y).
func (img *Image[F, T]) Set(x, y int, px PixelLike[F, T]) {
	copy(img.pixelSlice(x, y), px.Values())
}

// Ref borrows (x, y) as a mutable pixel.
func (img *Image[F, T]) Ref(x, y int) PixelRef[F, T] {
	return PixelRef[F, T]{X: x, Y: y, data: img.pixelSlice(x, y)}
}

// Value returns a single channel of (x, y).
func (img *Image[F, T]) Value(x, y, c int) T {
	return img.pixelSlice(x, y)[c]
}

// SetValue assigns a single channel of (x, y).
func (img *Image[F, T]) SetValue(x, y, c int, v T) {
	img.pixelSlice(x, y)[c] = v
}

// Row borrows the scalars of row y.
func (img *Image[F, T]) Row(y int) []T {
	n := img.width * Channels[F]()
	o := img.Offset(0, y)
	return img.data[o : o+n : o+n]
}

// Fill sets every pixel to px.
func (img *Image[F, T]) Fill(px Pixel[F, T]) {
	n := Channels[F]()
	src := px.data[:n]
	for o := 0; o < len(img.data); o += n {
		copy(img.data[o:o+n], src)
	}
}

// Clone returns a deep copy.
func (img *Image[F, T]) Clone() *Image[F, T] {
	out := alloc[F, T](img.width, img.height)
	copy(out.data, img.data)
	return out
}

// SameShape reports whether both images have equal width and height.
func (img *Image[F, T]) SameShape(o *Image[F, T]) bool {
	return img.width == o.width && img.height == o.height
}

// Equal reports equal shape and identical buffers.
func (img *Image[F, T]) Equal(o *Image[F, T]) bool {
	if !img.SameShape(o) {
		return false
	}
	for i, v := range img.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

func (img *Image[F, T]) String() string {
	return fmt.Sprintf("Image[%s](%dx%d)", FormatName[F](), img.width, img.height)
}

func (img *Image[F, T]) checkShape(o *Image[F, T]) error {
	if !img.SameShape(o) {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch, img.width, img.height, o.width, o.height)
	}
	return nil
}

// withCoord visits every pixel in row-major order with a borrowed slice.
func (img *Image[F, T]) withCoord(f func(x, y int, px []T)) {
	n := Channels[F]()
	for y := 0; y < img.height; y++ {
		o := img.Offset(0, y)
		for x := 0; x < img.width; x++ {
			f(x, y, img.data[o:o+n:o+n])
			o += n
		}
	}
}
