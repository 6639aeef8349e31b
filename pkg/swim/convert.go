package swim

import "math"

// Every conversion calls f exactly once per pixel, y outer and x inner.

// Convert replaces each pixel with f(x, y, pixel) in place.
func (img *Image[F, T]) Convert(f func(x, y int, px Pixel[F, T]) Pixel[F, T]) {
	img.withCoord(func(x, y int, buf []T) {
		var px Pixel[F, T]
		copy(px.data[:], buf)
		out := f(x, y, px)
		copy(buf, out.data[:len(buf)])
	})
}

// ConvertRaw hands f a borrowed slice of each pixel's channels to modify.
// The slice must not be retained after f returns.
func (img *Image[F, T]) ConvertRaw(f func(x, y int, px []T)) {
	img.withCoord(f)
}

// ChannelwiseConvert borrows the whole buffer once.
func (img *Image[F, T]) ChannelwiseConvert(f func(buf []T)) {
	f(img.data)
}

// ConvertIntensity is Convert for single channel images with bare scalars.
func ConvertIntensity[T Scalar](img *Image[Intensity, T], f func(x, y int, v T) T) {
	img.withCoord(func(x, y int, buf []T) {
		buf[0] = f(x, y, buf[0])
	})
}

// Converted maps every pixel into a newly allocated image of another format
// and/or scalar type.
func Converted[F Format, T Scalar, F2 Format, T2 Scalar](img *Image[F, T], f func(x, y int, px Pixel[F, T]) Pixel[F2, T2]) *Image[F2, T2] {
	out := alloc[F2, T2](img.width, img.height)
	n2 := channelsChecked[F2]()
	dst := out.data
	img.withCoord(func(x, y int, buf []T) {
		var px Pixel[F, T]
		copy(px.data[:], buf)
		res := f(x, y, px)
		copy(dst[:n2], res.data[:n2])
		dst = dst[n2:]
	})
	return out
}

// ToIntensity maps every pixel to a single scalar.
func ToIntensity[F Format, T Scalar, T2 Scalar](img *Image[F, T], f func(x, y int, px Pixel[F, T]) T2) *Image[Intensity, T2] {
	out := alloc[Intensity, T2](img.width, img.height)
	i := 0
	img.withCoord(func(x, y int, buf []T) {
		var px Pixel[F, T]
		copy(px.data[:], buf)
		out.data[i] = f(x, y, px)
		i++
	})
	return out
}

// ConvertedIntensity maps a single channel image scalar by scalar.
func ConvertedIntensity[T Scalar, T2 Scalar](img *Image[Intensity, T], f func(x, y int, v T) T2) *Image[Intensity, T2] {
	out := alloc[Intensity, T2](img.width, img.height)
	i := 0
	img.withCoord(func(x, y int, buf []T) {
		out.data[i] = f(x, y, buf[0])
		i++
	})
	return out
}

// FromIntensity expands a single channel image into pixels of F2.
func FromIntensity[T Scalar, F2 Format, T2 Scalar](img *Image[Intensity, T], f func(x, y int, v T) Pixel[F2, T2]) *Image[F2, T2] {
	out := alloc[F2, T2](img.width, img.height)
	n2 := channelsChecked[F2]()
	dst := out.data
	img.withCoord(func(x, y int, buf []T) {
		res := f(x, y, buf[0])
		copy(dst[:n2], res.data[:n2])
		dst = dst[n2:]
	})
	return out
}

// Cast converts every channel to T2 with Go conversion semantics
// (floats to integers truncate toward zero).
func Cast[F Format, T Scalar, T2 Scalar](img *Image[F, T]) *Image[F, T2] {
	out := alloc[F, T2](img.width, img.height)
	for i, v := range img.data {
		out.data[i] = T2(v)
	}
	return out
}

// BT.601 luma weights
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// Luma converts a color image to intensity with BT.601 weights.
// Formats without red, green and blue channels are averaged instead.
// Integer results are rounded.
func Luma[F Format, T Scalar](img *Image[F, T]) *Image[Intensity, T] {
	ri, rok := ChannelIndex[F](ChannelRed)
	gi, gok := ChannelIndex[F](ChannelGreen)
	bi, bok := ChannelIndex[F](ChannelBlue)
	if ii, ok := ChannelIndex[F](ChannelIntensity); ok {
		return ToIntensity(img, func(_, _ int, px Pixel[F, T]) T {
			return px.data[ii]
		})
	}
	if rok && gok && bok {
		return ToIntensity(img, func(_, _ int, px Pixel[F, T]) T {
			v := lumaR*float64(px.data[ri]) + lumaG*float64(px.data[gi]) + lumaB*float64(px.data[bi])
			return fromFloat[T](v)
		})
	}
	n := Channels[F]()
	return ToIntensity(img, func(_, _ int, px Pixel[F, T]) T {
		var sum float64
		for _, v := range px.data[:n] {
			sum += float64(v)
		}
		return fromFloat[T](sum / float64(n))
	})
}

func fromFloat[T Scalar](v float64) T {
	if isFloat[T]() {
		return T(v)
	}
	return T(math.Round(v))
}

// DropAlpha converts RGBA to RGB.
func DropAlpha[T Scalar](img *Image[RGBA, T]) *Image[RGB, T] {
	return Converted(img, func(_, _ int, px Pixel[RGBA, T]) Pixel[RGB, T] {
		return NewPixel[RGB](px.data[0], px.data[1], px.data[2])
	})
}

// AddAlpha converts RGB to RGBA with a constant alpha.
func AddAlpha[T Scalar](img *Image[RGB, T], alpha T) *Image[RGBA, T] {
	return Converted(img, func(_, _ int, px Pixel[RGB, T]) Pixel[RGBA, T] {
		return NewPixel[RGBA](px.data[0], px.data[1], px.data[2], alpha)
	})
}
