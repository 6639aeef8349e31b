package swim

import "fmt"

// Geometry copies move whole pixels or rows and never touch channel values.

// FlipLR mirrors the image horizontally.
func (img *Image[F, T]) FlipLR() *Image[F, T] {
	out := alloc[F, T](img.width, img.height)
	n := Channels[F]()
	for y := 0; y < img.height; y++ {
		src := img.Row(y)
		dst := out.Row(y)
		for x := 0; x < img.width; x++ {
			d := (img.width - 1 - x) * n
			copy(dst[d:d+n], src[x*n:x*n+n])
		}
	}
	return out
}

// FlipUD mirrors the image vertically.
func (img *Image[F, T]) FlipUD() *Image[F, T] {
	out := alloc[F, T](img.width, img.height)
	for y := 0; y < img.height; y++ {
		copy(out.Row(img.height-1-y), img.Row(y))
	}
	return out
}

// Rot180 rotates the image by 180 degrees.
func (img *Image[F, T]) Rot180() *Image[F, T] {
	out := alloc[F, T](img.width, img.height)
	n := Channels[F]()
	last := len(img.data) - n
	for o := 0; o <= last; o += n {
		d := last - o
		copy(out.data[d:d+n], img.data[o:o+n])
	}
	return out
}

// Crop copies the w x h rectangle at (x, y).
func (img *Image[F, T]) Crop(x, y, w, h int) (*Image[F, T], error) {
	if w <= 0 || h <= 0 || x < 0 || y < 0 || x+w > img.width || y+h > img.height {
		return nil, fmt.Errorf("%w: crop %dx%d+%d+%d of %dx%d", ErrInvalidDimensions, w, h, x, y, img.width, img.height)
	}
	out := alloc[F, T](w, h)
	n := Channels[F]()
	for row := 0; row < h; row++ {
		src := img.Row(y + row)
		copy(out.Row(row), src[x*n:(x+w)*n])
	}
	return out, nil
}

// Paste copies src into img with its top-left corner at (x, y).
// src must fit entirely inside img.
func (img *Image[F, T]) Paste(src *Image[F, T], x, y int) error {
	if x < 0 || y < 0 || x+src.width > img.width || y+src.height > img.height {
		return fmt.Errorf("%w: paste %dx%d at %d,%d into %dx%d", ErrShapeMismatch, src.width, src.height, x, y, img.width, img.height)
	}
	n := Channels[F]()
	for row := 0; row < src.height; row++ {
		dst := img.Row(y + row)
		copy(dst[x*n:(x+src.width)*n], src.Row(row))
	}
	return nil
}

// ConcatH joins images of equal height left to right.
func ConcatH[F Format, T Scalar](images ...*Image[F, T]) (*Image[F, T], error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("%w: nothing to concatenate", ErrInvalidDimensions)
	}
	width := 0
	for _, im := range images {
		if im.height != images[0].height {
			return nil, fmt.Errorf("%w: heights %d and %d", ErrShapeMismatch, images[0].height, im.height)
		}
		width += im.width
	}
	out := alloc[F, T](width, images[0].height)
	x := 0
	for _, im := range images {
		// shapes were checked above
		_ = out.Paste(im, x, 0)
		x += im.width
	}
	return out, nil
}

// ConcatV stacks images of equal width top to bottom.
func ConcatV[F Format, T Scalar](images ...*Image[F, T]) (*Image[F, T], error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("%w: nothing to concatenate", ErrInvalidDimensions)
	}
	height := 0
	for _, im := range images {
		if im.width != images[0].width {
			return nil, fmt.Errorf("%w: widths %d and %d", ErrShapeMismatch, images[0].width, im.width)
		}
		height += im.height
	}
	out := alloc[F, T](images[0].width, height)
	o := 0
	for _, im := range images {
		o += copy(out.data[o:], im.data)
	}
	return out, nil
}
