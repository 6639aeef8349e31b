package swim

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImage(t *testing.T) {
	img, err := New[RGB](3, 2, uint8(7))
	require.NoError(t, err)
	assert.Equal(t, 3, img.Width())
	assert.Equal(t, 2, img.Height())
	assert.Equal(t, 3, img.Channels())
	assert.Equal(t, 6, img.PixelCount())
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
	assert.Len(t, img.Data(), 18)
	for _, v := range img.Data() {
		assert.Equal(t, uint8(7), v)
	}
	assert.Equal(t, "Image[RGB](3x2)", img.String())
}

func TestNewImageInvalid(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"ZeroWidth", 0, 2},
		{"ZeroHeight", 2, 0},
		{"Negative", -1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New[Intensity](tt.width, tt.height, 0.0)
			assert.ErrorIs(t, err, ErrInvalidDimensions)
		})
	}
}

func TestFromData(t *testing.T) {
	data := []uint16{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	img, err := FromData[RGB](2, 2, data)
	require.NoError(t, err)
	assert.Equal(t, Color[uint16](4, 5, 6), img.At(1, 0))
	assert.Equal(t, Color[uint16](10, 11, 12), img.At(1, 1))

	// the image owns a copy
	data[0] = 100
	assert.Equal(t, uint16(1), img.Value(0, 0, 0))

	_, err = FromData[RGB](3, 3, make([]uint8, 11))
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestOffsetLayout(t *testing.T) {
	img := Must(New[RGBA](4, 3, float32(0)))
	assert.Equal(t, 0, img.Offset(0, 0))
	assert.Equal(t, 4, img.Offset(1, 0))
	assert.Equal(t, (2*4+3)*4, img.Offset(3, 2))
	assert.Panics(t, func() { img.Offset(4, 0) })
	assert.Panics(t, func() { img.Offset(0, -1) })
	assert.Panics(t, func() { img.At(0, 3) })
}

func TestSetAndRow(t *testing.T) {
	img := Must(New[IntensityAlpha](2, 2, 0))
	img.Set(1, 1, NewPixel[IntensityAlpha](5, 9))
	img.SetValue(0, 1, 1, 3)
	assert.Equal(t, []int{0, 3, 5, 9}, img.Row(1))
	assert.Equal(t, []int{0, 0, 0, 0}, img.Row(0))
	assert.True(t, img.Contains(1, 1))
	assert.False(t, img.Contains(2, 0))
}

func TestFillCloneEqual(t *testing.T) {
	img := Must(NewFilled(2, 3, ColorAlpha(1.0, 2.0, 3.0, 4.0)))
	assert.Equal(t, ColorAlpha(1.0, 2.0, 3.0, 4.0), img.At(1, 2))

	c := img.Clone()
	require.True(t, img.Equal(c))
	c.SetValue(0, 0, 0, 42)
	assert.False(t, img.Equal(c))
	assert.Equal(t, 1.0, img.Value(0, 0, 0))

	img.Fill(ColorAlpha(0.0, 0.0, 0.0, 1.0))
	assert.Equal(t, ColorAlpha(0.0, 0.0, 0.0, 1.0), img.At(0, 0))

	other := Must(New[RGBA](3, 2, 0.0))
	assert.False(t, img.SameShape(other))
	assert.False(t, img.Equal(other))
}

func TestUserDefinedFormat(t *testing.T) {
	img := Must(New[spectral](2, 1, float64(1)))
	img.Set(1, 0, NewPixel[spectral](1.0, 2, 3, 4, 5))
	assert.Equal(t, []float64{1, 1, 1, 1, 1, 1, 2, 3, 4, 5}, img.Data())
	sum := Must(img.Add(img))
	assert.Equal(t, []float64{2, 4, 6, 8, 10}, sum.At(1, 0).Values())
}
