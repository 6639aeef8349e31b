package swim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spectral is a user defined five band format with no named channels
type spectral struct{}

func (spectral) Channels() int             { return 5 }
func (spectral) Name() string              { return "Spectral" }
func (spectral) Index(Channel) (int, bool) { return 0, false }

func TestFormatChannels(t *testing.T) {
	assert.Equal(t, 1, Channels[Intensity]())
	assert.Equal(t, 2, Channels[IntensityAlpha]())
	assert.Equal(t, 3, Channels[RGB]())
	assert.Equal(t, 4, Channels[RGBA]())
	assert.Equal(t, 4, Channels[ARGB]())
	assert.Equal(t, 5, Channels[spectral]())

	assert.True(t, HasAlpha[ARGB]())
	assert.False(t, HasAlpha[RGB]())
	i, ok := ChannelIndex[ARGB](ChannelAlpha)
	require.True(t, ok)
	assert.Equal(t, 0, i)
	i, ok = ChannelIndex[ARGB](ChannelBlue)
	require.True(t, ok)
	assert.Equal(t, 3, i)
}

func TestPixelConstruct(t *testing.T) {
	px := NewPixel[RGB](1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, px.Values())
	assert.Equal(t, 3, px.Len())
	assert.Equal(t, "RGB(1, 2, 3)", px.String())

	_, err := PixelFrom[RGB]([]int{1, 2})
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Panics(t, func() { NewPixel[RGBA](1, 2, 3) })

	assert.Equal(t, []float32{0.5, 0.5, 0.5, 0.5, 0.5}, PixelOf[spectral](float32(0.5)).Values())
}

func TestPixelValueSemantics(t *testing.T) {
	a := Color[uint8](10, 20, 30)
	b := a
	b.Set(0, 99)
	assert.Equal(t, uint8(10), a.At(0))
	assert.Equal(t, uint8(99), b.At(0))
}

func TestPixelChannels(t *testing.T) {
	px := NewPixel[ARGB, uint8](255, 1, 2, 3)
	assert.Equal(t, uint8(255), px.Channel(ChannelAlpha))
	assert.Equal(t, uint8(1), px.Channel(ChannelRed))
	px.SetChannel(ChannelBlue, 7)
	assert.Equal(t, []uint8{255, 1, 2, 7}, px.Values())
	assert.Panics(t, func() { px.Channel(ChannelIntensity) })
}

func TestPixelArithmetic(t *testing.T) {
	a := Color(1.0, 2.0, 3.0)
	b := Color(4.0, 5.0, 6.0)
	assert.Equal(t, []float64{5, 7, 9}, a.Add(b).Values())
	assert.Equal(t, []float64{3, 3, 3}, b.Sub(a).Values())
	assert.Equal(t, []float64{4, 10, 18}, a.Mul(b).Values())
	assert.Equal(t, []float64{4, 2.5, 2}, b.Div(a).Values())
	assert.Equal(t, []float64{2, 4, 6}, a.MulScalar(2).Values())
	assert.Equal(t, []float64{0, 1, 2}, a.SubScalar(1).Values())

	// operands are untouched
	assert.Equal(t, []float64{1, 2, 3}, a.Values())

	c := a
	c.AddAssign(b)
	assert.Equal(t, []float64{5, 7, 9}, c.Values())
}

func TestPixelIntegerDivisionTruncates(t *testing.T) {
	px := Gray(7)
	assert.Equal(t, 3, px.DivScalar(2).At(0))
	assert.Equal(t, -3, Gray(-7).DivScalar(2).At(0))
}

func TestPixelRef(t *testing.T) {
	img := Must(New[RGB](2, 2, 0))
	ref := img.Ref(1, 0)
	ref.Assign(Color(1, 2, 3))
	assert.Equal(t, []int{0, 0, 0, 1, 2, 3, 0, 0, 0, 0, 0, 0}, img.Data())

	ref.AddAssign(Color(10, 10, 10))
	assert.Equal(t, Color(11, 12, 13), img.At(1, 0))

	// a Pixel read through a ref is a detached copy
	px := ref.Pixel()
	px.Set(0, 0)
	assert.Equal(t, 11, img.Value(1, 0, 0))

	_, err := NewPixelRef[RGB](0, 0, []int{1, 2})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}
