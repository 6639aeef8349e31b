package codec

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/jpfielding/swim.go/pkg/swim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradient[F swim.Format](w, h int) *swim.Image[F, uint8] {
	img := swim.Must(swim.New[F](w, h, uint8(0)))
	img.ConvertRaw(func(x, y int, px []uint8) {
		for c := range px {
			px[c] = uint8(30*x + 20*y + 7*c)
		}
	})
	return img
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name string
		want Format
	}{
		{"png", PNG},
		{"PNG", PNG},
		{"jpg", JPEG},
		{"jpeg", JPEG},
		{"bmp", BMP},
		{"bitmap", BMP},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFormat(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f)
		})
	}
	_, err := ParseFormat("tiff")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Equal(t, "unknown", FormatUnknown.String())
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("/tmp/a.JPG")
	require.NoError(t, err)
	assert.Equal(t, JPEG, f)
	f, err = FormatFromPath("b.png")
	require.NoError(t, err)
	assert.Equal(t, PNG, f)
	_, err = FormatFromPath("c.gif")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func testRoundTrip[F swim.Format](t *testing.T, f Format) {
	img := gradient[F](5, 4)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, img, f, nil))
	got, err := Read[F](&buf)
	require.NoError(t, err)
	assert.True(t, img.Equal(got), "%s %s", f, swim.FormatName[F]())
}

func TestLosslessRoundTrip(t *testing.T) {
	t.Run("png/Intensity", func(t *testing.T) { testRoundTrip[swim.Intensity](t, PNG) })
	t.Run("png/IntensityAlpha", func(t *testing.T) { testRoundTrip[swim.IntensityAlpha](t, PNG) })
	t.Run("png/RGB", func(t *testing.T) { testRoundTrip[swim.RGB](t, PNG) })
	t.Run("png/RGBA", func(t *testing.T) { testRoundTrip[swim.RGBA](t, PNG) })
	t.Run("png/ARGB", func(t *testing.T) { testRoundTrip[swim.ARGB](t, PNG) })
	t.Run("bmp/RGB", func(t *testing.T) { testRoundTrip[swim.RGB](t, BMP) })
	t.Run("bmp/Intensity", func(t *testing.T) { testRoundTrip[swim.Intensity](t, BMP) })
}

func TestJPEGApproximate(t *testing.T) {
	img := swim.Must(swim.NewFilled(16, 16, swim.Color[uint8](200, 100, 50)))
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, img, JPEG, &Options{Quality: 95}))
	got, err := Read[swim.RGB](&buf)
	require.NoError(t, err)
	for i, v := range got.Data() {
		assert.InDelta(t, img.Data()[i], v, 6, "index %d", i)
	}
}

func TestAlphaRejected(t *testing.T) {
	img := gradient[swim.RGBA](2, 2)
	for _, f := range []Format{BMP, JPEG} {
		var buf bytes.Buffer
		err := Write(&buf, img, f, nil)
		assert.ErrorIs(t, err, ErrAlphaNotSupported, f.String())
		assert.Zero(t, buf.Len(), "nothing written for %s", f)

		err = EncodeRaw(&buf, make([]uint8, 8), 2, 2, 2, f, nil)
		assert.ErrorIs(t, err, ErrAlphaNotSupported)
		assert.Zero(t, buf.Len())
	}
}

// spectral has no channel the encoders understand
type spectral struct{}

func (spectral) Channels() int                  { return 3 }
func (spectral) Name() string                   { return "Spectral" }
func (spectral) Index(swim.Channel) (int, bool) { return 0, false }

func TestUnsupportedLayout(t *testing.T) {
	img := swim.Must(swim.New[spectral](2, 2, uint8(1)))
	var buf bytes.Buffer
	assert.ErrorIs(t, Write(&buf, img, PNG, nil), ErrUnsupportedLayout)

	var png bytes.Buffer
	require.NoError(t, Write(&png, gradient[swim.RGB](2, 2), PNG, nil))
	_, err := Read[spectral](&png)
	assert.ErrorIs(t, err, ErrUnsupportedLayout)

	assert.ErrorIs(t, EncodeRaw(&buf, make([]uint8, 20), 2, 2, 5, PNG, nil), ErrUnsupportedLayout)
	assert.ErrorIs(t, EncodeRaw(&buf, make([]uint8, 11), 2, 2, 3, PNG, nil), swim.ErrInvalidDimensions)
}

func TestDecodeRaw(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, gradient[swim.RGB](3, 2), PNG, nil))
	pix, w, h, ch, err := DecodeRaw(&buf)
	require.NoError(t, err)
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, 3, ch)
	assert.Equal(t, gradient[swim.RGB](3, 2).Data(), pix)

	_, _, _, _, err = DecodeRaw(bytes.NewReader([]byte("not an image")))
	assert.ErrorIs(t, err, ErrFailedToRead)
}

func TestReadConvertsLayout(t *testing.T) {
	gray := swim.Must(swim.FromData[swim.Intensity](2, 1, []uint8{10, 200}))
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, gray, PNG, nil))
	rgba, err := Read[swim.RGBA](bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, []uint8{10, 10, 10, 255, 200, 200, 200, 255}, rgba.Data())

	color := swim.Must(swim.NewFilled(1, 1, swim.Color[uint8](255, 0, 0)))
	buf.Reset()
	require.NoError(t, Write(&buf, color, PNG, nil))
	luma, err := Read[swim.Intensity](&buf)
	require.NoError(t, err)
	assert.Equal(t, []uint8{76}, luma.Data())
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	img := gradient[swim.RGBA](4, 4)
	require.NoError(t, WriteFile(path, img, PNG, nil))
	got, err := ReadFile[swim.RGBA](path)
	require.NoError(t, err)
	assert.True(t, img.Equal(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestWriteFileFailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.jpg")
	err := WriteFile(path, gradient[swim.RGBA](2, 2), JPEG, nil)
	assert.ErrorIs(t, err, ErrAlphaNotSupported)

	err = writeAtomic(path, func(w io.Writer) error { return errors.New("encoder exploded") })
	assert.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = ReadFile[swim.RGB](filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, ErrFailedToRead)
}

func TestFloatConversion(t *testing.T) {
	img := swim.Must(swim.FromData[swim.Intensity](5, 1, []float32{-0.5, 0, 0.5, 1, 1.5}))
	assert.Equal(t, []uint8{0, 0, 128, 255, 255}, ToUint8(img).Data())

	var buf bytes.Buffer
	require.NoError(t, WriteFloat(&buf, img, PNG, nil))
	back, err := Read[swim.Intensity](&buf)
	require.NoError(t, err)
	f := ToFloat[swim.Intensity, float64](back)
	assert.InDeltaSlice(t, []float64{0, 0, 128.0 / 255, 1, 1}, f.Data(), 1e-12)

	assert.ErrorIs(t, WriteFloat(&buf, swim.Must(swim.New[swim.RGBA](1, 1, float32(0))), BMP, nil), ErrAlphaNotSupported)
}

func TestResize(t *testing.T) {
	img := swim.Must(swim.NewFilled(8, 6, swim.ColorAlpha[uint8](10, 20, 30, 255)))
	small, err := Resize(img, 4, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, small.Width())
	assert.Equal(t, 3, small.Height())
	// a flat image stays flat
	for y := range small.Height() {
		for x := range small.Width() {
			assert.Equal(t, swim.ColorAlpha[uint8](10, 20, 30, 255), small.At(x, y))
		}
	}

	gray := swim.Must(swim.New[swim.Intensity](3, 3, uint8(90)))
	big, err := Resize(gray, 9, 9)
	require.NoError(t, err)
	assert.Equal(t, uint8(90), big.Value(4, 4, 0))

	rgb := swim.Must(swim.NewFilled(4, 4, swim.Color[uint8](1, 2, 3)))
	half, err := Resize(rgb, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, swim.Color[uint8](1, 2, 3), half.At(1, 1))

	_, err = Resize(img, 0, 1)
	assert.ErrorIs(t, err, swim.ErrInvalidDimensions)
}

func TestResizeFloat(t *testing.T) {
	// channels with unrelated ranges, one of them negative
	img := swim.Must(swim.New[swim.RGB](8, 6, float32(0)))
	img.ConvertRaw(func(x, y int, px []float32) {
		px[0] = 100
		px[1] = float32(2*y - 5)
		px[2] = float32(x) * 0.25
	})

	same, err := ResizeFloat(img, 8, 6)
	require.NoError(t, err)
	assert.InDeltaSlice(t, img.Data(), same.Data(), 1e-3)

	half, err := ResizeFloat(img, 4, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, half.Width())
	assert.Equal(t, 3, half.Height())
	for y := range half.Height() {
		for x := range half.Width() {
			px := half.At(x, y)
			assert.Equal(t, float32(100), px.At(0))
			assert.GreaterOrEqual(t, px.At(1), float32(-5))
			assert.LessOrEqual(t, px.At(1), float32(5))
			assert.GreaterOrEqual(t, px.At(2), float32(0))
			assert.LessOrEqual(t, px.At(2), float32(1.75))
		}
	}
	// the middle row sits on source row 2.5 of the ramp
	assert.InDelta(t, 0, half.At(1, 1).At(1), 0.01)

	_, err = ResizeFloat(img, 3, 0)
	assert.ErrorIs(t, err, swim.ErrInvalidDimensions)
}
