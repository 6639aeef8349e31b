package swim

// Channel names a semantic channel of a pixel format.
type Channel int

const (
	ChannelIntensity Channel = iota
	ChannelRed
	ChannelGreen
	ChannelBlue
	ChannelAlpha
)

// String returns the channel name
func (c Channel) String() string {
	switch c {
	case ChannelIntensity:
		return "intensity"
	case ChannelRed:
		return "red"
	case ChannelGreen:
		return "green"
	case ChannelBlue:
		return "blue"
	case ChannelAlpha:
		return "alpha"
	}
	return "unknown"
}

// Format describes the static channel layout of a pixel.
//
// Implementations are zero-size types; the channel count is read from the
// zero value of the type parameter and never stored per image.
//
// A format with five channels of anonymous meaning only needs:
//
//	type Bands5 struct{}
//
//	func (Bands5) Channels() int                  { return 5 }
//	func (Bands5) Name() string                   { return "Bands5" }
//	func (Bands5) Index(swim.Channel) (int, bool) { return 0, false }
type Format interface {
	// Channels is the number of scalars per pixel
	Channels() int
	// Name identifies the format in logs and errors
	Name() string
	// Index returns the position of a semantic channel within the pixel
	Index(ch Channel) (int, bool)
}

// Intensity is a single channel grayscale format.
type Intensity struct{}

func (Intensity) Channels() int { return 1 }
func (Intensity) Name() string  { return "Intensity" }
func (Intensity) Index(ch Channel) (int, bool) {
	if ch == ChannelIntensity {
		return 0, true
	}
	return 0, false
}

// IntensityAlpha is grayscale with a trailing alpha channel.
type IntensityAlpha struct{}

func (IntensityAlpha) Channels() int { return 2 }
func (IntensityAlpha) Name() string  { return "IntensityAlpha" }
func (IntensityAlpha) Index(ch Channel) (int, bool) {
	switch ch {
	case ChannelIntensity:
		return 0, true
	case ChannelAlpha:
		return 1, true
	}
	return 0, false
}

// RGB is three channel red, green, blue.
type RGB struct{}

func (RGB) Channels() int { return 3 }
func (RGB) Name() string  { return "RGB" }
func (RGB) Index(ch Channel) (int, bool) {
	switch ch {
	case ChannelRed:
		return 0, true
	case ChannelGreen:
		return 1, true
	case ChannelBlue:
		return 2, true
	}
	return 0, false
}

// RGBA is RGB with a trailing alpha channel.
type RGBA struct{}

func (RGBA) Channels() int { return 4 }
func (RGBA) Name() string  { return "RGBA" }
func (RGBA) Index(ch Channel) (int, bool) {
	switch ch {
	case ChannelRed:
		return 0, true
	case ChannelGreen:
		return 1, true
	case ChannelBlue:
		return 2, true
	case ChannelAlpha:
		return 3, true
	}
	return 0, false
}

// ARGB is RGB with a leading alpha channel.
type ARGB struct{}

func (ARGB) Channels() int { return 4 }
func (ARGB) Name() string  { return "ARGB" }
func (ARGB) Index(ch Channel) (int, bool) {
	switch ch {
	case ChannelAlpha:
		return 0, true
	case ChannelRed:
		return 1, true
	case ChannelGreen:
		return 2, true
	case ChannelBlue:
		return 3, true
	}
	return 0, false
}

// Channels returns the channel count of F.
func Channels[F Format]() int {
	var f F
	return f.Channels()
}

// FormatName returns the name of F.
func FormatName[F Format]() string {
	var f F
	return f.Name()
}

// ChannelIndex looks up a semantic channel of F.
func ChannelIndex[F Format](ch Channel) (int, bool) {
	var f F
	return f.Index(ch)
}

// HasAlpha reports whether F carries an alpha channel.
func HasAlpha[F Format]() bool {
	_, ok := ChannelIndex[F](ChannelAlpha)
	return ok
}
