package swim

// Image/image operators require equal width and height and fail with
// ErrShapeMismatch before touching either operand.

// AddAssign adds o elementwise in place.
func (img *Image[F, T]) AddAssign(o *Image[F, T]) error {
	if err := img.checkShape(o); err != nil {
		return err
	}
	bufAdd(img.data, o.data)
	return nil
}

// SubAssign subtracts o elementwise in place.
func (img *Image[F, T]) SubAssign(o *Image[F, T]) error {
	if err := img.checkShape(o); err != nil {
		return err
	}
	bufSub(img.data, o.data)
	return nil
}

// MulAssign multiplies by o elementwise in place.
func (img *Image[F, T]) MulAssign(o *Image[F, T]) error {
	if err := img.checkShape(o); err != nil {
		return err
	}
	bufMul(img.data, o.data)
	return nil
}

// DivAssign divides by o elementwise in place.
// Integer types truncate toward zero.
func (img *Image[F, T]) DivAssign(o *Image[F, T]) error {
	if err := img.checkShape(o); err != nil {
		return err
	}
	bufDiv(img.data, o.data)
	return nil
}

// Add returns img + o.
func (img *Image[F, T]) Add(o *Image[F, T]) (*Image[F, T], error) {
	return img.binary(o, (*Image[F, T]).AddAssign)
}

// Sub returns img - o.
func (img *Image[F, T]) Sub(o *Image[F, T]) (*Image[F, T], error) {
	return img.binary(o, (*Image[F, T]).SubAssign)
}

// Mul returns img * o.
func (img *Image[F, T]) Mul(o *Image[F, T]) (*Image[F, T], error) {
	return img.binary(o, (*Image[F, T]).MulAssign)
}

// Div returns img / o.
func (img *Image[F, T]) Div(o *Image[F, T]) (*Image[F, T], error) {
	return img.binary(o, (*Image[F, T]).DivAssign)
}

func (img *Image[F, T]) binary(o *Image[F, T], op func(*Image[F, T], *Image[F, T]) error) (*Image[F, T], error) {
	// check before cloning so a mismatch allocates nothing
	if err := img.checkShape(o); err != nil {
		return nil, err
	}
	out := img.Clone()
	if err := op(out, o); err != nil {
		return nil, err
	}
	return out, nil
}

// Scalar broadcast applies k to every channel of every pixel.

func (img *Image[F, T]) AddScalarAssign(k T) {
	img.ChannelwiseConvert(func(buf []T) { bufAddConst(buf, k) })
}

func (img *Image[F, T]) SubScalarAssign(k T) {
	img.ChannelwiseConvert(func(buf []T) { bufSubConst(buf, k) })
}

func (img *Image[F, T]) MulScalarAssign(k T) {
	img.ChannelwiseConvert(func(buf []T) { bufMulConst(buf, k) })
}

func (img *Image[F, T]) DivScalarAssign(k T) {
	img.ChannelwiseConvert(func(buf []T) { bufDivConst(buf, k) })
}

func (img *Image[F, T]) AddScalar(k T) *Image[F, T] {
	out := img.Clone()
	out.AddScalarAssign(k)
	return out
}

func (img *Image[F, T]) SubScalar(k T) *Image[F, T] {
	out := img.Clone()
	out.SubScalarAssign(k)
	return out
}

func (img *Image[F, T]) MulScalar(k T) *Image[F, T] {
	out := img.Clone()
	out.MulScalarAssign(k)
	return out
}

func (img *Image[F, T]) DivScalar(k T) *Image[F, T] {
	out := img.Clone()
	out.DivScalarAssign(k)
	return out
}

// ClipAssign clamps every channel to [low, high].
func (img *Image[F, T]) ClipAssign(low, high T) {
	for i, v := range img.data {
		img.data[i] = clampScalar(v, low, high)
	}
}

// Clip returns a copy clamped to [low, high].
func (img *Image[F, T]) Clip(low, high T) *Image[F, T] {
	out := img.Clone()
	out.ClipAssign(low, high)
	return out
}

// RoundAssign rounds float channels half away from zero. Integer images are unchanged.
func (img *Image[F, T]) RoundAssign() {
	if !isFloat[T]() {
		return
	}
	for i, v := range img.data {
		img.data[i] = roundScalar(v)
	}
}

// Round returns a rounded copy.
func (img *Image[F, T]) Round() *Image[F, T] {
	out := img.Clone()
	out.RoundAssign()
	return out
}

// Negate returns -img for signed scalar types.
func Negate[F Format, T Signed](img *Image[F, T]) *Image[F, T] {
	out := img.Clone()
	for i, v := range out.data {
		out.data[i] = -v
	}
	return out
}
