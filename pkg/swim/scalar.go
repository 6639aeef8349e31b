package swim

import "math"

// Integer scalar types. Division truncates toward zero.
type Integer interface {
	~uint8 | ~uint16 | ~int | ~int32
}

// Float scalar types. Division follows IEEE 754.
type Float interface {
	~float32 | ~float64
}

// Scalar is the set of channel value types an Image can hold.
type Scalar interface {
	Integer | Float
}

// Signed scalar types.
type Signed interface {
	~int | ~int32 | ~float32 | ~float64
}

// isFloat reports whether T is a floating type
func isFloat[T Scalar]() bool {
	h := 0.5
	return T(h) != 0
}

// roundScalar rounds half away from zero for floats, identity for integers
func roundScalar[T Scalar](v T) T {
	if !isFloat[T]() {
		return v
	}
	return T(math.Round(float64(v)))
}

func clampScalar[T Scalar](v, low, high T) T {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
