package swim

import "errors"

var (
	// ErrShapeMismatch is returned when operands differ in geometry or channel count
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrInvalidDimensions is returned for non-positive sizes or raw data of the wrong length
	ErrInvalidDimensions = errors.New("invalid dimensions")
)
