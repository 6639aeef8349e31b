// Package accel routes flat float32/float64 buffer arithmetic through the
// go-highway SIMD kernels.
//
// Every function reports whether it handled the call. A false return means
// the buffer type is not accelerated or acceleration is off and the caller
// runs its own scalar loop. Accelerated results are bit-identical to the
// scalar loops for add, sub, mul and div; Dot may differ by summation order.
//
// Acceleration is off when built with -tags purego, when SWIM_NO_ACCEL or
// HWY_NO_SIMD is set, or after SetEnabled(false).
package accel

import (
	"log/slog"
	"os"
	"sync/atomic"
)

var enabled atomic.Bool

func init() {
	enabled.Store(available && os.Getenv("SWIM_NO_ACCEL") == "" && !envDisabled())
}

// Enabled reports whether calls are accelerated.
func Enabled() bool {
	return enabled.Load()
}

// SetEnabled toggles acceleration. It has no effect in purego builds.
func SetEnabled(on bool) {
	enabled.Store(on && available)
	slog.Debug("accelerated math", slog.Bool("enabled", Enabled()), slog.String("backend", Backend()))
}

// Backend names the active implementation.
func Backend() string {
	if !Enabled() {
		return "scalar"
	}
	return backendName()
}

// AddConst computes dst[i] += c.
func AddConst[T any](dst []T, c T) bool {
	if !Enabled() {
		return false
	}
	switch d := any(dst).(type) {
	case []float32:
		addConst(d, any(c).(float32))
	case []float64:
		addConst(d, any(c).(float64))
	default:
		return false
	}
	return true
}

// SubConst computes dst[i] -= c as dst[i] += -c, which IEEE 754 defines identically.
func SubConst[T any](dst []T, c T) bool {
	if !Enabled() {
		return false
	}
	switch d := any(dst).(type) {
	case []float32:
		addConst(d, -any(c).(float32))
	case []float64:
		addConst(d, -any(c).(float64))
	default:
		return false
	}
	return true
}

// MulConst computes dst[i] *= c.
func MulConst[T any](dst []T, c T) bool {
	if !Enabled() {
		return false
	}
	switch d := any(dst).(type) {
	case []float32:
		mulConst(d, any(c).(float32))
	case []float64:
		mulConst(d, any(c).(float64))
	default:
		return false
	}
	return true
}

// DivConst computes dst[i] /= c with a true division, not a reciprocal multiply.
func DivConst[T any](dst []T, c T) bool {
	if !Enabled() {
		return false
	}
	switch d := any(dst).(type) {
	case []float32:
		divConst(d, any(c).(float32))
	case []float64:
		divConst(d, any(c).(float64))
	default:
		return false
	}
	return true
}

// Add computes dst[i] += s[i]. The slices must have equal length.
func Add[T any](dst, s []T) bool {
	return elementwise(dst, s, add[float32], add[float64])
}

// Sub computes dst[i] -= s[i].
func Sub[T any](dst, s []T) bool {
	return elementwise(dst, s, sub[float32], sub[float64])
}

// Mul computes dst[i] *= s[i].
func Mul[T any](dst, s []T) bool {
	return elementwise(dst, s, mul[float32], mul[float64])
}

// Div computes dst[i] /= s[i].
func Div[T any](dst, s []T) bool {
	return elementwise(dst, s, div[float32], div[float64])
}

func elementwise[T any](dst, s []T, f32 func(dst, s []float32), f64 func(dst, s []float64)) bool {
	if !Enabled() || len(dst) != len(s) {
		return false
	}
	switch d := any(dst).(type) {
	case []float32:
		f32(d, any(s).([]float32))
	case []float64:
		f64(d, any(s).([]float64))
	default:
		return false
	}
	return true
}

// Dot returns sum(a[i]*b[i]) over equal length slices.
func Dot[T any](a, b []T) (T, bool) {
	var zero T
	if !Enabled() || len(a) != len(b) {
		return zero, false
	}
	switch av := any(a).(type) {
	case []float32:
		return any(dot(av, any(b).([]float32))).(T), true
	case []float64:
		return any(dot(av, any(b).([]float64))).(T), true
	}
	return zero, false
}

// broadcastLen is the chunk size for kernels that need c as a slice
const broadcastLen = 256
