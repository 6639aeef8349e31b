//go:build purego

package accel

// purego builds never accelerate; these bodies are unreachable because
// Enabled always reports false.

const available = false

func envDisabled() bool { return true }

func backendName() string { return "scalar" }

type floats interface{ ~float32 | ~float64 }

func addConst[T floats](dst []T, c T) {}
func mulConst[T floats](dst []T, c T) {}
func divConst[T floats](dst []T, c T) {}
func add[T floats](dst, s []T)        {}
func sub[T floats](dst, s []T)        {}
func mul[T floats](dst, s []T)        {}
func div[T floats](dst, s []T)        {}

func dot[T floats](a, b []T) T {
	var zero T
	return zero
}
