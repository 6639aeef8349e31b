//go:build !purego

package accel

import (
	"github.com/ajroetker/go-highway/hwy"
	"github.com/ajroetker/go-highway/hwy/contrib/vec"
)

const available = true

func envDisabled() bool { return hwy.NoSimdEnv() }

func backendName() string { return "hwy/" + hwy.CurrentName() }

func addConst[T hwy.Floats](dst []T, c T) { vec.AddConst(c, dst) }

func mulConst[T hwy.Floats](dst []T, c T) { vec.Scale(c, dst) }

func divConst[T hwy.Floats](dst []T, c T) {
	var buf [broadcastLen]T
	for i := range buf {
		buf[i] = c
	}
	for len(dst) > 0 {
		n := min(len(dst), len(buf))
		vec.Div(dst[:n], buf[:n])
		dst = dst[n:]
	}
}

func add[T hwy.Floats](dst, s []T) { vec.Add(dst, s) }
func sub[T hwy.Floats](dst, s []T) { vec.Sub(dst, s) }
func mul[T hwy.Floats](dst, s []T) { vec.Mul(dst, s) }
func div[T hwy.Floats](dst, s []T) { vec.Div(dst, s) }

func dot[T hwy.Floats](a, b []T) T { return vec.Dot(a, b) }
