package swim

import "github.com/jpfielding/swim.go/pkg/accel"

// Scalar loops shared by pixels and images. dst and src have equal length.

func addTo[T Scalar](dst, src []T) {
	for i := range dst {
		dst[i] += src[i]
	}
}

func subTo[T Scalar](dst, src []T) {
	for i := range dst {
		dst[i] -= src[i]
	}
}

func mulTo[T Scalar](dst, src []T) {
	for i := range dst {
		dst[i] *= src[i]
	}
}

func divTo[T Scalar](dst, src []T) {
	for i := range dst {
		dst[i] /= src[i]
	}
}

func addConst[T Scalar](dst []T, k T) {
	for i := range dst {
		dst[i] += k
	}
}

func subConst[T Scalar](dst []T, k T) {
	for i := range dst {
		dst[i] -= k
	}
}

func mulConst[T Scalar](dst []T, k T) {
	for i := range dst {
		dst[i] *= k
	}
}

func divConst[T Scalar](dst []T, k T) {
	for i := range dst {
		dst[i] /= k
	}
}

// Whole buffer kernels try the accelerated backend first.

func bufAdd[T Scalar](dst, src []T) {
	if !accel.Add(dst, src) {
		addTo(dst, src)
	}
}

func bufSub[T Scalar](dst, src []T) {
	if !accel.Sub(dst, src) {
		subTo(dst, src)
	}
}

func bufMul[T Scalar](dst, src []T) {
	if !accel.Mul(dst, src) {
		mulTo(dst, src)
	}
}

func bufDiv[T Scalar](dst, src []T) {
	if !accel.Div(dst, src) {
		divTo(dst, src)
	}
}

func bufAddConst[T Scalar](dst []T, k T) {
	if !accel.AddConst(dst, k) {
		addConst(dst, k)
	}
}

func bufSubConst[T Scalar](dst []T, k T) {
	if !accel.SubConst(dst, k) {
		subConst(dst, k)
	}
}

func bufMulConst[T Scalar](dst []T, k T) {
	if !accel.MulConst(dst, k) {
		mulConst(dst, k)
	}
}

func bufDivConst[T Scalar](dst []T, k T) {
	if !accel.DivConst(dst, k) {
		divConst(dst, k)
	}
}
