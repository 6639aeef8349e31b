package accel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values[T float32 | float64](n int, start, step T) []T {
	out := make([]T, n)
	v := start
	for i := range out {
		out[i] = v
		v += step
	}
	return out
}

func withEnabled(t *testing.T, on bool) {
	was := Enabled()
	SetEnabled(on)
	t.Cleanup(func() { SetEnabled(was) })
}

func TestDisabledReportsFalse(t *testing.T) {
	withEnabled(t, false)
	dst := values[float32](8, 1, 1)
	assert.False(t, AddConst(dst, 1))
	assert.False(t, Add(dst, dst))
	_, ok := Dot(dst, dst)
	assert.False(t, ok)
	assert.Equal(t, "scalar", Backend())
	assert.Equal(t, values[float32](8, 1, 1), dst)
}

func TestUnsupportedTypes(t *testing.T) {
	withEnabled(t, true)
	assert.False(t, AddConst([]uint8{1, 2}, 3))
	assert.False(t, Mul([]int{1, 2}, []int{3, 4}))
	_, ok := Dot([]int32{1}, []int32{2})
	assert.False(t, ok)
	assert.False(t, Add([]float32{1, 2}, []float32{1}), "length mismatch")
}

func TestMatchesScalar(t *testing.T) {
	withEnabled(t, true)
	if !Enabled() {
		t.Skip("acceleration unavailable")
	}
	// long enough to cover full vectors, the tail and several broadcast chunks
	const n = 3*broadcastLen + 13
	a := values[float32](n, 0.5, 0.173)
	b := values[float32](n, -7.25, 0.031)

	tests := []struct {
		name   string
		accel  func(dst []float32) bool
		scalar func(i int, v float32) float32
	}{
		{"AddConst", func(d []float32) bool { return AddConst(d, 1.7) }, func(_ int, v float32) float32 { return v + 1.7 }},
		{"SubConst", func(d []float32) bool { return SubConst(d, 1.7) }, func(_ int, v float32) float32 { return v - 1.7 }},
		{"MulConst", func(d []float32) bool { return MulConst(d, 1.7) }, func(_ int, v float32) float32 { return v * 1.7 }},
		{"DivConst", func(d []float32) bool { return DivConst(d, 1.7) }, func(_ int, v float32) float32 { return v / 1.7 }},
		{"Add", func(d []float32) bool { return Add(d, b) }, func(i int, v float32) float32 { return v + b[i] }},
		{"Sub", func(d []float32) bool { return Sub(d, b) }, func(i int, v float32) float32 { return v - b[i] }},
		{"Mul", func(d []float32) bool { return Mul(d, b) }, func(i int, v float32) float32 { return v * b[i] }},
		{"Div", func(d []float32) bool { return Div(d, b) }, func(i int, v float32) float32 { return v / b[i] }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := append([]float32(nil), a...)
			require.True(t, tt.accel(got))
			for i, v := range a {
				require.Equal(t, tt.scalar(i, v), got[i], "index %d", i)
			}
		})
	}
}

func TestDot(t *testing.T) {
	withEnabled(t, true)
	if !Enabled() {
		t.Skip("acceleration unavailable")
	}
	a := values[float64](101, 1, 1)
	b := values[float64](101, 2, 0)
	got, ok := Dot(a, b)
	require.True(t, ok)
	assert.InDelta(t, 2*101*102/2, got, 1e-9)
	assert.NotEqual(t, "scalar", Backend())
}
