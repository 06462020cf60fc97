package tensor

import (
	"math"

	"github.com/gomlx/exceptions"
	"gonum.org/v1/gonum/floats"
)

// checkSameShape panics unless a and b have identical shapes.
// There is no broadcasting: elementwise operations need exact matches.
func checkSameShape(op string, a, b *Tensor) {
	if !a.shape.Equal(b.shape) {
		exceptions.Panicf("%s: shape mismatch %v vs %v", op, a.shape, b.shape)
	}
}

// binary applies fn elementwise over two equally shaped tensors.
func binary(op string, a, b *Tensor, fn func(x, y float64) float64) *Tensor {
	checkSameShape(op, a, b)
	out := Zeros(a.shape)
	dst, xs, ys := out.Data(), a.Data(), b.Data()
	for i := range dst {
		dst[i] = fn(xs[i], ys[i])
	}
	return out
}

// Add returns a + b elementwise.
func Add(a, b *Tensor) *Tensor {
	checkSameShape("add", a, b)
	out := Zeros(a.shape)
	floats.AddTo(out.Data(), a.Data(), b.Data())
	return out
}

// Sub returns a - b elementwise.
func Sub(a, b *Tensor) *Tensor {
	checkSameShape("sub", a, b)
	out := Zeros(a.shape)
	floats.SubTo(out.Data(), a.Data(), b.Data())
	return out
}

// Mul returns a * b elementwise.
func Mul(a, b *Tensor) *Tensor {
	checkSameShape("mul", a, b)
	out := Zeros(a.shape)
	floats.MulTo(out.Data(), a.Data(), b.Data())
	return out
}

// Div returns a / b elementwise.
func Div(a, b *Tensor) *Tensor {
	checkSameShape("div", a, b)
	out := Zeros(a.shape)
	floats.DivTo(out.Data(), a.Data(), b.Data())
	return out
}

// Pow returns a ** b elementwise.
func Pow(a, b *Tensor) *Tensor {
	return binary("pow", a, b, math.Pow)
}

// Min returns the elementwise minimum of a and b.
func Min(a, b *Tensor) *Tensor {
	return binary("min", a, b, math.Min)
}

// Max returns the elementwise maximum of a and b.
func Max(a, b *Tensor) *Tensor {
	return binary("max", a, b, math.Max)
}

// Atan2 returns atan2(a, b) elementwise.
func Atan2(a, b *Tensor) *Tensor {
	return binary("atan2", a, b, math.Atan2)
}

// Zip applies fn elementwise over a and b. Panics if shapes differ.
func Zip(a, b *Tensor, fn func(x, y float64) float64) *Tensor {
	return binary("zip", a, b, fn)
}

// Map returns a new tensor with fn applied to every element.
func (t *Tensor) Map(fn func(float64) float64) *Tensor {
	out := Zeros(t.shape)
	dst, src := out.Data(), t.Data()
	for i, v := range src {
		dst[i] = fn(v)
	}
	return out
}

// Neg returns -t.
func (t *Tensor) Neg() *Tensor {
	return t.Scale(-1)
}

// Scale returns c * t.
func (t *Tensor) Scale(c float64) *Tensor {
	out := Zeros(t.shape)
	floats.ScaleTo(out.Data(), c, t.Data())
	return out
}

// AddInPlace accumulates src into t (t += src).
func (t *Tensor) AddInPlace(src *Tensor) {
	checkSameShape("add in place", t, src)
	floats.Add(t.Data(), src.Data())
}

// AddScaledInPlace accumulates alpha*src into t.
func (t *Tensor) AddScaledInPlace(alpha float64, src *Tensor) {
	checkSameShape("add scaled in place", t, src)
	floats.AddScaled(t.Data(), alpha, src.Data())
}

// Fill sets every element of t to value.
func (t *Tensor) Fill(value float64) {
	data := t.Data()
	for i := range data {
		data[i] = value
	}
}

// Sum returns the sum of all elements.
func (t *Tensor) Sum() float64 {
	return floats.Sum(t.Data())
}

// Dot returns the sum of the elementwise product of a and b.
func Dot(a, b *Tensor) float64 {
	checkSameShape("dot", a, b)
	return floats.Dot(a.Data(), b.Data())
}

// Any reports whether any element is non-zero.
func (t *Tensor) Any() bool {
	for _, v := range t.Data() {
		if v != 0 {
			return true
		}
	}
	return false
}

// All reports whether every element is non-zero.
func (t *Tensor) All() bool {
	for _, v := range t.Data() {
		if v == 0 {
			return false
		}
	}
	return true
}

// Softmax returns the normalized exponential of t, taken over all elements
// as a single 1-D distribution. The result has t's shape.
//
// The max is subtracted before exponentiation for numerical stability.
func (t *Tensor) Softmax() *Tensor {
	src := t.Data()
	maxVal := floats.Max(src)
	out := t.Map(func(v float64) float64 { return math.Exp(v - maxVal) })
	floats.Scale(1/out.Sum(), out.Data())
	return out
}
