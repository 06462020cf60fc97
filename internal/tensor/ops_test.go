package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementwise(t *testing.T) {
	a := Vector(1, 2, 4)
	b := Vector(2, 2, 1)

	assert.Equal(t, []float64{3, 4, 5}, Add(a, b).Data())
	assert.Equal(t, []float64{-1, 0, 3}, Sub(a, b).Data())
	assert.Equal(t, []float64{2, 4, 4}, Mul(a, b).Data())
	assert.Equal(t, []float64{0.5, 1, 4}, Div(a, b).Data())
	assert.Equal(t, []float64{1, 4, 4}, Pow(a, b).Data())
	assert.Equal(t, []float64{1, 2, 1}, Min(a, b).Data())
	assert.Equal(t, []float64{2, 2, 4}, Max(a, b).Data())
	assert.InDeltaSlice(t, []float64{math.Atan2(1, 2), math.Atan2(2, 2), math.Atan2(4, 1)}, Atan2(a, b).Data(), 1e-15)
	assert.Equal(t, []float64{-1, -2, -4}, a.Neg().Data())
	assert.Equal(t, []float64{1, 4, 16}, a.Map(func(v float64) float64 { return v * v }).Data())
	assert.Equal(t, []float64{3, 4, 5}, Zip(a, b, func(x, y float64) float64 { return x + y }).Data())

	assert.Equal(t, []float64{1, 2, 4}, a.Data(), "inputs are not modified")
}

func TestElementwise_ShapeMismatchPanics(t *testing.T) {
	a := Vector(1, 2, 3)
	b := Vector(1, 2)
	assert.Panics(t, func() { Add(a, b) })
	assert.Panics(t, func() { Pow(a, b) })
	assert.Panics(t, func() { Add(Vector(1, 2, 3, 4), Vector(1, 2, 3, 4).Reshape(2, 2)) })
	assert.Panics(t, func() { a.AddInPlace(b) })
}

func TestInPlace(t *testing.T) {
	acc := Vector(1, 1)
	acc.AddInPlace(Vector(2, 3))
	assert.Equal(t, []float64{3, 4}, acc.Data())

	acc.AddScaledInPlace(-2, Vector(1, 1))
	assert.Equal(t, []float64{1, 2}, acc.Data())

	acc.Fill(0)
	assert.Equal(t, []float64{0, 0}, acc.Data())
}

func TestReductions(t *testing.T) {
	x := Vector(1, 2, 3)
	assert.Equal(t, 6.0, x.Sum())
	assert.Equal(t, 14.0, Dot(x, x))
	assert.True(t, x.All())
	assert.True(t, x.Any())
	assert.False(t, Vector(0, 1).All())
	assert.False(t, Vector(0, 0).Any())
}

func TestSoftmax(t *testing.T) {
	y := Vector(1, 2, 3).Softmax()
	assert.InDelta(t, 1.0, y.Sum(), 1e-12)
	assert.Less(t, y.Get(0), y.Get(1))

	e := []float64{math.Exp(1), math.Exp(2), math.Exp(3)}
	total := e[0] + e[1] + e[2]
	assert.InDeltaSlice(t, []float64{e[0] / total, e[1] / total, e[2] / total}, y.Data(), 1e-12)

	big := Vector(1000, 1000).Softmax()
	assert.Equal(t, []float64{0.5, 0.5}, big.Data(), "max shift avoids overflow")
}
