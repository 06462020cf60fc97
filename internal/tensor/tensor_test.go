package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	s := Shape{2, 3, 4}
	assert.Equal(t, 24, s.NumElements())
	assert.Equal(t, []int{12, 4, 1}, s.ComputeStrides())
	assert.NoError(t, s.Validate())
	assert.True(t, s.Equal(Shape{2, 3, 4}))
	assert.False(t, s.Equal(Shape{2, 3}))

	c := s.Clone()
	c[0] = 9
	assert.Equal(t, 2, s[0], "Clone must not alias")

	assert.Error(t, Shape{}.Validate())
	assert.Error(t, Shape{2, 0}.Validate())
	assert.Error(t, Shape{-1}.Validate())
}

func TestAtSet(t *testing.T) {
	x := Zeros(Shape{2, 3})
	x.Set(5, 1, 2)

	assert.Equal(t, 5.0, x.At(1, 2))
	assert.Equal(t, 5.0, x.Data()[5])
	assert.Panics(t, func() { x.At(2, 0) })
	assert.Panics(t, func() { x.At(0) })
	assert.Panics(t, func() { x.Set(1, 0, 3) })
}

func TestValue(t *testing.T) {
	s := Scalar(2.5)
	assert.True(t, s.IsScalar())
	assert.Equal(t, KindScalar, s.Kind())
	assert.Equal(t, 2.5, s.Float())
	assert.Panics(t, func() { s.Tensor() })
	assert.Equal(t, 0.0, s.ZeroLike().Float())
	assert.Equal(t, 1.0, s.OneLike().Float())
	assert.Equal(t, "2.5", s.String())

	v := FromTensor(Vector(1, 2))
	assert.True(t, v.IsTensor())
	assert.Panics(t, func() { v.Float() })
	assert.Equal(t, []float64{0, 0}, v.ZeroLike().Tensor().Data())
	assert.Equal(t, []float64{1, 1}, v.OneLike().Tensor().Data())
	assert.False(t, v.ZeroLike().Tensor().SharesStorage(v.Tensor()))

	var zero Value
	assert.True(t, zero.IsScalar())
	assert.Panics(t, func() { FromTensor(nil) })
	assert.Equal(t, "tensor", KindTensor.String())
}

func TestString(t *testing.T) {
	assert.Equal(t, "Tensor[2][1 2]", Vector(1, 2).String())
}

func TestFromSlice(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	x, err := FromSlice(data, Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, x.Shape())
	assert.Equal(t, data, x.Data())

	data[0] = 100
	assert.Equal(t, 1.0, x.At(0, 0), "FromSlice copies its input")

	_, err = FromSlice(data, Shape{4})
	assert.Error(t, err)
	_, err = New(Shape{0})
	assert.Error(t, err)
}

func TestCreation(t *testing.T) {
	assert.Equal(t, []float64{0, 0, 0}, Zeros(Shape{3}).Data())
	assert.Equal(t, []float64{1, 1}, Ones(Shape{2}).Data())
	assert.Equal(t, []float64{7, 7}, Full(Shape{2}, 7).Data())
	assert.Panics(t, func() { Zeros(Shape{}) })
	assert.Panics(t, func() { Vector() })

	x := Vector(1, 2)
	c := x.Clone()
	c.Data()[0] = 9
	assert.Equal(t, 1.0, x.Get(0))
	assert.False(t, c.SharesStorage(x))
}
