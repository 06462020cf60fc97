package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	x := Vector(10, 20, 30)
	assert.Equal(t, 20.0, x.Get(1))
	assert.Panics(t, func() { x.Get(3) })
	assert.Panics(t, func() { x.Get(-1) })
}

func TestRange(t *testing.T) {
	x := Vector(1, 2, 3, 4, 5)
	r := x.Range(1, 4)

	assert.Equal(t, Shape{3}, r.Shape())
	assert.Equal(t, []float64{2, 3, 4}, r.Data())
	assert.False(t, r.SharesStorage(x), "Range copies")

	assert.Panics(t, func() { x.Range(3, 6) })
	assert.Panics(t, func() { x.Range(-1, 2) })
	assert.Panics(t, func() { x.Range(2, 2) })
}

func TestCopyInto(t *testing.T) {
	dst := Zeros(Shape{5})
	Vector(7, 8).CopyInto(dst, 2)
	assert.Equal(t, []float64{0, 0, 7, 8, 0}, dst.Data())
	assert.Panics(t, func() { Vector(1, 2).CopyInto(dst, 4) })
}

func TestReshape_IsView(t *testing.T) {
	x := Vector(0, 1, 2, 3, 4, 5)
	v := x.Reshape(2, 3)

	assert.Equal(t, Shape{2, 3}, v.Shape())
	assert.Equal(t, []int{3, 1}, v.Strides())
	assert.True(t, v.SharesStorage(x))

	v.Set(50, 1, 2)
	assert.Equal(t, 50.0, x.Get(5))
	x.Data()[0] = -1
	assert.Equal(t, -1.0, v.At(0, 0))

	assert.Panics(t, func() { x.Reshape(4) })
	assert.Panics(t, func() { x.Reshape(6, 0) })
}

func TestConcat(t *testing.T) {
	c := Concat(Vector(1, 2), Vector(3), Vector(4, 5, 6).Reshape(3, 1))
	assert.Equal(t, Shape{6}, c.Shape())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, c.Data())
	assert.Panics(t, func() { Concat() })
}
