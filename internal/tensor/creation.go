package tensor

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// New creates a zero-filled tensor with the given shape.
func New(shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "tensor.New")
	}
	return &Tensor{
		storage: newStorage(shape.NumElements()),
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
	}, nil
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	if shape.NumElements() != len(data) {
		return nil, errors.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	t, err := New(shape)
	if err != nil {
		return nil, err
	}
	copy(t.storage.data, data)
	return t, nil
}

// Vector creates a 1-D tensor holding a copy of values.
// Panics if values is empty.
func Vector(values ...float64) *Tensor {
	t, err := FromSlice(values, Shape{len(values)})
	if err != nil {
		exceptions.Panicf("tensor.Vector: %v", err)
	}
	return t
}

// Zeros creates a zero-filled tensor. Panics on an invalid shape.
func Zeros(shape Shape) *Tensor {
	t, err := New(shape)
	if err != nil {
		exceptions.Panicf("tensor.Zeros: %v", err)
	}
	return t
}

// Full creates a tensor with every element set to value. Panics on an invalid shape.
func Full(shape Shape, value float64) *Tensor {
	t := Zeros(shape)
	for i := range t.storage.data {
		t.storage.data[i] = value
	}
	return t
}

// Ones creates a tensor filled with 1. Panics on an invalid shape.
func Ones(shape Shape) *Tensor {
	return Full(shape, 1)
}

// ZerosLike creates a zero-filled tensor with the same shape as t.
func ZerosLike(t *Tensor) *Tensor {
	return Zeros(t.shape)
}

// OnesLike creates a tensor of ones with the same shape as t.
func OnesLike(t *Tensor) *Tensor {
	return Ones(t.shape)
}

// Clone creates a deep copy of the tensor in fresh storage.
func (t *Tensor) Clone() *Tensor {
	c := Zeros(t.shape)
	copy(c.storage.data, t.Data())
	return c
}
