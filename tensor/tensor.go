// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/autograd/internal/tensor"
)

// Type aliases for public API

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a dense float64 tensor: a shape over a shared Storage buffer.
type Tensor = tensor.Tensor

// Storage is the flat buffer shared by a tensor and its reshaped views.
type Storage = tensor.Storage

// Value is a primal value: a Scalar or a Tensor.
type Value = tensor.Value

// Kind tells which representation a Value holds.
type Kind = tensor.Kind

// Value kinds.
const (
	KindScalar = tensor.KindScalar
	KindTensor = tensor.KindTensor
)

// New creates a zero-filled tensor with the given shape.
func New(shape Shape) (*Tensor, error) {
	return tensor.New(shape)
}

// FromSlice creates a tensor from a copy of data.
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// Vector creates a 1-D tensor holding a copy of values.
func Vector(values ...float64) *Tensor {
	return tensor.Vector(values...)
}

// Zeros creates a zero-filled tensor.
func Zeros(shape Shape) *Tensor {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with 1.
func Ones(shape Shape) *Tensor {
	return tensor.Ones(shape)
}

// Full creates a tensor filled with value.
func Full(shape Shape, value float64) *Tensor {
	return tensor.Full(shape, value)
}

// Scalar wraps a number as a Value.
func Scalar(v float64) Value {
	return tensor.Scalar(v)
}

// FromTensor wraps a tensor as a Value.
func FromTensor(t *Tensor) Value {
	return tensor.FromTensor(t)
}

// Concat joins tensors, in order, into one 1-D tensor.
func Concat(tensors ...*Tensor) *Tensor {
	return tensor.Concat(tensors...)
}
