package tensor

import (
	"fmt"

	"github.com/gomlx/exceptions"
)

// Kind tells which representation a Value holds.
type Kind uint8

// Value kinds.
const (
	KindScalar Kind = iota
	KindTensor
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindTensor:
		return "tensor"
	default:
		return "unknown"
	}
}

// Value is a primal value: either a Scalar (plain number) or a Tensor.
//
// The zero Value is the scalar 0.
type Value struct {
	kind   Kind
	scalar float64
	tensor *Tensor
}

// Scalar wraps a number as a Value.
func Scalar(v float64) Value {
	return Value{kind: KindScalar, scalar: v}
}

// FromTensor wraps a tensor as a Value. Panics if t is nil.
func FromTensor(t *Tensor) Value {
	if t == nil {
		exceptions.Panicf("tensor.FromTensor: nil tensor")
	}
	return Value{kind: KindTensor, tensor: t}
}

// Kind returns the value kind.
func (v Value) Kind() Kind {
	return v.kind
}

// IsScalar reports whether v holds a Scalar.
func (v Value) IsScalar() bool {
	return v.kind == KindScalar
}

// IsTensor reports whether v holds a Tensor.
func (v Value) IsTensor() bool {
	return v.kind == KindTensor
}

// Float returns the scalar. Panics if v is a tensor.
func (v Value) Float() float64 {
	if v.kind != KindScalar {
		exceptions.Panicf("value is a tensor of shape %v, not a scalar", v.tensor.shape)
	}
	return v.scalar
}

// Tensor returns the tensor. Panics if v is a scalar.
func (v Value) Tensor() *Tensor {
	if v.kind != KindTensor {
		exceptions.Panicf("value is the scalar %g, not a tensor", v.scalar)
	}
	return v.tensor
}

// ZeroLike returns the additive identity of v's kind and shape.
func (v Value) ZeroLike() Value {
	if v.kind == KindTensor {
		return FromTensor(ZerosLike(v.tensor))
	}
	return Scalar(0)
}

// OneLike returns the multiplicative identity of v's kind and shape.
func (v Value) OneLike() Value {
	if v.kind == KindTensor {
		return FromTensor(OnesLike(v.tensor))
	}
	return Scalar(1)
}

// String returns a human-readable representation of the value.
func (v Value) String() string {
	if v.kind == KindTensor {
		return v.tensor.String()
	}
	return fmt.Sprintf("%g", v.scalar)
}
