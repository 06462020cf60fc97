package autodiff

import (
	"github.com/born-ml/autograd/internal/tensor"
)

// Operand is the argument and result type of every primitive.
//
// It is a tagged union: a Constant holds a raw primal value and never
// receives gradient; a Variable refers to a Node on a Tape. The zero Operand
// is the constant scalar 0.
type Operand struct {
	node  *Node
	value tensor.Value
}

// Const wraps a raw value as a constant operand.
func Const(v tensor.Value) Operand {
	return Operand{value: v}
}

// Scalar returns the constant scalar v.
func Scalar(v float64) Operand {
	return Const(tensor.Scalar(v))
}

// Tensor returns the constant tensor t.
func Tensor(t *tensor.Tensor) Operand {
	return Const(tensor.FromTensor(t))
}

// IsVariable reports whether o refers to a graph Node.
func (o Operand) IsVariable() bool {
	return o.node != nil
}

// Node returns the graph node of a variable, or nil for a constant.
func (o Operand) Node() *Node {
	return o.node
}

// Value returns the primal value: the Node's x for variables, the raw value otherwise.
func (o Operand) Value() tensor.Value {
	if o.node != nil {
		return o.node.x
	}
	return o.value
}

// Float returns the primal scalar. Panics if the operand holds a tensor.
func (o Operand) Float() float64 {
	return o.Value().Float()
}

// Grad returns the gradient accumulated in a variable's Node.
// Constants have no gradient: Grad returns the zero of their kind and shape.
func (o Operand) Grad() tensor.Value {
	if o.node != nil {
		return o.node.Grad()
	}
	return o.value.ZeroLike()
}

// String returns a human-readable representation of the operand.
func (o Operand) String() string {
	if o.node != nil {
		return o.node.String()
	}
	return "const(" + o.value.String() + ")"
}
