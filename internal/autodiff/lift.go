package autodiff

import (
	"github.com/born-ml/autograd/internal/autodiff/ops"
	"github.com/born-ml/autograd/internal/tensor"
	"github.com/gomlx/exceptions"
)

// Forward computes a primitive's result from primal values only.
type Forward func(args []tensor.Value) tensor.Value

// primals unwraps every operand to its primal value.
func primals(args []Operand) []tensor.Value {
	values := make([]tensor.Value, len(args))
	for i, a := range args {
		values[i] = a.Value()
	}
	return values
}

// variables returns the operands that are Nodes, in argument order.
// Backward rules address parents through args, so the order here only
// matters for traversal.
func variables(args []Operand) []*Node {
	var parents []*Node
	for _, a := range args {
		if a.node != nil {
			parents = append(parents, a.node)
		}
	}
	return parents
}

// record wraps a forward result: a raw constant when no argument is a Node,
// a new Node wired to its parents otherwise.
func record(kind ops.Kind, x tensor.Value, args []Operand) Operand {
	parents := variables(args)
	if len(parents) == 0 {
		return Const(x)
	}
	tape := tapeOf(parents)
	return Operand{node: tape.newNode(kind, x, args, parents)}
}

// liftN turns a forward function into a differentiable N-ary primitive.
// The backward rule is looked up by kind when the node is visited.
//
// The forward value is computed eagerly, exactly once per call.
func liftN(kind ops.Kind, forward Forward) func(args ...Operand) Operand {
	return func(args ...Operand) Operand {
		args = append([]Operand(nil), args...)
		return record(kind, forward(primals(args)), args)
	}
}

// liftUnary turns an elementwise rule-table entry into a primitive over
// scalars and tensors.
func liftUnary(kind ops.Kind) func(a Operand) Operand {
	rule, ok := ops.Unary(kind)
	if !ok {
		exceptions.Panicf("no unary rule for %s", kind)
	}
	forward := func(args []tensor.Value) tensor.Value {
		if args[0].IsScalar() {
			return tensor.Scalar(rule.Forward(args[0].Float()))
		}
		return tensor.FromTensor(args[0].Tensor().Map(rule.Forward))
	}
	op := liftN(kind, forward)
	return func(a Operand) Operand { return op(a) }
}

// liftBinary turns an elementwise rule-table entry into a primitive over
// scalars and tensors. A scalar operand paired with a tensor is promoted
// across the tensor's shape; two tensors must have the same shape.
func liftBinary(kind ops.Kind, tensorForward func(a, b *tensor.Tensor) *tensor.Tensor) func(a, b Operand) Operand {
	rule, ok := ops.Binary(kind)
	if !ok {
		exceptions.Panicf("no binary rule for %s", kind)
	}
	forward := func(args []tensor.Value) tensor.Value {
		a, b := args[0], args[1]
		if a.IsScalar() && b.IsScalar() {
			return tensor.Scalar(rule.Forward(a.Float(), b.Float()))
		}
		shape := outputShape(a, b)
		return tensor.FromTensor(tensorForward(promote(a, shape), promote(b, shape)))
	}
	op := liftN(kind, forward)
	return func(a, b Operand) Operand { return op(a, b) }
}

// outputShape returns the shape of the tensor operand of a binary primitive.
func outputShape(a, b tensor.Value) tensor.Shape {
	if a.IsTensor() {
		return a.Tensor().Shape()
	}
	return b.Tensor().Shape()
}

// promote returns v as a tensor of the given shape, filling it if v is a scalar.
func promote(v tensor.Value, shape tensor.Shape) *tensor.Tensor {
	if v.IsTensor() {
		return v.Tensor()
	}
	return tensor.Full(shape, v.Float())
}

// Lift wraps a non-differentiable function of one value. The result is always
// a constant: calling it on a variable reads the primal value and never
// records a node.
func Lift(fn func(tensor.Value) tensor.Value) func(a Operand) Operand {
	return func(a Operand) Operand {
		return Const(fn(a.Value()))
	}
}
