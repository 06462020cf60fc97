package autodiff

import (
	"github.com/born-ml/autograd/internal/autodiff/ops"
	"github.com/born-ml/autograd/internal/tensor"
)

var sumReduceOp = liftN(ops.SumReduce, func(args []tensor.Value) tensor.Value {
	return tensor.Scalar(args[0].Tensor().Sum())
})

// SumReduce sums every element of tensor t into a scalar.
func SumReduce(t Operand) Operand { return sumReduceOp(t) }

var (
	allReduce = Lift(func(v tensor.Value) tensor.Value { return truth(v.Tensor().All()) })
	anyReduce = Lift(func(v tensor.Value) tensor.Value { return truth(v.Tensor().Any()) })
)

// AllReduce returns the constant 1 if every element of t is non-zero, else 0.
// It is not differentiable and never records a node.
func AllReduce(t Operand) Operand { return allReduce(t) }

// AnyReduce returns the constant 1 if some element of t is non-zero, else 0.
func AnyReduce(t Operand) Operand { return anyReduce(t) }

func truth(b bool) tensor.Value {
	if b {
		return tensor.Scalar(1)
	}
	return tensor.Scalar(0)
}
