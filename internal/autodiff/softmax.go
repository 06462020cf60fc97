package autodiff

import (
	"github.com/born-ml/autograd/internal/autodiff/ops"
	"github.com/born-ml/autograd/internal/tensor"
)

var softmaxOp = liftN(ops.Softmax, func(args []tensor.Value) tensor.Value {
	return tensor.FromTensor(args[0].Tensor().Softmax())
})

// Softmax returns exp(t) / Σ exp(t), taken over all elements of t.
//
// Backward:
//
//	The Jacobian of softmax is ∂y_i/∂x_j = y_i * (δ_ij - y_j), so
//	∂L/∂x_j = y_j * (∂L/∂y_j - Σ_i ∂L/∂y_i * y_i)
func Softmax(t Operand) Operand { return softmaxOp(t) }
