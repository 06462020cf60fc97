package ops

import "math"

// expRule is the rule for y = exp(x).
//
// Since d(exp(x))/dx = exp(x) = y, the backward pass reuses the output:
// grad_input += dy * y.
var expRule = UnaryRule{
	Forward: math.Exp,
	Scalar:  func(_, y, dy float64) float64 { return dy * y },
	Tensor: func(_, y, dy, acc []float64) {
		for i := range acc {
			acc[i] += dy[i] * y[i]
		}
	},
}
