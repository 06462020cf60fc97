package ops

import "math"

// sigmoid computes the logistic function 1 / (1 + exp(-x)).
func sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	// exp(x) / (1 + exp(x)) avoids overflow for large negative x.
	e := math.Exp(x)
	return e / (1 + e)
}

// sigmoidRule is the rule for y = sigmoid(x).
//
// d(sigmoid(x))/dx = y * (1 - y), computed from the cached output.
var sigmoidRule = UnaryRule{
	Forward: sigmoid,
	Scalar:  func(_, y, dy float64) float64 { return dy * y * (1 - y) },
	Tensor: func(_, y, dy, acc []float64) {
		for i := range acc {
			acc[i] += dy[i] * y[i] * (1 - y[i])
		}
	},
}
