package ops

import "math"

// zeroGrad is the backward rule of piecewise-constant functions.
func zeroGrad(_, _, _ float64) float64 { return 0 }

var (
	floorRule = UnaryRule{Forward: math.Floor, Scalar: zeroGrad, Tensor: func(_, _, _, _ []float64) {}}
	ceilRule  = UnaryRule{Forward: math.Ceil, Scalar: zeroGrad, Tensor: func(_, _, _, _ []float64) {}}
	roundRule = UnaryRule{Forward: math.Round, Scalar: zeroGrad, Tensor: func(_, _, _, _ []float64) {}}
)

// absRule is the rule for y = |x|: grad_input += dy * sign(x), with sign(0) = 0.
var absRule = unary(math.Abs, func(x, _, dy float64) float64 {
	switch {
	case x > 0:
		return dy
	case x < 0:
		return -dy
	default:
		return 0
	}
})
