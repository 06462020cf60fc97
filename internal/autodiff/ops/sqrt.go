package ops

import "math"

// sqrtRule is the rule for y = sqrt(x).
//
// d(sqrt(x))/dx = 1/(2*sqrt(x)) = 1/(2y), so grad_input += dy / (2y).
var sqrtRule = unary(math.Sqrt, func(_, y, dy float64) float64 {
	return dy / (2 * y)
})
