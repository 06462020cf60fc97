package ops

import "math"

// tanhRule is the rule for y = tanh(x): grad_input += dy * (1 - y²).
var tanhRule = unary(math.Tanh, func(_, y, dy float64) float64 {
	return dy * (1 - y*y)
})
