package ops

import "math"

// sinRule is the rule for y = sin(x): grad_input += dy * cos(x).
var sinRule = unary(math.Sin, func(x, _, dy float64) float64 {
	return dy * math.Cos(x)
})
