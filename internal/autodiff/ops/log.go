package ops

import "math"

// logRule is the rule for the natural logarithm: grad_input += dy / x.
var logRule = unary(math.Log, func(x, _, dy float64) float64 {
	return dy / x
})
