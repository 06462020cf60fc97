package ops

import "math"

// cosRule is the rule for y = cos(x): grad_input += -dy * sin(x).
var cosRule = unary(math.Cos, func(x, _, dy float64) float64 {
	return -dy * math.Sin(x)
})
