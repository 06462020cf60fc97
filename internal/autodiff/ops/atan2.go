package ops

import "math"

// atan2Rule is the rule for y = atan2(a, b).
//
// Backward pass, with r = a² + b²:
//   - dy/da = b / r
//   - dy/db = -a / r
var atan2Rule = binary(
	math.Atan2,
	func(a, b, _, dy float64) float64 { return dy * b / (a*a + b*b) },
	func(a, b, _, dy float64) float64 { return -dy * a / (a*a + b*b) },
)
