package ops

import "math"

// minRule is the rule for y = min(a, b). Ties route the gradient to a.
var minRule = binary(
	math.Min,
	func(a, b, _, dy float64) float64 {
		if a <= b {
			return dy
		}
		return 0
	},
	func(a, b, _, dy float64) float64 {
		if a <= b {
			return 0
		}
		return dy
	},
)

// maxRule is the rule for y = max(a, b). Ties route the gradient to a.
var maxRule = binary(
	math.Max,
	func(a, b, _, dy float64) float64 {
		if a >= b {
			return dy
		}
		return 0
	},
	func(a, b, _, dy float64) float64 {
		if a >= b {
			return 0
		}
		return dy
	},
)
