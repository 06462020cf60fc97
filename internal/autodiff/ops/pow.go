package ops

import "math"

// powRule is the rule for y = a ** b.
//
// Backward pass:
//   - dy/da = b * a^(b-1)
//   - dy/db = y * ln(a), taken as 0 where a <= 0 (the real log is undefined there)
var powRule = binary(
	math.Pow,
	func(a, b, _, dy float64) float64 {
		if b == 0 {
			return 0
		}
		return dy * b * math.Pow(a, b-1)
	},
	func(a, _, y, dy float64) float64 {
		if a <= 0 {
			return 0
		}
		return dy * y * math.Log(a)
	},
)
