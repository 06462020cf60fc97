package ops

// mulRule is the rule for y = a * b.
//
// Backward pass:
//   - dy/da = b, so grad_a += dy * b
//   - dy/db = a, so grad_b += dy * a
var mulRule = binary(
	func(a, b float64) float64 { return a * b },
	func(_, b, _, dy float64) float64 { return dy * b },
	func(a, _, _, dy float64) float64 { return dy * a },
)
