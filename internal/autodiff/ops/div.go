package ops

// divRule is the rule for y = a / b.
//
// Backward pass:
//   - dy/da = 1/b, so grad_a += dy / b
//   - dy/db = -a/b² = -y/b, so grad_b -= dy * y / b
var divRule = binary(
	func(a, b float64) float64 { return a / b },
	func(_, b, _, dy float64) float64 { return dy / b },
	func(_, b, y, dy float64) float64 { return -dy * y / b },
)
