package ops

import "gonum.org/v1/gonum/floats"

// addRule is the rule for y = a + b.
//
// Backward pass:
//   - dy/da = 1, so grad_a += dy
//   - dy/db = 1, so grad_b += dy
var addRule = BinaryRule{
	Forward: func(a, b float64) float64 { return a + b },
	ScalarA: func(_, _, _, dy float64) float64 { return dy },
	ScalarB: func(_, _, _, dy float64) float64 { return dy },
	TensorA: func(_, _, _, dy, acc []float64) { floats.Add(acc, dy) },
	TensorB: func(_, _, _, dy, acc []float64) { floats.Add(acc, dy) },
}
