package ops

import "gonum.org/v1/gonum/floats"

// subRule is the rule for y = a - b.
//
// Backward pass:
//   - dy/da = 1, so grad_a += dy
//   - dy/db = -1, so grad_b -= dy
var subRule = BinaryRule{
	Forward: func(a, b float64) float64 { return a - b },
	ScalarA: func(_, _, _, dy float64) float64 { return dy },
	ScalarB: func(_, _, _, dy float64) float64 { return -dy },
	TensorA: func(_, _, _, dy, acc []float64) { floats.Add(acc, dy) },
	TensorB: func(_, _, _, dy, acc []float64) { floats.Sub(acc, dy) },
}

// negRule is the rule for y = -x.
var negRule = UnaryRule{
	Forward: func(x float64) float64 { return -x },
	Scalar:  func(_, _, dy float64) float64 { return -dy },
	Tensor:  func(_, _, dy, acc []float64) { floats.Sub(acc, dy) },
}
