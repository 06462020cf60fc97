package autodiff

import "github.com/gomlx/exceptions"

// Compositions of primitives. They add no backward rules of their own.

// Square returns a * a.
func Square(a Operand) Operand {
	return Mul(a, a)
}

// Mean returns the average of every element of tensor t.
func Mean(t Operand) Operand {
	return Div(SumReduce(t), Scalar(float64(t.Value().Tensor().Len())))
}

// Dot returns Σ a[i] * b[i].
func Dot(a, b Operand) Operand {
	return SumReduce(Mul(a, b))
}

// Sum adds all operands. Panics if terms is empty.
func Sum(terms ...Operand) Operand {
	if len(terms) == 0 {
		exceptions.Panicf("sum: at least one term required")
	}
	total := terms[0]
	for _, t := range terms[1:] {
		total = Add(total, t)
	}
	return total
}

// CrossEntropy returns -log(softmax(logits)[target]).
func CrossEntropy(logits Operand, target int) Operand {
	return Neg(Log(Get(Softmax(logits), target)))
}
