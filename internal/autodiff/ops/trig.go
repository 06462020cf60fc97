package ops

import "math"

var (
	// d(tan(x))/dx = 1 + tan²(x)
	tanRule = unary(math.Tan, func(_, y, dy float64) float64 {
		return dy * (1 + y*y)
	})

	// d(asin(x))/dx = 1 / sqrt(1 - x²)
	asinRule = unary(math.Asin, func(x, _, dy float64) float64 {
		return dy / math.Sqrt(1-x*x)
	})

	// d(acos(x))/dx = -1 / sqrt(1 - x²)
	acosRule = unary(math.Acos, func(x, _, dy float64) float64 {
		return -dy / math.Sqrt(1-x*x)
	})

	// d(atan(x))/dx = 1 / (1 + x²)
	atanRule = unary(math.Atan, func(x, _, dy float64) float64 {
		return dy / (1 + x*x)
	})
)
