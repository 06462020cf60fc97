package ops

import "math"

var (
	sinhRule = unary(math.Sinh, func(x, _, dy float64) float64 {
		return dy * math.Cosh(x)
	})

	coshRule = unary(math.Cosh, func(x, _, dy float64) float64 {
		return dy * math.Sinh(x)
	})

	// d(asinh(x))/dx = 1 / sqrt(x² + 1)
	asinhRule = unary(math.Asinh, func(x, _, dy float64) float64 {
		return dy / math.Sqrt(x*x+1)
	})

	// d(acosh(x))/dx = 1 / sqrt(x² - 1), defined for x > 1
	acoshRule = unary(math.Acosh, func(x, _, dy float64) float64 {
		return dy / math.Sqrt(x*x-1)
	})

	// d(atanh(x))/dx = 1 / (1 - x²), defined for |x| < 1
	atanhRule = unary(math.Atanh, func(x, _, dy float64) float64 {
		return dy / (1 - x*x)
	})
)
