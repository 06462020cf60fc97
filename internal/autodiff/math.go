package autodiff

import (
	"math"

	"github.com/born-ml/autograd/internal/autodiff/ops"
	"github.com/born-ml/autograd/internal/tensor"
)

var (
	addOp   = liftBinary(ops.Add, tensor.Add)
	subOp   = liftBinary(ops.Sub, tensor.Sub)
	mulOp   = liftBinary(ops.Mul, tensor.Mul)
	divOp   = liftBinary(ops.Div, tensor.Div)
	powOp   = liftBinary(ops.Pow, tensor.Pow)
	minOp   = liftBinary(ops.Min, tensor.Min)
	maxOp   = liftBinary(ops.Max, tensor.Max)
	atan2Op = liftBinary(ops.Atan2, tensor.Atan2)

	negOp     = liftUnary(ops.Neg)
	floorOp   = liftUnary(ops.Floor)
	ceilOp    = liftUnary(ops.Ceil)
	roundOp   = liftUnary(ops.Round)
	sqrtOp    = liftUnary(ops.Sqrt)
	expOp     = liftUnary(ops.Exp)
	logOp     = liftUnary(ops.Log)
	absOp     = liftUnary(ops.Abs)
	sinOp     = liftUnary(ops.Sin)
	cosOp     = liftUnary(ops.Cos)
	tanOp     = liftUnary(ops.Tan)
	asinOp    = liftUnary(ops.Asin)
	acosOp    = liftUnary(ops.Acos)
	atanOp    = liftUnary(ops.Atan)
	sinhOp    = liftUnary(ops.Sinh)
	coshOp    = liftUnary(ops.Cosh)
	tanhOp    = liftUnary(ops.Tanh)
	asinhOp   = liftUnary(ops.Asinh)
	acoshOp   = liftUnary(ops.Acosh)
	atanhOp   = liftUnary(ops.Atanh)
	sigmoidOp = liftUnary(ops.Sigmoid)
)

// Add returns a + b.
func Add(a, b Operand) Operand { return addOp(a, b) }

// Sub returns a - b.
func Sub(a, b Operand) Operand { return subOp(a, b) }

// Mul returns a * b.
func Mul(a, b Operand) Operand { return mulOp(a, b) }

// Div returns a / b.
func Div(a, b Operand) Operand { return divOp(a, b) }

// Pow returns a ** b. Both operands may be variables.
func Pow(a, b Operand) Operand { return powOp(a, b) }

// Min returns the elementwise minimum. On ties the gradient goes to a.
func Min(a, b Operand) Operand { return minOp(a, b) }

// Max returns the elementwise maximum. On ties the gradient goes to a.
func Max(a, b Operand) Operand { return maxOp(a, b) }

// Atan2 returns atan2(a, b).
func Atan2(a, b Operand) Operand { return atan2Op(a, b) }

// Neg returns -a.
func Neg(a Operand) Operand { return negOp(a) }

// Floor, Ceil and Round are piecewise constant: their gradient is zero.
func Floor(a Operand) Operand { return floorOp(a) }

// Ceil rounds up. See Floor.
func Ceil(a Operand) Operand { return ceilOp(a) }

// Round rounds half away from zero. See Floor.
func Round(a Operand) Operand { return roundOp(a) }

func Sqrt(a Operand) Operand    { return sqrtOp(a) }
func Exp(a Operand) Operand     { return expOp(a) }
func Log(a Operand) Operand     { return logOp(a) }
func Abs(a Operand) Operand     { return absOp(a) }
func Sin(a Operand) Operand     { return sinOp(a) }
func Cos(a Operand) Operand     { return cosOp(a) }
func Tan(a Operand) Operand     { return tanOp(a) }
func Asin(a Operand) Operand    { return asinOp(a) }
func Acos(a Operand) Operand    { return acosOp(a) }
func Atan(a Operand) Operand    { return atanOp(a) }
func Sinh(a Operand) Operand    { return sinhOp(a) }
func Cosh(a Operand) Operand    { return coshOp(a) }
func Tanh(a Operand) Operand    { return tanhOp(a) }
func Asinh(a Operand) Operand   { return asinhOp(a) }
func Acosh(a Operand) Operand   { return acoshOp(a) }
func Atanh(a Operand) Operand   { return atanhOp(a) }
func Sigmoid(a Operand) Operand { return sigmoidOp(a) }

// isNaN and isFinite are predicates: they never record a node.
var (
	isNaN    = Lift(predicate(math.IsNaN))
	isFinite = Lift(predicate(func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }))
)

// IsNaN returns a constant holding 1 where a is NaN and 0 elsewhere.
func IsNaN(a Operand) Operand { return isNaN(a) }

// IsFinite returns a constant holding 1 where a is neither NaN nor infinite.
func IsFinite(a Operand) Operand { return isFinite(a) }

// predicate lifts a float test to Values, encoding true as 1.
func predicate(test func(float64) bool) func(tensor.Value) tensor.Value {
	indicator := func(v float64) float64 {
		if test(v) {
			return 1
		}
		return 0
	}
	return func(v tensor.Value) tensor.Value {
		if v.IsScalar() {
			return tensor.Scalar(indicator(v.Float()))
		}
		return tensor.FromTensor(v.Tensor().Map(indicator))
	}
}
