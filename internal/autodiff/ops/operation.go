// Package ops is the derivative-rule table of the autograd engine.
//
// Every differentiable primitive is named by a Kind. Elementwise primitives
// have an entry in the rule table holding the forward function and a pair of
// backward rules:
//   - Scalar: closed-form contribution to the input gradient of a scalar node
//   - Tensor: the same rule accumulated over flat buffers, elementwise
//
// Backward rules never overwrite: Scalar returns a contribution the caller
// adds, Tensor adds into acc.
//
// Structural primitives (SumReduce, Get, Range, FromScalars, Concat, Softmax,
// Reshape) have no table entry: their backward is implemented by the engine.
package ops

// Kind identifies the primitive that produced a graph node.
type Kind uint8

// Primitive kinds.
const (
	Leaf Kind = iota
	Neg
	Add
	Sub
	Mul
	Div
	Pow
	Min
	Max
	Atan2
	Floor
	Ceil
	Round
	Sqrt
	Exp
	Log
	Abs
	Sin
	Cos
	Tan
	Asin
	Acos
	Atan
	Sinh
	Cosh
	Tanh
	Asinh
	Acosh
	Atanh
	Sigmoid
	SumReduce
	Get
	Range
	FromScalars
	Concat
	Softmax
	Reshape
	numKinds
)

var kindNames = [numKinds]string{
	Leaf:        "leaf",
	Neg:         "neg",
	Add:         "add",
	Sub:         "sub",
	Mul:         "mul",
	Div:         "div",
	Pow:         "pow",
	Min:         "min",
	Max:         "max",
	Atan2:       "atan2",
	Floor:       "floor",
	Ceil:        "ceil",
	Round:       "round",
	Sqrt:        "sqrt",
	Exp:         "exp",
	Log:         "log",
	Abs:         "abs",
	Sin:         "sin",
	Cos:         "cos",
	Tan:         "tan",
	Asin:        "asin",
	Acos:        "acos",
	Atan:        "atan",
	Sinh:        "sinh",
	Cosh:        "cosh",
	Tanh:        "tanh",
	Asinh:       "asinh",
	Acosh:       "acosh",
	Atanh:       "atanh",
	Sigmoid:     "sigmoid",
	SumReduce:   "sumreduce",
	Get:         "get",
	Range:       "range",
	FromScalars: "fromscalars",
	Concat:      "concat",
	Softmax:     "softmax",
	Reshape:     "reshape",
}

// String returns the primitive name, e.g. "sin".
func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return "unknown"
}

// Kinds returns every primitive kind except Leaf, in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, numKinds-1)
	for k := Neg; k < numKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// UnaryRule is the rule-table entry of a one-argument elementwise primitive.
type UnaryRule struct {
	// Forward computes y = f(x).
	Forward func(x float64) float64

	// Scalar returns the contribution dy * f'(x) to the input gradient.
	Scalar func(x, y, dy float64) float64

	// Tensor adds dy * f'(x) into acc, elementwise over flat buffers.
	Tensor func(x, y, dy, acc []float64)
}

// BinaryRule is the rule-table entry of a two-argument elementwise primitive.
// Each operand has its own backward rule since both may be variables.
type BinaryRule struct {
	Forward func(a, b float64) float64

	ScalarA func(a, b, y, dy float64) float64
	ScalarB func(a, b, y, dy float64) float64

	TensorA func(a, b, y, dy, acc []float64)
	TensorB func(a, b, y, dy, acc []float64)
}

var unaryRules = map[Kind]UnaryRule{
	Neg:     negRule,
	Floor:   floorRule,
	Ceil:    ceilRule,
	Round:   roundRule,
	Sqrt:    sqrtRule,
	Exp:     expRule,
	Log:     logRule,
	Abs:     absRule,
	Sin:     sinRule,
	Cos:     cosRule,
	Tan:     tanRule,
	Asin:    asinRule,
	Acos:    acosRule,
	Atan:    atanRule,
	Sinh:    sinhRule,
	Cosh:    coshRule,
	Tanh:    tanhRule,
	Asinh:   asinhRule,
	Acosh:   acoshRule,
	Atanh:   atanhRule,
	Sigmoid: sigmoidRule,
}

var binaryRules = map[Kind]BinaryRule{
	Add:   addRule,
	Sub:   subRule,
	Mul:   mulRule,
	Div:   divRule,
	Pow:   powRule,
	Min:   minRule,
	Max:   maxRule,
	Atan2: atan2Rule,
}

// Unary returns the rule of a unary primitive.
func Unary(k Kind) (UnaryRule, bool) {
	r, ok := unaryRules[k]
	return r, ok
}

// Binary returns the rule of a binary primitive.
func Binary(k Kind) (BinaryRule, bool) {
	r, ok := binaryRules[k]
	return r, ok
}

// elementwise derives a Tensor rule from a Scalar rule by looping over the buffers.
func elementwise(scalar func(x, y, dy float64) float64) func(x, y, dy, acc []float64) {
	return func(x, y, dy, acc []float64) {
		for i := range acc {
			acc[i] += scalar(x[i], y[i], dy[i])
		}
	}
}

// elementwise2 is elementwise for one operand of a binary rule.
func elementwise2(scalar func(a, b, y, dy float64) float64) func(a, b, y, dy, acc []float64) {
	return func(a, b, y, dy, acc []float64) {
		for i := range acc {
			acc[i] += scalar(a[i], b[i], y[i], dy[i])
		}
	}
}

// unary builds a rule whose Tensor variant is the elementwise Scalar variant.
func unary(forward func(float64) float64, scalar func(x, y, dy float64) float64) UnaryRule {
	return UnaryRule{Forward: forward, Scalar: scalar, Tensor: elementwise(scalar)}
}

// binary builds a rule whose Tensor variants are the elementwise Scalar variants.
func binary(forward func(a, b float64) float64, scalarA, scalarB func(a, b, y, dy float64) float64) BinaryRule {
	return BinaryRule{
		Forward: forward,
		ScalarA: scalarA,
		ScalarB: scalarB,
		TensorA: elementwise2(scalarA),
		TensorB: elementwise2(scalarB),
	}
}
