package gradcheck

import (
	"strings"

	"github.com/born-ml/autograd/internal/autodiff"
	"github.com/born-ml/autograd/internal/tensor"
	"github.com/pkg/errors"
)

// domain is the input range where a unary primitive is smooth.
type domain struct{ lo, hi float64 }

var unaryPrimitives = []struct {
	name string
	fn   func(autodiff.Operand) autodiff.Operand
	dom  domain
}{
	{"neg", autodiff.Neg, domain{-2, 2}},
	{"floor", autodiff.Floor, domain{0.1, 0.4}},
	{"ceil", autodiff.Ceil, domain{0.1, 0.4}},
	{"round", autodiff.Round, domain{0.1, 0.4}},
	{"sqrt", autodiff.Sqrt, domain{0.5, 2}},
	{"exp", autodiff.Exp, domain{-2, 2}},
	{"log", autodiff.Log, domain{0.5, 2}},
	{"abs", autodiff.Abs, domain{0.2, 2}},
	{"sin", autodiff.Sin, domain{-2, 2}},
	{"cos", autodiff.Cos, domain{-2, 2}},
	{"tan", autodiff.Tan, domain{-1, 1}},
	{"asin", autodiff.Asin, domain{-0.8, 0.8}},
	{"acos", autodiff.Acos, domain{-0.8, 0.8}},
	{"atan", autodiff.Atan, domain{-2, 2}},
	{"sinh", autodiff.Sinh, domain{-2, 2}},
	{"cosh", autodiff.Cosh, domain{-2, 2}},
	{"tanh", autodiff.Tanh, domain{-2, 2}},
	{"asinh", autodiff.Asinh, domain{-2, 2}},
	{"acosh", autodiff.Acosh, domain{1.5, 3}},
	{"atanh", autodiff.Atanh, domain{-0.8, 0.8}},
	{"sigmoid", autodiff.Sigmoid, domain{-3, 3}},
}

var binaryPrimitives = []struct {
	name   string
	fn     func(a, b autodiff.Operand) autodiff.Operand
	da, db domain
}{
	{"add", autodiff.Add, domain{-2, 2}, domain{-2, 2}},
	{"sub", autodiff.Sub, domain{-2, 2}, domain{-2, 2}},
	{"mul", autodiff.Mul, domain{-2, 2}, domain{-2, 2}},
	{"div", autodiff.Div, domain{-2, 2}, domain{0.5, 2}},
	{"pow", autodiff.Pow, domain{0.5, 2}, domain{-1.5, 1.5}},
	{"min", autodiff.Min, domain{-2, 2}, domain{-2, 2}},
	{"max", autodiff.Max, domain{-2, 2}, domain{-2, 2}},
	{"atan2", autodiff.Atan2, domain{0.5, 2}, domain{0.5, 2}},
}

func scalarIn(d domain) Input { return Input{Lo: d.lo, Hi: d.hi} }

func tensorIn(d domain, dims ...int) Input { return Input{Shape: tensor.Shape(dims), Lo: d.lo, Hi: d.hi} }

// Catalog returns a case for every differentiable primitive: each elementwise
// primitive over scalars and tensors (binary ones also with mixed operands),
// plus the reductions, shape operations and softmax.
func Catalog() []Case {
	var cases []Case
	for _, p := range unaryPrimitives {
		fn := p.fn
		f := func(in []autodiff.Operand) autodiff.Operand { return fn(in[0]) }
		cases = append(cases,
			Case{Name: p.name + "/scalar", Inputs: []Input{scalarIn(p.dom)}, F: f},
			Case{Name: p.name + "/tensor", Inputs: []Input{tensorIn(p.dom, 2, 3)}, F: f},
		)
	}
	for _, p := range binaryPrimitives {
		fn := p.fn
		f := func(in []autodiff.Operand) autodiff.Operand { return fn(in[0], in[1]) }
		cases = append(cases,
			Case{Name: p.name + "/scalar", Inputs: []Input{scalarIn(p.da), scalarIn(p.db)}, F: f},
			Case{Name: p.name + "/tensor", Inputs: []Input{tensorIn(p.da, 4), tensorIn(p.db, 4)}, F: f},
			Case{Name: p.name + "/scalar-tensor", Inputs: []Input{scalarIn(p.da), tensorIn(p.db, 4)}, F: f},
			Case{Name: p.name + "/tensor-scalar", Inputs: []Input{tensorIn(p.da, 4), scalarIn(p.db)}, F: f},
		)
	}

	unit := domain{-2, 2}
	cases = append(cases,
		Case{Name: "sumreduce", Inputs: []Input{tensorIn(unit, 5)},
			F: func(in []autodiff.Operand) autodiff.Operand { return autodiff.SumReduce(in[0]) }},
		Case{Name: "get", Inputs: []Input{tensorIn(unit, 5)},
			F: func(in []autodiff.Operand) autodiff.Operand { return autodiff.Get(in[0], 3) }},
		Case{Name: "range", Inputs: []Input{tensorIn(unit, 6)},
			F: func(in []autodiff.Operand) autodiff.Operand { return autodiff.Range(in[0], 1, 4) }},
		Case{Name: "split-concat", Inputs: []Input{tensorIn(unit, 6)},
			F: func(in []autodiff.Operand) autodiff.Operand {
				parts := autodiff.Split(in[0], 2, 1, 3)
				return autodiff.Concat(parts[2], parts[0], parts[1])
			}},
		Case{Name: "concat-mixed", Inputs: []Input{tensorIn(unit, 2), tensorIn(unit, 3)},
			F: func(in []autodiff.Operand) autodiff.Operand {
				return autodiff.Concat(in[0], autodiff.Tensor(tensor.Vector(7, 8)), in[1])
			}},
		Case{Name: "fromscalars", Inputs: []Input{scalarIn(unit), scalarIn(unit)},
			F: func(in []autodiff.Operand) autodiff.Operand {
				return autodiff.FromScalars(in[0], autodiff.Scalar(5), autodiff.Mul(in[1], in[0]))
			}},
		Case{Name: "toscalars", Inputs: []Input{tensorIn(unit, 3)},
			F: func(in []autodiff.Operand) autodiff.Operand {
				s := autodiff.ToScalars(in[0])
				return autodiff.Add(autodiff.Mul(s[0], s[1]), autodiff.Sin(s[2]))
			}},
		Case{Name: "reshape", Inputs: []Input{tensorIn(unit, 6)},
			F: func(in []autodiff.Operand) autodiff.Operand {
				view := autodiff.Reshape(in[0], 2, 3)
				return autodiff.Add(autodiff.Mul(view, view), autodiff.Exp(autodiff.Reshape(in[0], 2, 3)))
			}},
		Case{Name: "softmax", Inputs: []Input{tensorIn(unit, 4)},
			F: func(in []autodiff.Operand) autodiff.Operand { return autodiff.Softmax(in[0]) }},
		Case{Name: "crossentropy", Inputs: []Input{tensorIn(unit, 4)},
			F: func(in []autodiff.Operand) autodiff.Operand { return autodiff.CrossEntropy(in[0], 2) }},
		Case{Name: "fanout", Inputs: []Input{tensorIn(domain{0.5, 2}, 3)},
			F: func(in []autodiff.Operand) autodiff.Operand {
				v := in[0]
				return autodiff.Add(autodiff.SumReduce(autodiff.Sin(v)), autodiff.Mean(autodiff.Log(v)))
			}},
	)
	return cases
}

// Filter returns the cases whose name starts with one of the comma-separated
// prefixes. An empty filter keeps every case.
func Filter(cases []Case, prefixes string) ([]Case, error) {
	if prefixes == "" {
		return cases, nil
	}
	var kept []Case
	for _, c := range cases {
		for _, prefix := range strings.Split(prefixes, ",") {
			if prefix != "" && strings.HasPrefix(c.Name, prefix) {
				kept = append(kept, c)
				break
			}
		}
	}
	if len(kept) == 0 {
		return nil, errors.Errorf("gradcheck: no case matches %q", prefixes)
	}
	return kept, nil
}
