// Package gradcheck compares the gradients computed by the autodiff engine
// with central finite differences.
package gradcheck

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/born-ml/autograd/internal/autodiff"
	"github.com/born-ml/autograd/internal/parallel"
	"github.com/born-ml/autograd/internal/tensor"
	"github.com/gomlx/exceptions"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats/scalar"
	"k8s.io/klog/v2"
)

// Func builds an output from its inputs. It must only use autodiff primitives.
type Func func(inputs []autodiff.Operand) autodiff.Operand

// Input describes one random input: a scalar when Shape is nil, else a tensor.
// Elements are drawn uniformly from [Lo, Hi).
type Input struct {
	Shape  tensor.Shape
	Lo, Hi float64
}

// Case is a named function to check.
type Case struct {
	Name   string
	Inputs []Input
	F      Func
}

// Result is the outcome of checking one Case.
type Result struct {
	Name      string
	Checked   int     // Number of gradient entries compared.
	MaxAbsErr float64 // Largest |analytic - numeric|.
	Err       error   // Set when the case panicked.
	OK        bool
}

// Run checks every case, cases concurrently, and returns results in case order.
func Run(cases []Case, cfg Config) []Result {
	results := make([]Result, len(cases))
	parallel.For(len(cases), func(i int) {
		rng := rand.New(rand.NewPCG(cfg.Seed, uint64(i)))
		results[i] = Check(cases[i], cfg, rng)
		klog.V(1).Infof("gradcheck %s: ok=%v checked=%d max_abs_err=%.3g",
			results[i].Name, results[i].OK, results[i].Checked, results[i].MaxAbsErr)
	}, cfg.Parallel)
	return results
}

// Check runs cfg.Trials random trials of c. A panic inside c.F is reported
// in Result.Err instead of propagating.
func Check(c Case, cfg Config, rng *rand.Rand) (result Result) {
	result = Result{Name: c.Name, OK: true}
	exception := exceptions.Try(func() {
		for trial := 0; trial < cfg.Trials; trial++ {
			inputs := make([]tensor.Value, len(c.Inputs))
			for i, in := range c.Inputs {
				inputs[i] = draw(in, rng)
			}
			checkAt(c.F, inputs, cfg, rng, &result)
		}
	})
	if exception != nil {
		result.OK = false
		if err, ok := exception.(error); ok {
			result.Err = err
		} else {
			result.Err = fmt.Errorf("%v", exception)
		}
	}
	return result
}

// checkAt compares gradients at one input point and folds them into result.
func checkAt(f Func, inputs []tensor.Value, cfg Config, rng *rand.Rand, result *Result) {
	// A tensor output is reduced with random weights, so every output
	// element contributes a distinct amount.
	var weights *tensor.Tensor
	loss := func(out autodiff.Operand) autodiff.Operand {
		if out.Value().IsScalar() {
			return out
		}
		if weights == nil {
			weights = tensor.ZerosLike(out.Value().Tensor())
			data := weights.Data()
			for i := range data {
				data[i] = 0.5 + rng.Float64()
			}
		}
		return autodiff.Dot(out, autodiff.Tensor(weights))
	}

	tape := autodiff.NewTape()
	vars := make([]autodiff.Operand, len(inputs))
	for i, in := range inputs {
		vars[i] = tape.Var(cloneValue(in))
	}
	autodiff.Backward(loss(f(vars)))
	analytic := flatten(gradsOf(vars))

	x := flatten(inputs)
	numeric := fd.Gradient(nil, func(point []float64) float64 {
		consts := make([]autodiff.Operand, len(inputs))
		for i, v := range unflatten(point, inputs) {
			consts[i] = autodiff.Const(v)
		}
		return loss(f(consts)).Float()
	}, x, &fd.Settings{Formula: fd.Central, Step: cfg.Step})

	for i := range analytic {
		result.Checked++
		diff := math.Abs(analytic[i] - numeric[i])
		result.MaxAbsErr = math.Max(result.MaxAbsErr, diff)
		if !scalar.EqualWithinAbsOrRel(analytic[i], numeric[i], cfg.AbsTol, cfg.RelTol) {
			result.OK = false
		}
	}
}

func draw(in Input, rng *rand.Rand) tensor.Value {
	sample := func() float64 { return in.Lo + (in.Hi-in.Lo)*rng.Float64() }
	if in.Shape == nil {
		return tensor.Scalar(sample())
	}
	t := tensor.Zeros(in.Shape)
	data := t.Data()
	for i := range data {
		data[i] = sample()
	}
	return tensor.FromTensor(t)
}

func cloneValue(v tensor.Value) tensor.Value {
	if v.IsTensor() {
		return tensor.FromTensor(v.Tensor().Clone())
	}
	return v
}

func gradsOf(vars []autodiff.Operand) []tensor.Value {
	grads := make([]tensor.Value, len(vars))
	for i, v := range vars {
		grads[i] = v.Grad()
	}
	return grads
}

// flatten concatenates every value's elements into one vector.
func flatten(values []tensor.Value) []float64 {
	var out []float64
	for _, v := range values {
		if v.IsScalar() {
			out = append(out, v.Float())
			continue
		}
		out = append(out, v.Tensor().Data()...)
	}
	return out
}

// unflatten is the inverse of flatten, using like for kinds and shapes.
func unflatten(point []float64, like []tensor.Value) []tensor.Value {
	values := make([]tensor.Value, len(like))
	offset := 0
	for i, v := range like {
		if v.IsScalar() {
			values[i] = tensor.Scalar(point[offset])
			offset++
			continue
		}
		n := v.Tensor().Len()
		t, err := tensor.FromSlice(point[offset:offset+n], v.Tensor().Shape())
		if err != nil {
			exceptions.Panicf("gradcheck: %v", err)
		}
		values[i] = tensor.FromTensor(t)
		offset += n
	}
	return values
}
