// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// scalars and dense tensors.
//
// Variables are created on a Tape; constants are plain values. Every
// primitive accepts any mix of the two. A call whose operands are all
// constants returns a constant and records nothing.
//
// Example:
//
//	import (
//	    "github.com/born-ml/autograd/autodiff"
//	    "github.com/born-ml/autograd/tensor"
//	)
//
//	func main() {
//	    tape := autodiff.NewTape()
//	    w := tape.Tensor(tensor.Vector(0.5, -0.25))
//	    x := autodiff.Tensor(tensor.Vector(2, 1))
//
//	    loss := autodiff.Square(autodiff.Dot(w, x))
//	    autodiff.Backward(loss)
//
//	    fmt.Println(w.Grad()) // d(loss)/dw
//	}
package autodiff

import (
	"math"

	"github.com/born-ml/autograd/internal/autodiff"
	"github.com/born-ml/autograd/internal/autodiff/ops"
	"github.com/born-ml/autograd/internal/tensor"
)

// Operand is a constant value or a variable graph node.
type Operand = autodiff.Operand

// Node is a vertex of the computation graph.
type Node = autodiff.Node

// Tape records nodes in creation order.
type Tape = autodiff.Tape

// Kind identifies the primitive that produced a node.
type Kind = ops.Kind

// NewTape creates a new empty tape.
func NewTape() *Tape {
	return autodiff.NewTape()
}

// Const wraps a raw value as a constant operand.
func Const(v tensor.Value) Operand {
	return autodiff.Const(v)
}

// Scalar returns the constant scalar v.
func Scalar(v float64) Operand {
	return autodiff.Scalar(v)
}

// Tensor returns the constant tensor t.
func Tensor(t *tensor.Tensor) Operand {
	return autodiff.Tensor(t)
}

// Backward seeds root with the identity gradient and propagates it to
// every ancestor.
func Backward(root Operand) {
	autodiff.Backward(root)
}

// BackwardFrom propagates root's current gradient without seeding it.
func BackwardFrom(root Operand) {
	autodiff.BackwardFrom(root)
}

// Lift wraps a non-differentiable function. Its results are always constants.
func Lift(fn func(tensor.Value) tensor.Value) func(Operand) Operand {
	return autodiff.Lift(fn)
}

// Primitives.
var (
	Add   = autodiff.Add
	Sub   = autodiff.Sub
	Mul   = autodiff.Mul
	Div   = autodiff.Div
	Pow   = autodiff.Pow
	Min   = autodiff.Min
	Max   = autodiff.Max
	Atan2 = autodiff.Atan2

	Neg     = autodiff.Neg
	Floor   = autodiff.Floor
	Ceil    = autodiff.Ceil
	Round   = autodiff.Round
	Sqrt    = autodiff.Sqrt
	Exp     = autodiff.Exp
	Log     = autodiff.Log
	Abs     = autodiff.Abs
	Sin     = autodiff.Sin
	Cos     = autodiff.Cos
	Tan     = autodiff.Tan
	Asin    = autodiff.Asin
	Acos    = autodiff.Acos
	Atan    = autodiff.Atan
	Sinh    = autodiff.Sinh
	Cosh    = autodiff.Cosh
	Tanh    = autodiff.Tanh
	Asinh   = autodiff.Asinh
	Acosh   = autodiff.Acosh
	Atanh   = autodiff.Atanh
	Sigmoid = autodiff.Sigmoid

	IsNaN    = autodiff.IsNaN
	IsFinite = autodiff.IsFinite

	SumReduce = autodiff.SumReduce
	AllReduce = autodiff.AllReduce
	AnyReduce = autodiff.AnyReduce

	Get         = autodiff.Get
	Range       = autodiff.Range
	Split       = autodiff.Split
	FromScalars = autodiff.FromScalars
	ToScalars   = autodiff.ToScalars
	Concat      = autodiff.Concat
	Reshape     = autodiff.Reshape
	Softmax     = autodiff.Softmax

	Square       = autodiff.Square
	Mean         = autodiff.Mean
	Dot          = autodiff.Dot
	Sum          = autodiff.Sum
	CrossEntropy = autodiff.CrossEntropy
)

// Math constants, for convenience.
const (
	E   = math.E
	Pi  = math.Pi
	Phi = math.Phi
)
