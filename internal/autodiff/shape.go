package autodiff

import (
	"github.com/born-ml/autograd/internal/autodiff/ops"
	"github.com/born-ml/autograd/internal/tensor"
	"github.com/gomlx/exceptions"
)

var (
	getOp = liftN(ops.Get, func(args []tensor.Value) tensor.Value {
		return tensor.Scalar(args[0].Tensor().Get(int(args[1].Float())))
	})

	rangeOp = liftN(ops.Range, func(args []tensor.Value) tensor.Value {
		return tensor.FromTensor(args[0].Tensor().Range(int(args[1].Float()), int(args[2].Float())))
	})

	fromScalarsOp = liftN(ops.FromScalars, func(args []tensor.Value) tensor.Value {
		data := make([]float64, len(args))
		for i, a := range args {
			if !a.IsScalar() {
				exceptions.Panicf("fromScalars: argument %d is a tensor", i)
			}
			data[i] = a.Float()
		}
		return tensor.FromTensor(tensor.Vector(data...))
	})

	concatOp = liftN(ops.Concat, func(args []tensor.Value) tensor.Value {
		ts := make([]*tensor.Tensor, len(args))
		for i, a := range args {
			ts[i] = a.Tensor()
		}
		return tensor.FromTensor(tensor.Concat(ts...))
	})
)

// Get returns element i (linear index) of tensor t as a scalar.
// Panics if i is out of range.
func Get(t Operand, i int) Operand {
	return getOp(t, Scalar(float64(i)))
}

// Range returns the contiguous elements [start, end) of t as a 1-D tensor.
// Panics if the range is out of bounds.
func Range(t Operand, start, end int) Operand {
	return rangeOp(t, Scalar(float64(start)), Scalar(float64(end)))
}

// Split cuts t into consecutive ranges of the given lengths.
func Split(t Operand, lengths ...int) []Operand {
	parts := make([]Operand, len(lengths))
	offset := 0
	for i, l := range lengths {
		parts[i] = Range(t, offset, offset+l)
		offset += l
	}
	return parts
}

// FromScalars packs scalars into a 1-D tensor of len(scalars) elements.
func FromScalars(scalars ...Operand) Operand {
	if len(scalars) == 0 {
		exceptions.Panicf("fromScalars: at least one scalar required")
	}
	return fromScalarsOp(scalars...)
}

// ToScalars unpacks every element of t into a scalar.
func ToScalars(t Operand) []Operand {
	n := t.Value().Tensor().Len()
	scalars := make([]Operand, n)
	for i := range scalars {
		scalars[i] = Get(t, i)
	}
	return scalars
}

// Concat joins tensors, in argument order, into one 1-D tensor.
func Concat(ts ...Operand) Operand {
	return concatOp(ts...)
}

// Reshape returns a view of t with a new shape.
//
// Reshape does not copy: the new node's x and dx are views over t's
// storage. Gradient accumulated into the view lands in t's gradient, so the
// view needs no backward computation of its own.
//
// Panics if t is a scalar or the element count differs.
func Reshape(t Operand, dims ...int) Operand {
	x := t.Value().Tensor().Reshape(dims...)
	src := t.node
	if src == nil {
		return Tensor(x)
	}
	tapeOf([]*Node{src})
	return Operand{node: src.tape.appendNode(&Node{
		kind:    ops.Reshape,
		x:       tensor.FromTensor(x),
		dt:      src.dt.Reshape(dims...),
		args:    []Operand{t},
		parents: []*Node{src},
	})}
}
