package autodiff

import (
	"fmt"

	"github.com/born-ml/autograd/internal/autodiff/ops"
	"github.com/born-ml/autograd/internal/tensor"
	"github.com/gomlx/exceptions"
	"gonum.org/v1/gonum/floats"
)

// Node is a vertex of the computation graph.
//
// It holds the primal value x computed during the forward pass and the
// gradient accumulator dx, which has the same kind and shape as x. dx starts
// at zero and is only ever incremented by the backward rules of the Node's
// consumers.
//
// args keeps the original call arguments (constants included) so the backward
// rule can replay the math; parents is the subset of args that are Nodes.
type Node struct {
	id      int
	tape    *Tape
	kind    ops.Kind
	x       tensor.Value
	ds      float64        // dx of a scalar node
	dt      *tensor.Tensor // dx of a tensor node
	args    []Operand
	parents []*Node
}

// ID returns the node's creation index on its tape.
func (n *Node) ID() int {
	return n.id
}

// Kind returns the primitive that produced the node.
func (n *Node) Kind() ops.Kind {
	return n.kind
}

// Tape returns the tape that owns the node.
func (n *Node) Tape() *Tape {
	return n.tape
}

// Value returns the primal value x.
func (n *Node) Value() tensor.Value {
	return n.x
}

// Grad returns the gradient accumulator dx.
//
// For tensor nodes the returned tensor is the live accumulator, not a copy:
// it keeps changing if further backward passes run.
func (n *Node) Grad() tensor.Value {
	if n.dt != nil {
		return tensor.FromTensor(n.dt)
	}
	return tensor.Scalar(n.ds)
}

// Parents returns the Node arguments of the primitive that produced n.
func (n *Node) Parents() []*Node {
	return n.parents
}

// SeedGrad adds the multiplicative identity of x's shape to dx: 1 for a
// scalar, all ones for a tensor. Call it on the root before BackwardFrom.
func (n *Node) SeedGrad() {
	n.AccumulateGrad(n.x.OneLike())
}

// AccumulateGrad adds g to dx. Panics if g's kind or shape differ from x's.
func (n *Node) AccumulateGrad(g tensor.Value) {
	if g.Kind() != n.x.Kind() {
		exceptions.Panicf("node #%d (%s): cannot accumulate %s gradient into %s value",
			n.id, n.kind, g.Kind(), n.x.Kind())
	}
	if n.dt != nil {
		n.dt.AddInPlace(g.Tensor())
		return
	}
	n.ds += g.Float()
}

// ZeroGrad resets dx to zero in place. Views created by Reshape observe the reset.
func (n *Node) ZeroGrad() {
	if n.dt != nil {
		n.dt.Fill(0)
		return
	}
	n.ds = 0
}

// gradData returns the flat gradient buffer of a tensor node.
func (n *Node) gradData() []float64 {
	return n.dt.Data()
}

// addScalarContributions adds the sum of contribs to a scalar node's dx.
func (n *Node) addScalarContributions(contribs []float64) {
	n.ds += floats.Sum(contribs)
}

// String returns a short description, e.g. "#3 mul scalar=6".
func (n *Node) String() string {
	return fmt.Sprintf("#%d %s %s=%s", n.id, n.kind, n.x.Kind(), n.x)
}
