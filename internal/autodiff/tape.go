package autodiff

import (
	"github.com/born-ml/autograd/internal/autodiff/ops"
	"github.com/born-ml/autograd/internal/tensor"
	"github.com/gomlx/exceptions"
)

// Tape is the arena of graph nodes, indexed by creation order.
//
// A node can only be built from nodes that already exist, so creation order
// is a topological order of the graph. Backward walks the tape in reverse.
//
// Usage:
//
//	tape := NewTape()
//	x := tape.Var(tensor.Scalar(3))
//	y := Mul(x, x)
//	Backward(y)
//	x.Grad() // 6
type Tape struct {
	nodes []*Node // Nodes in creation order; nodes[i].id == i
}

// NewTape creates a new empty tape.
func NewTape() *Tape {
	return &Tape{
		nodes: make([]*Node, 0, 64), // Pre-allocate for common case
	}
}

// Var creates a variable leaf holding v. Gradients flow into it during backward.
func (t *Tape) Var(v tensor.Value) Operand {
	return Operand{node: t.newNode(ops.Leaf, v, nil, nil)}
}

// Scalar creates a scalar variable leaf.
func (t *Tape) Scalar(v float64) Operand {
	return t.Var(tensor.Scalar(v))
}

// Tensor creates a tensor variable leaf. The tape uses x directly, it is not copied.
func (t *Tape) Tensor(x *tensor.Tensor) Operand {
	return t.Var(tensor.FromTensor(x))
}

// newNode appends a node with a zeroed gradient accumulator.
func (t *Tape) newNode(kind ops.Kind, x tensor.Value, args []Operand, parents []*Node) *Node {
	n := &Node{
		id:      len(t.nodes),
		tape:    t,
		kind:    kind,
		x:       x,
		args:    args,
		parents: parents,
	}
	if x.IsTensor() {
		n.dt = tensor.ZerosLike(x.Tensor())
	}
	t.nodes = append(t.nodes, n)
	return n
}

// appendNode records a node whose gradient storage was set up by the caller
// (views created by Reshape).
func (t *Tape) appendNode(n *Node) *Node {
	n.id = len(t.nodes)
	n.tape = t
	t.nodes = append(t.nodes, n)
	return n
}

// Len returns the number of recorded nodes.
func (t *Tape) Len() int {
	return len(t.nodes)
}

// Nodes returns the recorded nodes in creation order.
func (t *Tape) Nodes() []*Node {
	return t.nodes
}

// ZeroGrad resets the gradient of every node, so a fresh backward pass can
// run over the same graph.
func (t *Tape) ZeroGrad() {
	for _, n := range t.nodes {
		n.ZeroGrad()
	}
}

// Clear removes all recorded nodes. Operands created before Clear must not
// be used with the tape afterwards.
func (t *Tape) Clear() {
	for i := range t.nodes {
		t.nodes[i] = nil
	}
	t.nodes = t.nodes[:0]
}

// tapeOf returns the tape shared by parents. Panics if they come from different tapes.
func tapeOf(parents []*Node) *Tape {
	tape := parents[0].tape
	for _, p := range parents[1:] {
		if p.tape != tape {
			exceptions.Panicf("operands #%d (%s) and #%d (%s) belong to different tapes",
				parents[0].id, parents[0].kind, p.id, p.kind)
		}
	}
	if parents[0].id >= len(tape.nodes) || tape.nodes[parents[0].id] != parents[0] {
		exceptions.Panicf("operand #%d (%s) was cleared from its tape", parents[0].id, parents[0].kind)
	}
	return tape
}
