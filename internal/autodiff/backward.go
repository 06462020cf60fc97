package autodiff

import (
	"github.com/born-ml/autograd/internal/autodiff/ops"
	"github.com/gomlx/exceptions"
	"gonum.org/v1/gonum/floats"
	"k8s.io/klog/v2"
)

// backwardFunc adds a node's gradient contributions into its parents' dx.
type backwardFunc func(n *Node)

// backwardTable maps structural primitives to their backward routine.
// Elementwise primitives are served by the ops rule table.
var backwardTable = map[ops.Kind]backwardFunc{
	ops.Leaf:        func(*Node) {},
	ops.Reshape:     func(*Node) {}, // dx aliases the source's dx
	ops.SumReduce:   sumReduceBackward,
	ops.Get:         getBackward,
	ops.Range:       rangeBackward,
	ops.FromScalars: fromScalarsBackward,
	ops.Concat:      concatBackward,
	ops.Softmax:     softmaxBackward,
}

// backward runs the node's backward rule. dx must be final.
func (n *Node) backward() {
	if fn, ok := backwardTable[n.kind]; ok {
		fn(n)
		return
	}
	if rule, ok := ops.Unary(n.kind); ok {
		unaryBackward(n, rule)
		return
	}
	if rule, ok := ops.Binary(n.kind); ok {
		binaryBackward(n, rule)
		return
	}
	exceptions.Panicf("no backward rule for %s", n.kind)
}

// Backward seeds root's gradient with the identity (1, or all ones) and
// propagates gradients to every ancestor. A constant root has no graph and
// Backward does nothing.
//
// Example:
//
//	tape := NewTape()
//	x := tape.Scalar(2)
//	y := Mul(x, x) // y = x²
//	Backward(y)
//	x.Grad()       // dy/dx = 2x = 4
func Backward(root Operand) {
	if root.node == nil {
		return
	}
	root.node.SeedGrad()
	BackwardFrom(root)
}

// BackwardFrom propagates root's current gradient to its ancestors without
// seeding it. Callers seed root first (see Node.SeedGrad and
// Node.AccumulateGrad); an unseeded root yields zero gradients.
//
// Algorithm:
//  1. Walk the tape from root's index down to 0
//  2. Skip nodes that are not ancestors of root
//  3. Run each ancestor's backward rule exactly once; every consumer of a
//     node was created after it, so its dx is complete when visited
func BackwardFrom(root Operand) {
	n := root.node
	if n == nil {
		return
	}
	tape := n.tape
	reachable := make([]bool, n.id+1)
	reachable[n.id] = true

	visited := 0
	for i := n.id; i >= 0; i-- {
		if !reachable[i] {
			continue
		}
		node := tape.nodes[i]
		if klog.V(3).Enabled() {
			klog.Infof("backward: visiting %s", node)
		}
		node.backward()
		for _, p := range node.parents {
			reachable[p.id] = true
		}
		visited++
	}
	klog.V(2).Infof("backward: root %s, visited %d of %d nodes", n, visited, n.id+1)
}

// unaryBackward applies an elementwise unary rule to the single parent.
func unaryBackward(n *Node, rule ops.UnaryRule) {
	arg := n.args[0]
	p := arg.node
	if n.dt == nil {
		p.ds += rule.Scalar(arg.Value().Float(), n.x.Float(), n.ds)
		return
	}
	rule.Tensor(arg.Value().Tensor().Data(), n.x.Tensor().Data(), n.gradData(), p.gradData())
}

// binaryBackward applies an elementwise binary rule to each variable operand.
// A scalar operand promoted across a tensor receives the sum of its
// per-element contributions.
func binaryBackward(n *Node, rule ops.BinaryRule) {
	a, b := n.args[0], n.args[1]
	if n.dt == nil {
		av, bv, y := a.Value().Float(), b.Value().Float(), n.x.Float()
		if a.node != nil {
			a.node.ds += rule.ScalarA(av, bv, y, n.ds)
		}
		if b.node != nil {
			b.node.ds += rule.ScalarB(av, bv, y, n.ds)
		}
		return
	}

	shape := n.x.Tensor().Shape()
	av, bv := promote(a.Value(), shape).Data(), promote(b.Value(), shape).Data()
	y, dy := n.x.Tensor().Data(), n.gradData()
	accumulate := func(operand Operand, rule func(a, b, y, dy, acc []float64)) {
		if operand.node == nil {
			return
		}
		if operand.node.dt != nil {
			rule(av, bv, y, dy, operand.node.gradData())
			return
		}
		contribs := make([]float64, len(dy))
		rule(av, bv, y, dy, contribs)
		operand.node.addScalarContributions(contribs)
	}
	accumulate(a, rule.TensorA)
	accumulate(b, rule.TensorB)
}

// sumReduceBackward: the Jacobian of a full sum is a row of ones, so every
// input position receives the output gradient.
func sumReduceBackward(n *Node) {
	floats.AddConst(n.ds, n.args[0].node.gradData())
}

// getBackward scatters the output gradient into one position (one-hot).
func getBackward(n *Node) {
	i := int(n.args[1].Value().Float())
	n.args[0].node.gradData()[i] += n.ds
}

// rangeBackward scatters the slice gradient into the matching span.
func rangeBackward(n *Node) {
	start := int(n.args[1].Value().Float())
	dy := n.gradData()
	floats.Add(n.args[0].node.gradData()[start:start+len(dy)], dy)
}

// fromScalarsBackward routes output position j to scalar argument j.
func fromScalarsBackward(n *Node) {
	dy := n.gradData()
	for j, arg := range n.args {
		if arg.node != nil {
			arg.node.ds += dy[j]
		}
	}
}

// concatBackward splits the output gradient into per-operand spans.
// Constant operands still advance the offset.
func concatBackward(n *Node) {
	dy := n.gradData()
	offset := 0
	for _, arg := range n.args {
		size := arg.Value().Tensor().Len()
		if arg.node != nil {
			floats.Add(arg.node.gradData(), dy[offset:offset+size])
		}
		offset += size
	}
}

// softmaxBackward applies the softmax Jacobian-vector product:
//
//	s = Σ_i y[i] * dy[i]
//	dx[j] += y[j] * (dy[j] - s)
//
// s must be computed over all entries before any update: the outputs are
// mutually dependent, so per-entry gradients would miss the cross terms.
func softmaxBackward(n *Node) {
	y, dy := n.x.Tensor().Data(), n.gradData()
	s := floats.Dot(y, dy)
	acc := n.args[0].node.gradData()
	for j := range acc {
		acc[j] += y[j] * (dy[j] - s)
	}
}
