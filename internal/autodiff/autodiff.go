// Package autodiff implements reverse-mode automatic differentiation over
// scalars and dense tensors.
//
// Architecture:
//   - Operand: tagged union of a constant value or a variable Node
//   - Tape: arena of Nodes in creation order (a topological order)
//   - Lifter: turns a forward function plus a rule-table entry into a
//     primitive; calls with only constants return constants and record nothing
//   - Backward: walks the tape in reverse, running each ancestor's backward
//     rule once and accumulating (+=) into its parents' gradients
//
// Usage:
//
//	tape := autodiff.NewTape()
//	x := tape.Tensor(tensor.Vector(1, 2, 3))
//	loss := autodiff.SumReduce(autodiff.Mul(x, x))
//	autodiff.Backward(loss)
//	fmt.Println(x.Grad()) // [2 4 6]
//
// A tape is not safe for concurrent use: gradient accumulation is not atomic.
package autodiff
