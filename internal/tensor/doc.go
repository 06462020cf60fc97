// Package tensor provides the value types of the autograd engine: Scalar and
// dense float64 Tensor, combined in the Value tagged union.
//
// A Tensor is a view (shape + strides + offset) over a shared Storage buffer.
// Reshape creates a new view over the same storage; every other operation
// allocates fresh storage.
package tensor
