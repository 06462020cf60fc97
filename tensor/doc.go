// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the value types of the autograd engine.
//
// # Overview
//
// A Value is either a Scalar (plain float64) or a Tensor (dense float64
// buffer with a shape). Tensors are views over shared storage:
//   - Reshape is zero-copy, the view and its source share storage
//   - Range, Concat and all arithmetic allocate fresh storage
//   - Elementwise operations need identical shapes (no broadcasting)
//
// # Basic Usage
//
//	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{6})
//	if err != nil {
//	    return err
//	}
//	m := x.Reshape(2, 3) // view, no copy
//	m.Set(0, 1, 2)       // x.Get(5) == 0 now
//
// Structural errors (shape mismatch, index out of range) panic.
package tensor
