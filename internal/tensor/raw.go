package tensor

import (
	"fmt"

	"github.com/gomlx/exceptions"
)

// Storage is a flat float64 buffer shared by every Tensor view created over it.
//
// A Storage never grows or shrinks after allocation. Views (see Tensor.Reshape)
// hold the same *Storage, so writes through one view are visible through all
// the others.
type Storage struct {
	data []float64
}

// newStorage allocates a zeroed buffer of n elements.
func newStorage(n int) *Storage {
	return &Storage{data: make([]float64, n)}
}

// Len returns the number of elements in the buffer.
func (s *Storage) Len() int {
	return len(s.data)
}

// Tensor is a dense row-major tensor of float64 values.
//
// It is a view: shape + strides + offset over a shared Storage handle.
// All tensors created by this package are contiguous, so the linear index i
// of a tensor maps to storage element offset+i.
type Tensor struct {
	storage *Storage
	shape   Shape
	strides []int
	offset  int
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Strides returns the tensor's memory strides.
func (t *Tensor) Strides() []int {
	return t.strides
}

// Len returns the total number of elements.
func (t *Tensor) Len() int {
	return t.shape.NumElements()
}

// Storage returns the underlying buffer handle.
func (t *Tensor) Storage() *Storage {
	return t.storage
}

// SharesStorage reports whether t and other are views over the same buffer.
func (t *Tensor) SharesStorage(other *Tensor) bool {
	return other != nil && t.storage == other.storage
}

// Data returns the flat slice of the tensor's elements.
// The slice directly accesses the underlying storage (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor and
// every other view sharing its storage.
func (t *Tensor) Data() []float64 {
	return t.storage.data[t.offset : t.offset+t.Len()]
}

// flatIndex converts multi-dimensional indices to a storage position.
func (t *Tensor) flatIndex(indices []int) int {
	if len(indices) != len(t.shape) {
		exceptions.Panicf("expected %d indices, got %d", len(t.shape), len(indices))
	}
	pos := t.offset
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			exceptions.Panicf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i])
		}
		pos += idx * t.strides[i]
	}
	return pos
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
//
// Example:
//
//	t := tensor.Zeros(Shape{3, 4})
//	value := t.At(1, 2) // Row 1, column 2
func (t *Tensor) At(indices ...int) float64 {
	return t.storage.data[t.flatIndex(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor) Set(value float64, indices ...int) {
	t.storage.data[t.flatIndex(indices)] = value
}

// String returns a human-readable representation of the tensor.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor%v%v", t.shape, t.Data())
}
