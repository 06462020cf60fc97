package tensor

import (
	"github.com/gomlx/exceptions"
)

// Get returns the element at linear index i.
// Panics if i is out of range.
func (t *Tensor) Get(i int) float64 {
	if i < 0 || i >= t.Len() {
		exceptions.Panicf("get: index %d out of range for tensor of %d elements", i, t.Len())
	}
	return t.storage.data[t.offset+i]
}

// Range returns a copy of the contiguous elements [start, end) as a 1-D tensor.
// Panics if the range is empty or out of bounds.
func (t *Tensor) Range(start, end int) *Tensor {
	if start < 0 || end > t.Len() || start >= end {
		exceptions.Panicf("range: [%d, %d) out of range for tensor of %d elements", start, end, t.Len())
	}
	out := Zeros(Shape{end - start})
	copy(out.Data(), t.Data()[start:end])
	return out
}

// CopyInto copies every element of t into dst starting at dst's linear index offset.
// Panics if t does not fit.
func (t *Tensor) CopyInto(dst *Tensor, offset int) {
	if offset < 0 || offset+t.Len() > dst.Len() {
		exceptions.Panicf("copy into: %d elements at offset %d do not fit %d", t.Len(), offset, dst.Len())
	}
	copy(dst.Data()[offset:], t.Data())
}

// Reshape returns a view of t with a new shape. No data is copied: the view
// and t share storage, so writes through either are visible through both.
//
// Panics if the number of elements differs.
func (t *Tensor) Reshape(dims ...int) *Tensor {
	shape := Shape(dims).Clone()
	if err := shape.Validate(); err != nil {
		exceptions.Panicf("reshape: %v", err)
	}
	if shape.NumElements() != t.Len() {
		exceptions.Panicf("reshape: cannot view %v (%d elements) as %v (%d elements)",
			t.shape, t.Len(), shape, shape.NumElements())
	}
	return &Tensor{
		storage: t.storage,
		shape:   shape,
		strides: shape.ComputeStrides(),
		offset:  t.offset,
	}
}

// Concat joins tensors in argument order into a new 1-D tensor by buffer copy.
//
// Example:
//
//	a := tensor.Vector(1, 2)
//	b := tensor.Vector(3, 4, 5)
//	c := tensor.Concat(a, b) // [1 2 3 4 5]
func Concat(tensors ...*Tensor) *Tensor {
	if len(tensors) == 0 {
		exceptions.Panicf("concat: at least one tensor required")
	}
	total := 0
	for _, t := range tensors {
		total += t.Len()
	}
	out := Zeros(Shape{total})
	offset := 0
	for _, t := range tensors {
		t.CopyInto(out, offset)
		offset += t.Len()
	}
	return out
}
