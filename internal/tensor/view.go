package tensor

import (
	"fmt"

	"github.com/ThomasKluiters/ort/internal/engine"
)

// View is a borrowed, dimension-shaped window over tensor storage that the
// runtime owns. It is valid only while the source tensor is alive and not
// being written by the runtime; the caller must guarantee exclusive access
// for the view's lifetime. The view performs no copies and no conversion.
type View[T Scalar] struct {
	value  engine.Value
	shape  Shape
	stride []int
	data   []T
}

// Value returns the handle of the tensor the view borrows from. The view is
// only meaningful while this handle is alive.
func (v *View[T]) Value() engine.Value {
	return v.value
}

// Shape returns the view's shape.
func (v *View[T]) Shape() Shape {
	return v.shape
}

// Len returns the total number of elements.
func (v *View[T]) Len() int {
	return len(v.data)
}

// Data returns the raw element window in row-major order. Writes go straight
// to runtime-owned memory.
func (v *View[T]) Data() []T {
	return v.data
}

// At returns the element at the given logical index.
func (v *View[T]) At(ix ...int) T {
	return v.data[offsetOf(v.shape, v.stride, ix)]
}

// Set stores x at the given logical index.
func (v *View[T]) Set(x T, ix ...int) {
	v.data[offsetOf(v.shape, v.stride, ix)] = x
}

// Array is an owned, dimension-shaped collection of decoded values with no
// relation to any runtime buffer.
type Array[T Scalar] struct {
	shape  Shape
	stride []int
	data   []T
}

// NewArray builds an owned array over data shaped per shape.
func NewArray[T Scalar](shape Shape, data []T) (*Array[T], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	return &Array[T]{shape: shape.Clone(), stride: shape.ComputeStrides(), data: data}, nil
}

// Shape returns the array's shape.
func (a *Array[T]) Shape() Shape {
	return a.shape
}

// Len returns the total number of elements.
func (a *Array[T]) Len() int {
	return len(a.data)
}

// Data returns the elements in row-major order.
func (a *Array[T]) Data() []T {
	return a.data
}

// At returns the element at the given logical index.
func (a *Array[T]) At(ix ...int) T {
	return a.data[offsetOf(a.shape, a.stride, ix)]
}

// Set stores x at the given logical index.
func (a *Array[T]) Set(x T, ix ...int) {
	a.data[offsetOf(a.shape, a.stride, ix)] = x
}

func offsetOf(shape Shape, stride []int, ix []int) int {
	if len(ix) != len(shape) {
		panic(fmt.Sprintf("tensor: index rank %d does not match shape rank %d", len(ix), len(shape)))
	}
	off := 0
	for d, i := range ix {
		if i < 0 || int64(i) >= shape[d] {
			panic(fmt.Sprintf("tensor: index %d out of range for dimension %d of extent %d", i, d, shape[d]))
		}
		off += i * stride[d]
	}
	return off
}
