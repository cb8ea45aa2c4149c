// Package tensor provides the public API for tensor data extraction.
package tensor

import (
	"github.com/ThomasKluiters/ort/internal/engine"
	"github.com/ThomasKluiters/ort/internal/tensor"
)

// Type aliases for public API

// ElementType is the closed set of tensor element encodings.
type ElementType = tensor.ElementType

// Element type constants.
const (
	Float32  ElementType = tensor.Float32
	Uint8    ElementType = tensor.Uint8
	Int8     ElementType = tensor.Int8
	Uint16   ElementType = tensor.Uint16
	Int16    ElementType = tensor.Int16
	Int32    ElementType = tensor.Int32
	Int64    ElementType = tensor.Int64
	String   ElementType = tensor.String
	Bool     ElementType = tensor.Bool
	Float16  ElementType = tensor.Float16
	Float64  ElementType = tensor.Float64
	Uint32   ElementType = tensor.Uint32
	Uint64   ElementType = tensor.Uint64
	BFloat16 ElementType = tensor.BFloat16
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// BF16 is a 16-bit brain floating-point value, represented as raw bits.
type BF16 = tensor.BF16

// Primitive constrains the host types that can view tensor storage in place.
type Primitive = tensor.Primitive

// Scalar constrains every host type a tensor element can be extracted as.
type Scalar = tensor.Scalar

// View is a borrowed window over runtime-owned tensor storage.
type View[T Scalar] = tensor.View[T]

// Array is an owned, shaped collection of decoded values.
type Array[T Scalar] = tensor.Array[T]

// TensorData holds extracted data: a borrowed View or an owned Array.
type TensorData[T Scalar] = tensor.TensorData[T]

// Ref is a non-owning reference to a runtime-owned tensor.
type Ref = tensor.Ref

// DecodeError reports a string tensor element that is not valid UTF-8.
type DecodeError = tensor.DecodeError

// TypeMismatchError reports an extraction as a host type whose tag differs
// from the tensor's element type.
type TypeMismatchError = tensor.TypeMismatchError

// NewRef wraps a raw tensor handle without taking ownership of it. The
// handle must refer to a live tensor owned by the runtime.
func NewRef(handle uintptr) Ref {
	return tensor.NewRef(engine.Value(handle))
}

// BF16FromFloat32 truncates a float32 to bfloat16.
func BF16FromFloat32(f float32) BF16 {
	return tensor.BF16FromFloat32(f)
}

// ElementTypeOf returns the element type tag for the host type T.
func ElementTypeOf[T Scalar]() ElementType {
	return tensor.ElementTypeOf[T]()
}

// Extract retrieves the tensor's validated type and shape, verifies the
// element type matches T, and extracts the data with the strategy wired to
// T at compile time.
func Extract[T Scalar](r Ref) (TensorData[T], error) {
	return tensor.Extract[T](r)
}

// ExtractView builds a borrowed, zero-copy view over the tensor's storage.
// The supplied shape must multiply out to the tensor's element count.
func ExtractView[T Primitive](r Ref, shape Shape) (*View[T], error) {
	return tensor.ExtractView[T](r.Value(), shape)
}

// ExtractStrings decodes a string tensor into an owned array.
func ExtractStrings(r Ref, shape Shape, elementLen int) (*Array[string], error) {
	return tensor.ExtractStrings(r.Value(), shape, elementLen)
}

// NewArray builds an owned array over data shaped per shape.
func NewArray[T Scalar](shape Shape, data []T) (*Array[T], error) {
	return tensor.NewArray(shape, data)
}
