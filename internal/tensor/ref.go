package tensor

import (
	"fmt"

	"github.com/ThomasKluiters/ort/internal/engine"
)

// Ref is a non-owning reference to a runtime-owned tensor. The runtime keeps
// ownership of the backing buffer; dropping a Ref frees nothing.
type Ref struct {
	value engine.Value
}

// NewRef wraps a tensor handle without taking ownership of it.
func NewRef(value engine.Value) Ref {
	return Ref{value: value}
}

// Value returns the underlying tensor handle.
func (r Ref) Value() engine.Value {
	return r.value
}

// TypeAndShape queries the runtime for the tensor's element type and
// dimensions. The reported element count is cross-checked against the
// dimension product, so a shape returned here is safe to hand to the
// extractors.
func (r Ref) TypeAndShape() (ElementType, Shape, error) {
	api := engine.Get()

	var info engine.TypeAndShapeInfo
	if err := engine.CheckStatus("GetTensorTypeAndShape", api.GetTensorTypeAndShape(r.value, &info)); err != nil {
		return 0, nil, err
	}
	engine.MustNonNull("GetTensorTypeAndShape", uintptr(info))
	defer api.ReleaseTensorTypeAndShapeInfo(info)

	var code engine.TensorElementDataType
	if err := engine.CheckStatus("GetTensorElementType", api.GetTensorElementType(info, &code)); err != nil {
		return 0, nil, err
	}
	elemType := ElementTypeFromNative(code)

	var rank uint64
	if err := engine.CheckStatus("GetDimensionsCount", api.GetDimensionsCount(info, &rank)); err != nil {
		return 0, nil, err
	}
	shape := make(Shape, rank)
	if rank > 0 {
		if err := engine.CheckStatus("GetDimensions", api.GetDimensions(info, &shape[0], rank)); err != nil {
			return 0, nil, err
		}
	}

	var count uint64
	if err := engine.CheckStatus("GetTensorShapeElementCount", api.GetTensorShapeElementCount(info, &count)); err != nil {
		return 0, nil, err
	}
	if int(count) != shape.NumElements() {
		return 0, nil, fmt.Errorf("tensor reports %d elements but shape %v multiplies to %d", count, shape, shape.NumElements())
	}

	return elemType, shape, nil
}

// TypeMismatchError reports an extraction requested as a host type whose tag
// differs from the tensor's actual element type.
type TypeMismatchError struct {
	Want ElementType
	Got  ElementType
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("cannot extract %s tensor as %s", e.Got, e.Want)
}

// Extract retrieves the tensor's validated type and shape, verifies the
// element type matches T, and extracts the data with the strategy wired to
// T. This is the guarded entry point; ExtractView and ExtractStrings trust
// their caller instead.
func Extract[T Scalar](r Ref) (TensorData[T], error) {
	elemType, shape, err := r.TypeAndShape()
	if err != nil {
		return TensorData[T]{}, err
	}
	if want := ElementTypeOf[T](); want != elemType {
		return TensorData[T]{}, &TypeMismatchError{Want: want, Got: elemType}
	}
	return ExtractData[T](r.value, shape, shape.NumElements())
}
