package tensor

import (
	"fmt"
	"unicode/utf8"
	"unsafe"

	"github.com/x448/float16"

	"github.com/ThomasKluiters/ort/internal/engine"
)

// Primitive constrains the host types whose memory layout is bit-identical
// to the runtime's tensor storage: IEEE-754 floats, two's-complement
// integers, 0/1 booleans, and the raw-bits half-precision types. Tensors of
// these types can be viewed in place.
type Primitive interface {
	bool | uint8 | int8 | uint16 | int16 | uint32 | int32 | uint64 | int64 |
		float16.Float16 | BF16 | float32 | float64
}

// Scalar constrains every host type a tensor element can be extracted as.
// string is the only member without a direct layout; its tensors are decoded
// into owned values instead of viewed.
type Scalar interface {
	Primitive | string
}

// ElementTypeOf returns the element type tag for the host type T.
func ElementTypeOf[T Scalar]() ElementType {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case uint8:
		return Uint8
	case int8:
		return Int8
	case uint16:
		return Uint16
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case string:
		return String
	case bool:
		return Bool
	case float16.Float16:
		return Float16
	case float64:
		return Float64
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case BF16:
		return BFloat16
	default:
		panic("tensor: unsupported scalar type")
	}
}

// TensorData holds data extracted from a tensor: either a borrowed view over
// runtime-owned storage (direct-layout types) or freshly decoded owned
// values (strings). Exactly one side is set.
type TensorData[T Scalar] struct {
	view  *View[T]
	owned *Array[T]
}

// View returns the borrowed view side, if this data borrows runtime storage.
func (d TensorData[T]) View() (*View[T], bool) {
	return d.view, d.view != nil
}

// Owned returns the owned side, if this data was decoded out of the runtime.
func (d TensorData[T]) Owned() (*Array[T], bool) {
	return d.owned, d.owned != nil
}

// DecodeError reports a string tensor element whose bytes are not valid
// UTF-8. Start and End are the element's byte range within the tensor's
// content buffer.
type DecodeError struct {
	Index int
	Start int
	End   int
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("string tensor element %d (content bytes %d..%d) is not valid UTF-8", e.Index, e.Start, e.End)
}

// ExtractData extracts the tensor's elements as host type T, dispatching to
// the single strategy wired to T: a zero-copy view for direct-layout types,
// or owned decoded values for strings. The caller is responsible for having
// verified that the tensor's element type matches T (Extract on a Ref does
// this) and that shape multiplies out to elementLen.
func ExtractData[T Scalar](value engine.Value, shape Shape, elementLen int) (TensorData[T], error) {
	var zero T
	if _, isString := any(zero).(string); isString {
		arr, err := ExtractStrings(value, shape, elementLen)
		if err != nil {
			return TensorData[T]{}, err
		}
		return TensorData[T]{owned: any(arr).(*Array[T])}, nil
	}
	view, err := extractView[T](value, shape)
	if err != nil {
		return TensorData[T]{}, err
	}
	return TensorData[T]{view: view}, nil
}

// ExtractView builds a borrowed view directly over the tensor's storage.
// No bytes are copied: the view reinterprets runtime memory as T, which is
// sound for Primitive types only. The supplied shape must multiply out to
// the tensor's actual element count; that precondition is the caller's to
// uphold (see Ref.TypeAndShape for validated retrieval).
func ExtractView[T Primitive](value engine.Value, shape Shape) (*View[T], error) {
	return extractView[T](value, shape)
}

// extractView carries the Scalar constraint so ExtractData can instantiate
// it; string never reaches here because ExtractData routes it to the decoder.
func extractView[T Scalar](value engine.Value, shape Shape) (*View[T], error) {
	api := engine.Get()

	var ptr unsafe.Pointer
	if err := engine.CheckStatus("GetTensorMutableData", api.GetTensorMutableData(value, &ptr)); err != nil {
		return nil, err
	}
	engine.MustNonNull("GetTensorMutableData", uintptr(ptr))

	return &View[T]{
		value:  value,
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		data:   unsafe.Slice((*T)(ptr), shape.NumElements()),
	}, nil
}

// ExtractStrings decodes a string tensor into owned values. The runtime
// exposes string tensors as one concatenated UTF-8 content buffer plus an
// offset table; the table gets elementLen+1 slots so that element i spans
// content[offsets[i]:offsets[i+1]] once the final slot is backfilled with
// the total length. Decoding is all-or-nothing: the first element that is
// not valid UTF-8 aborts with a *DecodeError and no partial result.
func ExtractStrings(value engine.Value, shape Shape, elementLen int) (*Array[string], error) {
	api := engine.Get()

	// Total length of string content, not including any NUL suffixes.
	var total uint64
	if err := engine.CheckStatus("GetStringTensorDataLength", api.GetStringTensorDataLength(value, &total)); err != nil {
		return nil, err
	}

	content := make([]byte, total)
	// One extra slot so that the total length can go in the last one, making
	// every per-string span calculation uniform.
	offsets := make([]uint64, elementLen+1)

	var contentPtr unsafe.Pointer
	if total > 0 {
		contentPtr = unsafe.Pointer(unsafe.SliceData(content))
	}
	st := api.GetStringTensorContent(value, contentPtr, total, &offsets[0], uint64(elementLen))
	if err := engine.CheckStatus("GetStringTensorContent", st); err != nil {
		return nil, err
	}

	// The runtime fills elementLen offsets and leaves our extra slot alone.
	if offsets[elementLen] != 0 {
		panic(fmt.Sprintf("tensor: runtime wrote %d into the reserved final offset slot", offsets[elementLen]))
	}
	offsets[elementLen] = total

	elems := make([]string, 0, elementLen)
	for i := 0; i < elementLen; i++ {
		b := content[offsets[i]:offsets[i+1]]
		if !utf8.Valid(b) {
			return nil, &DecodeError{Index: i, Start: int(offsets[i]), End: int(offsets[i+1])}
		}
		elems = append(elems, string(b))
	}

	arr, err := NewArray(shape, elems)
	if err != nil {
		// The shape was derived from this same tensor, so a count mismatch
		// means the binding's own bookkeeping is broken.
		panic(fmt.Sprintf("tensor: shape extracted from tensor does not match its contents: %v", err))
	}
	return arr, nil
}
