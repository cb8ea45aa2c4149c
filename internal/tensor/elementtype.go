// Package tensor maps the runtime's tensor representation onto Go types:
// the element type registry, shape handling, zero-copy views over
// runtime-owned memory, and owned decoding of string tensors.
package tensor

import (
	"fmt"

	"github.com/ThomasKluiters/ort/internal/engine"
)

// ElementType is the closed set of tensor element encodings supported by the
// binding. Every tag corresponds to exactly one of the runtime's native type
// codes.
type ElementType int

// Supported element types.
const (
	Float32 ElementType = iota
	Uint8
	Int8
	Uint16
	Int16
	Int32
	Int64
	String
	Bool
	Float16
	Float64
	Uint32
	Uint64
	BFloat16
)

// Native returns the runtime's native code for the element type.
func (t ElementType) Native() engine.TensorElementDataType {
	switch t {
	case Float32:
		return engine.DataTypeFloat
	case Uint8:
		return engine.DataTypeUint8
	case Int8:
		return engine.DataTypeInt8
	case Uint16:
		return engine.DataTypeUint16
	case Int16:
		return engine.DataTypeInt16
	case Int32:
		return engine.DataTypeInt32
	case Int64:
		return engine.DataTypeInt64
	case String:
		return engine.DataTypeString
	case Bool:
		return engine.DataTypeBool
	case Float16:
		return engine.DataTypeFloat16
	case Float64:
		return engine.DataTypeDouble
	case Uint32:
		return engine.DataTypeUint32
	case Uint64:
		return engine.DataTypeUint64
	case BFloat16:
		return engine.DataTypeBFloat16
	default:
		panic(fmt.Sprintf("tensor: invalid ElementType(%d)", int(t)))
	}
}

// ElementTypeFromNative converts one of the runtime's native type codes to an
// ElementType. The runtime only ever reports codes from its own closed set,
// so a code outside the supported subset (undefined, complex, and the
// sub-byte float formats) is an API-contract violation and panics.
func ElementTypeFromNative(code engine.TensorElementDataType) ElementType {
	switch code {
	case engine.DataTypeFloat:
		return Float32
	case engine.DataTypeUint8:
		return Uint8
	case engine.DataTypeInt8:
		return Int8
	case engine.DataTypeUint16:
		return Uint16
	case engine.DataTypeInt16:
		return Int16
	case engine.DataTypeInt32:
		return Int32
	case engine.DataTypeInt64:
		return Int64
	case engine.DataTypeString:
		return String
	case engine.DataTypeBool:
		return Bool
	case engine.DataTypeFloat16:
		return Float16
	case engine.DataTypeDouble:
		return Float64
	case engine.DataTypeUint32:
		return Uint32
	case engine.DataTypeUint64:
		return Uint64
	case engine.DataTypeBFloat16:
		return BFloat16
	default:
		panic(fmt.Sprintf("tensor: unsupported native element data type %d", uint32(code)))
	}
}

// Size returns the byte size of one element, or 0 for String, whose elements
// are variable-length.
func (t ElementType) Size() int {
	switch t {
	case Uint8, Int8, Bool:
		return 1
	case Uint16, Int16, Float16, BFloat16:
		return 2
	case Float32, Int32, Uint32:
		return 4
	case Float64, Int64, Uint64:
		return 8
	case String:
		return 0
	default:
		panic(fmt.Sprintf("tensor: invalid ElementType(%d)", int(t)))
	}
}

// String returns a human-readable name for the element type.
func (t ElementType) String() string {
	switch t {
	case Float32:
		return "float32"
	case Uint8:
		return "uint8"
	case Int8:
		return "int8"
	case Uint16:
		return "uint16"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case String:
		return "string"
	case Bool:
		return "bool"
	case Float16:
		return "float16"
	case Float64:
		return "float64"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case BFloat16:
		return "bfloat16"
	default:
		return "unknown"
	}
}
