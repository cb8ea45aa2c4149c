package tensor

import (
	"testing"

	"github.com/x448/float16"

	"github.com/ThomasKluiters/ort/internal/engine"
)

var allElementTypes = []ElementType{
	Float32, Uint8, Int8, Uint16, Int16, Int32, Int64,
	String, Bool, Float16, Float64, Uint32, Uint64, BFloat16,
}

func TestElementTypeRoundTrip(t *testing.T) {
	for _, et := range allElementTypes {
		if got := ElementTypeFromNative(et.Native()); got != et {
			t.Errorf("ElementTypeFromNative(%s.Native()) = %s, want %s", et, got, et)
		}
	}
}

func TestElementTypeFromNativeUnsupported(t *testing.T) {
	for _, code := range []engine.TensorElementDataType{
		engine.DataTypeUndefined,
		engine.DataTypeComplex64,
		engine.DataTypeComplex128,
		engine.TensorElementDataType(99),
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("ElementTypeFromNative(%d) should panic", code)
				}
			}()
			ElementTypeFromNative(code)
		}()
	}
}

func TestElementTypeSize(t *testing.T) {
	tests := []struct {
		et   ElementType
		size int
	}{
		{Float32, 4},
		{Float64, 8},
		{Int32, 4},
		{Int64, 8},
		{Uint8, 1},
		{Bool, 1},
		{Float16, 2},
		{BFloat16, 2},
		{String, 0},
	}

	for _, tt := range tests {
		if got := tt.et.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.et, got, tt.size)
		}
	}
}

func TestElementTypeString(t *testing.T) {
	tests := []struct {
		et  ElementType
		str string
	}{
		{Float32, "float32"},
		{String, "string"},
		{Bool, "bool"},
		{BFloat16, "bfloat16"},
		{ElementType(-1), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.et.String(); got != tt.str {
			t.Errorf("String() = %q, want %q", got, tt.str)
		}
	}
}

func TestElementTypeOf(t *testing.T) {
	if et := ElementTypeOf[float32](); et != Float32 {
		t.Errorf("ElementTypeOf[float32] = %v, want Float32", et)
	}
	if et := ElementTypeOf[float64](); et != Float64 {
		t.Errorf("ElementTypeOf[float64] = %v, want Float64", et)
	}
	if et := ElementTypeOf[uint8](); et != Uint8 {
		t.Errorf("ElementTypeOf[uint8] = %v, want Uint8", et)
	}
	if et := ElementTypeOf[int8](); et != Int8 {
		t.Errorf("ElementTypeOf[int8] = %v, want Int8", et)
	}
	if et := ElementTypeOf[uint16](); et != Uint16 {
		t.Errorf("ElementTypeOf[uint16] = %v, want Uint16", et)
	}
	if et := ElementTypeOf[int16](); et != Int16 {
		t.Errorf("ElementTypeOf[int16] = %v, want Int16", et)
	}
	if et := ElementTypeOf[uint32](); et != Uint32 {
		t.Errorf("ElementTypeOf[uint32] = %v, want Uint32", et)
	}
	if et := ElementTypeOf[int32](); et != Int32 {
		t.Errorf("ElementTypeOf[int32] = %v, want Int32", et)
	}
	if et := ElementTypeOf[uint64](); et != Uint64 {
		t.Errorf("ElementTypeOf[uint64] = %v, want Uint64", et)
	}
	if et := ElementTypeOf[int64](); et != Int64 {
		t.Errorf("ElementTypeOf[int64] = %v, want Int64", et)
	}
	if et := ElementTypeOf[string](); et != String {
		t.Errorf("ElementTypeOf[string] = %v, want String", et)
	}
	if et := ElementTypeOf[bool](); et != Bool {
		t.Errorf("ElementTypeOf[bool] = %v, want Bool", et)
	}
	if et := ElementTypeOf[float16.Float16](); et != Float16 {
		t.Errorf("ElementTypeOf[float16.Float16] = %v, want Float16", et)
	}
	if et := ElementTypeOf[BF16](); et != BFloat16 {
		t.Errorf("ElementTypeOf[BF16] = %v, want BFloat16", et)
	}
}
