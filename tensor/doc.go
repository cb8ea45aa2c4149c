// Package tensor provides typed, memory-safe access to tensors owned by the
// ONNX Runtime library.
//
// # Overview
//
// The runtime allocates and owns every tensor buffer; this package turns an
// opaque tensor handle into either a zero-copy view or an owned decoded
// value, depending on the element type:
//
//   - Direct-layout types (fixed-width numerics, booleans, the 16-bit float
//     formats) have identical bit layout on both sides of the boundary, so
//     extraction yields a borrowed View directly over runtime memory.
//   - Strings are stored by the runtime as one packed content buffer plus an
//     offset table, so extraction decodes them into an owned Array.
//
// # Basic Usage
//
//	ref := tensor.NewRef(handle)
//	data, err := tensor.Extract[float32](ref)
//	if err != nil {
//	    return err
//	}
//	view, _ := data.View()
//	x := view.At(1, 2)
//
// # Ownership
//
// A View borrows runtime-owned memory: it is valid only while the source
// tensor is alive and not being written elsewhere, and the caller must
// guarantee exclusive access for its lifetime. Every View carries the handle
// it was derived from. An Array is fully owned and keeps no reference to
// runtime memory.
//
// # Supported Element Types
//
// The closed set of element types is Float32, Float64, Float16, BFloat16,
// all fixed-width signed and unsigned integers, Bool, and String. Half
// precision uses github.com/x448/float16; bfloat16 uses the raw-bits BF16
// type defined here. A native type code outside this set is an API-contract
// violation and panics.
package tensor
