// Package engine provides the call surface of the native ONNX Runtime
// library. All foreign calls made by the binding go through an API table,
// which in production is bound to the runtime's C function table via purego
// and in tests is backed by an in-process Mock.
package engine

import (
	"sync/atomic"
	"unsafe"
)

// Opaque handles owned by the native runtime. The binding never frees the
// memory behind them unless the runtime's contract says so.
type (
	// Value is a handle to a runtime-owned tensor value.
	Value uintptr
	// Status is a handle to a runtime-allocated status object. A zero
	// Status means success.
	Status uintptr
	// KernelContext is the per-invocation state handed to a custom
	// operator's compute callback.
	KernelContext uintptr
	// KernelInfo is the attribute table attached to an operator instance.
	KernelInfo uintptr
	// TypeAndShapeInfo describes a tensor's element type and dimensions.
	TypeAndShapeInfo uintptr
)

// TensorElementDataType is the runtime's native element type code.
type TensorElementDataType uint32

// Native element type codes, in the runtime's own numbering.
const (
	DataTypeUndefined TensorElementDataType = iota
	DataTypeFloat
	DataTypeUint8
	DataTypeInt8
	DataTypeUint16
	DataTypeInt16
	DataTypeInt32
	DataTypeInt64
	DataTypeString
	DataTypeBool
	DataTypeFloat16
	DataTypeDouble
	DataTypeUint32
	DataTypeUint64
	DataTypeComplex64
	DataTypeComplex128
	DataTypeBFloat16
)

// API is the subset of the runtime's function table consumed by the binding.
// Every call is single-shot and synchronous; each returns a Status that must
// be run through CheckStatus (or released) by the caller.
type API struct {
	GetErrorCode    func(st Status) ErrorCode
	GetErrorMessage func(st Status) string
	ReleaseStatus   func(st Status)

	GetTensorMutableData      func(value Value, out *unsafe.Pointer) Status
	GetStringTensorDataLength func(value Value, out *uint64) Status
	GetStringTensorContent    func(value Value, content unsafe.Pointer, contentLen uint64, offsets *uint64, offsetsLen uint64) Status

	GetTensorTypeAndShape         func(value Value, out *TypeAndShapeInfo) Status
	GetTensorElementType          func(info TypeAndShapeInfo, out *TensorElementDataType) Status
	GetDimensionsCount            func(info TypeAndShapeInfo, out *uint64) Status
	GetDimensions                 func(info TypeAndShapeInfo, dims *int64, dimsLen uint64) Status
	GetTensorShapeElementCount    func(info TypeAndShapeInfo, out *uint64) Status
	ReleaseTensorTypeAndShapeInfo func(info TypeAndShapeInfo)

	KernelContextGetInput  func(ctx KernelContext, index uint64, out *Value) Status
	KernelContextGetOutput func(ctx KernelContext, index uint64, shape *int64, shapeLen uint64, out *Value) Status

	KernelInfoGetAttributeFloat  func(info KernelInfo, name *byte, out *float32) Status
	KernelInfoGetAttributeInt64  func(info KernelInfo, name *byte, out *int64) Status
	KernelInfoGetAttributeString func(info KernelInfo, name *byte, out *byte, size *uint64) Status
}

var current atomic.Pointer[API]

// Use installs the active API table. Tests use it to install a Mock; Load
// installs the table bound to the real runtime library.
func Use(api *API) {
	current.Store(api)
}

// Get returns the active API table. It panics if no runtime has been loaded,
// since every caller in the binding is a foreign call that cannot proceed
// without one.
func Get() *API {
	api := current.Load()
	if api == nil {
		panic("engine: runtime library not loaded (call Load first)")
	}
	return api
}
