package engine

import (
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"
)

// apiVersion is the runtime API version the binding was written against.
const apiVersion = 16

// Indices into the runtime's API function table. The table is append-only
// across runtime releases, so these hold for any runtime supporting
// apiVersion or later.
const (
	fnGetErrorCode                  = 1
	fnGetErrorMessage               = 2
	fnGetTensorMutableData          = 51
	fnGetStringTensorDataLength     = 53
	fnGetStringTensorContent        = 54
	fnGetTensorElementType          = 60
	fnGetDimensionsCount            = 61
	fnGetDimensions                 = 62
	fnGetTensorShapeElementCount    = 64
	fnGetTensorTypeAndShape         = 65
	fnKernelInfoGetAttributeFloat   = 85
	fnKernelInfoGetAttributeInt64   = 86
	fnKernelInfoGetAttributeString  = 87
	fnKernelContextGetInput         = 90
	fnKernelContextGetOutput        = 91
	fnReleaseStatus                 = 93
	fnReleaseTensorTypeAndShapeInfo = 99

	tableLen = fnReleaseTensorTypeAndShapeInfo + 1
)

// Load opens the runtime shared library at path, resolves its API table for
// apiVersion, and installs it as the active API.
func Load(path string) error {
	lib, err := openLibrary(path)
	if err != nil {
		return fmt.Errorf("engine: failed to open runtime library %q: %w", path, err)
	}

	getAPIBase, err := loadSymbol(lib, "OrtGetApiBase")
	if err != nil {
		return fmt.Errorf("engine: %q does not export the runtime entry point: %w", path, err)
	}

	base, _, _ := purego.SyscallN(getAPIBase)
	if base == 0 {
		return fmt.Errorf("engine: runtime returned a null API base")
	}

	// The API base holds two function pointers: GetApi and GetVersionString.
	getAPI := *(*uintptr)(unsafe.Pointer(base))
	getVersion := *(*uintptr)(unsafe.Pointer(base + unsafe.Sizeof(uintptr(0))))

	apiPtr, _, _ := purego.SyscallN(getAPI, apiVersion)
	if apiPtr == 0 {
		return fmt.Errorf("engine: runtime at %q does not support API version %d", path, apiVersion)
	}

	table := unsafe.Slice((*uintptr)(unsafe.Pointer(apiPtr)), tableLen)
	Use(bind(table))

	versionPtr, _, _ := purego.SyscallN(getVersion)
	Logger().Info("runtime library loaded",
		zap.String("path", path),
		zap.String("version", GoString(versionPtr)),
		zap.Int("api_version", apiVersion),
	)
	return nil
}

// bind builds an API whose functions forward through the runtime's table.
func bind(table []uintptr) *API {
	return &API{
		GetErrorCode: func(st Status) ErrorCode {
			code, _, _ := purego.SyscallN(table[fnGetErrorCode], uintptr(st))
			return ErrorCode(code)
		},
		GetErrorMessage: func(st Status) string {
			msg, _, _ := purego.SyscallN(table[fnGetErrorMessage], uintptr(st))
			return GoString(msg)
		},
		ReleaseStatus: func(st Status) {
			purego.SyscallN(table[fnReleaseStatus], uintptr(st))
		},

		GetTensorMutableData: func(value Value, out *unsafe.Pointer) Status {
			st, _, _ := purego.SyscallN(table[fnGetTensorMutableData], uintptr(value), uintptr(unsafe.Pointer(out)))
			return Status(st)
		},
		GetStringTensorDataLength: func(value Value, out *uint64) Status {
			st, _, _ := purego.SyscallN(table[fnGetStringTensorDataLength], uintptr(value), uintptr(unsafe.Pointer(out)))
			return Status(st)
		},
		GetStringTensorContent: func(value Value, content unsafe.Pointer, contentLen uint64, offsets *uint64, offsetsLen uint64) Status {
			st, _, _ := purego.SyscallN(table[fnGetStringTensorContent],
				uintptr(value), uintptr(content), uintptr(contentLen),
				uintptr(unsafe.Pointer(offsets)), uintptr(offsetsLen))
			return Status(st)
		},

		GetTensorTypeAndShape: func(value Value, out *TypeAndShapeInfo) Status {
			st, _, _ := purego.SyscallN(table[fnGetTensorTypeAndShape], uintptr(value), uintptr(unsafe.Pointer(out)))
			return Status(st)
		},
		GetTensorElementType: func(info TypeAndShapeInfo, out *TensorElementDataType) Status {
			st, _, _ := purego.SyscallN(table[fnGetTensorElementType], uintptr(info), uintptr(unsafe.Pointer(out)))
			return Status(st)
		},
		GetDimensionsCount: func(info TypeAndShapeInfo, out *uint64) Status {
			st, _, _ := purego.SyscallN(table[fnGetDimensionsCount], uintptr(info), uintptr(unsafe.Pointer(out)))
			return Status(st)
		},
		GetDimensions: func(info TypeAndShapeInfo, dims *int64, dimsLen uint64) Status {
			st, _, _ := purego.SyscallN(table[fnGetDimensions], uintptr(info), uintptr(unsafe.Pointer(dims)), uintptr(dimsLen))
			return Status(st)
		},
		GetTensorShapeElementCount: func(info TypeAndShapeInfo, out *uint64) Status {
			st, _, _ := purego.SyscallN(table[fnGetTensorShapeElementCount], uintptr(info), uintptr(unsafe.Pointer(out)))
			return Status(st)
		},
		ReleaseTensorTypeAndShapeInfo: func(info TypeAndShapeInfo) {
			purego.SyscallN(table[fnReleaseTensorTypeAndShapeInfo], uintptr(info))
		},

		KernelContextGetInput: func(ctx KernelContext, index uint64, out *Value) Status {
			st, _, _ := purego.SyscallN(table[fnKernelContextGetInput], uintptr(ctx), uintptr(index), uintptr(unsafe.Pointer(out)))
			return Status(st)
		},
		KernelContextGetOutput: func(ctx KernelContext, index uint64, shape *int64, shapeLen uint64, out *Value) Status {
			st, _, _ := purego.SyscallN(table[fnKernelContextGetOutput],
				uintptr(ctx), uintptr(index),
				uintptr(unsafe.Pointer(shape)), uintptr(shapeLen),
				uintptr(unsafe.Pointer(out)))
			return Status(st)
		},

		KernelInfoGetAttributeFloat: func(info KernelInfo, name *byte, out *float32) Status {
			st, _, _ := purego.SyscallN(table[fnKernelInfoGetAttributeFloat],
				uintptr(info), uintptr(unsafe.Pointer(name)), uintptr(unsafe.Pointer(out)))
			return Status(st)
		},
		KernelInfoGetAttributeInt64: func(info KernelInfo, name *byte, out *int64) Status {
			st, _, _ := purego.SyscallN(table[fnKernelInfoGetAttributeInt64],
				uintptr(info), uintptr(unsafe.Pointer(name)), uintptr(unsafe.Pointer(out)))
			return Status(st)
		},
		KernelInfoGetAttributeString: func(info KernelInfo, name *byte, out *byte, size *uint64) Status {
			st, _, _ := purego.SyscallN(table[fnKernelInfoGetAttributeString],
				uintptr(info), uintptr(unsafe.Pointer(name)),
				uintptr(unsafe.Pointer(out)), uintptr(unsafe.Pointer(size)))
			return Status(st)
		},
	}
}
