package engine

import (
	"sync"
	"unsafe"
)

// Mock is an in-process stand-in for the native runtime, backed by Go memory.
// Tests install it with Use(mock.API()) and register tensors, kernel contexts
// and kernel infos against it. Individual calls can be scripted to fail.
type Mock struct {
	mu       sync.Mutex
	next     uintptr
	tensors  map[Value]*mockTensor
	infos    map[TypeAndShapeInfo]*mockTensor
	contexts map[KernelContext]*mockKernelContext
	attrs    map[KernelInfo]map[string]any
	statuses map[Status]*mockStatus
	fail     map[string]ErrorCode
	refs     []any // keeps registered backing slices reachable
}

type mockTensor struct {
	dtype   TensorElementDataType
	dims    []int64
	data    unsafe.Pointer
	strings []string
}

type mockKernelContext struct {
	inputs  []Value
	outputs map[int]Value
}

type mockStatus struct {
	code ErrorCode
	msg  string
}

// NewMock creates an empty mock runtime.
func NewMock() *Mock {
	return &Mock{
		next:     1,
		tensors:  make(map[Value]*mockTensor),
		infos:    make(map[TypeAndShapeInfo]*mockTensor),
		contexts: make(map[KernelContext]*mockKernelContext),
		attrs:    make(map[KernelInfo]map[string]any),
		statuses: make(map[Status]*mockStatus),
		fail:     make(map[string]ErrorCode),
	}
}

// AddTensor registers a primitive tensor whose storage is the given slice.
// The mock serves pointers into the slice's backing array, so mutations of
// the slice are visible through any view extracted from the returned handle.
func AddTensor[T any](m *Mock, dtype TensorElementDataType, dims []int64, data []T) Value {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &mockTensor{dtype: dtype, dims: dims}
	if len(data) > 0 {
		t.data = unsafe.Pointer(unsafe.SliceData(data))
	}
	m.refs = append(m.refs, data)
	v := Value(m.handleLocked())
	m.tensors[v] = t
	return v
}

// AddStringTensor registers a string tensor. Elements may contain arbitrary
// bytes, which lets tests exercise invalid UTF-8 content.
func (m *Mock) AddStringTensor(dims []int64, elems []string) Value {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := Value(m.handleLocked())
	m.tensors[v] = &mockTensor{dtype: DataTypeString, dims: dims, strings: elems}
	return v
}

// NewKernelContext registers a kernel invocation context with the given
// input tensors.
func (m *Mock) NewKernelContext(inputs ...Value) KernelContext {
	m.mu.Lock()
	defer m.mu.Unlock()
	ctx := KernelContext(m.handleLocked())
	m.contexts[ctx] = &mockKernelContext{inputs: inputs, outputs: make(map[int]Value)}
	return ctx
}

// Output returns the tensor the mock allocated for the context's output slot,
// if one was requested.
func (m *Mock) Output(ctx KernelContext, index int) (Value, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kc, ok := m.contexts[ctx]
	if !ok {
		return 0, false
	}
	v, ok := kc.outputs[index]
	return v, ok
}

// NewKernelInfo registers an operator attribute table. Supported attribute
// value types are float32, int64 and string.
func (m *Mock) NewKernelInfo(attrs map[string]any) KernelInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	info := KernelInfo(m.handleLocked())
	m.attrs[info] = attrs
	return info
}

// FailWith makes every subsequent call with the given name return a failure
// status carrying the given code.
func (m *Mock) FailWith(call string, code ErrorCode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail[call] = code
}

// Succeed clears a failure scripted with FailWith.
func (m *Mock) Succeed(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.fail, call)
}

func (m *Mock) handleLocked() uintptr {
	h := m.next
	m.next++
	return h
}

func (m *Mock) statusLocked(code ErrorCode, msg string) Status {
	st := Status(m.handleLocked())
	m.statuses[st] = &mockStatus{code: code, msg: msg}
	return st
}

func (m *Mock) failureLocked(call string) Status {
	code, ok := m.fail[call]
	if !ok {
		return 0
	}
	return m.statusLocked(code, call+" failed")
}

// API returns an API table backed by this mock.
func (m *Mock) API() *API {
	return &API{
		GetErrorCode: func(st Status) ErrorCode {
			m.mu.Lock()
			defer m.mu.Unlock()
			if s, ok := m.statuses[st]; ok {
				return s.code
			}
			return CodeOK
		},
		GetErrorMessage: func(st Status) string {
			m.mu.Lock()
			defer m.mu.Unlock()
			if s, ok := m.statuses[st]; ok {
				return s.msg
			}
			return ""
		},
		ReleaseStatus: func(st Status) {
			m.mu.Lock()
			defer m.mu.Unlock()
			delete(m.statuses, st)
		},

		GetTensorMutableData: func(value Value, out *unsafe.Pointer) Status {
			m.mu.Lock()
			defer m.mu.Unlock()
			if st := m.failureLocked("GetTensorMutableData"); st != 0 {
				return st
			}
			t, ok := m.tensors[value]
			if !ok {
				return m.statusLocked(CodeInvalidArgument, "unknown tensor handle")
			}
			if t.dtype == DataTypeString {
				return m.statusLocked(CodeInvalidArgument, "string tensors have no contiguous storage")
			}
			*out = t.data
			return 0
		},
		GetStringTensorDataLength: func(value Value, out *uint64) Status {
			m.mu.Lock()
			defer m.mu.Unlock()
			if st := m.failureLocked("GetStringTensorDataLength"); st != 0 {
				return st
			}
			t, ok := m.tensors[value]
			if !ok || t.dtype != DataTypeString {
				return m.statusLocked(CodeInvalidArgument, "not a string tensor")
			}
			var total uint64
			for _, s := range t.strings {
				total += uint64(len(s))
			}
			*out = total
			return 0
		},
		GetStringTensorContent: func(value Value, content unsafe.Pointer, contentLen uint64, offsets *uint64, offsetsLen uint64) Status {
			m.mu.Lock()
			defer m.mu.Unlock()
			if st := m.failureLocked("GetStringTensorContent"); st != 0 {
				return st
			}
			t, ok := m.tensors[value]
			if !ok || t.dtype != DataTypeString {
				return m.statusLocked(CodeInvalidArgument, "not a string tensor")
			}
			if offsetsLen != uint64(len(t.strings)) {
				return m.statusLocked(CodeInvalidArgument, "offset buffer length does not match element count")
			}
			var total uint64
			for _, s := range t.strings {
				total += uint64(len(s))
			}
			if contentLen < total {
				return m.statusLocked(CodeInvalidArgument, "content buffer too small")
			}
			buf := unsafe.Slice((*byte)(content), contentLen)
			offs := unsafe.Slice(offsets, offsetsLen)
			var pos uint64
			for i, s := range t.strings {
				offs[i] = pos
				copy(buf[pos:], s)
				pos += uint64(len(s))
			}
			return 0
		},

		GetTensorTypeAndShape: func(value Value, out *TypeAndShapeInfo) Status {
			m.mu.Lock()
			defer m.mu.Unlock()
			if st := m.failureLocked("GetTensorTypeAndShape"); st != 0 {
				return st
			}
			t, ok := m.tensors[value]
			if !ok {
				return m.statusLocked(CodeInvalidArgument, "unknown tensor handle")
			}
			info := TypeAndShapeInfo(m.handleLocked())
			m.infos[info] = t
			*out = info
			return 0
		},
		GetTensorElementType: func(info TypeAndShapeInfo, out *TensorElementDataType) Status {
			m.mu.Lock()
			defer m.mu.Unlock()
			t, ok := m.infos[info]
			if !ok {
				return m.statusLocked(CodeInvalidArgument, "unknown shape info handle")
			}
			*out = t.dtype
			return 0
		},
		GetDimensionsCount: func(info TypeAndShapeInfo, out *uint64) Status {
			m.mu.Lock()
			defer m.mu.Unlock()
			t, ok := m.infos[info]
			if !ok {
				return m.statusLocked(CodeInvalidArgument, "unknown shape info handle")
			}
			*out = uint64(len(t.dims))
			return 0
		},
		GetDimensions: func(info TypeAndShapeInfo, dims *int64, dimsLen uint64) Status {
			m.mu.Lock()
			defer m.mu.Unlock()
			t, ok := m.infos[info]
			if !ok || dimsLen != uint64(len(t.dims)) {
				return m.statusLocked(CodeInvalidArgument, "bad dimensions query")
			}
			copy(unsafe.Slice(dims, dimsLen), t.dims)
			return 0
		},
		GetTensorShapeElementCount: func(info TypeAndShapeInfo, out *uint64) Status {
			m.mu.Lock()
			defer m.mu.Unlock()
			t, ok := m.infos[info]
			if !ok {
				return m.statusLocked(CodeInvalidArgument, "unknown shape info handle")
			}
			count := uint64(1)
			for _, d := range t.dims {
				count *= uint64(d)
			}
			*out = count
			return 0
		},
		ReleaseTensorTypeAndShapeInfo: func(info TypeAndShapeInfo) {
			m.mu.Lock()
			defer m.mu.Unlock()
			delete(m.infos, info)
		},

		KernelContextGetInput: func(ctx KernelContext, index uint64, out *Value) Status {
			m.mu.Lock()
			defer m.mu.Unlock()
			if st := m.failureLocked("KernelContext_GetInput"); st != 0 {
				return st
			}
			kc, ok := m.contexts[ctx]
			if !ok || index >= uint64(len(kc.inputs)) {
				return m.statusLocked(CodeInvalidArgument, "input index out of range")
			}
			*out = kc.inputs[index]
			return 0
		},
		KernelContextGetOutput: func(ctx KernelContext, index uint64, shape *int64, shapeLen uint64, out *Value) Status {
			m.mu.Lock()
			defer m.mu.Unlock()
			if st := m.failureLocked("KernelContext_GetOutput"); st != 0 {
				return st
			}
			kc, ok := m.contexts[ctx]
			if !ok {
				return m.statusLocked(CodeInvalidArgument, "unknown kernel context")
			}
			dims := make([]int64, shapeLen)
			if shapeLen > 0 {
				copy(dims, unsafe.Slice(shape, shapeLen))
			}
			count := 1
			for _, d := range dims {
				count *= int(d)
			}
			data := make([]float32, count)
			t := &mockTensor{dtype: DataTypeFloat, dims: dims}
			if count > 0 {
				t.data = unsafe.Pointer(unsafe.SliceData(data))
			}
			m.refs = append(m.refs, data)
			v := Value(m.handleLocked())
			m.tensors[v] = t
			kc.outputs[int(index)] = v
			*out = v
			return 0
		},

		KernelInfoGetAttributeFloat: func(info KernelInfo, name *byte, out *float32) Status {
			m.mu.Lock()
			defer m.mu.Unlock()
			if st := m.failureLocked("KernelInfoGetAttribute_float"); st != 0 {
				return st
			}
			v, ok := m.attrLocked(info, name).(float32)
			if !ok {
				return m.statusLocked(CodeInvalidArgument, "no float attribute with that name")
			}
			*out = v
			return 0
		},
		KernelInfoGetAttributeInt64: func(info KernelInfo, name *byte, out *int64) Status {
			m.mu.Lock()
			defer m.mu.Unlock()
			if st := m.failureLocked("KernelInfoGetAttribute_int64"); st != 0 {
				return st
			}
			v, ok := m.attrLocked(info, name).(int64)
			if !ok {
				return m.statusLocked(CodeInvalidArgument, "no int64 attribute with that name")
			}
			*out = v
			return 0
		},
		KernelInfoGetAttributeString: func(info KernelInfo, name *byte, out *byte, size *uint64) Status {
			m.mu.Lock()
			defer m.mu.Unlock()
			if st := m.failureLocked("KernelInfoGetAttribute_string"); st != 0 {
				return st
			}
			v, ok := m.attrLocked(info, name).(string)
			if !ok {
				return m.statusLocked(CodeInvalidArgument, "no string attribute with that name")
			}
			need := uint64(len(v) + 1)
			if out == nil {
				*size = need
				return 0
			}
			if *size < need {
				*size = need
				return m.statusLocked(CodeInvalidArgument, "attribute buffer too small")
			}
			buf := unsafe.Slice(out, need)
			copy(buf, v)
			buf[len(v)] = 0
			*size = need
			return 0
		},
	}
}

func (m *Mock) attrLocked(info KernelInfo, name *byte) any {
	attrs, ok := m.attrs[info]
	if !ok {
		return nil
	}
	return attrs[GoString(uintptr(unsafe.Pointer(name)))]
}
