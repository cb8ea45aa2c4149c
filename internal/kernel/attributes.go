package kernel

import (
	"go.uber.org/zap"

	"github.com/ThomasKluiters/ort/internal/engine"
)

// Attributes wraps the opaque attribute table attached to an operator
// instance. Unlike Context it is tied to the operator, not to one
// invocation, but it is still non-owning and must not outlive the operator.
//
// Each lookup is independently fallible: a missing attribute, an attribute
// of a different type, and a name with no C representation all collapse to
// ok=false, since at this granularity the caller's natural recovery is
// "treat as not provided". The underlying cause is logged at debug level.
type Attributes struct {
	info engine.KernelInfo
}

// NewAttributes wraps a kernel info handle without taking ownership.
func NewAttributes(info engine.KernelInfo) Attributes {
	return Attributes{info: info}
}

// Float32 reads the named 32-bit float attribute.
func (a Attributes) Float32(name string) (float32, bool) {
	cname, ok := engine.CString(name)
	if !ok {
		return 0, false
	}
	var out float32
	st := engine.Get().KernelInfoGetAttributeFloat(a.info, cname, &out)
	if err := engine.CheckStatus("KernelInfoGetAttribute_float", st); err != nil {
		Logger().Debug("attribute lookup failed", zap.String("name", name), zap.Error(err))
		return 0, false
	}
	return out, true
}

// Int64 reads the named 64-bit integer attribute.
func (a Attributes) Int64(name string) (int64, bool) {
	cname, ok := engine.CString(name)
	if !ok {
		return 0, false
	}
	var out int64
	st := engine.Get().KernelInfoGetAttributeInt64(a.info, cname, &out)
	if err := engine.CheckStatus("KernelInfoGetAttribute_int64", st); err != nil {
		Logger().Debug("attribute lookup failed", zap.String("name", name), zap.Error(err))
		return 0, false
	}
	return out, true
}

// String reads the named string attribute. The runtime's protocol is two
// calls: the first reports the required buffer size, the second fills it.
func (a Attributes) String(name string) (string, bool) {
	cname, ok := engine.CString(name)
	if !ok {
		return "", false
	}
	api := engine.Get()

	var size uint64
	if err := engine.CheckStatus("KernelInfoGetAttribute_string", api.KernelInfoGetAttributeString(a.info, cname, nil, &size)); err != nil {
		Logger().Debug("attribute lookup failed", zap.String("name", name), zap.Error(err))
		return "", false
	}
	if size == 0 {
		return "", true
	}

	buf := make([]byte, size)
	if err := engine.CheckStatus("KernelInfoGetAttribute_string", api.KernelInfoGetAttributeString(a.info, cname, &buf[0], &size)); err != nil {
		Logger().Debug("attribute lookup failed", zap.String("name", name), zap.Error(err))
		return "", false
	}

	// size includes the trailing NUL.
	if size > 0 && buf[size-1] == 0 {
		size--
	}
	return string(buf[:size]), true
}
