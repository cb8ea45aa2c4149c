package engine

import "fmt"

// ErrorCode is the runtime's status code numbering.
type ErrorCode int32

// Runtime error codes.
const (
	CodeOK ErrorCode = iota
	CodeFail
	CodeInvalidArgument
	CodeNoSuchFile
	CodeNoModel
	CodeEngineError
	CodeRuntimeException
	CodeInvalidProtobuf
	CodeModelLoaded
	CodeNotImplemented
	CodeInvalidGraph
	CodeEPFail
)

// String returns a human-readable name for the error code.
func (c ErrorCode) String() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeFail:
		return "fail"
	case CodeInvalidArgument:
		return "invalid argument"
	case CodeNoSuchFile:
		return "no such file"
	case CodeNoModel:
		return "no model"
	case CodeEngineError:
		return "engine error"
	case CodeRuntimeException:
		return "runtime exception"
	case CodeInvalidProtobuf:
		return "invalid protobuf"
	case CodeModelLoaded:
		return "model loaded"
	case CodeNotImplemented:
		return "not implemented"
	case CodeInvalidGraph:
		return "invalid graph"
	case CodeEPFail:
		return "execution provider failure"
	default:
		return fmt.Sprintf("unknown(%d)", int32(c))
	}
}

// CallError reports a foreign call for which the runtime returned a failure
// status. It carries the call name, the runtime's error code, and the
// runtime's error message.
type CallError struct {
	Call    string
	Code    ErrorCode
	Message string
}

// Error implements the error interface.
func (e *CallError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %s", e.Call, e.Code)
	}
	return fmt.Sprintf("%s: %s: %s", e.Call, e.Code, e.Message)
}

// CheckStatus translates the status returned by the named foreign call.
// It returns nil on success; otherwise it reads the code and message off the
// status, releases the status object, and returns a *CallError.
func CheckStatus(call string, st Status) error {
	if st == 0 {
		return nil
	}
	api := Get()
	err := &CallError{
		Call:    call,
		Code:    api.GetErrorCode(st),
		Message: api.GetErrorMessage(st),
	}
	api.ReleaseStatus(st)
	return err
}

// MustNonNull panics if the named call reported success but left a required
// out-pointer null. The runtime's API guarantees non-null outputs on success,
// so this is a contract violation with no well-defined recovery.
func MustNonNull(call string, ptr uintptr) {
	if ptr == 0 {
		panic("engine: " + call + " reported success but returned a null pointer")
	}
}
