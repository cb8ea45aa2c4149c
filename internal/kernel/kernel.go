// Package kernel bridges custom operator implementations to the runtime's
// per-invocation kernel API: reading inputs, allocating outputs, and reading
// static operator attributes.
package kernel

import (
	"go.uber.org/zap"

	"github.com/ThomasKluiters/ort/internal/engine"
	"github.com/ThomasKluiters/ort/internal/tensor"
)

// Kernel is a custom operator's computation entry point. The runtime invokes
// Compute once per operator execution with a Context wrapping the
// invocation's state.
type Kernel interface {
	Compute(ctx *Context) error
}

// Context wraps the opaque per-invocation state the runtime hands to a
// kernel. It is valid only for the duration of one Compute call, on the
// goroutine the runtime invoked it on; it must not be retained, copied into
// longer-lived structures, or reused across invocations.
type Context struct {
	ctx engine.KernelContext
}

// NewContext wraps a live kernel context handle without taking ownership.
func NewContext(ctx engine.KernelContext) *Context {
	return &Context{ctx: ctx}
}

// Input returns a non-owning reference to the input tensor at index.
// All failure causes (index out of range, runtime error) collapse to
// ok=false; the underlying cause is logged at debug level.
func (c *Context) Input(index int) (tensor.Ref, bool) {
	var value engine.Value
	st := engine.Get().KernelContextGetInput(c.ctx, uint64(index), &value)
	if err := engine.CheckStatus("KernelContext_GetInput", st); err != nil {
		Logger().Debug("kernel input lookup failed", zap.Int("index", index), zap.Error(err))
		return tensor.Ref{}, false
	}
	return tensor.NewRef(value), true
}

// Output asks the runtime to allocate the output buffer at index, sized by
// shape. On success the returned reference points at a buffer owned by the
// runtime's output slot; the host never frees it. Failure collapses to
// ok=false. A null handle on a reported success is a contract violation and
// panics.
func (c *Context) Output(index int, shape tensor.Shape) (tensor.Ref, bool) {
	var dims *int64
	if len(shape) > 0 {
		dims = &shape[0]
	}

	var value engine.Value
	st := engine.Get().KernelContextGetOutput(c.ctx, uint64(index), dims, uint64(len(shape)), &value)
	if err := engine.CheckStatus("KernelContext_GetOutput", st); err != nil {
		Logger().Debug("kernel output allocation failed",
			zap.Int("index", index),
			zap.Int64s("shape", []int64(shape)),
			zap.Error(err))
		return tensor.Ref{}, false
	}
	engine.MustNonNull("KernelContext_GetOutput", uintptr(value))
	return tensor.NewRef(value), true
}
