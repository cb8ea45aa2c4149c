// Package kernel provides the public API for implementing custom operators.
//
// A custom operator implements the Kernel interface; the runtime invokes
// Compute with a Context wrapping the invocation's opaque state. The Context
// is valid only for the duration of that one call and must not be retained.
// Static operator configuration is read through Attributes, whose lookups
// report absence rather than distinguishing failure causes.
//
//	type scale struct{ attrs kernel.Attributes }
//
//	func (k *scale) Compute(ctx *kernel.Context) error {
//	    alpha, _ := k.attrs.Float32("alpha")
//	    in, ok := ctx.Input(0)
//	    ...
//	}
package kernel

import (
	"github.com/ThomasKluiters/ort/internal/engine"
	"github.com/ThomasKluiters/ort/internal/kernel"
)

// Kernel is a custom operator's computation entry point.
type Kernel = kernel.Kernel

// Context wraps the opaque per-invocation state handed to a kernel.
type Context = kernel.Context

// Attributes wraps the attribute table attached to an operator instance.
type Attributes = kernel.Attributes

// NewContext wraps a raw kernel context handle for one invocation.
// The handle is owned by the runtime and valid only inside the callback it
// was received in.
func NewContext(handle uintptr) *Context {
	return kernel.NewContext(engine.KernelContext(handle))
}

// NewAttributes wraps a raw kernel info handle without taking ownership.
func NewAttributes(handle uintptr) Attributes {
	return kernel.NewAttributes(engine.KernelInfo(handle))
}
