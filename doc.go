// Package ort is the marshaling layer between the native ONNX Runtime
// library and Go programs that want strongly-typed, memory-safe access to
// tensor data.
//
// The runtime is reached through its C API without cgo: Load resolves the
// runtime's function table from a shared library via purego. The runtime
// allocates and owns every tensor buffer; this module reads (and, for custom
// operators, writes) those buffers without copying where the element layout
// allows it, and never frees runtime-owned memory.
//
// The two main surfaces live in subpackages:
//
//   - tensor: element type registry, zero-copy views over runtime-owned
//     tensors, and owned decoding of string tensors.
//   - kernel: the bridge a custom operator uses to read its inputs,
//     allocate its outputs, and read its static attributes.
//
// Session construction, graph loading and execution-provider configuration
// are outside this module's scope.
package ort
