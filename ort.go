package ort

import (
	"go.uber.org/zap"

	"github.com/ThomasKluiters/ort/internal/engine"
	"github.com/ThomasKluiters/ort/internal/kernel"
)

// Load opens the ONNX Runtime shared library at path and binds its API
// table. It must be called once before any tensor or kernel operation.
func Load(path string) error {
	return engine.Load(path)
}

// SetLogger configures structured logging for the binding's internal
// diagnostics. By default all packages use a no-op logger.
// This must be called before Load.
func SetLogger(l *zap.Logger) {
	engine.SetLogger(l)
	kernel.SetLogger(l)
}
