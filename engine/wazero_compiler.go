package engine

import (
	"context"

	"github.com/tetratelabs/wazero"
)

// CompilerEngine is backend (C): wazero's ahead-of-time compiler mode.
// It is not suitable for the MCU targets this system otherwise ships
// to, but gives host-side integration tests a second, independently
// implemented backend to run the same modules against.
type CompilerEngine struct {
	*wazeroEngine
}

// NewCompilerEngine constructs backend (C).
func NewCompilerEngine(ctx context.Context) *CompilerEngine {
	cfg := wazero.NewRuntimeConfigCompiler()
	return &CompilerEngine{wazeroEngine: newWazeroEngine(ctx, cfg)}
}
