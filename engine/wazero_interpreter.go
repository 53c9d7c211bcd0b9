package engine

import (
	"context"

	"github.com/tetratelabs/wazero"
)

// InterpreterEngine is backend (A): wazero's interpreter compilation
// mode. It performs no native code generation, which keeps it viable on
// microcontroller targets that cannot JIT or that forbid writable,
// executable memory.
type InterpreterEngine struct {
	*wazeroEngine
}

// NewInterpreterEngine constructs backend (A).
func NewInterpreterEngine(ctx context.Context) *InterpreterEngine {
	cfg := wazero.NewRuntimeConfigInterpreter()
	return &InterpreterEngine{wazeroEngine: newWazeroEngine(ctx, cfg)}
}
