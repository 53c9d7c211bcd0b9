package engine

import (
	"context"

	"github.com/wasmota/smny/errors"
)

// WamrEngine is backend (B), reserved for a second interpreter backend
// (WAMR) behind a future cgo binding. Every call fails with
// errors.Unsupported until that binding exists; the type is kept
// present so the orchestrator's engine selection has a stable place to
// route to it without a future signature change.
type WamrEngine struct{}

// NewWamrEngine constructs backend (B).
func NewWamrEngine() *WamrEngine {
	return &WamrEngine{}
}

func (e *WamrEngine) Load(ctx context.Context, module []byte) (Handle, error) {
	return nil, errors.Unsupported
}

func (e *WamrEngine) Invoke(ctx context.Context, h Handle, entry string) error {
	return errors.Unsupported
}

var _ Engine = (*WamrEngine)(nil)
