package engine

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wasmota/smny/errors"
)

// wazeroEngine implements Engine over a tetratelabs/wazero runtime. The
// interpreter and compiler backends share this implementation; only the
// wazero.RuntimeConfig they're built from differs, since Load/Invoke/Reset
// mechanics are identical once the wazero runtime exists.
type wazeroEngine struct {
	runtime wazero.Runtime
}

func newWazeroEngine(ctx context.Context, cfg wazero.RuntimeConfig) *wazeroEngine {
	return &wazeroEngine{runtime: wazero.NewRuntimeWithConfig(ctx, cfg)}
}

type wazeroHandle struct {
	compiled wazero.CompiledModule
	instance api.Module
}

func (e *wazeroEngine) Load(ctx context.Context, module []byte) (Handle, error) {
	compiled, err := e.runtime.CompileModule(ctx, module)
	if err != nil {
		Logger().Warn("module compile failed", zap.Error(err))
		return nil, errors.LoadFailed
	}

	instance, err := e.runtime.InstantiateModule(ctx, compiled, wazero.NewModuleConfig())
	if err != nil {
		_ = compiled.Close(ctx)
		Logger().Warn("module instantiate failed", zap.Error(err))
		return nil, errors.LoadFailed
	}

	return &wazeroHandle{compiled: compiled, instance: instance}, nil
}

func (e *wazeroEngine) Invoke(ctx context.Context, h Handle, entry string) error {
	wh, ok := h.(*wazeroHandle)
	if !ok {
		return errWrongEngine
	}

	fn := wh.instance.ExportedFunction(entry)
	if fn == nil {
		return errors.EntryNotFound
	}

	if _, err := fn.Call(ctx); err != nil {
		Logger().Warn("module entry trapped", zap.String("entry", entry), zap.Error(err))
		return errors.Trap
	}
	return nil
}

// Reset closes and re-instantiates the compiled module in place,
// returning it to a pristine state without re-parsing the wasm bytes.
func (e *wazeroEngine) Reset(ctx context.Context, h Handle) error {
	wh, ok := h.(*wazeroHandle)
	if !ok {
		return errWrongEngine
	}

	if err := wh.instance.Close(ctx); err != nil {
		return errors.LoadFailed
	}

	instance, err := e.runtime.InstantiateModule(ctx, wh.compiled, wazero.NewModuleConfig())
	if err != nil {
		return errors.LoadFailed
	}
	wh.instance = instance
	return nil
}

func (e *wazeroEngine) Close(ctx context.Context) error {
	if err := e.runtime.Close(ctx); err != nil {
		return errors.LoadFailed
	}
	return nil
}

var (
	_ Engine   = (*wazeroEngine)(nil)
	_ Resetter = (*wazeroEngine)(nil)
	_ Closer   = (*wazeroEngine)(nil)
)
