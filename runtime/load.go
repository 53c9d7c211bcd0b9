//go:build !noheap

package runtime

import (
	"context"

	"github.com/wasmota/smny"
	"github.com/wasmota/smny/engine"
)

// load routes through CachedEngine's identity-aware entry point when the
// configured engine is one, so a repeated manifest with unchanged
// module bytes can skip re-parsing. Any other engine just gets a plain
// Load.
func (r *Runtime) load(ctx context.Context, h smny.Header, module []byte) (engine.Handle, error) {
	if cached, ok := r.engine.(*CachedEngine); ok {
		return cached.LoadModule(ctx, h.ModuleID, h.Sequence, module)
	}
	return r.engine.Load(ctx, module)
}
