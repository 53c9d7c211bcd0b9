//go:build noheap

package runtime

import (
	"context"

	"github.com/wasmota/smny"
	"github.com/wasmota/smny/engine"
)

// load is the noheap build's plain Load; CachedEngine is unavailable
// under this tag since its single-entry cache is itself a heap
// allocation the tag exists to drop.
func (r *Runtime) load(ctx context.Context, h smny.Header, module []byte) (engine.Handle, error) {
	return r.engine.Load(ctx, module)
}
