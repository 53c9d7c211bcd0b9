package engine

import (
	"context"

	"github.com/wasmota/smny/errors"
)

// Handle is an opaque, engine-owned reference to a loaded module. Its
// lifetime is bounded by the Engine instance that produced it; handles
// are not portable across engines.
type Handle any

// Engine is the uniform load/invoke contract virtualized over the
// available WebAssembly backends.
type Engine interface {
	// Load parses and instantiates module. Idempotent with respect to
	// byte content: the same bytes always produce a functionally
	// equivalent handle.
	Load(ctx context.Context, module []byte) (Handle, error)
	// Invoke looks up the named export — which must be a nullary
	// function returning no values — and executes it to completion.
	// Host traps surface as errors.Trap.
	Invoke(ctx context.Context, h Handle, entry string) error
}

// Resetter is implemented by engines that can return an instantiated
// module to a pristine state without re-parsing. runtime.CachedEngine
// uses this to reset a reused handle across runs; for engines that don't
// implement it, the cache reuses the handle as-is without re-loading.
type Resetter interface {
	Reset(ctx context.Context, h Handle) error
}

// Closer is implemented by engines holding resources (compiled modules,
// runtime instances) that must be released explicitly.
type Closer interface {
	Close(ctx context.Context) error
}

var errWrongEngine = errors.LoadFailed
