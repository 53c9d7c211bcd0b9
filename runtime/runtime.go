package runtime

import (
	"context"

	"go.uber.org/zap"

	"github.com/wasmota/smny"
	"github.com/wasmota/smny/engine"
	"github.com/wasmota/smny/errors"
	"github.com/wasmota/smny/internal/obslog"
	"github.com/wasmota/smny/manifest"
	"github.com/wasmota/smny/storage"
)

// Runtime is the single entry point a device calls to decode, verify,
// load, and run an incoming manifest. It holds no state across calls
// other than a reusable scratch buffer for ReadSource sources.
type Runtime struct {
	source any
	engine engine.Engine
	policy smny.Policy

	scratch []byte
}

// New constructs a Runtime over source, which must implement
// storage.SliceSource or storage.ReadSource, using eng to load and
// invoke modules under policy.
func New(source any, eng engine.Engine, policy smny.Policy) *Runtime {
	return &Runtime{source: source, engine: eng, policy: policy}
}

func (r *Runtime) trace(s state) {
	obslog.Logger().Debug("state transition", zap.String("state", s.String()))
}

// Run decodes the manifest currently available from the configured
// source, verifies it against policy, loads its module into the
// engine, and invokes entry. It returns the accepted sequence number on
// success. Any failure returns immediately with the error observed at
// whichever phase it occurred; the source is never partially consumed
// in a way that matters, since Run performs no writes.
func (r *Runtime) Run(ctx context.Context, entry string) (smny.AcceptedSequence, error) {
	r.trace(stateIdle)

	r.trace(stateDecoding)
	blob, err := r.readBlob()
	if err != nil {
		return 0, err
	}

	r.trace(stateVerifying)
	h, module, _, err := manifest.DecodeAndSplit(blob, r.policy)
	if err != nil {
		return 0, err
	}

	r.trace(stateLoading)
	handle, err := r.load(ctx, h, module)
	if err != nil {
		return 0, err
	}

	r.trace(stateInvoking)
	if err := r.engine.Invoke(ctx, handle, entry); err != nil {
		return 0, err
	}

	return smny.AcceptedSequence(h.Sequence), nil
}

// readBlob obtains the manifest bytes from r.source, dispatching on
// which access shape it implements. SliceSource is zero-copy; ReadSource
// is copied once into r.scratch, growing it only when the incoming
// manifest no longer fits.
func (r *Runtime) readBlob() ([]byte, error) {
	switch src := r.source.(type) {
	case storage.SliceSource:
		return src.Slice()
	case storage.ReadSource:
		size, err := src.Size()
		if err != nil {
			return nil, err
		}
		if uint32(cap(r.scratch)) < size {
			r.scratch = make([]byte, size)
		}
		r.scratch = r.scratch[:size]
		if _, err := src.ReadAt(r.scratch, 0); err != nil {
			return nil, err
		}
		return r.scratch, nil
	default:
		return nil, errors.LoadFailed
	}
}
