package runtime

import (
	"context"
	"crypto/ed25519"
	"testing"

	"github.com/wasmota/smny"
	"github.com/wasmota/smny/engine"
	"github.com/wasmota/smny/errors"
	"github.com/wasmota/smny/internal/wasmfixture"
	"github.com/wasmota/smny/manifest"
	"github.com/wasmota/smny/storage"
)

// headerFlagsOffset is the fixed byte offset of the flags field in the
// on-flash header layout (magic[4] version[1] flags[1] ...).
const headerFlagsOffset = 5

func buildBlob(t *testing.T, h smny.Header, module []byte, signingKey ed25519.PrivateKey) []byte {
	t.Helper()

	// EncodeHeader itself rejects unknown flag bits, so tests exercising
	// the decode-side ReservedBitsSet path encode with known flags and
	// patch the raw flags byte afterward.
	encodeFields := h
	encodeFields.Flags &= smny.FlagSignatureRequired | smny.FlagRollbackProtected
	headerBytes, err := manifest.EncodeHeader(encodeFields)
	if err != nil {
		t.Fatalf("EncodeHeader: %v", err)
	}
	headerBytes[headerFlagsOffset] = h.Flags

	blob := append([]byte{}, headerBytes[:]...)
	blob = append(blob, module...)

	if h.SignatureRequired() {
		preimage := manifest.SigningPreimage(headerBytes[:], module)
		sig := ed25519.Sign(signingKey, preimage)
		blob = append(blob, sig...)
	}
	return blob
}

func nullaryModule(t *testing.T) []byte {
	t.Helper()
	return wasmfixture.Module(wasmfixture.Export{Name: "main"})
}

func TestRunUnsignedHappyPath(t *testing.T) {
	module := nullaryModule(t)
	h := smny.Header{ModuleLen: uint32(len(module)), Sequence: 3, Entry: "main"}
	blob := buildBlob(t, h, module, nil)

	rt := New(storage.NewMemMapSource(blob), engine.NewInterpreterEngine(context.Background()), smny.Policy{})
	seq, err := rt.Run(context.Background(), "main")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if seq != smny.AcceptedSequence(3) {
		t.Fatalf("accepted sequence = %d, want 3", seq)
	}
}

func TestRunSignedHappyPathAndBitFlipRejection(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatal(err)
	}
	var pubArr [32]byte
	copy(pubArr[:], pub)

	module := nullaryModule(t)
	h := smny.Header{Flags: smny.FlagSignatureRequired, ModuleLen: uint32(len(module)), Entry: "main"}
	blob := buildBlob(t, h, module, priv)
	policy := smny.Policy{PublicKey: &pubArr}

	rt := New(storage.NewMemMapSource(blob), engine.NewInterpreterEngine(context.Background()), policy)
	if _, err := rt.Run(context.Background(), "main"); err != nil {
		t.Fatalf("Run (valid signature): %v", err)
	}

	tampered := append([]byte{}, blob...)
	tampered[len(tampered)-1] ^= 0x01
	rt = New(storage.NewMemMapSource(tampered), engine.NewInterpreterEngine(context.Background()), policy)
	if _, err := rt.Run(context.Background(), "main"); err != errors.BadSignature {
		t.Fatalf("Run (tampered signature): got %v, want BadSignature", err)
	}
}

func TestRunRollbackRejected(t *testing.T) {
	module := nullaryModule(t)
	floor := uint32(10)
	h := smny.Header{Flags: smny.FlagRollbackProtected, ModuleLen: uint32(len(module)), Sequence: 5, Entry: "main"}
	blob := buildBlob(t, h, module, nil)

	rt := New(storage.NewMemMapSource(blob), engine.NewInterpreterEngine(context.Background()), smny.Policy{SequenceFloor: &floor})
	if _, err := rt.Run(context.Background(), "main"); err != errors.RollbackRejected {
		t.Fatalf("Run: got %v, want RollbackRejected", err)
	}
}

func TestRunTruncatedManifestRejected(t *testing.T) {
	h := smny.Header{ModuleLen: 1000, Entry: "main"}
	headerBytes, err := manifest.EncodeHeader(h)
	if err != nil {
		t.Fatal(err)
	}
	blob := append(headerBytes[:], make([]byte, 10)...)

	rt := New(storage.NewMemMapSource(blob), engine.NewInterpreterEngine(context.Background()), smny.Policy{})
	if _, err := rt.Run(context.Background(), "main"); err != errors.Truncated {
		t.Fatalf("Run: got %v, want Truncated", err)
	}
}

func TestRunUnknownReservedFlagPolicy(t *testing.T) {
	module := nullaryModule(t)
	h := smny.Header{Flags: 1 << 7, ModuleLen: uint32(len(module)), Entry: "main"}
	blob := buildBlob(t, h, module, nil)

	rt := New(storage.NewMemMapSource(blob), engine.NewInterpreterEngine(context.Background()), smny.Policy{})
	if _, err := rt.Run(context.Background(), "main"); err != errors.ReservedBitsSet {
		t.Fatalf("Run (default policy): got %v, want ReservedBitsSet", err)
	}

	rt = New(storage.NewMemMapSource(blob), engine.NewInterpreterEngine(context.Background()), smny.Policy{AcceptUnknownReservedFlags: true})
	if _, err := rt.Run(context.Background(), "main"); err != nil {
		t.Fatalf("Run (accepting policy): %v", err)
	}
}

// readSourceFromBytes adapts a byte slice into storage.ReadSource, for
// exercising Runtime's buffered-copy path alongside the zero-copy
// SliceSource path the other tests use.
type readSourceFromBytes struct {
	data []byte
}

func (s *readSourceFromBytes) Size() (uint32, error) { return uint32(len(s.data)), nil }

func (s *readSourceFromBytes) ReadAt(dst []byte, offset uint32) (int, error) {
	return copy(dst, s.data[offset:]), nil
}

func TestRunOverReadSource(t *testing.T) {
	module := nullaryModule(t)
	h := smny.Header{ModuleLen: uint32(len(module)), Entry: "main"}
	blob := buildBlob(t, h, module, nil)

	rt := New(&readSourceFromBytes{data: blob}, engine.NewInterpreterEngine(context.Background()), smny.Policy{})
	if _, err := rt.Run(context.Background(), "main"); err != nil {
		t.Fatalf("Run over ReadSource: %v", err)
	}
}

func TestCachedEngineHitSkipsReload(t *testing.T) {
	module := nullaryModule(t)
	h := smny.Header{ModuleID: 1, Sequence: 1, ModuleLen: uint32(len(module)), Entry: "main"}
	blob := buildBlob(t, h, module, nil)

	cached := NewCachedEngine(engine.NewInterpreterEngine(context.Background()))
	rt := New(storage.NewMemMapSource(blob), cached, smny.Policy{})

	if _, err := rt.Run(context.Background(), "main"); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	firstHandle := cached.handle

	if _, err := rt.Run(context.Background(), "main"); err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if cached.handle != firstHandle {
		t.Fatalf("expected cache hit to reuse handle, got a new one")
	}
}

func TestCachedEngineInvalidationOnChangedModule(t *testing.T) {
	moduleA := nullaryModule(t)
	hA := smny.Header{ModuleID: 1, Sequence: 1, ModuleLen: uint32(len(moduleA)), Entry: "main"}
	blobA := buildBlob(t, hA, moduleA, nil)

	moduleB := wasmfixture.Module(wasmfixture.Export{Name: "main"}, wasmfixture.Export{Name: "other"})
	hB := smny.Header{ModuleID: 1, Sequence: 2, ModuleLen: uint32(len(moduleB)), Entry: "other"}
	blobB := buildBlob(t, hB, moduleB, nil)

	cached := NewCachedEngine(engine.NewInterpreterEngine(context.Background()))

	rtA := New(storage.NewMemMapSource(blobA), cached, smny.Policy{})
	if _, err := rtA.Run(context.Background(), "main"); err != nil {
		t.Fatalf("Run A: %v", err)
	}
	firstHandle := cached.handle

	rtB := New(storage.NewMemMapSource(blobB), cached, smny.Policy{})
	if _, err := rtB.Run(context.Background(), "other"); err != nil {
		t.Fatalf("Run B: %v", err)
	}
	if cached.handle == firstHandle {
		t.Fatalf("expected cache invalidation on changed module, handle unchanged")
	}
}
