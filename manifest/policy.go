package manifest

import (
	"github.com/wasmota/smny"
	"github.com/wasmota/smny/errors"
)

// ApplyPolicy enforces the signature-required and rollback-protected
// policy checks above the raw codec. headerBytes is the raw 36-byte
// header slice (the signing preimage prefix); module is the
// already-bounds-checked module slice.
func ApplyPolicy(h smny.Header, headerBytes, module, signature []byte, policy smny.Policy) error {
	if h.SignatureRequired() {
		if signature == nil || policy.PublicKey == nil {
			return errors.SignatureRequired
		}
		preimage := SigningPreimage(headerBytes, module)
		if err := Verify(preimage, signature, *policy.PublicKey); err != nil {
			return err
		}
	}

	if h.RollbackProtected() && policy.SequenceFloor != nil {
		if h.Sequence < *policy.SequenceFloor {
			return errors.RollbackRejected
		}
	}

	return nil
}
