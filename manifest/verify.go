//go:build !noverify

package manifest

import (
	"crypto/ed25519"

	"github.com/wasmota/smny/errors"
)

// Verify checks signature against preimage using standard Ed25519 over
// curve25519 with SHA-512 — no pre-hashed or context variant.
func Verify(preimage, signature []byte, publicKey [32]byte) error {
	if len(signature) != SignatureLen {
		return errors.BadSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(publicKey[:]), preimage, signature) {
		return errors.BadSignature
	}
	return nil
}
