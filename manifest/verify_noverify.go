//go:build noverify

package manifest

import "github.com/wasmota/smny/errors"

// Verify is unavailable in a noverify build: the Ed25519 capability has
// been compiled out. A manifest demanding a signature must still be
// rejected in that case, so this stub always fails rather than silently
// accepting.
func Verify(preimage, signature []byte, publicKey [32]byte) error {
	return errors.SignatureRequired
}
