// Package manifest implements the SMNY envelope codec: encoding and
// decoding the fixed 36-byte header, deriving the Ed25519 signing
// preimage, and applying the signature-required / rollback-protected
// policy as a thin layer above the raw codec.
//
// All operations here are pure. DecodeAndSplit returns slices borrowed
// out of the input blob rather than copies; SigningPreimage allocates a
// new buffer holding the concatenated preimage. Verify is
// the one conditional operation, gated by the "noverify" build tag.
package manifest
