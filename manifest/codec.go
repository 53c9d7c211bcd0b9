package manifest

import (
	"github.com/wasmota/smny"
	"github.com/wasmota/smny/errors"
)

// SignatureLen is the length of an Ed25519 signature appended after the
// module bytes when the signature-required flag is set.
const SignatureLen = 64

// DecodeAndSplit parses the fixed header from blob, bounds-checks the
// declared module length against the remainder of blob (minus an
// optional trailing signature), and applies policy. It returns borrowed
// slices into blob; no copy is made.
func DecodeAndSplit(blob []byte, policy smny.Policy) (smny.Header, []byte, []byte, error) {
	h, err := decodeHeader(blob, policy.AcceptUnknownReservedFlags)
	if err != nil {
		return smny.Header{}, nil, nil, err
	}

	sigLen := 0
	if h.SignatureRequired() {
		sigLen = SignatureLen
	}

	need := uint64(smny.HeaderSize) + uint64(h.ModuleLen) + uint64(sigLen)
	if need > uint64(len(blob)) {
		return smny.Header{}, nil, nil, errors.Truncated
	}

	moduleStart := smny.HeaderSize
	moduleEnd := moduleStart + int(h.ModuleLen)
	module := blob[moduleStart:moduleEnd]

	var signature []byte
	if sigLen > 0 {
		signature = blob[moduleEnd : moduleEnd+sigLen]
	}

	if err := ApplyPolicy(h, blob[:moduleStart], module, signature, policy); err != nil {
		return smny.Header{}, nil, nil, err
	}

	return h, module, signature, nil
}

// SigningPreimage returns the exact byte sequence fed to Ed25519: the
// header bytes concatenated with the module bytes. The packer and the
// device must both compute this identically for signatures to round
// trip.
func SigningPreimage(headerBytes, moduleBytes []byte) []byte {
	out := make([]byte, 0, len(headerBytes)+len(moduleBytes))
	out = append(out, headerBytes...)
	out = append(out, moduleBytes...)
	return out
}
