// Package errors defines the static-string error taxonomy shared across
// the manifest, storage, engine, and runtime packages.
//
// Every Kind is a zero-allocation sentinel: its Error method returns the
// underlying string verbatim, so constructing, returning, and comparing
// (with ==) a Kind never allocates and never formats.
package errors

// Kind is a short, static-lifetime error value.
type Kind string

func (k Kind) Error() string { return string(k) }

// Format errors.
const (
	BadMagic        Kind = "bad_magic"
	BadVersion      Kind = "bad_version"
	ReservedBitsSet Kind = "reserved_bits_set"
	Truncated       Kind = "truncated"
	LengthMismatch  Kind = "length_mismatch"
	BadEntryName    Kind = "bad_entry_name"
)

// Policy errors.
const (
	SignatureRequired Kind = "signature_required"
	BadSignature      Kind = "bad_signature"
	RollbackRejected  Kind = "rollback_rejected"
)

// Storage errors.
const (
	Misaligned  Kind = "misaligned"
	OutOfRange  Kind = "out_of_range"
	FlashRead   Kind = "flash_read"
	FlashWrite  Kind = "flash_write"
	OutOfMemory Kind = "out_of_memory"
)

// Engine errors.
const (
	LoadFailed    Kind = "load_failed"
	EntryNotFound Kind = "entry_not_found"
	Trap          Kind = "trap"
	Unsupported   Kind = "unsupported"
)
