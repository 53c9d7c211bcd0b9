package smny

// HeaderSize is the fixed on-flash size of a manifest header, in bytes.
// manifest.EncodeHeader produces exactly this many bytes, and
// manifest.DecodeAndSplit rejects a blob shorter than this as Truncated.
const HeaderSize = 36

// EntryNameSize is the fixed width of the zero-padded entry name field.
const EntryNameSize = 16

// Manifest header flag bits.
const (
	FlagSignatureRequired uint8 = 1 << 0
	FlagRollbackProtected uint8 = 1 << 1
)

// Header is the decoded form of the fixed 36-byte manifest header.
type Header struct {
	Flags     uint8
	ModuleID  uint32
	ModuleLen uint32
	Sequence  uint32
	// Entry is the effective entry name: the header's 16-byte field with
	// trailing NUL padding stripped.
	Entry string
}

func (h Header) SignatureRequired() bool {
	return h.Flags&FlagSignatureRequired != 0
}

func (h Header) RollbackProtected() bool {
	return h.Flags&FlagRollbackProtected != 0
}

// Policy configures manifest validation for a single Runtime.
type Policy struct {
	// PublicKey, when non-nil, is the Ed25519 key manifests must verify
	// against when the signature-required flag is set.
	PublicKey *[32]byte
	// SequenceFloor, when non-nil, is the lowest sequence number accepted
	// when the rollback-protected flag is set.
	SequenceFloor *uint32
	// AcceptUnknownReservedFlags disables rejection of reserved flag bits.
	AcceptUnknownReservedFlags bool
}

// AcceptedSequence is the sequence number a caller should persist as the
// new floor after a successful Runtime.Run.
type AcceptedSequence uint32
