package manifest

import (
	"bytes"
	"encoding/binary"

	"github.com/wasmota/smny"
	"github.com/wasmota/smny/errors"
)

// Magic is the 4-byte SMNY envelope marker.
var Magic = [4]byte{'S', 'M', 'N', 'Y'}

// Version is the only header version this codec accepts. Version 1
// (legacy, out of scope) used a variable-length entry name and carried
// no flags, sequence, or reserved bytes.
const Version uint8 = 2

// knownFlags is the set of flag bits this version assigns meaning to.
const knownFlags = smny.FlagSignatureRequired | smny.FlagRollbackProtected

const (
	offMagic     = 0
	offVersion   = 4
	offFlags     = 5
	offReserved  = 6
	offModuleID  = 8
	offModuleLen = 12
	offSequence  = 16
	offEntry     = 20
)

// EncodeHeader serializes fields into the fixed 36-byte on-flash layout.
// Identical input always yields an identical 36-byte output.
func EncodeHeader(h smny.Header) ([smny.HeaderSize]byte, error) {
	var buf [smny.HeaderSize]byte

	if h.Flags&^knownFlags != 0 {
		return buf, errors.ReservedBitsSet
	}
	if len(h.Entry) == 0 || len(h.Entry) > smny.EntryNameSize {
		return buf, errors.BadEntryName
	}
	for i := 0; i < len(h.Entry); i++ {
		c := h.Entry[i]
		if c == 0 || c > 0x7f {
			return buf, errors.BadEntryName
		}
	}

	copy(buf[offMagic:], Magic[:])
	buf[offVersion] = Version
	buf[offFlags] = h.Flags
	// buf[offReserved:offReserved+2] left zero.
	binary.LittleEndian.PutUint32(buf[offModuleID:], h.ModuleID)
	binary.LittleEndian.PutUint32(buf[offModuleLen:], h.ModuleLen)
	binary.LittleEndian.PutUint32(buf[offSequence:], h.Sequence)
	copy(buf[offEntry:offEntry+smny.EntryNameSize], h.Entry)

	return buf, nil
}

// decodeHeader parses the fixed header out of the first HeaderSize bytes
// of blob. It does not apply policy and does not bounds-check ModuleLen
// against the rest of blob; callers use DecodeAndSplit for that.
func decodeHeader(blob []byte, acceptUnknownReserved bool) (smny.Header, error) {
	var h smny.Header

	if len(blob) < smny.HeaderSize {
		return h, errors.Truncated
	}
	if !bytes.Equal(blob[offMagic:offMagic+4], Magic[:]) {
		return h, errors.BadMagic
	}
	if blob[offVersion] != Version {
		return h, errors.BadVersion
	}

	reserved := blob[offReserved : offReserved+2]
	if !acceptUnknownReserved && (reserved[0] != 0 || reserved[1] != 0) {
		return h, errors.ReservedBitsSet
	}

	flags := blob[offFlags]
	if !acceptUnknownReserved && flags&^knownFlags != 0 {
		return h, errors.ReservedBitsSet
	}

	entryField := blob[offEntry : offEntry+smny.EntryNameSize]
	nul := bytes.IndexByte(entryField, 0)
	entryBytes := entryField
	if nul >= 0 {
		entryBytes = entryField[:nul]
	}
	if len(entryBytes) == 0 {
		return h, errors.BadEntryName
	}
	for _, c := range entryBytes {
		if c == 0 || c > 0x7f {
			return h, errors.BadEntryName
		}
	}

	h.Flags = flags
	h.ModuleID = binary.LittleEndian.Uint32(blob[offModuleID:])
	h.ModuleLen = binary.LittleEndian.Uint32(blob[offModuleLen:])
	h.Sequence = binary.LittleEndian.Uint32(blob[offSequence:])
	h.Entry = string(entryBytes)
	return h, nil
}
