package storage

import "github.com/wasmota/smny/errors"

// SliceSource is the zero-copy access shape: the storage region is
// directly addressable, and the returned slice's lifetime is tied to
// the underlying mapping.
type SliceSource interface {
	// Slice returns the manifest bytes as a borrowed slice over the
	// whole region.
	Slice() ([]byte, error)
}

// ReadSource is the buffered/on-demand access shape: storage is not
// directly addressable, so bytes are pulled through reads.
type ReadSource interface {
	// Size returns the number of manifest bytes available to read.
	Size() (uint32, error)
	// ReadAt reads len(dst) bytes starting at offset into dst.
	ReadAt(dst []byte, offset uint32) (int, error)
}

// MemMapSource adapts a directly addressable region — a memory-mapped
// flash partition, a RAM buffer, or an in-memory test file — into a
// SliceSource. It performs no copying.
type MemMapSource struct {
	region []byte
}

// NewMemMapSource wraps region as a SliceSource. region is borrowed, not
// copied; the caller must keep it valid for as long as the source is in
// use.
func NewMemMapSource(region []byte) *MemMapSource {
	return &MemMapSource{region: region}
}

func (s *MemMapSource) Slice() ([]byte, error) {
	if s.region == nil {
		return nil, errors.OutOfRange
	}
	return s.region, nil
}
