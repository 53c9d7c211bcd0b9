package storage

import (
	"os"

	"github.com/wasmota/smny/errors"
)

// FileFlash is an os.File-backed FlashIo used by host integration tests
// that want to exercise a real offset-addressed I/O path (ReadAt/WriteAt)
// instead of an in-process slice. Unlike real flash it has no physical
// erase step, but it still enforces the same alignment contract so tests
// can assert FlashIo callers behave correctly regardless of backend.
type FileFlash struct {
	f          *os.File
	capacity   uint32
	eraseBlock uint32
}

// NewFileFlash wraps f, which must already be sized to capacity bytes
// (e.g. via f.Truncate).
func NewFileFlash(f *os.File, capacity, eraseBlock uint32) *FileFlash {
	return &FileFlash{f: f, capacity: capacity, eraseBlock: eraseBlock}
}

func (f *FileFlash) Capacity() uint32   { return f.capacity }
func (f *FileFlash) EraseBlock() uint32 { return f.eraseBlock }

func (f *FileFlash) Read(offset uint32, dst []byte) error {
	if err := checkBounds(offset, len(dst), f.capacity); err != nil {
		return err
	}
	if _, err := f.f.ReadAt(dst, int64(offset)); err != nil {
		return errors.FlashRead
	}
	return nil
}

func (f *FileFlash) EraseWrite(offset uint32, src []byte) error {
	if err := checkAligned(offset, len(src), f.eraseBlock); err != nil {
		return err
	}
	if err := checkBounds(offset, len(src), f.capacity); err != nil {
		return err
	}
	if _, err := f.f.WriteAt(src, int64(offset)); err != nil {
		return errors.FlashWrite
	}
	return nil
}

var _ FlashIo = (*FileFlash)(nil)
