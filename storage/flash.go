package storage

import (
	"go.uber.org/zap"

	"github.com/wasmota/smny/errors"
	"github.com/wasmota/smny/internal/obslog"
)

// FlashIo abstracts a raw flash device over byte offsets relative to the
// module region. Adapters over vendor HALs (ESP-IDF partition APIs,
// STM32 HAL callback pairs) implement this interface directly; host
// adapters MemoryFlash and FileFlash exist for tests.
type FlashIo interface {
	// Read copies len(dst) bytes starting at offset into dst.
	Read(offset uint32, dst []byte) error
	// EraseWrite erases and programs len(src) bytes starting at offset.
	// It must reject the call with Misaligned when EraseBlock() > 0 and
	// either offset or len(src) is not a multiple of the erase block.
	EraseWrite(offset uint32, src []byte) error
	// Capacity is the total addressable size of the module region.
	Capacity() uint32
	// EraseBlock is the device's erase block size, or 0 to disable
	// alignment checking entirely.
	EraseBlock() uint32
}

// PadLen rounds n up to the next multiple of eraseBlock, returning n
// unchanged when eraseBlock is 0.
func PadLen(n, eraseBlock uint32) uint32 {
	if eraseBlock == 0 {
		return n
	}
	rem := n % eraseBlock
	if rem == 0 {
		return n
	}
	return n + (eraseBlock - rem)
}

func checkAligned(offset uint32, length int, eraseBlock uint32) error {
	if eraseBlock == 0 {
		return nil
	}
	if offset%eraseBlock != 0 || uint32(length)%eraseBlock != 0 {
		obslog.Logger().Warn("flash write rejected: misaligned",
			zap.Uint32("offset", offset),
			zap.Int("length", length),
			zap.Uint32("erase_block", eraseBlock),
		)
		return errors.Misaligned
	}
	return nil
}

func checkBounds(offset uint32, length int, capacity uint32) error {
	end := uint64(offset) + uint64(length)
	if end > uint64(capacity) {
		return errors.OutOfRange
	}
	return nil
}
