// Package storage presents manifest bytes to the runtime through two
// access shapes: a zero-copy SliceSource for directly addressable
// regions (memory-mapped flash, RAM, a file mapped for tests), and a
// ReadSource for storage that must be pulled through a buffer (HAL
// flash behind read callbacks) or deliberately copied out of a mapping.
//
// FlashIo abstracts a raw flash device: read, erase+write with
// erase-block alignment enforcement, capacity, and the advertised erase
// block size. Adapters over vendor HALs implement FlashIo directly;
// MemoryFlash and FileFlash are host adapters used by tests. The
// BufferedStoreFromHAL / OnDemandStoreFromHAL / *OTA1 builders compose a
// FlashIo into a ReadSource, encapsulating scratch-buffer sizing and
// partition selection.
package storage
