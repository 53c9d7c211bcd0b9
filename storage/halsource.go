package storage

// HalOnDemandSource forwards ReadAt calls straight through to the
// underlying FlashIo, never holding a scratch copy. Use this over HAL
// flash behind read callbacks when the caller wants the codec to pull
// slices lazily.
type HalOnDemandSource struct {
	flash  FlashIo
	region uint32
}

// NewHalOnDemandSource wraps flash, exposing the first regionLen bytes
// as manifest bytes. regionLen must be <= flash.Capacity().
func NewHalOnDemandSource(flash FlashIo, regionLen uint32) *HalOnDemandSource {
	return &HalOnDemandSource{flash: flash, region: regionLen}
}

func (s *HalOnDemandSource) Size() (uint32, error) { return s.region, nil }

func (s *HalOnDemandSource) ReadAt(dst []byte, offset uint32) (int, error) {
	if err := checkBounds(offset, len(dst), s.region); err != nil {
		return 0, err
	}
	if err := s.flash.Read(offset, dst); err != nil {
		return 0, err
	}
	return len(dst), nil
}

// HalBufferedSource copies the whole manifest region into a scratch
// buffer up front, then serves reads out of RAM. Use this when a
// scratch copy is wanted to avoid holding the flash mapping open for
// the duration of decode+verify.
type HalBufferedSource struct {
	buf []byte
}

// NewHalBufferedSource reads regionLen bytes from flash into scratch (or
// a newly allocated buffer when scratch is nil) and returns a source
// backed by that copy.
func NewHalBufferedSource(flash FlashIo, regionLen uint32, scratch []byte) (*HalBufferedSource, error) {
	buf := scratch
	if buf == nil {
		buf = make([]byte, regionLen)
	}
	buf = buf[:regionLen]
	if err := flash.Read(0, buf); err != nil {
		return nil, err
	}
	return &HalBufferedSource{buf: buf}, nil
}

func (s *HalBufferedSource) Size() (uint32, error) { return uint32(len(s.buf)), nil }

func (s *HalBufferedSource) ReadAt(dst []byte, offset uint32) (int, error) {
	if err := checkBounds(offset, len(dst), uint32(len(s.buf))); err != nil {
		return 0, err
	}
	return copy(dst, s.buf[offset:offset+uint32(len(dst))]), nil
}

// Slice exposes the buffered copy as a zero-copy SliceSource too, since
// once the region is resident in RAM there's no reason to force callers
// through ReadAt.
func (s *HalBufferedSource) Slice() ([]byte, error) { return s.buf, nil }

var (
	_ ReadSource  = (*HalOnDemandSource)(nil)
	_ ReadSource  = (*HalBufferedSource)(nil)
	_ SliceSource = (*HalBufferedSource)(nil)
)
