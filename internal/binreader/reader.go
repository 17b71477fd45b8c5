package binreader

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a read or seek goes past the end of the buffer.
	ErrOutOfBounds = errors.New("read out of bounds")
	// ErrInvalidFormat is returned when a structural precondition of a format fails.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrUnsupportedFormat is returned for headers carrying an unknown version or magic.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Reader is a little-endian cursor over an in-memory buffer.
// Every read is bounds-checked; nothing is silently truncated.
type Reader struct {
	data []byte
	off  int
}

// New returns a Reader positioned at offset 0.
func New(data []byte) *Reader {
	return &Reader{data: data}
}

// Len returns the length of the underlying buffer.
func (r *Reader) Len() int { return len(r.data) }

// Offset returns the cursor position.
func (r *Reader) Offset() int { return r.off }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.off }

// Seek moves the cursor to an absolute offset. Seeking to Len() is allowed
// (nothing left to read); anything beyond fails.
func (r *Reader) Seek(off int) error {
	if off < 0 || off > len(r.data) {
		return fmt.Errorf("seek to %d of %d: %w", off, len(r.data), ErrOutOfBounds)
	}
	r.off = off
	return nil
}

// Skip advances the cursor by n bytes.
func (r *Reader) Skip(n int) error {
	return r.Seek(r.off + n)
}

func (r *Reader) need(n int) error {
	if n < 0 || r.off+n > len(r.data) {
		return fmt.Errorf("read %d bytes at %d of %d: %w", n, r.off, len(r.data), ErrOutOfBounds)
	}
	return nil
}

// Bytes returns the next n bytes. The slice aliases the buffer.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *Reader) U8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.data[r.off]
	r.off++
	return v, nil
}

func (r *Reader) U16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.data[r.off:])
	r.off += 2
	return v, nil
}

func (r *Reader) I16() (int16, error) {
	v, err := r.U16()
	return int16(v), err
}

func (r *Reader) U32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.data[r.off:])
	r.off += 4
	return v, nil
}

// PeekU8At returns the byte at an absolute offset without moving the cursor.
func (r *Reader) PeekU8At(off int) (uint8, error) {
	if off < 0 || off >= len(r.data) {
		return 0, fmt.Errorf("peek at %d of %d: %w", off, len(r.data), ErrOutOfBounds)
	}
	return r.data[off], nil
}

// U32At returns the little-endian u32 at an absolute offset without moving the cursor.
func (r *Reader) U32At(off int) (uint32, error) {
	if off < 0 || off+4 > len(r.data) {
		return 0, fmt.Errorf("peek u32 at %d of %d: %w", off, len(r.data), ErrOutOfBounds)
	}
	return binary.LittleEndian.Uint32(r.data[off:]), nil
}

// Sticky wraps a Reader for long fixed-layout records: the first error is
// kept and every later read returns zero, so a record can be read field by
// field and checked once at the end.
type Sticky struct {
	r   *Reader
	err error
}

// NewSticky returns a Sticky reader over data.
func NewSticky(data []byte) *Sticky {
	return &Sticky{r: New(data)}
}

// Err returns the first error encountered.
func (s *Sticky) Err() error { return s.err }

// Offset returns the cursor position of the underlying reader.
func (s *Sticky) Offset() int { return s.r.off }

func (s *Sticky) U8() uint8 {
	if s.err != nil {
		return 0
	}
	v, err := s.r.U8()
	s.err = err
	return v
}

func (s *Sticky) U16() uint16 {
	if s.err != nil {
		return 0
	}
	v, err := s.r.U16()
	s.err = err
	return v
}

func (s *Sticky) I16() int16 {
	return int16(s.U16())
}

func (s *Sticky) U32() uint32 {
	if s.err != nil {
		return 0
	}
	v, err := s.r.U32()
	s.err = err
	return v
}

// Bytes returns a copy of the next n bytes.
func (s *Sticky) Bytes(n int) []byte {
	if s.err != nil {
		return nil
	}
	b, err := s.r.Bytes(n)
	if err != nil {
		s.err = err
		return nil
	}
	return append([]byte(nil), b...)
}

func (s *Sticky) Skip(n int) {
	if s.err != nil {
		return
	}
	s.err = s.r.Skip(n)
}
