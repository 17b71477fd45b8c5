package binreader

import (
	"bytes"
	"errors"
	"testing"
)

func TestReaderLittleEndian(t *testing.T) {
	r := New([]byte{0x01, 0x34, 0x12, 0x78, 0x56, 0x34, 0x12, 0xFE, 0xFF})

	if v, err := r.U8(); err != nil || v != 0x01 {
		t.Fatalf("U8 = %#x, %v", v, err)
	}
	if v, err := r.U16(); err != nil || v != 0x1234 {
		t.Fatalf("U16 = %#x, %v", v, err)
	}
	if v, err := r.U32(); err != nil || v != 0x12345678 {
		t.Fatalf("U32 = %#x, %v", v, err)
	}
	if v, err := r.I16(); err != nil || v != -2 {
		t.Fatalf("I16 = %d, %v", v, err)
	}
	if r.Remaining() != 0 {
		t.Fatalf("Remaining = %d, want 0", r.Remaining())
	}
}

func TestReaderOutOfBounds(t *testing.T) {
	r := New([]byte{1, 2, 3})
	if _, err := r.U32(); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("U32 past end: got %v, want ErrOutOfBounds", err)
	}
	// Failed read must not move the cursor.
	if r.Offset() != 0 {
		t.Fatalf("offset moved to %d", r.Offset())
	}
	if err := r.Seek(3); err != nil {
		t.Fatalf("seek to len: %v", err)
	}
	if err := r.Seek(4); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("seek past len: got %v", err)
	}
	if _, err := r.PeekU8At(3); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("peek past end: got %v", err)
	}
	if v, err := r.PeekU8At(1); err != nil || v != 2 {
		t.Fatalf("PeekU8At(1) = %d, %v", v, err)
	}
}

func TestStickyKeepsFirstError(t *testing.T) {
	s := NewSticky([]byte{0xAA, 0xBB})
	if v := s.U16(); v != 0xBBAA {
		t.Fatalf("U16 = %#x", v)
	}
	if v := s.U32(); v != 0 {
		t.Fatalf("U32 past end = %#x, want 0", v)
	}
	first := s.Err()
	if !errors.Is(first, ErrOutOfBounds) {
		t.Fatalf("Err = %v", first)
	}
	s.U8()
	if s.Err() != first {
		t.Fatalf("error replaced: %v", s.Err())
	}
}

func TestBytesFromSource(t *testing.T) {
	want := []byte("scene")
	got, err := Bytes(bytes.NewReader(want))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("Bytes = %q, want %q", got, want)
	}
}
