package lzs

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math/rand"
	"testing"

	"ff7-asset-extract/internal/binreader"
)

// frame prepends the payload-length prefix.
func frame(payload []byte) []byte {
	out := make([]byte, HeaderSize+len(payload))
	binary.LittleEndian.PutUint32(out, uint32(len(payload)))
	copy(out[HeaderSize:], payload)
	return out
}

// literalOnly encodes data using literal tokens only.
func literalOnly(data []byte) []byte {
	var payload []byte
	for i := 0; i < len(data); i += 8 {
		end := min(i+8, len(data))
		payload = append(payload, 0xFF)
		payload = append(payload, data[i:end]...)
	}
	return frame(payload)
}

func TestDecompressFixtures(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		want    []byte
	}{
		{
			name:    "literals",
			payload: []byte{0xFF, 'C', 'L', 'O', 'U', 'D', ' ', 'S', 'T', 0x03, 'R', 'I'},
			want:    []byte("CLOUD STRI"),
		},
		{
			name:    "repeat block",
			payload: []byte{0x07, 'A', 'B', 'C', 0xEE, 0xF3},
			want:    []byte("ABCABCABC"),
		},
		{
			name:    "run length overlap",
			payload: []byte{0x01, 'x', 0xEE, 0xF2},
			want:    []byte("xxxxxx"),
		},
		{
			name:    "reference before start emits zeros",
			payload: []byte{0x00, 0x00, 0x00},
			want:    []byte{0, 0, 0},
		},
		{
			name:    "longest match",
			payload: []byte{0x01, 'z', 0xEE, 0xFF},
			want:    bytes.Repeat([]byte{'z'}, 19),
		},
		{
			name:    "empty payload",
			payload: nil,
			want:    []byte{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decompress(frame(tt.payload))
			if err != nil {
				t.Fatalf("Decompress: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecompressLiteralRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{1, 7, 8, 9, 255, 256, 257, 4096, 10000} {
		data := make([]byte, n)
		rng.Read(data)
		got, err := Decompress(literalOnly(data))
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("n=%d: round trip mismatch", n)
		}
	}
}

func TestDecompressHeaderMismatch(t *testing.T) {
	good := frame([]byte{0x07, 'A', 'B', 'C', 0xEE, 0xF3})

	tests := []struct {
		name string
		buf  []byte
	}{
		{"too short", []byte{1, 0}},
		{"prefix counts itself", func() []byte {
			b := append([]byte(nil), good...)
			binary.LittleEndian.PutUint32(b, uint32(len(b)))
			return b
		}()},
		{"prefix too small", func() []byte {
			b := append([]byte(nil), good...)
			binary.LittleEndian.PutUint32(b, 1)
			return b
		}()},
		{"trailing garbage", append(append([]byte(nil), good...), 0xAA)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Decompress(tt.buf)
			if !errors.Is(err, ErrInvalidFormat) {
				t.Fatalf("err = %v, want ErrInvalidFormat", err)
			}
			if !errors.Is(err, binreader.ErrInvalidFormat) {
				t.Fatalf("err = %v does not wrap binreader.ErrInvalidFormat", err)
			}
			if out != nil {
				t.Fatalf("partial output returned: %q", out)
			}
		})
	}
}

func TestDecompressTruncatedReference(t *testing.T) {
	_, err := Decompress(frame([]byte{0x00, 0xEE}))
	if !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("err = %v, want ErrInvalidFormat", err)
	}
}

func TestDecompressSource(t *testing.T) {
	got, err := DecompressSource(bytes.NewReader(frame([]byte{0x01, 'x', 0xEE, 0xF2})))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "xxxxxx" {
		t.Fatalf("got %q", got)
	}
}
