// Package lzs decompresses the LZS containers used by the field, world map
// and battle data: an LZSS variant with a 4 KiB window and 3-18 byte matches.
package lzs

import (
	"encoding/binary"
	"fmt"

	"ff7-asset-extract/internal/binreader"
)

// HeaderSize is the length of the little-endian size prefix.
const HeaderSize = 4

// ErrInvalidFormat is returned when the size prefix does not describe the buffer.
var ErrInvalidFormat = fmt.Errorf("lzs: %w", binreader.ErrInvalidFormat)

const (
	windowMask = 0xFFF
	// windowBias is where the encoder's ring buffer starts writing (0x1000 - 18).
	windowBias = 18
	minMatch   = 3
)

// Decompress decodes one LZS block. The first four bytes hold the length of
// the compressed payload that follows them; a mismatch is reported as
// ErrInvalidFormat and nothing is decoded. The output length is whatever the
// token stream produces.
func Decompress(in []byte) ([]byte, error) {
	if len(in) < HeaderSize {
		return nil, fmt.Errorf("%w: %d byte buffer has no size prefix", ErrInvalidFormat, len(in))
	}
	declared := binary.LittleEndian.Uint32(in)
	if uint64(declared)+HeaderSize != uint64(len(in)) {
		return nil, fmt.Errorf("%w: prefix declares %d payload bytes, buffer holds %d",
			ErrInvalidFormat, declared, len(in)-HeaderSize)
	}

	out := make([]byte, 0, (len(in)*2+255)&^255)
	pos := HeaderSize
	var control byte
	bits := 0

	for pos < len(in) {
		if bits == 0 {
			control = in[pos]
			pos++
			bits = 8
			continue
		}
		literal := control&1 == 1
		control >>= 1
		bits--

		if literal {
			out = append(out, in[pos])
			pos++
			continue
		}

		if pos+1 >= len(in) {
			return nil, fmt.Errorf("%w: back-reference truncated at %d", ErrInvalidFormat, pos)
		}
		r1, r2 := in[pos], in[pos+1]
		pos += 2

		offset := int(r1) | int(r2&0xF0)<<4
		length := int(r2&0x0F) + minMatch
		src := len(out) - ((len(out) - windowBias - offset) & windowMask)

		// Byte at a time: the source may overlap bytes written by this copy.
		for i := 0; i < length; i++ {
			if src < 0 || src >= len(out) {
				out = append(out, 0)
			} else {
				out = append(out, out[src])
			}
			src++
		}
	}
	return out, nil
}

// DecompressSource reads a whole Source and decompresses it.
func DecompressSource(src binreader.Source) ([]byte, error) {
	data, err := binreader.Bytes(src)
	if err != nil {
		return nil, err
	}
	return Decompress(data)
}
