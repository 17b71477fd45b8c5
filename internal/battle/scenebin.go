package battle

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"ff7-asset-extract/internal/binreader"
)

const (
	// SceneBlockSize is the size of one scene.bin block.
	SceneBlockSize = 0x2000
	// ScenesPerBlock is the pointer table length of a block.
	ScenesPerBlock = 16
)

// SplitSceneBin inflates every scene record of a scene.bin archive, in
// archive order. The returned index of a record is its scene number.
func SplitSceneBin(data []byte) ([][]byte, error) {
	if len(data)%SceneBlockSize != 0 {
		return nil, fmt.Errorf("battle: scene.bin size %d is not a multiple of %#x: %w",
			len(data), SceneBlockSize, binreader.ErrInvalidFormat)
	}

	var scenes [][]byte
	for base := 0; base < len(data); base += SceneBlockSize {
		block := data[base : base+SceneBlockSize]
		ptrs := blockPointers(block)
		for i, start := range ptrs {
			end := SceneBlockSize
			if i+1 < len(ptrs) {
				end = ptrs[i+1]
			}
			if start < ScenesPerBlock*4 || start >= end || end > SceneBlockSize {
				return nil, fmt.Errorf("battle: block %d scene %d: bad pointer %#x: %w",
					base/SceneBlockSize, i, start, binreader.ErrInvalidFormat)
			}
			rec, err := inflate(block[start:end])
			if err != nil {
				return nil, fmt.Errorf("battle: block %d scene %d: %w", base/SceneBlockSize, i, err)
			}
			scenes = append(scenes, rec)
		}
	}
	return scenes, nil
}

// blockPointers returns the byte offsets of a block's gzip members.
func blockPointers(block []byte) []int {
	var ptrs []int
	for i := 0; i < ScenesPerBlock; i++ {
		v := binary.LittleEndian.Uint32(block[i*4:])
		if v == absent32 {
			break
		}
		ptrs = append(ptrs, int(v)*4)
	}
	return ptrs
}

// inflate decodes one gzip member. Members are padded with 0xFF up to the
// next pointer, so the reader must stop after the first one.
func inflate(member []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(member))
	if err != nil {
		return nil, fmt.Errorf("open gzip member: %w", err)
	}
	defer zr.Close()
	zr.Multistream(false)

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("inflate: %w", err)
	}
	if len(out) != SceneSize {
		return nil, fmt.Errorf("scene record is %d bytes, want %#x: %w",
			len(out), SceneSize, binreader.ErrInvalidFormat)
	}
	return out, nil
}

// ParseSceneBin splits and parses a whole archive.
func ParseSceneBin(src binreader.Source) ([]*Scene, error) {
	data, err := binreader.Bytes(src)
	if err != nil {
		return nil, fmt.Errorf("battle: read scene.bin: %w", err)
	}
	recs, err := SplitSceneBin(data)
	if err != nil {
		return nil, err
	}
	scenes := make([]*Scene, len(recs))
	for i, rec := range recs {
		s, err := Parse(rec)
		if err != nil {
			return nil, fmt.Errorf("battle: scene %d: %w", i, err)
		}
		scenes[i] = s
	}
	return scenes, nil
}
