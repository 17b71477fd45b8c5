package binreader

import (
	"fmt"
	"io"
	"os"
)

// Source is anything the decoders can read from: random access plus a size.
// *bytes.Reader and *io.SectionReader satisfy it as-is.
type Source interface {
	io.ReaderAt
	Size() int64
}

// File is a Source backed by an open file.
type File struct {
	f    *os.File
	size int64
}

// OpenFile opens path as a Source. The caller must Close it.
func OpenFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("binreader: open %s: %w", path, err)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("binreader: stat %s: %w", path, err)
	}
	return &File{f: f, size: st.Size()}, nil
}

func (f *File) ReadAt(p []byte, off int64) (int, error) { return f.f.ReadAt(p, off) }
func (f *File) Size() int64                             { return f.size }
func (f *File) Close() error                            { return f.f.Close() }

// Bytes materializes the whole Source into memory.
func Bytes(src Source) ([]byte, error) {
	n := src.Size()
	if n < 0 {
		return nil, fmt.Errorf("binreader: negative source size %d: %w", n, ErrInvalidFormat)
	}
	buf := make([]byte, n)
	got, err := src.ReadAt(buf, 0)
	if got < len(buf) {
		if err == nil || err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("binreader: read source: %w", err)
	}
	return buf, nil
}
