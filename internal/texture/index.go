package texture

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Index maps lowercase texture stems to filesystem paths.
// A TGA or PNG with the same stem as a TEX file takes priority, so
// hand-edited replacements override the game data.
type Index struct {
	entries map[string]string // stem.lower() → full path
}

func rank(ext string) int {
	switch ext {
	case ".tga", ".png":
		return 2
	case ".tex":
		return 1
	}
	return 0
}

// BuildIndex scans dir and all subdirectories for TEX files and overrides.
func BuildIndex(dir string) *Index {
	idx := &Index{entries: make(map[string]string)}

	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		r := rank(ext)
		if r == 0 {
			return nil
		}
		stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))

		existing, exists := idx.entries[stem]
		if !exists || r > rank(strings.ToLower(filepath.Ext(existing))) {
			idx.entries[stem] = path
		}
		return nil
	})

	return idx
}

// ResolvePath returns the filesystem path for a texture name, or ("", false).
func (idx *Index) ResolvePath(texName string) (string, bool) {
	// Strip path prefix (e.g., "menu\\btl_win_a_l.tex" → "btl_win_a_l")
	texName = strings.ReplaceAll(texName, "\\", "/")
	base := filepath.Base(texName)
	stem := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))

	path, ok := idx.entries[stem]
	return path, ok
}

// Len returns the number of indexed textures.
func (idx *Index) Len() int {
	return len(idx.entries)
}
