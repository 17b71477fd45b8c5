package main

import (
	"fmt"
	"os"
	"path/filepath"

	"ff7-asset-extract/internal/binreader"
	"ff7-asset-extract/internal/tex"
)

func inspect(path string) error {
	src, err := binreader.OpenFile(path)
	if err != nil {
		return err
	}
	defer src.Close()

	f, err := tex.DecodeSource(src, tex.Lenient)
	if err != nil {
		return err
	}
	fmt.Printf("OK  %s  %s\n", filepath.Base(path), f.Info())

	h := f.Header
	if h.ColorKeyArrayFlag != 0 || h.ReferenceAlpha != 0 {
		fmt.Printf("    color key array %d, reference alpha %d\n", h.ColorKeyArrayFlag, h.ReferenceAlpha)
	}
	if f.Paletted() {
		// Count references past the first palette's end.
		bad := 0
		for _, idx := range f.Indices {
			if len(f.Palettes) > 0 && int(idx) >= len(f.Palettes[0]) {
				bad++
			}
		}
		if bad > 0 {
			fmt.Printf("    %d pixel(s) reference past the palette\n", bad)
		}
	}
	return nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: texinfo file.tex [...]")
		os.Exit(2)
	}

	errors := 0
	for _, path := range os.Args[1:] {
		if err := inspect(path); err != nil {
			fmt.Fprintf(os.Stderr, "ERR %s: %v\n", path, err)
			errors++
		}
	}
	if errors > 0 {
		fmt.Printf("\nDone with %d error(s).\n", errors)
		os.Exit(1)
	}
}
