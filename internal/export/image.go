// Package export writes decoded assets to disk: images in the configured
// format and the battle tables as XML.
package export

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
)

// Format is an output image format.
type Format string

const (
	PNG  Format = "png"
	WebP Format = "webp"
	TGA  Format = "tga"
)

// ParseFormat accepts a format name case-insensitively. Empty means PNG.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "", "png":
		return PNG, nil
	case "webp":
		return WebP, nil
	case "tga":
		return TGA, nil
	}
	return "", fmt.Errorf("export: unknown image format %q", s)
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string { return "." + string(f) }

func (f Format) encoder() (imgio.Encoder, error) {
	switch f {
	case PNG:
		return imgio.PNGEncoder(), nil
	case WebP:
		return func(w io.Writer, img image.Image) error {
			return nativewebp.Encode(w, img, nil)
		}, nil
	case TGA:
		return tga.Encode, nil
	}
	return nil, fmt.Errorf("export: unknown image format %q", string(f))
}

// EncodeImage writes img to w in format f.
func EncodeImage(w io.Writer, img image.Image, f Format) error {
	enc, err := f.encoder()
	if err != nil {
		return err
	}
	if err := enc(w, img); err != nil {
		return fmt.Errorf("export: encode %s: %w", f, err)
	}
	return nil
}

// SaveImage writes img to path, creating parent directories.
func SaveImage(path string, img image.Image, f Format) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := EncodeImage(out, img, f); err != nil {
		out.Close()
		return fmt.Errorf("%w (%s)", err, path)
	}
	return out.Close()
}

// Scale enlarges img by an integer factor with nearest-neighbor sampling so
// texel edges stay sharp. Factors below 2 return img unchanged.
func Scale(img *image.NRGBA, factor int) *image.NRGBA {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
