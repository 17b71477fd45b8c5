package texture

import (
	"fmt"
	"image"
	"image/draw"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	_ "github.com/ftrvxmtrx/tga"

	"ff7-asset-extract/internal/binreader"
	"ff7-asset-extract/internal/tex"
)

// Texture is either a decoded TEX file or a flat override image.
type Texture struct {
	Path     string
	File     *tex.File
	Override *image.NRGBA
}

// LoadTexture reads a TEX file, or a TGA/PNG override, from path.
func LoadTexture(path string, mode tex.Mode) (*Texture, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".tex":
		src, err := binreader.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("texture: open %s: %w", path, err)
		}
		defer src.Close()
		f, err := tex.DecodeSource(src, mode)
		if err != nil {
			return nil, fmt.Errorf("texture: decode %s: %w", path, err)
		}
		return &Texture{Path: path, File: f}, nil
	case ".tga", ".png":
		img, err := imgio.Open(path)
		if err != nil {
			return nil, fmt.Errorf("texture: decode %s: %w", path, err)
		}
		return &Texture{Path: path, Override: toNRGBA(img)}, nil
	default:
		return nil, fmt.Errorf("texture: unknown extension: %s", ext)
	}
}

// Region renders one crop of the texture.
func (t *Texture) Region(rg tex.Region) (*image.NRGBA, error) {
	if t.Override == nil {
		im, err := t.File.RenderRegion(rg)
		if err != nil {
			return nil, err
		}
		return im.NRGBA, nil
	}
	r := image.Rect(rg.X, rg.Y, rg.X+rg.W, rg.Y+rg.H)
	if rg.W <= 0 || rg.H <= 0 || !r.In(t.Override.Bounds()) {
		return nil, fmt.Errorf("texture: region %v outside %s: %w", r, t.Path, binreader.ErrOutOfBounds)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, rg.W, rg.H))
	draw.Draw(dst, dst.Bounds(), t.Override, r.Min, draw.Src)
	return dst, nil
}

// Composite renders two regions side by side.
func (t *Texture) Composite(left, right tex.Region) (*image.NRGBA, error) {
	if t.Override == nil {
		im, err := t.File.RenderComposite(left, right)
		if err != nil {
			return nil, err
		}
		return im.NRGBA, nil
	}
	l, err := t.Region(left)
	if err != nil {
		return nil, err
	}
	r, err := t.Region(right)
	if err != nil {
		return nil, err
	}
	dst := image.NewNRGBA(image.Rect(0, 0, left.W+right.W, max(left.H, right.H)))
	draw.Draw(dst, image.Rect(0, 0, left.W, left.H), l, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(left.W, 0, left.W+right.W, right.H), r, image.Point{}, draw.Src)
	return dst, nil
}

// toNRGBA converts any image to NRGBA format.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok && n.Bounds().Min == (image.Point{}) {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
