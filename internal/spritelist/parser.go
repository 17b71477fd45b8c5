// Package spritelist reads the XML list of sprites to cut from TEX sheets.
package spritelist

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"ff7-asset-extract/internal/tex"
)

// xmlSpriteList matches the SpriteList.xml schema.
type xmlSpriteList struct {
	Groups []xmlGroup `xml:"Group"`
}

type xmlGroup struct {
	Name    string      `xml:"Name,attr"`
	Texture string      `xml:"Texture,attr"`
	Sprites []xmlSprite `xml:"Sprite"`
}

type xmlSprite struct {
	Name    string      `xml:"Name,attr"`
	Texture string      `xml:"Texture,attr"`
	Palette int         `xml:"Palette,attr"`
	X       int         `xml:"X,attr"`
	Y       int         `xml:"Y,attr"`
	W       int         `xml:"W,attr"`
	H       int         `xml:"H,attr"`
	Regions []xmlRegion `xml:"Region"`
}

type xmlRegion struct {
	Palette int `xml:"Palette,attr"`
	X       int `xml:"X,attr"`
	Y       int `xml:"Y,attr"`
	W       int `xml:"W,attr"`
	H       int `xml:"H,attr"`
}

// Parse reads a sprite list file.
func Parse(xmlPath string) ([]SpriteDef, error) {
	f, err := os.Open(xmlPath)
	if err != nil {
		return nil, fmt.Errorf("spritelist: read %s: %w", xmlPath, err)
	}
	defer f.Close()

	sprites, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("spritelist: parse %s: %w", xmlPath, err)
	}
	return sprites, nil
}

// Decode reads a sprite list from r. A sprite either carries its crop as
// attributes or lists one or two Region children. Sprites without a
// texture, without a name, or with more than two regions are skipped.
func Decode(r io.Reader) ([]SpriteDef, error) {
	var list xmlSpriteList
	if err := xml.NewDecoder(r).Decode(&list); err != nil {
		return nil, err
	}

	var sprites []SpriteDef
	for _, g := range list.Groups {
		for _, s := range g.Sprites {
			texFile := s.Texture
			if texFile == "" {
				texFile = g.Texture
			}
			if texFile == "" || s.Name == "" {
				continue
			}

			var regions []tex.Region
			if len(s.Regions) == 0 {
				regions = append(regions, tex.Region{X: s.X, Y: s.Y, W: s.W, H: s.H, Palette: s.Palette})
			}
			for _, rg := range s.Regions {
				regions = append(regions, tex.Region{X: rg.X, Y: rg.Y, W: rg.W, H: rg.H, Palette: rg.Palette})
			}
			if len(regions) > 2 {
				continue
			}

			sprites = append(sprites, SpriteDef{
				Group:   g.Name,
				Name:    s.Name,
				Texture: texFile,
				Regions: regions,
			})
		}
	}

	return sprites, nil
}
