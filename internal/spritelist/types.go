package spritelist

import "ff7-asset-extract/internal/tex"

// SpriteDef holds one sprite parsed from the sprite list.
type SpriteDef struct {
	Group   string
	Name    string
	Texture string       // e.g. "menu/btl_win_a_l.tex"
	Regions []tex.Region // one crop, or two placed side by side
}

// Composite reports whether the sprite joins two regions.
func (s SpriteDef) Composite() bool { return len(s.Regions) == 2 }
