package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"ff7-asset-extract/internal/battle"
	"ff7-asset-extract/internal/binreader"
	"ff7-asset-extract/internal/export"
	"ff7-asset-extract/internal/lzs"
	"ff7-asset-extract/internal/tex"
	"ff7-asset-extract/internal/worldmap"
)

var (
	inFlag = &cli.PathFlag{
		Name:     "in",
		Usage:    "input file",
		Required: true,
	}
	outFlag = &cli.PathFlag{
		Name:  "out",
		Usage: "output file or directory (default: next to the input)",
	}
	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "image format: png, webp or tga",
		Value: "png",
	}
	scaleFlag = &cli.IntFlag{
		Name:  "scale",
		Usage: "integer upscale factor for images",
		Value: 1,
	}
	strictFlag = &cli.BoolFlag{
		Name:  "strict",
		Usage: "fail on out-of-range palette indices instead of painting them transparent",
	}
)

var cmdLZS = cli.Command{
	Name:   "lzs",
	Usage:  "Decompress an LZS file",
	Flags:  []cli.Flag{inFlag, outFlag},
	Action: decompressLZS,
}

var cmdTEX = cli.Command{
	Name:  "tex",
	Usage: "Convert a TEX texture to an image",
	Flags: []cli.Flag{inFlag, outFlag, formatFlag, scaleFlag, strictFlag,
		&cli.IntFlag{
			Name:  "palette",
			Usage: "palette to render, -1 for all",
			Value: -1,
		},
	},
	Action: convertTEX,
}

var cmdWorldmap = cli.Command{
	Name:  "worldmap",
	Usage: "Convert a world-map mesh file to OBJ",
	Flags: []cli.Flag{inFlag, outFlag,
		&cli.PathFlag{
			Name:  "txz",
			Usage: "world-map texture file used for UVs",
		},
	},
	Action: convertWorldmap,
}

var cmdTXZ = cli.Command{
	Name:   "txz",
	Usage:  "Extract the world-map texture atlas and its tiles",
	Flags:  []cli.Flag{inFlag, outFlag, formatFlag, scaleFlag},
	Action: extractTXZ,
}

var cmdScene = cli.Command{
	Name:   "scene",
	Usage:  "Decode scene.bin into battle.xml",
	Flags:  []cli.Flag{inFlag, outFlag},
	Action: convertScene,
}

func outPath(c *cli.Context, ext string) string {
	if out := c.Path("out"); out != "" {
		return out
	}
	in := c.Path("in")
	return strings.TrimSuffix(in, filepath.Ext(in)) + ext
}

func imageOptions(c *cli.Context) (export.Format, tex.Mode, error) {
	format, err := export.ParseFormat(c.String("format"))
	if err != nil {
		return "", 0, err
	}
	mode := tex.Lenient
	if c.Bool("strict") {
		mode = tex.Strict
	}
	return format, mode, nil
}

func decompressLZS(c *cli.Context) error {
	src, err := binreader.OpenFile(c.Path("in"))
	if err != nil {
		return err
	}
	defer src.Close()

	data, err := lzs.DecompressSource(src)
	if err != nil {
		return err
	}
	out := outPath(c, ".bin")
	if err := os.WriteFile(out, data, 0644); err != nil {
		return err
	}
	fmt.Printf("%s: %d bytes -> %s\n", c.Path("in"), len(data), out)
	return nil
}

func convertTEX(c *cli.Context) error {
	format, mode, err := imageOptions(c)
	if err != nil {
		return err
	}
	src, err := binreader.OpenFile(c.Path("in"))
	if err != nil {
		return err
	}
	defer src.Close()

	f, err := tex.DecodeSource(src, mode)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s\n", c.Path("in"), f.Info())

	palettes := []int{c.Int("palette")}
	if palettes[0] < 0 {
		palettes = palettes[:0]
		for p := 0; p < max(len(f.Palettes), 1); p++ {
			palettes = append(palettes, p)
		}
	}

	out := outPath(c, format.Ext())
	base := strings.TrimSuffix(out, filepath.Ext(out))
	for _, p := range palettes {
		img, err := f.Image(p)
		if err != nil {
			return fmt.Errorf("palette %d: %w", p, err)
		}
		path := base + format.Ext()
		if len(palettes) > 1 {
			path = fmt.Sprintf("%s_%d%s", base, p, format.Ext())
		}
		if err := export.SaveImage(path, export.Scale(img.NRGBA, c.Int("scale")), format); err != nil {
			return err
		}
		fmt.Printf("  -> %s\n", path)
	}
	return nil
}

func loadAtlas(path string) (*worldmap.Atlas, error) {
	src, err := binreader.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return worldmap.DecodeTXZSource(src)
}

func convertWorldmap(c *cli.Context) error {
	var atlas *worldmap.Atlas
	if p := c.Path("txz"); p != "" {
		var err error
		if atlas, err = loadAtlas(p); err != nil {
			return err
		}
	}

	src, err := binreader.OpenFile(c.Path("in"))
	if err != nil {
		return err
	}
	defer src.Close()
	m, err := worldmap.DecodeSource(src)
	if err != nil {
		return err
	}

	out := outPath(c, ".obj")
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := export.WriteOBJ(f, m, atlas); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("%s: %d blocks -> %s\n", c.Path("in"), len(m.Blocks), out)
	return nil
}

func extractTXZ(c *cli.Context) error {
	format, _, err := imageOptions(c)
	if err != nil {
		return err
	}
	atlas, err := loadAtlas(c.Path("in"))
	if err != nil {
		return err
	}

	dir := c.Path("out")
	if dir == "" {
		dir = c.Path("in") + ".out"
	}
	scale := c.Int("scale")
	if err := export.SaveImage(filepath.Join(dir, "atlas"+format.Ext()), export.Scale(atlas.Image(), scale), format); err != nil {
		return err
	}
	n := 0
	for _, t := range worldmap.Catalog {
		img := atlas.TileImage(t.ID)
		if img == nil {
			continue
		}
		path := filepath.Join(dir, "tiles", fmt.Sprintf("%02d_%s%s", t.ID, t.Name, format.Ext()))
		if err := export.SaveImage(path, export.Scale(img, scale), format); err != nil {
			return err
		}
		n++
	}
	fmt.Printf("%s: atlas and %d tiles -> %s\n", c.Path("in"), n, dir)
	return nil
}

func convertScene(c *cli.Context) error {
	src, err := binreader.OpenFile(c.Path("in"))
	if err != nil {
		return err
	}
	defer src.Close()

	scenes, err := battle.ParseSceneBin(src)
	if err != nil {
		return err
	}
	acc := battle.NewAccumulator()
	for i, s := range scenes {
		acc.AddScene(i, s)
	}
	if err := writeBattleXML(outPath(c, ".xml"), acc); err != nil {
		return err
	}
	fmt.Printf("%s: %d scenes, %d enemies, %d attacks, %d formations\n", c.Path("in"),
		len(scenes), len(acc.Enemies()), len(acc.Attacks()), len(acc.Formations()))
	return nil
}

func writeBattleXML(path string, acc *battle.Accumulator) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteBattleXML(f, acc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
