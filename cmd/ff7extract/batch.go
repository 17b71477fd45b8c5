package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	"ff7-asset-extract/internal/battle"
	"ff7-asset-extract/internal/batch"
	"ff7-asset-extract/internal/config"
	"ff7-asset-extract/internal/export"
	"ff7-asset-extract/internal/spritelist"
	"ff7-asset-extract/internal/tex"
	"ff7-asset-extract/internal/texture"
	"ff7-asset-extract/internal/worldmap"
)

var cmdBatch = cli.Command{
	Name:  "batch",
	Usage: "Export every configured asset",
	Flags: []cli.Flag{
		&cli.PathFlag{Name: "config", Usage: "path to config.json file"},
		&cli.PathFlag{Name: "data", Usage: "game data directory (default: auto-detect)"},
		&cli.PathFlag{Name: "output", Usage: "output directory (default: <data>/export)"},
		&cli.StringFlag{Name: "format", Usage: "image format: png, webp or tga (default: png)"},
		&cli.IntFlag{Name: "scale", Usage: "integer upscale factor for images (default: 1)"},
		&cli.IntFlag{Name: "workers", Usage: "number of worker goroutines (default: NumCPU)"},
		&cli.IntFlag{Name: "test", Usage: "process only the first N jobs"},
		strictFlag,
	},
	Action: runBatch,
}

func runBatch(c *cli.Context) error {
	// Load config
	var cfg config.Config
	if path := c.Path("config"); path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		DataDir:     c.Path("data"),
		OutputDir:   c.Path("output"),
		ImageFormat: c.String("format"),
		Scale:       c.Int("scale"),
		Workers:     c.Int("workers"),
		Strict:      c.Bool("strict"),
	})

	if cfg.DataDir == "" {
		return errors.New("cannot find the game data directory, use --data or config.json")
	}
	format, err := export.ParseFormat(cfg.ImageFormat)
	if err != nil {
		return err
	}
	mode := tex.Strict
	if cfg.Lenient() {
		mode = tex.Lenient
	}

	jobs, atlas := collectJobs(cfg)
	if n := c.Int("test"); n > 0 && n < len(jobs) {
		jobs = jobs[:n]
	}
	if len(jobs) == 0 {
		fmt.Println("No assets to export.")
		return nil
	}

	// Build texture index
	texIndex := texture.BuildIndex(cfg.TextureDir)
	fmt.Printf("Textures: %d indexed\n", texIndex.Len())

	fmt.Printf("FF7 asset export -> %s\n", format)
	fmt.Printf("Jobs: %d, Workers: %d\n", len(jobs), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	acc := battle.NewAccumulator()
	results := batch.Run(batch.Config{
		OutputDir:   cfg.OutputDir,
		Format:      format,
		Scale:       cfg.Scale,
		Workers:     cfg.Workers,
		Mode:        mode,
		TexResolver: texture.NewCache(texIndex, mode),
		Battle:      acc,
		Atlas:       atlas,
	}, jobs)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := batch.Summary(results)
	fmt.Printf("Exported: %d/%d\n", success, len(jobs))

	if failed > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		shown := 0
		for _, r := range results {
			if r.Success {
				continue
			}
			if shown == 20 {
				break
			}
			fmt.Printf("  %s %s: %s\n", r.Kind, r.Name, r.Error)
			shown++
		}
	}

	if n := len(acc.Formations()); n > 0 {
		path := filepath.Join(cfg.OutputDir, "battle.xml")
		if err := writeBattleXML(path, acc); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: battle.xml write failed: %v\n", err)
		} else {
			fmt.Printf("Battle data: %d enemies, %d attacks, %d formations -> %s\n",
				len(acc.Enemies()), len(acc.Attacks()), n, path)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d asset(s) failed", failed), 1)
	}
	return nil
}

// collectJobs gathers every configured input. Missing inputs are reported
// and skipped. The atlas, when it loads, also feeds UVs to world-map jobs.
func collectJobs(cfg config.Config) ([]batch.Job, *worldmap.Atlas) {
	var jobs []batch.Job
	warn := func(what string, err error) {
		fmt.Fprintf(os.Stderr, "Warning: %s: %v\n", what, err)
	}

	if sprites, err := spritelist.Parse(cfg.SpriteListXML); err == nil {
		jobs = append(jobs, batch.SpriteJobs(sprites)...)
	} else if !errors.Is(err, os.ErrNotExist) {
		warn("sprite list", err)
	}

	if texJobs, err := batch.TEXJobs(cfg.TextureDir); err == nil {
		jobs = append(jobs, texJobs...)
	} else {
		warn("texture scan", err)
	}

	var atlas *worldmap.Atlas
	if cfg.TXZFile != "" {
		var err error
		if atlas, err = loadAtlas(cfg.TXZFile); err == nil {
			jobs = append(jobs, batch.Job{Kind: batch.KindTXZ, Name: "wm"})
		} else {
			warn("world-map textures", err)
		}
	}

	var maps []string
	for _, p := range cfg.WorldmapFiles {
		if _, err := os.Stat(p); err == nil {
			maps = append(maps, p)
		}
	}
	jobs = append(jobs, batch.FileJobs(batch.KindWorldmap, maps)...)

	if sceneJobs, err := batch.SceneJobs(cfg.SceneBin); err == nil {
		jobs = append(jobs, sceneJobs...)
	} else {
		warn("scene.bin", err)
	}

	return jobs, atlas
}
