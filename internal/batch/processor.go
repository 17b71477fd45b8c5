package batch

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"ff7-asset-extract/internal/battle"
	"ff7-asset-extract/internal/binreader"
	"ff7-asset-extract/internal/export"
	"ff7-asset-extract/internal/spritelist"
	"ff7-asset-extract/internal/tex"
	"ff7-asset-extract/internal/texture"
	"ff7-asset-extract/internal/worldmap"
)

// Kind is the asset type a job decodes.
type Kind int

const (
	KindSprite Kind = iota
	KindTEX
	KindWorldmap
	KindTXZ
	KindScene
)

func (k Kind) String() string {
	switch k {
	case KindSprite:
		return "sprite"
	case KindTEX:
		return "tex"
	case KindWorldmap:
		return "worldmap"
	case KindTXZ:
		return "txz"
	case KindScene:
		return "scene"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Job is one independent asset to decode.
type Job struct {
	Kind   Kind
	Name   string
	Path   string               // input file for tex, worldmap and txz jobs
	Sprite spritelist.SpriteDef // sprite jobs
	Index  int                  // scene number for scene jobs
	Record []byte               // decompressed scene record
}

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Format      export.Format
	Scale       int
	Workers     int
	Mode        tex.Mode
	TexResolver texture.Resolver
	Battle      *battle.Accumulator
	Atlas       *worldmap.Atlas // optional, adds UVs to worldmap OBJ output
	Quiet       bool
}

// Result holds the outcome of processing one job.
type Result struct {
	Kind    Kind
	Name    string
	Source  string
	Outputs []string
	Success bool
	Error   string
}

// Run processes all jobs using a worker pool. A failed job is recorded in
// its Result and never stops the others.
func Run(cfg Config, jobs []Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 && !cfg.Quiet {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f assets/sec\n", p, total, rate)
				}
			}
		}
	}()

	workers := max(cfg.Workers, 1)
	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processJob(cfg, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

func processJob(cfg Config, job Job) Result {
	res := Result{Kind: job.Kind, Name: job.Name, Source: job.Path}
	var (
		outputs []string
		err     error
	)
	switch job.Kind {
	case KindSprite:
		res.Source = job.Sprite.Texture
		outputs, err = processSprite(cfg, job.Sprite)
	case KindTEX:
		outputs, err = processTEX(cfg, job)
	case KindWorldmap:
		outputs, err = processWorldmap(cfg, job)
	case KindTXZ:
		outputs, err = processTXZ(cfg, job)
	case KindScene:
		res.Source = fmt.Sprintf("scene %d", job.Index)
		err = processScene(cfg, job)
	default:
		err = fmt.Errorf("unknown job kind %v", job.Kind)
	}
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Outputs = outputs
	res.Success = true
	return res
}

// save scales img and writes it under the output dir. rel has no extension.
func save(cfg Config, rel string, img *image.NRGBA) (string, error) {
	rel = filepath.ToSlash(rel) + cfg.Format.Ext()
	if err := export.SaveImage(filepath.Join(cfg.OutputDir, rel), export.Scale(img, cfg.Scale), cfg.Format); err != nil {
		return "", err
	}
	return rel, nil
}

func stem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func processSprite(cfg Config, def spritelist.SpriteDef) ([]string, error) {
	if cfg.TexResolver == nil {
		return nil, fmt.Errorf("no texture resolver")
	}
	t, err := cfg.TexResolver.Resolve(def.Texture)
	if err != nil {
		return nil, err
	}

	var img *image.NRGBA
	switch len(def.Regions) {
	case 1:
		img, err = t.Region(def.Regions[0])
	case 2:
		img, err = t.Composite(def.Regions[0], def.Regions[1])
	default:
		err = fmt.Errorf("sprite %s has %d regions", def.Name, len(def.Regions))
	}
	if err != nil {
		return nil, err
	}

	out, err := save(cfg, filepath.Join("sprites", def.Group, def.Name), img)
	if err != nil {
		return nil, err
	}
	return []string{out}, nil
}

// processTEX renders a whole TEX file once per palette.
func processTEX(cfg Config, job Job) ([]string, error) {
	src, err := binreader.OpenFile(job.Path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	f, err := tex.DecodeSource(src, cfg.Mode)
	if err != nil {
		return nil, err
	}

	base := filepath.Join("textures", stem(job.Path))
	palettes := max(len(f.Palettes), 1)
	var outputs []string
	for p := 0; p < palettes; p++ {
		img, err := f.Image(p)
		if err != nil {
			return nil, fmt.Errorf("palette %d: %w", p, err)
		}
		rel := base
		if palettes > 1 {
			rel = fmt.Sprintf("%s_%d", base, p)
		}
		out, err := save(cfg, rel, img.NRGBA)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, out)
	}
	return outputs, nil
}

// processWorldmap converts a mesh file to OBJ.
func processWorldmap(cfg Config, job Job) ([]string, error) {
	src, err := binreader.OpenFile(job.Path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	m, err := worldmap.DecodeSource(src)
	if err != nil {
		return nil, err
	}

	rel := filepath.ToSlash(filepath.Join("worldmap", stem(job.Path)+".obj"))
	path := filepath.Join(cfg.OutputDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	out, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := export.WriteOBJ(out, m, cfg.Atlas); err != nil {
		out.Close()
		return nil, err
	}
	if err := out.Close(); err != nil {
		return nil, err
	}
	return []string{rel}, nil
}

// processTXZ writes the composited atlas and every catalog tile.
func processTXZ(cfg Config, job Job) ([]string, error) {
	atlas := cfg.Atlas
	if job.Path != "" {
		src, err := binreader.OpenFile(job.Path)
		if err != nil {
			return nil, err
		}
		defer src.Close()
		if atlas, err = worldmap.DecodeTXZSource(src); err != nil {
			return nil, err
		}
	}
	if atlas == nil {
		return nil, fmt.Errorf("no texture atlas")
	}

	name := job.Name
	if name == "" {
		name = stem(job.Path)
	}
	out, err := save(cfg, filepath.Join("worldmap", name+"_atlas"), atlas.Image())
	if err != nil {
		return nil, err
	}
	outputs := []string{out}
	for _, t := range worldmap.Catalog {
		img := atlas.TileImage(t.ID)
		if img == nil {
			continue
		}
		out, err := save(cfg, filepath.Join("worldmap", "tiles", fmt.Sprintf("%02d_%s", t.ID, t.Name)), img)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, out)
	}
	return outputs, nil
}

func processScene(cfg Config, job Job) error {
	if cfg.Battle == nil {
		return fmt.Errorf("no battle accumulator")
	}
	s, err := battle.Parse(job.Record)
	if err != nil {
		return err
	}
	cfg.Battle.AddScene(job.Index, s)
	return nil
}
