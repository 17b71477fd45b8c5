package batch

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"ff7-asset-extract/internal/battle"
	"ff7-asset-extract/internal/binreader"
	"ff7-asset-extract/internal/spritelist"
)

// SpriteJobs makes one job per sprite definition.
func SpriteJobs(defs []spritelist.SpriteDef) []Job {
	jobs := make([]Job, len(defs))
	for i, d := range defs {
		jobs[i] = Job{Kind: KindSprite, Name: d.Name, Sprite: d}
	}
	return jobs
}

// FileJobs makes one job of kind k per input file.
func FileJobs(k Kind, paths []string) []Job {
	jobs := make([]Job, len(paths))
	for i, p := range paths {
		jobs[i] = Job{Kind: k, Name: stem(p), Path: p}
	}
	return jobs
}

// TEXJobs finds every .tex file under dir.
func TEXJobs(dir string) ([]Job, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".tex") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("batch: scan %s: %w", dir, err)
	}
	return FileJobs(KindTEX, paths), nil
}

// SceneJobs splits a scene.bin archive into one job per scene record.
func SceneJobs(path string) ([]Job, error) {
	src, err := binreader.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := binreader.Bytes(src)
	if err != nil {
		return nil, fmt.Errorf("batch: read %s: %w", path, err)
	}
	recs, err := battle.SplitSceneBin(data)
	if err != nil {
		return nil, err
	}
	jobs := make([]Job, len(recs))
	for i, rec := range recs {
		jobs[i] = Job{Kind: KindScene, Name: fmt.Sprintf("scene_%03d", i), Path: path, Index: i, Record: rec}
	}
	return jobs, nil
}
