package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds all configurable paths and export settings.
type Config struct {
	// Paths
	DataDir       string   `json:"data_dir"`
	OutputDir     string   `json:"output_dir"`
	SceneBin      string   `json:"scene_bin"`
	WorldmapFiles []string `json:"worldmap_files"`
	TXZFile       string   `json:"txz_file"`
	TextureDir    string   `json:"texture_dir"`
	SpriteListXML string   `json:"sprite_list_xml"`

	// Export settings
	ImageFormat    string `json:"image_format"`
	Scale          int    `json:"scale"`
	Workers        int    `json:"workers"`
	LenientPalette *bool  `json:"lenient_palette"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	DataDir     string
	OutputDir   string
	ImageFormat string
	Scale       int
	Workers     int
	Strict      bool
}

// Resolve fills in any empty fields with auto-detected defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.DataDir != "" {
		c.DataDir = flags.DataDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.ImageFormat != "" {
		c.ImageFormat = flags.ImageFormat
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Strict {
		lenient := false
		c.LenientPalette = &lenient
	}

	// Auto-detect data dir if still empty
	if c.DataDir == "" {
		c.DataDir = detectDataDir()
	}

	// Resolve relative paths against the data dir
	if c.DataDir != "" {
		c.SceneBin = resolve(c.DataDir, c.SceneBin, filepath.Join("battle", "scene.bin"))
		c.TXZFile = resolve(c.DataDir, c.TXZFile, filepath.Join("wm", "wm.txz"))
		c.TextureDir = resolve(c.DataDir, c.TextureDir, "")
		c.SpriteListXML = resolve(c.DataDir, c.SpriteListXML, "SpriteList.xml")
		c.OutputDir = resolve(c.DataDir, c.OutputDir, "export")

		if len(c.WorldmapFiles) == 0 {
			for _, name := range []string{"WM0.MAP", "WM2.MAP", "WM3.MAP"} {
				c.WorldmapFiles = append(c.WorldmapFiles, filepath.Join("wm", name))
			}
		}
		for i, p := range c.WorldmapFiles {
			c.WorldmapFiles[i] = resolve(c.DataDir, p, "")
		}
	}

	// Defaults for export settings
	if c.ImageFormat == "" {
		c.ImageFormat = "png"
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.LenientPalette == nil {
		lenient := true
		c.LenientPalette = &lenient
	}
}

// Lenient reports whether out-of-range palette indices paint transparent.
func (c *Config) Lenient() bool {
	return c.LenientPalette == nil || *c.LenientPalette
}

// resolve joins a relative path onto base. An empty path takes def, and an
// empty def means base itself.
func resolve(base, path, def string) string {
	if path == "" {
		path = def
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

func detectDataDir() string {
	marker := filepath.Join("battle", "scene.bin")

	// Try relative to executable
	exe, _ := os.Executable()
	if exe != "" {
		dir := filepath.Dir(exe)
		for _, base := range []string{dir, filepath.Join(dir, "data"), filepath.Dir(dir)} {
			if _, err := os.Stat(filepath.Join(base, marker)); err == nil {
				return base
			}
		}
	}

	// Try current working directory
	cwd, _ := os.Getwd()
	for _, base := range []string{cwd, filepath.Join(cwd, "data")} {
		if _, err := os.Stat(filepath.Join(base, marker)); err == nil {
			return base
		}
	}

	return ""
}
