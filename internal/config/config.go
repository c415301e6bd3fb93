package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable generation and render settings.
type Config struct {
	// Output
	OutputDir string `json:"output_dir"`

	// Atom template: built-in sphere unless a custom OBJ path is given.
	AtomTemplate string `json:"atom_template"`

	// Tessellation detail
	SphereSegments   int `json:"sphere_segments"`
	CylinderSegments int `json:"cylinder_segments"`

	// Preview render settings
	Preview     bool `json:"preview"`
	RenderSize  int  `json:"render_size"`
	Supersample int  `json:"supersample"`

	// Batch settings
	Workers int `json:"workers"`

	// Server settings
	ListenAddr string `json:"listen_addr"`
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
	OutputDir    string
	AtomTemplate string
	Workers      int
	ListenAddr   string
}

// Resolve applies CLI overrides, then fills any remaining empty fields
// with defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.AtomTemplate != "" {
		c.AtomTemplate = flags.AtomTemplate
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.ListenAddr != "" {
		c.ListenAddr = flags.ListenAddr
	}

	if c.OutputDir == "" {
		c.OutputDir = "models"
	}
	if c.SphereSegments <= 0 {
		c.SphereSegments = 32
	}
	if c.CylinderSegments <= 0 {
		c.CylinderSegments = 16
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.ListenAddr == "" {
		c.ListenAddr = ":8080"
	}
}
