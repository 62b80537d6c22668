package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the optional TOML configuration for the viewer.
type Config struct {
	Window struct {
		Width  int    `toml:"width"`
		Height int    `toml:"height"`
		Title  string `toml:"title"`
		VSync  bool   `toml:"vsync"`
	} `toml:"window"`
	AssetDir string `toml:"asset_dir"`
	Debug    bool   `toml:"debug"`
}

func defaultConfig() Config {
	var c Config
	c.Window.Width = 1280
	c.Window.Height = 720
	c.Window.Title = "Desk Scene"
	c.Window.VSync = true
	c.AssetDir = "textures"
	return c
}

// loadConfig reads a TOML config file, falling back to defaults when path
// is empty or the file does not exist.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}
