package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.True(t, cfg.Window.VSync)
	assert.Equal(t, "textures", cfg.AssetDir)
	assert.False(t, cfg.Debug)
}

func TestLoadConfigMissingFileFallsBack(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deskscene.toml")
	data := `
asset_dir = "assets"
debug = true

[window]
width = 800
height = 600
title = "Test"
vsync = false
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, "Test", cfg.Window.Title)
	assert.False(t, cfg.Window.VSync)
	assert.Equal(t, "assets", cfg.AssetDir)
	assert.True(t, cfg.Debug)
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = ["), 0o644))

	_, err := loadConfig(path)
	assert.Error(t, err)
}
