package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/longbridgeapp/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "./results", cfg.WorkingDir)
	assert.Equal(t, "2018", cfg.YearPrefix)
	assert.Equal(t, "suffix", cfg.Convention)
	assert.False(t, cfg.StrictTimestamps)
	assert.True(t, cfg.Save)
	assert.True(t, cfg.Show)
	assert.Equal(t, "fig.png", cfg.Figure.File)
	assert.Equal(t, 600, cfg.Figure.DPI)
	assert.Equal(t, "gonum", cfg.Figure.Renderer)
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Nil(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netmeasure.yaml")
	data := "working_dir: /data/iperf\nconvention: log\nfigure:\n  dpi: 150\n"
	assert.Nil(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	assert.Nil(t, err)
	assert.Equal(t, "/data/iperf", cfg.WorkingDir)
	assert.Equal(t, "log", cfg.Convention)
	assert.Equal(t, 150, cfg.Figure.DPI)
	assert.Equal(t, "fig.png", cfg.Figure.File)
	assert.Equal(t, "2018", cfg.YearPrefix)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	assert.Nil(t, os.WriteFile(path, []byte("figure: [unclosed"), 0644))

	_, err := Load(path)
	assert.True(t, err != nil)
}

func TestConfigSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "netmeasure.yaml")

	cfg := DefaultConfig()
	cfg.StrictTimestamps = true
	cfg.Export.CSVDir = "csv"
	assert.Nil(t, cfg.SaveFile(path))

	loaded, err := Load(path)
	assert.Nil(t, err)
	assert.Equal(t, cfg, loaded)
}
