package config

import (
	"os"
	"path/filepath"

	"github.com/hyp3rd/ewrap"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = "netmeasure.yaml"

// Config represents the application configuration
type Config struct {
	WorkingDir       string       `yaml:"working_dir"`
	YearPrefix       string       `yaml:"year_prefix"`
	Convention       string       `yaml:"convention"`
	StrictTimestamps bool         `yaml:"strict_timestamps"`
	Save             bool         `yaml:"save"`
	Show             bool         `yaml:"show"`
	LogLevel         string       `yaml:"log_level"`
	Figure           FigureConfig `yaml:"figure"`
	Export           ExportConfig `yaml:"export"`
}

// FigureConfig holds rendering settings
type FigureConfig struct {
	File     string  `yaml:"file"`
	DPI      int     `yaml:"dpi"`
	WidthIn  float64 `yaml:"width_in"`
	HeightIn float64 `yaml:"height_in"`
	Renderer string  `yaml:"renderer"`
}

// ExportConfig holds optional machine-readable outputs
type ExportConfig struct {
	CSVDir          string `yaml:"csv_dir"`
	Report          string `yaml:"report"`
	MongoConfig     string `yaml:"mongo_config"`
	MongoDB         string `yaml:"mongo_db"`
	MongoCollection string `yaml:"mongo_collection"`
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		WorkingDir: "./results",
		YearPrefix: "2018",
		Convention: "suffix",
		Save:       true,
		Show:       true,
		LogLevel:   "info",
		Figure: FigureConfig{
			File:     "fig.png",
			DPI:      600,
			WidthIn:  6.4,
			HeightIn: 4.8,
			Renderer: "gonum",
		},
		Export: ExportConfig{
			MongoDB:         "netmeasure",
			MongoCollection: "hourlyaverage",
		},
	}
}

// Load reads config from file, returns default if not exists
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, ewrap.Wrap(err, "read config")
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, ewrap.Wrap(err, "failed to parse config")
	}
	return cfg, nil
}

// SaveFile writes config to file
func (c *Config) SaveFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return ewrap.Wrap(err, "failed to create config directory")
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return ewrap.Wrap(err, "failed to marshal config")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return ewrap.Wrap(err, "failed to write config file")
	}
	return nil
}
