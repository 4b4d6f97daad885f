// Package config loads the CLI configuration file. Library consumers
// configure everything through functional options; the YAML file only exists
// so the command line tool has somewhere to keep its defaults.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the CLI defaults.
type Config struct {
	// Writer names the report writer used when the flag is omitted.
	Writer string `yaml:"writer"`

	// ColumnWidth is the fixed visual width of every report column.
	ColumnWidth float64 `yaml:"column_width"`

	// FormDir is where blank value forms are created. Empty means the OS
	// temp directory.
	FormDir string `yaml:"form_dir"`

	// OutputDir is where reports land when no output path is given.
	OutputDir string `yaml:"output_dir"`

	// FormSheet and OutputSheet name the worksheets of the two artifacts.
	FormSheet   string `yaml:"form_sheet"`
	OutputSheet string `yaml:"output_sheet"`

	// GridRows and GridCols pre-size the blank form grid.
	GridRows int `yaml:"grid_rows"`
	GridCols int `yaml:"grid_cols"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Writer:      "xlsx",
		ColumnWidth: 95,
		OutputDir:   ".",
		FormSheet:   "Variables",
		OutputSheet: "Output",
		GridRows:    500,
		GridCols:    50,
		LogLevel:    "info",
	}
}

// Load reads a YAML file over the defaults. Unknown keys are rejected so
// typos surface instead of silently keeping defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %q: %w", path, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}
