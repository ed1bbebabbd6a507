package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/harrybraviner/jpeg-decoder/internal/scan"
)

// jpegctl config.toml key mapping to report settings.
type fileConfig struct {
	PreviewBytes int    `toml:"preview_bytes"`
	ShowOffsets  bool   `toml:"show_offsets"`
	LogLevel     string `toml:"log_level"`
}

type config struct {
	PreviewBytes int
	ShowOffsets  bool
	LogLevel     string
}

func defaultConfig() config {
	opts := scan.DefaultOptions()
	return config{
		PreviewBytes: opts.PreviewBytes,
		ShowOffsets:  opts.ShowOffsets,
	}
}

// loadConfig overlays config.toml onto defaults. An empty path means
// no file was requested and defaults are used as-is.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load jpegctl config: %w", err)
	}

	if meta.IsDefined("preview_bytes") {
		if raw.PreviewBytes < 0 {
			return config{}, fmt.Errorf("load jpegctl config: preview_bytes must not be negative, got %d", raw.PreviewBytes)
		}
		cfg.PreviewBytes = raw.PreviewBytes
	}
	if meta.IsDefined("show_offsets") {
		cfg.ShowOffsets = raw.ShowOffsets
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	return cfg, nil
}

func (c config) scanOptions() scan.Options {
	return scan.Options{
		PreviewBytes: c.PreviewBytes,
		ShowOffsets:  c.ShowOffsets,
	}
}
