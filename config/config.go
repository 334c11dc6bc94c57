// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"
	"path/filepath"

	"github.com/spf13/viper"
)

// TraversalConfig controls the adaptor pipeline's window sizing.
type TraversalConfig struct {
	// the default window size (k) used by trim/left_extend/search when a
	// command doesn't supply its own -k flag
	WindowSize int `mapstructure:"window-size"`
}

// IndexConfig holds settings about index containers. No command reads
// them: `jst index` writes to the output path it is given, and
// container.Write always appends a CRC32 trailer.
type IndexConfig struct {
	// index directory; NewConfig resolves it to Config.IndexDir
	Dir string `mapstructure:"dir"`

	// checksum setting; not consulted by `jst index`
	Checksum bool `mapstructure:"checksum"`
}

// DisplayConfig is CLI vendor-style output settings shared by every
// subcommand.
type DisplayConfig struct {
	// suppress all non-error output
	Quiet bool `mapstructure:"quiet"`

	// set by --verbose; no command reads it, so it changes no output
	Verbose bool `mapstructure:"verbose"`

	// disable ANSI colour in `jst view` even on a terminal
	NoColor bool `mapstructure:"no-color"`
}

// MetricsConfig is settings for the optional Prometheus endpoint
// `jst search --metrics-addr` exposes.
type MetricsConfig struct {
	// address to serve /metrics on, empty disables it
	Addr string `mapstructure:"metrics-addr"`
}

// Config is the root-level settings struct and is a mix of settings
// available in settings.yaml and those available from the command
// line.
type Config struct {
	// absolute path to the index directory, resolved once at startup
	IndexDir string

	Traversal TraversalConfig
	Index     IndexConfig
	Display   DisplayConfig
	Metrics   MetricsConfig
}

// NewConfig returns a new Config struct populated by Viper settings
// (either from the local settings.yaml) and/or command line arguments.
func NewConfig() Config {
	var c Config

	err := viper.Unmarshal(&c)
	if err != nil {
		log.Fatalf("unable to decode into struct, %v", err)
	}

	if c.Traversal.WindowSize <= 0 {
		c.Traversal.WindowSize = 20
	}
	if c.Index.Dir == "" {
		c.Index.Dir = "."
	}
	dir, err := filepath.Abs(c.Index.Dir)
	if err != nil {
		log.Fatalf("unable to resolve index directory %q: %v", c.Index.Dir, err)
	}
	c.IndexDir = dir

	return c
}
