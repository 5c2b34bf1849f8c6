// Package config holds the settings of the perft tool.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=results only, 1=summary, 2=per-move progress

	Search *SearchConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Search:     NewSearchConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks that the configuration can be run.
func (c *Config) Validate() error {
	return c.Search.Validate()
}
