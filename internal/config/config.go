// Copyright 2025 The YLSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides facilities for resolving tool configuration
// from an optional YAML file and the environment. Environment variables
// take precedence over the file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bagaspratmanta/YLSE/internal/derrors"
	"github.com/bagaspratmanta/YLSE/internal/envelope"
	"github.com/bagaspratmanta/YLSE/internal/savedata"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by Load.
const (
	EnvChunkSize   = "YLSE_CHUNK_SIZE"
	EnvLongRowMode = "YLSE_LONG_ROW_MODE"
)

// Config holds the tunable behavior of the codec and serializer.
type Config struct {
	// ChunkSize is the streaming read-buffer size in bytes.
	ChunkSize int `yaml:"chunk_size"`
	// LongRowMode is one of "truncate", "skip", "reject".
	LongRowMode string `yaml:"long_row_mode"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ChunkSize:   envelope.DefaultChunkSize,
		LongRowMode: savedata.LongRowTruncate.String(),
	}
}

// Load resolves configuration from the given YAML file, or from defaults
// when file is empty, then applies environment overrides.
func Load(file string) (_ *Config, err error) {
	defer derrors.Wrap(&err, "config.Load(%q)", file)

	c := Default()
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, err
		}
	}
	if v := os.Getenv(EnvChunkSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s=%q: %v", EnvChunkSize, v, err)
		}
		c.ChunkSize = n
	}
	if v := os.Getenv(EnvLongRowMode); v != "" {
		c.LongRowMode = v
	}
	if _, err := c.longRowMode(); err != nil {
		return nil, err
	}
	if c.ChunkSize < 1 {
		return nil, fmt.Errorf("chunk size %d out of range", c.ChunkSize)
	}
	return c, nil
}

func (c *Config) longRowMode() (savedata.LongRowMode, error) {
	switch c.LongRowMode {
	case "", "truncate":
		return savedata.LongRowTruncate, nil
	case "skip":
		return savedata.LongRowSkip, nil
	case "reject":
		return savedata.LongRowReject, nil
	}
	return 0, fmt.Errorf("unknown long row mode %q", c.LongRowMode)
}

// EnvelopeOptions converts the configuration to streaming codec options.
func (c *Config) EnvelopeOptions() []envelope.Option {
	return []envelope.Option{envelope.ChunkSize(c.ChunkSize)}
}

// ParseOptions converts the configuration to table parse options.
func (c *Config) ParseOptions() []savedata.ParseOption {
	mode, err := c.longRowMode()
	if err != nil {
		mode = savedata.LongRowTruncate
	}
	return []savedata.ParseOption{savedata.WithLongRows(mode)}
}
