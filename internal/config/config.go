// SPDX-License-Identifier: MIT

// Package config loads the bitgraph command configuration from YAML or
// TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bitgraph/bitmatrix"
	"github.com/katalvlaran/bitgraph/codec"
	"github.com/katalvlaran/bitgraph/internal/logger"
)

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is the full command configuration.
type Config struct {
	Log   logger.Config `yaml:"log" toml:"log"`
	Store StoreConfig   `yaml:"store" toml:"store"`
	Codec CodecConfig   `yaml:"codec" toml:"codec"`
	Graph GraphConfig   `yaml:"graph" toml:"graph"`
}

// StoreConfig locates the SQLite database.
type StoreConfig struct {
	Path string `yaml:"path" toml:"path" validate:"required"`
}

// CodecConfig sets output defaults when a file name does not imply them.
type CodecConfig struct {
	Format      string `yaml:"format" toml:"format"`
	Compression string `yaml:"compression" toml:"compression"`
}

// GraphConfig sets the policies applied to every loaded graph.
type GraphConfig struct {
	ForceSymmetry bool   `yaml:"force_symmetry" toml:"force_symmetry"`
	SelfLinking   bool   `yaml:"self_linking" toml:"self_linking"`
	Axis          string `yaml:"axis" toml:"axis"` // upper or lower
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:   logger.DefaultConfig(),
		Store: StoreConfig{Path: "bitgraph.db"},
		Codec: CodecConfig{Compression: string(codec.CompressionNone)},
		Graph: GraphConfig{
			ForceSymmetry: bitmatrix.DefaultForceSymmetry,
			SelfLinking:   bitmatrix.DefaultSelfLinking,
			Axis:          "upper",
		},
	}
}

// Load reads a YAML file (TOML when the name ends in .toml) over the
// defaults. ${VAR} references are expanded from the environment before
// parsing.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is chosen by the caller
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	content := os.Expand(string(data), os.Getenv)
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(content, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse TOML: %w", err)
		}
	} else if err := yaml.Unmarshal([]byte(content), &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks struct tags, then the enumerated codec and graph fields.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := codec.ParseFormat(c.Codec.Format); err != nil {
		return fmt.Errorf("%w: codec.format: %v", ErrInvalid, err)
	}
	if _, err := codec.ParseCompression(c.Codec.Compression); err != nil {
		return fmt.Errorf("%w: codec.compression: %v", ErrInvalid, err)
	}
	if _, err := ParseAxis(c.Graph.Axis); err != nil {
		return fmt.Errorf("%w: graph.axis: %v", ErrInvalid, err)
	}
	if strings.TrimSpace(c.Store.Path) == "" {
		return fmt.Errorf("%w: store.path is blank", ErrInvalid)
	}

	return nil
}

// ParseAxis maps "upper"/"lower" ("" = upper) to a symmetry axis.
func ParseAxis(name string) (bitmatrix.Axis, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "upper", "upper-to-lower":
		return bitmatrix.UpperToLower, nil
	case "lower", "lower-to-upper":
		return bitmatrix.LowerToUpper, nil
	default:
		return 0, fmt.Errorf("unknown axis %q", name)
	}
}

// GraphOptions converts the graph section into constructor options.
func (c Config) GraphOptions() []bitmatrix.Option {
	axis, err := ParseAxis(c.Graph.Axis)
	if err != nil {
		axis = bitmatrix.UpperToLower
	}

	return []bitmatrix.Option{
		bitmatrix.WithForceSymmetry(c.Graph.ForceSymmetry),
		bitmatrix.WithSymmetryAxis(axis),
		bitmatrix.WithSelfLinking(c.Graph.SelfLinking),
	}
}
