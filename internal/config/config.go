// Package config loads the settings of the ratio tool.
package config

import (
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// Output formats.
const (
	FormatRatio   = "ratio"
	FormatFloat   = "float"
	FormatDecimal = "decimal"
)

// Log levels.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

type Custom struct {
	Output struct {
		Format string `toml:"format"`
		Places int    `toml:"places"`
		Reduce bool   `toml:"reduce"`
	} `toml:"output"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

// Default returns the settings used when no file is given.
func Default() *Custom {
	var c Custom
	c.Output.Format = FormatRatio
	c.Output.Places = 16
	c.Log.Level = LevelInfo
	return &c
}

// Initialize reads a TOML file on top of the defaults.
// Keys missing from the file keep their default values.
// An empty file name returns the defaults.
func Initialize(file string) (*Custom, error) {
	def := Default()
	if file == "" {
		return def, nil
	}
	f, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	tree, err := toml.LoadBytes(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", file)
	}
	var config Custom
	err = tree.Unmarshal(&config)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding config %s", file)
	}
	if !tree.Has("output.format") {
		config.Output.Format = def.Output.Format
	}
	if !tree.Has("output.places") {
		config.Output.Places = def.Output.Places
	}
	if !tree.Has("log.level") {
		config.Log.Level = def.Log.Level
	}
	err = config.Validate()
	if err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", file)
	}
	return &config, nil
}

// Validate checks the values that cannot be expressed by TOML types alone.
func (c *Custom) Validate() error {
	switch c.Output.Format {
	case FormatRatio, FormatFloat, FormatDecimal:
	default:
		return errors.Errorf("unknown output format %q", c.Output.Format)
	}
	if c.Output.Places < 0 {
		return errors.Errorf("negative decimal places %d", c.Output.Places)
	}
	switch c.Log.Level {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
	default:
		return errors.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}
