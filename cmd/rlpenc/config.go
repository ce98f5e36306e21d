// Copyright 2022 The go-rlp Authors
// This file is part of go-rlp.
//
// go-rlp is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-rlp is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-rlp. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

type outputConfig struct {
	Format    string // "hex" or "raw"
	Prefix    bool
	Uppercase bool
	Color     bool
}

type batchConfig struct {
	Workers int
}

type rlpencConfig struct {
	Verbosity int
	Output    outputConfig
	Batch     batchConfig
}

func defaultConfig() rlpencConfig {
	return rlpencConfig{
		Verbosity: verbosityFlag.Value,
		Output: outputConfig{
			Format: formatFlag.Value,
			Color:  stdoutIsTerminal(),
		},
		Batch: batchConfig{
			Workers: workersFlag.Value,
		},
	}
}

func loadConfig(file string, cfg *rlpencConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// makeConfig builds the configuration from defaults, the config file and
// command line flags, in that order.
func makeConfig(ctx *cli.Context) (rlpencConfig, error) {
	cfg := defaultConfig()
	if file := ctx.String(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return cfg, err
		}
	}
	applyFlags(ctx, &cfg)
	return cfg, cfg.validate()
}

func applyFlags(ctx *cli.Context, cfg *rlpencConfig) {
	if ctx.IsSet(verbosityFlag.Name) {
		cfg.Verbosity = ctx.Int(verbosityFlag.Name)
	}
	if ctx.IsSet(formatFlag.Name) {
		cfg.Output.Format = ctx.String(formatFlag.Name)
	}
	if ctx.IsSet(prefixFlag.Name) {
		cfg.Output.Prefix = ctx.Bool(prefixFlag.Name)
	}
	if ctx.IsSet(uppercaseFlag.Name) {
		cfg.Output.Uppercase = ctx.Bool(uppercaseFlag.Name)
	}
	if ctx.Bool(noColorFlag.Name) {
		cfg.Output.Color = false
	}
	if ctx.IsSet(workersFlag.Name) {
		cfg.Batch.Workers = ctx.Int(workersFlag.Name)
	}
}

func (cfg *rlpencConfig) validate() error {
	switch cfg.Output.Format {
	case "hex", "raw":
	default:
		return fmt.Errorf("invalid output format %q, want hex or raw", cfg.Output.Format)
	}
	if cfg.Batch.Workers < 1 {
		return fmt.Errorf("invalid number of workers %d", cfg.Batch.Workers)
	}
	if cfg.Verbosity < 0 || cfg.Verbosity > 5 {
		return fmt.Errorf("invalid verbosity %d", cfg.Verbosity)
	}
	return nil
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}
	_, err = ctx.App.Writer.Write(out)
	return err
}
