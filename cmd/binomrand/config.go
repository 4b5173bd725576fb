/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"os"

	"github.com/fentec-project/binom/binomial"
	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// config defines the command line options. The yaml tags allow the
// same options to be given in a configuration file.
type config struct {
	ConfigFile string  `short:"C" long:"configfile" description:"Path to a YAML file with default options" yaml:"-"`
	Trials     int64   `short:"n" long:"trials" description:"Number of trials" yaml:"n"`
	Prob       float64 `short:"p" long:"prob" description:"Success probability of a trial" yaml:"p"`
	DType      string  `short:"t" long:"dtype" description:"Element type of matrix output {int8, uint8, uint8_clamped, int16, uint16, int32, uint32, float32, float64}" yaml:"dtype"`
	Seed       int64   `short:"s" long:"seed" description:"Positive seed for reproducible output" yaml:"seed"`
	Len        int     `short:"l" long:"len" description:"Number of values to generate" yaml:"len"`
	Dims       []int   `short:"d" long:"dim" description:"Dimension of a nested array; may be specified multiple times" yaml:"dims"`
	Matrix     bool    `short:"m" long:"matrix" description:"Generate a matrix; requires exactly two --dim" yaml:"matrix"`
	Format     string  `short:"f" long:"format" description:"Output format" choice:"text" choice:"json" choice:"yaml" yaml:"format"`
	DebugLevel string  `long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}" yaml:"debuglevel"`
}

func defaultConfig() config {
	opts := binomial.DefaultOptions()
	return config{
		Trials:     opts.N,
		Prob:       opts.P,
		DType:      opts.DType,
		Len:        1,
		Format:     formatText,
		DebugLevel: "info",
	}
}

// options returns the sampling options described by cfg.
func (cfg *config) options() binomial.Options {
	return binomial.Options{
		N:     cfg.Trials,
		P:     cfg.Prob,
		DType: cfg.DType,
		Seed:  cfg.Seed,
	}
}

// loadConfig builds the configuration from the defaults, an optional
// configuration file and the command line, in increasing order of
// priority.
func loadConfig(args []string) (*config, error) {
	// Pre-parse the command line to find the configuration file.
	preCfg := config{}
	preParser := flags.NewParser(&preCfg, flags.HelpFlag|flags.PassDoubleDash|flags.IgnoreUnknown)
	if _, err := preParser.ParseArgs(args); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	if preCfg.ConfigFile != "" {
		b, err := os.ReadFile(preCfg.ConfigFile)
		if err != nil {
			return nil, errors.Wrap(err, "cannot read config file")
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, errors.Wrapf(err, "cannot parse config file %s", preCfg.ConfigFile)
		}
	}
	// Dimensions on the command line replace those of the file.
	if len(preCfg.Dims) != 0 {
		cfg.Dims = nil
	}

	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	rest, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, errors.Errorf("unexpected arguments %v", rest)
	}

	if cfg.Matrix && len(cfg.Dims) != 2 {
		return nil, errors.Errorf("a matrix needs exactly two dimensions, got %d", len(cfg.Dims))
	}
	switch cfg.Format {
	case formatText, formatJSON, formatYAML:
	default:
		return nil, errors.Errorf("unknown output format %q", cfg.Format)
	}
	if err := cfg.options().Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
