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

// Command binomrand writes binomially distributed random numbers.
//
// Depending on the options it produces a flat list of values, a nested
// array or a matrix, formatted as text, JSON or YAML:
//
//	binomrand -n 100 -p 0.3 -l 10
//	binomrand -n 20 -p 0.5 -d 2 -d 3 -d 4 -f json
//	binomrand -n 255 -p 0.9 -m -d 3 -d 3 -t uint8 -s 7
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/decred/slog"
	"github.com/fentec-project/binom/binomial"
	"github.com/fentec-project/binom/sample"
	flags "github.com/jessevdk/go-flags"
)

var (
	backend = slog.NewBackend(os.Stderr)
	log     = backend.Logger("BNRD")
)

// setLogLevel sets the level of the command and library loggers.
func setLogLevel(level string) error {
	lvl, ok := slog.LevelFromString(level)
	if !ok {
		return fmt.Errorf("invalid debug level %q", level)
	}
	log.SetLevel(lvl)
	smplLog := backend.Logger("SMPL")
	smplLog.SetLevel(lvl)
	sample.UseLogger(smplLog)
	return nil
}

// generate produces the value requested by cfg.
func generate(cfg *config) (interface{}, error) {
	opts := cfg.options()
	switch {
	case cfg.Matrix:
		m, err := binomial.Matrix(cfg.Dims[0], cfg.Dims[1], opts)
		if err != nil {
			return nil, err
		}
		log.Debugf("Generated %dx%d %s matrix", m.Rows(), m.Cols(), m.DType())
		return m, nil
	case len(cfg.Dims) != 0:
		log.Debugf("Generating nested array with dimensions %v", cfg.Dims)
		return binomial.Array(cfg.Dims, opts)
	default:
		log.Debugf("Generating %d values", cfg.Len)
		return binomial.Vector(cfg.Len, opts)
	}
}

func run(cfg *config, w io.Writer) error {
	out, err := generate(cfg)
	if err != nil {
		return err
	}
	return write(w, cfg.Format, out)
}

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, e.Message)
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := setLogLevel(cfg.DebugLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Infof("Sampling B(%d, %v)", cfg.Trials, cfg.Prob)

	if err := run(cfg, os.Stdout); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
