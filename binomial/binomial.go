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

// Package binomial generates binomially distributed random numbers,
// matrices and arrays from a set of validated options.
//
// Options are checked by Validate before any sampling takes place;
// an invalid option is reported as an *OptionError naming the field.
// The actual sampling is done by sample.Binomial, the bulk shapes are
// built by package data.
package binomial

import (
	"fmt"
	"math"

	"github.com/fentec-project/binom/data"
	"github.com/fentec-project/binom/internal"
	"github.com/fentec-project/binom/sample"
	"github.com/pkg/errors"
)

// Options configures the binomial distribution and the output.
type Options struct {
	// N is the number of trials.
	N int64 `yaml:"n"`
	// P is the success probability of a single trial.
	P float64 `yaml:"p"`
	// DType names the element type of generated matrices.
	DType string `yaml:"dtype"`
	// Seed makes the generated values reproducible. Zero means
	// that the default source is used.
	Seed int64 `yaml:"seed"`
}

// DefaultOptions returns options for B(1, 0.5) with float64 matrices
// and no seed.
func DefaultOptions() Options {
	return Options{
		N:     1,
		P:     0.5,
		DType: string(data.DefaultDType),
	}
}

// OptionError reports an invalid option.
type OptionError struct {
	Field string
	Value interface{}
	Err   error
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("invalid option %s (%v): %v", e.Field, e.Value, e.Err)
}

func (e *OptionError) Unwrap() error {
	return e.Err
}

func optionError(field string, value interface{}, msg string) *OptionError {
	return &OptionError{
		Field: field,
		Value: value,
		Err:   errors.Wrap(internal.MalformedOption, msg),
	}
}

// Validate checks the options. It returns an *OptionError for the
// first invalid field.
func (o Options) Validate() error {
	if o.N < 0 {
		return optionError("n", o.N, "must be a non-negative integer")
	}
	if math.IsNaN(o.P) || o.P < 0 || o.P > 1 {
		return optionError("p", o.P, "must be a number between 0 and 1")
	}
	if _, err := data.ParseDType(o.DType); err != nil {
		return &OptionError{Field: "dtype", Value: o.DType, Err: err}
	}
	if o.Seed < 0 {
		return optionError("seed", o.Seed, "must be a positive integer")
	}
	return nil
}

// source returns the uniform source selected by the seed option.
func (o Options) source() sample.Source {
	if o.Seed > 0 {
		return sample.NewSeededSource(uint64(o.Seed))
	}
	return sample.DefaultSource()
}

// New validates opts and returns a sampler for B(opts.N, opts.P).
func New(opts Options) (*sample.Binomial, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return sample.NewBinomial(opts.N, opts.P, opts.source()), nil
}

// Number returns a single random value.
func Number(opts Options) (int64, error) {
	s, err := New(opts)
	if err != nil {
		return 0, err
	}
	return s.Sample(), nil
}

// Vector returns a vector of length len with random values.
func Vector(len int, opts Options) (data.Vector, error) {
	s, err := New(opts)
	if err != nil {
		return nil, err
	}
	return data.NewRandomVector(len, s)
}

// Array returns a nested array with the given dimensions, see
// data.NewRandomArray.
func Array(dims []int, opts Options) (interface{}, error) {
	s, err := New(opts)
	if err != nil {
		return nil, err
	}
	return data.NewRandomArray(dims, s)
}

// Matrix returns a rows x cols matrix of random values, stored
// with the data type given by opts.DType.
func Matrix(rows, cols int, opts Options) (*data.Matrix, error) {
	s, err := New(opts)
	if err != nil {
		return nil, err
	}
	dtype, _ := data.ParseDType(opts.DType)
	return data.NewRandomMatrix(rows, cols, dtype, s)
}
