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

package binomial_test

import (
	"math"
	"testing"

	"github.com/fentec-project/binom/binomial"
	"github.com/fentec-project/binom/data"
	"github.com/fentec-project/binom/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Validate(t *testing.T) {
	var tests = []struct {
		name  string
		opts  binomial.Options
		field string
	}{
		{name: "defaults", opts: binomial.DefaultOptions()},
		{name: "empty dtype", opts: binomial.Options{N: 3, P: 0.1}},
		{name: "p=0", opts: binomial.Options{N: 3, P: 0}},
		{name: "p=1", opts: binomial.Options{N: 3, P: 1, Seed: 5}},
		{name: "negative n", opts: binomial.Options{N: -1, P: 0.5}, field: "n"},
		{name: "p too small", opts: binomial.Options{N: 1, P: -0.1}, field: "p"},
		{name: "p too big", opts: binomial.Options{N: 1, P: 1.5}, field: "p"},
		{name: "p NaN", opts: binomial.Options{N: 1, P: math.NaN()}, field: "p"},
		{name: "bad dtype", opts: binomial.Options{N: 1, P: 0.5, DType: "string"}, field: "dtype"},
		{name: "negative seed", opts: binomial.Options{N: 1, P: 0.5, Seed: -3}, field: "seed"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.opts.Validate()
			if test.field == "" {
				assert.NoError(t, err)
				return
			}
			var optErr *binomial.OptionError
			require.ErrorAs(t, err, &optErr)
			assert.Equal(t, test.field, optErr.Field)
			assert.Contains(t, err.Error(), test.field)
		})
	}
}

func TestOptions_ValidateErrorKinds(t *testing.T) {
	err := binomial.Options{N: -4, P: 0.5}.Validate()
	assert.ErrorIs(t, err, internal.MalformedOption)

	err = binomial.Options{N: 4, P: 0.5, DType: "int64"}.Validate()
	assert.ErrorIs(t, err, internal.UnknownDType)
}

func TestNumber(t *testing.T) {
	opts := binomial.Options{N: 30, P: 0.4, Seed: 17}
	a, err := binomial.Number(opts)
	require.NoError(t, err)
	b, err := binomial.Number(opts)
	require.NoError(t, err)
	assert.Equal(t, a, b, "equal seeds should give equal values")
	assert.True(t, a >= 0 && a <= 30)

	_, err = binomial.Number(binomial.Options{N: 30, P: 2})
	assert.Error(t, err)
}

func TestVector(t *testing.T) {
	opts := binomial.Options{N: 1000, P: 0.3, Seed: 1}
	v, err := binomial.Vector(5000, opts)
	require.NoError(t, err)
	assert.Len(t, v, 5000)
	assert.NoError(t, v.CheckRange(0, 1000))
	assert.InDelta(t, 300, v.Mean(), 1.5)

	w, err := binomial.Vector(5000, opts)
	require.NoError(t, err)
	assert.Equal(t, v, w)

	// unseeded vectors are in range as well
	u, err := binomial.Vector(100, binomial.Options{N: 10, P: 0.9})
	require.NoError(t, err)
	assert.NoError(t, u.CheckRange(0, 10))

	_, err = binomial.Vector(-1, opts)
	assert.ErrorIs(t, err, internal.MalformedShape)
}

func TestArray(t *testing.T) {
	arr, err := binomial.Array([]int{3, 2}, binomial.Options{N: 8, P: 0.5, Seed: 2})
	require.NoError(t, err)
	outer := arr.([]interface{})
	require.Len(t, outer, 3)
	for _, o := range outer {
		vec := o.(data.Vector)
		assert.Len(t, vec, 2)
		assert.NoError(t, vec.CheckRange(0, 8))
	}

	_, err = binomial.Array([]int{2}, binomial.Options{N: -8, P: 0.5})
	var optErr *binomial.OptionError
	assert.ErrorAs(t, err, &optErr)
}

func TestMatrix(t *testing.T) {
	m, err := binomial.Matrix(10, 20, binomial.Options{N: 255, P: 1, DType: "uint8"})
	require.NoError(t, err)
	assert.Equal(t, data.Uint8, m.DType())
	for _, v := range m.Data().([]uint8) {
		assert.Equal(t, uint8(255), v)
	}

	m, err = binomial.Matrix(4, 4, binomial.Options{N: 100, P: 0.2})
	require.NoError(t, err)
	assert.Equal(t, data.Float64, m.DType())
	assert.Len(t, m.Data().([]float64), 16)

	_, err = binomial.Matrix(4, 4, binomial.Options{N: 100, P: 0.2, DType: "bool"})
	assert.Error(t, err)
}
