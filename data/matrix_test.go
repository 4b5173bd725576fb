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

package data

import (
	"testing"

	"github.com/fentec-project/binom/internal"
	"github.com/fentec-project/binom/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix(t *testing.T) {
	rows, cols := 5, 3
	n := int64(40)
	sampler := sample.NewBinomial(n, 0.6, sample.NewSeededSource(9))

	m, err := NewRandomMatrix(rows, cols, Int32, sampler)
	require.NoError(t, err)

	assert.Equal(t, rows, m.Rows())
	assert.Equal(t, cols, m.Cols())
	assert.Equal(t, rows*cols, m.Len())
	assert.Equal(t, Int32, m.DType())
	assert.True(t, m.CheckDims(rows, cols))

	data, ok := m.Data().([]int32)
	require.True(t, ok)
	require.Len(t, data, rows*cols)
	for _, v := range data {
		assert.True(t, v >= 0 && int64(v) <= n)
	}

	for i := 0; i < rows; i++ {
		row, err := m.Row(i)
		require.NoError(t, err)
		for j := 0; j < cols; j++ {
			assert.Equal(t, float64(data[i*cols+j]), m.At(i, j))
			assert.Equal(t, int64(data[i*cols+j]), row[j])
		}
	}
	_, err = m.Row(rows)
	assert.Error(t, err)
}

func TestMatrix_FillRowMajor(t *testing.T) {
	for _, dtype := range []DType{Int8, Uint8, Uint8Clamped, Int16, Uint16, Int32, Uint32, Float32, Float64} {
		t.Run(string(dtype), func(t *testing.T) {
			m, err := NewRandomMatrix(4, 6, dtype, &counter{})
			require.NoError(t, err)
			for i := 0; i < 4; i++ {
				for j := 0; j < 6; j++ {
					assert.Equal(t, float64(i*6+j+1), m.At(i, j))
				}
			}
		})
	}
}

func TestMatrix_Conversions(t *testing.T) {
	m, err := NewMatrix(1, 3, Uint8Clamped)
	require.NoError(t, err)
	m.Set(0, 0, -5)
	m.Set(0, 1, 300)
	m.Set(0, 2, 17)
	assert.Equal(t, []uint8{0, 255, 17}, m.Data())

	w, err := NewMatrix(1, 2, Uint8)
	require.NoError(t, err)
	w.Set(0, 0, 256)
	w.Set(0, 1, 300)
	assert.Equal(t, []uint8{0, 44}, w.Data())

	assert.Panics(t, func() { w.At(1, 0) })
}

func TestMatrix_Dense(t *testing.T) {
	m, err := NewRandomMatrix(2, 3, Float64, &counter{})
	require.NoError(t, err)

	d, err := m.Dense()
	require.NoError(t, err)
	r, c := d.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 6.0, d.At(1, 2))
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m.Slices())
	assert.Equal(t, "1 2 3\n4 5 6", m.String())

	empty, err := NewMatrix(0, 3, Float64)
	require.NoError(t, err)
	_, err = empty.Dense()
	assert.ErrorIs(t, err, internal.MalformedShape)
}

func TestNewMatrix_Malformed(t *testing.T) {
	_, err := NewMatrix(-1, 2, Float64)
	assert.ErrorIs(t, err, internal.MalformedShape)

	_, err = NewMatrix(2, 2, DType("complex128"))
	assert.ErrorIs(t, err, internal.UnknownDType)
}

func TestParseDType(t *testing.T) {
	d, err := ParseDType("")
	require.NoError(t, err)
	assert.Equal(t, Float64, d)

	d, err = ParseDType("uint8_clamped")
	require.NoError(t, err)
	assert.Equal(t, Uint8Clamped, d)

	_, err = ParseDType("int64")
	assert.ErrorIs(t, err, internal.UnknownDType)
}
