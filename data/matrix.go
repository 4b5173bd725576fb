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
	"fmt"
	"strings"

	"github.com/fentec-project/binom/internal"
	"github.com/fentec-project/binom/sample"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense row-major matrix whose elements are stored
// in a single typed backing array.
//
// The j-th element of the i-th row is stored at index i*cols + j.
type Matrix struct {
	rows  int
	cols  int
	dtype DType
	data  storage
}

// NewMatrix returns a new zero-filled Matrix with the given
// dimensions and data type.
// It returns error if a dimension is negative or the data type is
// not supported.
func NewMatrix(rows, cols int, dtype DType) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, errors.Wrapf(internal.MalformedShape, "matrix dimensions %dx%d", rows, cols)
	}
	data, err := newStorage(dtype, rows*cols)
	if err != nil {
		return nil, err
	}

	return &Matrix{
		rows:  rows,
		cols:  cols,
		dtype: dtype,
		data:  data,
	}, nil
}

// NewRandomMatrix returns a new Matrix instance
// with random elements sampled by the provided sample.Sampler.
func NewRandomMatrix(rows, cols int, dtype DType, sampler sample.Sampler) (*Matrix, error) {
	m, err := NewMatrix(rows, cols, dtype)
	if err != nil {
		return nil, err
	}
	m.Fill(sampler)

	return m, nil
}

// Fill overwrites every element of m with a new value from
// sampler, in row-major order.
func (m *Matrix) Fill(sampler sample.Sampler) {
	for i := 0; i < m.data.len(); i++ {
		m.data.set(i, sampler.Sample())
	}
}

// Rows returns the number of rows of matrix m.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns of matrix m.
func (m *Matrix) Cols() int {
	return m.cols
}

// Len returns the number of elements of matrix m.
func (m *Matrix) Len() int {
	return m.data.len()
}

// DType returns the data type of the elements of m.
func (m *Matrix) DType() DType {
	return m.dtype
}

// CheckDims checks whether dimensions of matrix m match
// the provided rows and cols arguments.
func (m *Matrix) CheckDims(rows, cols int) bool {
	return m.rows == rows && m.cols == cols
}

// At returns the element in row i and column j.
func (m *Matrix) At(i, j int) float64 {
	m.checkIndex(i, j)
	return m.data.at(i*m.cols + j)
}

// Set stores v in row i and column j, converted to the data
// type of m.
func (m *Matrix) Set(i, j int, v int64) {
	m.checkIndex(i, j)
	m.data.set(i*m.cols+j, v)
}

func (m *Matrix) checkIndex(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("index (%d, %d) out of range for %dx%d matrix", i, j, m.rows, m.cols))
	}
}

// Data returns the backing array of m, for instance []int32 for
// Int32 or []float64 for Float64. It is shared with m.
func (m *Matrix) Data() interface{} {
	return m.data.raw()
}

// Row returns i-th row of matrix m as a vector.
// It returns error if i is not a valid row index.
func (m *Matrix) Row(i int) (Vector, error) {
	if i < 0 || i >= m.rows {
		return nil, fmt.Errorf("row index exceeds matrix dimensions")
	}

	row := make(Vector, m.cols)
	for j := range row {
		row[j] = int64(m.data.at(i*m.cols + j))
	}

	return row, nil
}

// Slices returns the elements of m as a slice of rows.
func (m *Matrix) Slices() [][]float64 {
	res := make([][]float64, m.rows)
	for i := range res {
		res[i] = make([]float64, m.cols)
		for j := range res[i] {
			res[i][j] = m.data.at(i*m.cols + j)
		}
	}

	return res
}

// Dense returns a copy of m as a gonum dense matrix.
// It returns error if m has no elements, which gonum does not allow.
func (m *Matrix) Dense() (*mat.Dense, error) {
	if m.rows == 0 || m.cols == 0 {
		return nil, errors.Wrap(internal.MalformedShape, "cannot convert an empty matrix")
	}
	vals := make([]float64, m.data.len())
	for i := range vals {
		vals[i] = m.data.at(i)
	}

	return mat.NewDense(m.rows, m.cols, vals), nil
}

// String produces a string representation of a matrix,
// one row per line.
func (m *Matrix) String() string {
	rows := make([]string, m.rows)
	for i := range rows {
		cols := make([]string, m.cols)
		for j := range cols {
			cols[j] = fmt.Sprint(m.data.at(i*m.cols + j))
		}
		rows[i] = strings.Join(cols, " ")
	}
	return strings.Join(rows, "\n")
}
