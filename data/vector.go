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
	"gonum.org/v1/gonum/stat"
)

// Vector wraps a slice of int64 elements.
type Vector []int64

// NewVector returns a new Vector instance.
func NewVector(coordinates []int64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance
// with random elements sampled by the provided sample.Sampler.
// Every element is an independent draw. It returns an error if
// len is negative.
func NewRandomVector(len int, sampler sample.Sampler) (Vector, error) {
	if len < 0 {
		return nil, errors.Wrapf(internal.MalformedShape, "negative vector length %d", len)
	}
	vec := make([]int64, len)
	for i := 0; i < len; i++ {
		vec[i] = sampler.Sample()
	}

	return NewVector(vec), nil
}

// NewConstantVector returns a new Vector instance
// with all elements set to constant c.
func NewConstantVector(len int, c int64) Vector {
	vec := make([]int64, len)
	for i := 0; i < len; i++ {
		vec[i] = c
	}

	return vec
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)

	return newVec
}

// CheckRange checks whether all vector elements lie in the
// interval [min, max].
// It returns error if at least one element is outside of it.
func (v Vector) CheckRange(min, max int64) error {
	for i, c := range v {
		if c < min || c > max {
			return fmt.Errorf("coordinate %d of a vector (%d) is not in [%d, %d]", i, c, min, max)
		}
	}

	return nil
}

// Floats returns the elements of v converted to float64.
func (v Vector) Floats() []float64 {
	res := make([]float64, len(v))
	for i, c := range v {
		res[i] = float64(c)
	}

	return res
}

// Sum returns the sum of the elements of v.
func (v Vector) Sum() int64 {
	var sum int64
	for _, c := range v {
		sum += c
	}

	return sum
}

// Mean returns the arithmetic mean of the elements of v.
func (v Vector) Mean() float64 {
	return stat.Mean(v.Floats(), nil)
}

// Variance returns the unbiased sample variance of the
// elements of v.
func (v Vector) Variance() float64 {
	return stat.Variance(v.Floats(), nil)
}

// Counts returns a histogram of v: the i-th entry holds the number
// of elements equal to i, for i in [0, max]. Elements outside of
// this interval are not counted.
func (v Vector) Counts(max int64) []int {
	if max < 0 {
		return nil
	}
	counts := make([]int, max+1)
	for _, c := range v {
		if c >= 0 && c <= max {
			counts[c]++
		}
	}

	return counts
}

// String produces a string representation of a vector.
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, c := range v {
		parts[i] = fmt.Sprint(c)
	}
	return strings.Join(parts, " ")
}
