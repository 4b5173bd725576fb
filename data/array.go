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
	"github.com/fentec-project/binom/internal"
	"github.com/fentec-project/binom/sample"
	"github.com/pkg/errors"
)

// NewRandomArray returns a multidimensional array with the given
// dimensions, filled with values sampled by the provided
// sample.Sampler. The innermost dimension is a Vector, every outer
// dimension is a []interface{} of the next one. For instance, dims
// {2, 3} produce a []interface{} holding two Vectors of length 3.
//
// It returns an error if dims is empty or contains a negative value.
func NewRandomArray(dims []int, sampler sample.Sampler) (interface{}, error) {
	if len(dims) == 0 {
		return nil, errors.Wrap(internal.MalformedShape, "no dimensions given")
	}
	for i, d := range dims {
		if d < 0 {
			return nil, errors.Wrapf(internal.MalformedShape, "negative size %d of dimension %d", d, i)
		}
	}

	return fillArray(dims, sampler), nil
}

// fillArray recurses one dimension at a time.
func fillArray(dims []int, sampler sample.Sampler) interface{} {
	if len(dims) == 1 {
		vec, _ := NewRandomVector(dims[0], sampler)
		return vec
	}

	arr := make([]interface{}, dims[0])
	for i := range arr {
		arr[i] = fillArray(dims[1:], sampler)
	}

	return arr
}
