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
	"math"

	"github.com/fentec-project/binom/internal"
	"github.com/pkg/errors"
)

// DType names the numeric type used for storing matrix elements.
type DType string

// Supported data types. Integer types wrap around on overflow,
// Uint8Clamped saturates to [0, 255] instead.
const (
	Int8         DType = "int8"
	Uint8        DType = "uint8"
	Uint8Clamped DType = "uint8_clamped"
	Int16        DType = "int16"
	Uint16       DType = "uint16"
	Int32        DType = "int32"
	Uint32       DType = "uint32"
	Float32      DType = "float32"
	Float64      DType = "float64"
)

// DefaultDType is used when no data type is requested.
const DefaultDType = Float64

// ParseDType returns the DType named by s. An empty string
// yields DefaultDType.
func ParseDType(s string) (DType, error) {
	if s == "" {
		return DefaultDType, nil
	}
	switch d := DType(s); d {
	case Int8, Uint8, Uint8Clamped, Int16, Uint16, Int32, Uint32, Float32, Float64:
		return d, nil
	}
	return "", errors.Wrapf(internal.UnknownDType, "%q", s)
}

// storage is the typed backing array of a Matrix.
type storage interface {
	len() int
	set(i int, v int64)
	at(i int) float64
	raw() interface{}
}

type element interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~float32 | ~float64
}

type typedStorage[T element] []T

func (s typedStorage[T]) len() int           { return len(s) }
func (s typedStorage[T]) set(i int, v int64) { s[i] = T(v) }
func (s typedStorage[T]) at(i int) float64   { return float64(s[i]) }
func (s typedStorage[T]) raw() interface{}   { return []T(s) }

// clampedStorage saturates values to the range of uint8.
type clampedStorage []uint8

func (s clampedStorage) len() int { return len(s) }

func (s clampedStorage) set(i int, v int64) {
	switch {
	case v < 0:
		s[i] = 0
	case v > math.MaxUint8:
		s[i] = math.MaxUint8
	default:
		s[i] = uint8(v)
	}
}

func (s clampedStorage) at(i int) float64 { return float64(s[i]) }
func (s clampedStorage) raw() interface{} { return []uint8(s) }

// newStorage allocates zeroed storage for l elements of type d.
func newStorage(d DType, l int) (storage, error) {
	switch d {
	case Int8:
		return make(typedStorage[int8], l), nil
	case Uint8:
		return make(typedStorage[uint8], l), nil
	case Uint8Clamped:
		return make(clampedStorage, l), nil
	case Int16:
		return make(typedStorage[int16], l), nil
	case Uint16:
		return make(typedStorage[uint16], l), nil
	case Int32:
		return make(typedStorage[int32], l), nil
	case Uint32:
		return make(typedStorage[uint32], l), nil
	case Float32:
		return make(typedStorage[float32], l), nil
	case Float64:
		return make(typedStorage[float64], l), nil
	}
	return nil, errors.Wrapf(internal.UnknownDType, "%q", string(d))
}
