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

package sample

import (
	"sync"

	"golang.org/x/exp/rand"
)

// Source produces uniformly distributed values from the interval [0, 1).
// Every call advances the state of the source, so a single Source must
// not be used by several goroutines without serialization.
type Source interface {
	Float64() float64
}

// SourceFunc adapts an ordinary function to the Source interface.
type SourceFunc func() float64

// Float64 calls f().
func (f SourceFunc) Float64() float64 {
	return f()
}

// defaultSource is the process-wide generator. It is safe for
// concurrent use.
var defaultSource Source = SourceFunc(rand.Float64)

// DefaultSource returns the Source that is used when a sampler
// is given a nil Source.
func DefaultSource() Source {
	return defaultSource
}

// NewSeededSource returns a reproducible Source backed by a PCG
// generator initialized with seed. Two sources created with the same
// seed produce the same sequence of values.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewSource(seed))
}

// lockedSource serializes access to the wrapped Source.
type lockedSource struct {
	mu  sync.Mutex
	src Source
}

// NewLockedSource wraps src so that it can be shared between
// goroutines. Values are still handed out one at a time, so concurrent
// samplers interleave their draws.
func NewLockedSource(src Source) Source {
	return &lockedSource{src: src}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	v := s.src.Float64()
	s.mu.Unlock()
	return v
}
