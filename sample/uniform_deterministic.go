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
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

// keyedBlockSize is the number of keystream bytes produced per nonce.
const keyedBlockSize = 512

// KeyedSource is a deterministic Source. Its values are derived from
// the Salsa20 keystream determined by a 32 byte key, so the key fully
// determines the produced sequence.
type KeyedSource struct {
	key     *[32]byte
	counter uint64
	buf     []byte
	off     int
}

// NewKeyedSource returns an instance of KeyedSource for the given key.
func NewKeyedSource(key *[32]byte) *KeyedSource {
	k := *key
	return &KeyedSource{
		key: &k,
		buf: make([]byte, keyedBlockSize),
		off: keyedBlockSize,
	}
}

// Float64 returns the next value from [0, 1). It uses 53 bits of
// the keystream per value.
func (s *KeyedSource) Float64() float64 {
	if s.off+8 > len(s.buf) {
		s.refill()
	}
	x := binary.LittleEndian.Uint64(s.buf[s.off:]) >> 11
	s.off += 8

	return float64(x) / (1 << 53)
}

// refill encrypts a block of zeros under the next nonce.
func (s *KeyedSource) refill() {
	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, s.counter)
	s.counter++

	in := make([]byte, keyedBlockSize) // input is initialized to zeros
	salsa20.XORKeyStream(s.buf, in, nonce, s.key)
	s.off = 0
}
