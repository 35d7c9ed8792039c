/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package testutils

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Digest summarizes a multiset independently of element order. Two slices that
// are permutations of each other always have equal digests.
type Digest struct {
	Count int
	Sum   uint64
	Xor   uint64
}

// MultisetDigestFunc digests items using encode to obtain their bytes.
func MultisetDigestFunc[T any](items []T, encode func(T) []byte) Digest {
	d := Digest{Count: len(items)}
	for _, item := range items {
		h := xxhash.Sum64(encode(item))
		d.Sum += h
		d.Xor ^= h
	}
	return d
}

// MultisetDigest digests integer items by their 64-bit little endian encoding.
func MultisetDigest[T constraints.Integer](items []T) Digest {
	var scratch [8]byte
	return MultisetDigestFunc(items, func(item T) []byte {
		binary.LittleEndian.PutUint64(scratch[:], uint64(item))
		return scratch[:]
	})
}

// MultisetDigestStrings digests string items.
func MultisetDigestStrings(items []string) Digest {
	d := Digest{Count: len(items)}
	for _, item := range items {
		h := xxhash.Sum64String(item)
		d.Sum += h
		d.Xor ^= h
	}
	return d
}
