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

// Package testutils provides reproducible inputs and checks shared by the
// tests, fuzz targets and benchmarks.
package testutils

import (
	"encoding/binary"

	"github.com/twmb/murmur3"
	"golang.org/x/exp/constraints"
)

const DefaultSeed = uint64(9001)

// Uint64At returns the i-th value of the pseudo random stream named by seed.
// The same seed and index always give the same value.
func Uint64At(seed uint64, i int) uint64 {
	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], uint64(i))
	return murmur3.SeedSum64(seed, scratch[:])
}

// IntnAt returns the i-th value of the stream reduced to [0, bound).
func IntnAt(seed uint64, i int, bound int) int {
	return int(Uint64At(seed, i) % uint64(bound))
}

// RandomInt32s returns n values spread over the whole int32 range.
func RandomInt32s(seed uint64, n int) []int32 {
	values := make([]int32, n)
	for i := range values {
		values[i] = int32(uint32(Uint64At(seed, i)))
	}
	return values
}

// RandomInts returns n values in [0, bound). Small bounds give duplicate
// heavy inputs.
func RandomInts[T constraints.Integer](seed uint64, n int, bound uint64) []T {
	values := make([]T, n)
	for i := range values {
		values[i] = T(Uint64At(seed, i) % bound)
	}
	return values
}

// Sorted returns 0, 1, ..., n-1.
func Sorted[T constraints.Integer](n int) []T {
	values := make([]T, n)
	for i := range values {
		values[i] = T(i)
	}
	return values
}

// Reversed returns n-1, ..., 1, 0.
func Reversed[T constraints.Integer](n int) []T {
	values := make([]T, n)
	for i := range values {
		values[i] = T(n - 1 - i)
	}
	return values
}

// OrganPipe returns values rising to the middle and falling back.
func OrganPipe[T constraints.Integer](n int) []T {
	values := make([]T, n)
	for i := range values {
		values[i] = T(min(i, n-1-i))
	}
	return values
}

// Sawtooth returns 0, 1, ..., period-1 repeated.
func Sawtooth[T constraints.Integer](n int, period int) []T {
	values := make([]T, n)
	for i := range values {
		values[i] = T(i % period)
	}
	return values
}

// AllEqual returns n copies of v.
func AllEqual[T any](n int, v T) []T {
	values := make([]T, n)
	for i := range values {
		values[i] = v
	}
	return values
}

// Shapes returns named integer inputs of length n covering the usual hard
// cases for partition based selection.
func Shapes(seed uint64, n int) map[string][]int {
	return map[string][]int{
		"random":          RandomInts[int](seed, n, 1<<31),
		"few distinct":    RandomInts[int](seed, n, 4),
		"sorted":          Sorted[int](n),
		"reversed":        Reversed[int](n),
		"organ pipe":      OrganPipe[int](n),
		"sawtooth":        Sawtooth[int](n, 7),
		"all equal":       AllEqual(n, 3),
		"binary":          RandomInts[int](seed+1, n, 2),
		"sqrt n distinct": RandomInts[int](seed+2, n, uint64(max(1, isqrt(n)))),
	}
}

func isqrt(n int) int {
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
