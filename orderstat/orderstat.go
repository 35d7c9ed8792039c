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

// Package orderstat computes order statistics of slices in place.
//
// Kth finds the k-th smallest element in expected linear time using the
// Floyd-Rivest SELECT algorithm, and MedianOfMedians cheaply finds an element
// lying roughly between the 30th and 70th percentiles. Both reorder the given slice
// instead of sorting it; copy the slice first if the original order matters.
package orderstat

import (
	"cmp"
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrIndexOutOfRange is the panic value (wrapped) when k is not a valid index.
	ErrIndexOutOfRange = errors.New("order statistic index out of range")
	// ErrEmptyInput is reported when a median or quantile of an empty slice is requested.
	ErrEmptyInput = errors.New("empty input")
	// ErrRankOutOfBounds is returned when a normalized rank is outside [0, 1].
	ErrRankOutOfBounds = errors.New("rank must be between 0 and 1 inclusive")
)

// Kth reorders arr so that arr[k] is the element that would be at index k if arr
// were sorted, and returns it. Elements before k are not greater than it and
// elements after k are not less; their order is otherwise unspecified.
// k is zero based, so k = 0 gives the minimum and k = len(arr)-1 the maximum.
//
// Kth runs in expected O(n) time, which is usually much faster than sorting
// for a single query. For many queries on the same data sorting once may win.
//
// Kth panics with an error wrapping ErrIndexOutOfRange if k < 0 or
// k >= len(arr); arr is left untouched in that case.
func Kth[T cmp.Ordered](arr []T, k int) T {
	return kth(arr, k, cmp.Compare[T], defaultSampling)
}

// KthFunc is Kth with the order defined by compare, which returns a negative
// number when a < b, a positive number when a > b and zero otherwise.
// compare must be consistent; ties are allowed.
func KthFunc[T any](arr []T, k int, compare func(a, b T) int) T {
	return kth(arr, k, compare, defaultSampling)
}

// SelectInterface reorders data so that the element at index k is the one that
// would be there if data were sorted. It panics like Kth.
func SelectInterface(data sort.Interface, k int) {
	n := data.Len()
	if err := checkIndex(k, n); err != nil {
		panic(err)
	}
	selectInterfaceRange(data, 0, n-1, k, defaultSampling)
}

// Median returns the lower median of arr, the element at index (len(arr)-1)/2
// after selection. It panics with an error wrapping ErrEmptyInput if arr is empty.
func Median[T cmp.Ordered](arr []T) T {
	return MedianFunc(arr, cmp.Compare[T])
}

// MedianFunc is Median with the order defined by compare.
func MedianFunc[T any](arr []T, compare func(a, b T) int) T {
	if err := checkNotEmpty(len(arr)); err != nil {
		panic(err)
	}
	return kth(arr, (len(arr)-1)/2, compare, defaultSampling)
}

// MedianOfMedians returns the index and value of an element of arr that lies
// between the 30th and 70th percentiles of arr, via one round of the
// median-of-medians construction. The first ceil(n/5) positions of arr are
// left holding the group medians.
//
// The band is exact when len(arr) is a multiple of five or below five.
// A trailing group shorter than five can shift the result by one position
// beyond the band.
//
// MedianOfMedians panics with an error wrapping ErrEmptyInput if arr is empty.
func MedianOfMedians[T cmp.Ordered](arr []T) (int, T) {
	return medianOfMediansChecked(arr, cmp.Compare[T], defaultSampling)
}

// MedianOfMediansFunc is MedianOfMedians with the order defined by compare.
func MedianOfMediansFunc[T any](arr []T, compare func(a, b T) int) (int, T) {
	return medianOfMediansChecked(arr, compare, defaultSampling)
}

func kth[T any](arr []T, k int, compare func(a, b T) int, p samplingParams) T {
	if err := checkIndex(k, len(arr)); err != nil {
		panic(err)
	}
	floydRivestSelect(arr, k, compare, p)
	return arr[k]
}

func medianOfMediansChecked[T any](arr []T, compare func(a, b T) int, p samplingParams) (int, T) {
	if err := checkNotEmpty(len(arr)); err != nil {
		panic(err)
	}
	idx := medianOfMedians(arr, compare, p)
	return idx, arr[idx]
}

func checkIndex(k int, length int) error {
	if k < 0 || k >= length {
		return fmt.Errorf("%w: k = %d, len = %d", ErrIndexOutOfRange, k, length)
	}
	return nil
}

func checkNotEmpty(length int) error {
	if length == 0 {
		return fmt.Errorf("%w: median of an empty slice", ErrEmptyInput)
	}
	return nil
}
