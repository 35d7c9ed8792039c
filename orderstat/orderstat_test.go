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

package orderstat

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"
	"testing"

	"github.com/JaderDias/movingmedian"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apache/datasketches-orderstat-go/common"
	"github.com/apache/datasketches-orderstat-go/common/testutils"
)

func TestKth(t *testing.T) {
	arr := []int{10, 0, -10, 20}
	assert.Equal(t, 10, Kth(arr, 2))
	assert.Equal(t, 10, arr[2])
	assert.ElementsMatch(t, []int{-10, 0}, arr[:2])
	assert.Equal(t, 20, arr[3])

	assert.Equal(t, -10, Kth([]int{10, 0, -10, 20}, 0))
	assert.Equal(t, 20, Kth([]int{10, 0, -10, 20}, 3))
	assert.Equal(t, "pear", Kth([]string{"plum", "apple", "pear", "fig"}, 2))
}

func TestKthOutOfRange(t *testing.T) {
	testCases := []struct {
		name string
		arr  []int
		k    int
	}{
		{name: "empty", arr: []int{}, k: 0},
		{name: "nil", arr: nil, k: 0},
		{name: "negative", arr: []int{3, 1, 2}, k: -1},
		{name: "equal to length", arr: []int{3, 1, 2}, k: 3},
		{name: "far beyond", arr: []int{3, 1, 2}, k: 1 << 40},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			before := slices.Clone(tc.arr)
			assertPanicsWith(t, ErrIndexOutOfRange, func() { Kth(tc.arr, tc.k) })
			assertPanicsWith(t, ErrIndexOutOfRange, func() { KthFunc(tc.arr, tc.k, cmp.Compare[int]) })
			assert.Equal(t, before, tc.arr, "input must not be touched")
		})
	}
}

func TestKthErrorMessage(t *testing.T) {
	err := recoverError(func() { Kth([]int{1, 2}, 5) })
	require.Error(t, err)
	assert.Equal(t, "order statistic index out of range: k = 5, len = 2", err.Error())
}

func TestKthFunc(t *testing.T) {
	words := []string{"Dog", "cat", "Elephant", "ant", "bear", "Fox"}
	got := KthFunc(slices.Clone(words), 1, common.StringComparator(true))
	assert.Equal(t, "bear", got)

	got = KthFunc(slices.Clone(words), 0, common.OrderedComparator[string](true))
	assert.Equal(t, "cat", got)

	byLen := common.By(func(s string) int { return len(s) })
	got = KthFunc(slices.Clone(words), 5, byLen)
	assert.Equal(t, "Elephant", got)
}

func TestKthMatchesSort(t *testing.T) {
	for _, n := range []int{1, 3, 50, 599, 600, 601, 2048} {
		values := testutils.RandomInts[int64](testutils.DefaultSeed, n, 1000)
		sorted := slices.Clone(values)
		slices.Sort(sorted)
		for k := 0; k < n; k += max(1, n/7) {
			assert.Equal(t, sorted[k], Kth(slices.Clone(values), k), "n = %d, k = %d", n, k)
		}
	}
}

func TestSelectInterfaceOutOfRange(t *testing.T) {
	arr := []int{5, 4, 3}
	assertPanicsWith(t, ErrIndexOutOfRange, func() { SelectInterface(sort.IntSlice(arr), 3) })
	assertPanicsWith(t, ErrIndexOutOfRange, func() { SelectInterface(sort.IntSlice(arr), -2) })
	assertPanicsWith(t, ErrIndexOutOfRange, func() { SelectInterface(sort.IntSlice(nil), 0) })
	assert.Equal(t, []int{5, 4, 3}, arr)
}

func TestSelectInterfaceStrings(t *testing.T) {
	arr := []string{"kiwi", "apple", "mango", "banana", "cherry"}
	SelectInterface(sort.StringSlice(arr), 1)
	assert.Equal(t, "banana", arr[1])
}

func TestMedian(t *testing.T) {
	testCases := []struct {
		arr      []int
		expected int
	}{
		{arr: []int{7}, expected: 7},
		{arr: []int{7, 3}, expected: 3},
		{arr: []int{5, 1, 3}, expected: 3},
		{arr: []int{4, 1, 3, 2}, expected: 2},
		{arr: []int{9, 9, 1, 9, 1}, expected: 9},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprint(tc.arr), func(t *testing.T) {
			assert.Equal(t, tc.expected, Median(slices.Clone(tc.arr)))
			assert.Equal(t, tc.expected, MedianFunc(slices.Clone(tc.arr), cmp.Compare[int]))
		})
	}
}

func TestMedianMatchesMovingMedian(t *testing.T) {
	stream := testutils.RandomInts[int](testutils.DefaultSeed, 3000, 1000)
	for _, window := range []int{1, 3, 25, 601, 1201} {
		mm := movingmedian.NewMovingMedian(window)
		for i, v := range stream {
			mm.Push(float64(v))
			if i < window-1 || i%97 != 0 {
				continue
			}
			// odd windows have a single middle element
			got := Median(slices.Clone(stream[i-window+1 : i+1]))
			assert.Equal(t, mm.Median(), float64(got), "window = %d, i = %d", window, i)
		}
	}
}

func TestMedianEmpty(t *testing.T) {
	assertPanicsWith(t, ErrEmptyInput, func() { Median([]float64{}) })
	assertPanicsWith(t, ErrEmptyInput, func() { MedianFunc[string](nil, strings.Compare) })
}

func TestMedianOfMediansEmpty(t *testing.T) {
	assertPanicsWith(t, ErrEmptyInput, func() { MedianOfMedians([]int{}) })
	assertPanicsWith(t, ErrEmptyInput, func() { MedianOfMediansFunc[int](nil, cmp.Compare[int]) })
}

func TestMedianOfMediansFunc(t *testing.T) {
	arr := testutils.Sorted[int](100)
	idx, median := MedianOfMediansFunc(arr, common.OrderedComparator[int](true))
	assert.Equal(t, median, arr[idx])
	// reversed order: the 30-70 band maps to values 29..69
	assert.GreaterOrEqual(t, median, 29)
	assert.LessOrEqual(t, median, 70)
}

func TestQuantile(t *testing.T) {
	values := []int{10, 3, 7, 1, 9, 2, 8, 4, 6, 5}
	testCases := []struct {
		rank      float64
		inclusive bool
		expected  int
	}{
		{rank: 0, inclusive: true, expected: 1},
		{rank: 0, inclusive: false, expected: 1},
		{rank: 0.1, inclusive: true, expected: 1},
		{rank: 0.1, inclusive: false, expected: 2},
		{rank: 0.3, inclusive: true, expected: 3},
		{rank: 0.3, inclusive: false, expected: 4},
		{rank: 0.33, inclusive: true, expected: 4},
		{rank: 0.33, inclusive: false, expected: 4},
		{rank: 0.5, inclusive: true, expected: 5},
		{rank: 0.5, inclusive: false, expected: 6},
		{rank: 0.99, inclusive: true, expected: 10},
		{rank: 1, inclusive: true, expected: 10},
		{rank: 1, inclusive: false, expected: 10},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("rank=%v/inclusive=%v", tc.rank, tc.inclusive), func(t *testing.T) {
			got, err := Quantile(slices.Clone(values), tc.rank, tc.inclusive)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)

			got, err = QuantileFunc(slices.Clone(values), tc.rank, tc.inclusive, cmp.Compare[int])
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestQuantileErrors(t *testing.T) {
	_, err := Quantile([]int{}, 0.5, true)
	assert.ErrorIs(t, err, ErrEmptyInput)

	arr := []int{3, 2, 1}
	for _, rank := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1)} {
		_, err = Quantile(arr, rank, false)
		assert.ErrorIs(t, err, ErrRankOutOfBounds, "rank %v", rank)
	}
	assert.Equal(t, []int{3, 2, 1}, arr, "input must not be touched")
}

func TestQuantileIndex(t *testing.T) {
	assert.Equal(t, 0, quantileIndex(0, 1, true))
	assert.Equal(t, 0, quantileIndex(1, 1, false))
	assert.Equal(t, 2, quantileIndex(0.3, 10, true))
	assert.Equal(t, 3, quantileIndex(0.3, 10, false))
	assert.Equal(t, 49_999_999, quantileIndex(0.5, 100_000_000, true))
	assert.Equal(t, 99, quantileIndex(1, 100, false))
}
