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
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recoverError runs f and returns the error it panicked with, or nil.
func recoverError(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	f()
	return nil
}

func assertPanicsWith(t *testing.T, target error, f func()) {
	t.Helper()
	err := recoverError(f)
	require.Error(t, err, "expected a panic")
	assert.True(t, errors.Is(err, target), "want %v, got %v", target, err)
}

// assertSelected checks that arr is a valid selection of index k whose value
// matches the sorted copy of the input.
func assertSelected[T cmp.Ordered](t *testing.T, sorted []T, arr []T, k int) {
	t.Helper()
	require.Equal(t, sorted[k], arr[k], "k = %d", k)
	for i := 0; i < k; i++ {
		if arr[i] > arr[k] {
			require.Failf(t, "left side not partitioned", "arr[%d] = %v > arr[%d] = %v", i, arr[i], k, arr[k])
		}
	}
	for i := k + 1; i < len(arr); i++ {
		if arr[i] < arr[k] {
			require.Failf(t, "right side not partitioned", "arr[%d] = %v < arr[%d] = %v", i, arr[i], k, arr[k])
		}
	}
}

func sortedCopy[T cmp.Ordered](arr []T) []T {
	sorted := slices.Clone(arr)
	slices.Sort(sorted)
	return sorted
}

// guaranteedBand returns sorted positions lo and hi such that the result m of
// MedianOfMedians on n items always satisfies sorted[lo] <= m <= sorted[hi].
// At least g/2+1 group medians are <= m and each has 3 items <= itself in its
// group, the trailing short group fewer; symmetrically for items >= m.
func guaranteedBand(n int) (int, int) {
	if n < groupSize {
		return n / 2, n / 2
	}
	numGroups := (n + groupSize - 1) / groupSize
	tail := n - groupSize*(numGroups-1)
	below := 3 * (numGroups/2 + 1)
	above := 3 * (numGroups - numGroups/2)
	if tail < groupSize {
		below -= 2 - tail/2
		above -= 3 - (tail - tail/2)
	}
	return below - 1, n - above
}

// percentileBand is the 30th to 70th percentile band of n sorted items.
func percentileBand(n int) (int, int) {
	return 3 * (n - 1) / 10, min((7*(n-1)+9)/10, n-1)
}
