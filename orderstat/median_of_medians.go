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

const groupSize = 5

// medianOfMedians collects one median per group of five at the front of arr,
// then selects the median of those. It returns the index of the result.
// arr must not be empty.
func medianOfMedians[T any](arr []T, compare func(a, b T) int, p samplingParams) int {
	if len(arr) < groupSize {
		median := len(arr) / 2
		floydRivestSelect(arr, median, compare, p)
		return median
	}

	numMedians := (len(arr) + groupSize - 1) / groupSize
	for i := 0; i < numMedians; i++ {
		start := groupSize * i
		trailing := len(arr) - start
		var idx int
		if trailing < groupSize {
			// the network needs exactly five items, so rank the tail directly
			mid := trailing / 2
			floydRivestSelect(arr[start:], mid, compare, p)
			idx = start + mid
		} else {
			idx = start + median5(arr[start:start+groupSize], compare)
		}
		arr[i], arr[idx] = arr[idx], arr[i]
	}

	idx := numMedians / 2
	floydRivestSelect(arr[:numMedians], idx, compare, p)
	return idx
}

// median5 returns the offset of the third smallest of exactly five items.
// Nine compare-exchanges run on offsets rather than on the items, so group is
// never written. After each exchange the second operand holds the smaller item.
func median5[T any](group []T, compare func(a, b T) int) int {
	_ = group[4]
	a0, a1, a2, a3, a4 := 0, 1, 2, 3, 4
	exchange := func(x *int, y *int) {
		if compare(group[*x], group[*y]) < 0 {
			*x, *y = *y, *x
		}
	}

	// a0 ends up with the minimum
	exchange(&a1, &a0)
	exchange(&a2, &a0)
	exchange(&a3, &a0)
	exchange(&a4, &a0)
	// a1 with the second smallest
	exchange(&a2, &a1)
	exchange(&a3, &a1)
	exchange(&a4, &a1)
	// a2 with the third smallest
	exchange(&a3, &a2)
	exchange(&a4, &a2)

	return a2
}
