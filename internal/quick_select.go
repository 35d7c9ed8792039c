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

package internal

import "cmp"

// smallRange is the length below which a range is finished by exchange sort.
const smallRange = 5

// QuickSelect moves the k-th smallest element of arr to arr[k], with smaller or
// equal elements before it and greater or equal elements after it.
// It is a plain partition based quickselect kept next to the Floyd-Rivest
// selector to check it against; it is measurably slower and quadratic on
// sorted or constant input.
func QuickSelect[T cmp.Ordered](arr []T, k int) {
	QuickSelectFunc(arr, k, cmp.Compare[T])
}

// QuickSelectFunc is QuickSelect with a custom three-way comparator.
// k must be a valid index of arr.
func QuickSelectFunc[T any](arr []T, k int, compare func(a, b T) int) {
	lo := 0
	hi := len(arr)
	for hi-lo >= smallRange {
		p := lo + partitionFunc(arr[lo:hi], compare)
		if k == p {
			return
		}
		if k < p {
			hi = p
		} else {
			lo = p + 1
		}
	}
	exchangeSort(arr[lo:hi], compare)
}

// partitionFunc partitions arr around its last element and returns the final
// position of that element.
func partitionFunc[T any](arr []T, compare func(a, b T) int) int {
	last := len(arr) - 1
	store := 0
	for load := 0; load < last; load++ {
		if compare(arr[load], arr[last]) < 0 {
			arr[load], arr[store] = arr[store], arr[load]
			store++
		}
	}
	arr[store], arr[last] = arr[last], arr[store]
	return store
}

func exchangeSort[T any](arr []T, compare func(a, b T) int) {
	for i := 0; i < len(arr); i++ {
		for j := i + 1; j < len(arr); j++ {
			if compare(arr[j], arr[i]) < 0 {
				arr[i], arr[j] = arr[j], arr[i]
			}
		}
	}
}
