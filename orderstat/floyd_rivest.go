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
	"math"
	"sort"
)

const (
	// DefaultSampleThreshold is the range length above which the selector first
	// narrows the range on a sample before partitioning it.
	DefaultSampleThreshold = 600
	// DefaultSampleScale scales the width of the sampled window.
	DefaultSampleScale = float32(0.5)
)

type samplingParams struct {
	threshold int
	scale     float32
}

var defaultSampling = samplingParams{
	threshold: DefaultSampleThreshold,
	scale:     DefaultSampleScale,
}

// floydRivestSelect reorders arr so that arr[k] holds the k-th smallest element,
// everything before it compares not greater and everything after it compares not less.
//
// Robert W. Floyd and Ronald L. Rivest (1975). Algorithm 489: the algorithm
// SELECT for finding the ith smallest of n elements. Commun. ACM 18, 3, 173.
func floydRivestSelect[T any](arr []T, k int, compare func(a, b T) int, p samplingParams) {
	selectRange(arr, 0, len(arr)-1, k, compare, p)
}

func selectRange[T any](arr []T, left int, right int, k int, compare func(a, b T) int, p samplingParams) {
	for right > left {
		if right-left > p.threshold {
			newLeft, newRight := sampleWindow(left, right, k, p.scale)
			if newLeft > left || newRight < right {
				selectRange(arr, newLeft, newRight, k, compare, p)
			}
		}

		i := left + 1
		j := right - 1
		arr[left], arr[k] = arr[k], arr[left]
		t := left
		if compare(arr[left], arr[right]) >= 0 {
			arr[left], arr[right] = arr[right], arr[left]
			t = right
		}
		// The scan only swaps inside (left, right), so the copy stays equal to arr[t].
		pivot := arr[t]

		for compare(arr[i], pivot) < 0 {
			i++
		}
		for compare(arr[j], pivot) > 0 {
			j--
		}
		for i < j {
			arr[i], arr[j] = arr[j], arr[i]
			i++
			j--
			for compare(arr[i], pivot) < 0 {
				i++
			}
			for compare(arr[j], pivot) > 0 {
				j--
			}
		}

		if t == left {
			arr[left], arr[j] = arr[j], arr[left]
		} else {
			j++
			arr[right], arr[j] = arr[j], arr[right]
		}
		if j <= k {
			left = j + 1
		}
		if k <= j {
			right = max(j-1, 0)
		}
	}
}

// selectInterfaceRange is selectRange over a sort.Interface. The pivot cannot be
// copied out, so it is addressed by its index t, which the scan never swaps.
func selectInterfaceRange(data sort.Interface, left int, right int, k int, p samplingParams) {
	for right > left {
		if right-left > p.threshold {
			newLeft, newRight := sampleWindow(left, right, k, p.scale)
			if newLeft > left || newRight < right {
				selectInterfaceRange(data, newLeft, newRight, k, p)
			}
		}

		i := left + 1
		j := right - 1
		data.Swap(left, k)
		t := left
		if !data.Less(left, right) {
			data.Swap(left, right)
			t = right
		}

		for data.Less(i, t) {
			i++
		}
		for data.Less(t, j) {
			j--
		}
		for i < j {
			data.Swap(i, j)
			i++
			j--
			for data.Less(i, t) {
				i++
			}
			for data.Less(t, j) {
				j--
			}
		}

		if t == left {
			data.Swap(left, j)
		} else {
			j++
			data.Swap(right, j)
		}
		if j <= k {
			left = j + 1
		}
		if k <= j {
			right = max(j-1, 0)
		}
	}
}

// sampleWindow estimates a sub-range of [left, right] that very likely holds the
// k-th smallest element. Arithmetic is single precision and indices are truncated,
// so results are reproducible across platforms. The window is only a hint.
func sampleWindow(left int, right int, k int, scale float32) (int, int) {
	n := float32(right - left + 1)
	i := float32(k - left + 1)
	z := float32(math.Log(float64(n)))
	s := scale * float32(math.Exp(float64(z*(2.0/3.0))))
	sn := s / n
	sd := scale * float32(math.Sqrt(float64(z*s*(1.0-sn)))) * signum(i-n*0.5)

	isn := i * s / n
	inner := float32(k) - isn + sd
	return max(left, int(inner)), min(right, int(inner+s))
}

func signum(x float32) float32 {
	if x < 0 {
		return -1
	}
	return 1
}
