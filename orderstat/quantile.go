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
)

const tailRoundingFactor = 1e7

// Quantile returns the exact quantile of arr at the given normalized rank,
// selecting it in place.
//
// With inclusive set, the result is the smallest item q such that the fraction
// of items <= q is at least rank, the item at ceil(rank*n)-1 in sorted order.
// Otherwise it is the item at floor(rank*n). Positions are clamped to the slice.
//
// Unlike Kth, invalid arguments are returned as errors: ErrEmptyInput for an
// empty slice and ErrRankOutOfBounds for a rank outside [0, 1].
func Quantile[T cmp.Ordered](arr []T, rank float64, inclusive bool) (T, error) {
	return quantile(arr, rank, inclusive, cmp.Compare[T], defaultSampling)
}

// QuantileFunc is Quantile with the order defined by compare.
func QuantileFunc[T any](arr []T, rank float64, inclusive bool, compare func(a, b T) int) (T, error) {
	return quantile(arr, rank, inclusive, compare, defaultSampling)
}

func quantile[T any](arr []T, rank float64, inclusive bool, compare func(a, b T) int, p samplingParams) (T, error) {
	var zero T
	if len(arr) == 0 {
		return zero, fmt.Errorf("%w: quantile of an empty slice", ErrEmptyInput)
	}
	if rank < 0 || rank > 1 || math.IsNaN(rank) {
		return zero, fmt.Errorf("%w: %v", ErrRankOutOfBounds, rank)
	}
	k := quantileIndex(rank, len(arr), inclusive)
	floydRivestSelect(arr, k, compare, p)
	return arr[k], nil
}

// quantileIndex maps a normalized rank to a zero based position.
func quantileIndex(rank float64, n int, inclusive bool) int {
	naturalRank := rank * float64(n)
	if n <= tailRoundingFactor {
		naturalRank = math.Round(naturalRank*tailRoundingFactor) / tailRoundingFactor
	}
	var idx int
	if inclusive {
		idx = int(math.Ceil(naturalRank)) - 1
	} else {
		idx = int(math.Floor(naturalRank))
	}
	return min(max(idx, 0), n-1)
}
