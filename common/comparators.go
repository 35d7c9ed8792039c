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

package common

import (
	"cmp"
	"strings"

	"golang.org/x/exp/constraints"
)

// OrderedComparator returns the natural order of T, or its reverse.
func OrderedComparator[T cmp.Ordered](reverseOrder bool) CompareFn[T] {
	return func(a, b T) int {
		if reverseOrder {
			return cmp.Compare(b, a)
		}
		return cmp.Compare(a, b)
	}
}

// FloatComparator orders floats with every NaN before -Inf and equal to each
// other, which keeps the order consistent on inputs containing NaN.
// The < operator alone is not a valid comparator for such inputs.
func FloatComparator[F constraints.Float](reverseOrder bool) CompareFn[F] {
	return func(a, b F) int {
		if reverseOrder {
			a, b = b, a
		}
		return compareFloat(a, b)
	}
}

func compareFloat[F constraints.Float](a, b F) int {
	aNaN := a != a
	bNaN := b != b
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// StringComparator compares strings, optionally ignoring ASCII and Unicode case.
func StringComparator(ignoreCase bool) CompareFn[string] {
	return func(a, b string) int {
		if ignoreCase {
			return strings.Compare(strings.ToLower(a), strings.ToLower(b))
		}
		return strings.Compare(a, b)
	}
}

// By orders items of T by a key extracted from each of them.
func By[T any, K cmp.Ordered](key func(T) K) CompareFn[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}
