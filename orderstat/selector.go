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
	"errors"
	"fmt"
)

var (
	ErrInvalidSampleThreshold = errors.New("sample threshold must be at least 1")
	ErrInvalidSampleScale     = errors.New("sample scale must be in (0, 1]")
)

// Selector runs the selection algorithms with a fixed comparator and tuning.
// The package level functions use the default tuning; a Selector is only
// needed to experiment with it. Tuning affects speed, never results.
type Selector[T any] struct {
	compare func(a, b T) int
	params  samplingParams
}

type selectorOptions struct {
	threshold int
	scale     float32
}

type SelectorOptionFunc func(*selectorOptions)

// WithSampleThreshold sets the range length above which a sample is selected
// first to narrow the range (defaults to 600).
func WithSampleThreshold(threshold int) SelectorOptionFunc {
	return func(opts *selectorOptions) {
		opts.threshold = threshold
	}
}

// WithSampleScale sets the scale of the sampled window (defaults to 0.5).
// Larger values give wider windows that are more likely to hold the target.
func WithSampleScale(scale float32) SelectorOptionFunc {
	return func(opts *selectorOptions) {
		opts.scale = scale
	}
}

// NewSelector creates a selector ordering items with compare.
func NewSelector[T any](compare func(a, b T) int, opts ...SelectorOptionFunc) (*Selector[T], error) {
	if compare == nil {
		return nil, errors.New("compare function must not be nil")
	}
	options := &selectorOptions{
		threshold: DefaultSampleThreshold,
		scale:     DefaultSampleScale,
	}
	for _, opt := range opts {
		opt(options)
	}

	if options.threshold < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleThreshold, options.threshold)
	}
	if !(options.scale > 0 && options.scale <= 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleScale, options.scale)
	}

	return &Selector[T]{
		compare: compare,
		params: samplingParams{
			threshold: options.threshold,
			scale:     options.scale,
		},
	}, nil
}

// SampleThreshold returns the configured sampling threshold.
func (s *Selector[T]) SampleThreshold() int {
	return s.params.threshold
}

// SampleScale returns the configured sampling scale.
func (s *Selector[T]) SampleScale() float32 {
	return s.params.scale
}

// Kth is KthFunc with the selector's comparator and tuning.
func (s *Selector[T]) Kth(arr []T, k int) T {
	return kth(arr, k, s.compare, s.params)
}

// MedianOfMedians is MedianOfMediansFunc with the selector's comparator and tuning.
func (s *Selector[T]) MedianOfMedians(arr []T) (int, T) {
	return medianOfMediansChecked(arr, s.compare, s.params)
}

// Quantile is QuantileFunc with the selector's comparator and tuning.
func (s *Selector[T]) Quantile(arr []T, rank float64, inclusive bool) (T, error) {
	return quantile(arr, rank, inclusive, s.compare, s.params)
}
