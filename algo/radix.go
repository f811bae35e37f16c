// Copyright 2026 entt-go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package algo

import "fmt"

// maxPassBits caps the per-pass bucket table at 2^16 entries.
const maxPassBits = 16

// RadixSort is a stable LSD radix sort engine over keyBits-bit unsigned
// keys, processed passBits bits per pass from the least significant window.
//
// An engine is stateless and safe for concurrent use; each Sort call owns
// its auxiliary buffer. Construct with NewRadix or MustRadix.
type RadixSort[T any] struct {
	passBits uint
	keyBits  uint
}

// NewRadix returns a radix sort engine for T with the given pass width and
// total key width, in bits. The widths are validated here, once: an engine
// for which keyBits is not a positive multiple of passBits cannot be
// constructed, so (*RadixSort).Sort never revisits the contract.
func NewRadix[T any](passBits, keyBits uint) (*RadixSort[T], error) {
	switch {
	case passBits == 0 || passBits > maxPassBits:
		return nil, fmt.Errorf("algo: pass width %d out of range [1, %d]", passBits, maxPassBits)
	case keyBits == 0 || keyBits > 64:
		return nil, fmt.Errorf("algo: key width %d out of range [1, 64]", keyBits)
	case keyBits%passBits != 0:
		return nil, fmt.Errorf("algo: pass width %d does not divide key width %d", passBits, keyBits)
	}
	return &RadixSort[T]{passBits: passBits, keyBits: keyBits}, nil
}

// MustRadix is like NewRadix but panics on invalid widths. Intended for
// package-level engine variables, where a bad parameterization should fail
// at program initialization.
func MustRadix[T any](passBits, keyBits uint) *RadixSort[T] {
	r, err := NewRadix[T](passBits, keyBits)
	if err != nil {
		panic(err)
	}
	return r
}

// Passes returns the number of bucketing passes a Sort call performs.
func (r *RadixSort[T]) Passes() int {
	return int(r.keyBits / r.passBits)
}

// Sort reorders data ascending by the key returned by key, in place and
// stably: elements with equal keys keep their original relative order.
//
// Passes alternate between data and one auxiliary buffer of equal length;
// after an odd number of passes the result is copied back into data. Empty
// and single-element slices return immediately without allocating. A panic
// raised by key propagates unmodified and leaves data partially reordered.
func (r *RadixSort[T]) Sort(data []T, key Key[T]) {
	if len(data) < 2 {
		return
	}

	aux := make([]T, len(data))
	counts := make([]int, 1<<r.passBits)
	mask := uint64(1)<<r.passBits - 1
	passes := r.Passes()

	src, dst := data, aux
	for pass := 0; pass < passes; pass++ {
		r.bucketize(src, dst, counts, key, uint(pass)*r.passBits, mask)
		src, dst = dst, src
	}

	if passes&1 == 1 {
		copy(data, aux)
	}
}

// bucketize performs one stable counting pass: tally the windowed key of
// every source element, turn the tallies into starting write offsets via an
// exclusive prefix sum, then re-scan the source in order and scatter into
// dst. Scanning in source order with monotonically advancing offsets is
// what makes the pass, and therefore the whole sort, stable.
func (r *RadixSort[T]) bucketize(src, dst []T, counts []int, key Key[T], shift uint, mask uint64) {
	clear(counts)
	for _, v := range src {
		counts[(key(v)>>shift)&mask]++
	}

	total := 0
	for i, c := range counts {
		counts[i] = total
		total += c
	}

	for _, v := range src {
		bucket := (key(v) >> shift) & mask
		dst[counts[bucket]] = v
		counts[bucket]++
	}
}
