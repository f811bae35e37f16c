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

import "cmp"

// UnsignedInts is a constraint for unsigned integer types that can act
// directly as radix keys.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Less reports whether a orders before b. It must be a strict weak
// ordering: Less(a, a) is false, and equal elements compare false both ways.
type Less[T any] func(a, b T) bool

// Key extracts the unsigned sort key of an element. A key wider than the
// engine's configured key width is truncated to the low bits.
type Key[T any] func(T) uint64

// SortFunc is the signature of a general-purpose comparison sort primitive:
// reorder data in place into ascending order under less.
//
// StdSort, InsertionSort, and a bound (*RadixSort).Sort all satisfy or adapt
// to this shape, so callers can swap strategies without touching call sites.
type SortFunc[T any] func(data []T, less Less[T])

// Ascending returns the default "<" comparator for ordered element types.
func Ascending[T cmp.Ordered]() Less[T] {
	return func(a, b T) bool { return a < b }
}

// Identity interprets an unsigned element directly as its own sort key.
// It is the default getter for slices of unsigned integers:
//
//	radix.Sort(handles, algo.Identity[uint32])
func Identity[T UnsignedInts](v T) uint64 {
	return uint64(v)
}
