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

// Package algo provides interchangeable in-place sort strategies for
// in-memory slices. It corresponds to EnTT's entt/core/algorithm.hpp.
//
// Three strategies share one shape: given a slice and a comparator or key
// getter, reorder the slice ascending, in place.
//
//   - StdSort wraps an external general-purpose comparison sort. No
//     stability guarantee; O(n log n) on average.
//   - InsertionSort is a stable O(n²) sort with no dependencies, useful for
//     small or nearly-sorted ranges.
//   - RadixSort is a stable multi-pass LSD radix sort over unsigned keys
//     produced by a caller-supplied getter.
//
// Higher-level container code (see the sparse package) treats any of these
// as a drop-in callable via the SortFunc seam.
//
// # Example Usage
//
//	import "github.com/dakom/entt/algo"
//
//	// Comparison sorts
//	algo.InsertionSort(data, algo.Ascending[int]())
//	algo.StdSort(data, func(a, b Item) bool { return a.Weight < b.Weight })
//
//	// Radix sort: 32-bit keys, 8 bits per pass
//	radix := algo.MustRadix[uint32](8, 32)
//	radix.Sort(keys, algo.Identity[uint32])
package algo
