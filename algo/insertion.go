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

// InsertionSort reorders data ascending under less, in place and stably.
//
// Each element is held aside while greater predecessors shift right one
// slot, then dropped into the gap. Equal elements never shift (less is
// strict), so their relative order is preserved. O(n) on already-sorted
// input, O(n²) otherwise; no allocation.
func InsertionSort[T any](data []T, less Less[T]) {
	for i := 1; i < len(data); i++ {
		v := data[i]
		j := i
		for ; j > 0 && less(v, data[j-1]); j-- {
			data[j] = data[j-1]
		}
		data[j] = v
	}
}
