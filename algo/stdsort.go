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

import (
	"sort"

	"github.com/emirpasic/gods/utils"
)

// StdSort reorders data ascending under less by delegating to an external
// general-purpose comparison sort. The default primitive is sort.Slice;
// passing a SortFunc in using substitutes it, the way the original forwards
// extra arguments (an execution policy) to the wrapped sort.
//
// Stability is not guaranteed: it is whatever the chosen primitive provides.
// Complexity and failure behavior likewise belong to the primitive; a panic
// raised by less propagates unmodified.
func StdSort[T any](data []T, less Less[T], using ...SortFunc[T]) {
	if len(using) > 0 {
		using[0](data, less)
		return
	}
	sort.Slice(data, func(i, j int) bool { return less(data[i], data[j]) })
}

// AnySort is the same adapter for pre-generics callers that hold boxed
// values and a gods comparator. It delegates to utils.Sort.
func AnySort(values []interface{}, comparator utils.Comparator) {
	utils.Sort(values, comparator)
}
