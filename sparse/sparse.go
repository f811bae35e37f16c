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

// Package sparse implements a sparse set of entity handles, the packed
// container that entity-storage engines sort by arbitrary numeric keys.
//
// The set keeps entities in a packed dense slice for iteration, with a
// sparse index mapping each entity to its dense position. Sorting reorders
// only the dense slice through one of the algo strategies, then repairs the
// index.
package sparse

import (
	"math"

	"github.com/dakom/entt/algo"
)

// Entity is an opaque storage handle.
type Entity uint32

// Null is the reserved invalid handle.
const Null Entity = math.MaxUint32

const absent = -1

// Set is a sparse set of entities. The zero value is ready to use.
//
// A Set is not safe for concurrent mutation.
type Set struct {
	dense  []Entity
	sparse []int
}

// New returns an empty set with capacity for n entities in the dense array.
func New(n int) *Set {
	return &Set{dense: make([]Entity, 0, n)}
}

// Len returns the number of entities in the set.
func (s *Set) Len() int {
	return len(s.dense)
}

// Contains reports whether e is in the set.
func (s *Set) Contains(e Entity) bool {
	return int(e) < len(s.sparse) && s.sparse[e] != absent
}

// Index returns the dense position of e, or -1 if e is not in the set.
func (s *Set) Index(e Entity) int {
	if int(e) >= len(s.sparse) {
		return absent
	}
	return s.sparse[e]
}

// Emplace adds e to the set. Adding an entity that is already present, or
// the Null handle, is a no-op returning false.
func (s *Set) Emplace(e Entity) bool {
	if e == Null || s.Contains(e) {
		return false
	}
	if n := int(e) + 1; n > len(s.sparse) {
		grown := make([]int, n)
		copy(grown, s.sparse)
		for i := len(s.sparse); i < n; i++ {
			grown[i] = absent
		}
		s.sparse = grown
	}
	s.sparse[e] = len(s.dense)
	s.dense = append(s.dense, e)
	return true
}

// Remove deletes e via swap-and-pop, keeping the dense slice packed.
// Removing an absent entity is a no-op returning false.
func (s *Set) Remove(e Entity) bool {
	if !s.Contains(e) {
		return false
	}
	pos := s.sparse[e]
	last := s.dense[len(s.dense)-1]
	s.dense[pos] = last
	s.sparse[last] = pos
	s.dense = s.dense[:len(s.dense)-1]
	s.sparse[e] = absent
	return true
}

// Each calls f for every entity in dense order.
func (s *Set) Each(f func(Entity)) {
	for _, e := range s.dense {
		f(e)
	}
}

// Sort reorders the dense array with the given strategy and comparator,
// then repairs the sparse index. Any algo.SortFunc works: StdSort,
// InsertionSort, or a bound radix engine.
func (s *Set) Sort(less algo.Less[Entity], strategy algo.SortFunc[Entity]) {
	strategy(s.dense, less)
	s.reindex()
}

// SortByKey reorders the dense array by the key returned by key, using the
// given radix engine, then repairs the sparse index.
func (s *Set) SortByKey(r *algo.RadixSort[Entity], key algo.Key[Entity]) {
	r.Sort(s.dense, key)
	s.reindex()
}

func (s *Set) reindex() {
	for i, e := range s.dense {
		s.sparse[e] = i
	}
}
