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

package sparse

import (
	"testing"

	"github.com/dakom/entt/algo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setOf(t *testing.T, entities ...Entity) *Set {
	t.Helper()
	s := New(len(entities))
	for _, e := range entities {
		require.True(t, s.Emplace(e))
	}
	return s
}

func denseOf(s *Set) []Entity {
	var out []Entity
	s.Each(func(e Entity) { out = append(out, e) })
	return out
}

func Test_EmplaceContains(t *testing.T) {
	assert := assert.New(t)

	s := New(4)
	assert.True(s.Emplace(3))
	assert.True(s.Emplace(0))
	assert.False(s.Emplace(3), "duplicate emplace")
	assert.False(s.Emplace(Null), "null handle")

	assert.Equal(2, s.Len())
	assert.True(s.Contains(3))
	assert.True(s.Contains(0))
	assert.False(s.Contains(7))
	assert.Equal(0, s.Index(3))
	assert.Equal(1, s.Index(0))
	assert.Equal(-1, s.Index(7))
}

func Test_RemoveSwapAndPop(t *testing.T) {
	assert := assert.New(t)

	s := setOf(t, 5, 9, 2)
	assert.True(s.Remove(5))
	assert.False(s.Remove(5), "double remove")

	assert.Equal(2, s.Len())
	assert.False(s.Contains(5))
	// Last entity swapped into the vacated slot.
	assert.Equal([]Entity{2, 9}, denseOf(s))
	assert.Equal(0, s.Index(2))
	assert.Equal(1, s.Index(9))
}

func Test_SortStrategiesInterchangeable(t *testing.T) {
	testCases := []struct {
		name     string
		strategy algo.SortFunc[Entity]
	}{
		{name: "insertion", strategy: algo.InsertionSort[Entity]},
		{
			name: "std",
			strategy: func(data []Entity, less algo.Less[Entity]) {
				algo.StdSort(data, less)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			s := setOf(t, 40, 7, 19, 0, 33)
			s.Sort(algo.Ascending[Entity](), tc.strategy)

			assert.Equal([]Entity{0, 7, 19, 33, 40}, denseOf(s))
			for i, e := range denseOf(s) {
				assert.Equal(i, s.Index(e), "sparse index repaired")
			}
		})
	}
}

func Test_SortByKey(t *testing.T) {
	assert := assert.New(t)

	// Sort handles by an external component value, the way storage engines
	// order entities by a field they do not contain.
	weight := map[Entity]uint64{4: 300, 11: 5, 2: 120, 30: 5}

	s := setOf(t, 4, 11, 2, 30)
	radix, err := algo.NewRadix[Entity](8, 16)
	require.NoError(t, err)

	s.SortByKey(radix, func(e Entity) uint64 { return weight[e] })

	// Stable: 11 precedes 30 (equal weight, original dense order kept).
	assert.Equal([]Entity{11, 30, 2, 4}, denseOf(s))
	assert.Equal(0, s.Index(11))
	assert.Equal(3, s.Index(4))
}

func Test_SortEmptySet(t *testing.T) {
	s := New(0)
	s.Sort(algo.Ascending[Entity](), algo.InsertionSort[Entity])
	assert.Equal(t, 0, s.Len())
}
