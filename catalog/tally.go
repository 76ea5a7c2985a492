// Copyright 2025 Naren Yellavula
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

package catalog

// Counts maps every Category to the number of items that would remain if that
// category alone were selected with an empty query. Being an array indexed by
// Category, every member of the enumeration is always present.
type Counts [categoryCount]int

// Tally counts items per category. The wildcard entry is the total item count.
func Tally(items []Item) Counts {
	var counts Counts
	for _, it := range items {
		for _, cat := range it.Categories {
			if cat.Concrete() {
				counts[cat]++
			}
		}
	}
	counts[All] = len(items)
	return counts
}

// Of returns the count for c, or 0 for values outside the enumeration.
func (c Counts) Of(cat Category) int {
	if !cat.Valid() {
		return 0
	}
	return c[cat]
}

func (c Counts) Total() int {
	return c[All]
}
