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

import "strings"

// Matches reports whether it passes both the category and the query test.
// The query is a case-insensitive substring match against the title,
// description, technologies and tags of the item.
func Matches(it Item, category Category, query string) bool {
	return matchCategory(it, category) && matchQuery(it, strings.ToLower(query))
}

// Filter returns the items matching category and query in dataset order.
// The result is never nil.
func Filter(items []Item, category Category, query string) []Item {
	lowered := strings.ToLower(query)
	result := make([]Item, 0, len(items))
	for _, it := range items {
		if matchCategory(it, category) && matchQuery(it, lowered) {
			result = append(result, it)
		}
	}
	return result
}

func matchCategory(it Item, category Category) bool {
	return category == All || it.HasCategory(category)
}

// matchQuery expects an already lower-cased query.
func matchQuery(it Item, query string) bool {
	if query == "" {
		return true
	}
	if containsFold(it.Title, query) || containsFold(it.Description, query) {
		return true
	}
	for _, tech := range it.Technologies {
		if containsFold(tech, query) {
			return true
		}
	}
	for _, tag := range it.Tags() {
		if containsFold(tag, query) {
			return true
		}
	}
	return false
}

func containsFold(s, lowered string) bool {
	return strings.Contains(strings.ToLower(s), lowered)
}
