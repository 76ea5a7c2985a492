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

// Item is one catalog entry. Items are built once at load time and must not be
// mutated afterwards; slices are shared between every filtered view.
type Item struct {
	Title        string `validate:"required"`
	Description  string `validate:"required"`
	Technologies []string
	Categories   []Category `validate:"min=1"`

	// OtherTags holds input tags outside the enumeration. They are searchable
	// text but never match a category filter and are never counted.
	OtherTags []string

	Awards        []string
	Patent        string
	Patents       []string
	Collaboration string
	Showcase      string
	Link          string `validate:"omitempty,url"`
	Image         string
}

// HasCategory reports whether the item carries c. The wildcard is never carried.
func (it Item) HasCategory(c Category) bool {
	for _, cat := range it.Categories {
		if cat == c {
			return true
		}
	}
	return false
}

// Tags returns every tag of the item as text, enumerated categories first.
func (it Item) Tags() []string {
	tags := make([]string, 0, len(it.Categories)+len(it.OtherTags))
	for _, cat := range it.Categories {
		tags = append(tags, cat.String())
	}
	return append(tags, it.OtherTags...)
}

// record is the on-disk shape of an Item, shared by the YAML and JSON loaders.
type record struct {
	Title         string   `yaml:"title" json:"title"`
	Description   string   `yaml:"description" json:"description"`
	Tech          []string `yaml:"tech" json:"tech"`
	Categories    []string `yaml:"categories" json:"categories"`
	Awards        []string `yaml:"awards,omitempty" json:"awards,omitempty"`
	Patent        string   `yaml:"patent,omitempty" json:"patent,omitempty"`
	Patents       []string `yaml:"patents,omitempty" json:"patents,omitempty"`
	Collaboration string   `yaml:"collaboration,omitempty" json:"collaboration,omitempty"`
	Showcase      string   `yaml:"showcase,omitempty" json:"showcase,omitempty"`
	Link          string   `yaml:"github,omitempty" json:"github,omitempty"`
	Image         string   `yaml:"image,omitempty" json:"image,omitempty"`
}

func newItem(r record) Item {
	it := Item{
		Title:         r.Title,
		Description:   r.Description,
		Technologies:  r.Tech,
		Awards:        r.Awards,
		Patent:        r.Patent,
		Patents:       r.Patents,
		Collaboration: r.Collaboration,
		Showcase:      r.Showcase,
		Link:          r.Link,
		Image:         r.Image,
	}

	seen := make(map[string]bool, len(r.Categories))
	for _, tag := range r.Categories {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[strings.ToLower(tag)] {
			continue
		}
		seen[strings.ToLower(tag)] = true

		cat, err := ParseCategory(tag)
		if err != nil || !cat.Concrete() {
			it.OtherTags = append(it.OtherTags, tag)
			continue
		}
		it.Categories = append(it.Categories, cat)
	}
	return it
}
