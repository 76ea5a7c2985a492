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

import (
	"errors"
	"fmt"
	"strings"
)

// Category is one tag of the closed project category enumeration.
// All is the wildcard used only as a filter selector; it is never attached to an Item.
type Category int

const (
	All Category = iota
	IoT
	Embedded
	Military
	Agriculture
	Hardware
	Software

	categoryCount
)

var ErrUnknownCategory = errors.New("unknown category")

var categoryNames = [categoryCount]string{
	All:         "All",
	IoT:         "IoT",
	Embedded:    "Embedded",
	Military:    "Military",
	Agriculture: "Agriculture",
	Hardware:    "Hardware",
	Software:    "Software",
}

// Categories returns every category in display order, wildcard first.
func Categories() []Category {
	cats := make([]Category, categoryCount)
	for i := range cats {
		cats[i] = Category(i)
	}
	return cats
}

func (c Category) Valid() bool {
	return c >= All && c < categoryCount
}

// Concrete reports whether c may be attached to an Item.
func (c Category) Concrete() bool {
	return c.Valid() && c != All
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Next cycles through the enumeration, wrapping back to All.
func (c Category) Next() Category {
	return (c + 1) % categoryCount
}

// Prev cycles backwards through the enumeration.
func (c Category) Prev() Category {
	return (c + categoryCount - 1) % categoryCount
}

// ParseCategory matches name case-insensitively against the enumeration.
func ParseCategory(name string) (Category, error) {
	name = strings.TrimSpace(name)
	for i, n := range categoryNames {
		if strings.EqualFold(n, name) {
			return Category(i), nil
		}
	}
	return All, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
