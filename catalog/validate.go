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

	"github.com/go-playground/validator/v10"
	"github.com/willf/bloom"
)

const (
	// Sized for hand-curated catalogs; false positives are confirmed exactly.
	titleFilterCapacity  = 4096
	titleFilterFalseRate = 0.001
)

// Problem is one lint finding about a dataset entry.
type Problem struct {
	Index   int
	Title   string
	Field   string
	Message string
}

func (p Problem) String() string {
	name := p.Title
	if name == "" {
		name = fmt.Sprintf("#%d", p.Index+1)
	}
	return fmt.Sprintf("%s: %s: %s", name, p.Field, p.Message)
}

// Validator lints datasets. Loading never rejects an entry; Validator reports
// what a curator should fix.
type Validator struct {
	validate *validator.Validate

	// OnItem, when set, is called once per checked item.
	OnItem func()
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Check returns every problem found in items, in dataset order.
func (v *Validator) Check(items []Item) []Problem {
	var problems []Problem

	titles := bloom.NewWithEstimates(titleFilterCapacity, titleFilterFalseRate)
	seen := make(map[string]int, len(items))

	for i, it := range items {
		problems = append(problems, v.checkFields(i, it)...)

		for _, tag := range it.OtherTags {
			problems = append(problems, Problem{
				Index:   i,
				Title:   it.Title,
				Field:   "categories",
				Message: fmt.Sprintf("unknown category %q is ignored by filters", tag),
			})
		}

		if it.Title != "" {
			key := strings.ToLower(it.Title)
			if titles.TestAndAddString(key) {
				if first, dup := seen[key]; dup {
					problems = append(problems, Problem{
						Index:   i,
						Title:   it.Title,
						Field:   "title",
						Message: fmt.Sprintf("duplicate of entry #%d", first+1),
					})
				}
			}
			if _, dup := seen[key]; !dup {
				seen[key] = i
			}
		}

		if v.OnItem != nil {
			v.OnItem()
		}
	}

	return problems
}

func (v *Validator) checkFields(index int, it Item) []Problem {
	err := v.validate.Struct(it)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []Problem{{Index: index, Title: it.Title, Field: "item", Message: err.Error()}}
	}

	problems := make([]Problem, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, Problem{
			Index:   index,
			Title:   it.Title,
			Field:   strings.ToLower(fe.Field()),
			Message: describeRule(fe),
		})
	}
	return problems
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "needs at least one known category"
	case "url":
		return fmt.Sprintf("%q is not a valid URL", fe.Value())
	default:
		return fmt.Sprintf("fails %q", fe.Tag())
	}
}
