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

package main

import (
	"fmt"
	"strings"

	"github.com/cybrota/showcase/catalog"
	"github.com/cybrota/showcase/filter"
)

// Presentation is one of the mutually exclusive ways the result area is drawn.
type Presentation int

const (
	PresentLoading Presentation = iota
	PresentEmpty
	PresentGrid
)

func (p Presentation) String() string {
	switch p {
	case PresentLoading:
		return "loading"
	case PresentEmpty:
		return "empty"
	default:
		return "grid"
	}
}

// Present chooses how to draw r: loading while a recomputation is pending,
// otherwise empty or populated depending on the settled items.
func Present(r filter.Result) Presentation {
	switch {
	case r.Computing:
		return PresentLoading
	case len(r.Items) == 0:
		return PresentEmpty
	default:
		return PresentGrid
	}
}

// filterStats describes how much of the catalog is visible. It is only shown
// while some filter is active.
func filterStats(total, shown int, state filter.State) (string, bool) {
	if !state.Active() {
		return "", false
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Showing %d of %d projects", shown, total)
	if state.Category != catalog.All {
		fmt.Fprintf(&b, " in %s", state.Category)
	}
	if state.Query != "" {
		b.WriteString(" matching search")
	}
	return b.String(), true
}

// categoryLabel renders a category button caption with its count.
func categoryLabel(c catalog.Category, counts catalog.Counts) string {
	return fmt.Sprintf("%s (%d)", c, counts.Of(c))
}

// itemMarkdown renders the detail card of a project.
func itemMarkdown(it catalog.Item) string {
	var content strings.Builder
	content.WriteString(fmt.Sprintf("# %s\n\n", it.Title))

	if it.Description != "" {
		content.WriteString(it.Description + "\n\n")
	}

	if tags := it.Tags(); len(tags) > 0 {
		badges := make([]string, len(tags))
		for i, tag := range tags {
			badges[i] = fmt.Sprintf("`%d:%s`", i+1, tag)
		}
		content.WriteString(fmt.Sprintf("**Categories:** %s\n\n", strings.Join(badges, " ")))
	}

	if len(it.Technologies) > 0 {
		content.WriteString("## Technologies\n\n")
		for _, tech := range it.Technologies {
			content.WriteString(fmt.Sprintf("* %s\n", tech))
		}
		content.WriteString("\n")
	}

	if len(it.Awards) > 0 {
		content.WriteString("**Awards:**\n\n")
		for _, award := range it.Awards {
			content.WriteString(fmt.Sprintf("* 🏆 %s\n", award))
		}
		content.WriteString("\n")
	}

	if it.Patent != "" {
		content.WriteString(fmt.Sprintf("**Patent:** %s\n\n", it.Patent))
	}

	if len(it.Patents) > 0 {
		content.WriteString(fmt.Sprintf("**Patents:** %s\n\n", strings.Join(it.Patents, ", ")))
	}

	if it.Collaboration != "" {
		content.WriteString(fmt.Sprintf("**Collaboration:** %s\n\n", it.Collaboration))
	}

	if it.Showcase != "" {
		content.WriteString(fmt.Sprintf("**Showcase:** %s\n\n", it.Showcase))
	}

	if it.Link != "" {
		content.WriteString(fmt.Sprintf("**View Project:** %s\n", it.Link))
	}

	return content.String()
}

// itemLine is the one-line form used by the plain list output.
func itemLine(it catalog.Item) string {
	return fmt.Sprintf("%s [%s] %s", it.Title, strings.Join(it.Tags(), ", "), strings.Join(it.Technologies, ", "))
}
