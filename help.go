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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Showcase %s**

Browse a catalog of projects from the terminal. Pick a category, type a few letters,
and the matching projects appear as soon as you stop typing.

Built with Go %s

# 1. Features
* Category buttons with live project counts
* Case-insensitive search across titles, descriptions, technologies and categories
* Project details with awards, patents, collaborations and showcases
* Copy a project link to the clipboard

# 2. Keys
* **tab** switch focus between search, projects and details
* **ctrl+t / ctrl+b** next / previous category
* **1-9** on a project: filter by its n-th category badge
* **ctrl+r** clear all filters
* **enter** on a project: copy its link

# 3. Catalogs
* Without configuration the built-in projects are shown
* Point *catalog.path* in ~/.showcase.yaml (or pass --catalog) at a YAML or JSON file

# Please be aware
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' to be installed

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
