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
	"encoding/json"
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/pflag"

	"github.com/cybrota/showcase/catalog"
	"github.com/cybrota/showcase/filter"
)

type listOptions struct {
	Category string
	Query    string
	JSON     bool
}

func addCatalogFlag(fs *pflag.FlagSet, path *string) {
	fs.StringVar(path, "catalog", "", "catalog file (.yaml, .yml, .json, .jsonc); defaults to catalog.path or the built-in projects")
}

func addListFlags(fs *pflag.FlagSet, opts *listOptions) {
	fs.StringVarP(&opts.Category, "category", "c", catalog.All.String(), "only show projects in this category")
	fs.StringVarP(&opts.Query, "query", "q", "", "case-insensitive text to search for")
	fs.BoolVar(&opts.JSON, "json", false, "print matching projects as JSON")
}

// loadItems resolves the catalog from the flag, then the config, then the built-in set
func loadItems(flagPath string, config *Config) ([]catalog.Item, error) {
	path := flagPath
	if path == "" {
		path = config.Catalog.Path
	}
	return catalog.Load(path)
}

// listProjects prints the projects matching opts, in catalog order
func listProjects(w io.Writer, items []catalog.Item, opts listOptions) error {
	category, err := catalog.ParseCategory(opts.Category)
	if err != nil {
		return err
	}

	matches := catalog.Filter(items, category, opts.Query)

	if opts.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(matches)
	}

	if len(matches) == 0 {
		fmt.Fprintf(w, "%sNo projects found.%s Try adjusting your search or filter.\n", Warning, Reset)
		return nil
	}

	for _, it := range matches {
		fmt.Fprintln(w, itemLine(it))
	}
	if stats, ok := filterStats(len(items), len(matches), filter.State{Category: category, Query: opts.Query}); ok {
		fmt.Fprintf(w, "\n%s%s%s\n", Info, stats, Reset)
	}
	return nil
}

func printCounts(w io.Writer, items []catalog.Item) {
	counts := catalog.Tally(items)
	for _, c := range catalog.Categories() {
		fmt.Fprintf(w, "%-12s %d\n", c, counts.Of(c))
	}
}

// validateCatalog prints every problem found and returns how many there were
func validateCatalog(w io.Writer, items []catalog.Item, showProgress bool) int {
	v := catalog.NewValidator()

	if showProgress {
		bar := progressbar.NewOptions(len(items),
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("🔎 Checking projects..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(w)
			}),
		)
		v.OnItem = func() { _ = bar.Add(1) }
	}

	problems := v.Check(items)
	for _, p := range problems {
		fmt.Fprintf(w, "%s✗%s %s\n", Error, Reset, p)
	}

	if len(problems) == 0 {
		fmt.Fprintf(w, "%s✓%s %d projects, no problems found\n", Green, Reset, len(items))
	}
	return len(problems)
}
