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
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleYAML = `
- title: Rover
  description: Six wheeled rover
  tech: [Go, LoRa]
  categories: [Hardware, iot, IoT, All, Robotics]
  patents: ["1", "2"]
  github: https://example.com/rover
- title: Untagged
`

const sampleJSONC = `[
  // comments and trailing commas are accepted
  {
    "title": "Rover",
    "description": "Six wheeled rover",
    "tech": ["Go", "LoRa"],
    "categories": ["Hardware", "iot", "IoT", "All", "Robotics"],
    "patents": ["1", "2"],
    "github": "https://example.com/rover",
  },
  {"title": "Untagged"},
]`

func TestParseFormats(t *testing.T) {
	want := []Item{
		{
			Title:        "Rover",
			Description:  "Six wheeled rover",
			Technologies: []string{"Go", "LoRa"},
			Categories:   []Category{Hardware, IoT},
			OtherTags:    []string{"All", "Robotics"},
			Patents:      []string{"1", "2"},
			Link:         "https://example.com/rover",
		},
		{Title: "Untagged"},
	}

	for name, tc := range map[string]struct {
		data   string
		format Format
	}{
		"yaml":  {sampleYAML, FormatYAML},
		"jsonc": {sampleJSONC, FormatJSON},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := Parse([]byte(tc.data), tc.format)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Parse mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte("- title: [unclosed"), FormatYAML); err == nil {
		t.Errorf("Parse(bad yaml) should fail")
	}
	if _, err := Parse([]byte(`[{"title": }]`), FormatJSON); err == nil {
		t.Errorf("Parse(bad json) should fail")
	}
	if _, err := Parse(nil, Format(9)); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Parse(unknown format) error = %v; want ErrUnsupportedFormat", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"projects.yaml", FormatYAML, false},
		{"projects.YML", FormatYAML, false},
		{"projects.json", FormatJSON, false},
		{"projects.jsonc", FormatJSON, false},
		{"projects.hujson", FormatJSON, false},
		{"projects.toml", 0, true},
		{"projects", 0, true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatFromPath(%q) error = %v; wantErr %v", tt.path, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("FormatFromPath(%q) = %v; want %v", tt.path, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.jsonc")
	if err := os.WriteFile(path, []byte(sampleJSONC), 0644); err != nil {
		t.Fatal(err)
	}

	items, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q): %v", path, err)
	}
	if diff := cmp.Diff([]string{"Rover", "Untagged"}, titles(items)); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Errorf("Load(missing) should fail")
	}
	if _, err := Load(filepath.Join(dir, "catalog.txt")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Load(.txt) error = %v; want ErrUnsupportedFormat", err)
	}

	builtin, err := Load("")
	if err != nil || len(builtin) != 6 {
		t.Errorf("Load(\"\") = %d items, %v; want the 6 built-in items", len(builtin), err)
	}
}

func TestBuiltinOptionalFields(t *testing.T) {
	items := Builtin()
	byTitle := make(map[string]Item, len(items))
	for _, it := range items {
		byTitle[it.Title] = it
	}

	glove := byTitle["Tactile Glove for Deafblind Communication"]
	if len(glove.Awards) != 2 || glove.Patent == "" {
		t.Errorf("glove awards/patent not loaded: %+v", glove)
	}
	plant := byTitle["Plant Water Stress Detector"]
	if diff := cmp.Diff([]string{"202511006952", "202511006951"}, plant.Patents); diff != "" {
		t.Errorf("plant patents mismatch (-want +got):\n%s", diff)
	}
	if byTitle["Laser Warning System for T-95 Tank"].Collaboration == "" {
		t.Errorf("laser collaboration not loaded")
	}
	if byTitle["Anti-GPS Jamming System for Drones"].Showcase == "" {
		t.Errorf("anti-gps showcase not loaded")
	}
	if byTitle["Mesh Network for Remote Areas"].Awards != nil {
		t.Errorf("absent awards should stay nil")
	}
}
