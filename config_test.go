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
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigFromMissingFile(t *testing.T) {
	cfg, err := loadConfigFrom(filepath.Join(t.TempDir(), configFileName))
	if err != nil {
		t.Fatalf("loadConfigFrom(missing): %v", err)
	}
	if *cfg != defaultConfig {
		t.Errorf("loadConfigFrom(missing) = %+v; want defaults %+v", *cfg, defaultConfig)
	}
	if cfg.Debounce() != 300*time.Millisecond {
		t.Errorf("Debounce() = %v; want 300ms", cfg.Debounce())
	}
}

func TestLoadConfigPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	data := "filter:\n  debounce_ms: 50\ncatalog:\n  path: /tmp/projects.yaml\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfigFrom(path)
	if err != nil {
		t.Fatalf("loadConfigFrom: %v", err)
	}
	if cfg.Debounce() != 50*time.Millisecond {
		t.Errorf("Debounce() = %v; want 50ms", cfg.Debounce())
	}
	if cfg.Catalog.Path != "/tmp/projects.yaml" {
		t.Errorf("Catalog.Path = %q", cfg.Catalog.Path)
	}
	if !cfg.UI.RenderMarkdown {
		t.Errorf("UI.RenderMarkdown should keep its default")
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	if err := os.WriteFile(path, []byte("filter: [oops"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfigFrom(path)
	if err == nil {
		t.Errorf("loadConfigFrom(invalid) should report an error")
	}
	if *cfg != defaultConfig {
		t.Errorf("loadConfigFrom(invalid) = %+v; want defaults", *cfg)
	}
}

func TestDebounceNegativeFallsBack(t *testing.T) {
	cfg := Config{Filter: FilterConfig{DebounceMs: -5}}
	if cfg.Debounce() != 300*time.Millisecond {
		t.Errorf("Debounce() = %v; want 300ms", cfg.Debounce())
	}
	cfg.Filter.DebounceMs = 0
	if cfg.Debounce() != 0 {
		t.Errorf("Debounce() = %v; want 0", cfg.Debounce())
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	if err := writeDefaultConfig(path); err != nil {
		t.Fatalf("writeDefaultConfig: %v", err)
	}

	cfg, err := loadConfigFrom(path)
	if err != nil {
		t.Fatalf("loadConfigFrom: %v", err)
	}
	if *cfg != defaultConfig {
		t.Errorf("round-tripped config = %+v; want %+v", *cfg, defaultConfig)
	}
}
