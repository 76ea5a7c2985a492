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
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"

	"github.com/cybrota/showcase/filter"
)

const configFileName = ".showcase.yaml"

type FilterConfig struct {
	DebounceMs int `yaml:"debounce_ms"`
}

type CatalogConfig struct {
	Path string `yaml:"path"`
}

type UIConfig struct {
	RenderMarkdown bool   `yaml:"render_markdown"`
	LogFile        string `yaml:"log_file"`
}

type Config struct {
	Filter  FilterConfig  `yaml:"filter"`
	Catalog CatalogConfig `yaml:"catalog"`
	UI      UIConfig      `yaml:"ui"`
}

var defaultConfig = Config{
	Filter: FilterConfig{
		DebounceMs: int(filter.DefaultDelay / time.Millisecond),
	},
	UI: UIConfig{
		RenderMarkdown: true,
	},
}

// Debounce returns the configured debounce window, falling back to the
// default for negative values.
func (c *Config) Debounce() time.Duration {
	if c.Filter.DebounceMs < 0 {
		return filter.DefaultDelay
	}
	return time.Duration(c.Filter.DebounceMs) * time.Millisecond
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.showcase.yaml. A missing or unreadable file yields the defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := defaultConfig
		return &cfg, nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	cfg := defaultConfig

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return &cfg, nil
	}
	if err != nil {
		return &cfg, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Keys absent from the file keep their default values.
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fallback := defaultConfig
		return &fallback, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}

	return &cfg, nil
}

func writeDefaultConfig(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := atomic.WriteFile(configPath, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := writeDefaultConfig(configPath); err != nil {
			return err
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		fmt.Printf("❌ %v. Using default settings.\n\n", err)
	}

	fmt.Printf("🔧 Showcase Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🔍 %sFilter:%s\n", Green, Reset)
	fmt.Printf("  • %sdebounce_ms%s: %d\n", Green, Reset, config.Filter.DebounceMs)
	fmt.Printf("    Delay before the visible projects are recomputed\n\n")

	catalogPath := config.Catalog.Path
	if catalogPath == "" {
		catalogPath = "(built-in projects)"
	}
	fmt.Printf("📚 %sCatalog:%s\n", Green, Reset)
	fmt.Printf("  • %spath%s: %s\n\n", Green, Reset, catalogPath)

	logFile := config.UI.LogFile
	if logFile == "" {
		logFile = "(disabled)"
	}
	fmt.Printf("🖥  %sUI:%s\n", Green, Reset)
	fmt.Printf("  • %srender_markdown%s: %t\n", Green, Reset, config.UI.RenderMarkdown)
	fmt.Printf("  • %slog_file%s: %s\n\n", Green, Reset, logFile)

	fmt.Printf("💡 Edit %s to change these values.\n", configPath)
	return nil
}
