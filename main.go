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
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	asciiLogo := `
 ___ _                                  
/ __| |_  _____ __ _____ __ _ ___ ___ 
\__ \ ' \/ _ \ V  V / _/ _' (_-</ -_)
|___/_||_\___/\_/\_/\__\__,_/__/\___|
Browse, search and filter a project catalog from your terminal [Version: %s%s%s]

`

	InitializeColors()
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}

	var catalogPath string

	launch := func(cmd *cobra.Command, args []string) error {
		items, err := loadItems(catalogPath, config)
		if err != nil {
			return err
		}
		// Pipes and redirects get the plain listing instead of the UI
		if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			return listProjects(cmd.OutOrStdout(), items, listOptions{Category: "All"})
		}
		return runBubbleTeaApp(items, config)
	}

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launches the showcase UI for search & filtering",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run opens the interactive project browser`),
		Args:  cobra.NoArgs,
		RunE:  launch,
	}

	var listOpts listOptions
	var cmdList = &cobra.Command{
		Use:   "list",
		Short: "Print the projects matching a category and search query",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `List prints matching projects without starting the UI`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := loadItems(catalogPath, config)
			if err != nil {
				return err
			}
			return listProjects(cmd.OutOrStdout(), items, listOpts)
		},
	}
	addListFlags(cmdList.Flags(), &listOpts)

	var cmdCounts = &cobra.Command{
		Use:   "counts",
		Short: "Print the number of projects in every category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := loadItems(catalogPath, config)
			if err != nil {
				return err
			}
			printCounts(cmd.OutOrStdout(), items)
			return nil
		},
	}

	var showProgress bool
	var cmdValidate = &cobra.Command{
		Use:   "validate",
		Short: "Check a catalog for missing fields, unknown categories and duplicate titles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := loadItems(catalogPath, config)
			if err != nil {
				return err
			}
			if n := validateCatalog(cmd.OutOrStdout(), items, showProgress); n > 0 {
				return fmt.Errorf("catalog has %d problem(s)", n)
			}
			return nil
		},
	}
	cmdValidate.Flags().BoolVar(&showProgress, "progress", false, "show a progress bar while checking")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating the default file if needed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Showcase usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the showcase CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Showcase version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:          "showcase",
		Version:      version,
		Long:         asciiLogo,
		SilenceUsage: true,
		// Default to the UI when no subcommand is provided
		RunE: launch,
	}
	addCatalogFlag(rootCmd.PersistentFlags(), &catalogPath)
	rootCmd.AddCommand(cmdRun, cmdList, cmdCounts, cmdValidate, cmdSettings, cmdUsage, cmdVersion)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
