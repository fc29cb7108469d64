// Copyright (C) 2019-2024 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/algorand/go-algorand-abi/config"
	"github.com/algorand/go-algorand-abi/logging"
)

var (
	configDir string
	verbose   bool

	cfg = config.GetDefaultLocal()
	log = logging.Base()
)

var rootCmd = &cobra.Command{
	Use:   "abitool",
	Short: "Inspect ABI types, method signatures and contract descriptions",
	Args:  cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loadConfig()
	},
	Run: func(cmd *cobra.Command, args []string) {
		// If no arguments passed, we should fallback to help
		cmd.HelpFunc()(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(typeCmd)
	rootCmd.AddCommand(methodCmd)
	rootCmd.AddCommand(contractCmd)

	rootCmd.PersistentFlags().StringVarP(&configDir, "config-dir", "d", "", "Directory holding "+config.ConfigFilename+" (default ~/.abitool)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Log debug messages")
}

func loadConfig() {
	dir := configDir
	if dir == "" {
		var err error
		dir, err = config.GetDefaultConfigDir()
		if err != nil {
			reportErrorf(errorConfigDir, err)
		}
	}
	local, err := config.LoadConfigFromDisk(dir)
	if err != nil {
		reportErrorf(errorLoadingConfig, dir, err)
	}
	cfg = local
	cfg.ApplyLogging(log)
	if verbose {
		log.SetLevel(logging.Debug)
	}
	log.Debugf("loaded config from %s", dir)
}

func main() {
	// Hidden command to generate docs in a given directory
	// abitool generate-docs [path]
	if len(os.Args) == 3 && os.Args[1] == "generate-docs" {
		err := doc.GenMarkdownTree(rootCmd, os.Args[2])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
