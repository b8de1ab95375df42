// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "carnotd",
	Short: "Carnot consensus core tools for parameter validation and single-node simulation",
	Long: `carnotd sets up a single Carnot consensus instance from flags: building
the tree overlay, starting it from genesis, and reporting the committee
structure, leader supermajority threshold and per-view leaders it resolves to.`,
}

func main() {
	rootCmd.AddCommand(paramsCmd(), runCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
