// Package main provides the kasane CLI tool.
//
// Usage:
//
//	kasane <command> [arguments]
//
// Commands:
//
//	merge       Merge configuration files into a single document
//	get         Look up a value in the merged configuration
//	paths       Show how relative path values in a file resolve
package main

import (
	"fmt"
	"os"

	"github.com/yacchi/kasane/internal/cli"
)

const version = "0.1.0"

func main() {
	rootCmd := cli.NewRootCmd(version)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
