// Package cli implements the kasane command line tool.
//
// The tool merges layered JSON, JSONC and YAML configuration files the
// same way the library does: later files win, relative path values are
// rewritten against the directory of the file that declared them, and
// arrays either concatenate or replace depending on the array mode.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command.
func NewRootCmd(version string) *cobra.Command {
	flags := &Options{}

	rootCmd := &cobra.Command{
		Use:   "kasane",
		Short: "Merge layered configuration files",
		Long: `Kasane merges layered JSON, JSONC and YAML configuration files into a
single document. Files merge in argument order, so later files override
earlier ones. String values starting with "./" or "../" are rewritten
against the directory of the file that declared them.

Examples:
  kasane merge base.json production.json
  kasane merge --format yaml 'conf.d/*.json'
  kasane get /server/port base.json overrides.json
  kasane paths base.json`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.WorkDir, "workdir", "", "directory anchoring relative file arguments (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&flags.ArrayMode, "array-mode", "", `array merge policy, "concat" or "replace" (default: concat)`)
	rootCmd.PersistentFlags().StringVar(&flags.Format, "format", "", `output format, "json", "jsonc" or "yaml" (default: json)`)
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "enable debug logging on stderr")

	rootCmd.AddCommand(newMergeCmd(flags))
	rootCmd.AddCommand(newGetCmd(flags))
	rootCmd.AddCommand(newPathsCmd(flags))

	return rootCmd
}
