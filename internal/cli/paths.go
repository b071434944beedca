package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/yacchi/kasane/codec"
	"github.com/yacchi/kasane/relpath"
	"github.com/yacchi/kasane/tree"
)

// newPathsCmd creates the paths command.
func newPathsCmd(flags *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths <file>",
		Short: "Show how relative path values in a file resolve",
		Long: `Show every string value in a file that starts with "./" or "../",
along with the absolute path it rewrites to when the file is loaded.
The file itself is not merged into anything; this is a dry run of the
path rewriting step.

Example:
  kasane paths conf.d/10-plugins.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(flags)
			if err != nil {
				return err
			}

			path := args[0]
			if relpath.IsRelative(path) {
				path = relpath.Resolve(opts.WorkDir, path)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			doc, err := codec.ForPath(path).Decode(data)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", path, err)
			}

			baseDir := filepath.Dir(path)
			table := tablewriter.NewTable(cmd.OutOrStdout())
			table.Header("POINTER", "VALUE", "RESOLVED")

			count := 0
			tree.Walk(doc, func(pointer string, value any) {
				s, ok := value.(string)
				if !ok || !relpath.IsRelative(s) {
					return
				}
				table.Append([]string{pointer, s, relpath.Resolve(baseDir, s)})
				count++
			})

			if count == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no relative path values")
				return nil
			}
			return table.Render()
		},
	}

	return cmd
}
