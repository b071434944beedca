package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacchi/kasane/tree"
)

// newGetCmd creates the get command.
func newGetCmd(flags *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <pointer> <file|glob>...",
		Short: "Look up a value in the merged configuration",
		Long: `Look up a single value in the merged configuration by JSON Pointer.

The files merge exactly as they would for the merge command, then the
pointer selects one value from the result. Scalars print bare; objects
and arrays print as JSON.

Examples:
  kasane get /server/port base.json production.json
  kasane get /plugins/0 base.json 'conf.d/*.json'`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(flags)
			if err != nil {
				return err
			}
			log := newLogger(opts.Verbose)

			store, err := opts.newStore()
			if err != nil {
				return err
			}
			if err := loadAll(store, args[1:], log); err != nil {
				return err
			}

			pointer := args[0]
			value, ok := tree.At(store.Get(), pointer)
			if !ok {
				return fmt.Errorf("pointer %q not found in merged configuration", pointer)
			}

			switch value.(type) {
			case map[string]any, []any:
				out, err := json.MarshalIndent(value, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode value: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
			default:
				fmt.Fprintln(cmd.OutOrStdout(), formatScalar(value))
			}
			return nil
		},
	}

	return cmd
}

func formatScalar(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%v", v)
}
