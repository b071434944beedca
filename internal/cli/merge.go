package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacchi/kasane/codec"
)

// newMergeCmd creates the merge command.
func newMergeCmd(flags *Options) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "merge <file|glob>...",
		Short: "Merge configuration files into a single document",
		Long: `Merge configuration files into a single document.

Files merge in argument order, so later files override earlier ones.
Glob patterns expand to their matches sorted by path before merging.

Examples:
  kasane merge base.json production.json
  kasane merge --format yaml base.json 'conf.d/*.json'
  kasane merge --out merged.json base.json overrides.jsonc`,
		Args: cobra.MinimumNArgs(1),
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
			if err := loadAll(store, args, log); err != nil {
				return err
			}

			enc, err := codec.ByName(opts.Format)
			if err != nil {
				return err
			}
			out, err := enc.Encode(store.Get())
			if err != nil {
				return fmt.Errorf("failed to encode merged document: %w", err)
			}

			if outPath != "" {
				if err := os.WriteFile(outPath, out, 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", outPath, err)
				}
				log.Debug().Str("file", outPath).Msg("wrote merged document")
				return nil
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the merged document to a file instead of stdout")

	return cmd
}
