package cmd

import (
	"fmt"

	"github.com/conneroisu/fileheader/internal/config"
	"github.com/conneroisu/fileheader/internal/scan"
	"github.com/spf13/cobra"
)

// removeCmd represents the remove command
var removeCmd = &cobra.Command{
	Use:   "remove [directory]",
	Short: "Remove previously inserted headers",
	Long: `Recursively remove the header from every matching file where it is
present. Removal is conservative: it only acts when the exact block a
previous add produced is found, and removes only its first occurrence.
Headers that were hand-edited after insertion are left alone.

Examples:
  fileheader remove --license Apache-2.0 --owner "ACME Corp"
  fileheader remove --header-file NOTICE.txt ./src`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	root := resolveRoot(cfg, args)
	ctx := cmd.Context()
	logger := newLogger(cfg).WithComponent("remove")

	hdr, err := buildHeader(cfg)
	if err != nil {
		return err
	}
	match, err := buildPredicate(cfg)
	if err != nil {
		return err
	}

	changed, err := scan.NewApplier(hdr).DeleteAll(root, match)
	if err != nil {
		logger.Error(ctx, err, "remove aborted", "root", root)

		return err
	}

	logger.Info(ctx, "remove complete", "root", root, "changed", len(changed))

	for _, path := range changed {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed header from %d files\n", len(changed))

	return nil
}
