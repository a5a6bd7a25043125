package cmd

import (
	"fmt"

	"github.com/conneroisu/fileheader/internal/config"
	"github.com/conneroisu/fileheader/internal/scan"
	"github.com/spf13/cobra"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add [directory]",
	Short: "Insert the header into files that are missing it",
	Long: `Recursively insert the header into every matching file that does not
already carry it. Files are rewritten one at a time; files that already
have the header are left untouched, so repeated runs are safe.

Shebangs, XML declarations, and similar structurally significant first
lines stay at the top of the file, with the header inserted after them.

Examples:
  fileheader add --license Apache-2.0 --owner "ACME Corp"
  fileheader add --license MIT --owner "ACME Corp" --year 2024 ./src
  fileheader add --header-file NOTICE.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	root := resolveRoot(cfg, args)
	ctx := cmd.Context()
	logger := newLogger(cfg).WithComponent("add")

	hdr, err := buildHeader(cfg)
	if err != nil {
		return err
	}
	match, err := buildPredicate(cfg)
	if err != nil {
		return err
	}

	changed, err := scan.NewApplier(hdr).AddAll(root, match)
	if err != nil {
		logger.Error(ctx, err, "add aborted", "root", root)

		return err
	}

	logger.Info(ctx, "add complete", "root", root, "changed", len(changed))

	for _, path := range changed {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added header to %d files\n", len(changed))

	return nil
}
