package cmd

import (
	"fmt"
	"time"

	"github.com/conneroisu/fileheader/internal/config"
	"github.com/conneroisu/fileheader/internal/scan"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [directory]",
	Short: "Scan for files missing the required header",
	Long: `Recursively scan a directory tree and report every file that does
not carry the required header, along with files that could not be read
as text. The scan is read-only and parallelized across workers.

The command exits non-zero when any file is missing the header or is
not text, making it suitable for CI enforcement.

Examples:
  fileheader check --license Apache-2.0
  fileheader check --license MIT --workers 16 ./src
  fileheader check --header-file NOTICE.txt --exclude '*.min.js'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().IntP("workers", "w", 0, "number of scan workers (default: number of CPUs)")
	bindViperFlags(checkCmd.Flags(), map[string]string{"workers": "workers"})
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	root := resolveRoot(cfg, args)
	ctx := cmd.Context()
	logger := newLogger(cfg).WithComponent("check")

	hdr, err := buildHeader(cfg)
	if err != nil {
		return err
	}
	match, err := buildPredicate(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	results, err := scan.NewScanner(hdr, cfg.Workers).Scan(root, match)
	if err != nil {
		logger.Error(ctx, err, "scan aborted", "root", root)

		return err
	}

	logger.Info(ctx, "scan complete",
		"root", root,
		"workers", cfg.Workers,
		"missing", len(results.MissingHeader),
		"binary", len(results.BinaryFiles),
		"duration", time.Since(start).Round(time.Millisecond))

	if len(results.MissingHeader) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Files missing header:")
		for _, path := range results.MissingHeader {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", path)
		}
	}
	if len(results.BinaryFiles) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Binary files skipped:")
		for _, path := range results.BinaryFiles {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", path)
		}
	}

	if results.HasFindings() {
		return fmt.Errorf("%d files missing header, %d binary files",
			len(results.MissingHeader), len(results.BinaryFiles))
	}

	fmt.Fprintln(cmd.OutOrStdout(), "All files have the required header")

	return nil
}
