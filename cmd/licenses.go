package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/conneroisu/fileheader/internal/license"
	"github.com/spf13/cobra"
)

// licensesCmd represents the licenses command
var licensesCmd = &cobra.Command{
	Use:   "licenses",
	Short: "List the built-in SPDX license catalog",
	Long: `List every license in the built-in catalog, with the SPDX identifier
accepted by --license and the pattern used to detect the license near
the top of a file.`,
	Args: cobra.NoArgs,
	RunE: runLicenses,
}

func init() {
	rootCmd.AddCommand(licensesCmd)
}

func runLicenses(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDETECTED BY")
	for _, l := range license.All() {
		pattern := l.Pattern()
		if len(pattern) > 60 {
			pattern = pattern[:57] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", l.ID, l.Name, pattern)
	}

	return w.Flush()
}
