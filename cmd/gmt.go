// gmt.go implements the "oracheck gmt" command for gene-set library files.

package cmd

import (
	"github.com/spf13/cobra"

	"oracheck/internal/gmt"
	"oracheck/internal/log"
)

func init() {
	rootCmd.AddCommand(newGMTCmd())
}

func newGMTCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gmt <file.gmt>",
		Short: "Validate a GMT gene-set library file",
		Long: `Validates a gene-set library in GMT format: term, description, and at
least one gene per line, unique non-empty terms, well-formed gene symbols.
Trailing tab padding is tolerated.

Exits 0 when the file is valid, 1 when it is not.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			report := gmt.Validate(args[0])
			log.Event("cli:gmt", "validate").Path(args[0]).Detail("valid", report.Valid).Detail("errors", len(report.Errors)).Write(nil)

			printReport(report)
			if !report.Valid {
				exitCode = 1
			}
			return nil
		},
	}
}
