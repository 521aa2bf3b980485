// validate.go implements the "oracheck validate" command for enrichment
// result tables.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"oracheck/internal/enrichment"
	"oracheck/internal/log"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file.tsv>",
		Short: "Validate a TSV enrichment result table",
		Long: `Validates an enrichment result table: exact header, 8 columns per row,
typed checks per column, line-numbered errors for every problem found.

Exits 0 when the file is valid, 1 when it is not.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			report := enrichment.Validate(args[0])
			log.Event("cli:validate", "validate").Path(args[0]).Detail("valid", report.Valid).Detail("errors", len(report.Errors)).Write(nil)

			printReport(report)
			if !report.Valid {
				exitCode = 1
			}
			return nil
		},
	}
}

// printReport writes a validation report to the output writer, as JSON
// when requested or as a VALID/INVALID line plus indented errors.
func printReport(report enrichment.Report) {
	if JSON() {
		_ = PrintJSON(report)
		return
	}
	if report.Valid {
		fmt.Fprintln(Out(), "VALID")
		return
	}
	fmt.Fprintln(Out(), "INVALID")
	for _, e := range report.Errors {
		fmt.Fprintf(Out(), "  %s\n", e)
	}
}
