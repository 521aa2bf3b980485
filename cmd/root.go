// root.go defines the root command and CLI execution entry point.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"oracheck/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "oracheck",
	Short: "Validator for gene-set enrichment analysis artifacts",
	Long: `Validates the files a gene-set enrichment workflow produces and consumes:
TSV enrichment result tables, GMT gene-set libraries, and the local gene
summary database. Structural problems abort with one error; row-level
problems are accumulated with line numbers so one run reports everything.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}
		return nil
	},
}

// Execute runs the root command and handles process lifecycle: the audit
// log is opened before and closed after the command runs. Exit code 1
// indicates either a command error or a validation that found problems.
func Execute() {
	// Initialise audit logger (warn if it fails, but continue)
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	if wd, err := os.Getwd(); err == nil {
		log.SetProject(wd)
	}

	err := rootCmd.Execute()
	log.Close()

	if err != nil {
		os.Exit(1)
	}
	os.Exit(exitCode)
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}
