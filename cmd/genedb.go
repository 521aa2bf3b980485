// genedb.go implements the "oracheck genedb" command group for the gene
// summary database.

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"oracheck/internal/genedb"
	"oracheck/internal/log"
	"oracheck/internal/progress"
)

func init() {
	rootCmd.AddCommand(newGeneDBCmd())
}

func newGeneDBCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "genedb",
		Short: "Build and check the gene summary database",
		Long: `The gene summary database is rebuilt locally from CSV shards because it
is too large to distribute whole.

  oracheck genedb build genes.db shards/*.csv
  oracheck genedb check genes.db`,
	}
	c.AddCommand(newGeneDBBuildCmd())
	c.AddCommand(newGeneDBCheckCmd())
	return c
}

func newGeneDBBuildCmd() *cobra.Command {
	var force bool
	c := &cobra.Command{
		Use:   "build <database> <shard.csv>...",
		Short: "Build the database from CSV shards",
		Long: `Builds the SQLite database from CSV shards. Each shard's header row
decides which table it feeds. An existing non-empty database is left
untouched unless --force is given.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			dbPath, shards := args[0], args[1:]

			// Shard loading time is data-dependent, so an indeterminate
			// spinner rather than a counted progress bar.
			spin := progress.NewSpinner("Building gene database")
			spin.Start()
			done := make(chan struct{})
			go func() {
				t := time.NewTicker(100 * time.Millisecond)
				defer t.Stop()
				for {
					select {
					case <-done:
						return
					case <-t.C:
						spin.Tick()
					}
				}
			}()

			result, err := genedb.Build(dbPath, shards, force)
			close(done)
			spin.Stop()
			log.Event("cli:genedb", "build").Path(dbPath).Detail("shards", len(shards)).Detail("skipped", result.Skipped).Write(err)
			if err != nil {
				return PrintJSONError(err)
			}

			if JSON() {
				return PrintJSON(result)
			}
			if result.Skipped {
				fmt.Fprintln(Out(), "Database already exists, skipping build. Use --force to rebuild.")
				return nil
			}
			for table, rows := range result.Loaded {
				fmt.Fprintf(Out(), "%s: %d rows\n", table, rows)
			}
			return nil
		},
	}
	c.Flags().BoolVar(&force, "force", false, "Rebuild even if the database exists")
	return c
}

func newGeneDBCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <database>",
		Short: "Check the database schema",
		Long: `Verifies both tables exist with the expected columns and declared
types. Issues are accumulated and all reported in one run.

Exits 0 when the schema is valid, 1 when it is not.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			report := genedb.Check(args[0])
			log.Event("cli:genedb", "check").Path(args[0]).Detail("valid", report.Valid).Write(nil)

			printReport(report)
			if !report.Valid {
				exitCode = 1
			}
			return nil
		},
	}
}
