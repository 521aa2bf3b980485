// libraries.go implements the "oracheck libraries" command group for
// managing local copies of Enrichr gene-set libraries.

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"oracheck/internal/config"
	"oracheck/internal/enrichr"
	"oracheck/internal/log"
)

func init() {
	rootCmd.AddCommand(newLibrariesCmd())
}

func newLibrariesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "libraries",
		Short: "Manage Enrichr gene-set libraries",
		Long: `List, check, and fetch the configured Enrichr gene-set libraries.

  oracheck libraries list    # configured library names
  oracheck libraries status  # which are present locally
  oracheck libraries fetch   # download the missing ones`,
	}
	c.AddCommand(newLibrariesListCmd())
	c.AddCommand(newLibrariesStatusCmd())
	c.AddCommand(newLibrariesFetchCmd())
	return c
}

func newLibrariesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the configured library names",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return PrintJSONError(err)
			}
			names := cfg.LibraryNames()
			log.Event("cli:libraries", "list").Detail("count", len(names)).Write(nil)

			if JSON() {
				return PrintJSON(map[string]any{"libraries": names})
			}
			for _, name := range names {
				fmt.Fprintln(Out(), name)
			}
			return nil
		},
	}
}

// libraryStatus is one row of "libraries status" output.
type libraryStatus struct {
	Library string `json:"library"`
	Present bool   `json:"present"`
}

func newLibrariesStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which libraries are present locally",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return PrintJSONError(err)
			}
			dir := DataDir(cfg)

			var status []libraryStatus
			for _, name := range cfg.LibraryNames() {
				status = append(status, libraryStatus{Library: name, Present: enrichr.Present(dir, name)})
			}
			log.Event("cli:libraries", "status").Path(dir).Write(nil)

			if JSON() {
				return PrintJSON(map[string]any{"data_dir": dir, "libraries": status})
			}
			for _, s := range status {
				mark := "missing"
				if s.Present {
					mark = "present"
				}
				fmt.Fprintf(Out(), "%-50s %s\n", s.Library, mark)
			}
			return nil
		},
	}
}

func newLibrariesFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Download the missing libraries from Enrichr",
		Long: `Downloads each configured library that is not already present in the
data directory. Already-present libraries are skipped, so fetch is safe
to run repeatedly.`,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return PrintJSONError(err)
			}
			dir := DataDir(cfg)

			// In JSON mode the progress lines go nowhere; the result
			// object is the output.
			w := Out()
			if JSON() {
				w = io.Discard
			}

			client := enrichr.New(cfg.BaseURL())
			result, err := client.FetchMissing(c.Context(), w, cfg.LibraryNames(), dir)
			log.Event("cli:libraries", "fetch").Path(dir).Detail("fetched", result.Fetched).Detail("skipped", result.Skipped).Write(err)
			if err != nil {
				return PrintJSONError(err)
			}
			return PrintJSON(result)
		},
	}
}
