// serve.go implements the "oracheck serve" command for MCP server
// operation. Unlike other commands that run and exit, serve blocks
// indefinitely handling MCP requests over stdio.

package cmd

import (
	"github.com/spf13/cobra"

	"oracheck/internal/mcp"
)

func init() {
	rootCmd.AddCommand(newServeCmd())
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM
integration. Exposes the validators as tools: oracheck_validate,
oracheck_gmt_check, oracheck_genedb_check, oracheck_libraries, and
oracheck_guide.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return mcp.Serve()
		},
	}
}
