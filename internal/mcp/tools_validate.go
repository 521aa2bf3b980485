// tools_validate.go implements the MCP tools that wrap the file validators.

package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"oracheck/internal/enrichment"
	"oracheck/internal/genedb"
	"oracheck/internal/gmt"
	"oracheck/internal/log"
)

// validateResults handles oracheck_validate tool calls.
func (h *handlers) validateResults(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}

	report := enrichment.Validate(path)

	log.Event("mcp:validate", "validate").Path(path).Detail("valid", report.Valid).Write(nil)

	return jsonResult(report)
}

// checkGMT handles oracheck_gmt_check tool calls.
func (h *handlers) checkGMT(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}

	report := gmt.Validate(path)

	log.Event("mcp:gmt_check", "validate").Path(path).Detail("valid", report.Valid).Write(nil)

	return jsonResult(report)
}

// checkGeneDB handles oracheck_genedb_check tool calls.
func (h *handlers) checkGeneDB(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}

	report := genedb.Check(path)

	log.Event("mcp:genedb_check", "check").Path(path).Detail("valid", report.Valid).Write(nil)

	return jsonResult(report)
}
