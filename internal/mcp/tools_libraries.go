// tools_libraries.go implements the MCP tool reporting library presence.

package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"oracheck/internal/enrichr"
	"oracheck/internal/log"
)

// libraryStatus handles oracheck_libraries tool calls.
func (h *handlers) libraryStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	dir := h.cfg.ResolvedDataDir()

	status := make([]map[string]any, 0, len(h.cfg.LibraryNames()))
	for _, name := range h.cfg.LibraryNames() {
		status = append(status, map[string]any{
			"library": name,
			"present": enrichr.Present(dir, name),
		})
	}

	log.Event("mcp:libraries", "status").Path(dir).Write(nil)

	return jsonResult(map[string]any{
		"data_dir":  dir,
		"libraries": status,
	})
}
