// Package mcp implements the Model Context Protocol server, exposing
// oracheck's validators to LLMs. This lets AI assistants check enrichment
// result tables, gene-set libraries, and the gene database through a
// standardised protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"oracheck/internal/config"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio.
//
// Configuration is loaded once at startup; tools that need the data
// directory or the library list read it from the handler state.
func Serve() error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return err
	}
	h := &handlers{cfg: cfg}

	s := server.NewMCPServer(
		"oracheck",
		Version,
		server.WithToolCapabilities(true),
	)

	registerTools(s, h)

	slog.Info("oracheck MCP server ready", "version", Version, "transport", "stdio")

	err = server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// handlers provides MCP request handlers with access to the loaded config.
type handlers struct {
	cfg *config.Config
}

// registerTools exposes oracheck operations as MCP tools for LLM invocation.
func registerTools(s *server.MCPServer, h *handlers) {
	// Validate an enrichment result table
	s.AddTool(
		mcp.NewTool("oracheck_validate",
			mcp.WithDescription("Validate a TSV enrichment result table. Returns is_valid plus every line-numbered error found."),
			mcp.WithString("path", mcp.Required(), mcp.Description("Path to the .tsv file")),
		),
		h.validateResults,
	)

	// Validate a GMT gene-set library
	s.AddTool(
		mcp.NewTool("oracheck_gmt_check",
			mcp.WithDescription("Validate a GMT gene-set library file. Returns is_valid plus every line-numbered error found."),
			mcp.WithString("path", mcp.Required(), mcp.Description("Path to the .gmt file")),
		),
		h.checkGMT,
	)

	// Library status
	s.AddTool(
		mcp.NewTool("oracheck_libraries",
			mcp.WithDescription("List the configured Enrichr gene-set libraries and whether each is present locally"),
		),
		h.libraryStatus,
	)

	// Gene database schema check
	s.AddTool(
		mcp.NewTool("oracheck_genedb_check",
			mcp.WithDescription("Check the gene summary database schema. Returns is_valid plus every schema issue found."),
			mcp.WithString("path", mcp.Required(), mcp.Description("Path to the SQLite database file")),
		),
		h.checkGeneDB,
	)

	// Guide
	s.AddTool(
		mcp.NewTool("oracheck_guide",
			mcp.WithDescription("Get help/guide content for oracheck commands"),
			mcp.WithString("topic", mcp.Description("Guide topic (e.g. 'validate', 'libraries', 'genedb') or empty for the index")),
		),
		h.getGuide,
	)
}
