// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes apidrift's comparison as an MCP tool over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/apidrift/apidrift"
)

const serverInstructions = `apidrift MCP server — detects contract drift between two versions of an HTTP API description (OpenAPI 3.x or Swagger 2.0, JSON or YAML).

Configuration: defaults are configurable via APIDRIFT_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- APIDRIFT_MAX_SPEC_SIZE (default: 10485760) — maximum size in bytes of a file-based spec input
- APIDRIFT_BREAKING_ONLY (default: false) — trim compare output to breaking changes by default`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "apidrift", Version: apidrift.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "compare",
		Description: "Compare two versions of an API description (OpenAPI 3.x or Swagger 2.0, JSON or YAML) and classify every difference as breaking, potentially_breaking, or non_breaking. Use breaking_only=true to focus on breaking changes. Both old and new must be provided.",
	}, handleCompare)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
