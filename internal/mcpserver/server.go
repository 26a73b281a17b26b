// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the swagconvert conversion engine as an MCP tool over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/swagtools/swagconvert"
)

const serverInstructions = `swagconvert MCP server — converts Swagger 2.0 (OpenAPI 2.0) documents to OpenAPI 3.0.

Configuration: All defaults are configurable via SWAGCONVERT_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- SWAGCONVERT_CONVERT_STRICT (default: false) — fail conversions that produce warnings
- SWAGCONVERT_CONVERT_NO_INFO (default: false) — suppress informational issues by default
- SWAGCONVERT_MAX_INLINE_SIZE (default: 10485760) — maximum inline spec size in bytes`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "swagconvert", Version: swagconvert.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert a Swagger 2.0 (OpenAPI 2.0) document to OpenAPI 3.0. Accepts the source by file path or inline content. Returns the converted document along with conversion issues (info, warning, critical) describing anything that was dropped, degraded, or rewritten. Strict mode and info suppression defaults are configurable via SWAGCONVERT_CONVERT_STRICT and SWAGCONVERT_CONVERT_NO_INFO env vars.",
	}, handleConvert)
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
