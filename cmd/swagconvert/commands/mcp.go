package commands

import (
	"context"
	"errors"
	"flag"
	"os/signal"
	"syscall"

	"github.com/swagtools/swagconvert/internal/cliutil"
	"github.com/swagtools/swagconvert/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: swagconvert mcp\n\n")
		cliutil.Writef(fs.Output(), "Run the swagconvert MCP (Model Context Protocol) server over stdio.\n\n")
		cliutil.Writef(fs.Output(), "The server exposes a 'convert' tool that accepts a Swagger 2.0 document\n")
		cliutil.Writef(fs.Output(), "by file path or inline content and returns the OpenAPI 3.0 document along\n")
		cliutil.Writef(fs.Output(), "with any conversion issues.\n\n")
		cliutil.Writef(fs.Output(), "Example MCP client configuration:\n")
		cliutil.Writef(fs.Output(), "  {\"command\": \"swagconvert\", \"args\": [\"mcp\"]}\n")
	}

	return fs
}

// HandleMCP executes the mcp command, blocking until the client disconnects
// or the process receives an interrupt.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
