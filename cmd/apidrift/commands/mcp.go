package commands

import (
	"context"
	"errors"
	"flag"

	"github.com/apidrift/apidrift/internal/cliutil"
	"github.com/apidrift/apidrift/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: apidrift mcp\n\n")
		cliutil.Writef(fs.Output(), "Start an MCP (Model Context Protocol) server over stdio exposing the\n")
		cliutil.Writef(fs.Output(), "compare tool. Intended to be launched by an MCP client, not by hand.\n\n")
		cliutil.Writef(fs.Output(), "Configuration via environment variables:\n")
		cliutil.Writef(fs.Output(), "  APIDRIFT_MAX_SPEC_SIZE   maximum size in bytes of a file-based spec input\n")
		cliutil.Writef(fs.Output(), "  APIDRIFT_BREAKING_ONLY   trim compare output to breaking changes by default\n")
	}

	return fs
}

// HandleMCP executes the mcp command, blocking until the client disconnects.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	return mcpserver.Run(context.Background())
}
