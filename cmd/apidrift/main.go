package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/apidrift/apidrift"
	"github.com/apidrift/apidrift/cmd/apidrift/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("apidrift v%s\n", apidrift.Version())
	case "help", "-h", "--help":
		printUsage()
	case "diff":
		if err := commands.HandleDiff(os.Args[2:]); err != nil {
			if !errors.Is(err, commands.ErrBreakingChanges) {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// knownCommands lists the commands suggestCommand matches against.
var knownCommands = []string{"diff", "mcp", "version", "help"}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDistance := 3
	for _, candidate := range knownCommands {
		if d := editDistance(input, candidate); d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`apidrift - API contract drift detection

Usage:
  apidrift <command> [options]

Commands:
  diff        Compare two API descriptions and classify the differences
  mcp         Start an MCP server exposing the compare tool over stdio
  version     Show version information
  help        Show this help message

Examples:
  apidrift diff api-v1.yaml api-v2.yaml
  apidrift diff --format json api-v1.json api-v2.json
  apidrift diff --breaking-only old.yaml new.yaml

Run 'apidrift <command> --help' for more information on a command.`)
}
