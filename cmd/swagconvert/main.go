package main

import (
	"fmt"
	"os"

	"github.com/swagtools/swagconvert"
	"github.com/swagtools/swagconvert/cmd/swagconvert/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("swagconvert v%s\n", swagconvert.Version())
	case "help", "-h", "--help":
		printUsage()
	case "convert":
		if err := commands.HandleConvert(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`swagconvert - Swagger 2.0 to OpenAPI 3.0 Converter

Usage:
  swagconvert <command> [options]

Commands:
  convert     Convert a Swagger 2.0 specification to OpenAPI 3.0
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  swagconvert convert swagger.yaml -o openapi.yaml
  swagconvert convert swagger.json
  cat swagger.yaml | swagconvert convert -q - > openapi.yaml

Run 'swagconvert <command> --help' for more information on a command.`)
}
