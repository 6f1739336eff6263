// Package main provides the CLI tool for the rowlayout engine.
//
// Usage:
//
//	rowlayout layout [flags] file...   Print the item rects of each spec file
//	rowlayout check [-v] file...       Validate spec files
//	rowlayout query [flags] file       Look up rects by region, index or point
//	rowlayout demo [flags]             Lay out the built-in demo rows
//	rowlayout help                     Show help
//
// Examples:
//
//	rowlayout layout -width 375 rows.toml
//	rowlayout check ./specs/*.yaml
//	rowlayout query -rect 0,0,300,10 rows.toml
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/grindlemire/rowlayout/internal/debug"
)

const version = "0.1.0"

const usage = `rowlayout - row-based box layout calculator

Usage:
  rowlayout <command> [options] [file...]

Commands:
  layout      Print the item rects of each spec file
  check       Validate spec files without laying them out
  query       Look up rects by region (-rect), index (-index) or point (-point)
  demo        Lay out the built-in demo rows
  version     Print version information
  help        Show this help message

Layout options (layout, query, demo):
  -width N          Container width (default: spec file, terminal width, or 320)
  -item-spacing N   Horizontal gap between items in a row (default 20)
  -row-spacing N    Vertical gap between rows (default 20)
  -item-height N    Height of every item (default 30)
  -json             Print JSON instead of a table
  -j N              Number of files to process concurrently (default: CPU count)
  -log FILE         Append debug logs to FILE

Spec files are .toml, .yaml, .yml or .json:

  alignment = "right"
  rows = [["small", "normal", "normal"], ["small", 0.25]]

Set ROWLAYOUT_DEBUG=/path/to/file to log every layout pass.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	os.Exit(run(os.Args[1], os.Args[2:], os.Stdout, os.Stderr))
}

// run dispatches a subcommand and returns the process exit code.
func run(command string, args []string, stdout, stderr io.Writer) int {
	defer debug.Close()

	var err error
	switch command {
	case "layout":
		err = runLayout(args, stdout)
	case "check":
		err = runCheck(args, stdout, stderr)
	case "query":
		err = runQuery(args, stdout)
	case "demo":
		err = runDemo(args, stdout)
	case "version":
		fmt.Fprintf(stdout, "rowlayout version %s\n", version)
		return 0
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n\n", command)
		fmt.Fprint(stderr, usage)
		return 1
	}

	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
