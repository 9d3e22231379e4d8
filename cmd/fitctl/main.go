// Package main is fitctl, the terminal client of fittrack.
// It talks to Postgres through the same gateway the API uses and keeps
// the logged-in user id in a local session file.
package main

import (
	"io"
	"os"

	"github.com/fatih/color"
)

func main() {
	rootCmd := newRootCmd(&app{})
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

// printError writes err as one red line.
func printError(w io.Writer, err error) {
	color.New(color.FgRed).Fprintf(w, "✗ %s\n", err)
}
