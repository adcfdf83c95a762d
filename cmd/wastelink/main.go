// Command wastelink is the CLI entry point for the matching and impact
// scoring engine.
package main

import (
	"fmt"
	"os"

	"github.com/nmehta6/wastelink/internal/cli"
	"github.com/nmehta6/wastelink/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps the outcome to an exit code.
// Separated from main for testability.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
