// goseal is a command-line tool for password-based encryption of files and
// directory trees.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/goseal/internal/commands"
)

// version is set at build time.
var version = "dev" //nolint:gochecknoglobals

func main() {
	if err := commands.NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
