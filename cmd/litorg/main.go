// Command litorg connects Org documents to a local litdb literature
// database.
package main

import (
	"os"

	"github.com/calder-labs/litorg-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
