// Command simpleloco exports Loco translations into platform resource files.
package main

import (
	"os"

	"github.com/simpleloco/simpleloco/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
