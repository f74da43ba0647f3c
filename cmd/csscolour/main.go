// csscolour converts, mixes and compares CSS colours.
package main

import (
	"os"

	"github.com/jmylchreest/csscolour/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
