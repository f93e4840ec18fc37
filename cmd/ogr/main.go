// SPDX-License-Identifier: MIT

// Command ogr generates, validates and encodes Golomb rulers.
//
//	ogr generate 10 --algo improved
//	ogr validate 0 1 4 6
//	ogr encode 0 1 3 --matrix
//	echo "1 3 2" | ogr decode --order 3
//	ogr compare --max-order 20 --format json
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/ogr/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	cmd := cli.NewRootCommand()
	err := cmd.Execute()
	if err == nil {
		return cli.ExitSuccess
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	return cli.GetExitCode(err)
}
