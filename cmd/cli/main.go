// wellplot - Well Log Plotting Tool
//
// wellplot reads a LAS well-log file, picks the best available curve for each
// log category from ranked mnemonic aliases, and renders a three-track figure.
package main

import (
	"os"

	"github.com/ccollicutt/wellplot/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
