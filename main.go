// Habitgrid - a command-line daily habit tracker
package main

import (
	"os"

	"github.com/manav03panchal/habitgrid/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
