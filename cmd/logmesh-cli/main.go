// Package main provides the entry point for logmesh-cli.
//
// logmesh-cli is the command-line management tool for logmesh. It checks
// server configuration files offline and inspects node identity.
package main

import (
	"fmt"
	"os"

	"github.com/yndnr/logmesh-go/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
