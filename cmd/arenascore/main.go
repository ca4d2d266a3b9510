// Package main is the arenascore command-line entry point.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/arenascore/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()

	// ExitErrors have already been rendered in the requested format; usage
	// errors from cobra have not.
	var exitErr *cli.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.GetExitCode(err))
}
