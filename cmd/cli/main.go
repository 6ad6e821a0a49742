package main

import (
	"fmt"
	"os"

	"github.com/de-tools/trackplot/pkg/runtime/terminal"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Output: os.Stdout,
		Logs:   os.Stderr,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(terminal.ExitCode(err))
	}
}
