package main

import (
	"fmt"
	"os"

	"github.com/xgx-io/fruitbowl/internal/cli"
)

func main() {
	root := cli.NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.ExitCode(err))
	}
}
