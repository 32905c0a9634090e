package main

import (
	"context"
	"os"

	"github.com/preston-bernstein/football-asset-generator/internal/cli"
)

const appVersion = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the command tree and maps failure to a non-zero exit code.
// Cobra has already printed the error.
func run(args []string) int {
	cmd := cli.NewRootCommand(appVersion)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		return 1
	}
	return 0
}
