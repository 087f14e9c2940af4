package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/preston-bernstein/mlb-roster-service/internal/cmd"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command tree and maps the outcome to an exit code.
// "Not Found" is a normal result and exits 0.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := cmd.NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
