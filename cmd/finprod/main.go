// Command finprod administers financial products through the product API.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rshade/finprod/internal/cli"
	"github.com/rshade/finprod/pkg/version"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr))
}

// run executes the command tree and returns the process exit code.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	root := cli.NewRootCmd(version.String())
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
