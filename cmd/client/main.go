package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/client/cli"
)

func main() {

	cmd := cli.NewRootCommand(nil)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", cli.Describe(err))
		os.Exit(cli.ExitCode(err))
	}

}
