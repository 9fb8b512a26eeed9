// Command cargo-libyear runs libyear as a Cargo subcommand. Cargo invokes
// it as `cargo-libyear libyear [args]`, so the subcommand name is dropped
// before the flags are parsed.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/libyear/internal/cli"
	liberrors "github.com/matzehuels/libyear/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.Use = "cargo libyear"
	root.SetArgs(cargoArgs(os.Args[1:]))

	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, "Error:", liberrors.UserMessage(err))
		os.Exit(1)
	}
}

// cargoArgs strips the leading "libyear" that cargo passes.
func cargoArgs(args []string) []string {
	if len(args) > 0 && args[0] == "libyear" {
		return args[1:]
	}
	return args
}
