package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fmueller/voxwer/internal/cli"
	"github.com/spf13/cobra"
)

// usageErrors are fragments of cobra's argument and flag errors.
var usageErrors = []string{
	"unknown command",
	"unknown flag",
	"unknown shorthand flag",
	"accepts ",
	"requires at least",
	"requires at most",
	"requires between",
	"required flag",
	"invalid argument",
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string) int {
	cmd := cli.NewRootCmd()
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if isUsageError(err) {
			fmt.Fprintf(os.Stderr, "Run '%s --help' for usage.\n", helpHintTarget(cmd, args))
		}
		return 1
	}
	return 0
}

func isUsageError(err error) bool {
	if err == nil {
		return false
	}

	message := strings.ToLower(err.Error())
	for _, fragment := range usageErrors {
		if strings.Contains(message, fragment) {
			return true
		}
	}
	return false
}

// helpHintTarget names the deepest command args resolve to, falling back to
// the root when the first arg is a flag or nothing matches.
func helpHintTarget(root *cobra.Command, args []string) string {
	if root == nil {
		return "voxwer"
	}
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return root.CommandPath()
	}

	found, _, err := root.Find(args)
	if err != nil || found == nil {
		return root.CommandPath()
	}
	return found.CommandPath()
}
