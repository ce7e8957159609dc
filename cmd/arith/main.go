// Command arith evaluates infix arithmetic statements.
//
// Statements are taken from the command line, or from a file or standard
// input when none are given. Each statement's result is printed on its own
// line, or null if it has none.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := Run(ctx, os.Stdin, os.Stdout, os.Stderr, os.Exit, os.Args[1:]...)
	stop()
	if err != nil {
		slog.Error("arith failed", slog.Any("error", err))
		os.Exit(1)
	}
}
