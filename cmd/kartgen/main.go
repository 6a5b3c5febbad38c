// Package main is the entry point for the kartgen CLI.
//
// kartgen renders the kart characteristic schema into C++ projections and
// splices them into the marked regions of the kart sources.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"kartgen/internal/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := commands.Execute(ctx)

	stop()
	os.Exit(code)
}
