// @MX:ANCHOR: [AUTO] main is the entry point of the create-absolutejs binary; any error exits with code 1.
// @MX:REASON: [AUTO] the only executable entry point, it delegates to the cli command tree
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/absolutejs/create-absolutejs/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
