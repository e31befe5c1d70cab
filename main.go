// main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/anmicius0/nexus-cli/internal/cli"
)

func main() {
	// Cancel the in-flight request on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cli.Run(ctx, cli.NewApp(), os.Args[1:])
	stop()
	os.Exit(code)
}
