// cmd/distmat/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"distmat/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := app.RunContext(ctx, argv, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
