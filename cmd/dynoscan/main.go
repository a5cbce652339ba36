package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := &rootOptions{openEngine: openEngine}
	if err := newRootCmd(opts).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "dynoscan: %v\n", err)
		return 1
	}
	return 0
}
