package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ndewijer/Business-Ledger-Backend/internal/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := commands.NewRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
