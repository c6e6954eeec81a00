package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/you-humble/motorcycle-registry/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx)
	if err != nil {
		log.Printf("failed to init app: %v\n", err)
		os.Exit(1)
	}

	if err := a.Run(ctx); err != nil {
		log.Printf("failed to run app: %v\n", err)
		os.Exit(1)
	}
}
