package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/eisbaw/nemlig-cli/internal/cli"
)

func main() {
	// Credentials may live in a .env next to the working directory
	// (NEMLIG_USERNAME / NEMLIG_PASSWORD). Missing file is fine.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Run(ctx, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
