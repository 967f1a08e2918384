package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/five82/lyrics-overlay/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	console := flag.BoolP("console", "c", false, "print lyrics to the terminal instead of the overlay")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, app.Options{Console: *console}); err != nil {
		fmt.Fprintf(os.Stderr, "lyrics-overlay: %v\n", err)
		return 1
	}
	return 0
}
