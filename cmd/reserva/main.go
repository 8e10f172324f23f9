package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lfreitas/reserva/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	apiBind := flag.String("api", "", "override reservation API address (optional)")
	pollSeconds := flag.Int("poll", 0, "background refresh interval in seconds (optional)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		APIBind:    *apiBind,
		Debug:      *debug,
	}
	if poll := *pollSeconds; poll > 0 {
		opts.PollEvery = poll
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "reserva: %v\n", err)
		return 1
	}
	return 0
}
