package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m04kA/SMC-PadelBooking/internal/config"
	"github.com/m04kA/SMC-PadelBooking/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-PadelBooking/internal/session"
	"github.com/m04kA/SMC-PadelBooking/internal/wizard"
	"github.com/m04kA/SMC-PadelBooking/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file (optional)")
	logout := flag.Bool("logout", false, "forget the stored session and exit")
	logLevel := flag.String("log-level", "warn", "log level for diagnostics on stderr")
	flag.Parse()

	cfg, err := config.LoadClient(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewWithWriter(os.Stderr, *logLevel)
	defer log.Close()

	store := session.NewFileStore(cfg.BookingAPI.SessionFile, log)
	if *logout {
		if err := store.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to clear session: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Logged out.")
		return
	}

	client := bookingapi.NewClient(cfg.BookingAPI.URL, time.Duration(cfg.BookingAPI.Timeout)*time.Second, log)
	wiz := wizard.New(store, client, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := newApp(os.Stdin, os.Stdout, wiz, client, store)
	if err := a.run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "padelctl: %v\n", err)
		os.Exit(1)
	}
}
