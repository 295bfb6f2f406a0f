package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"

	"gic-cinema/internal/booking"
	bookingdb "gic-cinema/internal/booking/db"
	"gic-cinema/internal/cli"
	"gic-cinema/internal/config"
	"gic-cinema/internal/database"
	"gic-cinema/internal/logger"
	"gic-cinema/internal/ticket"
)

func main() {
	envErr := config.LoadEnvFile()
	cfg := config.Load()
	if !cfg.Log.ColorEnabled {
		color.NoColor = true
	}

	appLogger, err := logger.NewLogger(logger.Options{
		Level:        cfg.Log.Level,
		Dir:          cfg.Log.Dir,
		ColorEnabled: cfg.Log.ColorEnabled,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Close()

	appLogger.Info("APP", "Starting GIC Cinemas booking system")
	if envErr != nil {
		appLogger.Info("CONFIG", ".env file not found, using environment variables")
	} else {
		appLogger.Info("CONFIG", "Loaded environment variables from .env file")
	}

	ctx := context.Background()

	bunDB, err := database.Open(ctx, cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("DATABASE", fmt.Sprintf("Failed to open booking store: %v", err))
	}
	defer bunDB.Close()

	registry := booking.NewRegistry(&bookingdb.DB{Bun: bunDB}, appLogger, cfg.Booking.IDMaxAttempts)

	console := cli.NewConsole(os.Stdin, os.Stdout, registry, appLogger)
	if cfg.Ticket.QREnabled {
		console.Tickets = ticket.NewQRGenerator(cfg.Ticket.SecretKey)
		appLogger.Info("TICKET", "Ticket QR codes enabled")
	}

	if err := console.Run(ctx); err != nil {
		bunDB.Close()
		appLogger.Fatal("APP", fmt.Sprintf("Session ended with error: %v", err))
	}
	appLogger.Info("APP", "Session ended")
}
