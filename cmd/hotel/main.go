package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"hotelier/internal/audit"
	"hotelier/internal/config"
	"hotelier/internal/events"
	"hotelier/internal/hotel"
	"hotelier/internal/metrics"
	"hotelier/internal/model"
	"hotelier/internal/session"
	"hotelier/internal/storage"
)

func main() {
	// Initialize logger
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	logger := zerolog.New(output).With().Timestamp().Logger()

	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("HOTEL_CONFIG_PATH"))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	bus := events.NewBus()
	svc := hotel.NewService(bus, &logger)
	store := storage.New(cfg.Data.RoomsFile, cfg.Data.ReservationsFile, &logger)

	if cfg.Audit.Enabled {
		trail := audit.NewTrail(cfg.Audit.Path, &logger)
		trail.Attach(bus)
	}

	bus.Subscribe(events.TypeBookingCreated, func(e events.Event) error {
		category := "unknown"
		if room, ok := svc.Room(e.Reservation.RoomNumber); ok {
			category = room.Category
		}
		metrics.IncBookingCreated(category)
		return nil
	})
	bus.Subscribe(events.TypeBookingCancelled, func(e events.Event) error {
		metrics.IncBookingCancelled()
		return nil
	})

	// A broken or unreadable state file is not fatal: warn and carry on,
	// the seed catalog fills in an empty catalog below.
	if err := store.Load(svc); err != nil {
		logger.Warn().Err(err).Msg("could not load saved state")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Monitoring.PrometheusEnabled {
		metrics.Register()
		go startMetricsServer(ctx, cfg.Monitoring.PrometheusPort, &logger)
	}

	seeds := make([]model.Room, 0, len(cfg.SeedRooms))
	for _, r := range cfg.SeedRooms {
		seeds = append(seeds, model.Room{Number: r.Number, Category: r.Category, PricePerNight: r.Price})
	}

	sess := session.New(svc, store, os.Stdin, os.Stdout, &logger, session.Options{
		Seeds:        seeds,
		PaymentDelay: cfg.PaymentDelay(),
		ExportPath:   cfg.Export.Path,
	})
	sess.Run()
}

func startMetricsServer(ctx context.Context, port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("metrics server error")
	}
}
