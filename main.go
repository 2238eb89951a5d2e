package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	_ "time/tzdata"

	"pet-feeder-backend/internal/api"
	"pet-feeder-backend/internal/camera"
	"pet-feeder-backend/internal/config"
	"pet-feeder-backend/internal/db"
	"pet-feeder-backend/internal/kafka"
	"pet-feeder-backend/internal/metrics"
	"pet-feeder-backend/internal/notify"
	"pet-feeder-backend/internal/queue"
	"pet-feeder-backend/internal/schedule"
	"pet-feeder-backend/internal/telemetry"
	"pet-feeder-backend/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	level, _ := cfg.LogLevel()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	slog.InfoContext(ctx, "Starting service...", "addr", cfg.HTTP.Addr)
	metrics.Init()

	store, err := db.Init(ctx, db.Config{
		ConnString:      cfg.Database.URL,
		MigrationsPath:  cfg.Database.MigrationsPath,
		MaxConns:        cfg.Database.MaxConns,
		ConnectAttempts: cfg.Database.ConnectAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	})
	if err != nil {
		slog.ErrorContext(ctx, "Failed to initialise database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	var notifier queue.Notifier
	if cfg.MQTT.Broker != "" {
		n, err := notify.New(ctx, notify.Config{
			Broker:      cfg.MQTT.Broker,
			ClientID:    cfg.MQTT.ClientID,
			Username:    cfg.MQTT.Username,
			Password:    cfg.MQTT.Password,
			TopicPrefix: cfg.MQTT.TopicPrefix,
			Timeout:     cfg.MQTT.Timeout,
		})
		if err != nil {
			slog.ErrorContext(ctx, "Failed to connect to MQTT broker", "error", err)
			os.Exit(1)
		}
		defer n.Close()
		notifier = n
	}

	var publisher telemetry.Publisher
	if cfg.Kafka.Brokers != "" {
		p := kafka.NewPublisher(kafka.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.TelemetryTopic,
		})
		defer p.Close(ctx)
		publisher = p
	}

	commands := queue.New(queue.Config{Store: store, Notifier: notifier})
	schedules := schedule.New(store)

	a := api.New(api.Config{
		Queue:     commands,
		Telemetry: telemetry.New(telemetry.Config{Store: store, Publisher: publisher}),
		Schedules: schedules,
		Camera: camera.New(camera.Config{
			Store:       store,
			FallbackURL: cfg.Camera.FallbackStreamURL,
		}),
		Health:          store,
		DefaultDeviceID: cfg.Feeder.DefaultDeviceID,
	})

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      api.NewRouter(a),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	wg := sync.WaitGroup{}

	if cfg.Scheduler.Enabled {
		loc, _ := cfg.Location()
		w := worker.New(worker.Config{
			Name:     "schedule-evaluator",
			Interval: cfg.Scheduler.Interval,
			Processor: schedule.NewEvaluator(schedule.EvaluatorConfig{
				Store:    store,
				Firer:    commands,
				Location: loc,
			}),
		})
		wg.Go(func() {
			w.Run(ctx)
		})
	}

	wg.Go(func() {
		slog.InfoContext(ctx, "HTTP server listening", "addr", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "HTTP server error", "error", err)
			cancel()
		}
	})

	select {
	case <-sigs:
		slog.InfoContext(ctx, "Shutdown signal received")
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "HTTP server shutdown error", "error", err)
	}
	cancel()
	wg.Wait()
	slog.InfoContext(ctx, "Service stopped")
}
