package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/launchdash/launchdash/server/internal/api"
	"github.com/launchdash/launchdash/server/internal/config"
	"github.com/launchdash/launchdash/server/internal/dashboard"
	"github.com/launchdash/launchdash/server/internal/dataset"
	"github.com/launchdash/launchdash/server/internal/metrics"
	"github.com/launchdash/launchdash/server/internal/page"
	"github.com/launchdash/launchdash/server/internal/ws"
)

func main() {
	configPath := flag.String("config", "", "path to config file; built-in defaults when empty")
	flag.Parse()

	level := new(slog.LevelVar)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	slog.Info("launchdash starting", "config", *configPath)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			slog.Error("failed to load config", "err", err)
			os.Exit(1)
		}
	}
	level.Set(cfg.Log.SlogLevel())

	slog.Info("config loaded",
		"http_port", cfg.Server.HTTPPort,
		"dataset", cfg.Dataset.Path,
		"sites", len(cfg.Dataset.Sites),
		"log_level", cfg.Log.Level,
	)

	// The table is immutable from here on and shared by every handler.
	table, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		slog.Error("failed to load dataset", "path", cfg.Dataset.Path, "err", err)
		os.Exit(1)
	}
	lo, hi := table.PayloadBounds()
	slog.Info("dataset: loaded",
		"records", table.Len(),
		"sites", table.Sites(),
		"payload_min", lo,
		"payload_max", hi,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	collector := metrics.New()
	registry := dashboard.NewDashboard(table, collector)
	layout := dashboard.NewLayout(table, cfg.Dataset.Sites, dashboard.SliderBounds{
		Min:  cfg.Slider.Min,
		Max:  cfg.Slider.Max,
		Step: cfg.Slider.Step,
	})

	index, err := page.New(layout, page.Options{Pretty: cfg.Server.PrettyHTML})
	if err != nil {
		slog.Error("failed to render page", "err", err)
		os.Exit(1)
	}

	// WebSocket hub: answers control events with recomputed figures.
	hub := ws.New(registry, layout.DefaultState())
	go hub.Run(ctx)

	collector.AddGauge("dataset_records", "Launch records loaded at startup.",
		func() float64 { return float64(table.Len()) })
	collector.AddGauge("ws_clients", "Connected WebSocket clients.",
		func() float64 { return float64(hub.Count()) })

	// Only the log level is applied on reload; dataset and layout are fixed.
	if *configPath != "" {
		go func() {
			if err := config.Watch(ctx, *configPath, func(updated *config.Config) {
				level.Set(updated.Log.SlogLevel())
			}); err != nil {
				slog.Error("config watcher stopped", "err", err)
			}
		}()
	}

	httpMux := http.NewServeMux()
	httpMux.Handle("/api/", api.New(table, registry, layout))
	httpMux.Handle("/ws/controls", hub)
	httpMux.Handle("/metrics", collector)
	httpMux.Handle("/", index)

	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler: httpMux,
	}
	go func() {
		slog.Info("HTTP server listening", "port", cfg.Server.HTTPPort)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server stopped", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("launchdash shutting down")

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer stop()
	httpSrv.Shutdown(shutdownCtx) //nolint:errcheck
}
