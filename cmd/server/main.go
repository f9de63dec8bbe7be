package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/text/language"

	"github.com/kaiobatista/roleta-neurocopa2025/internal/config"
	"github.com/kaiobatista/roleta-neurocopa2025/internal/session"
	"github.com/kaiobatista/roleta-neurocopa2025/internal/telemetry"
	"github.com/kaiobatista/roleta-neurocopa2025/internal/web"
	"github.com/kaiobatista/roleta-neurocopa2025/internal/wheel"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracing shutdown", slog.String("error", err.Error()))
		}
	}()

	catalog, err := wheel.LoadCatalog(cfg.PresetsPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Warn("presets file not found, using built-in preset", slog.String("path", cfg.PresetsPath))
		catalog = wheel.BuiltinCatalog()
	case err != nil:
		return err
	}

	tmpl, err := web.ParseTemplates(cfg.TemplatesDir)
	if err != nil {
		return err
	}

	srv := &web.Server{
		Catalog:        catalog,
		Store:          session.NewMemoryStore[web.Visitor](cfg.SessionTTL),
		Tmpl:           tmpl,
		RNG:            wheel.StdRNG{},
		Log:            log,
		SpinDuration:   cfg.SpinDuration,
		DefaultLang:    language.Make(cfg.DefaultLang),
		AllowedOrigins: cfg.AllowedOrigins,
		StaticDir:      cfg.StaticDir,
	}

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", slog.String("addr", cfg.HTTPAddr), slog.Int("presets", len(catalog.Presets)))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpSrv.Shutdown(sctx)
}
