package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/notiondoc/internal/api"
	"github.com/dgallion1/notiondoc/internal/config"
	"github.com/dgallion1/notiondoc/internal/notion"
	"github.com/dgallion1/notiondoc/internal/record"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.ValidateServer(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Initialize clients.
	client := notion.NewClient(notion.Options{
		BaseURL:        cfg.NotionAPIURL,
		Token:          cfg.NotionToken,
		Version:        cfg.NotionVersion,
		Timeout:        cfg.HTTPTimeout,
		MaxConcurrency: cfg.MaxConcurrentFetch,
		StatsWindow:    cfg.StatsWindow,
	}, log)
	retry := notion.RetryOptions{Attempts: cfg.RetryAttempts, Delay: cfg.RetryDelay}
	store := record.NewStore(client, cfg.Databases, retry, log)

	// Initialize HTTP server.
	srv := api.NewServer(store, client.Stats, log, cfg)

	// The write timeout leaves room for a full retry budget.
	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120*time.Second + time.Duration(cfg.RetryAttempts)*cfg.RetryDelay,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		client.Close()
	}()

	log.Info("starting notiondoc", "port", cfg.Port, "retry_attempts", retry.Attempts, "retry_delay", retry.Delay)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
