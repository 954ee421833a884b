package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgallion1/notiondoc/internal/config"
	"github.com/dgallion1/notiondoc/internal/notion"
	"github.com/dgallion1/notiondoc/internal/record"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "notiondump",
	Short: "Dump Notion database records",
	Long: `notiondump queries the configured Notion databases and prints records as
pretty JSON or rendered text. Configuration is read from the environment;
NOTION_TOKEN is required.`,
	SilenceUsage: true,
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log retries and requests to stderr")
}

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// session is the configured client stack one command runs against.
type session struct {
	cfg    config.Config
	log    *slog.Logger
	client *notion.Client
	store  *record.Store
}

// openSession builds a session from the environment.
func openSession() (*session, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level := slog.LevelError
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	client := notion.NewClient(notion.Options{
		BaseURL:        cfg.NotionAPIURL,
		Token:          cfg.NotionToken,
		Version:        cfg.NotionVersion,
		Timeout:        cfg.HTTPTimeout,
		MaxConcurrency: cfg.MaxConcurrentFetch,
		StatsWindow:    cfg.StatsWindow,
	}, log)
	opts := notion.RetryOptions{Attempts: cfg.RetryAttempts, Delay: cfg.RetryDelay}
	return &session{
		cfg:    cfg,
		log:    log,
		client: client,
		store:  record.NewStore(client, cfg.Databases, opts, log),
	}, nil
}

func (s *session) Close() {
	s.log.Debug("notion calls", "stats", s.client.Stats.Snapshot())
	s.client.Close()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
