package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dgallion1/notiondoc/internal/record"
)

type Config struct {
	Port string

	// Notion API connection
	NotionToken   string
	NotionAPIURL  string
	NotionVersion string

	// Auth
	NotiondocAPIKey string

	// Fetching
	RetryAttempts      int
	RetryDelay         time.Duration
	MaxConcurrentFetch int
	HTTPTimeout        time.Duration

	// Call statistics
	StatsWindow time.Duration

	// Rendering
	IconBlacklist []string

	Databases record.Databases
}

func Load() Config {
	defaults := record.DefaultDatabases()
	cfg := Config{
		Port: envOr("PORT", "8091"),

		NotionToken:   os.Getenv("NOTION_TOKEN"),
		NotionAPIURL:  envOr("NOTION_API_URL", "https://api.notion.com"),
		NotionVersion: envOr("NOTION_VERSION", "2022-06-28"),

		NotiondocAPIKey: os.Getenv("NOTIONDOC_API_KEY"),

		RetryAttempts:      envInt("RETRY_ATTEMPTS", 3),
		RetryDelay:         envDuration("RETRY_DELAY", 5*time.Second),
		MaxConcurrentFetch: envInt("MAX_CONCURRENT_FETCH", 8),
		HTTPTimeout:        envDuration("HTTP_TIMEOUT", 30*time.Second),

		StatsWindow: envDuration("STATS_WINDOW", 1*time.Hour),

		IconBlacklist: envList("ICON_BLACKLIST", []string{"🧱"}),

		Databases: record.Databases{
			Documents:     envID("DOCUMENT_DATABASE_ID", defaults.Documents),
			Glossary:      envID("GLOSSARY_DATABASE_ID", defaults.Glossary),
			Questions:     envID("QUESTION_DATABASE_ID", defaults.Questions),
			QuestionTypes: envID("QUESTION_TYPE_DATABASE_ID", defaults.QuestionTypes),
			FAQs:          envID("FAQ_DATABASE_ID", defaults.FAQs),
			Projects:      envID("PROJECT_DATABASE_ID", defaults.Projects),
			Portal:        envID("PORTAL_DATABASE_ID", defaults.Portal),
		},
	}

	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = 1
	}
	if cfg.RetryDelay < 0 {
		cfg.RetryDelay = 0
	}
	if cfg.MaxConcurrentFetch <= 0 {
		cfg.MaxConcurrentFetch = 8
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = 1 * time.Hour
	}

	return cfg
}

// Validate checks the settings every entry point needs.
func (c Config) Validate() error {
	if c.NotionToken == "" {
		return fmt.Errorf("NOTION_TOKEN is required")
	}
	return nil
}

// ValidateServer additionally checks the settings of the HTTP server.
func (c Config) ValidateServer() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.NotiondocAPIKey == "" {
		return fmt.Errorf("NOTIONDOC_API_KEY is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envID reads a database id, accepting the dashed form.
func envID(key, fallback string) string {
	return strings.ReplaceAll(envOr(key, fallback), "-", "")
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

// envList splits a comma-separated value. An explicitly empty variable
// yields an empty list.
func envList(key string, fallback []string) []string {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
