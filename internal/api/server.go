package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/notiondoc/internal/config"
	"github.com/dgallion1/notiondoc/internal/format"
	"github.com/dgallion1/notiondoc/internal/notion"
	"github.com/dgallion1/notiondoc/internal/record"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for notiondoc.
type Server struct {
	router chi.Router
	store  *record.Store
	stats  *notion.Stats
	icons  format.IconRenderer
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server. stats may be nil when
// call statistics are not collected.
func NewServer(store *record.Store, stats *notion.Stats, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		store: store,
		stats: stats,
		icons: format.NewIconRenderer(cfg.IconBlacklist),
		log:   log,
		cfg:   cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.NotiondocAPIKey, s.log))

		r.Get("/api/documents", s.handleDocuments)
		r.Get("/api/documents/{pageID}", s.handleDocument)
		r.Get("/api/documents/{pageID}/preview", s.handleDocumentPreview)
		r.Get("/api/documents/{pageID}/outline", s.handleDocumentOutline)

		r.Get("/api/glossary", s.handleGlossary)
		r.Get("/api/faqs", s.handleFAQs)
		r.Get("/api/questions", s.handleQuestions)
		r.Get("/api/projects/{name}", s.handleProject)
		r.Get("/api/portal", s.handlePortal)

		r.Get("/api/stats/notion", s.handleNotionStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
