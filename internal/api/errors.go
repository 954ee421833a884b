package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dgallion1/notiondoc/internal/doctree"
	"github.com/dgallion1/notiondoc/internal/notion"
	"github.com/dgallion1/notiondoc/internal/record"
	"github.com/go-chi/chi/v5/middleware"
)

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// statusClientClosedRequest marks requests the client abandoned before the
// lookup finished.
const statusClientClosedRequest = 499

// fetchFailure maps lookup errors to a response status.
func (s *Server) fetchFailure(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *notion.APIError
	switch {
	case errors.Is(err, context.Canceled):
		s.log.Info("request canceled", "path", r.URL.Path, "request_id", middleware.GetReqID(r.Context()))
		w.WriteHeader(statusClientClosedRequest)
	case notion.IsNotFound(err), errors.Is(err, record.ErrProjectNotFound):
		jsonError(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &apiErr), errors.Is(err, context.DeadlineExceeded):
		s.log.Error("notion request failed", "path", r.URL.Path, "error", err)
		jsonError(w, "upstream request failed: "+err.Error(), http.StatusBadGateway)
	case errors.Is(err, doctree.ErrStructure):
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		s.log.Error("lookup failed", "path", r.URL.Path, "error", err)
		jsonError(w, err.Error(), http.StatusInternalServerError)
	}
}

// renderFailure logs missing-page diagnostics for render errors before
// answering 422.
func (s *Server) renderFailure(w http.ResponseWriter, r *http.Request, err error) {
	var re *record.RenderError
	if !errors.As(err, &re) {
		s.fetchFailure(w, r, err)
		return
	}
	record.HandleRenderError(r.Context(), err, s.store.Source(), s.log)
	jsonError(w, err.Error(), http.StatusUnprocessableEntity)
}
