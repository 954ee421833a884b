package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dgallion1/notiondoc/internal/doctree"
	"github.com/dgallion1/notiondoc/internal/format"
	"github.com/dgallion1/notiondoc/internal/notion"
	"github.com/dgallion1/notiondoc/internal/outline"
	"github.com/dgallion1/notiondoc/internal/record"
	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	"golang.org/x/sync/errgroup"
)

// loadDocument fetches a document together with the glossary terms its
// page links resolve against.
func (s *Server) loadDocument(ctx context.Context, pageID string) (record.Document, format.LinkableTerms, error) {
	var (
		doc   record.Document
		terms format.LinkableTerms
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		doc, err = s.store.LookupDocument(gctx, pageID)
		return err
	})
	g.Go(func() error {
		defs, err := s.store.LookupGlossaryTerms(gctx, notion.Query{})
		if err != nil {
			return err
		}
		terms = record.LinkableTermsFor(defs)
		return nil
	})
	if err := g.Wait(); err != nil {
		return record.Document{}, nil, err
	}
	return doc, terms, nil
}

// handleDocuments lists documents, optionally only those published under
// the slug query parameter. Bodies are not rendered.
func (s *Server) handleDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.store.LookupDocuments(r.Context(), record.DocumentQuery(r.URL.Query().Get("slug")))
	if err != nil {
		s.fetchFailure(w, r, err)
		return
	}

	type documentView struct {
		ID    string `json:"id"`
		URL   string `json:"url"`
		Title string `json:"title"`
		Slug  string `json:"slug"`
	}
	views := make([]documentView, 0, len(docs))
	for _, d := range docs {
		views = append(views, documentView{
			ID:    d.ID,
			URL:   d.URL,
			Title: doctree.PlainText(d.Title),
			Slug:  d.SlugText(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"documents": views})
}

// handleDocument renders a document in the requested mode.
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")
	mode, err := parseMode(r.URL.Query().Get("mode"), format.ModeHTML)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	doc, terms, err := s.loadDocument(r.Context(), pageID)
	if err != nil {
		s.fetchFailure(w, r, err)
		return
	}
	text, err := doc.Render(terms, mode)
	if err != nil {
		s.renderFailure(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"id":   doc.ID,
		"url":  doc.URL,
		"slug": doc.SlugText(),
		"mode": mode.String(),
		"text": text,
	})
}

// handleDocumentPreview renders a document to Markdown and converts it to
// a standalone HTML page.
func (s *Server) handleDocumentPreview(w http.ResponseWriter, r *http.Request) {
	doc, terms, err := s.loadDocument(r.Context(), chi.URLParam(r, "pageID"))
	if err != nil {
		s.fetchFailure(w, r, err)
		return
	}
	md, err := doc.Render(terms, format.ModeMarkdown)
	if err != nil {
		s.renderFailure(w, r, err)
		return
	}

	// Drop the metadata preamble; goldmark would read it as a heading.
	body := stripPreamble(md)

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(body), &buf); err != nil {
		jsonError(w, "failed to convert markdown: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// handleDocumentOutline returns the heading outline of a rendered document.
func (s *Server) handleDocumentOutline(w http.ResponseWriter, r *http.Request) {
	mode, err := parseMode(r.URL.Query().Get("mode"), format.ModeMarkdown)
	if err != nil || mode == format.ModePlain {
		jsonError(w, "mode must be html or markdown", http.StatusBadRequest)
		return
	}

	doc, terms, err := s.loadDocument(r.Context(), chi.URLParam(r, "pageID"))
	if err != nil {
		s.fetchFailure(w, r, err)
		return
	}
	text, err := doc.Render(terms, mode)
	if err != nil {
		s.renderFailure(w, r, err)
		return
	}

	body := stripPreamble(text)
	var sections []*outline.Section
	if mode == format.ModeHTML {
		sections, err = outline.FromHTML(strings.NewReader(body))
		if err != nil {
			jsonError(w, err.Error(), http.StatusInternalServerError)
			return
		}
	} else {
		sections = outline.FromMarkdown([]byte(body))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"id":       doc.ID,
		"mode":     mode.String(),
		"sections": sections,
	})
}

func parseMode(v string, fallback format.Mode) (format.Mode, error) {
	if v == "" {
		return fallback, nil
	}
	return format.ParseMode(v)
}

// stripPreamble removes a leading metadata block delimited by "---" lines.
func stripPreamble(text string) string {
	const rule = "---\n"
	if !strings.HasPrefix(text, rule) {
		return text
	}
	rest := text[len(rule):]
	if strings.HasPrefix(rest, rule) {
		return rest[len(rule):]
	}
	end := strings.Index(rest, "\n"+rule)
	if end < 0 {
		return text
	}
	return rest[end+1+len(rule):]
}
