package api

import (
	"encoding/json"
	"net/http"

	"github.com/dgallion1/notiondoc/internal/doctree"
	"github.com/dgallion1/notiondoc/internal/notion"
	"github.com/dgallion1/notiondoc/internal/record"
	"github.com/go-chi/chi/v5"
)

// handleGlossary renders the whole glossary as Markdown sections or as a
// JSON object keyed by anchor.
func (s *Server) handleGlossary(w http.ResponseWriter, r *http.Request) {
	defs, err := s.store.LookupGlossaryTerms(r.Context(), notion.Query{})
	if err != nil {
		s.fetchFailure(w, r, err)
		return
	}
	terms := record.LinkableTermsFor(defs)

	switch r.URL.Query().Get("format") {
	case "", "markdown", "md":
		out, err := record.RenderGlossary(defs, terms, s.icons)
		if err != nil {
			s.renderFailure(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Write([]byte(out))
	case "json":
		out, err := record.RenderGlossaryJSON(defs, terms, s.icons)
		if err != nil {
			s.renderFailure(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(out))
	default:
		jsonError(w, "format must be markdown or json", http.StatusBadRequest)
	}
}

// handleFAQs lists publishable FAQs, optionally filtered by question text.
func (s *Server) handleFAQs(w http.ResponseWriter, r *http.Request) {
	faqs, err := s.store.LookupFAQs(r.Context(), record.PublishedFAQQuery(r.URL.Query().Get("contains")))
	if err != nil {
		s.fetchFailure(w, r, err)
		return
	}

	terms := record.LinkableTermsFor(faqs)
	rendered := make([]record.RenderedItem, 0, len(faqs))
	for _, f := range faqs {
		item, err := record.RenderKnowledgeItem(f, terms, s.icons)
		if err != nil {
			s.renderFailure(w, r, err)
			return
		}
		rendered = append(rendered, item)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"faqs": rendered})
}

// handleQuestions lists questions with their categories resolved.
func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := s.store.LookupQuestions(r.Context(), record.QuestionQuery(r.URL.Query().Get("contains")))
	if err != nil {
		s.fetchFailure(w, r, err)
		return
	}

	type questionView struct {
		record.Question
		QuestionText string `json:"questionText"`
		AnswerText   string `json:"answerText"`
	}
	views := make([]questionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, questionView{
			Question:     q,
			QuestionText: doctree.PlainText(q.Question),
			AnswerText:   doctree.PlainText(q.Answer),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"questions": views})
}

// handleProject resolves a project name to its page id.
func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	pageID, err := s.store.LookupProject(r.Context(), name)
	if err != nil {
		s.fetchFailure(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"name": name, "pageId": pageID})
}

// handlePortal lists the projects shown on the portal.
func (s *Server) handlePortal(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.LookupPortalProjects(r.Context(), notion.Query{})
	if err != nil {
		s.fetchFailure(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"projects": projects})
}
