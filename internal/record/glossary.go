package record

import (
	"context"
	"slices"
	"strings"

	"github.com/dgallion1/notiondoc/internal/doctree"
	"github.com/dgallion1/notiondoc/internal/format"
	"github.com/dgallion1/notiondoc/internal/notion"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Glossary property names.
const (
	GlossaryTermProp       = "Term"
	GlossaryDefinitionProp = "Definition (HTML)"
)

// Definition is a glossary entry.
type Definition = KnowledgeItem

// LookupGlossaryTerms returns the glossary entries matching q with their
// block trees.
func (s *Store) LookupGlossaryTerms(ctx context.Context, q notion.Query) ([]Definition, error) {
	db, err := s.database("glossary", s.dbs.Glossary)
	if err != nil {
		return nil, err
	}
	return s.lookupItems(ctx, db, q, GlossaryTermProp, GlossaryDefinitionProp)
}

func (s *Store) lookupItems(ctx context.Context, db string, q notion.Query, titleProp, textProp string) ([]KnowledgeItem, error) {
	pages, err := s.src.QueryDatabaseWithBlocks(ctx, db, q, s.opts)
	if err != nil {
		return nil, err
	}
	items := make([]KnowledgeItem, 0, len(pages))
	for _, p := range pages {
		item, err := ParseItemPage(p, titleProp, textProp)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// LinkableTermsFor indexes items by page id so references between them
// resolve to their anchors.
func LinkableTermsFor(items []KnowledgeItem) format.LinkableTerms {
	terms := make(format.LinkableTerms, len(items))
	for _, it := range items {
		title := doctree.PlainText(it.Title)
		terms.Add(it.ID, format.LinkableTerm{Title: title, Anchor: format.FormatAnchor(title)})
	}
	return terms
}

// renderSorted renders items and orders them by their plain title using
// English collation.
func renderSorted(items []KnowledgeItem, terms format.LinkableTerms, icons format.IconRenderer) ([]RenderedItem, error) {
	rendered := make([]RenderedItem, 0, len(items))
	for _, it := range items {
		r, err := RenderKnowledgeItem(it, terms, icons)
		if err != nil {
			return nil, err
		}
		rendered = append(rendered, r)
	}
	col := collate.New(language.English, collate.Loose)
	slices.SortStableFunc(rendered, func(a, b RenderedItem) int {
		return col.CompareString(a.TitleForSort, b.TitleForSort)
	})
	return rendered, nil
}

// RenderGlossary renders definitions as Markdown sections sorted by term.
func RenderGlossary(defs []Definition, terms format.LinkableTerms, icons format.IconRenderer) (string, error) {
	rendered, err := renderSorted(defs, terms, icons)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, r := range rendered {
		sb.WriteString(PrintItem(r, true))
	}
	return sb.String(), nil
}

// RenderGlossaryJSON renders definitions as one JSON object keyed by
// anchor, with members sorted by term.
func RenderGlossaryJSON(defs []Definition, terms format.LinkableTerms, icons format.IconRenderer) (string, error) {
	rendered, err := renderSorted(defs, terms, icons)
	if err != nil {
		return "", err
	}
	members := make([]string, 0, len(rendered))
	for _, r := range rendered {
		members = append(members, PrintItemJSON(r))
	}
	return "{\n" + strings.Join(members, ",\n") + "\n}", nil
}
