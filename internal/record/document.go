package record

import (
	"context"

	"github.com/dgallion1/notiondoc/internal/doctree"
	"github.com/dgallion1/notiondoc/internal/format"
	"github.com/dgallion1/notiondoc/internal/notion"
)

const (
	DocumentTitleProp = "Title"
	DocumentSlugProp  = "Published slug"
)

// Document is a long-form page from the document database.
type Document struct {
	Record
	Slug []doctree.RichText `json:"slug"`
}

func ParseDocumentPage(page doctree.Page) (Document, error) {
	rec, err := ParseRecordPage(page, DocumentTitleProp)
	if err != nil {
		return Document{}, err
	}
	slug, err := richTextProperty(page.Page.Properties, DocumentSlugProp)
	if err != nil {
		return Document{}, err
	}
	return Document{Record: rec, Slug: slug}, nil
}

// LookupDocument fetches a single document with its block tree.
func (s *Store) LookupDocument(ctx context.Context, pageID string) (Document, error) {
	page, err := s.src.GetPageWithBlocks(ctx, pageID, s.opts)
	if err != nil {
		return Document{}, err
	}
	return ParseDocumentPage(*page)
}

// LookupDocuments returns the documents matching q with their block trees.
func (s *Store) LookupDocuments(ctx context.Context, q notion.Query) ([]Document, error) {
	db, err := s.database("document", s.dbs.Documents)
	if err != nil {
		return nil, err
	}
	pages, err := s.src.QueryDatabaseWithBlocks(ctx, db, q, s.opts)
	if err != nil {
		return nil, err
	}
	docs := make([]Document, 0, len(pages))
	for _, p := range pages {
		d, err := ParseDocumentPage(p)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, nil
}

// DocumentQuery selects the documents published under slug, or every
// document when slug is empty.
func DocumentQuery(slug string) notion.Query {
	if slug == "" {
		return notion.Query{}
	}
	return notion.Query{Filter: TextEquals(DocumentSlugProp, slug)}
}

// Render renders the document body, metadata preamble included.
func (d Document) Render(terms format.LinkableTerms, mode format.Mode) (string, error) {
	out, err := format.RenderDocument(d.Blocks, terms, mode)
	if err != nil {
		return "", &RenderError{RecordID: d.ID, URL: d.URL, Err: err}
	}
	return out, nil
}

// SlugText returns the slug as plain text.
func (d Document) SlugText() string {
	return doctree.PlainText(d.Slug)
}
