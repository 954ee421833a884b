package record

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgallion1/notiondoc/internal/doctree"
	"github.com/dgallion1/notiondoc/internal/format"
	"github.com/dgallion1/notiondoc/internal/notion"
)

// KnowledgeItem is a record with a short rich text body, such as a
// glossary definition or an FAQ answer.
type KnowledgeItem struct {
	Record
	Text []doctree.RichText `json:"text"`
}

// ParseItemPage reads a knowledge item whose title and text live in the
// named properties.
func ParseItemPage(page doctree.Page, titleProp, textProp string) (KnowledgeItem, error) {
	rec, err := ParseRecordPage(page, titleProp)
	if err != nil {
		return KnowledgeItem{}, err
	}
	text, err := richTextProperty(page.Page.Properties, textProp)
	if err != nil {
		return KnowledgeItem{}, err
	}
	return KnowledgeItem{Record: rec, Text: text}, nil
}

// RenderedItem is a knowledge item ready for output. Title is Markdown,
// TitleForSort is plain text and Text is HTML.
type RenderedItem struct {
	Title        string `json:"title"`
	TitleForSort string `json:"-"`
	Icon         string `json:"icon,omitempty"`
	Text         string `json:"text"`
	Key          string `json:"key"`
}

// RenderError wraps any failure to render a record with the record that
// caused it.
type RenderError struct {
	RecordID string
	URL      string
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.URL, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// RenderKnowledgeItem renders item. The body comes from the item's blocks
// and falls back to its text property when the blocks render empty.
func RenderKnowledgeItem(item KnowledgeItem, terms format.LinkableTerms, icons format.IconRenderer) (RenderedItem, error) {
	fail := func(err error) (RenderedItem, error) {
		return RenderedItem{}, &RenderError{RecordID: item.ID, URL: item.URL, Err: err}
	}

	title, err := format.RenderRichTexts(item.Title, terms, format.ModeMarkdown)
	if err != nil {
		return fail(err)
	}
	sortTitle, err := format.RenderRichTexts(item.Title, terms, format.ModePlain)
	if err != nil {
		return fail(err)
	}
	text, err := format.RenderBlocks(item.Blocks, terms, format.ModeHTML)
	if err != nil {
		return fail(err)
	}
	if text == "" {
		body, err := format.RenderRichTexts(item.Text, terms, format.ModeHTML)
		if err != nil {
			return fail(err)
		}
		text = "<p>\n" + body + "\n</p>"
	}
	return RenderedItem{
		Title:        title,
		TitleForSort: sortTitle,
		Icon:         icons.Render(item.Icon),
		Text:         text,
		Key:          format.FormatAnchor(sortTitle),
	}, nil
}

// PrintItem renders item as a Markdown section with an explicit anchor.
func PrintItem(item RenderedItem, includeIcon bool) string {
	icon := ""
	if includeIcon {
		icon = item.Icon
	}
	return fmt.Sprintf("### %s%s {#%s}\n%s\n\n", icon, item.Title, item.Key, item.Text)
}

// PrintItemJSON renders item as one member of a JSON object keyed by the
// item key.
func PrintItemJSON(item RenderedItem) string {
	return jsonString(item.Key) + `:{"title":` + jsonString(item.Title) + `,"text":` + jsonString(item.Text) + "}"
}

// jsonString quotes s as a JSON string, leaving HTML unescaped.
func jsonString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}

// PageGetter retrieves single pages.
type PageGetter interface {
	GetPage(ctx context.Context, pageID string, opts notion.RetryOptions) (doctree.PageObject, error)
}

// HandleRenderError logs diagnostics for a RenderError. When the render
// failed on a link to a page that has no linkable term, the page is looked
// up to tell an unpublished page from one the integration cannot see. It
// reports whether err was a RenderError caused by a missing page.
func HandleRenderError(ctx context.Context, err error, pages PageGetter, log *slog.Logger) bool {
	var re *RenderError
	if !errors.As(err, &re) {
		return false
	}
	log.Error("render failed", "record", re.RecordID, "url", re.URL, "error", re.Err)

	var missing *format.MissingPageError
	if !errors.As(re.Err, &missing) {
		return false
	}
	page, err := pages.GetPage(ctx, missing.PageID, notion.RetryOptions{Attempts: 1})
	switch {
	case errors.Is(err, doctree.ErrStructure):
		log.Error("render failed on inaccessible page", "page_id", missing.PageID)
	case err != nil:
		log.Error("failed to retrieve page for error info", "page_id", missing.PageID, "error", err)
	default:
		log.Error("render failed on page without linkable term", "page_id", page.ID, "url", page.URL)
	}
	return true
}
