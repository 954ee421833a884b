package format

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// LinkableTerm is the anchor a page reference renders to.
type LinkableTerm struct {
	Title  string
	Anchor string
}

// LinkableTerms indexes linkable pages by id. Ids are compared without
// dashes, the API uses both spellings.
type LinkableTerms map[string]LinkableTerm

// NormalizeID strips dashes from a page id.
func NormalizeID(id string) string {
	return strings.ReplaceAll(id, "-", "")
}

func (t LinkableTerms) Add(pageID string, term LinkableTerm) {
	t[NormalizeID(pageID)] = term
}

func (t LinkableTerms) Lookup(pageID string) (LinkableTerm, bool) {
	term, ok := t[NormalizeID(pageID)]
	return term, ok
}

// RenderPageLink renders a reference to pageID. It fails with
// *MissingPageError when terms has no entry for the page.
func RenderPageLink(pageID string, terms LinkableTerms, mode Mode) (string, error) {
	term, ok := terms.Lookup(pageID)
	if !ok {
		return "", &MissingPageError{PageID: pageID}
	}
	switch mode {
	case ModeHTML:
		return fmt.Sprintf(`<a href="#%s">%s</a>`, html.EscapeString(term.Anchor), html.EscapeString(term.Title)), nil
	case ModeMarkdown:
		return fmt.Sprintf("[%s](#%s)", term.Title, term.Anchor), nil
	default:
		return term.Title, nil
	}
}

// FormatAnchor turns a title into a lowercase dash-delimited key.
func FormatAnchor(title string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return sb.String()
}
