package format

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/notiondoc/internal/doctree"
	"golang.org/x/net/html"
)

// RenderBlocks renders a sibling sequence and, recursively, the children of
// each block. The whole render fails on the first error.
func RenderBlocks(blocks []doctree.Block, terms LinkableTerms, mode Mode) (string, error) {
	return renderSequence(blocks, terms, mode, NewState())
}

func renderSequence(blocks []doctree.Block, terms LinkableTerms, mode Mode, st State) (string, error) {
	var sb strings.Builder
	for i, b := range blocks {
		kind := b.Kind()
		cur := st.At(kind, i == len(blocks)-1)
		out, err := RenderBlock(b, terms, mode, cur)
		if err != nil {
			return "", err
		}
		sb.WriteString(out)
		// Markdown blocks carry their own spacing.
		if mode != ModeMarkdown {
			sb.WriteByte('\n')
		}
		st = cur.Next(kind)
	}
	return sb.String(), nil
}

// RenderBlock renders one block in the context st, including list group
// markers in HTML mode.
func RenderBlock(b doctree.Block, terms LinkableTerms, mode Mode, st State) (string, error) {
	body, err := renderBody(b, terms, mode, st)
	if err != nil {
		return "", err
	}
	if mode != ModeHTML {
		return body, nil
	}
	prefix, postfix := groupMarkers(b.Kind(), st)
	return prefix + body + postfix, nil
}

// groupMarkers opens and closes <ol>/<ul> around runs of list items. A run
// is closed when the kind changes or when its item is the last sibling.
func groupMarkers(kind doctree.Kind, st State) (prefix, postfix string) {
	if st.Prev != kind {
		if st.Prev.IsList() {
			prefix = closeList(st.Prev)
		}
		if kind.IsList() {
			prefix += openList(kind)
		}
	}
	if st.Last && kind.IsList() {
		postfix = closeList(kind)
	}
	return prefix, postfix
}

func openList(kind doctree.Kind) string {
	if kind == doctree.KindNumberedListItem {
		return "<ol>\n"
	}
	return "<ul>\n"
}

func closeList(kind doctree.Kind) string {
	if kind == doctree.KindNumberedListItem {
		return "</ol>\n"
	}
	return "</ul>\n"
}

func renderBody(b doctree.Block, terms LinkableTerms, mode Mode, st State) (string, error) {
	switch c := b.Content.(type) {
	case doctree.Paragraph:
		text, err := richWithChildren(b, c.RichText, terms, mode, mode)
		if err != nil {
			return "", err
		}
		if mode == ModeHTML {
			return "<p>\n" + text + "\n</p>\n", nil
		}
		return text + "\n\n", nil

	case doctree.NumberedListItem:
		text, err := richWithChildren(b, c.RichText, terms, mode, mode)
		if err != nil {
			return "", err
		}
		if mode == ModeHTML {
			return "<li>" + text + "</li>", nil
		}
		return fmt.Sprintf("%d. %s\n", st.Index, text), nil

	case doctree.BulletedListItem:
		text, err := richWithChildren(b, c.RichText, terms, mode, mode)
		if err != nil {
			return "", err
		}
		switch mode {
		case ModeHTML:
			return "<li>" + text + "</li>", nil
		case ModeMarkdown:
			return "- " + text + "\n", nil
		}
		return "• " + text + "\n", nil

	case doctree.Code:
		text, err := richWithChildren(b, c.RichText, terms, ModePlain, mode)
		if err != nil {
			return "", err
		}
		switch mode {
		case ModeHTML:
			return fmt.Sprintf(`<pre><code class="language-%s">%s</code></pre>`+"\n", html.EscapeString(c.Language), text), nil
		case ModeMarkdown:
			return "```" + c.Language + "\n" + text + "\n```\n", nil
		}
		return text + "\n", nil

	case doctree.Divider:
		switch mode {
		case ModeHTML:
			return "<hr />", nil
		case ModeMarkdown:
			return "---\n\n", nil
		}
		return "\n---\n\n", nil

	case doctree.LinkToPage:
		if c.LinkType != "page_id" {
			return "", &UnsupportedLinkError{Type: c.LinkType}
		}
		return RenderPageLink(c.PageID, terms, mode)

	case doctree.Heading:
		return renderHeading(b, c, terms, mode)

	default:
		return "", &UnknownBlockError{Type: string(b.Kind())}
	}
}

func renderHeading(b doctree.Block, h doctree.Heading, terms LinkableTerms, mode Mode) (string, error) {
	if h.Toggleable {
		return "", nil
	}
	text, err := richWithChildren(b, h.RichText, terms, ModePlain, mode)
	if err != nil {
		return "", err
	}
	switch mode {
	case ModeHTML:
		return fmt.Sprintf("<h%d>%s</h%d>\n", h.Level, text, h.Level), nil
	case ModeMarkdown:
		return "\n" + strings.Repeat("#", h.Level) + " " + text + "\n\n", nil
	}
	switch h.Level {
	case 1:
		return "\n" + text + "\n" + strings.Repeat("=", utf8.RuneCountInString(text)) + "\n\n", nil
	case 2:
		return "\n" + text + "\n" + strings.Repeat("-", utf8.RuneCountInString(text)) + "\n\n", nil
	}
	return "\n" + text + "\n\n", nil
}

// richWithChildren renders the block's spans in textMode followed by its
// children in mode. Plain spans embedded in HTML output are escaped.
func richWithChildren(b doctree.Block, spans []doctree.RichText, terms LinkableTerms, textMode, mode Mode) (string, error) {
	text, err := RenderRichTexts(spans, terms, textMode)
	if err != nil {
		return "", err
	}
	if textMode == ModePlain && mode == ModeHTML {
		text = html.EscapeString(text)
	}
	if len(b.Children) == 0 {
		return text, nil
	}
	children, err := RenderBlocks(b.Children, terms, mode)
	if err != nil {
		return "", err
	}
	return text + children, nil
}
