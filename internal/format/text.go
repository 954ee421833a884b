package format

import (
	"fmt"
	"strings"

	"github.com/dgallion1/notiondoc/internal/doctree"
	"golang.org/x/net/html"
)

// RenderRichTexts renders inline spans. Page mentions resolve through
// RenderPageLink and fail the same way.
func RenderRichTexts(spans []doctree.RichText, terms LinkableTerms, mode Mode) (string, error) {
	var sb strings.Builder
	for _, s := range spans {
		out, err := renderRichText(s, terms, mode)
		if err != nil {
			return "", err
		}
		sb.WriteString(out)
	}
	return sb.String(), nil
}

func renderRichText(s doctree.RichText, terms LinkableTerms, mode Mode) (string, error) {
	switch s.Type {
	case "mention":
		if s.Mention != nil && s.Mention.Type == "page" && s.Mention.Page != nil {
			return RenderPageLink(s.Mention.Page.ID, terms, mode)
		}
		return decorate(s.PlainText, s.Href, s.Annotations, mode), nil
	case "equation":
		expr := s.PlainText
		if s.Equation != nil {
			expr = s.Equation.Expression
		}
		switch mode {
		case ModeHTML:
			return "<code>" + html.EscapeString(expr) + "</code>", nil
		case ModeMarkdown:
			return "$" + expr + "$", nil
		}
		return expr, nil
	default:
		content, href := s.PlainText, s.Href
		if s.Text != nil {
			content = s.Text.Content
			if s.Text.Link != nil {
				href = s.Text.Link.URL
			}
		}
		return decorate(content, href, s.Annotations, mode), nil
	}
}

func decorate(text, href string, a doctree.Annotations, mode Mode) string {
	switch mode {
	case ModeHTML:
		text = html.EscapeString(text)
		if a.Code {
			text = "<code>" + text + "</code>"
		}
		if a.Bold {
			text = "<strong>" + text + "</strong>"
		}
		if a.Italic {
			text = "<em>" + text + "</em>"
		}
		if a.Strikethrough {
			text = "<s>" + text + "</s>"
		}
		if a.Underline {
			text = "<u>" + text + "</u>"
		}
		if href != "" {
			text = fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(href), text)
		}
		return text
	case ModeMarkdown:
		// Emphasis markers around bare whitespace do not parse.
		if strings.TrimSpace(text) == "" {
			return text
		}
		if a.Code {
			text = "`" + text + "`"
		}
		if a.Bold {
			text = "**" + text + "**"
		}
		if a.Italic {
			text = "_" + text + "_"
		}
		if a.Strikethrough {
			text = "~~" + text + "~~"
		}
		if href != "" {
			text = "[" + text + "](" + href + ")"
		}
		return text
	default:
		return text
	}
}
