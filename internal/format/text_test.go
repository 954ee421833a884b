package format

import (
	"errors"
	"testing"

	"github.com/dgallion1/notiondoc/internal/doctree"
)

func annotated(s string, a doctree.Annotations, href string) doctree.RichText {
	rt := doctree.RichText{Type: "text", PlainText: s, Annotations: a, Text: &doctree.TextSpan{Content: s}}
	if href != "" {
		rt.Href = href
		rt.Text.Link = &doctree.LinkHref{URL: href}
	}
	return rt
}

func TestRenderRichTexts_Annotations(t *testing.T) {
	bold := annotated("hi", doctree.Annotations{Bold: true}, "")
	boldItalic := annotated("hi", doctree.Annotations{Bold: true, Italic: true}, "")
	link := annotated("docs", doctree.Annotations{}, "https://example.com/?a=1&b=2")
	codeSpan := annotated("x<y", doctree.Annotations{Code: true}, "")
	space := annotated(" ", doctree.Annotations{Bold: true}, "")

	tests := []struct {
		name string
		span doctree.RichText
		mode Mode
		want string
	}{
		{"bold html", bold, ModeHTML, "<strong>hi</strong>"},
		{"bold markdown", bold, ModeMarkdown, "**hi**"},
		{"bold plain", bold, ModePlain, "hi"},
		{"bold italic html", boldItalic, ModeHTML, "<em><strong>hi</strong></em>"},
		{"bold italic markdown", boldItalic, ModeMarkdown, "_**hi**_"},
		{"link html", link, ModeHTML, `<a href="https://example.com/?a=1&amp;b=2">docs</a>`},
		{"link markdown", link, ModeMarkdown, "[docs](https://example.com/?a=1&b=2)"},
		{"link plain", link, ModePlain, "docs"},
		{"code html", codeSpan, ModeHTML, "<code>x&lt;y</code>"},
		{"code markdown", codeSpan, ModeMarkdown, "`x<y`"},
		{"whitespace markdown", space, ModeMarkdown, " "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderRichTexts([]doctree.RichText{tt.span}, nil, tt.mode)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRenderRichTexts_PageMention(t *testing.T) {
	terms := LinkableTerms{}
	terms.Add("1111-2222", LinkableTerm{Title: "Glossary", Anchor: "glossary"})
	mention := func(id string) doctree.RichText {
		return doctree.RichText{Type: "mention", PlainText: "ignored",
			Mention: &doctree.Mention{Type: "page", Page: &doctree.IDRef{ID: id}}}
	}

	got, err := RenderRichTexts([]doctree.RichText{span("See "), mention("11112222")}, terms, ModeMarkdown)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "See [Glossary](#glossary)"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	_, err = RenderRichTexts([]doctree.RichText{mention("9999")}, terms, ModeHTML)
	var me *MissingPageError
	if !errors.As(err, &me) || me.PageID != "9999" {
		t.Fatalf("expected MissingPageError for 9999, got %v", err)
	}
}

func TestRenderRichTexts_Equation(t *testing.T) {
	eq := doctree.RichText{Type: "equation", PlainText: "a<b", Equation: &doctree.EquationRef{Expression: "a<b"}}
	want := map[Mode]string{ModeHTML: "<code>a&lt;b</code>", ModeMarkdown: "$a<b$", ModePlain: "a<b"}
	for mode, w := range want {
		got, err := RenderRichTexts([]doctree.RichText{eq}, nil, mode)
		if err != nil {
			t.Fatalf("%s: %v", mode, err)
		}
		if got != w {
			t.Errorf("%s: expected %q, got %q", mode, w, got)
		}
	}
}

func TestRenderPageLink_EscapesHTML(t *testing.T) {
	terms := LinkableTerms{}
	terms.Add("p", LinkableTerm{Title: "Q&A", Anchor: "q-a"})
	got, err := RenderPageLink("p", terms, ModeHTML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := `<a href="#q-a">Q&amp;A</a>`; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFormatAnchor(t *testing.T) {
	tests := map[string]string{
		"Hello World":          "hello-world",
		"  API / SDK (v2)  ":   "api-sdk-v2",
		"Crème brûlée":         "crème-brûlée",
		"already-a-slug":       "already-a-slug",
		"!!!":                  "",
		"What is a Block?":     "what-is-a-block",
		"Multiple   spaces 42": "multiple-spaces-42",
	}
	for in, want := range tests {
		if got := FormatAnchor(in); got != want {
			t.Errorf("FormatAnchor(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := map[string]Mode{"html": ModeHTML, "Markdown": ModeMarkdown, "md": ModeMarkdown, " plain ": ModePlain, "txt": ModePlain}
	for in, want := range tests {
		got, err := ParseMode(in)
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseMode(%q): expected %s, got %s", in, want, got)
		}
	}
	if _, err := ParseMode("pdf"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestIconRenderer(t *testing.T) {
	r := NewIconRenderer([]string{"🧱"})
	tests := []struct {
		icon *doctree.Icon
		want string
	}{
		{nil, ""},
		{&doctree.Icon{Type: "emoji", Emoji: "📘"}, "📘 "},
		{&doctree.Icon{Type: "emoji", Emoji: "🧱"}, ""},
		{&doctree.Icon{Type: "external", External: &doctree.LinkHref{URL: "https://x"}}, ""},
	}
	for _, tt := range tests {
		if got := r.Render(tt.icon); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}
