package outline

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromMarkdown_HeadingHierarchy(t *testing.T) {
	input := `Intro text.

# Title

Para.

## Section A

- one
- two

## Section B

### Subsection B1

B1 **content**.
`
	got := FromMarkdown([]byte(input))
	want := []*Section{{
		Title: "Title",
		Level: 1,
		Text:  "Para.",
		Children: []*Section{
			{Title: "Section A", Level: 2, Text: "one\ntwo"},
			{Title: "Section B", Level: 2, Children: []*Section{
				{Title: "Subsection B1", Level: 3, Text: "B1 content."},
			}},
		},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("outline mismatch (-want +got):\n%s", diff)
	}
}

func TestFromMarkdown_NoHeadings(t *testing.T) {
	got := FromMarkdown([]byte("just text\n\n---\n\nmore text\n"))
	if len(got) != 1 {
		t.Fatalf("expected a single section, got %d", len(got))
	}
	if got[0].Title != "" || got[0].Text != "just text\n\nmore text" {
		t.Errorf("unexpected section: %+v", got[0])
	}
}

func TestFromMarkdown_SkippedLevels(t *testing.T) {
	got := FromMarkdown([]byte("### Deep\n\n# Top\n\n### Child\n"))
	titles := Titles(got)
	want := []string{"Deep", "Top", "  Child"}
	if diff := cmp.Diff(want, titles); diff != "" {
		t.Errorf("titles mismatch (-want +got):\n%s", diff)
	}
}

func TestFromHTML_RenderedDocument(t *testing.T) {
	input := "<h1>Guide</h1>\n\n<p>\nIntro\n</p>\n\n<h2>Setup</h2>\n\n<ol>\n<li>a</li>\n<li>b</li></ol>\n\n<script>x()</script>"
	got, err := FromHTML(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []*Section{{
		Title: "Guide",
		Level: 1,
		Text:  "Intro",
		Children: []*Section{
			{Title: "Setup", Level: 2, Text: "a\n\nb"},
		},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("outline mismatch (-want +got):\n%s", diff)
	}
}

func TestHeadingLevel(t *testing.T) {
	tests := map[string]int{"h1": 1, "h6": 6, "h7": 0, "hr": 0, "p": 0, "header": 0}
	for tag, want := range tests {
		if got := headingLevel(tag); got != want {
			t.Errorf("headingLevel(%q): expected %d, got %d", tag, want, got)
		}
	}
}
