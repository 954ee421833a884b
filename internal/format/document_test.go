package format

import (
	"errors"
	"testing"

	"github.com/dgallion1/notiondoc/internal/doctree"
)

func TestRenderDocument_MetadataPreamble(t *testing.T) {
	blocks := []doctree.Block{divider(), para("Author: A"), divider(), para("Body")}

	tests := []struct {
		mode Mode
		want string
	}{
		{ModeMarkdown, "---\nAuthor: A\n---\nBody\n\n"},
		{ModeHTML, "---\nAuthor: A\n---\n<p>\nBody\n</p>\n\n"},
		{ModePlain, "---\nAuthor: A\n---\nBody\n\n\n"},
	}
	for _, tt := range tests {
		got, err := RenderDocument(blocks, nil, tt.mode)
		if err != nil {
			t.Fatalf("%s: %v", tt.mode, err)
		}
		if got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.mode, tt.want, got)
		}
	}
}

func TestRenderDocument_MetadataIsPlain(t *testing.T) {
	bold := doctree.RichText{Type: "text", PlainText: "A & B", Text: &doctree.TextSpan{Content: "A & B"},
		Annotations: doctree.Annotations{Bold: true}}
	blocks := []doctree.Block{
		divider(),
		{Content: doctree.Paragraph{RichText: []doctree.RichText{bold}}},
		divider(),
	}
	got, err := RenderDocument(blocks, nil, ModeHTML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "---\nA & B\n---\n"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderDocument_WithoutMetadataMatchesRenderBlocks(t *testing.T) {
	blocks := []doctree.Block{heading(1, "T"), num("a"), divider(), num("b")}
	for _, mode := range allModes {
		doc, err := RenderDocument(blocks, nil, mode)
		if err != nil {
			t.Fatalf("%s: %v", mode, err)
		}
		if want := render(t, mode, blocks...); doc != want {
			t.Errorf("%s: expected %q, got %q", mode, want, doc)
		}
	}
}

func TestRenderDocument_NumbersListsAfterMetadata(t *testing.T) {
	blocks := []doctree.Block{divider(), para("k: v"), divider(), num("a"), num("b"), num("c")}
	got, err := RenderDocument(blocks, nil, ModeMarkdown)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "---\nk: v\n---\n1. a\n2. b\n3. c\n"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderDocument_NonParagraphInMetadata(t *testing.T) {
	blocks := []doctree.Block{divider(), bullet("nope"), divider()}
	_, err := RenderDocument(blocks, nil, ModeMarkdown)
	var me *MetadataBlockError
	if !errors.As(err, &me) {
		t.Fatalf("expected MetadataBlockError, got %v", err)
	}
	if me.Type != string(doctree.KindBulletedListItem) {
		t.Errorf("expected type %q, got %q", doctree.KindBulletedListItem, me.Type)
	}
	if !errors.Is(err, doctree.ErrStructure) {
		t.Errorf("expected error to match ErrStructure")
	}
}

func TestRenderDocument_UnterminatedMetadata(t *testing.T) {
	cases := [][]doctree.Block{
		{divider()},
		{divider(), para("Author: A"), para("Body")},
	}
	for _, blocks := range cases {
		_, err := RenderDocument(blocks, nil, ModePlain)
		if !errors.Is(err, ErrUnterminatedMetadata) {
			t.Errorf("expected ErrUnterminatedMetadata, got %v", err)
		}
		if !errors.Is(err, doctree.ErrStructure) {
			t.Errorf("expected error to match ErrStructure")
		}
	}
}

func TestRenderDocument_Empty(t *testing.T) {
	got, err := RenderDocument(nil, nil, ModeHTML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestRenderDocument_BodyErrorsPropagate(t *testing.T) {
	blocks := []doctree.Block{divider(), divider(), para("x"), unknown("synced_block")}
	_, err := RenderDocument(blocks, nil, ModeHTML)
	var ue *UnknownBlockError
	if !errors.As(err, &ue) || ue.Type != "synced_block" {
		t.Fatalf("expected UnknownBlockError for synced_block, got %v", err)
	}
}
