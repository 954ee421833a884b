// Package outline recovers the heading structure of rendered documents.
package outline

import (
	"strings"
)

// Section is a heading with the text and subsections that follow it.
type Section struct {
	Title    string     `json:"title"`
	Level    int        `json:"level"`
	Text     string     `json:"text,omitempty"`
	Children []*Section `json:"children,omitempty"`
}

// builder nests sections by heading level. Text seen before the first
// heading collects on the root.
type builder struct {
	root  Section
	stack []*Section
	text  strings.Builder
}

func newBuilder() *builder {
	b := &builder{}
	b.stack = []*Section{&b.root}
	return b
}

func (b *builder) heading(level int, title string) {
	b.flush()
	s := &Section{Title: title, Level: level}
	// Pop until the top of the stack is a shallower heading.
	for len(b.stack) > 1 && b.stack[len(b.stack)-1].Level >= level {
		b.stack = b.stack[:len(b.stack)-1]
	}
	parent := b.stack[len(b.stack)-1]
	parent.Children = append(parent.Children, s)
	b.stack = append(b.stack, s)
}

func (b *builder) addText(t string) {
	if t == "" {
		return
	}
	if b.text.Len() > 0 {
		b.text.WriteString("\n\n")
	}
	b.text.WriteString(t)
}

func (b *builder) flush() {
	t := strings.TrimSpace(b.text.String())
	b.text.Reset()
	if t == "" {
		return
	}
	top := b.stack[len(b.stack)-1]
	if top.Text != "" {
		top.Text += "\n\n" + t
	} else {
		top.Text = t
	}
}

// sections returns the top-level sections. Without any heading, all text
// is returned as a single untitled section.
func (b *builder) sections() []*Section {
	b.flush()
	if len(b.root.Children) == 0 && b.root.Text != "" {
		return []*Section{{Text: b.root.Text}}
	}
	return b.root.Children
}

// Titles flattens the outline into indented heading titles.
func Titles(sections []*Section) []string {
	var out []string
	var walk func([]*Section, int)
	walk = func(ss []*Section, depth int) {
		for _, s := range ss {
			if s.Title != "" {
				out = append(out, strings.Repeat("  ", depth)+s.Title)
			}
			walk(s.Children, depth+1)
		}
	}
	walk(sections, 0)
	return out
}
