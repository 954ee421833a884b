package format

import "github.com/dgallion1/notiondoc/internal/doctree"

func span(s string) doctree.RichText {
	return doctree.RichText{Type: "text", PlainText: s, Text: &doctree.TextSpan{Content: s}}
}

func spans(s string) []doctree.RichText {
	return []doctree.RichText{span(s)}
}

func para(s string, children ...doctree.Block) doctree.Block {
	return doctree.Block{Content: doctree.Paragraph{RichText: spans(s)}, Children: children}
}

func num(s string, children ...doctree.Block) doctree.Block {
	return doctree.Block{Content: doctree.NumberedListItem{RichText: spans(s)}, Children: children}
}

func bullet(s string, children ...doctree.Block) doctree.Block {
	return doctree.Block{Content: doctree.BulletedListItem{RichText: spans(s)}, Children: children}
}

func heading(level int, s string) doctree.Block {
	return doctree.Block{Content: doctree.Heading{Level: level, RichText: spans(s)}}
}

func code(lang, s string) doctree.Block {
	return doctree.Block{Content: doctree.Code{Language: lang, RichText: spans(s)}}
}

func divider() doctree.Block {
	return doctree.Block{Content: doctree.Divider{}}
}

func pageLink(id string) doctree.Block {
	return doctree.Block{Content: doctree.LinkToPage{LinkType: "page_id", PageID: id}}
}

func unknown(kind string) doctree.Block {
	return doctree.Block{Content: doctree.Unknown{Type: kind}}
}

var allModes = []Mode{ModeHTML, ModeMarkdown, ModePlain}
