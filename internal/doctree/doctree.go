package doctree

import (
	"errors"
	"strings"
)

// ErrStructure is matched by every error caused by content whose shape the
// renderer or fetcher cannot accept. Such errors are never retried.
var ErrStructure = errors.New("unexpected content structure")

// Page is a fetched page together with its complete block tree.
type Page struct {
	Page   PageObject
	Blocks []Block
}

// PageObject is the full page record returned by the remote API.
type PageObject struct {
	ID         string              `json:"id"`
	URL        string              `json:"url"`
	Icon       *Icon               `json:"icon"`
	Properties map[string]Property `json:"properties"`
}

// Block is a node in the content tree. Children are owned exclusively by
// the block and keep the order the remote API returned them in.
type Block struct {
	ID       string
	Content  Content
	Children []Block
}

// Kind returns the type tag of the block.
func (b Block) Kind() Kind {
	if b.Content == nil {
		return ""
	}
	return b.Content.Kind()
}

// Kind is a block type tag as named by the remote API.
type Kind string

const (
	KindParagraph        Kind = "paragraph"
	KindNumberedListItem Kind = "numbered_list_item"
	KindBulletedListItem Kind = "bulleted_list_item"
	KindCode             Kind = "code"
	KindDivider          Kind = "divider"
	KindLinkToPage       Kind = "link_to_page"
	KindHeading1         Kind = "heading_1"
	KindHeading2         Kind = "heading_2"
	KindHeading3         Kind = "heading_3"
)

// IsList reports whether blocks of this kind are grouped into list runs.
func (k Kind) IsList() bool {
	return k == KindNumberedListItem || k == KindBulletedListItem
}

// Content is the type-specific payload of a block. The set of
// implementations is closed; anything the decoder does not know becomes
// Unknown.
type Content interface {
	Kind() Kind
	isContent()
}

type Paragraph struct {
	RichText []RichText
}

type NumberedListItem struct {
	RichText []RichText
}

type BulletedListItem struct {
	RichText []RichText
}

type Code struct {
	RichText []RichText
	Language string
}

type Divider struct{}

// LinkToPage references another page or database. Only page references
// (LinkType "page_id") can be rendered.
type LinkToPage struct {
	LinkType   string
	PageID     string
	DatabaseID string
}

// Heading covers heading_1 to heading_3. Toggleable headings collapse their
// content and render as nothing.
type Heading struct {
	Level      int
	RichText   []RichText
	Toggleable bool
}

// Unknown carries the raw type tag of a block kind outside the enumerated
// set so the failure surfaces at render time with the offending name.
type Unknown struct {
	Type string
}

func (Paragraph) Kind() Kind        { return KindParagraph }
func (NumberedListItem) Kind() Kind { return KindNumberedListItem }
func (BulletedListItem) Kind() Kind { return KindBulletedListItem }
func (Code) Kind() Kind             { return KindCode }
func (Divider) Kind() Kind          { return KindDivider }
func (LinkToPage) Kind() Kind       { return KindLinkToPage }
func (u Unknown) Kind() Kind        { return Kind(u.Type) }

func (h Heading) Kind() Kind {
	switch h.Level {
	case 1:
		return KindHeading1
	case 2:
		return KindHeading2
	default:
		return KindHeading3
	}
}

func (Paragraph) isContent()        {}
func (NumberedListItem) isContent() {}
func (BulletedListItem) isContent() {}
func (Code) isContent()             {}
func (Divider) isContent()          {}
func (LinkToPage) isContent()       {}
func (Heading) isContent()          {}
func (Unknown) isContent()          {}

// RichText is one inline span of text.
type RichText struct {
	Type        string       `json:"type"`
	PlainText   string       `json:"plain_text"`
	Href        string       `json:"href,omitempty"`
	Annotations Annotations  `json:"annotations"`
	Text        *TextSpan    `json:"text,omitempty"`
	Mention     *Mention     `json:"mention,omitempty"`
	Equation    *EquationRef `json:"equation,omitempty"`
}

type Annotations struct {
	Bold          bool   `json:"bold"`
	Italic        bool   `json:"italic"`
	Strikethrough bool   `json:"strikethrough"`
	Underline     bool   `json:"underline"`
	Code          bool   `json:"code"`
	Color         string `json:"color,omitempty"`
}

type TextSpan struct {
	Content string    `json:"content"`
	Link    *LinkHref `json:"link,omitempty"`
}

type LinkHref struct {
	URL string `json:"url"`
}

type Mention struct {
	Type string `json:"type"`
	Page *IDRef `json:"page,omitempty"`
}

type EquationRef struct {
	Expression string `json:"expression"`
}

type IDRef struct {
	ID string `json:"id"`
}

// PlainText concatenates the plain text of all spans.
func PlainText(spans []RichText) string {
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(s.PlainText)
	}
	return sb.String()
}

// Icon is a page icon; a nil *Icon means the page has none.
type Icon struct {
	Type     string    `json:"type"`
	Emoji    string    `json:"emoji,omitempty"`
	External *LinkHref `json:"external,omitempty"`
	File     *FileRef  `json:"file,omitempty"`
}

type FileRef struct {
	URL        string `json:"url"`
	ExpiryTime string `json:"expiry_time"`
}

// Property is a page property value. Type names which of the fields is
// populated.
type Property struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	Title       []RichText     `json:"title,omitempty"`
	RichText    []RichText     `json:"rich_text,omitempty"`
	Relation    []IDRef        `json:"relation,omitempty"`
	Select      *SelectOption  `json:"select,omitempty"`
	MultiSelect []SelectOption `json:"multi_select,omitempty"`
	URL         *string        `json:"url,omitempty"`
}

type SelectOption struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}
