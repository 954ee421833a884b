package notion

import (
	"fmt"

	"github.com/dgallion1/notiondoc/internal/doctree"
)

// listResponse is one page of a paginated list endpoint.
type listResponse[T any] struct {
	Results    []T     `json:"results"`
	NextCursor *string `json:"next_cursor"`
	HasMore    bool    `json:"has_more"`
}

func (r listResponse[T]) next() (string, bool) {
	if !r.HasMore || r.NextCursor == nil || *r.NextCursor == "" {
		return "", false
	}
	return *r.NextCursor, true
}

// wirePage is a page as returned by the API. Partial pages only carry the
// object tag and id.
type wirePage struct {
	Object     string                      `json:"object"`
	ID         string                      `json:"id"`
	URL        *string                     `json:"url"`
	Icon       *doctree.Icon               `json:"icon"`
	Properties map[string]doctree.Property `json:"properties"`
}

func (p wirePage) object() (doctree.PageObject, error) {
	if p.URL == nil {
		return doctree.PageObject{}, fmt.Errorf("%w: found non-full page %s", doctree.ErrStructure, p.ID)
	}
	return doctree.PageObject{
		ID:         p.ID,
		URL:        *p.URL,
		Icon:       p.Icon,
		Properties: p.Properties,
	}, nil
}

type wireText struct {
	RichText []doctree.RichText `json:"rich_text"`
}

type wireCode struct {
	RichText []doctree.RichText `json:"rich_text"`
	Language string             `json:"language"`
}

type wireLink struct {
	Type       string `json:"type"`
	PageID     string `json:"page_id"`
	DatabaseID string `json:"database_id"`
}

type wireHeading struct {
	RichText     []doctree.RichText `json:"rich_text"`
	IsToggleable bool               `json:"is_toggleable"`
}

// wireBlock is a block as returned by the API. Partial blocks have no type.
type wireBlock struct {
	Object      string `json:"object"`
	ID          string `json:"id"`
	Type        string `json:"type"`
	HasChildren bool   `json:"has_children"`

	Paragraph        *wireText    `json:"paragraph"`
	NumberedListItem *wireText    `json:"numbered_list_item"`
	BulletedListItem *wireText    `json:"bulleted_list_item"`
	Code             *wireCode    `json:"code"`
	LinkToPage       *wireLink    `json:"link_to_page"`
	Heading1         *wireHeading `json:"heading_1"`
	Heading2         *wireHeading `json:"heading_2"`
	Heading3         *wireHeading `json:"heading_3"`
}

func (b wireBlock) full() bool {
	return b.Type != ""
}

func (b wireBlock) content() doctree.Content {
	switch doctree.Kind(b.Type) {
	case doctree.KindParagraph:
		return doctree.Paragraph{RichText: b.Paragraph.spans()}
	case doctree.KindNumberedListItem:
		return doctree.NumberedListItem{RichText: b.NumberedListItem.spans()}
	case doctree.KindBulletedListItem:
		return doctree.BulletedListItem{RichText: b.BulletedListItem.spans()}
	case doctree.KindCode:
		if b.Code == nil {
			return doctree.Code{}
		}
		return doctree.Code{RichText: b.Code.RichText, Language: b.Code.Language}
	case doctree.KindDivider:
		return doctree.Divider{}
	case doctree.KindLinkToPage:
		if b.LinkToPage == nil {
			return doctree.LinkToPage{}
		}
		return doctree.LinkToPage{
			LinkType:   b.LinkToPage.Type,
			PageID:     b.LinkToPage.PageID,
			DatabaseID: b.LinkToPage.DatabaseID,
		}
	case doctree.KindHeading1:
		return b.Heading1.heading(1)
	case doctree.KindHeading2:
		return b.Heading2.heading(2)
	case doctree.KindHeading3:
		return b.Heading3.heading(3)
	default:
		return doctree.Unknown{Type: b.Type}
	}
}

func (t *wireText) spans() []doctree.RichText {
	if t == nil {
		return nil
	}
	return t.RichText
}

func (h *wireHeading) heading(level int) doctree.Heading {
	if h == nil {
		return doctree.Heading{Level: level}
	}
	return doctree.Heading{Level: level, RichText: h.RichText, Toggleable: h.IsToggleable}
}
