package format

import (
	"fmt"

	"github.com/dgallion1/notiondoc/internal/doctree"
)

// ErrUnterminatedMetadata is returned when a document opens a metadata
// preamble with a divider and never closes it.
var ErrUnterminatedMetadata = fmt.Errorf("%w: metadata preamble has no closing divider", doctree.ErrStructure)

// UnknownBlockError reports a block kind the renderer has no rule for.
type UnknownBlockError struct {
	Type string
}

func (e *UnknownBlockError) Error() string {
	return fmt.Sprintf("found block of unknown type %q", e.Type)
}

func (e *UnknownBlockError) Is(target error) bool { return target == doctree.ErrStructure }

// UnsupportedLinkError reports a link_to_page block that does not point at
// a page in the same workspace.
type UnsupportedLinkError struct {
	Type string
}

func (e *UnsupportedLinkError) Error() string {
	return fmt.Sprintf("unhandled link_to_page type %q", e.Type)
}

func (e *UnsupportedLinkError) Is(target error) bool { return target == doctree.ErrStructure }

// MetadataBlockError reports a non-paragraph block inside a document's
// metadata preamble.
type MetadataBlockError struct {
	Type string
}

func (e *MetadataBlockError) Error() string {
	return fmt.Sprintf("can only have paragraph in metadata but found type %q", e.Type)
}

func (e *MetadataBlockError) Is(target error) bool { return target == doctree.ErrStructure }

// MissingPageError is returned by the link resolver when a referenced page
// has no linkable term.
type MissingPageError struct {
	PageID string
}

func (e *MissingPageError) Error() string {
	return fmt.Sprintf("missing linkable page %s", e.PageID)
}
