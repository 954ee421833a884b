package format

import (
	"strings"

	"github.com/dgallion1/notiondoc/internal/doctree"
)

type docState int

const (
	inBody docState = iota
	inMetadata
)

const metadataRule = "---\n"

// RenderDocument renders the top-level blocks of a document. A divider at
// position 0 opens a metadata preamble of plain paragraphs, closed by the
// next divider; metadata lines are always rendered as plain text. The
// remaining blocks render like RenderBlocks with a fresh State.
func RenderDocument(blocks []doctree.Block, terms LinkableTerms, mode Mode) (string, error) {
	var sb strings.Builder
	state := inBody
	for i, b := range blocks {
		switch state {
		case inBody:
			if i == 0 && b.Kind() == doctree.KindDivider {
				sb.WriteString(metadataRule)
				state = inMetadata
				continue
			}
			body, err := RenderBlocks(blocks[i:], terms, mode)
			if err != nil {
				return "", err
			}
			sb.WriteString(body)
			return sb.String(), nil

		case inMetadata:
			switch c := b.Content.(type) {
			case doctree.Divider:
				sb.WriteString(metadataRule)
				body, err := RenderBlocks(blocks[i+1:], terms, mode)
				if err != nil {
					return "", err
				}
				sb.WriteString(body)
				return sb.String(), nil
			case doctree.Paragraph:
				line, err := RenderRichTexts(c.RichText, terms, ModePlain)
				if err != nil {
					return "", err
				}
				sb.WriteString(line)
				sb.WriteByte('\n')
			default:
				return "", &MetadataBlockError{Type: string(b.Kind())}
			}
		}
	}
	if state == inMetadata {
		return "", ErrUnterminatedMetadata
	}
	return sb.String(), nil
}
