package format

import "github.com/dgallion1/notiondoc/internal/doctree"

// State is the render context of one block within its sibling sequence.
// Values are never mutated in place; At and Next return successors.
type State struct {
	// Prev is the kind of the previous sibling, empty for the first one.
	Prev doctree.Kind
	// Index is the ordinal of the current numbered-list item.
	Index int
	// Last marks the final block of the sequence.
	Last bool
}

// NewState returns the state at the start of a sibling sequence.
func NewState() State {
	return State{Index: 1}
}

// At returns the state used to render a block of kind k. A numbered-list
// item that follows a block of a different kind starts a new run at 1.
func (s State) At(k doctree.Kind, last bool) State {
	if k == doctree.KindNumberedListItem && s.Prev != k {
		s.Index = 1
	}
	s.Last = last
	return s
}

// Next returns the state after a block of kind k has been rendered.
func (s State) Next(k doctree.Kind) State {
	if k == doctree.KindNumberedListItem {
		s.Index++
	}
	s.Prev = k
	s.Last = false
	return s
}
