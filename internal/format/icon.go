package format

import "github.com/dgallion1/notiondoc/internal/doctree"

// IconRenderer renders page icons. Only emoji icons produce output.
type IconRenderer struct {
	blacklist map[string]struct{}
}

// NewIconRenderer returns a renderer that never emits the given emoji.
func NewIconRenderer(blacklist []string) IconRenderer {
	set := make(map[string]struct{}, len(blacklist))
	for _, e := range blacklist {
		set[e] = struct{}{}
	}
	return IconRenderer{blacklist: set}
}

// Render returns the emoji followed by a space, or "" for missing,
// non-emoji or blacklisted icons.
func (r IconRenderer) Render(icon *doctree.Icon) string {
	if icon == nil || icon.Type != "emoji" || icon.Emoji == "" {
		return ""
	}
	if _, ok := r.blacklist[icon.Emoji]; ok {
		return ""
	}
	return icon.Emoji + " "
}
