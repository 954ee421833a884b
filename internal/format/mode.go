package format

import (
	"fmt"
	"strings"
)

// Mode selects the output grammar.
type Mode int

const (
	// ModeHTML emits nested tags.
	ModeHTML Mode = iota
	// ModeMarkdown emits line-oriented markup.
	ModeMarkdown
	// ModePlain emits text with minimal layout.
	ModePlain
)

func (m Mode) String() string {
	switch m {
	case ModeHTML:
		return "html"
	case ModeMarkdown:
		return "markdown"
	case ModePlain:
		return "plain"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts the names returned by String plus a few aliases.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "html":
		return ModeHTML, nil
	case "markdown", "md":
		return ModeMarkdown, nil
	case "plain", "text", "txt":
		return ModePlain, nil
	}
	return 0, fmt.Errorf("unknown render mode %q", s)
}
