package wizard

import (
	"strings"

	"github.com/mark3labs/trainer/internal/tui/theme"
)

// renderHintBar renders key-description pairs.
// Example: renderHintBar("tab", "next field", "ctrl+n", "next step")
// Returns: "tab next field • ctrl+n next step"
func renderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}
	s := theme.Current().S()

	var b strings.Builder
	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString(" " + s.HintSeparator.Render("•") + " ")
		}
		b.WriteString(s.HintKey.Render(pairs[i]) + " " + s.HintDesc.Render(pairs[i+1]))
	}
	return b.String()
}

// renderLabel renders a field label, marking required fields and focus.
func renderLabel(label string, required, focused bool) string {
	s := theme.Current().S()
	style := s.Label
	if focused {
		style = s.LabelFocused
	}
	out := style.Render(label)
	if required {
		out += s.Required.Render(" *")
	}
	return out
}

// cursorMark returns the focus gutter for a row.
func cursorMark(focused bool) string {
	if focused {
		return theme.Current().S().LabelFocused.Render("▸ ")
	}
	return "  "
}
