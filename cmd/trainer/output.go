package main

import (
	"bytes"
	"io"
	"os"
	"strings"

	"charm.land/glamour/v2"
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/colorprofile"
	"github.com/mark3labs/trainer/internal/tui/theme"
)

// markdownWidth is the wrap width for rendered plans.
const markdownWidth = 100

// profileFor reports the colour support of w. Writers that are not
// terminals are plain.
func profileFor(w io.Writer) colorprofile.Profile {
	return colorprofile.Detect(w, os.Environ())
}

func colorless(p colorprofile.Profile) bool {
	return p == colorprofile.NoTTY || p == colorprofile.Ascii
}

// formatterFor picks the chroma formatter matching the terminal profile.
func formatterFor(p colorprofile.Profile) chroma.Formatter {
	switch p {
	case colorprofile.TrueColor:
		return formatters.Get("terminal16m")
	case colorprofile.ANSI256:
		return formatters.Get("terminal256")
	default:
		return formatters.Get("terminal")
	}
}

// highlight colours source in language lang for p. Colourless profiles get
// the source back unchanged.
func highlight(source, lang string, p colorprofile.Profile) string {
	if colorless(p) {
		return source
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	style := styles.Get("catppuccin-mocha")
	if style == nil {
		style = styles.Fallback
	}
	// Keep the terminal background instead of the style's.
	bg := chroma.MustParseColour(theme.Current().BgBase)
	if s, err := style.Builder().Transform(func(e chroma.StyleEntry) chroma.StyleEntry {
		e.Background = bg
		return e
	}).Build(); err == nil {
		style = s
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}
	var buf bytes.Buffer
	if err := formatterFor(p).Format(&buf, style, iterator); err != nil {
		return source
	}
	return buf.String()
}

// renderMarkdown styles md with glamour for colour terminals and returns it
// untouched otherwise.
func renderMarkdown(md string, p colorprofile.Profile) string {
	if colorless(p) {
		return md
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(markdownWidth),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSuffix(out, "\n") + "\n"
}
