package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/trainer/internal/tui/theme"
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonDisabled
	ButtonFocused
)

// Button is a single entry of a ButtonBar.
type Button struct {
	Label string
	State ButtonState
}

// ButtonBar renders a centred row of buttons.
type ButtonBar struct {
	buttons []Button
	width   int
}

func NewButtonBar(buttons []Button) *ButtonBar {
	return &ButtonBar{buttons: buttons, width: 60}
}

func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// Render renders the button bar.
func (b *ButtonBar) Render() string {
	if len(b.buttons) == 0 {
		return ""
	}
	t := theme.Current()
	base := lipgloss.NewStyle().Padding(0, 2).MarginLeft(1).MarginRight(1)
	normal := base.Foreground(theme.Color(t.FgBase)).Background(theme.Color(t.BgSurface0))
	disabled := base.Foreground(theme.Color(t.FgMuted)).Background(theme.Color(t.BgMantle))
	focused := base.Foreground(theme.Color(t.BgBase)).Background(theme.Color(t.Secondary)).Bold(true)

	rendered := make([]string, 0, len(b.buttons))
	for _, btn := range b.buttons {
		switch btn.State {
		case ButtonDisabled:
			rendered = append(rendered, disabled.Render(btn.Label))
		case ButtonFocused:
			rendered = append(rendered, focused.Render(btn.Label))
		default:
			rendered = append(rendered, normal.Render(btn.Label))
		}
	}
	return lipgloss.Place(b.width, 1, lipgloss.Center, lipgloss.Center, strings.Join(rendered, ""))
}

// CreateBackNextButtons creates the Back / Next (or Generate) pair.
// The next button is highlighted when it can be pressed.
func CreateBackNextButtons(backEnabled, nextEnabled bool, nextLabel string) []Button {
	back := Button{Label: "← Back", State: ButtonNormal}
	if !backEnabled {
		back.State = ButtonDisabled
	}
	next := Button{Label: nextLabel, State: ButtonFocused}
	if !nextEnabled {
		next.State = ButtonDisabled
	}
	return []Button{back, next}
}
