package theme

import "charm.land/lipgloss/v2"

// Styles contains the pre-built lipgloss styles shared by the TUI.
type Styles struct {
	ModalContainer lipgloss.Style
	ModalTitle     lipgloss.Style

	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	Required     lipgloss.Style
	Muted        lipgloss.Style
	Text         lipgloss.Style

	Selected   lipgloss.Style
	Chip       lipgloss.Style
	ChipActive lipgloss.Style
	ChipCursor lipgloss.Style

	StepDone    lipgloss.Style
	StepCurrent lipgloss.Style
	StepTodo    lipgloss.Style

	HintKey       lipgloss.Style
	HintDesc      lipgloss.Style
	HintSeparator lipgloss.Style

	Toast  lipgloss.Style
	Banner lipgloss.Style
	Error  lipgloss.Style
}

func (t *Theme) buildStyles() *Styles {
	c := lipgloss.Color
	chip := lipgloss.NewStyle().Padding(0, 1).MarginRight(1)
	return &Styles{
		ModalContainer: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(t.Secondary)).
			Background(c(t.BgBase)).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Foreground(c(t.Primary)).
			Bold(true).
			Align(lipgloss.Center),

		Label:        lipgloss.NewStyle().Foreground(c(t.FgSubtle)),
		LabelFocused: lipgloss.NewStyle().Foreground(c(t.Secondary)).Bold(true),
		Required:     lipgloss.NewStyle().Foreground(c(t.Error)),
		Muted:        lipgloss.NewStyle().Foreground(c(t.FgMuted)).Italic(true),
		Text:         lipgloss.NewStyle().Foreground(c(t.FgBase)),

		Selected: lipgloss.NewStyle().
			Foreground(c(t.Primary)).
			Background(c(t.BgSurface0)).
			Bold(true),
		Chip:       chip.Foreground(c(t.FgSubtle)).Background(c(t.BgSurface0)),
		ChipActive: chip.Foreground(c(t.BgBase)).Background(c(t.Primary)).Bold(true),
		ChipCursor: chip.Foreground(c(t.BgBase)).Background(c(t.Secondary)).Underline(true),

		StepDone:    lipgloss.NewStyle().Foreground(c(t.Success)),
		StepCurrent: lipgloss.NewStyle().Foreground(c(t.Primary)).Bold(true),
		StepTodo:    lipgloss.NewStyle().Foreground(c(t.FgMuted)),

		HintKey:       lipgloss.NewStyle().Foreground(c(t.FgSubtle)).Bold(true),
		HintDesc:      lipgloss.NewStyle().Foreground(c(t.FgMuted)),
		HintSeparator: lipgloss.NewStyle().Foreground(c(t.BgSurface1)),

		Toast: lipgloss.NewStyle().
			Foreground(c(t.BgBase)).
			Background(c(t.Error)).
			Padding(0, 1).
			Bold(true),
		Banner: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			PaddingLeft(1),
		Error: lipgloss.NewStyle().Foreground(c(t.Error)),
	}
}
