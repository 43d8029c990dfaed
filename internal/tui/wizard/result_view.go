package wizard

import (
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/trainer/internal/plan"
	"github.com/mark3labs/trainer/internal/tui/theme"
)

// ResultView shows the generated report and plan.
type ResultView struct {
	viewport  viewport.Model
	result    plan.Result
	exportDir string
	exported  string
	width     int
	height    int
}

// NewResultView renders res into a scrollable view.
func NewResultView(res plan.Result, exportDir string) *ResultView {
	vp := viewport.New(viewport.WithWidth(80), viewport.WithHeight(20))
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	v := &ResultView{viewport: vp, result: res, exportDir: exportDir, width: 80, height: 20}
	v.render()
	return v
}

func (v *ResultView) render() {
	v.viewport.SetContent(renderMarkdown(plan.RenderMarkdown(v.result), v.width))
}

func (v *ResultView) SetSize(width, height int) {
	v.width = width
	v.height = max(height-2, 3)
	v.viewport.SetWidth(width)
	v.viewport.SetHeight(v.height)
	v.render()
}

// Exported returns the path of the last export, if any.
func (v *ResultView) Exported() string { return v.exported }

// Update scrolls the view; p exports the plan and r starts over.
func (v *ResultView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PlanExportedMsg:
		if msg.Err == nil {
			v.exported = msg.Path
		}
		return nil
	case tea.KeyPressMsg:
		switch msg.String() {
		case "p":
			res, dir := v.result, v.exportDir
			return func() tea.Msg {
				path, err := plan.Export(dir, res, time.Now())
				return PlanExportedMsg{Path: path, Err: err}
			}
		case "r":
			return func() tea.Msg { return StartOverMsg{} }
		}
	}
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return cmd
}

func (v *ResultView) View() string {
	st := theme.Current().S()
	footer := renderHintBar("↑↓", "scroll", "p", "export markdown", "r", "start over", "ctrl+c", "quit")
	if v.exported != "" {
		footer = st.Muted.Render("Saved to "+v.exported) + "  " + footer
	}
	return lipgloss.JoinVertical(lipgloss.Left, v.viewport.View(), "", footer)
}
