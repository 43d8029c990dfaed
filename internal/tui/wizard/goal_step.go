package wizard

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/trainer/internal/form"
	"github.com/mark3labs/trainer/internal/tui/theme"
)

// GoalStep selects the training goal and weekly frequency.
type GoalStep struct {
	goal  *choiceField
	days  *choiceField
	focus int
	last  form.Goal
}

// NewGoalStep creates the step populated from g.
func NewGoalStep(g form.Goal) *GoalStep {
	s := &GoalStep{
		goal: newChoiceField("Goal", true, optionsOf(form.GoalTypes)),
		days: newChoiceField("Days per week", false, optionsOf(form.DaysOptions)),
	}
	s.Load(g)
	return s
}

// Load replaces both selections without emitting a change.
func (s *GoalStep) Load(g form.Goal) {
	s.goal.Set(string(g.Type))
	s.days.Set(string(g.DaysPerWeek))
	s.last = s.Goal()
}

// Goal returns the section value.
func (s *GoalStep) Goal() form.Goal {
	return form.Goal{
		Type:        form.GoalType(s.goal.Value()),
		DaysPerWeek: form.DaysPerWeek(s.days.Value()),
	}
}

func (s *GoalStep) SetSize(int, int) {}
func (s *GoalStep) Focus() tea.Cmd   { return nil }
func (s *GoalStep) Blur()            {}

func (s *GoalStep) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "tab", "down", "shift+tab", "up":
			s.focus = 1 - s.focus
			return nil
		}
	}
	field := s.goal
	if s.focus == 1 {
		field = s.days
	}
	if !field.Update(msg) {
		return nil
	}
	g := s.Goal()
	if g == s.last {
		return nil
	}
	s.last = g
	return func() tea.Msg { return SectionChangedMsg{Section: g} }
}

func (s *GoalStep) View() string {
	st := theme.Current().S()
	return lipgloss.JoinVertical(lipgloss.Left,
		s.goal.View(s.focus == 0),
		"",
		s.days.View(s.focus == 1),
		"",
		st.Muted.Render("Leave the frequency unset to let the planner decide."),
	)
}

func (s *GoalStep) Hints() []string {
	return []string{"←/→", "choose"}
}
