package wizard

import (
	"os"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/editor"
	"github.com/mark3labs/trainer/internal/form"
	"github.com/mark3labs/trainer/internal/logger"
	"github.com/mark3labs/trainer/internal/tui/theme"
)

// Preferences step rows, in focus order.
const (
	prefEnvironment = iota
	prefTime
	prefEquipment
	prefSchedule
	prefRequests
	prefRows
)

// PreferencesStep edits the optional training preferences.
type PreferencesStep struct {
	environment *choiceField
	time        *choiceField
	notes       [3]textarea.Model // equipment, schedule, requests
	focus       int
	last        form.Preferences
}

var noteLabels = [3]string{"Available equipment", "Schedule notes", "Specific requests"}

// NewPreferencesStep creates the step populated from p.
func NewPreferencesStep(p form.Preferences) *PreferencesStep {
	s := &PreferencesStep{
		environment: newChoiceField("Environment", true, optionsOf(form.Environments)),
		time:        newChoiceField("Session length", true, optionsOf(form.TrainingTimes)),
	}
	placeholders := [3]string{
		"e.g. dumbbells up to 20kg, pull-up bar",
		"e.g. weekday mornings only",
		"e.g. focus on posture",
	}
	for i := range s.notes {
		ta := textarea.New()
		ta.Placeholder = placeholders[i]
		ta.ShowLineNumbers = false
		ta.Prompt = ""
		ta.CharLimit = 1000
		ta.SetWidth(50)
		ta.SetHeight(2)
		s.notes[i] = ta
	}
	s.Load(p)
	return s
}

// Load replaces every field without emitting a change. Environment and
// session length always hold a value; blanks take the defaults.
func (s *PreferencesStep) Load(p form.Preferences) {
	def := form.Defaults().Preferences
	if p.Environment == "" {
		p.Environment = def.Environment
	}
	if p.TrainingTimeMinutes == "" {
		p.TrainingTimeMinutes = def.TrainingTimeMinutes
	}
	s.environment.Set(string(p.Environment))
	s.time.Set(string(p.TrainingTimeMinutes))
	s.notes[0].SetValue(p.Equipment)
	s.notes[1].SetValue(p.ScheduleNotes)
	s.notes[2].SetValue(p.SpecificRequests)
	s.last = s.Preferences()
}

// Preferences returns the section value.
func (s *PreferencesStep) Preferences() form.Preferences {
	return form.Preferences{
		Environment:         form.Environment(s.environment.Value()),
		TrainingTimeMinutes: form.TrainingTime(s.time.Value()),
		Equipment:           s.notes[0].Value(),
		ScheduleNotes:       s.notes[1].Value(),
		SpecificRequests:    s.notes[2].Value(),
	}
}

func (s *PreferencesStep) SetSize(width, _ int) {
	for i := range s.notes {
		s.notes[i].SetWidth(min(max(width-labelWidth-4, 20), 60))
	}
}

func (s *PreferencesStep) Focus() tea.Cmd {
	return s.setFocus(s.focus)
}

func (s *PreferencesStep) Blur() {
	for i := range s.notes {
		s.notes[i].Blur()
	}
}

func (s *PreferencesStep) setFocus(row int) tea.Cmd {
	s.Blur()
	s.focus = (row + prefRows) % prefRows
	if n := s.focus - prefEquipment; n >= 0 {
		return s.notes[n].Focus()
	}
	return nil
}

// Update handles input for the focused row. ctrl+e opens the focused text
// field in $EDITOR.
func (s *PreferencesStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case EditorFinishedMsg:
		if msg.Err != nil {
			logger.Warn("editor: %v", msg.Err)
			return nil
		}
		if msg.Field >= 0 && msg.Field < len(s.notes) {
			s.notes[msg.Field].SetValue(strings.TrimRight(msg.Content, "\n"))
		}
		return s.emit()
	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab":
			return s.setFocus(s.focus + 1)
		case "shift+tab":
			return s.setFocus(s.focus - 1)
		case "down":
			if s.focus < prefEquipment {
				return s.setFocus(s.focus + 1)
			}
		case "up":
			if s.focus <= prefEquipment {
				return s.setFocus(s.focus - 1)
			}
		case "ctrl+e":
			if n := s.focus - prefEquipment; n >= 0 {
				return s.openEditor(n)
			}
			return nil
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case prefEnvironment:
		s.environment.Update(msg)
	case prefTime:
		s.time.Update(msg)
	default:
		n := s.focus - prefEquipment
		s.notes[n], cmd = s.notes[n].Update(msg)
	}
	return tea.Batch(cmd, s.emit())
}

func (s *PreferencesStep) emit() tea.Cmd {
	p := s.Preferences()
	if p == s.last {
		return nil
	}
	s.last = p
	return func() tea.Msg { return SectionChangedMsg{Section: p} }
}

// openEditor edits note field n in the user's $EDITOR.
func (s *PreferencesStep) openEditor(n int) tea.Cmd {
	tmp, err := os.CreateTemp("", "trainer_note_*.txt")
	if err != nil {
		logger.Warn("editor temp file: %v", err)
		return nil
	}
	path := tmp.Name()
	_, err = tmp.WriteString(s.notes[n].Value())
	_ = tmp.Close()
	if err != nil {
		_ = os.Remove(path)
		return nil
	}

	cmd, err := editor.Command("trainer", path)
	if err != nil {
		_ = os.Remove(path)
		return nil
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		defer func() { _ = os.Remove(path) }()
		if err != nil {
			return EditorFinishedMsg{Field: n, Err: err}
		}
		content, err := os.ReadFile(path)
		return EditorFinishedMsg{Field: n, Content: string(content), Err: err}
	})
}

func (s *PreferencesStep) View() string {
	rows := []string{
		s.environment.View(s.focus == prefEnvironment),
		s.time.View(s.focus == prefTime),
		"",
	}
	for i := range s.notes {
		focused := s.focus == prefEquipment+i
		label := lipgloss.NewStyle().Width(labelWidth).Render(renderLabel(noteLabels[i], false, focused))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cursorMark(focused), label, s.notes[i].View()))
	}
	rows = append(rows, "", theme.Current().S().Muted.Render("The text fields are optional."))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (s *PreferencesStep) Hints() []string {
	if s.focus >= prefEquipment {
		return []string{"ctrl+e", "open in $EDITOR"}
	}
	return []string{"←/→", "choose"}
}
