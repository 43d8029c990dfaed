package wizard

import (
	"reflect"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/trainer/internal/form"
	"github.com/mark3labs/trainer/internal/tui/theme"
)

// Profile step rows, in focus order.
const (
	profileAge = iota
	profileGender
	profileHeight
	profileExperience
	profileCatalog
	profileCustom
	profileSelected
	profileRows
)

// ProfileStep edits the user profile: basics plus the injury list.
type ProfileStep struct {
	age        *numberField
	gender     *choiceField
	height     *numberField
	experience *choiceField
	custom     textinput.Model

	injuries  []string
	chips     []form.Injury // catalog flattened in category order
	chipIdx   int
	pickedIdx int

	focus int
	width int
	last  form.UserProfile
}

// NewProfileStep creates the step populated from p.
func NewProfileStep(p form.UserProfile) *ProfileStep {
	s := &ProfileStep{
		age:        newNumberField("Age", "years", true),
		gender:     newChoiceField("Gender", true, optionsOf(form.Genders)),
		height:     newNumberField("Height", "cm", true),
		experience: newChoiceField("Training experience", true, optionsOf(form.Experiences)),
		custom:     newTextInput("Other condition, press enter to add", 40),
		width:      70,
	}
	for _, c := range form.InjuryCategories {
		s.chips = append(s.chips, form.CatalogByCategory(c)...)
	}
	s.Load(p)
	return s
}

// Load replaces every field with the values of p without emitting a change.
func (s *ProfileStep) Load(p form.UserProfile) {
	s.age.SetInt(p.Age)
	s.gender.Set(string(p.Gender))
	s.height.SetFloat(p.HeightCm)
	s.experience.Set(string(p.TrainingExperience))
	s.injuries = append([]string{}, p.Injuries...)
	s.pickedIdx = min(s.pickedIdx, max(len(s.injuries)-1, 0))
	s.last = s.Profile()
}

// Profile assembles the section value from the current inputs.
func (s *ProfileStep) Profile() form.UserProfile {
	return form.UserProfile{
		Age:                s.age.Int(),
		Gender:             form.Gender(s.gender.Value()),
		HeightCm:           s.height.Float(),
		TrainingExperience: form.Experience(s.experience.Value()),
		Injuries:           append([]string{}, s.injuries...),
	}
}

func (s *ProfileStep) SetSize(width, _ int) {
	s.width = width
}

// Focus activates the focused row's input.
func (s *ProfileStep) Focus() tea.Cmd {
	return s.setFocus(s.focus)
}

// Blur deactivates every input.
func (s *ProfileStep) Blur() {
	s.age.Blur()
	s.height.Blur()
	s.custom.Blur()
}

func (s *ProfileStep) setFocus(row int) tea.Cmd {
	s.Blur()
	s.focus = (row + profileRows) % profileRows
	switch s.focus {
	case profileAge:
		return s.age.Focus()
	case profileHeight:
		return s.height.Focus()
	case profileCustom:
		return s.custom.Focus()
	}
	return nil
}

// Update handles input for the focused row and reports the new section
// through SectionChangedMsg whenever its value changes.
func (s *ProfileStep) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "tab", "down":
			return s.setFocus(s.focus + 1)
		case "shift+tab", "up":
			return s.setFocus(s.focus - 1)
		}
	}

	switch s.focus {
	case profileAge:
		cmd, _ = s.age.Update(msg)
	case profileHeight:
		cmd, _ = s.height.Update(msg)
	case profileGender:
		s.gender.Update(msg)
	case profileExperience:
		s.experience.Update(msg)
	case profileCatalog:
		s.updateCatalog(msg)
	case profileCustom:
		cmd = s.updateCustom(msg)
	case profileSelected:
		s.updateSelected(msg)
	}
	return tea.Batch(cmd, s.emit())
}

func (s *ProfileStep) updateCatalog(msg tea.Msg) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || len(s.chips) == 0 {
		return
	}
	switch key.String() {
	case "right", "l":
		s.chipIdx = (s.chipIdx + 1) % len(s.chips)
	case "left", "h":
		s.chipIdx = (s.chipIdx - 1 + len(s.chips)) % len(s.chips)
	case "space", "enter":
		p := form.UserProfile{Injuries: s.injuries}.ToggleInjury(s.chips[s.chipIdx].Label)
		s.injuries = p.Injuries
	}
}

func (s *ProfileStep) updateCustom(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == "enter" {
		if p, added := (form.UserProfile{Injuries: s.injuries}).AddInjury(s.custom.Value()); added {
			s.injuries = p.Injuries
		}
		s.custom.SetValue("")
		return nil
	}
	var cmd tea.Cmd
	s.custom, cmd = s.custom.Update(msg)
	return cmd
}

func (s *ProfileStep) updateSelected(msg tea.Msg) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || len(s.injuries) == 0 {
		return
	}
	switch key.String() {
	case "right", "l":
		s.pickedIdx = min(s.pickedIdx+1, len(s.injuries)-1)
	case "left", "h":
		s.pickedIdx = max(s.pickedIdx-1, 0)
	case "x", "delete", "backspace":
		s.injuries = form.UserProfile{Injuries: s.injuries}.RemoveInjuryAt(s.pickedIdx).Injuries
		s.pickedIdx = min(s.pickedIdx, max(len(s.injuries)-1, 0))
	}
}

func (s *ProfileStep) emit() tea.Cmd {
	p := s.Profile()
	if reflect.DeepEqual(p, s.last) {
		return nil
	}
	s.last = p
	return func() tea.Msg { return SectionChangedMsg{Section: p} }
}

// View renders the step body.
func (s *ProfileStep) View() string {
	st := theme.Current().S()
	rows := []string{
		s.age.View(s.focus == profileAge),
		s.gender.View(s.focus == profileGender),
		s.height.View(s.focus == profileHeight),
		s.experience.View(s.focus == profileExperience),
		"",
		cursorMark(s.focus == profileCatalog) + renderLabel("Injuries & conditions", false, s.focus == profileCatalog),
	}

	i := 0
	for _, c := range form.InjuryCategories {
		var chips []string
		for _, inj := range form.CatalogByCategory(c) {
			style := st.Chip
			switch {
			case s.focus == profileCatalog && i == s.chipIdx:
				style = st.ChipCursor
			case form.UserProfile{Injuries: s.injuries}.HasInjury(inj.Label):
				style = st.ChipActive
			}
			chips = append(chips, style.Render(inj.Display))
			i++
		}
		head := st.Muted.Render(string(c))
		rows = append(rows, "    "+head, "    "+lipgloss.NewStyle().Width(max(s.width-4, 20)).Render(strings.Join(chips, " ")))
	}

	rows = append(rows, "",
		cursorMark(s.focus == profileCustom)+lipgloss.NewStyle().Width(labelWidth).Render(renderLabel("Other", false, s.focus == profileCustom))+s.custom.View(),
		cursorMark(s.focus == profileSelected)+renderLabel("Selected", false, s.focus == profileSelected),
	)
	if len(s.injuries) == 0 {
		rows = append(rows, "    "+st.Muted.Render("None"))
	} else {
		var picked []string
		for j, inj := range s.injuries {
			style := st.ChipActive
			if s.focus == profileSelected && j == s.pickedIdx {
				style = st.ChipCursor
			}
			picked = append(picked, style.Render(form.DisplayInjury(inj)+" ×"))
		}
		rows = append(rows, "    "+lipgloss.NewStyle().Width(max(s.width-4, 20)).Render(strings.Join(picked, " ")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Hints returns the key hints for the focused row.
func (s *ProfileStep) Hints() []string {
	switch s.focus {
	case profileGender, profileExperience:
		return []string{"←/→", "choose"}
	case profileCatalog:
		return []string{"←/→", "move", "space", "toggle"}
	case profileCustom:
		return []string{"enter", "add"}
	case profileSelected:
		return []string{"←/→", "move", "x", "remove"}
	}
	return nil
}
