package wizard

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/trainer/internal/form"
	"github.com/mark3labs/trainer/internal/tui/theme"
)

const labelWidth = 24

func newTextInput(placeholder string, width int) textinput.Model {
	t := theme.Current()
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	in.SetStyles(textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(theme.Color(t.FgBase)),
			Placeholder: lipgloss.NewStyle().Foreground(theme.Color(t.FgMuted)),
			Prompt:      lipgloss.NewStyle().Foreground(theme.Color(t.Secondary)),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(theme.Color(t.FgSubtle)),
			Placeholder: lipgloss.NewStyle().Foreground(theme.Color(t.FgMuted)),
			Prompt:      lipgloss.NewStyle().Foreground(theme.Color(t.FgMuted)),
		},
		Cursor: textinput.CursorStyle{
			Color: theme.Color(t.Primary),
			Shape: tea.CursorBar,
			Blink: true,
		},
	})
	in.SetWidth(width)
	return in
}

// numberField is a labelled input read back as a positive number.
type numberField struct {
	label    string
	unit     string
	required bool
	input    textinput.Model
}

func newNumberField(label, unit string, required bool) *numberField {
	return &numberField{
		label:    label,
		unit:     unit,
		required: required,
		input:    newTextInput("", 12),
	}
}

func (f *numberField) Focus() tea.Cmd { return f.input.Focus() }
func (f *numberField) Blur()          { f.input.Blur() }
func (f *numberField) Value() string  { return f.input.Value() }

// Float returns the parsed value; blank, zero and invalid input are nil.
func (f *numberField) Float() *float64 { return form.ParseDecimal(f.input.Value()) }

// Int returns the parsed whole number; blank, zero and invalid input are nil.
func (f *numberField) Int() *int { return form.ParseCount(f.input.Value()) }

func (f *numberField) SetFloat(v *float64) { f.input.SetValue(form.FormatDecimal(v)) }
func (f *numberField) SetInt(v *int)       { f.input.SetValue(form.FormatCount(v)) }

// Update forwards input to the text field. Text that is not a positive
// number is kept as typed and reads back as no value. It reports whether the
// value changed.
func (f *numberField) Update(msg tea.Msg) (tea.Cmd, bool) {
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd, f.input.Value() != before
}

func (f *numberField) View(focused bool) string {
	label := lipgloss.NewStyle().Width(labelWidth).Render(renderLabel(f.label, f.required, focused))
	unit := theme.Current().S().Muted.Render(f.unit)
	return cursorMark(focused) + label + f.input.View() + " " + unit
}

// choiceOption is one value of a choiceField.
type choiceOption struct {
	Value string
	Label string
}

// choiceField cycles through a fixed list of options with ←/→ or space.
// When optional, the first position means "not set".
type choiceField struct {
	label    string
	required bool
	options  []choiceOption
	selected int // index into options, -1 for none
}

func newChoiceField(label string, required bool, options []choiceOption) *choiceField {
	return &choiceField{label: label, required: required, options: options, selected: -1}
}

// Value returns the selected option value, or "" when none is selected.
func (c *choiceField) Value() string {
	if c.selected < 0 || c.selected >= len(c.options) {
		return ""
	}
	return c.options[c.selected].Value
}

// Set selects the option with value v; unknown values clear the selection.
func (c *choiceField) Set(v string) {
	c.selected = -1
	for i, o := range c.options {
		if o.Value == v {
			c.selected = i
			return
		}
	}
}

// Update handles ←/→/space. It reports whether the selection changed.
func (c *choiceField) Update(msg tea.Msg) bool {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || len(c.options) == 0 {
		return false
	}
	// Optional fields cycle through "none" as well.
	lo := 0
	if !c.required {
		lo = -1
	}
	n := len(c.options) - lo
	pos := c.selected - lo

	switch key.String() {
	case "right", "l", "space":
		pos = (pos + 1) % n
	case "left", "h":
		pos = (pos - 1 + n) % n
	default:
		return false
	}
	c.selected = pos + lo
	return true
}

func (c *choiceField) View(focused bool) string {
	s := theme.Current().S()
	label := lipgloss.NewStyle().Width(labelWidth).Render(renderLabel(c.label, c.required, focused))

	parts := make([]string, 0, len(c.options))
	for i, o := range c.options {
		if i == c.selected {
			parts = append(parts, s.ChipActive.Render(o.Label))
		} else {
			parts = append(parts, s.Chip.Render(o.Label))
		}
	}
	return cursorMark(focused) + label + strings.Join(parts, "")
}

type labeled interface {
	~string
	Label() string
}

// optionsOf builds choice options from an enum list.
func optionsOf[T labeled](values []T) []choiceOption {
	out := make([]choiceOption, 0, len(values))
	for _, v := range values {
		out = append(out, choiceOption{Value: string(v), Label: v.Label()})
	}
	return out
}
