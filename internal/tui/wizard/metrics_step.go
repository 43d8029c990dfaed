package wizard

import (
	"fmt"
	"reflect"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/trainer/internal/form"
	"github.com/mark3labs/trainer/internal/tui/theme"
)

// Metric field indexes, in focus order.
const (
	metricWeight = iota
	metricMuscle
	metricSkeletal
	metricBodyFat
	metricRightArm
	metricLeftArm
	metricTrunk
	metricRightLeg
	metricLeftLeg
	metricCount
)

// MetricsStep edits the InBody metrics and offers image extraction.
type MetricsStep struct {
	fields [metricCount]*numberField
	focus  int

	extracting bool
	spinner    spinner.Model
	result     *form.ExtractionResult
	errMsg     string

	last form.InBodyMetrics
}

// NewMetricsStep creates the step populated from m.
func NewMetricsStep(m form.InBodyMetrics) *MetricsStep {
	t := theme.Current()
	s := &MetricsStep{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Color(t.Secondary))),
		),
	}
	s.fields = [metricCount]*numberField{
		metricWeight:   newNumberField("Weight", "kg", true),
		metricMuscle:   newNumberField("Muscle mass", "kg", true),
		metricSkeletal: newNumberField("Skeletal muscle mass", "kg", true),
		metricBodyFat:  newNumberField("Body fat", "%", true),
		metricRightArm: newNumberField("Right arm", "kg", true),
		metricLeftArm:  newNumberField("Left arm", "kg", true),
		metricTrunk:    newNumberField("Trunk", "kg", true),
		metricRightLeg: newNumberField("Right leg", "kg", true),
		metricLeftLeg:  newNumberField("Left leg", "kg", true),
	}
	s.Load(m)
	return s
}

// Load replaces every field with the values of m without emitting a change.
func (s *MetricsStep) Load(m form.InBodyMetrics) {
	for i, v := range s.pointers(&m) {
		s.fields[i].SetFloat(*v)
	}
	s.last = s.Metrics()
}

func (s *MetricsStep) pointers(m *form.InBodyMetrics) [metricCount]**float64 {
	return [metricCount]**float64{
		&m.WeightKg,
		&m.MuscleMassKg,
		&m.SkeletalMuscleMassKg,
		&m.BodyFatPercent,
		&m.SegmentalLean.RightArm,
		&m.SegmentalLean.LeftArm,
		&m.SegmentalLean.Trunk,
		&m.SegmentalLean.RightLeg,
		&m.SegmentalLean.LeftLeg,
	}
}

// Metrics assembles the section value from the current inputs.
func (s *MetricsStep) Metrics() form.InBodyMetrics {
	var m form.InBodyMetrics
	for i, p := range s.pointers(&m) {
		*p = s.fields[i].Float()
	}
	return m
}

func (s *MetricsStep) SetSize(int, int) {}

// Focus activates the focused field.
func (s *MetricsStep) Focus() tea.Cmd {
	return s.setFocus(s.focus)
}

// Blur deactivates every field.
func (s *MetricsStep) Blur() {
	for _, f := range s.fields {
		f.Blur()
	}
}

func (s *MetricsStep) setFocus(i int) tea.Cmd {
	s.Blur()
	s.focus = (i + metricCount) % metricCount
	return s.fields[s.focus].Focus()
}

// Extracting reports whether an extraction request is in flight.
func (s *MetricsStep) Extracting() bool { return s.extracting }

// SetExtracting toggles the busy state. Starting a new attempt clears the
// previous banner.
func (s *MetricsStep) SetExtracting(on bool) tea.Cmd {
	s.extracting = on
	if !on {
		return nil
	}
	s.result = nil
	s.errMsg = ""
	return s.spinner.Tick
}

// ShowExtraction replaces the banner with a successful result.
func (s *MetricsStep) ShowExtraction(res *form.ExtractionResult) {
	s.extracting = false
	s.result = res
	s.errMsg = ""
}

// ShowExtractionError replaces the banner with a failure message.
func (s *MetricsStep) ShowExtractionError(msg string) {
	s.extracting = false
	s.result = nil
	s.errMsg = msg
}

// Update handles field editing and the upload/camera shortcuts.
func (s *MetricsStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !s.extracting {
			return nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return cmd
	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab", "down", "enter":
			return s.setFocus(s.focus + 1)
		case "shift+tab", "up":
			return s.setFocus(s.focus - 1)
		case "u":
			if s.extracting {
				return nil
			}
			return func() tea.Msg { return OpenImagePickerMsg{} }
		case "c":
			if s.extracting {
				return nil
			}
			return func() tea.Msg { return OpenCameraMsg{} }
		}
	}

	cmd, changed := s.fields[s.focus].Update(msg)
	if !changed {
		return cmd
	}
	return tea.Batch(cmd, s.emit())
}

func (s *MetricsStep) emit() tea.Cmd {
	m := s.Metrics()
	if reflect.DeepEqual(m, s.last) {
		return nil
	}
	s.last = m
	return func() tea.Msg { return SectionChangedMsg{Section: m} }
}

// View renders the step body.
func (s *MetricsStep) View() string {
	st := theme.Current().S()
	rows := []string{s.banner(), ""}
	for i, f := range s.fields {
		if i == metricRightArm {
			rows = append(rows, "", st.Muted.Render("  Segmental lean"))
		}
		rows = append(rows, f.View(i == s.focus))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (s *MetricsStep) banner() string {
	st := theme.Current().S()
	switch {
	case s.extracting:
		return st.Banner.Render(s.spinner.View() + " Reading the InBody sheet...")
	case s.errMsg != "":
		return st.Error.Render("✗ " + s.errMsg)
	case s.result != nil:
		t := theme.Current()
		c := s.result.Confidence
		badge := lipgloss.NewStyle().
			Foreground(theme.Color(t.BgBase)).
			Background(theme.Color(t.Role(c.Role()))).
			Padding(0, 1).
			Render(c.Label())
		line := fmt.Sprintf("%s Filled %d fields from the image", badge, s.result.FieldCount())
		if s.result.Notes != "" {
			line += "\n" + st.Muted.Render(s.result.Notes)
		}
		return st.Banner.Render(line)
	}
	return st.Muted.Render("Enter values from your InBody sheet, or read them from a photo.")
}

// Hints returns the key hints for the step.
func (s *MetricsStep) Hints() []string {
	if s.extracting {
		return nil
	}
	return []string{"u", "upload image", "c", "camera"}
}
