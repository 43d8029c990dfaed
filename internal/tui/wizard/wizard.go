package wizard

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/trainer/internal/archive"
	"github.com/mark3labs/trainer/internal/camera"
	"github.com/mark3labs/trainer/internal/form"
	"github.com/mark3labs/trainer/internal/logger"
	"github.com/mark3labs/trainer/internal/plan"
	"github.com/mark3labs/trainer/internal/service"
	"github.com/mark3labs/trainer/internal/state"
	"github.com/mark3labs/trainer/internal/tui/theme"
)

// PlanService is the part of the service client the wizard calls.
type PlanService interface {
	GeneratePlan(ctx context.Context, d form.Data) (*plan.Result, error)
	ExtractFromImage(ctx context.Context, img service.Image) (*form.ExtractionResult, error)
}

// Archiver stores generated plans.
type Archiver interface {
	Append(ctx context.Context, in form.Data, res plan.Result) (*archive.Record, error)
}

// Options configures a wizard session.
type Options struct {
	Service       PlanService
	Camera        *camera.Manager // nil disables the capture path
	MirrorPreview bool
	ExportDir     string
	PickerDir     string // starting directory of the image picker
	DataDir       string
	SaveDraft     bool
	Draft         *state.Draft // resumed when set
	Archive       Archiver     // optional
	Context       context.Context
}

type mode int

const (
	modeForm mode = iota
	modePicker
	modeCamera
	modeResult
)

// step is implemented by the four section editors.
type step interface {
	Update(tea.Msg) tea.Cmd
	View() string
	Focus() tea.Cmd
	Blur()
	SetSize(width, height int)
	Hints() []string
}

// WizardModel drives the four-step form, the image sub-flow and the
// result view.
type WizardModel struct {
	opts Options
	ctx  context.Context
	wiz  *form.Wizard
	mode mode

	profile     *ProfileStep
	metrics     *MetricsStep
	goal        *GoalStep
	preferences *PreferencesStep

	picker  *ImagePicker
	capture *CaptureModal
	result  *ResultView
	toast   *Toast
	spinner spinner.Model

	// attempt numbers extractions; results from older attempts are dropped.
	attempt int

	width  int
	height int
}

// New creates the wizard model, resuming opts.Draft when present.
func New(opts Options) *WizardModel {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	t := theme.Current()
	m := &WizardModel{
		opts:    opts,
		ctx:     ctx,
		wiz:     form.NewWizard(),
		toast:   NewToast(),
		capture: NewCaptureModal(opts.Camera, opts.MirrorPreview),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Color(t.Secondary))),
		),
		width:  100,
		height: 40,
	}
	if d := opts.Draft; d != nil {
		m.wiz.Restore(d.Step, d.Data)
		logger.Info("Resumed draft from %s", d.SavedAt.Format("2006-01-02 15:04"))
	}
	m.buildSteps()
	return m
}

// Run starts the wizard as a standalone program.
func Run(opts Options) error {
	m := New(opts)
	defer m.capture.Close()
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}
	return nil
}

func (m *WizardModel) buildSteps() {
	d := m.wiz.Data
	m.profile = NewProfileStep(d.UserProfile)
	m.metrics = NewMetricsStep(d.InBodyMetrics)
	m.goal = NewGoalStep(d.Goal)
	m.preferences = NewPreferencesStep(d.Preferences)
	m.updateSizes()
}

func (m *WizardModel) steps() [form.StepCount]step {
	return [form.StepCount]step{m.profile, m.metrics, m.goal, m.preferences}
}

func (m *WizardModel) current() step {
	return m.steps()[m.wiz.Step]
}

// Wizard exposes the form state.
func (m *WizardModel) Wizard() *form.Wizard { return m.wiz }

func (m *WizardModel) Init() tea.Cmd {
	return m.current().Focus()
}

func (m *WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.capture.Close()
			return m, tea.Quit
		case "esc":
			if m.toast.IsVisible() {
				m.dismissToast()
				return m, nil
			}
		}
		return m, m.handleKey(msg)

	case toastDismissMsg:
		m.toast.Update(msg)
		if !m.toast.IsVisible() {
			m.wiz.DismissError()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		if m.wiz.Submitting {
			m.spinner, cmd = m.spinner.Update(msg)
		}
		return m, tea.Batch(cmd, m.metrics.Update(msg))

	case SectionChangedMsg:
		m.wiz.UpdateSection(msg.Section)
		m.persistDraft()
		return m, nil

	case OpenImagePickerMsg:
		if m.metrics.Extracting() {
			return m, nil
		}
		m.picker = NewImagePicker(m.opts.PickerDir)
		m.updateSizes()
		m.mode = modePicker
		return m, nil

	case OpenCameraMsg:
		if m.metrics.Extracting() {
			return m, nil
		}
		m.mode = modeCamera
		m.updateSizes()
		return m, m.capture.Open()

	case ModalClosedMsg:
		m.capture.Close()
		m.mode = modeForm
		return m, m.current().Focus()

	case ImageSelectedMsg:
		m.mode = modeForm
		return m, m.extract(msg.Image)

	case PhotoCapturedMsg:
		m.capture.Close()
		m.mode = modeForm
		return m, m.extract(msg.Image)

	case ExtractionDoneMsg:
		if !m.metrics.Extracting() || msg.attempt != m.attempt {
			logger.Debug("Dropping stale extraction result (attempt %d)", msg.attempt)
			return m, nil
		}
		if msg.Err != nil {
			logger.Warn("Extraction failed: %v", msg.Err)
			m.metrics.ShowExtractionError(form.ErrorMessage(msg.Err))
			return m, nil
		}
		if msg.Result == nil {
			msg.Result = &form.ExtractionResult{}
		}
		merged := m.wiz.Data.InBodyMetrics.Merge(*msg.Result)
		m.wiz.UpdateSection(merged)
		m.metrics.Load(merged)
		m.metrics.ShowExtraction(msg.Result)
		logger.Info("Extraction filled %d fields (%s)", msg.Result.FieldCount(), msg.Result.Confidence)
		m.persistDraft()
		return m, nil

	case PlanGeneratedMsg:
		m.wiz.FinishSubmit(msg.Result, msg.Err)
		if msg.Err != nil {
			logger.Error("Plan generation failed: %v", msg.Err)
			return m, m.toast.Show(m.wiz.LastError)
		}
		logger.Info("Plan generated")
		m.result = NewResultView(*msg.Result, m.opts.ExportDir)
		m.mode = modeResult
		m.updateSizes()
		m.clearDraft()
		return m, m.archive(*msg.Result)

	case PlanExportedMsg:
		if msg.Err != nil {
			logger.Error("Export failed: %v", msg.Err)
			return m, m.toast.Show("Could not save the plan: " + msg.Err.Error())
		}
		logger.Info("Plan exported to %s", msg.Path)
		if m.result != nil {
			m.result.Update(msg)
		}
		return m, nil

	case StartOverMsg:
		m.attempt++
		m.wiz.Reset()
		m.mode = modeForm
		m.result = nil
		m.toast.Dismiss()
		m.clearDraft()
		m.buildSteps()
		return m, m.current().Focus()

	case previewFrameMsg:
		return m, m.capture.Update(msg)

	case EditorFinishedMsg:
		return m, m.preferences.Update(msg)
	}

	return m, m.forward(msg)
}

func (m *WizardModel) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch m.mode {
	case modePicker:
		return m.picker.Update(msg)
	case modeCamera:
		return m.capture.Update(msg)
	case modeResult:
		return m.result.Update(msg)
	}

	if m.wiz.Submitting {
		return nil
	}
	switch msg.String() {
	case "ctrl+n", "pgdown":
		if m.wiz.IsFinalStep() {
			return m.submit()
		}
		return m.move(m.wiz.Advance)
	case "ctrl+b", "pgup":
		return m.move(m.wiz.Retreat)
	case "ctrl+s":
		return m.submit()
	case "esc":
		return m.move(m.wiz.Retreat)
	}
	return m.current().Update(msg)
}

func (m *WizardModel) forward(msg tea.Msg) tea.Cmd {
	switch m.mode {
	case modePicker:
		return m.picker.Update(msg)
	case modeCamera:
		return m.capture.Update(msg)
	case modeResult:
		return m.result.Update(msg)
	}
	return m.current().Update(msg)
}

// move runs a step transition and moves input focus with it.
func (m *WizardModel) move(transition func() bool) tea.Cmd {
	prev := m.current()
	if !transition() {
		return nil
	}
	prev.Blur()
	m.persistDraft()
	return m.current().Focus()
}

const msgExtractionPending = "Wait for the image analysis to finish before generating."

func (m *WizardModel) submit() tea.Cmd {
	if !m.wiz.IsFinalStep() {
		return nil
	}
	if m.metrics.Extracting() {
		return m.toast.Show(msgExtractionPending)
	}
	if missing := form.MissingAll(m.wiz.Data); len(missing) > 0 {
		return m.toast.Show("Missing required fields: " + strings.Join(missing, ", "))
	}
	if !m.wiz.BeginSubmit() {
		return nil
	}
	m.toast.Dismiss()
	svc, ctx, data := m.opts.Service, m.ctx, m.wiz.Data
	logger.Info("Submitting plan request")
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		res, err := svc.GeneratePlan(ctx, data)
		return PlanGeneratedMsg{Result: res, Err: err}
	})
}

func (m *WizardModel) extract(img service.Image) tea.Cmd {
	if m.metrics.Extracting() {
		return nil
	}
	m.attempt++
	svc, ctx, attempt := m.opts.Service, m.ctx, m.attempt
	logger.Info("Extracting metrics from %s (%d bytes)", img.Filename, len(img.Data))
	return tea.Batch(m.metrics.SetExtracting(true), func() tea.Msg {
		res, err := svc.ExtractFromImage(ctx, img)
		return ExtractionDoneMsg{Result: res, Err: err, attempt: attempt}
	})
}

func (m *WizardModel) archive(res plan.Result) tea.Cmd {
	if m.opts.Archive == nil {
		return nil
	}
	a, ctx, data := m.opts.Archive, m.ctx, m.wiz.Data
	return func() tea.Msg {
		rec, err := a.Append(ctx, data, res)
		if err != nil {
			logger.Warn("Archiving plan: %v", err)
			return nil
		}
		logger.Debug("Archived plan %s", rec.ID)
		return nil
	}
}

func (m *WizardModel) dismissToast() {
	m.toast.Dismiss()
	m.wiz.DismissError()
}

func (m *WizardModel) persistDraft() {
	if !m.opts.SaveDraft || m.opts.DataDir == "" {
		return
	}
	if err := state.SaveDraft(m.opts.DataDir, m.wiz.Step, m.wiz.Data); err != nil {
		logger.Warn("Saving draft: %v", err)
	}
}

func (m *WizardModel) clearDraft() {
	if !m.opts.SaveDraft || m.opts.DataDir == "" {
		return
	}
	if err := state.ClearDraft(m.opts.DataDir); err != nil {
		logger.Warn("Clearing draft: %v", err)
	}
}

func (m *WizardModel) contentSize() (int, int) {
	return min(max(m.width-10, 60), 100) - 6, max(m.height-12, 10)
}

func (m *WizardModel) updateSizes() {
	w, h := m.contentSize()
	for _, s := range m.steps() {
		if s != nil {
			s.SetSize(w, h)
		}
	}
	if m.picker != nil {
		m.picker.SetSize(w, h-6)
	}
	m.capture.SetSize(w, h)
	if m.result != nil {
		m.result.SetSize(w, h)
	}
}

// View renders the wizard.
func (m *WizardModel) View() tea.View {
	var view tea.View
	view.AltScreen = true

	var title, body string
	switch m.mode {
	case modePicker:
		title, body = "Choose an InBody photo", m.picker.View()
	case modeCamera:
		title, body = "Camera", m.capture.View()
	case modeResult:
		title, body = "Your training plan", m.result.View()
	default:
		title, body = m.wiz.Step.Title(), m.renderForm()
	}

	modal := m.renderModal(title, body)
	content := lipgloss.Place(m.width, max(m.height-1, 1), lipgloss.Center, lipgloss.Center, modal)
	if t := m.toast.View(m.width); t != "" {
		content += "\n" + t
	}

	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(content).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})
	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

func (m *WizardModel) renderModal(title, body string) string {
	s := theme.Current().S()
	width := min(max(m.width-10, 60), 100)
	content := strings.Join([]string{s.ModalTitle.Width(width - 6).Render(title), "", body}, "\n")
	return s.ModalContainer.Width(width).Render(content)
}

func (m *WizardModel) renderForm() string {
	s := theme.Current().S()
	w, _ := m.contentSize()
	sections := []string{
		m.renderStepIndicator(),
		renderProgress(int(m.wiz.Step)+1, form.StepCount, w),
		"",
		m.current().View(),
		"",
	}

	if missing := form.MissingFields(m.wiz.Step, m.wiz.Data); len(missing) > 0 {
		sections = append(sections, s.Muted.Render("Required: "+strings.Join(missing, ", ")))
	}

	nextLabel := "Next →"
	if m.wiz.IsFinalStep() {
		nextLabel = "Generate plan"
	}
	if m.wiz.Submitting {
		nextLabel = m.spinner.View() + " Generating..."
	}
	bar := NewButtonBar(CreateBackNextButtons(
		m.wiz.Step > 0 && !m.wiz.Submitting,
		m.wiz.CurrentStepValid() && !m.wiz.Submitting,
		nextLabel,
	))
	bar.SetWidth(w)
	sections = append(sections, bar.Render(), "")

	hints := append([]string{"tab", "next field"}, m.current().Hints()...)
	if m.wiz.IsFinalStep() {
		hints = append(hints, "ctrl+s", "generate")
	} else {
		hints = append(hints, "ctrl+n", "next")
	}
	if m.wiz.Step > 0 {
		hints = append(hints, "ctrl+b", "back")
	}
	sections = append(sections, renderHintBar(hints...))
	return strings.Join(sections, "\n")
}

func (m *WizardModel) renderStepIndicator() string {
	s := theme.Current().S()
	parts := make([]string, 0, form.StepCount)
	for id := form.SectionProfile; id < form.StepCount; id++ {
		label := fmt.Sprintf("%d %s", id+1, id.Title())
		switch {
		case id < m.wiz.Step:
			parts = append(parts, s.StepDone.Render("✓ "+label))
		case id == m.wiz.Step:
			parts = append(parts, s.StepCurrent.Render("● "+label))
		default:
			parts = append(parts, s.StepTodo.Render("○ "+label))
		}
	}
	return strings.Join(parts, s.StepTodo.Render("  ─  "))
}

// renderProgress draws a bar filled to done/total, shaded from the
// primary to the secondary colour.
func renderProgress(done, total, width int) string {
	t := theme.Current()
	if width <= 0 || total <= 0 {
		return ""
	}
	filled := width * done / total
	var b strings.Builder
	for i := 0; i < width; i++ {
		if i >= filled {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Color(t.BgSurface1)).Render("━"))
			continue
		}
		pos := 0.0
		if filled > 1 {
			pos = float64(i) / float64(filled-1)
		}
		c := theme.InterpolateColor(t.Primary, t.Secondary, pos)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Color(c)).Render("━"))
	}
	return b.String()
}
