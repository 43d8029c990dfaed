package wizard

import (
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/trainer/internal/camera"
	"github.com/mark3labs/trainer/internal/tui/theme"
)

const previewInterval = 100 * time.Millisecond

type previewFrameMsg struct {
	session *camera.Session
	frame   string
	err     error
}

// CaptureModal shows a live camera preview and takes a photo. The device
// is held only while the modal is open.
type CaptureModal struct {
	mgr     *camera.Manager
	session *camera.Session
	mirror  bool
	frame   string
	err     string
	cols    int
	rows    int
}

// NewCaptureModal creates a closed modal over mgr.
func NewCaptureModal(mgr *camera.Manager, mirror bool) *CaptureModal {
	return &CaptureModal{mgr: mgr, mirror: mirror, cols: 48, rows: 16}
}

// Open acquires the camera and starts the preview. Acquisition failures
// are shown inside the modal.
func (m *CaptureModal) Open() tea.Cmd {
	m.frame = ""
	m.err = ""
	if m.mgr == nil {
		m.err = camera.ErrNoCamera.Error()
		return nil
	}
	s, err := m.mgr.Open()
	if err != nil {
		m.err = cameraErrorText(err)
		return nil
	}
	m.session = s
	return m.tick()
}

// Holding reports whether the modal currently owns a camera session.
func (m *CaptureModal) Holding() bool { return m.session != nil }

// Mirrored reports whether the preview is shown mirrored.
func (m *CaptureModal) Mirrored() bool { return m.mirror }

// Close releases the device. Safe to call when nothing is held.
func (m *CaptureModal) Close() {
	if m.session != nil {
		_ = m.session.Close()
		m.session = nil
	}
}

func (m *CaptureModal) SetSize(width, height int) {
	m.cols = max(min(width-8, 80), 8)
	m.rows = max(min(height-10, 24), 4)
}

func (m *CaptureModal) tick() tea.Cmd {
	s, cols, rows, mirror := m.session, m.cols, m.rows, m.mirror
	return tea.Tick(previewInterval, func(time.Time) tea.Msg {
		frame, err := s.PreviewFrame(cols, rows, mirror)
		return previewFrameMsg{session: s, frame: frame, err: err}
	})
}

// Update handles preview frames and the modal keys.
func (m *CaptureModal) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case previewFrameMsg:
		if msg.session != m.session || m.session == nil {
			return nil
		}
		if msg.err != nil {
			m.err = cameraErrorText(msg.err)
		} else {
			m.frame = msg.frame
			m.err = ""
		}
		return m.tick()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc", "q":
			m.Close()
			return func() tea.Msg { return ModalClosedMsg{} }
		case "m":
			m.mirror = !m.mirror
			return nil
		case "space", "enter":
			if m.session == nil {
				return nil
			}
			s := m.session
			m.session = nil
			img, err := s.Capture()
			if err != nil {
				m.err = cameraErrorText(err)
				return nil
			}
			return func() tea.Msg { return PhotoCapturedMsg{Image: img} }
		}
	}
	return nil
}

func cameraErrorText(err error) string {
	if errors.Is(err, camera.ErrNoCamera) {
		return "Could not access the camera. Check that a camera is connected and allowed."
	}
	return "Camera error: " + err.Error()
}

func (m *CaptureModal) View() string {
	st := theme.Current().S()
	t := theme.Current()

	var body string
	switch {
	case m.err != "":
		body = st.Error.Render("✗ " + m.err)
	case m.frame == "":
		body = st.Muted.Render("Starting camera...")
	default:
		body = m.frame
	}
	body = lipgloss.NewStyle().
		Width(m.cols).
		Height(m.rows).
		Align(lipgloss.Center, lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Color(t.BgSurface1)).
		Render(body)

	mirror := "off"
	if m.mirror {
		mirror = "on"
	}
	hints := renderHintBar("space", "capture", "m", "mirror: "+mirror, "esc", "close")
	if m.session == nil {
		hints = renderHintBar("esc", "close")
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		st.ModalTitle.Render("Photograph your InBody sheet"),
		"",
		body,
		"",
		hints,
	)
}
