package wizard

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/trainer/internal/tui/theme"
)

// ToastDuration is how long a notification stays on screen.
const ToastDuration = 5 * time.Second

type toastDismissMsg struct{ seq int }

// Toast is a transient error notification shown at the bottom of the
// screen. It hides itself after ToastDuration or on esc.
type Toast struct {
	message string
	visible bool
	seq     int
}

func NewToast() *Toast {
	return &Toast{}
}

// Show replaces any visible notification with msg.
func (t *Toast) Show(msg string) tea.Cmd {
	t.message = msg
	t.visible = true
	t.seq++
	seq := t.seq
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return toastDismissMsg{seq: seq}
	})
}

// Dismiss hides the notification.
func (t *Toast) Dismiss() {
	t.visible = false
	t.message = ""
}

// Update handles the auto-dismiss tick. Ticks from a notification that
// was already replaced are ignored.
func (t *Toast) Update(msg tea.Msg) {
	if m, ok := msg.(toastDismissMsg); ok && m.seq == t.seq {
		t.Dismiss()
	}
}

func (t *Toast) IsVisible() bool { return t.visible }

func (t *Toast) Message() string {
	if !t.visible {
		return ""
	}
	return t.message
}

// View renders the notification right-aligned within width.
func (t *Toast) View(width int) string {
	if !t.visible || t.message == "" {
		return ""
	}
	style := theme.Current().S().Toast
	content := style.Render("✗ " + t.message + "  (esc)")
	if lipgloss.Width(content) > width-2 {
		content = style.Width(max(width-2, 10)).Render("✗ " + t.message)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Right).
		PaddingRight(1).
		Render(content)
}
