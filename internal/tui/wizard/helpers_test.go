package wizard

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/trainer/internal/tui/testfixtures"
)

type updater interface {
	Update(tea.Msg) tea.Cmd
}

// feed sends msgs to u in order and returns every message the resulting
// commands produced.
func feed(t *testing.T, u updater, msgs ...tea.Msg) []tea.Msg {
	t.Helper()
	var out []tea.Msg
	for _, msg := range msgs {
		out = append(out, testfixtures.Collect(t, u.Update(msg))...)
	}
	return out
}

func keys(names ...string) []tea.Msg {
	out := make([]tea.Msg, 0, len(names))
	for _, n := range names {
		out = append(out, testfixtures.Press(n))
	}
	return out
}

// lastSection returns the section carried by the last SectionChangedMsg.
func lastSection(t *testing.T, msgs []tea.Msg) any {
	t.Helper()
	var found any
	for _, m := range msgs {
		if c, ok := m.(SectionChangedMsg); ok {
			found = c.Section
		}
	}
	if found == nil {
		t.Fatalf("no SectionChangedMsg in %v", msgs)
	}
	return found
}

// pump delivers msg to the wizard and keeps delivering the messages its
// commands produce, like the program loop would.
func pump(t *testing.T, m *WizardModel, msg tea.Msg) []tea.Msg {
	t.Helper()
	var seen []tea.Msg
	queue := []tea.Msg{msg}
	for i := 0; len(queue) > 0 && i < 50; i++ {
		next := queue[0]
		queue = queue[1:]
		seen = append(seen, next)
		_, cmd := m.Update(next)
		queue = append(queue, testfixtures.Collect(t, cmd)...)
	}
	return seen
}
