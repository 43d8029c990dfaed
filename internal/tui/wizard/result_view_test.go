package wizard

import (
	"os"
	"testing"

	"github.com/mark3labs/trainer/internal/tui/testfixtures"
	"github.com/stretchr/testify/require"
)

func TestResultView_RendersPlan(t *testing.T) {
	v := NewResultView(*testfixtures.SampleResult(), t.TempDir())
	v.SetSize(100, 60)
	out := testfixtures.Plain(v.View())
	require.Contains(t, out, "Upper/Lower")
	require.Contains(t, out, "Push-up")
}

func TestResultView_Export(t *testing.T) {
	dir := t.TempDir()
	v := NewResultView(*testfixtures.SampleResult(), dir)

	exported, ok := testfixtures.Find[PlanExportedMsg](feed(t, v, testfixtures.Press("p")))
	require.True(t, ok)
	require.NoError(t, exported.Err)
	body, err := os.ReadFile(exported.Path)
	require.NoError(t, err)
	require.Contains(t, string(body), "Goblet squat")

	v.Update(exported)
	require.Equal(t, exported.Path, v.Exported())
	require.Contains(t, testfixtures.Plain(v.View()), "Saved to")
}

func TestResultView_StartOver(t *testing.T) {
	v := NewResultView(*testfixtures.SampleResult(), t.TempDir())
	_, ok := testfixtures.Find[StartOverMsg](feed(t, v, testfixtures.Press("r")))
	require.True(t, ok)
}
