package plan

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExport_WritesPlanAndIndex(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "plans")
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	path, err := Export(dir, sampleResult(), now)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "training-plan-push-pull-legs-20260314-093000.md"), path)

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, RenderMarkdown(sampleResult()), string(body))

	index, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	require.Contains(t, string(index), plansMarker)
	require.Contains(t, string(index), "| Push/Pull/Legs | 3 | 2026-03-14 |")
}

func TestExport_NewestRowFirst(t *testing.T) {
	dir := t.TempDir()
	first := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	second := first.Add(24 * time.Hour)

	_, err := Export(dir, sampleResult(), first)
	require.NoError(t, err)
	_, err = Export(dir, Result{}, second)
	require.NoError(t, err)

	index, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	s := string(index)
	require.Equal(t, 1, strings.Count(s, tableHeader))
	require.Less(t, strings.Index(s, "2026-03-15"), strings.Index(s, "2026-03-14"))
	require.Contains(t, s, "| - | 0 |")
}

func TestInsertRow(t *testing.T) {
	row := "| [a](a.md) | x | 1 | 2026-01-01 |"

	t.Run("no marker appends table", func(t *testing.T) {
		out := insertRow("# My notes\nsome text", row)
		require.True(t, strings.HasSuffix(out, plansMarker+"\n\n"+tableHeader+"\n"+tableSep+"\n"+row+"\n"))
		require.True(t, strings.HasPrefix(out, "# My notes\nsome text\n\n"))
	})

	t.Run("marker without table adds header", func(t *testing.T) {
		out := insertRow("# Plans\n"+plansMarker+"\n", row)
		require.Contains(t, out, plansMarker+"\n\n"+tableHeader+"\n"+tableSep+"\n"+row)
	})

	t.Run("existing table gets row below separator", func(t *testing.T) {
		in := plansMarker + "\n\n" + tableHeader + "\n" + tableSep + "\n| old |\n"
		out := insertRow(in, row)
		require.Contains(t, out, tableSep+"\n"+row+"\n| old |")
	})
}
