package plan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/mark3labs/trainer/internal/logger"
)

const (
	indexFile   = "README.md"
	plansMarker = "<!-- PLANS -->"
	tableHeader = "| Plan | Split | Days | Date |"
	tableSep    = "|------|-------|------|------|"
)

// Export writes r as markdown into dir and records it in the directory's
// README index. It returns the path of the written plan.
func Export(dir string, r Result, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	name := slug.Make(Title(r))
	if name == "" {
		name = "training-plan"
	}
	name += "-" + now.Format("20060102-150405") + ".md"
	path := filepath.Join(dir, name)

	logger.Debug("Writing plan to %s", path)
	if err := os.WriteFile(path, []byte(RenderMarkdown(r)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write plan: %w", err)
	}

	if err := updateIndex(filepath.Join(dir, indexFile), name, r, now); err != nil {
		return "", fmt.Errorf("failed to update index: %w", err)
	}
	return path, nil
}

func updateIndex(path, filename string, r Result, now time.Time) error {
	split, days := "-", 0
	if p := r.TrainingPlan; p != nil {
		if p.SplitMethod != "" {
			split = strings.ReplaceAll(p.SplitMethod, "|", "\\|")
		}
		days = len(p.WeeklySchedule)
	}
	row := fmt.Sprintf("| [%s](%s) | %s | %d | %s |",
		strings.TrimSuffix(filename, ".md"), filename, split, days, now.Format("2006-01-02"))

	existing, err := os.ReadFile(path)
	var content string
	switch {
	case os.IsNotExist(err):
		content = fmt.Sprintf("# Training plans\n\n%s\n\n%s\n%s\n%s\n", plansMarker, tableHeader, tableSep, row)
	case err != nil:
		return err
	default:
		content = insertRow(string(existing), row)
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

// insertRow adds row as the newest entry of the table following the
// marker, appending marker and table when the marker is missing.
func insertRow(content, row string) string {
	lines := strings.Split(content, "\n")
	marker := -1
	for i, l := range lines {
		if strings.TrimSpace(l) == plansMarker {
			marker = i
			break
		}
	}

	if marker == -1 {
		if !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		if strings.TrimSpace(content) != "" {
			content += "\n"
		}
		return content + plansMarker + "\n\n" + tableHeader + "\n" + tableSep + "\n" + row + "\n"
	}

	at := marker + 1
	for at < len(lines) && strings.TrimSpace(lines[at]) == "" {
		at++
	}
	insert := []string{row}
	if at < len(lines) && strings.TrimSpace(lines[at]) == tableHeader {
		at++
		if at < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[at]), "|--") {
			at++
		}
	} else {
		insert = []string{"", tableHeader, tableSep, row}
	}

	out := make([]string, 0, len(lines)+len(insert))
	out = append(out, lines[:at]...)
	out = append(out, insert...)
	out = append(out, lines[at:]...)
	return strings.Join(out, "\n")
}
