package archive

import (
	"github.com/aymanbagabas/go-udiff"
	"github.com/mark3labs/trainer/internal/plan"
)

// Diff returns a unified diff of the rendered markdown of two records.
// It is empty when both render the same.
func Diff(a, b *Record) string {
	before := plan.RenderMarkdown(a.Result)
	after := plan.RenderMarkdown(b.Result)
	return udiff.Unified(label(a), label(b), before, after)
}

func label(r *Record) string {
	return r.ID[:min(8, len(r.ID))] + " " + r.CreatedAt.Format("2006-01-02 15:04")
}
