package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/mark3labs/trainer/internal/archive"
	"github.com/mark3labs/trainer/internal/plan"
	"github.com/mark3labs/trainer/internal/tui/theme"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse previously generated plans",
	Long: `Browse the plans archived after each successful generation.

Records are addressed by ID; any unique prefix works.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived plans, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withArchive(cmd, func(ctx context.Context, a *archive.Archive) error {
			return runHistoryList(ctx, a.Store, cmd.OutOrStdout())
		})
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show an archived plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withArchive(cmd, func(ctx context.Context, a *archive.Archive) error {
			return runHistoryShow(ctx, a.Store, args[0], cmd.OutOrStdout())
		})
	},
}

var historyDiffCmd = &cobra.Command{
	Use:   "diff <id> <id>",
	Short: "Compare two archived plans",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withArchive(cmd, func(ctx context.Context, a *archive.Archive) error {
			return runHistoryDiff(ctx, a.Store, args[0], args[1], cmd.OutOrStdout())
		})
	},
}

func init() {
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDiffCmd)
}

func withArchive(cmd *cobra.Command, fn func(context.Context, *archive.Archive) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a, err := archive.Open(cmd.Context(), cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open plan history: %w", err)
	}
	defer func() { _ = a.Close() }()
	return fn(cmd.Context(), a)
}

func runHistoryList(ctx context.Context, s *archive.Store, w io.Writer) error {
	plans, err := s.List(ctx)
	if err != nil {
		return err
	}
	if len(plans) == 0 {
		_, _ = fmt.Fprintln(w, "No plans yet. Generate one with the wizard or 'trainer generate'.")
		return nil
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Color(theme.Current().BgSurface1))).
		Headers("ID", "CREATED", "PLAN", "DAYS")
	for _, p := range plans {
		t.Row(p.ID[:min(8, len(p.ID))], p.CreatedAt.Local().Format("2006-01-02 15:04"), p.Title, strconv.Itoa(p.Days))
	}
	_, err = fmt.Fprintln(w, t.String())
	return err
}

func runHistoryShow(ctx context.Context, s *archive.Store, id string, w io.Writer) error {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, renderMarkdown(plan.RenderMarkdown(rec.Result), profileFor(w)))
	return err
}

func runHistoryDiff(ctx context.Context, s *archive.Store, idA, idB string, w io.Writer) error {
	a, err := s.Get(ctx, idA)
	if err != nil {
		return err
	}
	b, err := s.Get(ctx, idB)
	if err != nil {
		return err
	}
	diff := archive.Diff(a, b)
	if diff == "" {
		_, _ = fmt.Fprintln(w, "Plans are identical.")
		return nil
	}
	_, err = io.WriteString(w, highlight(diff, "diff", profileFor(w)))
	return err
}
