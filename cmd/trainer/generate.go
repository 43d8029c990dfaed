package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mark3labs/trainer/internal/archive"
	"github.com/mark3labs/trainer/internal/form"
	"github.com/mark3labs/trainer/internal/logger"
	"github.com/mark3labs/trainer/internal/plan"
	"github.com/mark3labs/trainer/internal/service"
	"github.com/spf13/cobra"
)

var generateFlags struct {
	input  string
	dryRun bool
	save   bool
	json   bool
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a plan from a JSON form file without the wizard",
	Long: `Generate a training plan from a JSON file holding the four form sections
(user_profile, inbody_metrics, goal, preferences). Use "-" to read stdin.

--dry-run prints the request payload that would be sent and exits.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateFlags.input, "input", "i", "", "Form data JSON file, or - for stdin (required)")
	generateCmd.Flags().BoolVar(&generateFlags.dryRun, "dry-run", false, "Print the request payload without calling the service")
	generateCmd.Flags().BoolVar(&generateFlags.save, "save", false, "Export the plan as markdown to the export directory")
	generateCmd.Flags().BoolVar(&generateFlags.json, "json", false, "Print the raw result JSON instead of markdown")
	_ = generateCmd.MarkFlagRequired("input")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	d, err := readFormData(generateFlags.input, cmd.InOrStdin())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if generateFlags.dryRun {
		return printPayload(out, d)
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}
	res, err := generate(cmd.Context(), client, d)
	if err != nil {
		return err
	}

	if cfg.Archive {
		archivePlan(cmd.Context(), cfg.DataDir, d, *res)
	}
	if generateFlags.save {
		path, err := plan.Export(cfg.ExportDir, *res, time.Now())
		if err != nil {
			return fmt.Errorf("failed to export plan: %w", err)
		}
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Saved to %s\n", path)
	}

	if generateFlags.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	_, err = io.WriteString(out, renderMarkdown(plan.RenderMarkdown(*res), profileFor(out)))
	return err
}

type generator interface {
	GeneratePlan(ctx context.Context, d form.Data) (*plan.Result, error)
}

// generate checks d is complete and valid, then submits it.
func generate(ctx context.Context, c generator, d form.Data) (*plan.Result, error) {
	if err := form.CheckSubmittable(d); err != nil {
		return nil, err
	}
	res, err := c.GeneratePlan(ctx, d)
	if err != nil {
		return nil, errors.New(service.UserMessage(err))
	}
	return res, nil
}

// readFormData decodes form data over the form defaults, so omitted
// preferences keep their usual values.
func readFormData(path string, stdin io.Reader) (form.Data, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return form.Data{}, fmt.Errorf("reading form data: %w", err)
	}

	d := form.Defaults()
	if err := json.Unmarshal(data, &d); err != nil {
		return form.Data{}, fmt.Errorf("parsing form data: %w", err)
	}
	if d.UserProfile.Injuries == nil {
		d.UserProfile.Injuries = []string{}
	}
	return d, nil
}

func printPayload(w io.Writer, d form.Data) error {
	payload, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}
	_, err = fmt.Fprintln(w, highlight(string(payload), "json", profileFor(w)))
	return err
}

func archivePlan(ctx context.Context, dataDir string, d form.Data, res plan.Result) {
	a, err := archive.Open(ctx, dataDir)
	if err != nil {
		logger.Warn("Plan history disabled: %v", err)
		return
	}
	defer func() { _ = a.Close() }()
	if rec, err := a.Append(ctx, d, res); err != nil {
		logger.Warn("Archiving generated plan: %v", err)
	} else {
		logger.Debug("Archived plan %s", rec.ID)
	}
}
