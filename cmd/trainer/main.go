package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/trainer/internal/archive"
	"github.com/mark3labs/trainer/internal/camera"
	"github.com/mark3labs/trainer/internal/logger"
	"github.com/mark3labs/trainer/internal/state"
	"github.com/mark3labs/trainer/internal/tui/theme"
	"github.com/mark3labs/trainer/internal/tui/wizard"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "▀█▀ █▀█ ▄▀█ █ █▄ █ █▀▀ █▀█"
	logoText2 = " █  █▀▄ █▀█ █ █ ▀█ ██▄ █▀▄"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trainer",
	Short: "Build a personalised training plan from your profile and InBody results",
	Args:  cobra.NoArgs,
	RunE:  runWizard,
}

func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

trainer walks you through four steps (profile, InBody metrics, goal and
preferences), sends them to the plan service and shows the body analysis
and weekly training plan it returns.

InBody values can be typed in, read from an image of the result sheet,
or photographed with a connected camera.`

	addConfigFlags(rootCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(setupCmd)
}

func runWizard(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	opts := wizard.Options{
		Service:       client,
		Camera:        camera.NewManager(camera.DefaultOpener(), cfg.CameraDevice),
		MirrorPreview: cfg.MirrorPreview,
		ExportDir:     cfg.ExportDir,
		DataDir:       cfg.DataDir,
		SaveDraft:     cfg.SaveDraft,
		Context:       cmd.Context(),
	}
	if cfg.SaveDraft {
		opts.Draft = state.LoadDraft(cfg.DataDir)
	}
	if cfg.Archive {
		a, err := archive.Open(cmd.Context(), cfg.DataDir)
		if err != nil {
			logger.Warn("Plan history disabled: %v", err)
		} else {
			defer func() { _ = a.Close() }()
			opts.Archive = a
		}
	}

	logger.Info("Starting wizard against %s", client.BaseURL())
	return wizard.Run(opts)
}
