package main

import (
	"fmt"

	"github.com/mark3labs/trainer/internal/config"
	"github.com/mark3labs/trainer/internal/logger"
	"github.com/mark3labs/trainer/internal/service"
	"github.com/spf13/cobra"
)

// Flags shared by every command. Set flags override config and environment.
var configFlags struct {
	apiURL  string
	timeout string
	dataDir string
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&configFlags.apiURL, "api-url", "", "Plan service base URL (default: from TRAINER_API_URL or config)")
	cmd.PersistentFlags().StringVar(&configFlags.timeout, "timeout", "", "Request timeout, e.g. 30s (0 disables)")
	cmd.PersistentFlags().StringVar(&configFlags.dataDir, "data-dir", "", "Data directory (default: from TRAINER_DATA_DIR or .trainer)")
}

// loadConfig resolves configuration, applies flag overrides and sets up
// logging.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}
	return cfg, nil
}

func applyFlags(cfg *config.Config) {
	if configFlags.apiURL != "" {
		cfg.APIURL = configFlags.apiURL
	}
	if configFlags.timeout != "" {
		cfg.Timeout = configFlags.timeout
	}
	if configFlags.dataDir != "" {
		cfg.DataDir = configFlags.dataDir
	}
}

func newClient(cfg *config.Config) (*service.Client, error) {
	timeout, err := cfg.RequestTimeout()
	if err != nil {
		return nil, err
	}
	return service.New(cfg.APIURL, service.WithTimeout(timeout)), nil
}
