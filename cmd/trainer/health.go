package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/mark3labs/trainer/internal/service"
	"github.com/spf13/cobra"
)

var healthFlags struct {
	json bool
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the plan service is reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client, err := newClient(cfg)
		if err != nil {
			return err
		}
		return runHealth(cmd.Context(), client, cmd.OutOrStdout(), healthFlags.json)
	},
}

func init() {
	healthCmd.Flags().BoolVar(&healthFlags.json, "json", false, "Print the raw health and info payloads as JSON")
}

type healthChecker interface {
	HealthCheck(ctx context.Context) (*service.Health, error)
	Info(ctx context.Context) (*service.Info, error)
}

func runHealth(ctx context.Context, c healthChecker, w io.Writer, asJSON bool) error {
	h, err := c.HealthCheck(ctx)
	if err != nil {
		return errors.New(service.MsgHealthDown)
	}
	info, err := c.Info(ctx)
	if err != nil {
		return errors.New(service.MsgHealthDown)
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Health *service.Health `json:"health"`
			Info   *service.Info   `json:"info"`
		}{h, info})
	}

	_, _ = fmt.Fprintf(w, "status:  %s\n", h.Status)
	if h.Message != "" {
		_, _ = fmt.Fprintf(w, "message: %s\n", h.Message)
	}
	_, _ = fmt.Fprintf(w, "api:     %s %s\n", info.Name, info.Version)
	names := make([]string, 0, len(info.Endpoints))
	for name := range info.Endpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		_, _ = fmt.Fprintf(w, "  %-10s %s\n", name, info.Endpoints[name])
	}
	return nil
}
