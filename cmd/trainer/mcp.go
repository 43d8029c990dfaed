package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/trainer/internal/archive"
	"github.com/mark3labs/trainer/internal/logger"
	"github.com/mark3labs/trainer/internal/mcpserver"
	"github.com/spf13/cobra"
)

var mcpFlags struct {
	http string
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve plan generation and InBody extraction as MCP tools",
	Long: `Run an MCP server exposing generate-plan, extract-inbody and health-check
(plus list-plans when the plan archive is enabled).

Serves over stdio by default; --http serves streamable HTTP at /mcp instead.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().StringVar(&mcpFlags.http, "http", "", "Serve streamable HTTP on this address (e.g. :8090) instead of stdio")
}

func runMCP(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	var arch mcpserver.Archiver
	if cfg.Archive {
		a, err := archive.Open(cmd.Context(), cfg.DataDir)
		if err != nil {
			logger.Warn("Plan history disabled: %v", err)
		} else {
			defer func() { _ = a.Close() }()
			arch = a
		}
	}

	srv := mcpserver.New(client, arch, version)
	if mcpFlags.http == "" {
		return srv.ServeStdio()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := srv.Start(mcpFlags.http); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on %s\n", srv.URL())
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Stop(shutdownCtx)
}
