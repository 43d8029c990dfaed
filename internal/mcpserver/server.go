// Package mcpserver exposes plan generation, InBody extraction and the
// backend health check as MCP tools.
package mcpserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/mark3labs/mcp-go/server"
	"github.com/mark3labs/trainer/internal/archive"
	"github.com/mark3labs/trainer/internal/form"
	"github.com/mark3labs/trainer/internal/logger"
	"github.com/mark3labs/trainer/internal/plan"
	"github.com/mark3labs/trainer/internal/service"
)

// PlanService is the backend the tools call.
type PlanService interface {
	GeneratePlan(ctx context.Context, d form.Data) (*plan.Result, error)
	ExtractFromImage(ctx context.Context, img service.Image) (*form.ExtractionResult, error)
	HealthCheck(ctx context.Context) (*service.Health, error)
}

// Archiver records generated plans.
type Archiver interface {
	Append(ctx context.Context, in form.Data, res plan.Result) (*archive.Record, error)
	List(ctx context.Context) ([]archive.Summary, error)
}

// Server wraps an MCP server with the trainer tools registered.
type Server struct {
	svc     PlanService
	archive Archiver // nil disables archiving and the list-plans tool
	version string
	tools   []string

	mu        sync.Mutex
	mcpServer *server.MCPServer
	stdServer *http.Server
	port      int
}

// New creates a server. archive may be nil.
func New(svc PlanService, archive Archiver, version string) *Server {
	s := &Server{svc: svc, archive: archive, version: version}
	s.mcpServer = server.NewMCPServer(
		"trainer",
		version,
		server.WithToolCapabilities(true),
	)
	s.registerTools()
	return s
}

// MCPServer returns the underlying server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// Tools returns the names of the registered tools.
func (s *Server) Tools() []string {
	return append([]string(nil), s.tools...)
}

// ServeStdio serves over stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	logger.Debug("Serving MCP over stdio")
	return server.ServeStdio(s.mcpServer)
}

// Start serves streamable HTTP on addr in the background. An addr with
// port 0 picks a free port. It returns the bound port.
func (s *Server) Start(addr string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stdServer != nil {
		return 0, fmt.Errorf("server already started")
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return 0, fmt.Errorf("listening on %s: %w", addr, err)
	}
	s.port = listener.Addr().(*net.TCPAddr).Port

	mux := http.NewServeMux()
	mux.Handle("/mcp", server.NewStreamableHTTPServer(s.mcpServer, server.WithStateLess(true)))
	s.stdServer = &http.Server{Handler: mux}

	stdServer := s.stdServer
	go func() {
		if err := stdServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("MCP server error: %v", err)
		}
	}()

	logger.Debug("MCP server ready on port %d", s.port)
	return s.port, nil
}

// Stop shuts the HTTP server down. Stopping a stopped server is a no-op.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stdServer == nil {
		return nil
	}
	if err := s.stdServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("stopping MCP server: %w", err)
	}
	s.stdServer = nil
	logger.Debug("MCP server stopped")
	return nil
}

// URL returns the HTTP endpoint.
func (s *Server) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("http://localhost:%d/mcp", s.port)
}
