package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mark3labs/trainer/internal/form"
	"github.com/mark3labs/trainer/internal/logger"
	"github.com/mark3labs/trainer/internal/plan"
	"github.com/mark3labs/trainer/internal/service"
)

func (s *Server) registerTools() {
	s.addTool(
		mcp.NewTool("generate-plan",
			mcp.WithDescription("Generate a body-composition analysis and weekly training plan. "+
				"Returns the plan as markdown."),
			mcp.WithObject("input", mcp.Required(),
				mcp.Description("Form data with user_profile, inbody_metrics, goal and preferences objects, "+
					"using the same field names and values as the web form"),
			),
		),
		s.handleGeneratePlan,
	)

	s.addTool(
		mcp.NewTool("extract-inbody",
			mcp.WithDescription("Read InBody measurements from a photo of the result sheet"),
			mcp.WithString("path", mcp.Required(),
				mcp.Description("Path to a .jpg, .jpeg, .png, .webp or .heic image"),
			),
		),
		s.handleExtractInBody,
	)

	s.addTool(
		mcp.NewTool("health-check",
			mcp.WithDescription("Check whether the plan backend is reachable"),
		),
		s.handleHealthCheck,
	)

	if s.archive != nil {
		s.addTool(
			mcp.NewTool("list-plans",
				mcp.WithDescription("List previously generated plans, newest first"),
			),
			s.handleListPlans,
		)
	}
}

func (s *Server) addTool(tool mcp.Tool, handler server.ToolHandlerFunc) {
	s.mcpServer.AddTool(tool, handler)
	s.tools = append(s.tools, tool.Name)
}

func (s *Server) handleGeneratePlan(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, ok := request.GetArguments()["input"]
	if !ok {
		return mcp.NewToolResultError("missing 'input' parameter"), nil
	}

	d, err := decodeInput(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := form.CheckSubmittable(d); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := s.svc.GeneratePlan(ctx, d)
	if err != nil {
		return mcp.NewToolResultError(service.UserMessage(err)), nil
	}

	if s.archive != nil {
		if rec, err := s.archive.Append(ctx, d, *res); err != nil {
			logger.Warn("Archiving generated plan: %v", err)
		} else {
			logger.Debug("Archived plan %s", rec.ID)
		}
	}
	return mcp.NewToolResultText(plan.RenderMarkdown(*res)), nil
}

// decodeInput turns the loosely typed argument into form data, starting
// from the form defaults so omitted preferences keep their usual values.
func decodeInput(raw any) (form.Data, error) {
	d := form.Defaults()
	var data []byte
	switch v := raw.(type) {
	case string:
		data = []byte(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return d, fmt.Errorf("invalid 'input': %v", err)
		}
		data = b
	}
	if err := json.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("invalid 'input': %v", err)
	}
	if d.UserProfile.Injuries == nil {
		d.UserProfile.Injuries = []string{}
	}
	return d, nil
}

func (s *Server) handleExtractInBody(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	img, err := service.LoadImage(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res, err := s.svc.ExtractFromImage(ctx, img)
	if err != nil {
		return mcp.NewToolResultError(service.UserMessage(err)), nil
	}

	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Read %d values (confidence: %s)\n\n%s",
		res.FieldCount(), res.Confidence.Label(), out)), nil
}

func (s *Server) handleHealthCheck(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h, err := s.svc.HealthCheck(ctx)
	if err != nil {
		return mcp.NewToolResultError(service.UserMessage(err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s: %s", h.Status, h.Message)), nil
}

func (s *Server) handleListPlans(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, err := s.archive.List(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(list) == 0 {
		return mcp.NewToolResultText("No plans yet."), nil
	}
	var b strings.Builder
	for _, p := range list {
		fmt.Fprintf(&b, "%s  %s  %s (%d days)\n", p.ID[:8], p.CreatedAt.Format("2006-01-02 15:04"), p.Title, p.Days)
	}
	return mcp.NewToolResultText(b.String()), nil
}
