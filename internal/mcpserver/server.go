// Package mcpserver exposes the roster report as a Model Context Protocol tool.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/preston-bernstein/mlb-roster-service/internal/logging"
)

const (
	serverName = "mlb-roster"
	// ToolName is the name clients call the report tool by.
	ToolName = "team_roster"
)

// ReportService builds the roster report for a team query.
type ReportService interface {
	Execute(ctx context.Context, query string) (string, error)
}

// RosterArgs is the input schema for team_roster.
type RosterArgs struct {
	Team string `json:"team" jsonschema:"Team id (e.g. 137) or case-insensitive name fragment (e.g. giants)"`
}

// Server serves the report tool over MCP.
type Server struct {
	server  *mcp.Server
	reports ReportService
	logger  *slog.Logger
}

// New registers the report tool on a fresh MCP server.
func New(reports ReportService, logger *slog.Logger, version string) *Server {
	s := &Server{
		server: mcp.NewServer(&mcp.Implementation{
			Name:    serverName,
			Version: version,
		}, nil),
		reports: reports,
		logger:  logger,
	}
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolName,
		Description: "CSV roster for an MLB team sorted by player name, or \"Not Found\" when no active team matches",
	}, s.teamRoster)
	return s
}

// Run serves requests on stdin/stdout until the client disconnects or ctx ends.
func (s *Server) Run(ctx context.Context) error {
	logging.Info(s.logger, "mcp server starting", slog.String("tool", ToolName))
	if err := s.server.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}

func (s *Server) teamRoster(ctx context.Context, req *mcp.CallToolRequest, args RosterArgs) (*mcp.CallToolResult, any, error) {
	_ = req
	if strings.TrimSpace(args.Team) == "" {
		return toolError(errors.New("team is required")), nil, nil
	}
	report, err := s.reports.Execute(ctx, args.Team)
	if err != nil {
		return toolError(err), nil, nil
	}
	return toolText(strings.TrimSpace(report)), nil, nil
}

func toolText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
