package mcpserver

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/mlb-roster-service/internal/app/roster"
	"github.com/preston-bernstein/mlb-roster-service/internal/testutil"
)

type stubReports struct {
	report string
	err    error
	query  string
}

func (s *stubReports) Execute(ctx context.Context, query string) (string, error) {
	_ = ctx
	s.query = query
	return s.report, s.err
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestTeamRosterReturnsTrimmedReport(t *testing.T) {
	reports := &stubReports{report: testutil.ExpectedGiantsReport}
	s := New(reports, nil, "test")

	res, _, err := s.teamRoster(context.Background(), nil, RosterArgs{Team: "giants"})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, strings.TrimSpace(testutil.ExpectedGiantsReport), resultText(t, res))
	assert.Equal(t, "giants", reports.query)
}

func TestTeamRosterNotFoundIsAResult(t *testing.T) {
	s := New(&stubReports{report: roster.NotFound}, nil, "test")

	res, _, err := s.teamRoster(context.Background(), nil, RosterArgs{Team: "knicks"})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "Not Found", resultText(t, res))
}

func TestTeamRosterErrorsAreToolErrors(t *testing.T) {
	s := New(&stubReports{err: errors.New("upstream down")}, nil, "test")

	res, _, err := s.teamRoster(context.Background(), nil, RosterArgs{Team: "137"})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, "error: upstream down", resultText(t, res))
}

func TestTeamRosterRequiresTeam(t *testing.T) {
	reports := &stubReports{}
	s := New(reports, nil, "test")

	res, _, err := s.teamRoster(context.Background(), nil, RosterArgs{Team: " "})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Empty(t, reports.query)
}

func TestToolIsListedAndCallable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := New(&stubReports{report: roster.NotFound}, nil, "test")
	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := s.server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	require.Len(t, tools.Tools, 1)
	assert.Equal(t, ToolName, tools.Tools[0].Name)

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      ToolName,
		Arguments: map[string]any{"team": "999"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Not Found", resultText(t, res))
}
