package cmd

import (
	"github.com/spf13/cobra"

	"github.com/preston-bernstein/mlb-roster-service/internal/logging"
	"github.com/preston-bernstein/mlb-roster-service/internal/mcpserver"
	"github.com/preston-bernstein/mlb-roster-service/internal/server"
)

func newMCPCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve roster reports as an MCP tool over stdio",
		Long: `Serve the team_roster tool to Model Context Protocol clients over
stdin/stdout. The tool takes {"team": "<id or name>"} and returns the CSV report.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadRuntime(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			telemetry := server.NewTelemetry(ctx, cfg, logger)
			defer func() {
				if err := telemetry.Close(cmd.Context()); err != nil {
					logging.Warn(logger, "metrics shutdown failed", "error", err)
				}
			}()

			svc := server.NewReportService(cfg, logger, telemetry.Recorder)
			return mcpserver.New(svc, logger, Version).Run(ctx)
		},
	}
}
