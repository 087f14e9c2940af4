package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/mlb-roster-service/internal/config"
	"github.com/preston-bernstein/mlb-roster-service/internal/logging"
	"github.com/preston-bernstein/mlb-roster-service/internal/server"
)

const serviceName = "mlb-roster-service"

// Version is stamped at build time with -ldflags "-X .../internal/cmd.Version=...".
var Version = "dev"

// NewRootCommand builds the roster command tree.
func NewRootCommand() *cobra.Command {
	var team string

	root := &cobra.Command{
		Use:   "roster",
		Short: "MLB team roster reports",
		Long: `Roster resolves an MLB team by id or by a case-insensitive fragment of its
name and prints the team's roster as CSV, sorted by player name.

A team that cannot be resolved prints "Not Found".

Examples:
  roster --team 137
  roster --team giants
  roster serve
  roster mcp`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, team)
		},
	}

	root.Flags().StringVarP(&team, "team", "t", "", "team id or name fragment")
	_ = root.MarkFlagRequired("team")

	root.AddCommand(newServeCommand(), newMCPCommand())
	return root
}

func runReport(cmd *cobra.Command, team string) error {
	cfg, logger, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	telemetry := server.NewTelemetry(cmd.Context(), cfg, logger)
	defer func() {
		if err := telemetry.Close(cmd.Context()); err != nil {
			logging.Warn(logger, "metrics shutdown failed", "error", err)
		}
	}()

	svc := server.NewReportService(cfg, logger, telemetry.Recorder)
	report, err := svc.Execute(cmd.Context(), team)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(report))
	return err
}

// loadRuntime reads the environment and builds the logger. Logs go to the
// command's error stream so stdout carries only results.
func loadRuntime(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogConfig.Level,
		Format:  cfg.LogConfig.Format,
		Service: serviceName,
		Version: Version,
		Output:  cmd.ErrOrStderr(),
	})
	return cfg, logger, nil
}
