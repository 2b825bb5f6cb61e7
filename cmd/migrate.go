// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/canonical/studio-service/migrations"
)

const formatJSON = "json"

// migrateCmd performs DB migrations
var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down [version]|status|check]",
	Short: "Run database migrations",
	Long:  `Apply, roll back or inspect the database schema. The DSN defaults to the DSN environment variable.`,
	Args:  validateMigrateArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		command := "up"
		if len(args) > 0 {
			command = args[0]
		}

		version := int64(-1)
		if len(args) > 1 {
			version, _ = strconv.ParseInt(args[1], 10, 64)
		}

		dsn, _ := cmd.Flags().GetString("dsn")
		if dsn == "" {
			dsn = os.Getenv("DSN")
		}
		if dsn == "" {
			return fmt.Errorf("no DSN given, set --dsn or the DSN environment variable")
		}

		format, _ := cmd.Flags().GetString("format")

		runner, err := newMigrationRunner(cmd.Context(), dsn, format, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		return runner.run(cmd.Context(), command, version)
	},
}

// validateMigrateArgs accepts at most a subcommand and, for down only, a
// non-negative target version.
func validateMigrateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(0, 2)(cmd, args); err != nil {
		return err
	}

	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "up", "down", "status", "check":
	default:
		return fmt.Errorf("invalid first argument: %q", args[0])
	}

	if len(args) == 2 {
		if args[0] != "down" {
			return fmt.Errorf("invalid argument combination: %q", args)
		}

		if v, err := strconv.ParseInt(args[1], 10, 64); err != nil || v < 0 {
			return fmt.Errorf("invalid version number: %q", args[1])
		}
	}

	return nil
}

func init() {
	migrateCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string")
	migrateCmd.Flags().StringP("format", "f", "text", "Output format (text or json)")

	rootCmd.AddCommand(migrateCmd)
}

type migrationRunner struct {
	provider *goose.Provider
	format   string
	out      io.Writer
}

func newMigrationRunner(ctx context.Context, dsn, format string, out io.Writer) (*migrationRunner, error) {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("DSN validation failed: %w", err)
	}

	db := stdlib.OpenDB(*config)
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("DB connection failed: %w", err)
	}

	var opts []goose.ProviderOption
	if format == formatJSON {
		opts = append(opts, goose.WithLogger(goose.NopLogger()))
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.EmbedMigrations, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create goose provider: %w", err)
	}

	return &migrationRunner{provider: provider, format: format, out: out}, nil
}

func (m *migrationRunner) run(ctx context.Context, command string, version int64) error {
	switch command {
	case "up":
		results, err := m.provider.Up(ctx)
		if err != nil {
			return err
		}
		return m.writeResults(results)
	case "down":
		results, err := m.down(ctx, version)
		if err != nil {
			return err
		}
		return m.writeResults(results)
	case "status":
		statuses, err := m.provider.Status(ctx)
		if err != nil {
			return err
		}
		return writeStatus(m.out, m.format, statuses)
	case "check":
		return m.check(ctx)
	}

	return fmt.Errorf("unknown migrate command %q", command)
}

func (m *migrationRunner) down(ctx context.Context, version int64) ([]*goose.MigrationResult, error) {
	if version >= 0 {
		return m.provider.DownTo(ctx, version)
	}

	result, err := m.provider.Down(ctx)
	if err != nil {
		return nil, err
	}
	return []*goose.MigrationResult{result}, nil
}

func (m *migrationRunner) writeResults(results []*goose.MigrationResult) error {
	if m.format == formatJSON {
		if results == nil {
			results = []*goose.MigrationResult{}
		}
		return json.NewEncoder(m.out).Encode(map[string]any{"applied": results})
	}

	for _, r := range results {
		fmt.Fprintln(m.out, r.String())
	}
	return nil
}

func (m *migrationRunner) check(ctx context.Context) error {
	pending, err := m.provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pending migrations: %w", err)
	}

	current, verErr := m.provider.GetDBVersion(ctx)

	if m.format == formatJSON {
		status := "ok"
		switch {
		case pending:
			status = "pending"
		case verErr != nil:
			status = "unknown"
		}
		return json.NewEncoder(m.out).Encode(map[string]any{"status": status, "version": current})
	}

	if pending {
		return fmt.Errorf("migrations are pending: current version %d", current)
	}

	fmt.Fprintf(m.out, "Database is up to date (version %d)\n", current)
	return nil
}

func writeStatus(out io.Writer, format string, statuses []*goose.MigrationStatus) error {
	if format == formatJSON {
		return json.NewEncoder(out).Encode(statuses)
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "APPLIED_AT\tMIGRATION")
	for _, s := range statuses {
		appliedAt := "Pending"
		if s.State == goose.StateApplied {
			appliedAt = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%s\t%s\n", appliedAt, s.Source.Path)
	}
	return w.Flush()
}
