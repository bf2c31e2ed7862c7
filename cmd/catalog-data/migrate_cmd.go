package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/akiftaseen/tool-set-app/migrations"
	"github.com/akiftaseen/tool-set-app/pkg/configuration"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the catalog database schema",
	}

	cmd.AddCommand(
		newMigrateStepCmd("up", "Apply pending migrations", migrations.Up),
		newMigrateStepCmd("down", "Roll back the last migration", migrations.Down),
		newMigrateStepCmd("status", "Print migration status", migrations.Status),
	)
	return cmd
}

func newMigrateStepCmd(use, short string, run func(context.Context, *pgxpool.Pool) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			conf := configuration.Use()

			pool, err := pgxpool.New(ctx, conf.Database.ConnectionString())
			if err != nil {
				return withCode(exitDB, err)
			}
			defer pool.Close()

			if err := run(ctx, pool); err != nil {
				return withCode(exitDB, err)
			}
			return writeJSONLine(map[string]any{"status": "ok", "command": use})
		},
	}
}
