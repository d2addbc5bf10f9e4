package main

import (
	"errors"
	"fmt"
	"log/slog"

	"money-tracker/internal/config"
	"money-tracker/internal/database"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Apply the SQL migrations for the configured DB_DRIVER from db/migrations.

With --seed the demo transactions in db/seeds are loaded afterwards.`,
		RunE: runMigrate,
	}

	cmd.Flags().Bool("status", false, "Show current migration status without applying changes")
	cmd.Flags().Bool("seed", false, "Load seed data after migrating")

	return cmd
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	status, _ := cmd.Flags().GetBool("status")
	seed, _ := cmd.Flags().GetBool("seed")

	cfg := config.Load()
	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	runner := database.NewMigrationRunner(sqlDB, cfg.Database.Driver).WithSeeds(seed)

	if status {
		version, dirty, err := runner.GetMigrationStatus()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Fprintln(cmd.OutOrStdout(), "no migrations applied")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read migration status: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
		return nil
	}

	slog.Info("running database migrations", slog.String("driver", cfg.Database.Driver))

	if err := runner.WaitForDatabase(); err != nil {
		return fmt.Errorf("database is not ready: %w", err)
	}
	if err := runner.RunMigrations(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	if err := runner.LoadSeeds(); err != nil {
		return fmt.Errorf("failed to load seeds: %w", err)
	}

	slog.Info("database migrations completed")
	return nil
}
