package main

import (
	"agenda-service/internal/app/config"
	"agenda-service/internal/app/drivers/database"
	"agenda-service/internal/app/drivers/logger"
	"agenda-service/internal/migration"
	"database/sql"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	steps   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "migration",
		Short:         "Manage the agenda service database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(db *sql.DB, log *logrus.Logger) error {
				_, err := migration.Up(db, log)
				return err
			})
		},
	}

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back applied migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 0 {
				return fmt.Errorf("--steps must not be negative, got %d", steps)
			}
			return withDB(func(db *sql.DB, log *logrus.Logger) error {
				_, err := migration.Down(db, steps, log)
				return err
			})
		},
	}
	downCmd.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back, 0 for all")

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "List migrations and when they were applied",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(db *sql.DB, log *logrus.Logger) error {
				statuses, err := migration.Statuses(db)
				if err != nil {
					return err
				}
				for _, status := range statuses {
					appliedAt := status.AppliedAt
					if appliedAt == "" {
						appliedAt = "pending"
					}
					log.WithField("applied_at", appliedAt).Info(status.ID)
				}
				return nil
			})
		},
	}

	rootCmd.AddCommand(upCmd, downCmd, statusCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func withDB(fn func(db *sql.DB, log *logrus.Logger) error) error {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(internalConfig.App.Env, verbose)

	connConfig, err := pgx.ParseConfig(database.PostgresConnectionString(driverConfig))
	if err != nil {
		return fmt.Errorf("parse postgres connection string: %w", err)
	}

	db := stdlib.OpenDB(*connConfig)
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	log.Debugf("Connected to %s:%s/%s", driverConfig.PostgresDB.Host, driverConfig.PostgresDB.Port, driverConfig.PostgresDB.DBName)

	return fn(db, log)
}
