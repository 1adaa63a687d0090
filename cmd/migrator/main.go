package main

import (
	"fmt"
	"log"
	"os"

	"go-hrms/internal/app"
	"go-hrms/internal/bootstrap"
	"go-hrms/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	var dir string

	withMigrator := func(fn func(*app.Migrator) error) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger, err := bootstrap.NewLogger(cfg.Env)
		if err != nil {
			return err
		}
		defer logger.Sync()

		mg, err := app.NewMigrator(cfg, dir)
		if err != nil {
			return err
		}
		defer func() {
			if err := mg.Close(); err != nil {
				logger.Warn("close migrator failed", zap.Error(err))
			}
		}()
		return fn(mg)
	}

	root := &cobra.Command{
		Use:           "migrator",
		Short:         "Apply or roll back database migrations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dir, "dir", "migrations", "directory holding the migration files")

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(func(mg *app.Migrator) error { return mg.Up() })
			},
		},
		downCommand(withMigrator),
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(func(mg *app.Migrator) error {
					v, dirty, err := mg.Version()
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", v, dirty)
					return nil
				})
			},
		},
	)

	if err := root.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func downCommand(withMigrator func(func(*app.Migrator) error) error) *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(mg *app.Migrator) error { return mg.Down(steps) })
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back, 0 for all")
	return cmd
}
