package commands

import (
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/spf13/cobra"

	"github.com/johnquangdev/event-planner/internal/infrastructure/database"
)

// MigrateCmd creates the migrate command and its up, down and status subcommands
func MigrateCmd(app *AppContext) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.PersistentFlags().StringVar(&dir, "dir", "", "Migrations directory (defaults to DB_MIGRATIONS_DIR)")

	migrationsDir := func() string {
		if dir != "" {
			return dir
		}
		return app.Cfg.Database.MigrationsDir
	}

	var upMax int
	up := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(app, migrationsDir(), migrate.Up, upMax)
		},
	}
	up.Flags().IntVar(&upMax, "max", 0, "Maximum number of migrations to apply (0 = all)")

	var downMax int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back applied migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(app, migrationsDir(), migrate.Down, downMax)
		},
	}
	down.Flags().IntVar(&downMax, "max", 1, "Maximum number of migrations to roll back")

	status := &cobra.Command{
		Use:   "status",
		Short: "List pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := app.DB()
			if err != nil {
				return err
			}
			pending, err := database.PendingMigrations(db, migrationsDir())
			if err != nil {
				return err
			}
			if len(pending) == 0 {
				fmt.Fprintln(app.Out, "Schema is up to date")
				return nil
			}
			fmt.Fprintf(app.Out, "%d pending migration(s):\n", len(pending))
			for _, id := range pending {
				fmt.Fprintf(app.Out, "- %s\n", id)
			}
			return nil
		},
	}

	cmd.AddCommand(up, down, status)
	return cmd
}

func runMigrate(app *AppContext, dir string, direction migrate.MigrationDirection, max int) error {
	db, err := app.DB()
	if err != nil {
		return err
	}
	n, err := database.Migrate(db, dir, direction, max, app.Logger)
	if err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "Applied %d migration(s)\n", n)
	return nil
}
