// cmd/server/migrate.go
package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sportsfed/fedsite/internal/database"
)

// migrateCmd prepares the schema without starting the server.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations and seed defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := setup()
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := prepareDatabase(cmd.Context(), cfg, db); err != nil {
			return err
		}
		logrus.Info("Migrations applied")
		return nil
	},
}
