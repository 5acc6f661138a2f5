// cmd/server/bootstrap.go
package main

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sportsfed/fedsite/internal/database"
	"github.com/sportsfed/fedsite/internal/services"
)

var (
	bootstrapName     string
	bootstrapEmail    string
	bootstrapPassword string
)

// bootstrapAdminCmd creates or promotes the protected super-admin. Flags
// override ADMIN_NAME, ADMIN_EMAIL and ADMIN_PASSWORD.
var bootstrapAdminCmd = &cobra.Command{
	Use:     "bootstrap-admin",
	Short:   "Ensure the protected super admin account exists",
	Example: `  fedsite bootstrap-admin --email root@federation.org --password 'long-secret'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := setup()
		if err != nil {
			return err
		}
		defer database.Close(db)

		if bootstrapName != "" {
			cfg.Bootstrap.Name = bootstrapName
		}
		if bootstrapEmail != "" {
			cfg.Bootstrap.Email = bootstrapEmail
		}
		if bootstrapPassword != "" {
			cfg.Bootstrap.Password = bootstrapPassword
		}
		if cfg.Bootstrap.Email == "" || cfg.Bootstrap.Password == "" {
			return errors.New("an email and password are required")
		}

		if err := database.RunMigrations(db); err != nil {
			return err
		}
		admin, err := services.NewAdminService(db).EnsureBootstrapAdmin(cmd.Context(), cfg.Bootstrap)
		if err != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{"id": admin.ID, "email": admin.Email}).Info("Super admin ready")
		return nil
	},
}

func init() {
	bootstrapAdminCmd.Flags().StringVar(&bootstrapName, "name", "", "Display name")
	bootstrapAdminCmd.Flags().StringVar(&bootstrapEmail, "email", "", "Login email")
	bootstrapAdminCmd.Flags().StringVar(&bootstrapPassword, "password", "", "Initial password")
}
