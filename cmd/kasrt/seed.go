package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/kasrt/internal/auth"
	"github.com/mmynk/kasrt/internal/models"
	"github.com/mmynk/kasrt/internal/storage/sqlite"
)

var (
	seedDBPath         string
	seedAdminUser      string
	seedAdminPassword  string
	seedViewerUser     string
	seedViewerPassword string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Provision the admin and viewer accounts",
	Long: `Creates the two login accounts the service expects. Accounts that
already exist are left untouched, so re-running is safe.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd.Context())
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedDBPath, "db", "", "database path (default: DB_PATH env or ./data/kasrt.db)")
	seedCmd.Flags().StringVar(&seedAdminUser, "admin-user", "admin", "admin username")
	seedCmd.Flags().StringVar(&seedAdminPassword, "admin-password", "", "admin password (required)")
	seedCmd.Flags().StringVar(&seedViewerUser, "viewer-user", "warga", "viewer username")
	seedCmd.Flags().StringVar(&seedViewerPassword, "viewer-password", "", "viewer password (required)")
	seedCmd.MarkFlagRequired("admin-password")  //nolint:errcheck
	seedCmd.MarkFlagRequired("viewer-password") //nolint:errcheck
	rootCmd.AddCommand(seedCmd)
}

func runSeed(ctx context.Context) error {
	// Seeding only needs the database; don't demand the full server config.
	dbPath := seedDBPath
	if dbPath == "" {
		dbPath = os.Getenv("DB_PATH")
	}
	if dbPath == "" {
		dbPath = "./data/kasrt.db"
	}

	store, err := sqlite.New(dbPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()

	authenticator := auth.NewPasswordAuthenticator(store)

	accounts := []struct {
		username string
		password string
		role     models.Role
	}{
		{seedAdminUser, seedAdminPassword, models.RoleAdmin},
		{seedViewerUser, seedViewerPassword, models.RoleViewer},
	}

	for _, a := range accounts {
		_, err := authenticator.Provision(ctx, a.username, a.password, a.role)
		switch {
		case errors.Is(err, auth.ErrUsernameExists):
			slog.Info("user already exists, skipping", "username", a.username)
		case err != nil:
			return fmt.Errorf("failed to seed %s: %w", a.username, err)
		default:
			slog.Info("user created", "username", a.username, "role", a.role)
		}
	}

	return nil
}
