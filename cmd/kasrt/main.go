package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mmynk/kasrt/pkg/logging"
)

var rootCmd = &cobra.Command{
	Use:   "kasrt",
	Short: "Neighborhood association (RT) cash-ledger service",
	Long: `kasrt tracks residents, dues and donation payments, expenses, and the
running cash balance of a neighborhood association, behind a small
JSON HTTP API with admin and viewer roles.`,
	SilenceUsage: true,
}

func main() {
	// A .env file is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	logging.Setup()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
