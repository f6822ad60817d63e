package cmd

import (
	"fmt"
	"os"

	"github.com/muhryhan/be-aset-dlh/internal/database/migration"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations manually.",
	Long:  `Applies pending schema migrations and exits. The server also migrates on startup; this command exists for development and CI.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		dbURL := os.Getenv("DATABASE_URL")
		migrationDir, _ := cmd.Flags().GetString("dir")

		log, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer log.Sync()

		if err := migration.Migrate(dbURL, fmt.Sprintf("file://%s", migrationDir), log); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}

		return nil
	},
}

// Execute dispatches subcommands when any are present on the command line.
// Plain `be-aset-dlh` falls through to the HTTP server in main.
func Execute() {
	rootCmd := &cobra.Command{
		Use:   "be-aset-dlh",
		Short: "Asset management service of Dinas Lingkungan Hidup Kota Palu",
	}
	migrateCmd.Flags().String("dir", "./migrations", "Directory containing the migration files")
	rootCmd.AddCommand(migrateCmd)

	if len(os.Args) > 1 {
		if err := rootCmd.Execute(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(0)
	}
}
