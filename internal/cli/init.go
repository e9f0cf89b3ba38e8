package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/tether/internal/config"
	"github.com/example/tether/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize tether configuration and local database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			if _, err := config.LoadConfig(cwd); err == nil {
				fmt.Println("tether already initialized")
				return nil
			}

			dataDir, err := config.DefaultDataDir()
			if err != nil {
				return err
			}
			cfg := &config.Config{
				Version:       "1",
				DataDir:       dataDir,
				DefaultBranch: "master",
			}
			if err := config.SaveConfig(cwd, cfg); err != nil {
				return err
			}

			// Opening the database creates it and applies the schema
			database, err := db.GetDB()
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer database.Close()

			dbPath, _ := db.GetDBPath()
			fmt.Println("✓ Wrote .tether/config.json")
			fmt.Printf("✓ Database ready at %s\n", dbPath)
			return nil
		},
	}
}
