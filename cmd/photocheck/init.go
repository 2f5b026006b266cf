package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lewtec/photocheck/annotation"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the configuration file and the database",
	Long: `Create photocheck.yaml in the project root when it is missing and open
the database, creating it with the default checklist on first use.

Example:
  photocheck init
  photocheck init -d ./Data/photo.db`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if _, err := os.Stat(current.configPath); os.IsNotExist(err) {
			if err := annotation.SaveConfig(current.configPath, current.cfg); err != nil {
				return fmt.Errorf("failed to create config file: %w", err)
			}
			fmt.Fprintf(out, "Created configuration file: %s\n", current.configPath)
		} else {
			fmt.Fprintf(out, "Configuration file already exists: %s\n", current.configPath)
		}

		st, err := current.openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		version, err := st.SchemaVersion(cmd.Context())
		if err != nil {
			return err
		}
		stats, err := st.Stats(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Database: %s (schema version %d)\n", st.Path(), version)
		fmt.Fprintf(out, "Questions: %d\n", stats.Questions)
		fmt.Fprintf(out, "Images: %d\n", stats.Images)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
