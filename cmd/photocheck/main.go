package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	applog "github.com/lewtec/photocheck/internal/log"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "photocheck",
	Short: "Step through photos and answer a yes/no/unknown checklist for each",
	Long: strings.TrimSpace(`
Import a folder of photographs, then answer a fixed checklist of questions for each one.
Answers are kept in a local SQLite database so work can be resumed at any time.
    `),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		current = env
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		applog.L().Error("command failed", "error", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default: photocheck.yaml in the project root)")
	rootCmd.PersistentFlags().StringP("database", "d", "", "Database file path (default: <project root>/Data/photo.db)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
}
