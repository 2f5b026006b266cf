package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lewtec/photocheck/annotation"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <folder>",
	Short: "Register the images of a folder",
	Long: `Register every file of the folder whose extension is a configured image
extension. Paths are stored relative to the database directory when possible.
Importing the same folder again only refreshes display names.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recursive := current.cfg.Recursive
		if cmd.Flags().Changed("recursive") {
			recursive, _ = cmd.Flags().GetBool("recursive")
		}

		st, err := current.openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		result, err := annotation.ImportFolder(cmd.Context(), st, args[0], annotation.ImportOptions{
			Extensions: current.cfg.Extensions,
			Recursive:  recursive,
		})
		fmt.Fprintf(cmd.OutOrStdout(), "Imported: %d (skipped %d)\n", result.Added, result.Skipped)
		return err
	},
}

func init() {
	importCmd.Flags().BoolP("recursive", "r", false, "Descend into sub-folders")
	rootCmd.AddCommand(importCmd)
}
