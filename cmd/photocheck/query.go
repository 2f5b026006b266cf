package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lewtec/photocheck/internal/domain"
)

// queryCmd represents the query command
var queryCmd = &cobra.Command{
	Use:   "query <questionId> <yes|no|unknown>",
	Short: "List the images with a given answer to a question",
	Long: `Print the resolved path of every image whose answer to the question
matches the value, one per line. Useful to feed other tools:

  photocheck query 2 yes | xargs -I{} cp {} ./defects/`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		showIDs, _ := cmd.Flags().GetBool("show-ids")
		questionID, err := parseID(args[0])
		if err != nil {
			return err
		}
		value, err := domain.ParseAnswerValue(args[1])
		if err != nil {
			return err
		}

		st, err := current.openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		images, err := st.FindImagesByAnswer(cmd.Context(), questionID, value)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, img := range images {
			path := st.ResolveImagePath(img.FilePath)
			if showIDs {
				fmt.Fprintf(out, "%d\t%s\n", img.ID, path)
			} else {
				fmt.Fprintln(out, path)
			}
		}
		return nil
	},
}

func init() {
	queryCmd.Flags().Bool("show-ids", false, "Prefix each path with the image id")
	rootCmd.AddCommand(queryCmd)
}
