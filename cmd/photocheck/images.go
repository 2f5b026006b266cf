package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// imagesCmd groups the image commands
var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Inspect and remove registered images",
}

var imagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List images with their resolved path and progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		missingOnly, _ := cmd.Flags().GetBool("missing")

		st, err := current.openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		questions, err := st.LoadQuestions(ctx)
		if err != nil {
			return err
		}
		images, err := st.LoadImages(ctx)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tFILE\tSTATUS\tANSWERED")
		for _, img := range images {
			path := st.ResolveImagePath(img.FilePath)
			status := "ok"
			if _, err := os.Stat(path); err != nil {
				status = "missing"
			} else if missingOnly {
				continue
			}
			answers, err := st.LoadAnswersForImage(ctx, img.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d/%d\n", img.ID, path, status, len(answers), len(questions))
		}
		return w.Flush()
	},
}

var imagesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Forget an image and its answers (the file is left alone)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		st, err := current.openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.DeleteImage(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted image %d\n", id)
		return nil
	},
}

func init() {
	imagesListCmd.Flags().Bool("missing", false, "Only list images whose file does not exist")
	imagesCmd.AddCommand(imagesListCmd, imagesDeleteCmd)
	rootCmd.AddCommand(imagesCmd)
}
