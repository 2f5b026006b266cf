package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// questionsCmd groups the checklist commands
var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Manage the checklist questions",
}

var questionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the questions in display order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := current.openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		questions, err := st.LoadQuestions(cmd.Context())
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tORDER\tTEXT")
		for _, q := range questions {
			fmt.Fprintf(w, "%d\t%d\t%s\n", q.ID, q.SortOrder, q.Text)
		}
		return w.Flush()
	},
}

var questionsAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a question to the checklist",
	Long: `Add a question. Without --order it is placed after the existing ones.
Questions are never deduplicated.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := current.openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		order, _ := cmd.Flags().GetInt("order")
		if !cmd.Flags().Changed("order") {
			questions, err := st.LoadQuestions(cmd.Context())
			if err != nil {
				return err
			}
			order = 0
			for _, q := range questions {
				if q.SortOrder >= order {
					order = q.SortOrder + 1
				}
			}
		}

		id, err := st.UpsertQuestion(cmd.Context(), args[0], order)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added question %d\n", id)
		return nil
	},
}

var questionsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a question and every answer given to it",
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

		if err := st.DeleteQuestion(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted question %d\n", id)
		return nil
	},
}

func init() {
	questionsAddCmd.Flags().Int("order", 0, "Sort order of the new question")
	questionsCmd.AddCommand(questionsListCmd, questionsAddCmd, questionsDeleteCmd)
	rootCmd.AddCommand(questionsCmd)
}
