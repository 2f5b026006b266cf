package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lewtec/photocheck/internal/domain"
)

// answersCmd groups the answer commands
var answersCmd = &cobra.Command{
	Use:   "answers",
	Short: "Show or set the answers of one image",
}

var answersShowCmd = &cobra.Command{
	Use:   "show <imageId>",
	Short: "Show the answers of an image, '-' marks unanswered questions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		st, err := current.openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		img, err := st.GetImage(ctx, id)
		if err != nil {
			return err
		}
		if img == nil {
			return fmt.Errorf("image %d not found", id)
		}
		questions, err := st.LoadQuestions(ctx)
		if err != nil {
			return err
		}
		answers, err := st.LoadAnswersForImage(ctx, id)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n", st.ResolveImagePath(img.FilePath))
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, q := range questions {
			value := "-"
			if v, ok := answers[q.ID]; ok {
				value = v.String()
			}
			fmt.Fprintf(w, "%d\t%s\t%s\n", q.ID, value, q.Text)
		}
		return w.Flush()
	},
}

var answersSetCmd = &cobra.Command{
	Use:   "set <imageId> <questionId>=<yes|no|unknown>...",
	Short: "Save answers of an image in one transaction",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		answers := make(map[int64]domain.AnswerValue, len(args)-1)
		for _, arg := range args[1:] {
			qid, value, ok := strings.Cut(arg, "=")
			if !ok {
				return fmt.Errorf("expected <questionId>=<value>, got %q", arg)
			}
			questionID, err := parseID(qid)
			if err != nil {
				return err
			}
			v, err := domain.ParseAnswerValue(value)
			if err != nil {
				return err
			}
			answers[questionID] = v
		}

		st, err := current.openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.SaveAnswers(cmd.Context(), id, answers); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %d answers for image %d\n", len(answers), id)
		return nil
	},
}

func init() {
	answersCmd.AddCommand(answersShowCmd, answersSetCmd)
	rootCmd.AddCommand(answersCmd)
}
