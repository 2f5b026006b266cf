package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lewtec/photocheck/annotation"
	"github.com/lewtec/photocheck/internal/domain"
)

type promptAction int

const (
	actionSave promptAction = iota
	actionPrev
	actionSkip
	actionQuit
)

// annotateCmd represents the annotate command
var annotateCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Answer the checklist image by image",
	Long: `Walk through the images and answer every question with y(es), n(o) or u(nknown).
An empty answer keeps the stored one. Other inputs:
  p  go back to the previous image
  s  skip to the next image without saving
  q  quit

The walk starts at the first image with a missing answer unless --from-start is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		fromStart, _ := cmd.Flags().GetBool("from-start")

		st, err := current.openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		session, err := annotation.NewSession(ctx, st)
		if err != nil {
			return err
		}
		if len(session.Images()) == 0 {
			fmt.Fprintln(out, "No images. Run 'photocheck import <folder>' first.")
			return nil
		}
		if len(session.Questions()) == 0 {
			fmt.Fprintln(out, "No questions. Run 'photocheck questions add <text>' first.")
			return nil
		}
		if !fromStart {
			found, err := session.SkipToFirstIncomplete(ctx)
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintln(out, "Every image is fully annotated. Use --from-start to review.")
				return nil
			}
		}

		in := bufio.NewScanner(cmd.InOrStdin())
		for {
			img := session.Current()
			path := session.ResolvePath(img)
			fmt.Fprintf(out, "\n[%s] %s\n", session.Progress(), session.DisplayName(img))
			if _, err := os.Stat(path); err != nil {
				fmt.Fprintf(out, "  file not found: %s\n", path)
			} else {
				fmt.Fprintf(out, "  %s\n", path)
			}

			stored, err := session.Answers(ctx)
			if err != nil {
				return err
			}
			answers, action := askAnswers(in, out, session.Questions(), stored)
			switch action {
			case actionQuit:
				return nil
			case actionPrev:
				if !session.Prev() {
					fmt.Fprintln(out, "Already at the first image.")
				}
				continue
			case actionSkip:
				if !session.Next() {
					fmt.Fprintln(out, "Already at the last image.")
				}
				continue
			}

			err = session.SaveAndNext(ctx, answers)
			if errors.Is(err, annotation.ErrLastImage) {
				fmt.Fprintln(out, "Annotation finished: this was the last image.")
				return nil
			}
			if err != nil {
				return err
			}
		}
	},
}

// askAnswers prompts for every question. End of input counts as quit.
func askAnswers(in *bufio.Scanner, out io.Writer, questions []*domain.Question, stored map[int64]domain.AnswerValue) (map[int64]domain.AnswerValue, promptAction) {
	answers := make(map[int64]domain.AnswerValue, len(questions))
	for _, q := range questions {
		prev, answered := stored[q.ID]
		for {
			hint := ""
			if answered {
				hint = fmt.Sprintf(" (current: %s)", prev)
			}
			fmt.Fprintf(out, "  %s [y/n/u]%s: ", q.Text, hint)
			if !in.Scan() {
				fmt.Fprintln(out)
				return nil, actionQuit
			}
			line := strings.ToLower(strings.TrimSpace(in.Text()))
			switch line {
			case "q":
				return nil, actionQuit
			case "p":
				return nil, actionPrev
			case "s":
				return nil, actionSkip
			case "":
				if !answered {
					fmt.Fprintln(out, "  an answer is required")
					continue
				}
				answers[q.ID] = prev
			default:
				v, err := domain.ParseAnswerValue(line)
				if err != nil {
					fmt.Fprintf(out, "  %v\n", err)
					continue
				}
				answers[q.ID] = v
			}
			break
		}
	}
	return answers, actionSave
}

func init() {
	annotateCmd.Flags().Bool("from-start", false, "Start at the first image instead of the first unfinished one")
	rootCmd.AddCommand(annotateCmd)
}
