package annotation

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/lewtec/photocheck/internal/domain"
	"github.com/lewtec/photocheck/internal/store"
)

// ReportStore is the part of the store Report reads.
type ReportStore interface {
	Path() string
	LoadQuestions(ctx context.Context) ([]*domain.Question, error)
	LoadAllAnswers(ctx context.Context) ([]*domain.Answer, error)
	Stats(ctx context.Context) (store.Stats, error)
}

// Report renders a markdown summary with answer counts per question.
func Report(ctx context.Context, st ReportStore) ([]byte, error) {
	stats, err := st.Stats(ctx)
	if err != nil {
		return nil, err
	}
	questions, err := st.LoadQuestions(ctx)
	if err != nil {
		return nil, err
	}
	answers, err := st.LoadAllAnswers(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[int64]map[domain.AnswerValue]int64, len(questions))
	for _, a := range answers {
		if counts[a.QuestionID] == nil {
			counts[a.QuestionID] = make(map[domain.AnswerValue]int64)
		}
		counts[a.QuestionID][a.Value]++
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "# Photo annotation report\n\n")
	fmt.Fprintf(&b, "Database: `%s`\n\n", st.Path())
	fmt.Fprintf(&b, "- Images: %d\n", stats.Images)
	fmt.Fprintf(&b, "- Questions: %d\n", stats.Questions)
	fmt.Fprintf(&b, "- Fully annotated: %d (%s)\n", stats.CompletedImages, percent(stats.CompletedImages, stats.Images))
	fmt.Fprintf(&b, "- Answers: %d\n\n", stats.Answers)

	if len(questions) == 0 {
		b.WriteString("No questions defined.\n")
		return b.Bytes(), nil
	}

	b.WriteString("| # | Question | Yes | No | Unknown | Unanswered |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, q := range questions {
		c := counts[q.ID]
		answered := c[domain.AnswerYes] + c[domain.AnswerNo] + c[domain.AnswerUnknown]
		fmt.Fprintf(&b, "| %d | %s | %d | %d | %d | %d |\n",
			q.ID, escapeCell(q.Text),
			c[domain.AnswerYes], c[domain.AnswerNo], c[domain.AnswerUnknown],
			stats.Images-answered)
	}
	return b.Bytes(), nil
}

func percent(part, total int64) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.0f%%", float64(part)*100/float64(total))
}

func escapeCell(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "|", `\|`), "\n", " ")
}
